package visitor

import (
	"fmt"
	"reflect"
)

// IsSetType returns true for maps with zero-size elements, i.e. map[K]struct{}
func IsSetType(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Size() == 0
}

// SetOf creates a visitor over set members. Iteration order is unspecified;
// the key is the visit position.
func SetOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case map[string]struct{}:
		return TypedSetOf[string](actual), nil
	case map[int]struct{}:
		return TypedSetOf[int](actual), nil
	case map[interface{}]struct{}:
		return TypedSetOf[interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map || !IsSetType(val.Type()) {
		return nil, fmt.Errorf("expected set, got %T", value)
	}
	return func(f func(key int, element interface{}) (bool, error)) error {
		iter := val.MapRange()
		for i := 0; iter.Next(); i++ {
			continueVisit, err := f(i, iter.Key().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// TypedSetOf returns a visitor for a typed set.
func TypedSetOf[K comparable](set map[K]struct{}) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		i := 0
		for member := range set {
			continueVisit, err := f(i, member)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
			i++
		}
		return nil
	}
}
