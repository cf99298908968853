package visitor

import (
	"fmt"
	"reflect"
)

// SequenceOf creates a visitor for a slice or fixed-size array value.
// The key is the element index.
func SequenceOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case []interface{}:
		return TypedSequenceOf[interface{}](actual), nil
	case []string:
		return TypedSequenceOf[string](actual), nil
	case []int:
		return TypedSequenceOf[int](actual), nil
	case []int64:
		return TypedSequenceOf[int64](actual), nil
	case []float64:
		return TypedSequenceOf[float64](actual), nil
	case []bool:
		return TypedSequenceOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &sequenceVisitor{data: val}
	return visitor.Visit, nil
}

// TypedSequenceOf returns a visitor for a typed slice.
func TypedSequenceOf[E any](slice []E) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

type sequenceVisitor struct {
	data reflect.Value
}

// Visit iterates any slice or array via reflection.
func (v *sequenceVisitor) Visit(f func(key int, element interface{}) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
