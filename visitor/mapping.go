package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MappingOf creates a visitor for a string-keyed map.
// Go maps carry no insertion order, so keys are visited in ascending order.
func MappingOf(value interface{}) (Visitor[string, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return TypedMappingOf[interface{}](actual), nil
	case map[string]string:
		return TypedMappingOf[string](actual), nil
	case map[string]int:
		return TypedMappingOf[int](actual), nil
	case map[string]bool:
		return TypedMappingOf[bool](actual), nil
	case map[string]float64:
		return TypedMappingOf[float64](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("unsupported map key type %s in %T", val.Type().Key(), value)
	}
	visitor := &mappingVisitor{data: val}
	return visitor.Visit, nil
}

// TypedMappingOf returns a visitor for a typed string-keyed map.
func TypedMappingOf[E any](aMap map[string]E) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		keys := make([]string, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
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

type mappingVisitor struct {
	data reflect.Value
}

// Visit iterates a map with string kind keys via reflection.
func (v *mappingVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, key := range keys {
		continueVisit, err := f(key.String(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
