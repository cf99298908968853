package structmap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/structmap/visitor"
)

// Export converts instance to a plain mapping. Names, when supplied, replace
// the declared attribute list; they do not propagate to nested instances.
// A name may be a plain key or a Go field name, result keys are always plain keys.
func (t *Type[T]) Export(instance *T, names ...string) (*Map, error) {
	if instance == nil {
		return nil, fmt.Errorf("failed to export %s: instance was nil", t.rType.String())
	}
	fields, err := t.selection(names)
	if err != nil {
		return nil, err
	}
	ptr := unsafe.Pointer(instance)
	ret := NewMap(len(fields))
	for _, field := range fields {
		var value interface{}
		if field.Kind == KindNested {
			value, err = exportNested(field.exporter(ptr))
		} else {
			value, err = convert(field.Kind, field.Value(ptr))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to export %s.%s: %w", t.rType.Name(), field.Name, err)
		}
		ret.Put(field.Name, value)
	}
	return ret, nil
}

// ToPlain converts any value to a plain value: exporters become mappings,
// sequences and sets become []interface{}, string keyed maps become *Map.
func ToPlain(value interface{}) (interface{}, error) {
	return convert(KindAny, value)
}

func convert(kind Kind, value interface{}) (interface{}, error) {
	if kind == KindAny {
		kind = KindOfValue(value)
		if kind == KindScalar && value != nil && containerType(reflect.TypeOf(value)).Kind() == reflect.Map {
			return nil, fmt.Errorf("unsupported map key type: %T", value)
		}
	}
	if kind == KindScalar {
		return value, nil
	}
	if isNil(value) {
		return nil, nil
	}
	if kind != KindNested {
		if value = indirect(value); isNil(value) {
			return nil, nil
		}
	}
	switch kind {
	case KindNested:
		exporter, ok := value.(Exporter)
		if !ok {
			//only the struct pointer implements Exporter
			ptr := reflect.New(reflect.TypeOf(value))
			ptr.Elem().Set(reflect.ValueOf(value))
			exporter = ptr.Interface().(Exporter)
		}
		return exportNested(exporter)
	case KindMapping:
		return convertMapping(value)
	case KindSequence:
		visit, err := visitor.SequenceOf(value)
		if err != nil {
			return nil, err
		}
		return convertItems(visit)
	case KindSet:
		visit, err := visitor.SetOf(value)
		if err != nil {
			return nil, err
		}
		return convertItems(visit)
	}
	return value, nil
}

// indirect dereferences a pointer to a container
func indirect(value interface{}) interface{} {
	if rType := reflect.TypeOf(value); isContainerPtr(rType) {
		return reflect.ValueOf(value).Elem().Interface()
	}
	return value
}

func exportNested(exporter Exporter) (interface{}, error) {
	if exporter == nil || isNil(exporter) {
		return nil, nil
	}
	ret, err := exporter.Export()
	if err != nil || ret == nil {
		return nil, err
	}
	return ret, nil
}

func convertItems(visit visitor.Visitor[int, interface{}]) ([]interface{}, error) {
	ret := []interface{}{}
	err := visit(func(_ int, item interface{}) (bool, error) {
		converted, err := convert(KindAny, item)
		if err != nil {
			return false, err
		}
		ret = append(ret, converted)
		return true, nil
	})
	return ret, err
}

func convertMapping(value interface{}) (*Map, error) {
	if aMap, ok := value.(*Map); ok {
		ret := NewMap(aMap.Len())
		var err error
		aMap.Range(func(key string, item interface{}) bool {
			var converted interface{}
			if converted, err = convert(KindAny, item); err != nil {
				err = fmt.Errorf("failed to convert %v: %w", key, err)
				return false
			}
			ret.Put(key, converted)
			return true
		})
		return ret, err
	}
	visit, err := visitor.MappingOf(value)
	if err != nil {
		return nil, err
	}
	ret := NewMap(0)
	err = visit(func(key string, item interface{}) (bool, error) {
		converted, err := convert(KindAny, item)
		if err != nil {
			return false, fmt.Errorf("failed to convert %v: %w", key, err)
		}
		ret.Put(key, converted)
		return true, nil
	})
	return ret, err
}
