package structmap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/structmap/visitor"
)

var (
	interfaceType      = reflect.TypeOf((*interface{})(nil)).Elem()
	interfaceSliceType = reflect.TypeOf([]interface{}(nil))
)

// Import creates a default instance and assigns attributes present in plain.
// Names, when supplied, replace the declared attribute list. Missing keys keep
// default values, unknown keys are ignored.
func (t *Type[T]) Import(plain *Map, names ...string) (*T, error) {
	fields, err := t.selection(names)
	if err != nil {
		return nil, err
	}
	instance := t.New()
	ptr := unsafe.Pointer(instance)
	for _, field := range fields {
		raw, ok := plain.Lookup(field.Name)
		if !ok {
			continue
		}
		target := field.reflectValue(ptr)
		value, err := t.assign(target.Type(), target, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to import %s.%s: %w", t.rType.Name(), field.Name, err)
		}
		target.Set(value)
	}
	return instance, nil
}

// assign returns raw value fitted to destType; current holds the default value
// at the same position, it is invalid when there is none
func (t *Type[T]) assign(destType reflect.Type, current reflect.Value, raw interface{}) (reflect.Value, error) {
	if sub, ok := asMap(raw); ok {
		if importer := importerOf(current, destType); importer != nil {
			imported, err := importer.Import(sub)
			if err != nil {
				return reflect.Value{}, err
			}
			return fitImported(destType, imported)
		}
	}
	if raw == nil {
		return reflect.Zero(destType), nil
	}
	if !t.options.directImportOnly {
		if value, ok, err := t.descend(destType, current, raw); ok || err != nil {
			return value, err
		}
	}
	rawValue := reflect.ValueOf(raw)
	rawType := rawValue.Type()
	switch {
	case rawType.AssignableTo(destType):
		return rawValue, nil
	case rawType.Kind() == destType.Kind() && rawType.ConvertibleTo(destType):
		return rawValue.Convert(destType), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %T to %s", raw, destType.String())
}

// descend reconstructs sequence and mapping containers element by element
func (t *Type[T]) descend(destType reflect.Type, current reflect.Value, raw interface{}) (reflect.Value, bool, error) {
	if isContainerPtr(destType) {
		return t.descendPointer(destType, current, raw)
	}
	switch kind := KindOfValue(raw); kind {
	case KindSequence:
		if destType.Kind() == reflect.Interface {
			return t.descendDynamic(destType, current, raw, kind, interfaceSliceType)
		}
		switch KindOf(destType) {
		case KindSequence:
			return t.descendSequence(destType, current, raw)
		case KindSet:
			return t.descendSet(destType, raw)
		}
	case KindMapping:
		if destType.Kind() == reflect.Interface {
			return t.descendDynamic(destType, current, raw, kind, mapPtrType)
		}
		if KindOf(destType) == KindMapping {
			return t.descendMapping(destType, current, raw)
		}
	}
	return reflect.Value{}, false, nil
}

// descendDynamic reconstructs a container held by an interface: the default
// value's dynamic type is reused when it has the same kind, otherwise fallback
// is used when it satisfies destType
func (t *Type[T]) descendDynamic(destType reflect.Type, current reflect.Value, raw interface{}, kind Kind, fallback reflect.Type) (reflect.Value, bool, error) {
	current = dynamic(current)
	if current.IsValid() && KindOf(current.Type()) == kind {
		return t.descend(current.Type(), current, raw)
	}
	if !fallback.AssignableTo(destType) {
		return reflect.Value{}, false, nil
	}
	return t.descend(fallback, reflect.Value{}, raw)
}

// descendPointer reconstructs a container behind a pointer
func (t *Type[T]) descendPointer(destType reflect.Type, current reflect.Value, raw interface{}) (reflect.Value, bool, error) {
	current = dynamic(current)
	var elemCurrent reflect.Value
	if current.IsValid() && current.Kind() == reflect.Ptr && !current.IsNil() {
		elemCurrent = current.Elem()
	}
	value, ok, err := t.descend(destType.Elem(), elemCurrent, raw)
	if !ok || err != nil {
		return value, ok, err
	}
	ret := reflect.New(destType.Elem())
	ret.Elem().Set(value)
	return ret, true, nil
}

func (t *Type[T]) descendSequence(destType reflect.Type, current reflect.Value, raw interface{}) (reflect.Value, bool, error) {
	visit, err := visitor.SequenceOf(raw)
	if err != nil {
		return reflect.Value{}, false, nil
	}
	items, _ := visitor.Collect(visit)
	var ret reflect.Value
	if destType.Kind() == reflect.Array {
		if len(items) > destType.Len() {
			return reflect.Value{}, true, fmt.Errorf("cannot assign %v items to %s", len(items), destType.String())
		}
		ret = reflect.New(destType).Elem()
	} else {
		ret = reflect.MakeSlice(destType, len(items), len(items))
	}
	current = dynamic(current)
	hasCurrent := current.IsValid() && (current.Kind() == reflect.Slice || current.Kind() == reflect.Array)
	for i, item := range items {
		var itemCurrent reflect.Value
		if hasCurrent && i < current.Len() {
			itemCurrent = current.Index(i)
		}
		value, err := t.assign(destType.Elem(), itemCurrent, item)
		if err != nil {
			return reflect.Value{}, true, fmt.Errorf("item %v: %w", i, err)
		}
		ret.Index(i).Set(value)
	}
	return ret, true, nil
}

func (t *Type[T]) descendSet(destType reflect.Type, raw interface{}) (reflect.Value, bool, error) {
	visit, err := visitor.SequenceOf(raw)
	if err != nil {
		return reflect.Value{}, false, nil
	}
	items, _ := visitor.Collect(visit)
	ret := reflect.MakeMapWithSize(destType, len(items))
	member := reflect.Zero(destType.Elem())
	for _, item := range items {
		key, err := t.assign(destType.Key(), reflect.Value{}, item)
		if err != nil {
			return reflect.Value{}, true, err
		}
		if !key.Type().Comparable() {
			return reflect.Value{}, true, fmt.Errorf("set member %s is not comparable", key.Type().String())
		}
		ret.SetMapIndex(key, member)
	}
	return ret, true, nil
}

func (t *Type[T]) descendMapping(destType reflect.Type, current reflect.Value, raw interface{}) (reflect.Value, bool, error) {
	sub, ok := asMap(raw)
	if !ok {
		return reflect.Value{}, false, nil
	}
	current = dynamic(current)
	if destType == mapPtrType {
		var currentMap *Map
		if current.IsValid() && current.Type() == mapPtrType {
			currentMap = current.Interface().(*Map)
		}
		ret := NewMap(sub.Len())
		var err error
		sub.Range(func(key string, item interface{}) bool {
			var value reflect.Value
			if value, err = t.assign(interfaceType, itemOf(currentMap.Lookup(key)), item); err != nil {
				err = fmt.Errorf("key %v: %w", key, err)
				return false
			}
			ret.Put(key, valueInterface(value))
			return true
		})
		return reflect.ValueOf(ret), true, err
	}
	hasCurrent := current.IsValid() && current.Kind() == reflect.Map && !current.IsNil()
	ret := reflect.MakeMapWithSize(destType, sub.Len())
	var err error
	sub.Range(func(key string, item interface{}) bool {
		mapKey := reflect.ValueOf(key).Convert(destType.Key())
		var itemCurrent reflect.Value
		if hasCurrent {
			itemCurrent = current.MapIndex(mapKey)
		}
		var value reflect.Value
		if value, err = t.assign(destType.Elem(), itemCurrent, item); err != nil {
			err = fmt.Errorf("key %v: %w", key, err)
			return false
		}
		ret.SetMapIndex(mapKey, value)
		return true
	})
	return ret, true, err
}

// importerOf returns an importer for the default value, or for destType when there is no default
func importerOf(current reflect.Value, destType reflect.Type) Importer {
	if !current.IsValid() {
		if destType.Kind() == reflect.Interface || !isImporter(destType) {
			return nil
		}
		current = reflect.Zero(destType)
	}
	current = dynamic(current)
	if !current.IsValid() {
		return nil
	}
	if importer, ok := current.Interface().(Importer); ok {
		return importer
	}
	if current.Kind() == reflect.Ptr || !isImporter(current.Type()) {
		return nil
	}
	if current.CanAddr() {
		importer, _ := current.Addr().Interface().(Importer)
		return importer
	}
	ptr := reflect.New(current.Type())
	ptr.Elem().Set(current)
	importer, _ := ptr.Interface().(Importer)
	return importer
}

func fitImported(destType reflect.Type, imported interface{}) (reflect.Value, error) {
	if imported == nil {
		return reflect.Zero(destType), nil
	}
	value := reflect.ValueOf(imported)
	if value.Type().AssignableTo(destType) {
		return value, nil
	}
	if value.Kind() == reflect.Ptr && !value.IsNil() && value.Elem().Type().AssignableTo(destType) {
		return value.Elem(), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign imported %T to %s", imported, destType.String())
}

// dynamic unwraps interface values
func dynamic(value reflect.Value) reflect.Value {
	if value.IsValid() && value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}
		}
		return value.Elem()
	}
	return value
}

func itemOf(value interface{}, ok bool) reflect.Value {
	if !ok || value == nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(value)
}

func valueInterface(value reflect.Value) interface{} {
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}
