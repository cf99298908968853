package structmap

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// Type represents a serializable struct type with its declared attribute list
type Type[T any] struct {
	rType    reflect.Type
	newFn    func() *T
	fields   []*Field
	index    map[string]*Field
	declared []*Field
	options  options
}

// NewType creates a serializable type, names define declared attributes in order,
// newFn is the zero argument constructor, when nil new(T) is used
func NewType[T any](newFn func() *T, names []string, opts ...Option) (*Type[T], error) {
	rType := reflect.TypeOf((*T)(nil)).Elem()
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported type %s, expected struct", rType.String())
	}
	ret := &Type[T]{rType: rType, newFn: newFn, index: map[string]*Field{}}
	Options(opts).Apply(&ret.options)
	xStruct := xunsafe.NewStruct(rType)
	for i := range xStruct.Fields {
		field, err := newField(&xStruct.Fields[i], &ret.options)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s field: %w", rType.String(), err)
		}
		if field == nil {
			continue
		}
		if _, ok := ret.index[field.Name]; ok {
			return nil, fmt.Errorf("duplicate %s field key: %v", rType.String(), field.Name)
		}
		ret.fields = append(ret.fields, field)
		ret.index[field.Name] = field
	}
	for _, field := range ret.fields {
		if _, ok := ret.index[field.FieldName]; !ok {
			ret.index[field.FieldName] = field
		}
	}
	unique := make(map[*Field]bool, len(names))
	for _, name := range names {
		field, ok := ret.index[name]
		if !ok {
			return nil, fmt.Errorf("failed to lookup declared field %v at %s", name, rType.String())
		}
		if unique[field] {
			return nil, fmt.Errorf("duplicate declared field %v at %s", name, rType.String())
		}
		unique[field] = true
		ret.declared = append(ret.declared, field)
	}
	return ret, nil
}

// MustNewType creates a serializable type or panics
func MustNewType[T any](newFn func() *T, names []string, opts ...Option) *Type[T] {
	ret, err := NewType[T](newFn, names, opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

// New creates a default instance
func (t *Type[T]) New() *T {
	if t.newFn != nil {
		if ret := t.newFn(); ret != nil {
			return ret
		}
	}
	return new(T)
}

// Type returns underlying struct type
func (t *Type[T]) Type() reflect.Type {
	return t.rType
}

// Names returns declared attribute keys
func (t *Type[T]) Names() []string {
	var ret = make([]string, len(t.declared))
	for i, field := range t.declared {
		ret[i] = field.Name
	}
	return ret
}

// Fields returns declared fields
func (t *Type[T]) Fields() []*Field {
	return t.declared
}

// Lookup returns field by key or go field name, declared or not
func (t *Type[T]) Lookup(name string) *Field {
	return t.index[name]
}

func (t *Type[T]) selection(names []string) ([]*Field, error) {
	if len(names) == 0 {
		return t.declared, nil
	}
	ret := make([]*Field, 0, len(names))
	for _, name := range names {
		field, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("failed to lookup field %v at %s", name, t.rType.String())
		}
		ret = append(ret, field)
	}
	return ret, nil
}
