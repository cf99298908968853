package structmap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// Field represents a serializable struct field descriptor
type Field struct {
	//Name plain mapping key
	Name string
	//FieldName go struct field name
	FieldName string
	Type      reflect.Type
	Kind      Kind
	xField    *xunsafe.Field
}

// Value returns field value of struct at ptr
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// reflectValue returns addressable, settable field value of struct at ptr
func (f *Field) reflectValue(ptr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(f.Type, f.xField.Pointer(ptr)).Elem()
}

// exporter returns field value exporter or nil if the value was nil
func (f *Field) exporter(ptr unsafe.Pointer) Exporter {
	switch f.Type.Kind() {
	case reflect.Ptr, reflect.Interface:
		value := f.Value(ptr)
		if isNil(value) {
			return nil
		}
		exporter, _ := value.(Exporter)
		return exporter
	}
	exporter, _ := f.reflectValue(ptr).Addr().Interface().(Exporter)
	return exporter
}

func newField(xField *xunsafe.Field, opts *options) (*Field, error) {
	ret := &Field{Name: xField.Name, FieldName: xField.Name, Type: xField.Type, xField: xField}
	if xField.Tag.Get("format") == "-" {
		return nil, nil
	}
	tag, err := format.Parse(xField.Tag)
	if err != nil {
		return nil, fmt.Errorf("invalid %v tag: %w", xField.Name, err)
	}
	if tag != nil {
		if tag.Ignore {
			return nil, nil
		}
		if tag.Name != "" {
			ret.Name = tag.Name
		}
	}
	if ret.Name == ret.FieldName {
		ret.Name = formatName(ret.FieldName, opts.caseFormat)
	}
	ret.Kind = KindOf(ret.Type)
	if mapType := containerType(ret.Type); mapType.Kind() == reflect.Map && ret.Kind == KindScalar {
		return nil, fmt.Errorf("unsupported %v map key type: %s", xField.Name, mapType.Key())
	}
	return ret, nil
}

func formatName(name string, caseFormat text.CaseFormat) string {
	if caseFormat == "" {
		return name
	}
	if name == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat)
}

func containerType(t reflect.Type) reflect.Type {
	if isContainerPtr(t) {
		return t.Elem()
	}
	return t
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rValue.IsNil()
	}
	return false
}
