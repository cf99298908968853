package structmap

import (
	"fmt"
	"reflect"

	"github.com/viant/structmap/visitor"
)

// Kind represents how a value is converted to its plain form
type Kind int

const (
	//KindScalar value is used unchanged
	KindScalar Kind = iota
	//KindSequence slice or fixed-size array, converted element by element
	KindSequence
	//KindSet unordered unique collection (map[K]struct{})
	KindSet
	//KindMapping string keyed map, converted value by value
	KindMapping
	//KindNested exportable instance
	KindNested
	//KindAny interface typed value, resolved per value
	KindAny
)

var kindNames = [...]string{"scalar", "sequence", "set", "mapping", "nested", "any"}

// String returns kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

var (
	exporterType = reflect.TypeOf((*Exporter)(nil)).Elem()
	importerType = reflect.TypeOf((*Importer)(nil)).Elem()
	mapPtrType   = reflect.TypeOf((*Map)(nil))
)

var kindCache = visitor.NewSyncMap[reflect.Type, Kind]()

// KindOf returns the kind of supplied type.
// A map with a non string key that is not a set is classified as scalar;
// NewType rejects such fields. A pointer to a slice, array or map takes the
// kind of the container it points to.
func KindOf(t reflect.Type) Kind {
	if t == nil {
		return KindScalar
	}
	return kindCache.GetOrCompute(t, kindOf)
}

func kindOf(t reflect.Type) Kind {
	if isExporter(t) {
		return KindNested
	}
	if t == mapPtrType {
		return KindMapping
	}
	switch t.Kind() {
	case reflect.Interface:
		return KindAny
	case reflect.Ptr:
		if isContainerPtr(t) {
			return KindOf(t.Elem())
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 { //[]byte and alike are scalars
			return KindScalar
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if visitor.IsSetType(t) {
			return KindSet
		}
		if t.Key().Kind() == reflect.String {
			return KindMapping
		}
	}
	return KindScalar
}

// KindOfValue returns the kind of a dynamic value
func KindOfValue(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return KindScalar
	case Exporter:
		return KindNested
	case *Map:
		return KindMapping
	case []interface{}:
		return KindSequence
	case map[string]interface{}:
		return KindMapping
	case string, bool, int, int64, float64:
		return KindScalar
	}
	return KindOf(reflect.TypeOf(value))
}

func isExporter(t reflect.Type) bool {
	return t.Implements(exporterType) || (t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface && reflect.PtrTo(t).Implements(exporterType))
}

func isImporter(t reflect.Type) bool {
	return t.Implements(importerType) || (t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface && reflect.PtrTo(t).Implements(importerType))
}

// isContainerPtr reports whether t points to a slice, array or map
func isContainerPtr(t reflect.Type) bool {
	if t.Kind() != reflect.Ptr || t == mapPtrType {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}
