package structmap

import (
	"sort"
)

// Map represents an ordered string keyed mapping of plain values
type Map struct {
	keys   []string
	values map[string]interface{}
}

// NewMap creates a map with supplied capacity
func NewMap(capacity int) *Map {
	return &Map{keys: make([]string, 0, capacity), values: make(map[string]interface{}, capacity)}
}

// MapOf creates a map from a go map, keys are sorted
func MapOf(aMap map[string]interface{}) *Map {
	ret := NewMap(len(aMap))
	for k := range aMap {
		ret.keys = append(ret.keys, k)
	}
	sort.Strings(ret.keys)
	for k, v := range aMap {
		ret.values[k] = v
	}
	return ret
}

// Put sets key value, a new key is appended, existing key keeps its position
func (m *Map) Put(key string, value interface{}) {
	if m.values == nil {
		m.values = make(map[string]interface{})
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Lookup returns a value and flag if key was present
func (m *Map) Lookup(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Get returns a value or nil
func (m *Map) Get(key string) interface{} {
	value, _ := m.Lookup(key)
	return value
}

// Keys returns keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in insertion order until fn returns false
func (m *Map) Range(fn func(key string, value interface{}) bool) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// AsMap returns a go map, nested maps and sequences are converted too
func (m *Map) AsMap() map[string]interface{} {
	if m == nil {
		return nil
	}
	ret := make(map[string]interface{}, len(m.keys))
	for _, key := range m.keys {
		ret[key] = unorder(m.values[key])
	}
	return ret
}

func unorder(value interface{}) interface{} {
	switch actual := value.(type) {
	case *Map:
		return actual.AsMap()
	case []interface{}:
		if actual == nil {
			return actual
		}
		ret := make([]interface{}, len(actual))
		for i, item := range actual {
			ret[i] = unorder(item)
		}
		return ret
	}
	return value
}

// asMap returns a plain mapping for *Map or map[string]interface{} values
func asMap(value interface{}) (*Map, bool) {
	switch actual := value.(type) {
	case *Map:
		return actual, actual != nil
	case map[string]interface{}:
		return MapOf(actual), actual != nil
	}
	return nil, false
}
