package structmap

import (
	"encoding/json"
	"fmt"

	"github.com/francoispqt/gojay"
)

var nullJSON = gojay.EmbeddedJSON("null")

// MarshalJSON encodes map preserving key order
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	encoder := &objectEncoder{Map: m, state: &encoderState{}}
	data, err := gojay.MarshalJSONObject(encoder)
	if err != nil {
		return nil, err
	}
	if encoder.state.err != nil {
		return nil, encoder.state.err
	}
	return data, nil
}

// UnmarshalJSON decodes map keeping top level key order, nested objects
// are decoded into maps with sorted keys
func (m *Map) UnmarshalJSON(data []byte) error {
	m.keys = m.keys[:0]
	m.values = map[string]interface{}{}
	return gojay.UnmarshalJSONObject(data, m)
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (m *Map) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	m.Put(key, ordered(value))
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject, zero decodes all keys
func (m *Map) NKeys() int {
	return 0
}

func ordered(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		ret := MapOf(actual)
		for _, key := range ret.keys {
			ret.values[key] = ordered(ret.values[key])
		}
		return ret
	case []interface{}:
		for i, item := range actual {
			actual[i] = ordered(item)
		}
	}
	return value
}

type (
	encoderState struct {
		err error
	}

	objectEncoder struct {
		*Map
		state *encoderState
	}

	arrayEncoder struct {
		items []interface{}
		state *encoderState
	}
)

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (e *objectEncoder) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range e.keys {
		switch actual := e.values[key].(type) {
		case nil:
			enc.AddEmbeddedJSONKey(key, &nullJSON)
		case string:
			enc.AddStringKey(key, actual)
		case bool:
			enc.AddBoolKey(key, actual)
		case int:
			enc.AddIntKey(key, actual)
		case int64:
			enc.AddInt64Key(key, actual)
		case float64:
			enc.AddFloat64Key(key, actual)
		case *Map:
			if actual == nil {
				enc.AddEmbeddedJSONKey(key, &nullJSON)
				continue
			}
			enc.AddObjectKey(key, &objectEncoder{Map: actual, state: e.state})
		case []interface{}:
			if actual == nil {
				enc.AddEmbeddedJSONKey(key, &nullJSON)
				continue
			}
			enc.AddArrayKey(key, &arrayEncoder{items: actual, state: e.state})
		default:
			enc.AddEmbeddedJSONKey(key, e.state.embed(key, actual))
		}
	}
}

// IsNil implements gojay.MarshalerJSONObject
func (e *objectEncoder) IsNil() bool {
	return e.Map == nil
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (e *arrayEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for i, item := range e.items {
		switch actual := item.(type) {
		case nil:
			enc.AddEmbeddedJSON(&nullJSON)
		case string:
			enc.AddString(actual)
		case bool:
			enc.AddBool(actual)
		case int:
			enc.AddInt(actual)
		case int64:
			enc.AddInt64(actual)
		case float64:
			enc.AddFloat64(actual)
		case *Map:
			if actual == nil {
				enc.AddEmbeddedJSON(&nullJSON)
				continue
			}
			enc.AddObject(&objectEncoder{Map: actual, state: e.state})
		case []interface{}:
			if actual == nil {
				enc.AddEmbeddedJSON(&nullJSON)
				continue
			}
			enc.AddArray(&arrayEncoder{items: actual, state: e.state})
		default:
			enc.AddEmbeddedJSON(e.state.embed(i, actual))
		}
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (e *arrayEncoder) IsNil() bool {
	return e.items == nil
}

// embed encodes values without a gojay fast path; the first error is kept
func (s *encoderState) embed(location interface{}, value interface{}) *gojay.EmbeddedJSON {
	data, err := json.Marshal(value)
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("failed to encode %v: %w", location, err)
		}
		return &nullJSON
	}
	embedded := gojay.EmbeddedJSON(data)
	return &embedded
}
