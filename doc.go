/*
Package structmap converts struct instances to plain nested values and back.

A serializable struct registers its declared attribute list once:

	type Address struct {
		City string
	}

	var addressType = structmap.MustNewType(func() *Address { return &Address{City: "n/a"} }, []string{"City"})

	func (a *Address) Export(names ...string) (*structmap.Map, error) {
		return addressType.Export(a, names...)
	}

	func (a *Address) Import(plain *structmap.Map, names ...string) (interface{}, error) {
		return addressType.Import(plain, names...)
	}

Export walks the declared (or supplied) attributes and converts nested
exporters, sequences, sets and mappings recursively. A plain value is nil, a
scalar, []interface{} or *Map, an ordered string keyed mapping that encodes to
JSON in key order.

Import creates a default instance with the registered constructor and assigns
attributes present in the plain mapping; missing keys keep their defaults and
unknown keys are ignored. When the default value of an attribute is an
Importer and the plain entry is a mapping, a new nested instance is imported.
Sequences and mappings are reconstructed element by element unless the type
was registered WithDirectImportOnly.

Cyclic object graphs are not detected.
*/
package structmap
