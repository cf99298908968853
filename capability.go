package structmap

type (
	//Exporter converts itself to a plain mapping.
	//Names, when supplied, replace the declared attribute list.
	Exporter interface {
		Export(names ...string) (*Map, error)
	}

	//Importer creates a new instance of its own type from a plain mapping.
	//The receiver only selects the type, its state is not used.
	Importer interface {
		Import(plain *Map, names ...string) (interface{}, error)
	}
)
