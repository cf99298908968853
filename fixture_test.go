package structmap

type Serializable struct {
	Attr1       interface{}    `format:"name=attr1"`
	Attr2       string         `format:"name=attr2"`
	ObjAttr     *Serializable2 `format:"name=obj_attr"`
	NoSerialize string
}

type Serializable2 struct {
	AttrTest string `format:"name=attr_test"`
}

func newSerializable() *Serializable {
	return &Serializable{
		Attr1:       "attr1_init_data",
		Attr2:       "attr2_init_data",
		ObjAttr:     &Serializable2{AttrTest: "attr_test_init_data"},
		NoSerialize: "no_serialize",
	}
}

var serializableNames = []string{"attr1", "attr2", "obj_attr"}

var serializableType = MustNewType(newSerializable, serializableNames)

var serializable2Type = MustNewType[Serializable2](nil, []string{"attr_test"})

var nestedListType = MustNewType(func() *Serializable {
	ret := newSerializable()
	ret.Attr1 = []interface{}{"attr1_data", &Serializable2{AttrTest: "nested_list"}}
	return ret
}, serializableNames)

var nestedDictType = MustNewType(func() *Serializable {
	ret := newSerializable()
	ret.Attr1 = map[string]interface{}{"sub_attr1": &Serializable2{AttrTest: "nested_dict"}, "sub_attr2": 2}
	return ret
}, serializableNames)

func (s *Serializable) Export(names ...string) (*Map, error) {
	return serializableType.Export(s, names...)
}

func (s *Serializable) Import(plain *Map, names ...string) (interface{}, error) {
	return serializableType.Import(plain, names...)
}

func (s *Serializable2) Export(names ...string) (*Map, error) {
	return serializable2Type.Export(s, names...)
}

func (s *Serializable2) Import(plain *Map, names ...string) (interface{}, error) {
	return serializable2Type.Import(plain, names...)
}

type (
	label  string
	status string

	Team struct {
		Name    string
		Status  status
		Members []*Serializable2
		Lead    Serializable2
		Index   map[string]*Serializable2
		Tags    Set[string]
		Scores  [3]int
		Labels  map[label]string
		Meta    *Map
		Payload []byte
	}
)

var teamType = MustNewType[Team](nil, []string{"Name", "Status", "Members", "Lead", "Index", "Tags", "Scores", "Labels", "Meta", "Payload"})

func newTeam() *Team {
	meta := NewMap(2)
	meta.Put("region", "us")
	meta.Put("size", 2)
	return &Team{
		Name:    "core",
		Status:  "active",
		Members: []*Serializable2{{AttrTest: "m1"}, {AttrTest: "m2"}},
		Lead:    Serializable2{AttrTest: "lead"},
		Index:   map[string]*Serializable2{"b": {AttrTest: "ib"}, "a": {AttrTest: "ia"}},
		Tags:    NewSet("x", "y"),
		Scores:  [3]int{3, 2, 1},
		Labels:  map[label]string{"env": "prod"},
		Meta:    meta,
		Payload: []byte("raw"),
	}
}

// plainOf builds an ordered map from key value pairs
func plainOf(pairs ...interface{}) *Map {
	ret := NewMap(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ret.Put(pairs[i].(string), pairs[i+1])
	}
	return ret
}

type Roster struct {
	Members *[]*Serializable2
	Index   *map[string]*Serializable2
	Tags    *Set[string]
}

var rosterType = MustNewType[Roster](nil, []string{"Members", "Index", "Tags"})

type Slot struct {
	Child    Exporter
	Children []Exporter
}

var slotType = MustNewType[Slot](nil, []string{"Child", "Children"})
