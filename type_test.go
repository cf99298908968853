package structmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func TestNewType(t *testing.T) {
	type Profile struct {
		ID       int
		UserName string
		Nick     string `format:"name=nickname"`
		Secret   string `format:"-"`
		Hidden   string `format:"ignore=true"`
	}
	profileType, err := NewType[Profile](nil, []string{"id", "UserName", "nickname"}, WithCaseFormat(text.CaseFormatLowerUnderscore))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, []string{"id", "user_name", "nickname"}, profileType.Names())
	assert.NotNil(t, profileType.Lookup("user_name"))
	assert.Equal(t, profileType.Lookup("user_name"), profileType.Lookup("UserName"))
	assert.Nil(t, profileType.Lookup("Secret"))
	assert.Nil(t, profileType.Lookup("Hidden"))
	assert.Equal(t, "Profile", profileType.Type().Name())
	assert.Equal(t, &Profile{}, profileType.New())

	actual, err := profileType.Export(&Profile{ID: 7, UserName: "alice", Nick: "a", Secret: "s"})
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]interface{}{"id": 7, "user_name": "alice", "nickname": "a"}, actual.AsMap())
}

func TestNewType_Fields(t *testing.T) {
	var expect = map[string]Kind{
		"Name":    KindScalar,
		"Status":  KindScalar,
		"Members": KindSequence,
		"Lead":    KindNested,
		"Index":   KindMapping,
		"Tags":    KindSet,
		"Scores":  KindSequence,
		"Labels":  KindMapping,
		"Meta":    KindMapping,
		"Payload": KindScalar,
	}
	fields := teamType.Fields()
	assert.Len(t, fields, len(expect))
	for _, field := range fields {
		assert.Equal(t, expect[field.Name], field.Kind, field.Name)
	}
	assert.Equal(t, KindAny, serializableType.Lookup("attr1").Kind)
	assert.Equal(t, KindNested, serializableType.Lookup("obj_attr").Kind)
}

func TestNewType_Error(t *testing.T) {
	type Dummy struct {
		Name string
		Desc string
	}
	type BadKey struct {
		Index map[int]string
	}
	type BadKeyPtr struct {
		Index *map[int]string
	}
	type Conflict struct {
		A string `format:"name=x"`
		B string `format:"name=x"`
	}
	var testCases = []struct {
		description string
		newType     func() error
	}{
		{
			description: "unknown declared field",
			newType: func() error {
				_, err := NewType[Dummy](nil, []string{"Name", "Missing"})
				return err
			},
		},
		{
			description: "duplicate declared field",
			newType: func() error {
				_, err := NewType[Dummy](nil, []string{"Name", "Desc", "Name"})
				return err
			},
		},
		{
			description: "non struct type",
			newType: func() error {
				_, err := NewType[int](nil, nil)
				return err
			},
		},
		{
			description: "unsupported map key",
			newType: func() error {
				_, err := NewType[BadKey](nil, []string{"Index"})
				return err
			},
		},
		{
			description: "unsupported map key behind pointer",
			newType: func() error {
				_, err := NewType[BadKeyPtr](nil, []string{"Index"})
				return err
			},
		},
		{
			description: "duplicate field key",
			newType: func() error {
				_, err := NewType[Conflict](nil, []string{"x"})
				return err
			},
		},
	}
	for _, testCase := range testCases {
		assert.NotNil(t, testCase.newType(), testCase.description)
	}
	assert.Panics(t, func() {
		MustNewType[Dummy](nil, []string{"Missing"})
	})
}

func TestType_New(t *testing.T) {
	type Dummy struct {
		Name string
	}
	dummyType := MustNewType(func() *Dummy { return nil }, []string{"Name"})
	assert.Equal(t, &Dummy{}, dummyType.New())

	dummyType = MustNewType(func() *Dummy { return &Dummy{Name: "init"} }, []string{"Name"})
	first, second := dummyType.New(), dummyType.New()
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}
