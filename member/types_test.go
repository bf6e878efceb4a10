package member

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tagged struct {
	SKU     string `json:"sku,omitempty" db:""`
	Plain   int
	Ignored bool `json:"-"`
	OnlyOpt bool `json:",omitempty"`
}

func TestTypeIDOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeID{PkgPath: "type-analyzer/member", Name: "tagged"}, TypeIDOf(reflect.TypeFor[tagged]()))
	assert.Equal(t, "type-analyzer/member.tagged", TypeIDOf(reflect.TypeFor[tagged]()).String())
	assert.Equal(t, "int", TypeIDOf(reflect.TypeFor[int]()).String())
	assert.Equal(t, "[]string", TypeIDOf(reflect.TypeFor[[]string]()).String())
	assert.Equal(t, TypeID{}, TypeIDOf(nil))
}

func TestField_Tags(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeFor[tagged]()
	fields := make([]Field, typ.NumField())
	for i := range fields {
		sf := typ.Field(i)
		fields[i] = Field{Name: sf.Name, Type: sf.Type, Tag: sf.Tag, Index: i}
	}

	assert.Equal(t, "sku", fields[0].JSONName())
	assert.True(t, fields[0].HasTag("json"))
	assert.True(t, fields[0].HasTag("db"), "present but empty tag still counts")

	assert.Equal(t, "Plain", fields[1].JSONName())
	assert.False(t, fields[1].HasTag("json"))

	assert.Equal(t, "Ignored", fields[2].JSONName())
	assert.Equal(t, "OnlyOpt", fields[3].JSONName())
}

func TestMethod_Signature(t *testing.T) {
	t.Parallel()

	intT := reflect.TypeFor[int]()
	strT := reflect.TypeFor[string]()
	errT := reflect.TypeFor[error]()

	tests := []struct {
		name string
		m    Method
		want string
	}{
		{"no params", Method{}, "func()"},
		{"single result", Method{In: []reflect.Type{intT}, Out: []reflect.Type{strT}}, "func(int) string"},
		{"tuple result", Method{In: []reflect.Type{intT, strT}, Out: []reflect.Type{strT, errT}}, "func(int, string) (string, error)"},
		{"variadic", Method{In: []reflect.Type{strT, reflect.TypeFor[[]any]()}, Variadic: true}, "func(string, ...interface {})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.m.Signature())
		})
	}
}

func TestReceiver_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Value", ReceiverValue.String())
	assert.Equal(t, "Pointer", ReceiverPointer.String())
	assert.Equal(t, "Interface", ReceiverInterface.String())
	assert.Equal(t, "Receiver(7)", Receiver(7).String())
}

func TestClone_SharesNoSlices(t *testing.T) {
	t.Parallel()

	intT := reflect.TypeFor[int]()
	boolT := reflect.TypeFor[bool]()

	m := Method{Name: "Do", In: []reflect.Type{intT}, Out: []reflect.Type{intT}}
	mc := m.Clone()
	mc.In[0], mc.Out[0] = boolT, boolT
	assert.Equal(t, intT, m.In[0])
	assert.Equal(t, intT, m.Out[0])

	c := Constructor{Name: "New", In: []reflect.Type{intT}}
	cc := c.Clone()
	cc.In[0] = boolT
	assert.Equal(t, intT, c.In[0])

	p := Property{Name: "X", Type: intT, Getter: m, Setter: Method{Name: "SetX", In: []reflect.Type{intT}}}
	pc := p.Clone()
	pc.Getter.Out[0] = boolT
	pc.Setter.In[0] = boolT
	assert.Equal(t, intT, p.Getter.Out[0])
	assert.Equal(t, intT, p.Setter.In[0])

	empty := Method{In: []reflect.Type{}}
	assert.NotNil(t, empty.Clone().In)
}
