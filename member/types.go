package member

import (
	"reflect"
	"slices"
	"strings"
)

// TypeID identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "type-analyzer/cmd/type-analyzer"
	Name    string // e.g., "Example"
}

// TypeIDOf returns the TypeID of t. Unnamed types use their Go spelling as Name.
func TypeIDOf(t reflect.Type) TypeID {
	if t == nil {
		return TypeID{}
	}
	if t.Name() == "" {
		return TypeID{Name: t.String()}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Constructor describes a way to obtain a new value of the analyzed type.
type Constructor struct {
	Name           string         // function name, or "new(T)" for the implicit zero value
	Func           reflect.Value  // registered function; invalid when Implicit
	In             []reflect.Type // parameter types
	Variadic       bool           // last parameter is variadic
	ReturnsPointer bool           // first result is *T rather than T
	ReturnsError   bool           // second result is error
	Implicit       bool           // the zero value, reported when nothing is registered
}

// Clone returns a copy that shares no slices with c.
func (c Constructor) Clone() Constructor {
	c.In = slices.Clone(c.In)
	return c
}

// Method describes an exported method declared on the analyzed type.
type Method struct {
	Name     string
	Receiver Receiver
	In       []reflect.Type // parameter types, receiver excluded
	Out      []reflect.Type
	Variadic bool
	Func     reflect.Value // invalid for interface methods
}

// Clone returns a copy that shares no slices with m.
func (m Method) Clone() Method {
	m.In = slices.Clone(m.In)
	m.Out = slices.Clone(m.Out)
	return m
}

// Signature renders the method type without receiver, e.g. "func(int) (string, error)".
func (m Method) Signature() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, in := range m.In {
		if i > 0 {
			b.WriteString(", ")
		}
		if m.Variadic && i == len(m.In)-1 {
			b.WriteString("..." + in.Elem().String())
			continue
		}
		b.WriteString(in.String())
	}
	b.WriteString(")")

	switch len(m.Out) {
	case 0:
	case 1:
		b.WriteString(" " + m.Out[0].String())
	default:
		b.WriteString(" (")
		for i, out := range m.Out {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(out.String())
		}
		b.WriteString(")")
	}

	return b.String()
}

// Property is an exported X()/SetX() accessor pair declared on the analyzed type.
type Property struct {
	Name   string
	Type   reflect.Type
	Getter Method
	Setter Method
}

// Clone returns a copy whose accessors share no slices with p.
func (p Property) Clone() Property {
	p.Getter = p.Getter.Clone()
	p.Setter = p.Setter.Clone()
	return p
}

// Field describes an exported struct field declared on the analyzed type.
type Field struct {
	Name     string            // Go field name
	Type     reflect.Type      // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Offset   uintptr           // Byte offset within the struct
}

// Clone returns f; fields hold no slices.
func (f Field) Clone() Field {
	return f
}

// JSONName returns the JSON tag name if present, otherwise the field name.
func (f *Field) JSONName() string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}

	return f.Name
}

// HasTag returns true if the field has the specified tag.
func (f *Field) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}
