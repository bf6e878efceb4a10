package provider

import (
	"reflect"
	"runtime"
	"slices"
	"strings"

	"type-analyzer/internal/common"
	"type-analyzer/member"
)

// autogenerated is the file name the Go toolchain records for wrapper methods.
const autogenerated = "<autogenerated>"

// declaredMethods lists the exported methods of t in name order, skipping
// methods promoted from embedded fields.
func declaredMethods(t reflect.Type) []member.Method {
	if t.Kind() == reflect.Interface {
		out := make([]member.Method, 0, t.NumMethod())
		for i := range t.NumMethod() {
			m := t.Method(i)
			if !m.IsExported() {
				continue
			}
			out = append(out, newMethod(m, member.ReceiverInterface, 0))
		}

		return out
	}

	promoted := promotedNames(t)
	pt := reflect.PointerTo(t)
	out := make([]member.Method, 0, pt.NumMethod())
	for i := range pt.NumMethod() {
		m, recv := pt.Method(i), member.ReceiverPointer
		if vm, ok := t.MethodByName(m.Name); ok {
			m, recv = vm, member.ReceiverValue
		}

		if _, ok := promoted[m.Name]; ok && synthesized(m) {
			continue
		}

		// concrete method types carry the receiver as the first parameter
		out = append(out, newMethod(m, recv, 1))
	}

	return out
}

func newMethod(m reflect.Method, recv member.Receiver, skip int) member.Method {
	mt := m.Type

	return member.Method{
		Name:     m.Name,
		Receiver: recv,
		In:       common.Collect(mt.NumIn()-skip, func(i int) reflect.Type { return mt.In(i + skip) }),
		Out:      common.Collect(mt.NumOut(), mt.Out),
		Variadic: mt.IsVariadic(),
		Func:     m.Func,
	}
}

// promotedNames collects the names of methods that struct t inherits
// through its embedded fields.
func promotedNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{})
	if t.Kind() != reflect.Struct {
		return names
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}

		set := f.Type
		if set.Kind() != reflect.Pointer && set.Kind() != reflect.Interface {
			set = reflect.PointerTo(set)
		}
		for j := range set.NumMethod() {
			names[set.Method(j).Name] = struct{}{}
		}
	}

	return names
}

// synthesized reports whether the code behind m is a compiler-generated
// promotion wrapper. A method declared on the outer type that shadows an
// embedded one points at real source code.
func synthesized(m reflect.Method) bool {
	if !m.Func.IsValid() {
		return true
	}

	fn := runtime.FuncForPC(m.Func.Pointer())
	if fn == nil {
		return true
	}

	file, _ := fn.FileLine(fn.Entry())
	return file == autogenerated
}

// pairAccessors finds X()/SetX(v) pairs with matching types, ordered by name.
func pairAccessors(methods []member.Method) []member.Property {
	byName := make(map[string]member.Method, len(methods))
	for _, m := range methods {
		byName[m.Name] = m
	}

	var out []member.Property
	for _, setter := range methods {
		name, ok := strings.CutPrefix(setter.Name, "Set")
		if !ok || name == "" || len(setter.In) != 1 || len(setter.Out) != 0 || setter.Variadic {
			continue
		}

		getter, ok := byName[name]
		if !ok || len(getter.In) != 0 || len(getter.Out) != 1 || getter.Out[0] != setter.In[0] {
			continue
		}

		out = append(out, member.Property{
			Name:   name,
			Type:   getter.Out[0],
			Getter: getter,
			Setter: setter,
		})
	}

	slices.SortFunc(out, func(a, b member.Property) int {
		return strings.Compare(a.Name, b.Name)
	})

	if out == nil {
		return []member.Property{}
	}

	return out
}
