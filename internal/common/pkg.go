package common

import "reflect"

// TypeString renders t the way Go source spells it, qualified by package
// name rather than import path, e.g. "*store.Order", "[]main.Item",
// "yaml.Node" for gopkg.in/yaml.v3.
func TypeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// Base strips unnamed pointer layers: *T and **T yield T.
// Named pointer types are kept as they are.
func Base(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	return t
}
