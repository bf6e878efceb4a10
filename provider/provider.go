// Package provider lists the members of Go types using package reflect.
//
// Reflect is the member lookup backend used by the analyzer cache. Every
// call walks the type again; callers that need memoization go through
// analyzer.Analyzer.
//
// Visibility policy:
//   - only exported identifiers are listed;
//   - methods with value and pointer receivers are both listed (the method set of *T);
//   - only members declared on the type itself are listed: methods promoted from
//     embedded fields and fields reachable through embedding are skipped;
//   - accessor pairs X()/SetX(v) are reported as properties and not as methods.
package provider

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"type-analyzer/internal/common"
	"type-analyzer/member"
)

var (
	// ErrUnsupportedType is returned for kinds that carry no members worth listing.
	ErrUnsupportedType = errors.New("provider: unsupported type")
	// ErrInvalidConstructor is returned when a registered constructor has the wrong shape.
	ErrInvalidConstructor = errors.New("provider: invalid constructor")
)

// Reflect is a member lookup provider backed by package reflect.
// It is safe for concurrent use.
type Reflect struct {
	mu    sync.RWMutex
	ctors map[reflect.Type][]member.Constructor
}

// New creates a Reflect provider with an empty constructor registry.
func New() *Reflect {
	return &Reflect{
		ctors: make(map[reflect.Type][]member.Constructor),
	}
}

// Constructors returns the constructors registered for t, or the implicit
// zero-value constructor when none are registered. Interfaces have no
// implicit constructor.
func (p *Reflect) Constructors(t reflect.Type) ([]member.Constructor, error) {
	t, err := check(t)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	registered := p.ctors[t]
	out := make([]member.Constructor, len(registered))
	copy(out, registered)
	p.mu.RUnlock()

	if len(out) > 0 || t.Kind() == reflect.Interface {
		return out, nil
	}

	return append(out, member.Constructor{
		Name:           "new(" + common.TypeString(t) + ")",
		In:             []reflect.Type{},
		ReturnsPointer: true,
		Implicit:       true,
	}), nil
}

// Methods returns the exported methods declared on t, ordered by name.
// Promoted methods and property accessors are excluded.
func (p *Reflect) Methods(t reflect.Type) ([]member.Method, error) {
	t, err := check(t)
	if err != nil {
		return nil, err
	}

	declared := declaredMethods(t)
	accessors := make(map[string]struct{})
	for _, prop := range pairAccessors(declared) {
		accessors[prop.Getter.Name] = struct{}{}
		accessors[prop.Setter.Name] = struct{}{}
	}

	out := make([]member.Method, 0, len(declared))
	for _, m := range declared {
		if _, ok := accessors[m.Name]; ok {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

// Properties returns the accessor pairs X()/SetX(v) declared on t, ordered by name.
func (p *Reflect) Properties(t reflect.Type) ([]member.Property, error) {
	t, err := check(t)
	if err != nil {
		return nil, err
	}

	return pairAccessors(declaredMethods(t)), nil
}

// Fields returns the exported fields declared on struct type t in declaration
// order. Non-struct types have no fields.
func (p *Reflect) Fields(t reflect.Type) ([]member.Field, error) {
	t, err := check(t)
	if err != nil {
		return nil, err
	}

	if t.Kind() != reflect.Struct {
		return []member.Field{}, nil
	}

	out := make([]member.Field, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		out = append(out, member.Field{
			Name:     f.Name,
			Type:     f.Type,
			Tag:      f.Tag,
			Embedded: f.Anonymous,
			Index:    i,
			Offset:   f.Offset,
		})
	}

	return out, nil
}

// check strips unnamed pointers and rejects kinds the provider cannot describe.
func check(t reflect.Type) (reflect.Type, error) {
	t = common.Base(t)
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupportedType)
	}

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %s is a %s", ErrUnsupportedType, t, t.Kind())
	default:
		return t, nil
	}
}
