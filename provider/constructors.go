package provider

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"type-analyzer/internal/common"
	"type-analyzer/member"
)

var errorType = reflect.TypeFor[error]()

// RegisterConstructor records fn as a constructor of the type it returns.
// fn must be a function returning T or *T, optionally followed by an error.
// Results that were already analyzed for T do not pick up later registrations.
func (p *Reflect) RegisterConstructor(fn any) error {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("%w: %T is not a function", ErrInvalidConstructor, fn)
	}

	ft := v.Type()
	outs := common.Collect(ft.NumOut(), ft.Out)
	first, ok := common.First(outs)
	if !ok {
		return fmt.Errorf("%w: %s returns nothing", ErrInvalidConstructor, ft)
	}
	if len(outs) > 2 || (len(outs) == 2 && outs[1] != errorType) {
		return fmt.Errorf("%w: %s must return T or (T, error)", ErrInvalidConstructor, ft)
	}

	target := common.Base(first)
	if target != first && target != first.Elem() {
		return fmt.Errorf("%w: %s returns a pointer to pointer", ErrInvalidConstructor, ft)
	}
	if _, err := check(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConstructor, err)
	}

	c := member.Constructor{
		Name:           funcName(v),
		Func:           v,
		In:             common.Collect(ft.NumIn(), ft.In),
		Variadic:       ft.IsVariadic(),
		ReturnsPointer: target != first,
		ReturnsError:   len(outs) == 2,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctors[target] = append(p.ctors[target], c)

	return nil
}

// funcName returns the unqualified name of the function behind v,
// e.g. "NewOrder" for "example.com/store.NewOrder".
func funcName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return v.Type().String()
	}

	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if _, after, ok := strings.Cut(name, "."); ok {
		return after
	}

	return name
}
