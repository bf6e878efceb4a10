package analyzer

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"type-analyzer/member"
	"type-analyzer/options"
)

// Member is implemented by the member record types. Clone must return a
// value that shares no mutable state with the receiver.
type Member[M any] interface {
	Clone() M
}

// Members is an immutable, ordered list of members of one category.
// Every accessor hands out clones, so callers cannot alter the cached list.
type Members[M Member[M]] struct {
	items []M
}

// Len returns the number of members.
func (m *Members[M]) Len() int {
	return len(m.items)
}

// At returns a copy of the i-th member.
func (m *Members[M]) At(i int) M {
	return m.items[i].Clone()
}

// All iterates over copies of the members in order.
func (m *Members[M]) All() iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		for i, item := range m.items {
			if !yield(i, item.Clone()) {
				return
			}
		}
	}
}

// Slice returns a deep copy of the members.
func (m *Members[M]) Slice() []M {
	out := make([]M, len(m.items))
	for i, item := range m.items {
		out[i] = item.Clone()
	}
	return out
}

// slot is either empty or holds the published members of one category.
type slot[M Member[M]] struct {
	list atomic.Pointer[Members[M]]
}

func (s *slot[M]) get() (*Members[M], bool) {
	l := s.list.Load()
	return l, l != nil
}

func (s *slot[M]) populated() bool {
	return s.list.Load() != nil
}

// fill runs lookup and publishes its result unless s is already populated.
// Callers hold the owning Result's mutex.
func fill[M Member[M]](s *slot[M], t reflect.Type, lookup func(reflect.Type) ([]M, error)) (n int, filled bool, err error) {
	if s.populated() {
		return 0, false, nil
	}

	items, err := lookup(t)
	if err != nil {
		return 0, false, err
	}
	s.list.Store(&Members[M]{items: items})

	return len(items), true, nil
}

// Result is the cached analysis of one type. Each category is either absent
// or populated; a populated category never changes.
type Result struct {
	typ reflect.Type

	// mu serializes population; readers go through the atomic slots.
	mu           sync.Mutex
	constructors slot[member.Constructor]
	methods      slot[member.Method]
	properties   slot[member.Property]
	fields       slot[member.Field]
}

func newResult(t reflect.Type) *Result {
	return &Result{typ: t}
}

// Type returns the analyzed type. Unnamed pointer types are normalized to
// their element type, so a Result requested for *T reports T.
func (r *Result) Type() reflect.Type {
	return r.typ
}

// ID returns the analyzed type's identifier.
func (r *Result) ID() member.TypeID {
	return member.TypeIDOf(r.typ)
}

// Constructors returns the constructors and true, or false if the category
// was never populated.
func (r *Result) Constructors() (*Members[member.Constructor], bool) {
	return r.constructors.get()
}

// Methods returns the methods and true, or false if the category was never
// populated.
func (r *Result) Methods() (*Members[member.Method], bool) {
	return r.methods.get()
}

// Properties returns the properties and true, or false if the category was
// never populated.
func (r *Result) Properties() (*Members[member.Property], bool) {
	return r.properties.get()
}

// Fields returns the fields and true, or false if the category was never
// populated.
func (r *Result) Fields() (*Members[member.Field], bool) {
	return r.fields.get()
}

// Populated returns the categories that hold members.
func (r *Result) Populated() options.Category {
	var c options.Category
	if r.constructors.populated() {
		c |= options.CategoryConstructors
	}
	if r.methods.populated() {
		c |= options.CategoryMethods
	}
	if r.properties.populated() {
		c |= options.CategoryProperties
	}
	if r.fields.populated() {
		c |= options.CategoryFields
	}

	return c
}

// populate fills the requested categories that are still absent, in the order
// of options.Category.Each, and stops at the first provider error.
func (r *Result) populate(p Provider, want options.Category, logger *slog.Logger) error {
	if want&^r.Populated() == options.CategoryNone {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for c := range want.Each() {
		var (
			n      int
			filled bool
			err    error
		)

		switch c {
		case options.CategoryConstructors:
			n, filled, err = fill(&r.constructors, r.typ, p.Constructors)
		case options.CategoryMethods:
			n, filled, err = fill(&r.methods, r.typ, p.Methods)
		case options.CategoryProperties:
			n, filled, err = fill(&r.properties, r.typ, p.Properties)
		case options.CategoryFields:
			n, filled, err = fill(&r.fields, r.typ, p.Fields)
		}

		if err != nil {
			logger.Debug("analyzer: lookup failed",
				slog.String("type", r.ID().String()),
				slog.String("category", c.String()),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("analyzer: %s of %s: %w", c, r.ID(), err)
		}
		if filled {
			logger.Debug("analyzer: category populated",
				slog.String("type", r.ID().String()),
				slog.String("category", c.String()),
				slog.Int("members", n),
			)
		}
	}

	return nil
}
