package options

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"type-analyzer/internal/suggest"
)

// ErrUnknownCategory is returned when category text names no known category.
var ErrUnknownCategory = errors.New("options: unknown category")

// Category selects which member kinds of a type are analyzed.
// Values are independent bits and combine with bitwise or.
type Category int

const (
	CategoryConstructors Category = 1 << iota // constructor functions and the implicit zero value
	CategoryMethods                           // exported methods declared on the type
	CategoryProperties                        // exported X()/SetX() accessor pairs
	CategoryFields                            // exported fields declared on a struct

	CategoryAll  Category = (1 << iota) - 1 // all categories combined
	CategoryNone Category = 0               // no categories selected
)

var categoryNames = [...]struct {
	c    Category
	name string
}{
	{CategoryConstructors, "Constructors"},
	{CategoryMethods, "Methods"},
	{CategoryProperties, "Properties"},
	{CategoryFields, "Fields"},
}

// Union combines categories. An empty argument list yields CategoryNone.
func Union(cs ...Category) Category {
	var out Category
	for _, c := range cs {
		out |= c
	}

	return out
}

// Has reports whether any bit of other is set in c.
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// Valid reports whether c sets no bits outside CategoryAll.
func (c Category) Valid() bool {
	return c&^CategoryAll == 0
}

// Each yields every single-bit category set in c, in the order
// Constructors, Methods, Properties, Fields.
func (c Category) Each() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, n := range categoryNames {
			if c.Has(n.c) && !yield(n.c) {
				return
			}
		}
	}
}

// String returns "None", "All" or the set category names joined by "|".
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryAll:
		return "All"
	}

	parts := make([]string, 0, len(categoryNames))
	for _, n := range categoryNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if rest := c &^ CategoryAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("Category(%d)", int(rest)))
	}

	return strings.Join(parts, "|")
}

// ParseCategory parses case-insensitive category names separated by "|", ","
// or whitespace. "all" and "none" are accepted; an empty string is CategoryNone.
func ParseCategory(s string) (Category, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var out Category
	for _, f := range fields {
		c, ok := lookupCategory(f)
		if !ok {
			return CategoryNone, unknownCategory(f)
		}
		out |= c
	}

	return out, nil
}

func unknownCategory(name string) error {
	known := make([]string, 0, len(categoryNames))
	for _, n := range categoryNames {
		known = append(known, n.name)
	}

	if guess, ok := suggest.Closest(name, known); ok {
		return fmt.Errorf("%w: %q, did you mean %s?", ErrUnknownCategory, name, guess)
	}

	return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func lookupCategory(name string) (Category, bool) {
	switch {
	case strings.EqualFold(name, "all"):
		return CategoryAll, true
	case strings.EqualFold(name, "none"):
		return CategoryNone, true
	}

	for _, n := range categoryNames {
		if strings.EqualFold(name, n.name) {
			return n.c, true
		}
	}

	return CategoryNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
