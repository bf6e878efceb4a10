package main

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"sync"

	"type-analyzer/provider"
)

// Example is the default sample: one field, one property, one method and a
// registered constructor.
type Example struct {
	Value int
	name  string
}

func NewExample() *Example { return &Example{} }

func (e *Example) Name() string     { return e.name }
func (e *Example) SetName(n string) { e.name = n }
func (e *Example) DoSomething()     {}

// Counter embeds a mutex; Lock and Unlock are promoted and not listed.
type Counter struct {
	sync.Mutex
	Hits  int64 `json:"hits" yaml:"hits"`
	Label string
}

func NewCounter(label string) *Counter { return &Counter{Label: label} }

func (c *Counter) Inc() int64 {
	c.Lock()
	defer c.Unlock()
	c.Hits++
	return c.Hits
}

// Celsius is a named non-struct type with value receiver methods.
type Celsius float64

func ParseCelsius(f float64) (Celsius, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("celsius: NaN")
	}
	return Celsius(f), nil
}

func (c Celsius) Fahrenheit() float64 { return float64(c)*9/5 + 32 }
func (c Celsius) String() string      { return fmt.Sprintf("%.1f°C", float64(c)) }

// Shape is an interface sample: interfaces have methods and properties but no
// constructors or fields.
type Shape interface {
	Area() float64
	Name() string
	SetName(string)
}

type sample struct {
	typ   reflect.Type
	ctors []any
}

var catalog = map[string]sample{
	"Example": {typ: reflect.TypeFor[Example](), ctors: []any{NewExample}},
	"Counter": {typ: reflect.TypeFor[Counter](), ctors: []any{NewCounter}},
	"Celsius": {typ: reflect.TypeFor[Celsius](), ctors: []any{ParseCelsius}},
	"Shape":   {typ: reflect.TypeFor[Shape]()},
}

// sampleNames returns the catalog keys in sorted order.
func sampleNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// newProvider registers the constructors of every sample.
func newProvider() (*provider.Reflect, error) {
	p := provider.New()
	for _, name := range sampleNames() {
		for _, fn := range catalog[name].ctors {
			if err := p.RegisterConstructor(fn); err != nil {
				return nil, fmt.Errorf("sample %s: %w", name, err)
			}
		}
	}

	return p, nil
}
