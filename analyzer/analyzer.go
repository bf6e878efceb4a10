package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"type-analyzer/internal/common"
	"type-analyzer/member"
	"type-analyzer/options"
)

// ErrInvalidArgument is returned when Analyze is called with a nil type or
// with category bits outside options.CategoryAll.
var ErrInvalidArgument = errors.New("analyzer: invalid argument")

// Provider performs the uncached member lookups for one type and category.
//
// Implementations must be deterministic for a given type, return empty
// (not nil) slices when a type has no members of a category, and must not
// call back into the Analyzer.
type Provider interface {
	Constructors(t reflect.Type) ([]member.Constructor, error)
	Methods(t reflect.Type) ([]member.Method, error)
	Properties(t reflect.Type) ([]member.Property, error)
	Fields(t reflect.Type) ([]member.Field, error)
}

// Analyzer caches member metadata per type.
type Analyzer struct {
	provider Provider
	logger   *slog.Logger
	capacity int

	// inflight is held shared by every Analyze call and exclusively by ClearCache.
	inflight sync.RWMutex

	mu      sync.RWMutex
	entries map[reflect.Type]*Result
}

// New creates an Analyzer with an empty cache.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		capacity: DefaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.provider == nil {
		a.provider = defaultProvider()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	a.entries = make(map[reflect.Type]*Result, a.capacity)

	return a
}

// Analyze returns the cached Result for t after populating every requested
// category that is still missing. No categories means options.CategoryAll;
// several are combined.
//
// Unnamed pointer types share the entry of their element type. Calls for the
// same type always return the same *Result. If the provider fails, the error
// is returned, the failing category and the ones after it stay unpopulated,
// and a later call retries them.
func (a *Analyzer) Analyze(t reflect.Type, categories ...options.Category) (*Result, error) {
	want, err := decode(t, categories)
	if err != nil {
		return nil, err
	}

	a.inflight.RLock()
	defer a.inflight.RUnlock()

	r := a.entry(common.Base(t))
	if err := r.populate(a.provider, want, a.logger); err != nil {
		return nil, err
	}

	return r, nil
}

// Of is Analyze for the type parameter T.
func Of[T any](a *Analyzer, categories ...options.Category) (*Result, error) {
	return a.Analyze(reflect.TypeFor[T](), categories...)
}

// ClearCache drops every cached Result. Later calls to Analyze start from
// fresh, empty results.
func (a *Analyzer) ClearCache() {
	a.inflight.Lock()
	defer a.inflight.Unlock()

	a.mu.Lock()
	n := len(a.entries)
	a.entries = make(map[reflect.Type]*Result, a.capacity)
	a.mu.Unlock()

	a.logger.Debug("analyzer: cache cleared", slog.Int("entries", n))
}

// Len returns the number of cached types.
func (a *Analyzer) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Warm analyzes types concurrently, at most GOMAXPROCS at a time, and returns
// the first error. Types not yet started when ctx is done are skipped.
func (a *Analyzer) Warm(ctx context.Context, categories options.Category, types ...reflect.Type) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, t := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := a.Analyze(t, categories)
			return err
		})
	}

	return g.Wait()
}

func (a *Analyzer) entry(t reflect.Type) *Result {
	a.mu.RLock()
	r, ok := a.entries[t]
	a.mu.RUnlock()
	if ok {
		return r
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if r, ok := a.entries[t]; ok {
		return r
	}

	r = newResult(t)
	a.entries[t] = r
	a.logger.Debug("analyzer: entry created", slog.String("type", r.ID().String()))

	return r
}

func decode(t reflect.Type, categories []options.Category) (options.Category, error) {
	if t == nil {
		return options.CategoryNone, fmt.Errorf("%w: nil reflect.Type", ErrInvalidArgument)
	}

	want := options.CategoryAll
	if len(categories) > 0 {
		want = options.Union(categories...)
	}
	if !want.Valid() {
		return options.CategoryNone, fmt.Errorf("%w: unknown category bits in %s", ErrInvalidArgument, want)
	}

	return want, nil
}
