package analyzer

import (
	"log/slog"

	"type-analyzer/provider"
)

// DefaultInitialCapacity is the size hint of a new cache.
const DefaultInitialCapacity = 100

// Option configures an Analyzer during construction.
type Option func(*Analyzer)

// WithProvider sets the member lookup provider. A nil provider keeps the default.
func WithProvider(p Provider) Option {
	return func(a *Analyzer) {
		if p != nil {
			a.provider = p
		}
	}
}

// WithLogger sets the logger used for debug events. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithInitialCapacity sets the size hint of the cache map.
// A negative value resets to DefaultInitialCapacity.
func WithInitialCapacity(n int) Option {
	return func(a *Analyzer) {
		if n < 0 {
			a.capacity = DefaultInitialCapacity
			return
		}
		a.capacity = n
	}
}

func defaultProvider() Provider {
	return provider.New()
}
