package dfa

import (
	"io"
	"log/slog"
)

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures an Automaton.
type Option func(*options)

// WithLogger sets the logger used by Prune and Minimize. Simulation never
// logs. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity sizes the initial lookup table of the transition relation.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:   newNopLogger(),
		capacity: -1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
