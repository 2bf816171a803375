// Package path option plumbing and error definitions.
package path

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for path search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("path: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("path: invalid option supplied")
)

// Option configures LongestShortest via functional arguments.
// An invalid Option (e.g. negative worker count) is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters for LongestShortest.
type Options struct {
	// Ctx allows cancellation and deadlines between per-target searches.
	Ctx context.Context

	// Workers bounds the parallel worker pool.
	// A value of 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers == 0 (GOMAXPROCS-bound pool)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the worker pool for LongestShortest.
//
//	n > 0: exactly n workers
//	n == 0: explicit default (GOMAXPROCS)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// poolSize resolves the effective worker count.
func (o *Options) poolSize() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}
