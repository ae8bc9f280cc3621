// SPDX-License-Identifier: MIT

package reach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/cfpq/internal/ctxlog"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("reach: invalid option supplied")

// Option configures a solver run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Gather.
type Option func(*Options)

// Options holds the parameters shared by the solvers. A solver ignores
// the knobs it has no use for.
type Options struct {
	// Filter restricts answer endpoints.
	Filter Filter

	// Workers bounds goroutines for matrix products (1 = sequential).
	Workers int

	// Shuffle, if non-nil, randomizes GSS worklist pop order.
	Shuffle *rand.Rand

	// OnIteration observes each saturation round: the round number
	// (1-based), facts derived in it, and the running total.
	OnIteration func(iter, newFacts, totalFacts int)

	// MaxIterations caps saturation rounds; 0 selects the solver's bound.
	MaxIterations int

	// Logger overrides the logger carried by the context.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no filter, one worker, no shuffle,
// a no-op iteration hook and the solver-chosen iteration bound.
func DefaultOptions() Options {
	return Options{
		Workers:     1,
		OnIteration: func(int, int, int) {},
	}
}

// Gather applies opts over DefaultOptions and reports the first violation.
func Gather(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// LoggerFor returns the explicit logger, else the one carried by ctx.
func (o Options) LoggerFor(ctx context.Context) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return ctxlog.FromContext(ctx)
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithStartNodes restricts answers to pairs starting at ids.
func WithStartNodes(ids ...int) Option {
	return func(o *Options) { o.Filter.Start = append([]int(nil), ids...) }
}

// WithFinalNodes restricts answers to pairs ending at ids.
func WithFinalNodes(ids ...int) Option {
	return func(o *Options) { o.Filter.Final = append([]int(nil), ids...) }
}

// WithFilter replaces both subsets.
func WithFilter(f Filter) Option {
	return func(o *Options) {
		o.Filter = Filter{Start: append([]int(nil), f.Start...), Final: append([]int(nil), f.Final...)}
	}
}

// WithWorkers sets the product worker count; n < 1 is a violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("Workers must be >= 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithShuffle randomizes worklist order with rng; nil is a violation.
func WithShuffle(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.fail("Shuffle source is nil")
			return
		}
		o.Shuffle = rng
	}
}

// WithOnIteration registers a saturation-round callback.
func WithOnIteration(fn func(iter, newFacts, totalFacts int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithMaxIterations caps saturation rounds.
//
//	n > 0: at most n rounds
//	n == 0: solver default
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("MaxIterations cannot be negative (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger sets an explicit logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
