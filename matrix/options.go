// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for product kernels.
//
// Design goals:
//   - Deterministic behavior: worker count changes scheduling, never results.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

// DefaultWorkers runs products on the calling goroutine.
const DefaultWorkers = 1

// parallelRowThreshold is the minimum row count that engages the worker pool.
// Narrow products stay sequential for cache locality.
const parallelRowThreshold = 32

const panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options holds kernel knobs resolved from Option values.
type Options struct {
	workers int
}

// WithWorkers bounds the number of goroutines used by Mul/Power.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
