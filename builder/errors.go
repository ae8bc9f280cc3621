// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyAlphabet indicates a constructor that needs at least one label
// received none, or received an empty label.
var ErrEmptyAlphabet = errors.New("builder: empty label alphabet")

// ErrConstructFailed indicates a nil constructor or an unrecoverable
// failure while adding nodes or edges.
var ErrConstructFailed = errors.New("builder: construction failed")
