// SPDX-License-Identifier: MIT

// Package reach holds the vocabulary shared by every path-query solver:
// result pairs and pair sets, start/final node filters, and the functional
// options the solvers accept.
//
// Filters follow one rule everywhere: an empty subset means "all nodes", and
// an id absent from the graph contributes nothing (it is not an error).
//
// Options follow the bfs package pattern: constructors never fail, invalid
// values are recorded and surfaced as ErrOptionViolation by Gather.
package reach
