// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrQueryNil is returned if a nil query automaton is passed.
	ErrQueryNil = errors.New("bfs: query automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a product state. If it returns an
	// error, BFS aborts and propagates that error.
	OnVisit func(st ProductState, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(ProductState, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(st ProductState, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// ProductState is a (graph node, query state index) pair.
type ProductState struct {
	Node  int
	State int
}

// step is the BFS tree edge into a product state.
type step struct {
	from  ProductState
	label string
}

// BFSResult holds the outcome of one product traversal:
//   - Order: product states in visit sequence.
//   - Depth: product state → path length from the start.
//   - Reached: graph nodes reached in a final query state, ascending.
type BFSResult struct {
	Order   []ProductState
	Depth   map[ProductState]int
	Reached []int

	parent  map[ProductState]step
	witness map[int]ProductState
}

// Witness is a labeled path.
type Witness struct {
	Nodes  []int
	Labels []string
}

// PathTo reconstructs a shortest witness path from the start to node.
// Returns an error if node was not reached.
func (r *BFSResult) PathTo(node int) (Witness, error) {
	end, ok := r.witness[node]
	if !ok {
		return Witness{}, fmt.Errorf("bfs: no accepted path to %d", node)
	}
	var w Witness
	for cur := end; ; {
		w.Nodes = append(w.Nodes, cur.Node)
		st, ok := r.parent[cur]
		if !ok {
			break
		}
		w.Labels = append(w.Labels, st.label)
		cur = st.from
	}
	for i, j := 0, len(w.Nodes)-1; i < j; i, j = i+1, j-1 {
		w.Nodes[i], w.Nodes[j] = w.Nodes[j], w.Nodes[i]
	}
	for i, j := 0, len(w.Labels)-1; i < j; i, j = i+1, j-1 {
		w.Labels[i], w.Labels[j] = w.Labels[j], w.Labels[i]
	}

	return w, nil
}
