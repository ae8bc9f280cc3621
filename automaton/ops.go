// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"

	"github.com/katalvlaran/cfpq/matrix"
)

// adjacency returns the OR of every symbol matrix plus the identity.
func (a *Automaton[S]) adjacency() (*matrix.Bool, error) {
	acc, err := matrix.NewBoolIdentity(len(a.states))
	if err != nil {
		return nil, err
	}
	for _, sym := range a.Symbols() {
		if _, err = matrix.OrInPlace(acc, a.decomposition[sym]); err != nil {
			return nil, fmt.Errorf("automaton: adjacency %s: %w", sym, err)
		}
	}

	return acc, nil
}

// TransitiveClosure returns (∨ matrices ∨ I)^n: cell (i,j) is true iff state
// j is reachable from state i by any (possibly empty) symbol path.
//
// Squaring stops at the first fixpoint, which equals the n-th power since
// every simple path is shorter than n.
func (a *Automaton[S]) TransitiveClosure(opts ...matrix.Option) (*matrix.Bool, error) {
	adj, err := a.adjacency()
	if err != nil {
		return nil, err
	}

	return matrix.Closure(adj, opts...)
}

// IsEmpty reports whether no start state reaches a final state.
func (a *Automaton[S]) IsEmpty(opts ...matrix.Option) (bool, error) {
	cl, err := a.TransitiveClosure(opts...)
	if err != nil {
		return false, err
	}
	for i, s := range a.start {
		if !s {
			continue
		}
		for j, f := range a.final {
			if f && cl.Has(i, j) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Merge ORs delta into the matrix for sym and reports whether any cell
// changed. An absent symbol is created from a copy of delta.
//
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch.
func (a *Automaton[S]) Merge(sym Symbol, delta *matrix.Bool) (bool, error) {
	if delta == nil {
		return false, fmt.Errorf("automaton: Merge %s: %w", sym, matrix.ErrNilMatrix)
	}
	n := len(a.states)
	if delta.Rows() != n || delta.Cols() != n {
		return false, fmt.Errorf("automaton: Merge %s: %dx%d into %dx%d: %w",
			sym, delta.Rows(), delta.Cols(), n, n, ErrShapeMismatch)
	}
	cur, ok := a.decomposition[sym]
	if !ok {
		a.decomposition[sym] = delta.Clone()

		return !delta.IsZero(), nil
	}

	return matrix.OrInPlace(cur, delta)
}

// Intersect builds the synchronized product of x and y.
//
// State (p,q) has index idx(p)·|y|+idx(q). Start and final states are pairs
// of start and final states respectively. Only symbols present in both
// operands survive; their matrices are Kronecker products.
func Intersect[A, B comparable](x *Automaton[A], y *Automaton[B]) (*Automaton[Pair[A, B]], error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("automaton: Intersect: %w", ErrNilAutomaton)
	}
	nx, ny := len(x.states), len(y.states)
	p := &Automaton[Pair[A, B]]{
		states:        make([]Pair[A, B], nx*ny),
		start:         make([]bool, nx*ny),
		final:         make([]bool, nx*ny),
		decomposition: make(map[Symbol]*matrix.Bool),
	}
	for i, sx := range x.states {
		for j, sy := range y.states {
			k := i*ny + j
			p.states[k] = Pair[A, B]{First: sx, Second: sy}
			p.start[k] = x.start[i] && y.start[j]
			p.final[k] = x.final[i] && y.final[j]
		}
	}
	for sym, mx := range x.decomposition {
		my, ok := y.decomposition[sym]
		if !ok {
			continue
		}
		k, err := matrix.Kron(mx, my)
		if err != nil {
			return nil, fmt.Errorf("automaton: Intersect %s: %w", sym, err)
		}
		p.decomposition[sym] = k
	}

	return p, nil
}
