// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/cfpq/matrix"
)

// Automaton is a finite automaton in boolean-matrix form.
//
// states[i] is the state with index i; index is built lazily for product
// automata, whose state sets can be large and are mostly addressed by index.
type Automaton[S comparable] struct {
	states []S

	indexOnce sync.Once
	index     map[S]int

	start []bool
	final []bool

	decomposition map[Symbol]*matrix.Bool
}

// New builds an automaton over states. Duplicate states are merged in
// first-occurrence order, which fixes the state↔index bijection.
//
// Errors: ErrUnknownState (wrapped with the offending role) when a start,
// final or transition endpoint is not in states.
func New[S comparable](states, start, final []S, transitions []Transition[S]) (*Automaton[S], error) {
	a := &Automaton[S]{
		states:        make([]S, 0, len(states)),
		index:         make(map[S]int, len(states)),
		decomposition: make(map[Symbol]*matrix.Bool),
	}
	a.indexOnce.Do(func() {}) // index is filled below
	for _, s := range states {
		if _, ok := a.index[s]; ok {
			continue
		}
		a.index[s] = len(a.states)
		a.states = append(a.states, s)
	}
	n := len(a.states)
	a.start = make([]bool, n)
	a.final = make([]bool, n)

	for _, s := range start {
		i, ok := a.index[s]
		if !ok {
			return nil, fmt.Errorf("automaton: start %v: %w", s, ErrUnknownState)
		}
		a.start[i] = true
	}
	for _, s := range final {
		i, ok := a.index[s]
		if !ok {
			return nil, fmt.Errorf("automaton: final %v: %w", s, ErrUnknownState)
		}
		a.final[i] = true
	}
	for _, t := range transitions {
		from, okFrom := a.index[t.From]
		to, okTo := a.index[t.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("automaton: transition %v -%s-> %v: %w", t.From, t.Symbol, t.To, ErrUnknownState)
		}
		m, err := a.matrixFor(t.Symbol)
		if err != nil {
			return nil, err
		}
		if err = m.Set(from, to, true); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// matrixFor returns the symbol matrix, allocating an empty one if absent.
func (a *Automaton[S]) matrixFor(sym Symbol) (*matrix.Bool, error) {
	if m, ok := a.decomposition[sym]; ok {
		return m, nil
	}
	m, err := matrix.NewBool(len(a.states), len(a.states))
	if err != nil {
		return nil, err
	}
	a.decomposition[sym] = m

	return m, nil
}

// NumberOfStates returns n.
func (a *Automaton[S]) NumberOfStates() int { return len(a.states) }

// Index returns the index of s.
func (a *Automaton[S]) Index(s S) (int, bool) {
	a.indexOnce.Do(func() {
		a.index = make(map[S]int, len(a.states))
		for i, st := range a.states {
			a.index[st] = i
		}
	})
	i, ok := a.index[s]

	return i, ok
}

// StateAt returns the state with index i.
func (a *Automaton[S]) StateAt(i int) (S, error) {
	if i < 0 || i >= len(a.states) {
		var zero S
		return zero, fmt.Errorf("automaton: StateAt(%d): %w", i, ErrStateIndex)
	}

	return a.states[i], nil
}

// States returns all states in index order.
func (a *Automaton[S]) States() []S {
	out := make([]S, len(a.states))
	copy(out, a.states)

	return out
}

// IsStart reports whether index i is a start state.
func (a *Automaton[S]) IsStart(i int) bool { return i >= 0 && i < len(a.start) && a.start[i] }

// IsFinal reports whether index i is a final state.
func (a *Automaton[S]) IsFinal(i int) bool { return i >= 0 && i < len(a.final) && a.final[i] }

// StartStates returns start states in index order.
func (a *Automaton[S]) StartStates() []S { return a.pick(a.start) }

// FinalStates returns final states in index order.
func (a *Automaton[S]) FinalStates() []S { return a.pick(a.final) }

func (a *Automaton[S]) pick(mask []bool) []S {
	out := make([]S, 0)
	for i, ok := range mask {
		if ok {
			out = append(out, a.states[i])
		}
	}

	return out
}

// Symbols returns the symbols of the decomposition, terminals first, then by label.
func (a *Automaton[S]) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.decomposition))
	for sym := range a.decomposition {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Matrix returns the matrix for sym, or nil if the symbol is absent.
// The returned matrix is shared; callers must not modify it.
func (a *Automaton[S]) Matrix(sym Symbol) *matrix.Bool { return a.decomposition[sym] }

// Decomposition returns a shallow copy of the symbol→matrix table.
// The matrices are shared; callers must not modify them.
func (a *Automaton[S]) Decomposition() map[Symbol]*matrix.Bool {
	out := make(map[Symbol]*matrix.Bool, len(a.decomposition))
	for k, v := range a.decomposition {
		out[k] = v
	}

	return out
}

// Accepts reports whether word is in the language of a.
//
// The frontier starts at the start states and is replaced, per letter, by
// the one-step successors under that letter. A letter absent from the
// decomposition rejects immediately. The word is accepted iff the final
// frontier meets the final set.
func (a *Automaton[S]) Accepts(word []Symbol) bool {
	n := len(a.states)
	frontier := make([]bool, n)
	copy(frontier, a.start)

	for _, letter := range word {
		m, ok := a.decomposition[letter]
		if !ok {
			return false
		}
		next := make([]bool, n)
		moved := false
		m.Each(func(i, j int) {
			if frontier[i] {
				next[j] = true
				moved = true
			}
		})
		if !moved {
			return false
		}
		frontier = next
	}

	for i, in := range frontier {
		if in && a.final[i] {
			return true
		}
	}

	return false
}
