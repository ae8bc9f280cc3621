// SPDX-License-Identifier: MIT

// Package automaton implements the boolean-matrix automaton model used by
// the reachability solvers.
//
// An Automaton[S] numbers its states 0..n-1 (a bijection with S), keeps a
// start set and a final set, and stores one n×n matrix.Bool per Symbol:
// cell (i,j) is true iff a symbol-labeled edge goes from state i to state j.
// All matrices share the same dimensions.
//
// Symbols are tagged: Terminal("a") and Nonterminal("S") never collide, so a
// grammar that names a box after one of its own terminals stays unambiguous.
//
// Operations:
//
//   - Accepts(word): frontier simulation over the decomposition.
//   - TransitiveClosure: (∨ matrices ∨ I)^n, the reflexive-transitive
//     reachability relation between states.
//   - IsEmpty: no start state reaches a final state.
//   - Intersect(A, B): synchronized product; state (a,b) has index
//     idA·|B|+idB, and per-symbol matrices are Kronecker products.
//   - Merge: OR-folds an accumulator matrix into one symbol. It is the only
//     mutation and is meant to run between closures, never during one.
//   - FromGraph: seeds an automaton from a labeled core.Graph.
package automaton
