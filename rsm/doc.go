// SPDX-License-Identifier: MIT

// Package rsm models grammars as recursive state machines: a set of named
// boxes, each a deterministic automaton whose edges are either terminals
// (consume one graph label) or calls (run another box to completion).
//
// An RSM is assembled with a Builder and validated once by Build; a
// malformed grammar never reaches a solver. Two read-only views serve the
// solvers:
//
//   - Table: per-State terminal moves, calls resolved to
//     (callee entry, return state), and finality. The GSS solver walks it.
//   - Flatten: one automaton.Automaton[State] holding every box, with call
//     edges tagged automaton.Nonterminal(callee) from the call sub-state to
//     the return sub-state. The tensor solver intersects it with the graph.
//
// Example (balanced brackets, S → a S b | ε):
//
//	b := rsm.NewBuilder("S")
//	b.Box("S", "0").Final("0", "3").
//		Terminal("0", "a", "1").
//		Call("1", "S", "2").
//		Terminal("2", "b", "3")
//	grammar, err := b.Build()
package rsm
