// SPDX-License-Identifier: MIT

// Package tensor answers path queries by saturating a graph automaton with
// Kronecker products.
//
// Solve (context-free queries over an rsm.RSM):
//
//  1. Flatten the grammar into one automaton R and seed a graph automaton G
//     from the terminal-labeled edges.
//  2. Repeat: close P = G ⊗ R transitively; every marked (i, j) whose R
//     components are the start and a final sub-state of box B is the fact
//     "B derives some path gi → gj". New facts are OR-merged into
//     G[Nonterminal(B)], which makes the matching call edges of R
//     traversable in the next product.
//  3. Stop when a round adds nothing. The answer is G[Nonterminal(start)]
//     restricted to the start/final filters.
//
// The fact space is at most |nodes|²·|boxes|, so the loop runs at most that
// many productive rounds plus one. A closure pair joining the start of one
// box to a final of another can only come from a broken flattening and is
// reported as ErrBoxMismatch.
//
// SolveRegular is the single-closure special case for a finite automaton
// query (regular path query).
//
// Each run emits an OpenTelemetry span ("tensor.Solve", "tensor.SolveRegular")
// and updates the cfpq_tensor_* instruments.
package tensor
