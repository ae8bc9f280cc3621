// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the product of a labeled
// core.Graph and a query automaton, answering regular path queries one
// start node at a time.
//
// What
//
//   - Explore product states (graph node, query state) in non-decreasing
//     path length from (start, q0) for every query start state q0.
//   - A graph node is reached when some product state over it carries a
//     final query state.
//   - Returns a BFSResult with the visit order, depths, parent links and
//     the reached nodes; PathTo rebuilds a shortest witness path.
//   - Supports OnVisit hooks, MaxDepth limiting and context cancellation.
//
// Why
//
//   - An independent cross-check for the tensor regular query: same
//     answers, no matrices.
//   - Witness paths explain why a pair is in the answer.
//
// Determinism
//
//	Successors are expanded by ascending label, then ascending node, then
//	ascending query state, so the visit order is reproducible.
//
// Complexity (V = |nodes|, E = |edges|, Q = |query states|)
//
//   - Time:   O((V + E)·Q) per start node
//   - Memory: O(V·Q)
package bfs
