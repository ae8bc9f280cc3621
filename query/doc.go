// SPDX-License-Identifier: MIT

// Package query dispatches a loaded document to a named solver and compares
// solvers against each other.
//
// Algorithms:
//
//   - gll:      GSS reachability over the RSM (grammar or converted cfg)
//   - tensor:   Kronecker-product saturation over the RSM
//   - hellings: worklist baseline over the cfg section
//   - matrix:   boolean matrix baseline over the cfg section
//   - rpq:      one-closure regular query, for call-free grammars
//   - bfs:      product BFS regular query, for call-free grammars
//
// Applicable lists the algorithms a document supports; Compare runs all of
// them concurrently and reports ErrDisagreement when answers differ.
package query
