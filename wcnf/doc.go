// SPDX-License-Identifier: MIT

// Package wcnf holds context-free grammars already in weak Chomsky normal
// form (every production is A → ε, A → a or A → B C) and two baseline
// path-query algorithms over them:
//
//   - Hellings: a worklist over (A, u, v) facts joined on shared endpoints;
//   - Matrix: one boolean matrix per nonterminal, saturated with
//     M[A] |= M[B]·M[C] until nothing changes.
//
// Normalizing an arbitrary grammar is the caller's job; Validate rejects
// anything outside the weak normal form. ToRSM rewrites a grammar into an
// equivalent rsm.RSM so the same query can be cross-checked against the
// RSM solvers.
package wcnf
