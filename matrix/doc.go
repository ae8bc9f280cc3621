// SPDX-License-Identifier: MIT

// Package matrix provides boolean matrices over the Boolean semiring
// (OR as +, AND as ×) used to encode per-symbol transition relations.
//
// The package provides:
//
//   - Bool: a rows×cols bit matrix in row-major []uint64 words with safe
//     accessors (At/Set return ErrOutOfRange instead of panicking).
//   - Element-wise kernels: Or, OrInPlace, AndNot.
//   - Products: Mul (boolean matrix product, row-parallel via errgroup),
//     Kron (Kronecker product), Power (repeated squaring).
//
// Determinism:
//
//   - Each/NonZero enumerate set cells in row-major order.
//   - Parallel Mul partitions rows into disjoint chunks; every output row is
//     written by exactly one worker, so results never depend on scheduling.
//
// Complexity quicksheet (n = rows = cols, w = ⌈n/64⌉):
//
//	NewBool O(n·w) | At/Set O(1) | Or O(n·w) | Mul O(n²·w) | Kron O(nnz(a)·nnz(b))
package matrix
