// SPDX-License-Identifier: MIT

// Package gll answers context-free path queries with a descriptor worklist
// over a graph-structured stack (GSS), in the style of generalized LL
// parsing run directly on the graph.
//
// A descriptor (node, state, pos) reads: "at grammar position state and
// graph position pos, resume GSS node when this box finishes". A GSS node
// (state, pos) stands for one box invocation entered at pos; it keeps
//
//   - references: return state → callers waiting to resume there;
//   - popSet: graph positions at which the invocation already finished.
//
// Each dequeued descriptor dispatches on the moves of its state:
//
//   - terminal: follow every matching graph edge;
//   - call: register the caller on the callee node, replay its popSet if
//     the reference is new, and enter the callee;
//   - pop (final states only): record pos in popSet once and resume every
//     registered caller.
//
// A continuation that resumes the accept node records (start, pos) instead
// of enqueuing work. Every descriptor is processed at most once, so a run
// drains in polynomial time; the answer is independent of queue order.
//
// A Session holds the immutable tables derived from a graph and a grammar.
// Each Run works on a fresh arena, so runs on one Session, or on different
// Sessions, may execute concurrently.
package gll
