// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory labeled graph consumed by
// every path-query algorithm in this module.
//
// The Graph G = (V,E) is fixed to the shape CFPQ needs:
//
//   - Nodes are non-negative integers (−1 is reserved for solver sentinels).
//   - Edges are directed; parallel edges and self-loops are always permitted.
//   - Each edge carries an optional terminal label; the empty label marks an
//     unlabeled edge, which all solvers ignore.
//   - Separate sync.RWMutex locks guard the node catalog (muNodes) and the
//     edge catalog + labeled adjacency (muEdgeAdj).
//
// Deterministic iteration:
//
//	Nodes()      ascending node ids
//	Edges()      insertion order
//	Labels()     ascending labels (unlabeled edges excluded)
//	Successors() ascending ids, deduplicated
//
// Configuration Options (GraphOption):
//
//	– WithDedupEdges()
//	    Collapse parallel edges with the same (from, to, label) triple.
//	    Without it, every AddEdge call appends a new edge.
//
// Core Methods:
//
//	AddNode(id int) error                           // O(1)
//	HasNode(id int) bool                            // O(1)
//	AddEdge(from, to int, label string) error       // O(1) amortized
//	Successors(id int, label string) []int          // O(d log d)
//	LabeledAdjacency() map[int]map[string][]int     // O(V + E log E)
//	Clone() *Graph                                  // O(V + E)
//
// Errors:
//
//	ErrNegativeNodeID  - node id < 0.
//	ErrNodeNotFound    - requested node does not exist.
package core
