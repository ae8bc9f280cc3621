// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node/Edge/Graph declarations, options, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a node id below zero was supplied.
	// Negative ids are reserved for solver-internal sentinels.
	ErrNegativeNodeID = errors.New("core: node id must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is a directed, optionally labeled connection between two nodes.
//
// An empty Label marks an unlabeled edge. Unlabeled edges are stored and
// reported by Edges(), but never contribute to path words.
type Edge struct {
	// From is the source node id.
	From int

	// To is the destination node id.
	To int

	// Label is the terminal symbol carried by this edge ("" = unlabeled).
	Label string
}

// Labeled reports whether the edge carries a terminal label.
func (e Edge) Labeled() bool { return e.Label != "" }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDedupEdges collapses parallel edges that share (from, to, label).
func WithDedupEdges() GraphOption {
	return func(g *Graph) { g.dedup = true }
}

// Graph is the labeled directed multigraph.
//
// muNodes protects the nodes set; muEdgeAdj protects edges and adjacency.
// Lock order, when both are needed: muNodes before muEdgeAdj.
type Graph struct {
	muNodes   sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	dedup bool // collapse identical (from, to, label) triples

	nodes map[int]struct{}
	edges []Edge

	// adjacency[from][label][to] = multiplicity
	adjacency map[int]map[string]map[int]int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]struct{}),
		edges:     make([]Edge, 0),
		adjacency: make(map[int]map[string]map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount      int
	EdgeCount      int
	LabeledEdges   int
	UnlabeledEdges int
	LabelCount     int
	DedupEdges     bool
}
