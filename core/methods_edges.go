// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & labeled adjacency queries.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Successors()/LabeledAdjacency() return ascending, deduplicated ids.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; endpoints registered via AddNode first.

package core

import (
	"fmt"
	"sort"
)

// AddEdge appends a directed edge from→to carrying label ("" = unlabeled).
//
// Steps:
//  1. Ensure both endpoints via AddNode (rejects negative ids).
//  2. Lock muEdgeAdj; with WithDedupEdges, skip an existing identical triple.
//  3. Append to the edge catalog and bump adjacency multiplicity.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, label string) error {
	if err := g.AddNode(from); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	if err := g.AddNode(to); err != nil {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	byLabel, ok := g.adjacency[from]
	if !ok {
		byLabel = make(map[string]map[int]int)
		g.adjacency[from] = byLabel
	}
	targets, ok := byLabel[label]
	if !ok {
		targets = make(map[int]int)
		byLabel[label] = targets
	}
	if g.dedup && targets[to] > 0 {
		return nil
	}
	targets[to]++
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label})

	return nil
}

// HasEdge reports whether at least one from→to edge carries label.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int, label string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.adjacency[from][label][to] > 0
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of stored edges, labeled or not.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Labels returns the distinct non-empty labels in ascending order.
// Complexity: O(E + L log L).
func (g *Graph) Labels() []string {
	g.muEdgeAdj.RLock()
	seen := make(map[string]struct{})
	for _, byLabel := range g.adjacency {
		for label := range byLabel {
			if label != "" {
				seen[label] = struct{}{}
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}

// Successors returns the distinct targets of label-edges leaving id, ascending.
// An unknown id yields an empty slice, not an error.
func (g *Graph) Successors(id int, label string) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.adjacency[id][label])
}

// LabeledAdjacency snapshots node → label → sorted successors for every node.
// Nodes without outgoing labeled edges map to an empty (non-nil) inner map;
// unlabeled edges are dropped.
//
// Complexity: O(V + E log E).
func (g *Graph) LabeledAdjacency() map[int]map[string][]int {
	nodes := g.Nodes()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[int]map[string][]int, len(nodes))
	for _, id := range nodes {
		inner := make(map[string][]int)
		for label, targets := range g.adjacency[id] {
			if label == "" {
				continue
			}
			inner[label] = sortedKeys(targets)
		}
		out[id] = inner
	}

	return out
}

// Stats produces a read-only snapshot of the catalog sizes.
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{NodeCount: g.NodeCount(), DedupEdges: g.dedup}

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Labeled() {
			stats.LabeledEdges++
		} else {
			stats.UnlabeledEdges++
		}
	}
	g.muEdgeAdj.RUnlock()
	stats.LabelCount = len(g.Labels())

	return &stats
}

// Clone returns a deep copy: options, nodes, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	var opts []GraphOption
	if g.dedup {
		opts = append(opts, WithDedupEdges())
	}
	clone := NewGraph(opts...)

	g.muNodes.RLock()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	g.muNodes.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	clone.edges = append(clone.edges, g.edges...)
	for from, byLabel := range g.adjacency {
		cl := make(map[string]map[int]int, len(byLabel))
		for label, targets := range byLabel {
			ct := make(map[int]int, len(targets))
			for to, n := range targets {
				ct[to] = n
			}
			cl[label] = ct
		}
		clone.adjacency[from] = cl
	}

	return clone
}

// sortedKeys returns the keys of m in ascending order (nil-safe).
func sortedKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
