// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns ids sorted ascending.
// Concurrency:
//   - Node catalog protected by muNodes.

package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject negative ids (ErrNegativeNodeID).
//   - Stage 2: Under muNodes write lock, register the id.
//
// Complexity: O(1).
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeNodeID
	}
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.nodes[id] = struct{}{}

	return nil
}

// AddNodes inserts every id, stopping at the first invalid one.
func (g *Graph) AddNodes(ids ...int) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return err
		}
	}

	return nil
}

// HasNode reports whether id is present. Negative ids are never present.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.muNodes.RLock()
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.muNodes.RUnlock()
	sort.Ints(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}
