// SPDX-License-Identifier: MIT
// Package core_test verifies node/edge lifecycle, labeled adjacency and cloning.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfpq/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(3))
	require.NoError(t, g.AddNode(3)) // idempotent
	assert.ErrorIs(t, g.AddNode(-1), core.ErrNegativeNodeID)

	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(-1))
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_NodesSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(5, 1, 3, 1))
	assert.Equal(t, []int{1, 3, 5}, g.Nodes())
}

func TestGraph_AddEdgeRegistersEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, "a"))
	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(2))
	assert.True(t, g.HasEdge(1, 2, "a"))
	assert.False(t, g.HasEdge(2, 1, "a"), "edges are directed")
	assert.False(t, g.HasEdge(1, 2, "b"))

	err := g.AddEdge(-4, 2, "a")
	assert.ErrorIs(t, err, core.ErrNegativeNodeID)
}

func TestGraph_MultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 1, "a"))
	require.NoError(t, g.AddEdge(1, 1, "a"))
	require.NoError(t, g.AddEdge(1, 2, "b"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Successors(1, "a"), "successors are deduplicated")

	d := core.NewGraph(core.WithDedupEdges())
	require.NoError(t, d.AddEdge(1, 1, "a"))
	require.NoError(t, d.AddEdge(1, 1, "a"))
	assert.Equal(t, 1, d.EdgeCount())
}

func TestGraph_UnlabeledEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, ""))
	require.NoError(t, g.AddEdge(1, 2, "x"))

	assert.Equal(t, []string{"x"}, g.Labels())
	adj := g.LabeledAdjacency()
	require.Contains(t, adj, 0)
	assert.Empty(t, adj[0], "unlabeled edges are dropped from labeled adjacency")
	assert.Equal(t, []int{2}, adj[1]["x"])
	assert.Empty(t, adj[2])

	stats := g.Stats()
	assert.Equal(t, 3, stats.NodeCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 1, stats.LabeledEdges)
	assert.Equal(t, 1, stats.UnlabeledEdges)
	assert.Equal(t, 1, stats.LabelCount)
}

func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(2, 3, "b"))
	require.NoError(t, g.AddEdge(0, 1, "a"))
	assert.Equal(t, []core.Edge{{From: 2, To: 3, Label: "b"}, {From: 0, To: 1, Label: "a"}}, g.Edges())
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph(core.WithDedupEdges())
	require.NoError(t, g.AddEdge(0, 1, "a"))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, "b"))
	require.NoError(t, c.AddEdge(0, 1, "a"))

	assert.False(t, g.HasNode(2), "mutating the clone must not leak into the source")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount(), "dedup option survives cloning")
	assert.True(t, c.Stats().DedupEdges)
}
