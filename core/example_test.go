package core_test

import (
	"fmt"

	"github.com/katalvlaran/cfpq/core"
)

// ExampleGraph demonstrates basic creation and labeled queries.
func ExampleGraph() {
	// 1) Create a labeled graph and add a short a-path plus a b-loop:
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, "a")
	_ = g.AddEdge(2, 3, "a")
	_ = g.AddEdge(3, 3, "b")
	_ = g.AddEdge(3, 1, "") // unlabeled edges are kept but ignored by queries

	// 2) Inspect nodes, labels and successors:
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Labels:", g.Labels())
	fmt.Println("a-successors of 1:", g.Successors(1, "a"))
	fmt.Println("b-loop at 3?", g.HasEdge(3, 3, "b"))

	// Output:
	// Nodes: [1 2 3]
	// Labels: [a b]
	// a-successors of 1: [2]
	// b-loop at 3? true
}
