// SPDX-License-Identifier: MIT

package automaton

import "github.com/katalvlaran/cfpq/core"

// FromGraph seeds an automaton whose states are the graph nodes in
// ascending order and whose symbols are the terminal labels. Unlabeled
// edges are skipped.
//
// start and final select the start and final states; an empty slice means
// every node, and ids absent from the graph are dropped.
func FromGraph(g *core.Graph, start, final []int) (*Automaton[int], error) {
	nodes := g.Nodes()
	var transitions []Transition[int]
	for _, e := range g.Edges() {
		if e.Labeled() {
			transitions = append(transitions, Transition[int]{From: e.From, Symbol: Terminal(e.Label), To: e.To})
		}
	}

	return New(nodes, subset(g, nodes, start), subset(g, nodes, final), transitions)
}

func subset(g *core.Graph, all, want []int) []int {
	if len(want) == 0 {
		return all
	}
	out := make([]int, 0, len(want))
	for _, id := range want {
		if g.HasNode(id) {
			out = append(out, id)
		}
	}

	return out
}
