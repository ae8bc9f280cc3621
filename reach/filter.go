// SPDX-License-Identifier: MIT

package reach

import "github.com/katalvlaran/cfpq/core"

// Filter restricts which nodes may start and end an answer.
type Filter struct {
	Start []int
	Final []int
}

// Resolved is a Filter bound to one graph.
type Resolved struct {
	start, final map[int]struct{}
	startOrder   []int
}

// Resolve binds f to g: empty subsets become every node of g, ids absent
// from g are dropped.
func (f Filter) Resolve(g *core.Graph) Resolved {
	nodes := g.Nodes()
	start, order := resolveSubset(g, nodes, f.Start)
	final, _ := resolveSubset(g, nodes, f.Final)

	return Resolved{start: start, final: final, startOrder: order}
}

func resolveSubset(g *core.Graph, all, want []int) (map[int]struct{}, []int) {
	if len(want) == 0 {
		want = all
	}
	set := make(map[int]struct{}, len(want))
	order := make([]int, 0, len(want))
	for _, id := range want {
		if _, dup := set[id]; dup || !g.HasNode(id) {
			continue
		}
		set[id] = struct{}{}
		order = append(order, id)
	}

	return set, order
}

// StartNodes returns the start subset in caller order, deduplicated.
func (r Resolved) StartNodes() []int { return r.startOrder }

// IsStart reports start membership.
func (r Resolved) IsStart(id int) bool {
	_, ok := r.start[id]

	return ok
}

// IsFinal reports final membership.
func (r Resolved) IsFinal(id int) bool {
	_, ok := r.final[id]

	return ok
}

// Keep reports whether p passes both subsets.
func (r Resolved) Keep(p Pair) bool { return r.IsStart(p.Start) && r.IsFinal(p.End) }
