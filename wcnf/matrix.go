// SPDX-License-Identifier: MIT

package wcnf

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/matrix"
	"github.com/katalvlaran/cfpq/reach"
)

// Matrix answers the query by saturating one boolean matrix per
// nonterminal: M[A] starts with the identity if A is nullable and with
// u→v for every edge u -a-> v with A → a; then M[H] |= M[B]·M[C] for every
// H → B C until a full pass changes nothing. Products honor
// reach.WithWorkers.
func Matrix(ctx context.Context, g *core.Graph, gr *Grammar, opts ...reach.Option) (*reach.Set, error) {
	if err := gr.Validate(); err != nil {
		return nil, err
	}
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}
	ix := newIndex(gr)

	nodes := g.Nodes()
	pos := make(map[int]int, len(nodes))
	for i, v := range nodes {
		pos[v] = i
	}
	n := len(nodes)

	ms := make(map[string]*matrix.Bool)
	for _, nt := range gr.Nonterminals() {
		if ms[nt], err = matrix.NewBool(n, n); err != nil {
			return nil, err
		}
	}
	for _, h := range ix.nullable {
		for i := 0; i < n; i++ {
			if err = ms[h].Set(i, i, true); err != nil {
				return nil, fmt.Errorf("wcnf: nullable %s: %w", h, err)
			}
		}
	}
	for _, e := range g.Edges() {
		if !e.Labeled() {
			continue
		}
		for _, h := range ix.byLabel[e.Label] {
			if err = ms[h].Set(pos[e.From], pos[e.To], true); err != nil {
				return nil, fmt.Errorf("wcnf: edge %d→%d: %w", e.From, e.To, err)
			}
		}
	}

	mopts := []matrix.Option{matrix.WithWorkers(o.Workers)}
	passes := 0
	for changed := true; changed; passes++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		changed = false
		for _, p := range ix.binaries {
			prod, err := matrix.Mul(ms[p.Body[0].Name], ms[p.Body[1].Name], mopts...)
			if err != nil {
				return nil, fmt.Errorf("wcnf: %s: %w", p, err)
			}
			grew, err := matrix.OrInPlace(ms[p.Head], prod)
			if err != nil {
				return nil, fmt.Errorf("wcnf: %s: %w", p, err)
			}
			changed = changed || grew
		}
	}
	o.LoggerFor(ctx).Debug("wcnf: matrix saturated", "passes", passes)

	start := ms[gr.Start]
	return collect(g, o.Filter, func(yield func(u, v int)) {
		start.Each(func(i, j int) { yield(nodes[i], nodes[j]) })
	}), nil
}
