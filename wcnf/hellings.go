// SPDX-License-Identifier: MIT

package wcnf

import (
	"context"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
)

// fact is (head, u, v): head derives some u → v path.
type fact struct {
	head string
	u, v int
}

type endpoint struct {
	head  string
	other int
}

// Hellings answers the query with the worklist algorithm.
//
// Seeds are (A, v, v) for every nullable A and (A, u, v) for every edge
// u -a-> v with A → a. A popped fact (N, u, v) joins each (M, w, u) into
// (H, w, v) for H → M N and each (M, v, w) into (H, u, w) for H → N M.
func Hellings(ctx context.Context, g *core.Graph, gr *Grammar, opts ...reach.Option) (*reach.Set, error) {
	if err := gr.Validate(); err != nil {
		return nil, err
	}
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}
	ix := newIndex(gr)

	known := make(map[fact]struct{})
	byStart := make(map[int][]endpoint)
	byEnd := make(map[int][]endpoint)
	var queue []fact
	add := func(f fact) {
		if _, ok := known[f]; ok {
			return
		}
		known[f] = struct{}{}
		byStart[f.u] = append(byStart[f.u], endpoint{head: f.head, other: f.v})
		byEnd[f.v] = append(byEnd[f.v], endpoint{head: f.head, other: f.u})
		queue = append(queue, f)
	}

	for _, v := range g.Nodes() {
		for _, h := range ix.nullable {
			add(fact{head: h, u: v, v: v})
		}
	}
	for _, e := range g.Edges() {
		if !e.Labeled() {
			continue
		}
		for _, h := range ix.byLabel[e.Label] {
			add(fact{head: h, u: e.From, v: e.To})
		}
	}

	for steps := 0; len(queue) > 0; steps++ {
		if steps%1024 == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}
		f := queue[0]
		queue = queue[1:]

		for _, m := range byEnd[f.u] {
			for _, h := range ix.byPair[[2]string{m.head, f.head}] {
				add(fact{head: h, u: m.other, v: f.v})
			}
		}
		for _, m := range byStart[f.v] {
			for _, h := range ix.byPair[[2]string{f.head, m.head}] {
				add(fact{head: h, u: f.u, v: m.other})
			}
		}
	}
	o.LoggerFor(ctx).Debug("wcnf: hellings drained", "facts", len(known))

	return collect(g, o.Filter, func(yield func(u, v int)) {
		for f := range known {
			if f.head == gr.Start {
				yield(f.u, f.v)
			}
		}
	}), nil
}

// collect filters (u, v) answers into a set.
func collect(g *core.Graph, f reach.Filter, each func(yield func(u, v int))) *reach.Set {
	filter := f.Resolve(g)
	out := reach.NewSet()
	each(func(u, v int) {
		if p := (reach.Pair{Start: u, End: v}); filter.Keep(p) {
			out.Add(p)
		}
	})

	return out
}
