// SPDX-License-Identifier: MIT

package tensor

import (
	"context"
	"time"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/matrix"
	"github.com/katalvlaran/cfpq/reach"
)

// SolveRegular answers a regular path query: (u, v) is an answer iff some
// u → v path spells a word accepted by query. One closure of the product
// suffices; Iterations is 1 and Facts is 0.
func SolveRegular[S comparable](ctx context.Context, g *core.Graph, query *automaton.Automaton[S], opts ...reach.Option) (res *Result, err error) {
	if g == nil || query == nil {
		return nil, ErrNilInput
	}
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}
	graphAM, err := automaton.FromGraph(g, nil, nil)
	if err != nil {
		return nil, err
	}

	ctx, span := startSpan(ctx, "tensor.SolveRegular", graphAM.NumberOfStates(), g.EdgeCount(), query.NumberOfStates())
	defer span.End()
	began := time.Now()
	defer func() {
		finishSpan(span, res, err)
		recordSolve(ctx, "tensor_regular", time.Since(began), err == nil)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	product, err := automaton.Intersect(graphAM, query)
	if err != nil {
		return nil, err
	}
	closure, err := product.TransitiveClosure(matrix.WithWorkers(o.Workers))
	if err != nil {
		return nil, err
	}

	q := query.NumberOfStates()
	filter := o.Filter.Resolve(g)
	pairs := reach.NewSet()
	closure.Each(func(i, j int) {
		if !query.IsStart(i%q) || !query.IsFinal(j%q) {
			return
		}
		from, _ := graphAM.StateAt(i / q)
		to, _ := graphAM.StateAt(j / q)
		if p := (reach.Pair{Start: from, End: to}); filter.Keep(p) {
			pairs.Add(p)
		}
	})
	recordRound(ctx, 0)
	o.LoggerFor(ctx).Debug("tensor: regular query", "pairs", pairs.Len())

	return &Result{Pairs: pairs, Iterations: 1}, nil
}
