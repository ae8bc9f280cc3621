// SPDX-License-Identifier: MIT

package tensor

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/matrix"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
)

// Result is the outcome of a tensor run.
type Result struct {
	// Pairs are the filtered answers.
	Pairs *reach.Set
	// Iterations counts closure rounds, including the final empty one.
	Iterations int
	// Facts counts derived (node, box, node) facts.
	Facts int
}

// saturation carries one Solve run.
type saturation struct {
	graph   *automaton.Automaton[int]
	grammar *automaton.Automaton[rsm.State]
	workers int
}

// Solve answers the context-free query grammar over g.
//
// Errors: ErrNilInput, reach.ErrOptionViolation, ErrBoxMismatch,
// ErrIterationBound, ctx.Err().
func Solve(ctx context.Context, g *core.Graph, grammar *rsm.RSM, opts ...reach.Option) (res *Result, err error) {
	if g == nil || grammar == nil {
		return nil, ErrNilInput
	}
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}

	rsmAM, err := grammar.Flatten()
	if err != nil {
		return nil, err
	}

	return solveFlat(ctx, g, rsmAM, grammar.StartBox(), grammar.BoxNames(), o)
}

// solveFlat runs the saturation loop over an already flattened grammar.
func solveFlat(ctx context.Context, g *core.Graph, rsmAM *automaton.Automaton[rsm.State], startBox string, boxes []string, o reach.Options) (res *Result, err error) {
	graphAM, err := automaton.FromGraph(g, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("tensor: seed graph: %w", err)
	}

	ctx, span := startSpan(ctx, "tensor.Solve", graphAM.NumberOfStates(), g.EdgeCount(), rsmAM.NumberOfStates())
	defer span.End()
	began := time.Now()
	defer func() {
		finishSpan(span, res, err)
		recordSolve(ctx, "tensor", time.Since(began), err == nil)
	}()

	log := o.LoggerFor(ctx)
	s := &saturation{graph: graphAM, grammar: rsmAM, workers: o.Workers}

	n := graphAM.NumberOfStates()
	maxIter := o.MaxIterations
	if maxIter == 0 {
		maxIter = n*n*len(boxes) + 1
	}

	res = &Result{}
	for iter := 1; ; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if iter > maxIter {
			err = fmt.Errorf("tensor: %d rounds, %d facts: %w", maxIter, res.Facts, ErrIterationBound)
			return nil, err
		}

		var deltas map[string]*matrix.Bool
		var fresh int
		if deltas, fresh, err = s.round(); err != nil {
			return nil, err
		}
		res.Iterations = iter
		recordRound(ctx, fresh)
		if fresh == 0 {
			log.Debug("tensor: saturated", "iterations", iter, "facts", res.Facts)
			break
		}
		for _, box := range boxes {
			if d, ok := deltas[box]; ok {
				if _, err = graphAM.Merge(automaton.Nonterminal(box), d); err != nil {
					return nil, err
				}
			}
		}
		res.Facts += fresh
		o.OnIteration(iter, fresh, res.Facts)
		log.Debug("tensor: round", "iteration", iter, "new_facts", fresh, "facts", res.Facts)
	}

	res.Pairs = s.answers(g, startBox, o.Filter)

	return res, nil
}

// round computes one closure and returns the facts it adds per box.
func (s *saturation) round() (map[string]*matrix.Bool, int, error) {
	product, err := automaton.Intersect(s.graph, s.grammar)
	if err != nil {
		return nil, 0, err
	}
	closure, err := product.TransitiveClosure(matrix.WithWorkers(s.workers))
	if err != nil {
		return nil, 0, err
	}

	r := s.grammar.NumberOfStates()
	n := s.graph.NumberOfStates()
	deltas := make(map[string]*matrix.Bool)
	fresh := 0
	var failed error

	closure.Each(func(i, j int) {
		if failed != nil {
			return
		}
		ri, rj := i%r, j%r
		if !s.grammar.IsStart(ri) || !s.grammar.IsFinal(rj) {
			return
		}
		from, _ := s.grammar.StateAt(ri)
		to, _ := s.grammar.StateAt(rj)
		if from.Box != to.Box {
			failed = fmt.Errorf("tensor: closure pair %v → %v: %w", from, to, ErrBoxMismatch)
			return
		}
		gi, gj := i/r, j/r
		if s.graph.Matrix(automaton.Nonterminal(from.Box)).Has(gi, gj) {
			return
		}
		d, ok := deltas[from.Box]
		if !ok {
			if d, failed = matrix.NewBool(n, n); failed != nil {
				return
			}
			deltas[from.Box] = d
		}
		if !d.Has(gi, gj) {
			if failed = d.Set(gi, gj, true); failed != nil {
				return
			}
			fresh++
		}
	})
	if failed != nil {
		return nil, 0, failed
	}

	return deltas, fresh, nil
}

// answers reads the start-box facts through the filter.
func (s *saturation) answers(g *core.Graph, startBox string, f reach.Filter) *reach.Set {
	out := reach.NewSet()
	m := s.graph.Matrix(automaton.Nonterminal(startBox))
	if m == nil {
		return out
	}
	filter := f.Resolve(g)
	m.Each(func(i, j int) {
		from, _ := s.graph.StateAt(i)
		to, _ := s.graph.StateAt(j)
		if p := (reach.Pair{Start: from, End: to}); filter.Keep(p) {
			out.Add(p)
		}
	})

	return out
}
