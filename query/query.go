// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/bfs"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/gll"
	"github.com/katalvlaran/cfpq/internal/ctxlog"
	"github.com/katalvlaran/cfpq/loader"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
	"github.com/katalvlaran/cfpq/tensor"
	"github.com/katalvlaran/cfpq/wcnf"
)

// Algorithm names a solver.
type Algorithm string

// Registered algorithms.
const (
	GLL      Algorithm = "gll"
	Tensor   Algorithm = "tensor"
	Hellings Algorithm = "hellings"
	Matrix   Algorithm = "matrix"
	RPQ      Algorithm = "rpq"
	BFS      Algorithm = "bfs"
)

// Sentinel errors for dispatch.
var (
	// ErrUnknownAlgorithm is returned for a name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("query: unknown algorithm")

	// ErrNotApplicable is returned when the document lacks what the
	// algorithm needs.
	ErrNotApplicable = errors.New("query: algorithm not applicable to document")

	// ErrDisagreement is returned by Compare when answers differ.
	ErrDisagreement = errors.New("query: algorithms disagree")
)

// Outcome is one solver run.
type Outcome struct {
	Algorithm Algorithm
	Pairs     *reach.Set
	Elapsed   time.Duration
	// Stats holds solver counters (iterations, facts, descriptors, ...).
	Stats map[string]int
}

// input is a document resolved once for every solver.
type input struct {
	graph   *core.Graph
	rsm     *rsm.RSM
	cfg     *wcnf.Grammar
	regular *automaton.Automaton[rsm.State]
}

type solver struct {
	applies func(in *input) bool
	run     func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error)
}

var registry = map[Algorithm]solver{
	GLL: {
		applies: func(in *input) bool { return in.rsm != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			res, err := gll.Solve(ctx, in.graph, in.rsm, opts...)
			if err != nil {
				return nil, nil, err
			}
			return res.Pairs, map[string]int{"descriptors": res.Descriptors, "stack_nodes": res.StackNodes}, nil
		},
	},
	Tensor: {
		applies: func(in *input) bool { return in.rsm != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			res, err := tensor.Solve(ctx, in.graph, in.rsm, opts...)
			if err != nil {
				return nil, nil, err
			}
			return res.Pairs, map[string]int{"iterations": res.Iterations, "facts": res.Facts}, nil
		},
	},
	Hellings: {
		applies: func(in *input) bool { return in.cfg != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			s, err := wcnf.Hellings(ctx, in.graph, in.cfg, opts...)
			return s, nil, err
		},
	},
	Matrix: {
		applies: func(in *input) bool { return in.cfg != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			s, err := wcnf.Matrix(ctx, in.graph, in.cfg, opts...)
			return s, nil, err
		},
	},
	RPQ: {
		applies: func(in *input) bool { return in.regular != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			res, err := tensor.SolveRegular(ctx, in.graph, in.regular, opts...)
			if err != nil {
				return nil, nil, err
			}
			return res.Pairs, nil, nil
		},
	},
	BFS: {
		applies: func(in *input) bool { return in.regular != nil },
		run: func(ctx context.Context, in *input, opts []reach.Option) (*reach.Set, map[string]int, error) {
			s, err := bfs.RegularPairs(ctx, in.graph, in.regular, opts...)
			return s, nil, err
		},
	},
}

var order = []Algorithm{GLL, Tensor, Hellings, Matrix, RPQ, BFS}

// Algorithms returns every registered algorithm in a fixed order.
func Algorithms() []Algorithm { return append([]Algorithm(nil), order...) }

// Parse maps a name to an Algorithm.
func Parse(name string) (Algorithm, error) {
	a := Algorithm(name)
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}

	return a, nil
}

func resolve(doc *loader.Document) (*input, error) {
	g, err := doc.BuildGraph()
	if err != nil {
		return nil, err
	}
	in := &input{graph: g}
	if doc.HasRSM() || doc.HasCFG() {
		if in.rsm, err = doc.BuildRSM(); err != nil {
			return nil, err
		}
		in.regular, err = regularQuery(in.rsm)
		if err != nil {
			return nil, err
		}
	}
	if doc.HasCFG() {
		if in.cfg, err = doc.BuildCFG(); err != nil {
			return nil, err
		}
	}

	return in, nil
}

// regularQuery returns the start box as an automaton when no box calls
// another, else nil.
func regularQuery(r *rsm.RSM) (*automaton.Automaton[rsm.State], error) {
	for _, name := range r.BoxNames() {
		if b, _ := r.Box(name); len(b.Calls) > 0 {
			return nil, nil
		}
	}
	box, _ := r.Box(r.StartBox())
	state := func(sub string) rsm.State { return rsm.State{Box: box.Name, Sub: sub} }

	states := make([]rsm.State, 0, len(box.Subs))
	for _, s := range box.Subs {
		states = append(states, state(s))
	}
	finals := make([]rsm.State, 0, len(box.Finals))
	for _, f := range box.Finals {
		finals = append(finals, state(f))
	}
	transitions := make([]automaton.Transition[rsm.State], 0, len(box.Terminals))
	for _, e := range box.Terminals {
		transitions = append(transitions, automaton.Transition[rsm.State]{
			From: state(e.From), Symbol: automaton.Terminal(e.Label), To: state(e.To),
		})
	}

	return automaton.New(states, []rsm.State{state(box.Start)}, finals, transitions)
}

func applicable(in *input) []Algorithm {
	var out []Algorithm
	for _, a := range order {
		if registry[a].applies(in) {
			out = append(out, a)
		}
	}

	return out
}

// Applicable lists the algorithms doc supports.
func Applicable(doc *loader.Document) ([]Algorithm, error) {
	in, err := resolve(doc)
	if err != nil {
		return nil, err
	}

	return applicable(in), nil
}

// Run solves doc with alg. The document filter is applied before opts, so
// an explicit reach.WithFilter in opts overrides it.
func Run(ctx context.Context, alg Algorithm, doc *loader.Document, opts ...reach.Option) (*Outcome, error) {
	s, ok := registry[alg]
	if !ok {
		return nil, fmt.Errorf("%q: %w", alg, ErrUnknownAlgorithm)
	}
	in, err := resolve(doc)
	if err != nil {
		return nil, err
	}
	if !s.applies(in) {
		return nil, fmt.Errorf("%s: %w", alg, ErrNotApplicable)
	}

	return runOne(ctx, alg, s, in, withDocFilter(doc, opts))
}

func withDocFilter(doc *loader.Document, opts []reach.Option) []reach.Option {
	return append([]reach.Option{reach.WithFilter(doc.ReachFilter())}, opts...)
}

func runOne(ctx context.Context, alg Algorithm, s solver, in *input, opts []reach.Option) (*Outcome, error) {
	began := time.Now()
	pairs, stats, err := s.run(ctx, in, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}
	out := &Outcome{Algorithm: alg, Pairs: pairs, Elapsed: time.Since(began), Stats: stats}
	ctxlog.FromContext(ctx).Debug("query: solved",
		"algorithm", string(alg),
		"pairs", pairs.Len(),
		"elapsed", out.Elapsed)

	return out, nil
}

// Compare runs every applicable algorithm concurrently. Outcomes follow
// Algorithms() order. When answers differ the outcomes are still returned
// together with ErrDisagreement.
func Compare(ctx context.Context, doc *loader.Document, opts ...reach.Option) ([]*Outcome, error) {
	in, err := resolve(doc)
	if err != nil {
		return nil, err
	}
	algs := applicable(in)
	if len(algs) == 0 {
		return nil, ErrNotApplicable
	}
	opts = withDocFilter(doc, opts)

	outs := make([]*Outcome, len(algs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		eg.Go(func() error {
			o, err := runOne(ctx, alg, registry[alg], in, opts)
			if err != nil {
				return err
			}
			outs[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, o := range outs[1:] {
		if !o.Pairs.Equal(outs[0].Pairs) {
			return outs, fmt.Errorf("%s vs %s: missing %v, extra %v: %w",
				outs[0].Algorithm, o.Algorithm, outs[0].Pairs.Diff(o.Pairs), o.Pairs.Diff(outs[0].Pairs), ErrDisagreement)
		}
	}

	return outs, nil
}
