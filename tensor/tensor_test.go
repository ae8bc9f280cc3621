package tensor_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/builder"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/internal/cfpqtest"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
	"github.com/katalvlaran/cfpq/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSolveExamples(t *testing.T) {
	for _, ex := range cfpqtest.Examples() {
		t.Run(ex.Name, func(t *testing.T) {
			res, err := tensor.Solve(context.Background(), ex.Graph, ex.Grammar)
			require.NoError(t, err)
			assert.Equal(t, reach.NewSet(ex.Want...).Sorted(), res.Pairs.Sorted())
		})
	}
}

func TestSolveBalancedExcludesUnbalanced(t *testing.T) {
	ex := cfpqtest.Examples()[0]
	res, err := tensor.Solve(context.Background(), ex.Graph, ex.Grammar)
	require.NoError(t, err)
	assert.False(t, res.Pairs.Contains(reach.Pair{Start: 1, End: 4}))
	assert.False(t, res.Pairs.Contains(reach.Pair{Start: 1, End: 3}))
}

func TestSolveFilters(t *testing.T) {
	ex := cfpqtest.Examples()[0]
	res, err := tensor.Solve(context.Background(), ex.Graph, ex.Grammar,
		reach.WithStartNodes(1, 2, 99), reach.WithFinalNodes(4, 5))
	require.NoError(t, err)
	assert.Equal(t, []reach.Pair{{Start: 1, End: 5}, {Start: 2, End: 4}}, res.Pairs.Sorted())
}

func TestSolveMatchesOracle(t *testing.T) {
	for _, in := range cfpqtest.RandomInstances(11, 4) {
		t.Run(in.Name, func(t *testing.T) {
			res, err := tensor.Solve(context.Background(), in.Graph, in.Grammar, reach.WithWorkers(2))
			require.NoError(t, err)
			brute := cfpqtest.Brute(in.Graph, in.Grammar, in.MaxLen, reach.Filter{})
			if in.Acyclic {
				assert.True(t, brute.Equal(res.Pairs), "missing %v extra %v", brute.Diff(res.Pairs), res.Pairs.Diff(brute))
			} else {
				assert.Empty(t, brute.Diff(res.Pairs), "bounded paths must be found")
			}
		})
	}
}

func TestSolveMonotoneAndBounded(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.TwoCycles(3, 2, "a", "b"))
	require.NoError(t, err)
	grammar := cfpqtest.AnBn()

	var totals []int
	res, err := tensor.Solve(context.Background(), g, grammar,
		reach.WithOnIteration(func(iter, fresh, total int) {
			assert.Positive(t, fresh)
			assert.Equal(t, len(totals)+1, iter)
			totals = append(totals, total)
		}))
	require.NoError(t, err)

	assert.IsIncreasing(t, totals)
	assert.Equal(t, len(totals)+1, res.Iterations)
	n := g.NodeCount()
	assert.LessOrEqual(t, res.Iterations, n*n*len(grammar.BoxNames())+1)
	// a^k b^k runs from the a-cycle {0..3} through 0 into the b-cycle {0,4,5};
	// coprime cycle lengths 4 and 3 realize every combination.
	var want []reach.Pair
	for u := 0; u <= 3; u++ {
		for _, v := range []int{0, 4, 5} {
			want = append(want, reach.Pair{Start: u, End: v})
		}
	}
	assert.True(t, reach.NewSet(want...).Equal(res.Pairs), "got %v", res.Pairs)
}

func TestSolveIterationBound(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.TwoCycles(3, 2, "a", "b"))
	require.NoError(t, err)
	_, err = tensor.Solve(context.Background(), g, cfpqtest.AnBn(), reach.WithMaxIterations(1))
	require.ErrorIs(t, err, tensor.ErrIterationBound)
}

func TestSolveTerminalNamedLikeBox(t *testing.T) {
	// S → "S" A, A → a: the terminal "S" must not be confused with box S.
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Terminal("0", "S", "1").Call("1", "A", "2").Final("2")
	b.Box("A", "0").Terminal("0", "a", "1").Final("1")
	grammar, err := b.Build()
	require.NoError(t, err)

	g, err := builder.BuildGraph(nil, nil, builder.Chain(0, "S", "a"), builder.Chain(5, "a"))
	require.NoError(t, err)
	res, err := tensor.Solve(context.Background(), g, grammar)
	require.NoError(t, err)
	assert.Equal(t, []reach.Pair{{Start: 0, End: 2}}, res.Pairs.Sorted())
}

func TestSolveErrors(t *testing.T) {
	_, err := tensor.Solve(context.Background(), nil, cfpqtest.AnBn())
	require.ErrorIs(t, err, tensor.ErrNilInput)

	_, err = tensor.Solve(context.Background(), core.NewGraph(), cfpqtest.AnBn(), reach.WithWorkers(0))
	require.ErrorIs(t, err, reach.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tensor.Solve(ctx, cfpqtest.Examples()[0].Graph, cfpqtest.BalancedBrackets())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveEmptyGraph(t *testing.T) {
	res, err := tensor.Solve(context.Background(), core.NewGraph(), cfpqtest.BalancedBrackets())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Pairs.Len())
}

func TestSolveRegular(t *testing.T) {
	a, b := automaton.Terminal("a"), automaton.Terminal("b")
	query, err := automaton.New([]int{0, 1}, []int{0}, []int{1}, []automaton.Transition[int]{
		{From: 0, Symbol: a, To: 0}, {From: 0, Symbol: b, To: 1},
	})
	require.NoError(t, err)

	g := cfpqtest.Examples()[2].Graph
	res, err := tensor.SolveRegular(context.Background(), g, query)
	require.NoError(t, err)
	assert.Equal(t, []reach.Pair{{Start: 1, End: 2}}, res.Pairs.Sorted())
	assert.Equal(t, 1, res.Iterations)
}

func TestSolveEmitsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	ex := cfpqtest.Examples()[0]
	_, err := tensor.Solve(context.Background(), ex.Graph, ex.Grammar)
	require.NoError(t, err)
	_, err = tensor.Solve(context.Background(), ex.Graph, ex.Grammar, reach.WithMaxIterations(1))
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "tensor.Solve", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "cfpq.pairs" {
			found = true
			assert.Equal(t, int64(7), kv.Value.AsInt64())
		}
	}
	assert.True(t, found)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
