package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/bfs"
	"github.com/katalvlaran/cfpq/builder"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/internal/cfpqtest"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aStarB accepts a*b.
func aStarB(t testing.TB) *automaton.Automaton[int] {
	t.Helper()
	a, b := automaton.Terminal("a"), automaton.Terminal("b")
	q, err := automaton.New([]int{0, 1}, []int{0}, []int{1}, []automaton.Transition[int]{
		{From: 0, Symbol: a, To: 0}, {From: 0, Symbol: b, To: 1},
	})
	require.NoError(t, err)

	return q
}

// abStar accepts (ab)*, including the empty word.
func abStar(t testing.TB) *automaton.Automaton[string] {
	t.Helper()
	a, b := automaton.Terminal("a"), automaton.Terminal("b")
	q, err := automaton.New([]string{"even", "odd"}, []string{"even"}, []string{"even"}, []automaton.Transition[string]{
		{From: "even", Symbol: a, To: "odd"}, {From: "odd", Symbol: b, To: "even"},
	})
	require.NoError(t, err)

	return q
}

func chain(t testing.TB, labels ...string) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Chain(0, labels...))
	require.NoError(t, err)

	return g
}

// TestReachableSelfLoop checks the a*b query on a self-looped node.
func TestReachableSelfLoop(t *testing.T) {
	g := cfpqtest.Examples()[2].Graph
	res, err := bfs.Reachable(context.Background(), g, aStarB(t), 1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Reached)

	w, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, w.Nodes)
	assert.Equal(t, []string{"b"}, w.Labels)

	_, err = res.PathTo(1)
	require.Error(t, err)
}

// TestReachableDepthsAndOrder verifies BFS depths along a chain.
func TestReachableDepthsAndOrder(t *testing.T) {
	g := chain(t, "a", "b", "a", "b")
	res, err := bfs.Reachable(context.Background(), g, abStar(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, res.Reached)

	assert.Equal(t, []bfs.ProductState{
		{Node: 0, State: 0}, {Node: 1, State: 1}, {Node: 2, State: 0},
		{Node: 3, State: 1}, {Node: 4, State: 0},
	}, res.Order)
	assert.Equal(t, 4, res.Depth[bfs.ProductState{Node: 4, State: 0}])

	w, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, w.Nodes)
	assert.Equal(t, []string{"a", "b", "a", "b"}, w.Labels)

	w, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, w.Nodes)
	assert.Empty(t, w.Labels)
}

// TestReachableShortestWitness prefers the shorter of two accepted paths.
func TestReachableShortestWitness(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Chain(0, "a", "a", "a", "b"),
		builder.Edges(core.Edge{From: 0, To: 4, Label: "b"}),
	)
	require.NoError(t, err)

	res, err := bfs.Reachable(context.Background(), g, aStarB(t), 0)
	require.NoError(t, err)
	w, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, w.Labels)
}

// TestMaxDepth ensures the product walk stops at the configured depth.
func TestMaxDepth(t *testing.T) {
	g := chain(t, "a", "b", "a", "b")
	res, err := bfs.Reachable(context.Background(), g, abStar(t), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Reached)

	_, err = bfs.Reachable(context.Background(), g, abStar(t), 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestOnVisitAbort propagates a hook error.
func TestOnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	g := chain(t, "a", "b")
	_, err := bfs.Reachable(context.Background(), g, abStar(t), 0,
		bfs.WithOnVisit(func(st bfs.ProductState, depth int) error {
			if depth == 1 {
				return stop
			}
			return nil
		}))
	require.ErrorIs(t, err, stop)
}

// TestCancellation returns the context error.
func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Reachable(ctx, chain(t, "a"), aStarB(t), 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestErrors(t *testing.T) {
	_, err := bfs.Reachable[int](context.Background(), nil, aStarB(t), 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Reachable[int](context.Background(), chain(t, "a"), nil, 0)
	require.ErrorIs(t, err, bfs.ErrQueryNil)
	require.NotErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.RegularPairs[int](context.Background(), nil, aStarB(t))
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.RegularPairs[int](context.Background(), chain(t, "a"), nil)
	require.ErrorIs(t, err, bfs.ErrQueryNil)
	_, err = bfs.Reachable(context.Background(), chain(t, "a"), aStarB(t), 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.RegularPairs(context.Background(), chain(t, "a"), aStarB(t), reach.WithWorkers(0))
	require.ErrorIs(t, err, reach.ErrOptionViolation)
}

// TestRegularPairsFilters applies start and final subsets.
func TestRegularPairsFilters(t *testing.T) {
	g := chain(t, "a", "b", "a", "b")
	all, err := bfs.RegularPairs(context.Background(), g, abStar(t))
	require.NoError(t, err)
	assert.True(t, all.Contains(reach.Pair{Start: 1, End: 1}))
	assert.True(t, all.Contains(reach.Pair{Start: 0, End: 4}))
	assert.False(t, all.Contains(reach.Pair{Start: 1, End: 3}))

	some, err := bfs.RegularPairs(context.Background(), g, abStar(t),
		reach.WithStartNodes(0, 42), reach.WithFinalNodes(2, 4))
	require.NoError(t, err)
	assert.Equal(t, []reach.Pair{{Start: 0, End: 2}, {Start: 0, End: 4}}, some.Sorted())
}

// TestRegularPairsMatchesTensor cross-checks against the matrix product.
func TestRegularPairsMatchesTensor(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	ctx := context.Background()
	for k := 0; k < 40; k++ {
		n := 1 + rng.Intn(7)
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(rng.Int63())},
			builder.RandomLabeled(n, rng.Intn(3*n+1), "a", "b", "c"))
		require.NoError(t, err)

		for _, q := range []*automaton.Automaton[int]{aStarB(t)} {
			got, err := bfs.RegularPairs(ctx, g, q)
			require.NoError(t, err)
			want, err := tensor.SolveRegular(ctx, g, q)
			require.NoError(t, err)
			assert.True(t, want.Pairs.Equal(got), "a*b on graph %d: diff %v", k, want.Pairs.Diff(got))
		}
		got, err := bfs.RegularPairs(ctx, g, abStar(t))
		require.NoError(t, err)
		want, err := tensor.SolveRegular(ctx, g, abStar(t))
		require.NoError(t, err)
		assert.True(t, want.Pairs.Equal(got), "(ab)* on graph %d: diff %v", k, want.Pairs.Diff(got))
	}
}
