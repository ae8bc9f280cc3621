package tensor

import (
	"context"
	"testing"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// crossBox is a grammar automaton whose only edge leaves box A's start and
// lands on box B's final sub-state.
func crossBox(t *testing.T) *automaton.Automaton[rsm.State] {
	t.Helper()
	a0, b1 := rsm.State{Box: "A", Sub: "0"}, rsm.State{Box: "B", Sub: "1"}
	am, err := automaton.New([]rsm.State{a0, b1}, []rsm.State{a0}, []rsm.State{b1},
		[]automaton.Transition[rsm.State]{{From: a0, Symbol: automaton.Terminal("a"), To: b1}})
	require.NoError(t, err)

	return am
}

func edgeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, "a"))

	return g
}

func TestRoundRejectsCrossBoxPair(t *testing.T) {
	graphAM, err := automaton.FromGraph(edgeGraph(t), nil, nil)
	require.NoError(t, err)
	s := &saturation{graph: graphAM, grammar: crossBox(t), workers: 1}

	deltas, fresh, err := s.round()
	require.ErrorIs(t, err, ErrBoxMismatch)
	assert.Contains(t, err.Error(), "A.0")
	assert.Contains(t, err.Error(), "B.1")
	assert.Nil(t, deltas)
	assert.Zero(t, fresh)
}

func TestSolveRecordsBoxMismatchOnSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	res, err := solveFlat(context.Background(), edgeGraph(t), crossBox(t), "A", []string{"A", "B"}, reach.DefaultOptions())
	require.ErrorIs(t, err, ErrBoxMismatch)
	assert.Nil(t, res)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tensor.Solve", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Status().Description, "different boxes")

	recorded := false
	for _, ev := range spans[0].Events() {
		if ev.Name == "exception" {
			recorded = true
		}
	}
	assert.True(t, recorded, "error event missing")
}
