package gll

import (
	"testing"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/rsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, "a"))
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("1").Terminal("0", "a", "1")
	grammar, err := b.Build()
	require.NoError(t, err)
	s, err := NewSession(g, grammar)
	require.NoError(t, err)

	return s
}

func TestAcceptNodeIsHandleZero(t *testing.T) {
	r := testSession(t).newRun(nil)
	assert.Equal(t, gssKey{state: acceptState, pos: acceptPos}, r.keys[acceptID])
	assert.Equal(t, acceptID, r.node(acceptState, acceptPos))
}

func TestNodeIsMemoized(t *testing.T) {
	r := testSession(t).newRun(nil)
	st := rsm.State{Box: "S", Sub: "0"}
	a := r.node(st, 1)
	assert.Equal(t, a, r.node(st, 1))
	assert.NotEqual(t, a, r.node(st, 2))
	assert.Len(t, r.keys, 3)
}

func TestAddReferenceIdempotent(t *testing.T) {
	r := testSession(t).newRun(nil)
	callee := r.node(rsm.State{Box: "S", Sub: "0"}, 1)
	caller := r.node(rsm.State{Box: "S", Sub: "0"}, 7)
	ret := rsm.State{Box: "S", Sub: "1"}

	r.pop(callee, 2)
	r.addReference(callee, ret, caller)
	require.Len(t, r.queue, 1, "first registration replays the popSet")
	assert.Equal(t, descriptor{node: caller, state: ret, pos: 2}, r.queue[0])

	refs := len(r.references[callee][ret])
	r.addReference(callee, ret, caller)
	assert.Len(t, r.queue, 1, "re-registration enqueues nothing")
	assert.Len(t, r.references[callee][ret], refs)
}

func TestPopIdempotent(t *testing.T) {
	r := testSession(t).newRun(nil)
	callee := r.node(rsm.State{Box: "S", Sub: "0"}, 1)
	caller := r.node(rsm.State{Box: "S", Sub: "0"}, 7)
	ret := rsm.State{Box: "S", Sub: "1"}
	r.addReference(callee, ret, caller)
	require.Empty(t, r.queue)

	r.pop(callee, 2)
	require.Len(t, r.queue, 1)
	r.pop(callee, 2)
	assert.Len(t, r.queue, 1, "re-pop enqueues nothing")
	assert.Len(t, r.popSet[callee], 1)
}

func TestPopIntoAcceptRecordsPair(t *testing.T) {
	r := testSession(t).newRun(nil)
	start := r.node(rsm.State{Box: "S", Sub: "0"}, 1)
	r.addReference(start, acceptState, acceptID)
	r.pop(start, 2)
	assert.Empty(t, r.queue)
	assert.Equal(t, 1, r.pairs.Len())
}

func TestEnqueueDeduplicates(t *testing.T) {
	r := testSession(t).newRun(nil)
	d := descriptor{node: 1, state: rsm.State{Box: "S", Sub: "0"}, pos: 1}
	assert.True(t, r.enqueue(d))
	r.next()
	assert.False(t, r.enqueue(d), "a processed descriptor is never re-added")
	assert.Empty(t, r.queue)
}

func TestMovesOrder(t *testing.T) {
	ms := movesOf(rsm.StateData{
		Terminals: map[string]rsm.State{"b": {}, "a": {}},
		Calls:     map[string]rsm.Call{"X": {}},
		Final:     true,
	})
	require.Len(t, ms, 4)
	assert.Equal(t, []moveKind{moveTerminal, moveTerminal, moveCall, movePop},
		[]moveKind{ms[0].kind, ms[1].kind, ms[2].kind, ms[3].kind})
	assert.Equal(t, "a", ms[0].label)
}
