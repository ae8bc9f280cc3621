// SPDX-License-Identifier: MIT

package gll

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
)

// ctxCheckEvery is how many descriptors run between context checks.
const ctxCheckEvery = 256

// nodeID is a handle into a run's GSS arena. Handle 0 is the accept node.
type nodeID int32

const acceptID nodeID = 0

type gssKey struct {
	state rsm.State
	pos   int
}

// descriptor is one unit of pending work.
type descriptor struct {
	node  nodeID
	state rsm.State
	pos   int
}

// Result is the outcome of one run.
type Result struct {
	// Pairs are the filtered answers.
	Pairs *reach.Set
	// Descriptors counts processed descriptors.
	Descriptors int
	// StackNodes counts GSS nodes, excluding the accept node.
	StackNodes int
}

// run is the mutable state of one query: the GSS arena with its side
// tables, the dedup set and the work queue.
type run struct {
	s *Session

	keys       []gssKey
	memo       map[gssKey]nodeID
	references []map[rsm.State]map[nodeID]struct{}
	popSet     []map[int]struct{}

	added   map[descriptor]struct{}
	queue   []descriptor
	shuffle *rand.Rand

	pairs     *reach.Set
	processed int
}

func (s *Session) newRun(shuffle *rand.Rand) *run {
	r := &run{
		s:       s,
		memo:    make(map[gssKey]nodeID),
		added:   make(map[descriptor]struct{}),
		shuffle: shuffle,
		pairs:   reach.NewSet(),
	}
	if got := r.node(acceptState, acceptPos); got != acceptID {
		panic("gll: accept node must be the first arena entry")
	}

	return r
}

// node returns the handle for (state, pos), creating it on first use.
func (r *run) node(state rsm.State, pos int) nodeID {
	k := gssKey{state: state, pos: pos}
	if id, ok := r.memo[k]; ok {
		return id
	}
	id := nodeID(len(r.keys))
	r.keys = append(r.keys, k)
	r.references = append(r.references, make(map[rsm.State]map[nodeID]struct{}))
	r.popSet = append(r.popSet, make(map[int]struct{}))
	r.memo[k] = id

	return id
}

// enqueue adds d unless it was ever added before.
func (r *run) enqueue(d descriptor) bool {
	if _, ok := r.added[d]; ok {
		return false
	}
	r.added[d] = struct{}{}
	r.queue = append(r.queue, d)

	return true
}

// emit routes a continuation synthesized while finishing node from:
// resuming the accept node records an answer, anything else is enqueued.
func (r *run) emit(d descriptor, from nodeID) {
	if d.node == acceptID {
		r.pairs.Add(reach.Pair{Start: r.keys[from].pos, End: d.pos})
		return
	}
	r.enqueue(d)
}

// addReference registers caller as waiting on callee to resume at ret.
// A new edge replays every position callee already finished at; an
// existing edge is left as is.
func (r *run) addReference(callee nodeID, ret rsm.State, caller nodeID) {
	callers, ok := r.references[callee][ret]
	if !ok {
		callers = make(map[nodeID]struct{})
		r.references[callee][ret] = callers
	}
	if _, dup := callers[caller]; dup {
		return
	}
	callers[caller] = struct{}{}
	for p := range r.popSet[callee] {
		r.emit(descriptor{node: caller, state: ret, pos: p}, callee)
	}
}

// pop records that n finished at pos and resumes every registered caller.
// A position already in the popSet is a no-op.
func (r *run) pop(n nodeID, pos int) {
	if _, done := r.popSet[n][pos]; done {
		return
	}
	r.popSet[n][pos] = struct{}{}
	for ret, callers := range r.references[n] {
		for c := range callers {
			r.emit(descriptor{node: c, state: ret, pos: pos}, n)
		}
	}
}

// next removes a descriptor from the queue: a random one when shuffling,
// otherwise the most recent.
func (r *run) next() descriptor {
	last := len(r.queue) - 1
	if r.shuffle != nil && last > 0 {
		i := r.shuffle.Intn(last + 1)
		r.queue[i], r.queue[last] = r.queue[last], r.queue[i]
	}
	d := r.queue[last]
	r.queue = r.queue[:last]

	return d
}

// step processes one descriptor.
func (r *run) step(d descriptor) {
	r.processed++
	for _, m := range r.s.moves[d.state] {
		switch m.kind {
		case moveTerminal:
			for _, nx := range r.s.nodes2ref[d.pos][m.label] {
				r.enqueue(descriptor{node: d.node, state: m.next, pos: nx})
			}
		case moveCall:
			callee := r.node(m.call.Entry, d.pos)
			r.addReference(callee, m.call.Return, d.node)
			r.enqueue(descriptor{node: callee, state: m.call.Entry, pos: d.pos})
		case movePop:
			r.pop(d.node, d.pos)
		}
	}
}

// seed registers each start node under the accept node and enqueues its
// entry descriptor.
func (r *run) seed(starts []int) {
	for _, s := range starts {
		n := r.node(r.s.start, s)
		r.addReference(n, acceptState, acceptID)
		r.enqueue(descriptor{node: n, state: r.s.start, pos: s})
	}
}

// drain processes descriptors until the queue is empty.
func (r *run) drain(ctx context.Context) error {
	for len(r.queue) > 0 {
		if r.processed%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		r.step(r.next())
	}

	return nil
}

// Run answers the session's query. Start and final filters, shuffling and
// the logger come from opts.
//
// Errors: reach.ErrOptionViolation, ctx.Err().
func (s *Session) Run(ctx context.Context, opts ...reach.Option) (res *Result, err error) {
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}
	filter := o.Filter.Resolve(s.graph)

	ctx, span := startRunSpan(ctx, len(filter.StartNodes()))
	defer span.End()
	began := time.Now()
	r := s.newRun(o.Shuffle)
	defer func() {
		finishRunSpan(span, res, err)
		recordRun(ctx, r.processed, time.Since(began), err == nil)
	}()

	r.seed(filter.StartNodes())
	if err = r.drain(ctx); err != nil {
		return nil, err
	}

	pairs := reach.NewSet()
	for _, p := range r.pairs.Sorted() {
		if filter.IsFinal(p.End) {
			pairs.Add(p)
		}
	}
	res = &Result{Pairs: pairs, Descriptors: r.processed, StackNodes: len(r.keys) - 1}
	o.LoggerFor(ctx).Debug("gll: drained",
		"descriptors", res.Descriptors, "stack_nodes", res.StackNodes, "pairs", pairs.Len())

	return res, nil
}

// Solve is NewSession followed by Run.
func Solve(ctx context.Context, g *core.Graph, grammar *rsm.RSM, opts ...reach.Option) (*Result, error) {
	s, err := NewSession(g, grammar)
	if err != nil {
		return nil, err
	}

	return s.Run(ctx, opts...)
}
