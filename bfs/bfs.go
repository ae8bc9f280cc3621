// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/cfpq/automaton"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
)

// queueItem pairs a product state with its BFS depth.
type queueItem struct {
	st    ProductState
	depth int
}

// query is the automaton side of the product, reduced to per-label
// successor lists and the start/final masks.
type query struct {
	starts []int
	final  []bool
	next   map[string][][]int // label → state → successor states
}

func newQuery[S comparable](q *automaton.Automaton[S]) query {
	n := q.NumberOfStates()
	out := query{final: make([]bool, n), next: make(map[string][][]int)}
	for i := 0; i < n; i++ {
		if q.IsStart(i) {
			out.starts = append(out.starts, i)
		}
		out.final[i] = q.IsFinal(i)
	}
	for _, sym := range q.Symbols() {
		if sym.Kind != automaton.KindTerminal {
			continue
		}
		rows := make([][]int, n)
		q.Matrix(sym).Each(func(i, j int) { rows[i] = append(rows[i], j) })
		out.next[sym.Label] = rows
	}

	return out
}

// walker encapsulates mutable BFS state.
type walker struct {
	ctx     context.Context
	adj     map[int]map[string][]int
	labels  map[int][]string
	q       query
	opts    BFSOptions
	queue   []queueItem
	visited map[ProductState]bool
	res     *BFSResult
}

// Reachable runs BFS over g × query from start and reports the graph nodes
// reached in a final query state, with the visit order and depths.
//
// Errors: ErrGraphNil, ErrQueryNil, ErrStartVertexNotFound, ErrOptionViolation,
// ctx.Err(), or an OnVisit error.
func Reachable[S comparable](ctx context.Context, g *core.Graph, q *automaton.Automaton[S], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrQueryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: %d: %w", start, ErrStartVertexNotFound)
	}

	adj := g.LabeledAdjacency()
	return newWalker(ctx, adj, newQuery(q), o).run(start)
}

func newWalker(ctx context.Context, adj map[int]map[string][]int, q query, o BFSOptions) *walker {
	labels := make(map[int][]string, len(adj))
	for v, byLabel := range adj {
		ls := make([]string, 0, len(byLabel))
		for l := range byLabel {
			ls = append(ls, l)
		}
		sort.Strings(ls)
		labels[v] = ls
	}

	return &walker{ctx: ctx, adj: adj, labels: labels, q: q, opts: o}
}

// run resets the walker and explores from start.
func (w *walker) run(start int) (*BFSResult, error) {
	w.queue = w.queue[:0]
	w.visited = make(map[ProductState]bool)
	w.res = &BFSResult{
		Depth:   make(map[ProductState]int),
		parent:  make(map[ProductState]step),
		witness: make(map[int]ProductState),
	}
	for _, q0 := range w.q.starts {
		w.enqueue(ProductState{Node: start, State: q0}, 0, nil, "")
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	for v := range w.res.witness {
		w.res.Reached = append(w.res.Reached, v)
	}
	sort.Ints(w.res.Reached)

	return w.res, nil
}

// enqueue marks st visited at depth d, records its parent and adds it to
// the queue.
func (w *walker) enqueue(st ProductState, d int, from *ProductState, label string) {
	w.visited[st] = true
	w.res.Depth[st] = d
	if from != nil {
		w.res.parent[st] = step{from: *from, label: label}
	}
	w.queue = append(w.queue, queueItem{st: st, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the product state and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.st)
	if w.q.final[item.st.State] {
		if _, seen := w.res.witness[item.st.Node]; !seen {
			w.res.witness[item.st.Node] = item.st
		}
	}
	if err := w.opts.OnVisit(item.st, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.st, err)
	}

	return nil
}

// enqueueNeighbors expands every label shared by the node and the query.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, l := range w.labels[item.st.Node] {
		rows, ok := w.q.next[l]
		if !ok {
			continue
		}
		for _, nb := range w.adj[item.st.Node][l] {
			for _, qn := range rows[item.st.State] {
				st := ProductState{Node: nb, State: qn}
				if !w.visited[st] {
					from := item.st
					w.enqueue(st, nextDepth, &from, l)
				}
			}
		}
	}
}

// RegularPairs runs Reachable from every filtered start node and collects
// the (start, reached) pairs that pass the final filter.
func RegularPairs[S comparable](ctx context.Context, g *core.Graph, q *automaton.Automaton[S], opts ...reach.Option) (*reach.Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrQueryNil
	}
	o, err := reach.Gather(opts...)
	if err != nil {
		return nil, err
	}
	filter := o.Filter.Resolve(g)
	w := newWalker(ctx, g.LabeledAdjacency(), newQuery(q), DefaultOptions())

	out := reach.NewSet()
	for _, s := range filter.StartNodes() {
		res, err := w.run(s)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Reached {
			if p := (reach.Pair{Start: s, End: v}); filter.Keep(p) {
				out.Add(p)
			}
		}
	}

	return out, nil
}
