// SPDX-License-Identifier: MIT

package rsm

import (
	"fmt"
	"sort"
)

// Builder assembles an RSM. Methods record the first error and turn later
// calls into no-ops; Build reports it.
type Builder struct {
	start string
	boxes map[string]*BoxBuilder
	order []string
	err   error
}

// BoxBuilder accumulates one box.
type BoxBuilder struct {
	parent *Builder
	name   string
	start  string
	finals map[string]struct{}
	subs   map[string]struct{}

	terms map[[2]string]string // (from, label) → to
	calls map[[2]string]string // (from, box) → to

	termOrder []TerminalEdge
	callOrder []CallEdge
}

// NewBuilder starts an RSM whose start box is startBox.
func NewBuilder(startBox string) *Builder {
	return &Builder{start: startBox, boxes: make(map[string]*BoxBuilder)}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Box returns the builder for box name, creating it with start sub-state
// startSub. Asking again for the same box with another start is an error.
func (b *Builder) Box(name, startSub string) *BoxBuilder {
	if bb, ok := b.boxes[name]; ok {
		if bb.start != startSub {
			b.fail(fmt.Errorf("rsm: box %q start %q redeclared as %q: %w", name, bb.start, startSub, ErrConflictingTransition))
		}

		return bb
	}
	if name == "" {
		b.fail(fmt.Errorf("rsm: Box: %w", ErrEmptyBoxName))
	}
	if startSub == "" {
		b.fail(fmt.Errorf("rsm: box %q start: %w", name, ErrEmptyLabel))
	}
	bb := &BoxBuilder{
		parent: b,
		name:   name,
		start:  startSub,
		finals: make(map[string]struct{}),
		subs:   map[string]struct{}{startSub: {}},
		terms:  make(map[[2]string]string),
		calls:  make(map[[2]string]string),
	}
	b.boxes[name] = bb
	b.order = append(b.order, name)

	return bb
}

// Final marks sub-states as final.
func (bb *BoxBuilder) Final(subs ...string) *BoxBuilder {
	for _, s := range subs {
		if s == "" {
			bb.parent.fail(fmt.Errorf("rsm: box %q final: %w", bb.name, ErrEmptyLabel))
			continue
		}
		bb.finals[s] = struct{}{}
		bb.subs[s] = struct{}{}
	}

	return bb
}

// Terminal adds from -label-> to.
func (bb *BoxBuilder) Terminal(from, label, to string) *BoxBuilder {
	if from == "" || to == "" || label == "" {
		bb.parent.fail(fmt.Errorf("rsm: box %q terminal %q-%q->%q: %w", bb.name, from, label, to, ErrEmptyLabel))

		return bb
	}
	key := [2]string{from, label}
	if prev, ok := bb.terms[key]; ok {
		if prev != to {
			bb.parent.fail(fmt.Errorf("rsm: box %q: %q-%q-> both %q and %q: %w", bb.name, from, label, prev, to, ErrConflictingTransition))
		}

		return bb
	}
	bb.terms[key] = to
	bb.termOrder = append(bb.termOrder, TerminalEdge{From: from, Label: label, To: to})
	bb.subs[from], bb.subs[to] = struct{}{}, struct{}{}

	return bb
}

// Call adds from -<box>-> to.
func (bb *BoxBuilder) Call(from, box, to string) *BoxBuilder {
	if box == "" {
		bb.parent.fail(fmt.Errorf("rsm: box %q call from %q: %w", bb.name, from, ErrEmptyBoxName))

		return bb
	}
	if from == "" || to == "" {
		bb.parent.fail(fmt.Errorf("rsm: box %q call %q-<%s>->%q: %w", bb.name, from, box, to, ErrEmptyLabel))

		return bb
	}
	key := [2]string{from, box}
	if prev, ok := bb.calls[key]; ok {
		if prev != to {
			bb.parent.fail(fmt.Errorf("rsm: box %q: %q-<%s>-> both %q and %q: %w", bb.name, from, box, prev, to, ErrConflictingTransition))
		}

		return bb
	}
	bb.calls[key] = to
	bb.callOrder = append(bb.callOrder, CallEdge{From: from, Box: box, To: to})
	bb.subs[from], bb.subs[to] = struct{}{}, struct{}{}

	return bb
}

// Build validates and freezes the RSM.
//
// Errors: the first recorded builder error, ErrUnknownStartBox,
// ErrUndefinedBox.
func (b *Builder) Build() (*RSM, error) {
	if b.err != nil {
		return nil, b.err
	}
	if _, ok := b.boxes[b.start]; !ok {
		return nil, fmt.Errorf("rsm: start box %q: %w", b.start, ErrUnknownStartBox)
	}
	for _, name := range b.order {
		for _, c := range b.boxes[name].callOrder {
			if _, ok := b.boxes[c.Box]; !ok {
				return nil, fmt.Errorf("rsm: box %q calls %q: %w", name, c.Box, ErrUndefinedBox)
			}
		}
	}

	r := &RSM{start: b.start, boxes: make(map[string]Box, len(b.boxes))}
	for _, name := range b.order {
		bb := b.boxes[name]
		r.boxes[name] = Box{
			Name:      name,
			Start:     bb.start,
			Subs:      sortedSet(bb.subs),
			Finals:    sortedSet(bb.finals),
			Terminals: append([]TerminalEdge(nil), bb.termOrder...),
			Calls:     append([]CallEdge(nil), bb.callOrder...),
		}
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	r.table = r.buildTable()

	return r, nil
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
