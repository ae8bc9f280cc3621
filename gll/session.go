// SPDX-License-Identifier: MIT

package gll

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/rsm"
)

// ErrNilInput indicates a nil graph or grammar.
var ErrNilInput = errors.New("gll: nil graph or grammar")

// acceptState labels the sentinel accept node; its graph position is -1.
var acceptState = rsm.State{Box: "$", Sub: "fin"}

const acceptPos = -1

// moveKind tags one outgoing move of a grammar state.
type moveKind uint8

const (
	moveTerminal moveKind = iota
	moveCall
	movePop
)

// move is one precomputed transition of a grammar state.
type move struct {
	kind  moveKind
	label string    // moveTerminal
	next  rsm.State // moveTerminal
	call  rsm.Call  // moveCall
}

// Session holds the tables a run reads: graph successors per label and
// grammar moves per state. It is immutable after NewSession.
type Session struct {
	graph     *core.Graph
	nodes2ref map[int]map[string][]int
	moves     map[rsm.State][]move
	start     rsm.State
}

// NewSession precomputes the successor and move tables.
func NewSession(g *core.Graph, grammar *rsm.RSM) (*Session, error) {
	if g == nil || grammar == nil {
		return nil, ErrNilInput
	}
	s := &Session{
		graph:     g,
		nodes2ref: g.LabeledAdjacency(),
		moves:     make(map[rsm.State][]move),
		start:     grammar.StartState(),
	}
	for st, data := range grammar.Table() {
		s.moves[st] = movesOf(data)
	}

	return s, nil
}

// movesOf orders moves as terminals by label, calls by callee, then pop.
func movesOf(data rsm.StateData) []move {
	labels := make([]string, 0, len(data.Terminals))
	for l := range data.Terminals {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	boxes := make([]string, 0, len(data.Calls))
	for b := range data.Calls {
		boxes = append(boxes, b)
	}
	sort.Strings(boxes)

	out := make([]move, 0, len(labels)+len(boxes)+1)
	for _, l := range labels {
		out = append(out, move{kind: moveTerminal, label: l, next: data.Terminals[l]})
	}
	for _, b := range boxes {
		out = append(out, move{kind: moveCall, call: data.Calls[b]})
	}
	if data.Final {
		out = append(out, move{kind: movePop})
	}

	return out
}
