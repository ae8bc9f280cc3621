// SPDX-License-Identifier: MIT

package rsm

import (
	"fmt"

	"github.com/katalvlaran/cfpq/automaton"
)

// RSM is a validated, immutable recursive state machine.
type RSM struct {
	start string
	boxes map[string]Box
	names []string
	table map[State]StateData
}

// StartBox returns the name of the start box.
func (r *RSM) StartBox() string { return r.start }

// StartState returns the start sub-state of the start box.
func (r *RSM) StartState() State {
	return State{Box: r.start, Sub: r.boxes[r.start].Start}
}

// BoxNames returns box names in ascending order.
func (r *RSM) BoxNames() []string { return append([]string(nil), r.names...) }

// Box returns the snapshot of box name.
func (r *RSM) Box(name string) (Box, bool) {
	b, ok := r.boxes[name]

	return b, ok
}

// States returns every grammar position, ordered by box then sub-state.
func (r *RSM) States() []State {
	var out []State
	for _, name := range r.names {
		for _, sub := range r.boxes[name].Subs {
			out = append(out, State{Box: name, Sub: sub})
		}
	}

	return out
}

// Table returns the per-state view. The map is shared; callers must not
// modify it.
func (r *RSM) Table() map[State]StateData { return r.table }

func (r *RSM) buildTable() map[State]StateData {
	t := make(map[State]StateData)
	for _, name := range r.names {
		box := r.boxes[name]
		for _, sub := range box.Subs {
			t[State{Box: name, Sub: sub}] = StateData{
				Terminals: make(map[string]State),
				Calls:     make(map[string]Call),
			}
		}
		for _, f := range box.Finals {
			d := t[State{Box: name, Sub: f}]
			d.Final = true
			t[State{Box: name, Sub: f}] = d
		}
		for _, e := range box.Terminals {
			t[State{Box: name, Sub: e.From}].Terminals[e.Label] = State{Box: name, Sub: e.To}
		}
		for _, c := range box.Calls {
			t[State{Box: name, Sub: c.From}].Calls[c.Box] = Call{
				Entry:  State{Box: c.Box, Sub: r.boxes[c.Box].Start},
				Return: State{Box: name, Sub: c.To},
			}
		}
	}

	return t
}

// Flatten returns one automaton holding every box side by side.
//
// Terminal edges carry automaton.Terminal(label). A call from -<B>-> to is
// an automaton.Nonterminal(B) edge between the caller's from and to
// sub-states; it becomes traversable once a solver records B-facts on the
// graph side. Start states are every box start, final states every box
// final.
func (r *RSM) Flatten() (*automaton.Automaton[State], error) {
	var (
		starts, finals []State
		transitions    []automaton.Transition[State]
	)
	for _, name := range r.names {
		box := r.boxes[name]
		starts = append(starts, State{Box: name, Sub: box.Start})
		for _, f := range box.Finals {
			finals = append(finals, State{Box: name, Sub: f})
		}
		for _, e := range box.Terminals {
			transitions = append(transitions, automaton.Transition[State]{
				From:   State{Box: name, Sub: e.From},
				Symbol: automaton.Terminal(e.Label),
				To:     State{Box: name, Sub: e.To},
			})
		}
		for _, c := range box.Calls {
			transitions = append(transitions, automaton.Transition[State]{
				From:   State{Box: name, Sub: c.From},
				Symbol: automaton.Nonterminal(c.Box),
				To:     State{Box: name, Sub: c.To},
			})
		}
	}
	a, err := automaton.New(r.States(), starts, finals, transitions)
	if err != nil {
		return nil, fmt.Errorf("rsm: Flatten: %w", err)
	}

	return a, nil
}
