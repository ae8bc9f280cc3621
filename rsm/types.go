// SPDX-License-Identifier: MIT

package rsm

// State is a grammar position: a sub-state inside a named box.
type State struct {
	Box string
	Sub string
}

// String renders Box.Sub.
func (s State) String() string { return s.Box + "." + s.Sub }

// TerminalEdge is a from -label-> to move inside one box.
type TerminalEdge struct {
	From  string
	Label string
	To    string
}

// CallEdge is a from -<Box>-> to move: run Box, then continue at To.
type CallEdge struct {
	From string
	Box  string
	To   string
}

// Box is a read-only snapshot of one component automaton.
// Subs and Finals are sorted; edges keep declaration order.
type Box struct {
	Name      string
	Start     string
	Subs      []string
	Finals    []string
	Terminals []TerminalEdge
	Calls     []CallEdge
}

// Call is a resolved nonterminal move: enter the callee at Entry, resume the
// caller at Return once the callee reaches a final sub-state.
type Call struct {
	Entry  State
	Return State
}

// StateData is the per-State view used by the GSS solver.
type StateData struct {
	// Terminals maps a label to the next state.
	Terminals map[string]State
	// Calls maps a callee box name to its resolved call.
	Calls map[string]Call
	// Final is true when the state ends its box.
	Final bool
}
