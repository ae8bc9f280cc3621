// SPDX-License-Identifier: MIT

package automaton

import "fmt"

// Kind distinguishes terminal edges from nonterminal (box) edges.
type Kind uint8

const (
	// KindTerminal labels an edge that consumes one graph label.
	KindTerminal Kind = iota
	// KindNonterminal labels an edge standing for a whole box derivation.
	KindNonterminal
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "nonterminal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Symbol is a tagged transition label.
type Symbol struct {
	Label string
	Kind  Kind
}

// Terminal returns the terminal symbol for label.
func Terminal(label string) Symbol { return Symbol{Label: label, Kind: KindTerminal} }

// Nonterminal returns the nonterminal symbol for box.
func Nonterminal(box string) Symbol { return Symbol{Label: box, Kind: KindNonterminal} }

// Terminals converts plain labels into a terminal word.
func Terminals(labels ...string) []Symbol {
	w := make([]Symbol, len(labels))
	for i, l := range labels {
		w[i] = Terminal(l)
	}

	return w
}

// String renders terminals bare and nonterminals as <name>.
func (s Symbol) String() string {
	if s.Kind == KindNonterminal {
		return "<" + s.Label + ">"
	}

	return s.Label
}

// less orders terminals before nonterminals, then by label.
func (s Symbol) less(o Symbol) bool {
	if s.Kind != o.Kind {
		return s.Kind < o.Kind
	}

	return s.Label < o.Label
}

// Transition is one labeled edge between two states.
type Transition[S comparable] struct {
	From   S
	Symbol Symbol
	To     S
}

// Pair is a product-automaton state.
type Pair[A, B comparable] struct {
	First  A
	Second B
}
