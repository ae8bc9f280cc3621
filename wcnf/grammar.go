// SPDX-License-Identifier: MIT

package wcnf

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotWeakNormalForm indicates a production outside A → ε | a | B C.
	ErrNotWeakNormalForm = errors.New("wcnf: production not in weak normal form")

	// ErrSyntax indicates an unparsable production line.
	ErrSyntax = errors.New("wcnf: syntax error")

	// ErrNoStart indicates an empty start symbol.
	ErrNoStart = errors.New("wcnf: empty start symbol")
)

// Epsilon spellings accepted by Parse for an empty body.
var epsilonTokens = map[string]bool{"ε": true, "eps": true, "epsilon": true}

// Symbol is a grammar symbol.
type Symbol struct {
	Name     string
	Terminal bool
}

// T returns a terminal symbol.
func T(name string) Symbol { return Symbol{Name: name, Terminal: true} }

// N returns a nonterminal symbol.
func N(name string) Symbol { return Symbol{Name: name} }

// Production is Head → Body; an empty Body is ε.
type Production struct {
	Head string
	Body []Symbol
}

// String renders "A -> B C", "A -> a" or "A -> ε".
func (p Production) String() string {
	if len(p.Body) == 0 {
		return p.Head + " -> ε"
	}
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.Name
	}

	return p.Head + " -> " + strings.Join(parts, " ")
}

// Grammar is a context-free grammar in weak normal form.
type Grammar struct {
	Start       string
	Productions []Production
}

// Validate checks the start symbol and the shape of every production.
func (g *Grammar) Validate() error {
	if g.Start == "" {
		return ErrNoStart
	}
	for i, p := range g.Productions {
		if p.Head == "" {
			return fmt.Errorf("wcnf: production #%d has empty head: %w", i, ErrNotWeakNormalForm)
		}
		switch len(p.Body) {
		case 0:
		case 1:
			if !p.Body[0].Terminal || p.Body[0].Name == "" {
				return fmt.Errorf("wcnf: %s: unit body must be a terminal: %w", p, ErrNotWeakNormalForm)
			}
		case 2:
			if p.Body[0].Terminal || p.Body[1].Terminal {
				return fmt.Errorf("wcnf: %s: binary body must be two nonterminals: %w", p, ErrNotWeakNormalForm)
			}
		default:
			return fmt.Errorf("wcnf: %s: body longer than two: %w", p, ErrNotWeakNormalForm)
		}
	}

	return nil
}

// Nonterminals returns every head or body nonterminal plus the start, sorted.
func (g *Grammar) Nonterminals() []string {
	set := map[string]struct{}{g.Start: {}}
	for _, p := range g.Productions {
		set[p.Head] = struct{}{}
		for _, s := range p.Body {
			if !s.Terminal {
				set[s.Name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Parse reads productions written as "A -> B C", "A -> a" or "A -> ε"
// (also "eps"/"epsilon"/nothing). Alternatives may be joined with "|".
// A body token is a nonterminal iff it appears as some head.
// The result is validated.
func Parse(start string, lines []string) (*Grammar, error) {
	type raw struct {
		head string
		body []string
	}
	var rules []raw
	heads := make(map[string]bool)
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		head, rhs, ok := strings.Cut(line, "->")
		head = strings.TrimSpace(head)
		if !ok || head == "" || strings.ContainsAny(head, " \t") {
			return nil, fmt.Errorf("wcnf: line %d %q: %w", n+1, line, ErrSyntax)
		}
		heads[head] = true
		for _, alt := range strings.Split(rhs, "|") {
			var body []string
			for _, tok := range strings.Fields(alt) {
				if !epsilonTokens[tok] {
					body = append(body, tok)
				}
			}
			rules = append(rules, raw{head: head, body: body})
		}
	}

	g := &Grammar{Start: start}
	for _, r := range rules {
		p := Production{Head: r.head}
		for _, tok := range r.body {
			p.Body = append(p.Body, Symbol{Name: tok, Terminal: !heads[tok]})
		}
		g.Productions = append(g.Productions, p)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// index groups productions by shape.
type index struct {
	nullable []string
	byLabel  map[string][]string    // terminal → heads
	byPair   map[[2]string][]string // (B, C) → heads
	binaries []Production
}

func newIndex(g *Grammar) index {
	ix := index{
		byLabel: make(map[string][]string),
		byPair:  make(map[[2]string][]string),
	}
	seenNull := make(map[string]bool)
	for _, p := range g.Productions {
		switch len(p.Body) {
		case 0:
			if !seenNull[p.Head] {
				seenNull[p.Head] = true
				ix.nullable = append(ix.nullable, p.Head)
			}
		case 1:
			ix.byLabel[p.Body[0].Name] = append(ix.byLabel[p.Body[0].Name], p.Head)
		case 2:
			b, c := p.Body[0].Name, p.Body[1].Name
			ix.byPair[[2]string{b, c}] = append(ix.byPair[[2]string{b, c}], p.Head)
			ix.binaries = append(ix.binaries, p)
		}
	}
	sort.Strings(ix.nullable)

	return ix
}
