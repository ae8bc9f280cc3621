// SPDX-License-Identifier: MIT

package wcnf

import (
	"fmt"

	"github.com/katalvlaran/cfpq/rsm"
)

// Sub-state names used by ToRSM boxes.
const (
	subStart = "start"
	subEnd   = "end"
)

// ToRSM rewrites gr into an equivalent RSM with one box per nonterminal:
// A → ε makes "start" final, A → a is start -a-> end, and A → B C is
// start -<B>-> "after:B" -<C>-> end. Nonterminals without productions get
// empty boxes.
func ToRSM(gr *Grammar) (*rsm.RSM, error) {
	if err := gr.Validate(); err != nil {
		return nil, err
	}
	b := rsm.NewBuilder(gr.Start)
	boxes := make(map[string]*rsm.BoxBuilder)
	for _, nt := range gr.Nonterminals() {
		boxes[nt] = b.Box(nt, subStart)
	}
	for _, p := range gr.Productions {
		box := boxes[p.Head]
		switch len(p.Body) {
		case 0:
			box.Final(subStart)
		case 1:
			box.Terminal(subStart, p.Body[0].Name, subEnd).Final(subEnd)
		case 2:
			mid := "after:" + p.Body[0].Name
			box.Call(subStart, p.Body[0].Name, mid).Call(mid, p.Body[1].Name, subEnd).Final(subEnd)
		}
	}
	r, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("wcnf: ToRSM: %w", err)
	}

	return r, nil
}
