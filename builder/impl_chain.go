// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpq/core"
)

const (
	methodChain = "Chain"
	methodEdges = "Edges"
)

// Chain builds start → start+1 → … with the i-th edge labeled labels[i].
// Node ids are shifted by the configured base.
func Chain(start int, labels ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkLabels(methodChain, labels); err != nil {
			return err
		}
		if start < 0 {
			return fmt.Errorf("%s: start=%d: %w", methodChain, start, ErrTooFewVertices)
		}
		first := cfg.base + start
		for i, l := range labels {
			if err := addEdge(g, methodChain, first+i, first+i+1, l); err != nil {
				return err
			}
		}

		return nil
	}
}

// Edges adds the given edges verbatim (ids are shifted by the base).
// Unlabeled edges are allowed; solvers ignore them.
func Edges(es ...core.Edge) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range es {
			if err := addEdge(g, methodEdges, cfg.base+e.From, cfg.base+e.To, e.Label); err != nil {
				return err
			}
		}

		return nil
	}
}
