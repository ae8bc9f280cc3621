// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpq/core"
)

const (
	methodRandomLabeled = "RandomLabeled"
	methodRandomDAG     = "RandomDAG"
)

// RandomLabeled adds nodes 0..n-1 and draws edges edges, each with a
// uniform source, target and label. Loops and parallel edges may occur.
// Requires an RNG (WithSeed/WithRand).
func RandomLabeled(n, edges int, labels ...string) Constructor {
	return randomEdges(methodRandomLabeled, n, edges, labels, false)
}

// RandomDAG is RandomLabeled restricted to edges from a lower to a higher
// id, so every path is shorter than n. Requires n ≥ 2 when edges > 0.
func RandomDAG(n, edges int, labels ...string) Constructor {
	return randomEdges(methodRandomDAG, n, edges, labels, true)
}

func randomEdges(method string, n, edges int, labels []string, acyclic bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 || edges < 0 || (acyclic && edges > 0 && n < 2) {
			return fmt.Errorf("%s: n=%d edges=%d: %w", method, n, edges, ErrTooFewVertices)
		}
		if err := checkLabels(method, labels); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.base + i); err != nil {
				return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
			}
		}
		for k := 0; k < edges; k++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if acyclic {
				for u == v {
					v = cfg.rng.Intn(n)
				}
				if u > v {
					u, v = v, u
				}
			}
			l := labels[cfg.rng.Intn(len(labels))]
			if err := addEdge(g, method, cfg.base+u, cfg.base+v, l); err != nil {
				return err
			}
		}

		return nil
	}
}
