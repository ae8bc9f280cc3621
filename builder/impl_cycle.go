// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpq/core"
)

const (
	methodCycle     = "Cycle"
	methodTwoCycles = "TwoCycles"
	minCycleNodes   = 1
)

// Cycle builds nodes 0..n-1 with edges i → (i+1) mod n labeled label.
// n = 1 yields a self-loop.
func Cycle(n int, label string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := checkLabels(methodCycle, []string{label}); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.base+i, cfg.base+(i+1)%n, label); err != nil {
				return err
			}
		}

		return nil
	}
}

// TwoCycles builds two directed cycles sharing node 0: the first has n+1
// nodes (0, 1..n) joined by labelA edges, the second m+1 nodes
// (0, n+1..n+m) joined by labelB edges. Over S → a S b | a b it is the
// classic worst case for context-free reachability.
func TwoCycles(n, m int, labelA, labelB string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 || m < 1 {
			return fmt.Errorf("%s: n=%d m=%d: %w", methodTwoCycles, n, m, ErrTooFewVertices)
		}
		if err := checkLabels(methodTwoCycles, []string{labelA, labelB}); err != nil {
			return err
		}
		b := cfg.base
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodTwoCycles, b+i, b+i+1, labelA); err != nil {
				return err
			}
		}
		if err := addEdge(g, methodTwoCycles, b+n, b, labelA); err != nil {
			return err
		}

		prev := b
		for i := n + 1; i <= n+m; i++ {
			if err := addEdge(g, methodTwoCycles, prev, b+i, labelB); err != nil {
				return err
			}
			prev = b + i
		}

		return addEdge(g, methodTwoCycles, prev, b, labelB)
	}
}
