// Package bfs_test provides benchmarks for the product BFS on random
// labeled graphs.
package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/cfpq/bfs"
	"github.com/katalvlaran/cfpq/builder"
	"github.com/katalvlaran/cfpq/reach"
)

var sinkSet *reach.Set

func BenchmarkRegularPairs(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(1337)},
				builder.RandomLabeled(n, 3*n, "a", "b"))
			if err != nil {
				b.Fatal(err)
			}
			q := aStarB(b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := bfs.RegularPairs(context.Background(), g, q)
				if err != nil {
					b.Fatal(err)
				}
				sinkSet = s
			}
		})
	}
}
