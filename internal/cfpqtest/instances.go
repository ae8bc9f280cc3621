package cfpqtest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cfpq/builder"
	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
)

// Example is a worked query with its exact answer.
type Example struct {
	Name    string
	Graph   *core.Graph
	Grammar *rsm.RSM
	Want    []reach.Pair
}

func mustGraph(cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// Examples returns the three reference queries.
func Examples() []Example {
	return []Example{
		{
			Name:    "balanced brackets on a chain",
			Graph:   mustGraph(builder.Chain(1, "a", "a", "b", "b")),
			Grammar: BalancedBrackets(),
			Want: []reach.Pair{
				{Start: 1, End: 1}, {Start: 1, End: 5}, {Start: 2, End: 2}, {Start: 2, End: 4},
				{Start: 3, End: 3}, {Start: 4, End: 4}, {Start: 5, End: 5},
			},
		},
		{
			Name:    "empty language",
			Graph:   mustGraph(builder.Chain(1, "a", "a", "b", "b"), builder.Cycle(3, "a")),
			Grammar: EmptyLanguage(),
			Want:    nil,
		},
		{
			Name: "a*b with a self-loop",
			Graph: mustGraph(builder.Edges(
				core.Edge{From: 1, To: 1, Label: "a"},
				core.Edge{From: 1, To: 2, Label: "b"},
			)),
			Grammar: AStarB(),
			Want:    []reach.Pair{{Start: 1, End: 2}},
		},
	}
}

// Instance is a generated query. Acyclic instances admit an exact Brute
// answer with MaxLen.
type Instance struct {
	Name    string
	Graph   *core.Graph
	Grammar *rsm.RSM
	Acyclic bool
	MaxLen  int
}

// RandomInstances crosses every canonical grammar with perGrammar seeded
// random graphs over its alphabet, alternating DAGs and cyclic graphs.
func RandomInstances(seed int64, perGrammar int) []Instance {
	rng := rand.New(rand.NewSource(seed))
	var out []Instance
	for _, ng := range Named() {
		for k := 0; k < perGrammar; k++ {
			n := 2 + rng.Intn(5)
			m := rng.Intn(2*n + 1)
			acyclic := k%2 == 0
			con := builder.RandomLabeled(n, m, ng.Alphabet...)
			if acyclic {
				con = builder.RandomDAG(n, m, ng.Alphabet...)
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(rng.Int63())}, con)
			if err != nil {
				panic(err)
			}
			out = append(out, Instance{
				Name:    fmt.Sprintf("%s/%d", ng.Name, k),
				Graph:   g,
				Grammar: ng.Build(),
				Acyclic: acyclic,
				MaxLen:  maxLen(n, acyclic),
			})
		}
	}

	return out
}

// maxLen is exact for DAGs and a lower-bound probe for cyclic graphs.
func maxLen(n int, acyclic bool) int {
	if acyclic {
		return n - 1
	}

	return n + 1
}
