package cfpqtest

import (
	"strings"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
)

// Derives reports whether the start box of r derives word, by a fixpoint
// over (state, i, j) facts: from state, word[i:j] reaches a final
// sub-state of the same box.
func Derives(r *rsm.RSM, word []string) bool {
	tab := r.Table()
	states := r.States()
	n := len(word)

	type key struct {
		s    rsm.State
		i, j int
	}
	facts := make(map[key]bool)

	for changed := true; changed; {
		changed = false
		for _, st := range states {
			data := tab[st]
			for i := 0; i <= n; i++ {
				for j := i; j <= n; j++ {
					k := key{st, i, j}
					if facts[k] {
						continue
					}
					ok := i == j && data.Final
					if !ok && i < j {
						if nx, has := data.Terminals[word[i]]; has && facts[key{nx, i + 1, j}] {
							ok = true
						}
					}
					for _, c := range data.Calls {
						if ok {
							break
						}
						for m := i; m <= j; m++ {
							if facts[key{c.Entry, i, m}] && facts[key{c.Return, m, j}] {
								ok = true
								break
							}
						}
					}
					if ok {
						facts[k] = true
						changed = true
					}
				}
			}
		}
	}

	return facts[key{r.StartState(), 0, n}]
}

// Brute enumerates every path of at most maxLen labeled edges and keeps
// (u, v) when the path word is derived by r. Unlabeled edges are skipped.
// On acyclic graphs a maxLen ≥ NodeCount-1 makes the answer exact.
func Brute(g *core.Graph, r *rsm.RSM, maxLen int, f reach.Filter) *reach.Set {
	adj := g.LabeledAdjacency()
	resolved := f.Resolve(g)
	memo := make(map[string]bool)
	out := reach.NewSet()

	var walk func(start, at int, word []string)
	walk = func(start, at int, word []string) {
		w := strings.Join(word, "\x00")
		ok, seen := memo[w]
		if !seen {
			ok = Derives(r, word)
			memo[w] = ok
		}
		if p := (reach.Pair{Start: start, End: at}); ok && resolved.Keep(p) {
			out.Add(p)
		}
		if len(word) == maxLen {
			return
		}
		for label, succ := range adj[at] {
			for _, nx := range succ {
				walk(start, nx, append(word[:len(word):len(word)], label))
			}
		}
	}
	for _, s := range resolved.StartNodes() {
		walk(s, s, nil)
	}

	return out
}
