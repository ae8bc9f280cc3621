// Package cfpqtest holds fixtures shared by solver tests: canonical
// grammars, the worked examples, a brute-force oracle and seeded random
// instances.
package cfpqtest

import (
	"github.com/katalvlaran/cfpq/rsm"
)

func mustBuild(b *rsm.Builder) *rsm.RSM {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}

	return r
}

// BalancedBrackets is S → a S b | ε.
func BalancedBrackets() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("0", "3").
		Terminal("0", "a", "1").
		Call("1", "S", "2").
		Terminal("2", "b", "3")

	return mustBuild(b)
}

// AnBn is S → a S b | a b.
func AnBn() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("3").
		Terminal("0", "a", "1").
		Call("1", "S", "2").
		Terminal("1", "b", "3").
		Terminal("2", "b", "3")

	return mustBuild(b)
}

// EmptyLanguage has a start box with no reachable final sub-state.
func EmptyLanguage() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Terminal("0", "a", "1").Call("1", "S", "2")

	return mustBuild(b)
}

// AStarB is the regular language a*b as a one-box RSM.
func AStarB() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("1").
		Terminal("0", "a", "0").
		Terminal("0", "b", "1")

	return mustBuild(b)
}

// Dyck2 is S → ε | a S b S | c S d S.
func Dyck2() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("0", "4", "8").
		Terminal("0", "a", "1").Call("1", "S", "2").Terminal("2", "b", "3").Call("3", "S", "4").
		Terminal("0", "c", "5").Call("5", "S", "6").Terminal("6", "d", "7").Call("7", "S", "8")

	return mustBuild(b)
}

// AlternatingAB is S → a A | ε, A → b S: the language (ab)* through two
// mutually recursive boxes.
func AlternatingAB() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("0", "2").Terminal("0", "a", "1").Call("1", "A", "2")
	b.Box("A", "0").Final("2").Terminal("0", "b", "1").Call("1", "S", "2")

	return mustBuild(b)
}

// LeftRecursive is S → S a | a: left recursion at the box start.
func LeftRecursive() *rsm.RSM {
	b := rsm.NewBuilder("S")
	b.Box("S", "0").Final("1", "2").
		Call("0", "S", "1").
		Terminal("1", "a", "2").
		Terminal("0", "a", "2")

	return mustBuild(b)
}

// Named lists every canonical grammar with its terminal alphabet.
func Named() []NamedGrammar {
	return []NamedGrammar{
		{"balanced", BalancedBrackets, []string{"a", "b"}},
		{"anbn", AnBn, []string{"a", "b"}},
		{"empty", EmptyLanguage, []string{"a", "b"}},
		{"astarb", AStarB, []string{"a", "b"}},
		{"dyck2", Dyck2, []string{"a", "b", "c", "d"}},
		{"alternating", AlternatingAB, []string{"a", "b"}},
		{"leftrec", LeftRecursive, []string{"a", "b"}},
	}
}

// NamedGrammar pairs a grammar constructor with its alphabet.
type NamedGrammar struct {
	Name     string
	Build    func() *rsm.RSM
	Alphabet []string
}
