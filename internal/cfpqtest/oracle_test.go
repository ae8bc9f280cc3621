package cfpqtest_test

import (
	"testing"

	"github.com/katalvlaran/cfpq/internal/cfpqtest"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/stretchr/testify/assert"
)

func TestDerives(t *testing.T) {
	bal := cfpqtest.BalancedBrackets()
	assert.True(t, cfpqtest.Derives(bal, nil))
	assert.True(t, cfpqtest.Derives(bal, []string{"a", "a", "b", "b"}))
	assert.False(t, cfpqtest.Derives(bal, []string{"a", "b", "b"}))

	assert.False(t, cfpqtest.Derives(cfpqtest.AnBn(), nil))
	assert.True(t, cfpqtest.Derives(cfpqtest.AnBn(), []string{"a", "b"}))

	assert.True(t, cfpqtest.Derives(cfpqtest.Dyck2(), []string{"a", "b", "c", "a", "b", "d"}))
	assert.False(t, cfpqtest.Derives(cfpqtest.Dyck2(), []string{"a", "d"}))

	assert.True(t, cfpqtest.Derives(cfpqtest.AlternatingAB(), []string{"a", "b", "a", "b"}))
	assert.False(t, cfpqtest.Derives(cfpqtest.AlternatingAB(), []string{"a", "b", "a"}))

	assert.True(t, cfpqtest.Derives(cfpqtest.LeftRecursive(), []string{"a", "a", "a"}))
	assert.False(t, cfpqtest.Derives(cfpqtest.EmptyLanguage(), []string{"a"}))
}

func TestBruteMatchesExamples(t *testing.T) {
	for _, ex := range cfpqtest.Examples() {
		t.Run(ex.Name, func(t *testing.T) {
			got := cfpqtest.Brute(ex.Graph, ex.Grammar, ex.Graph.NodeCount()+1, reach.Filter{})
			assert.True(t, reach.NewSet(ex.Want...).Equal(got), "got %v", got)
		})
	}
}
