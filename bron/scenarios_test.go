package bron_test

import (
	"testing"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/bron"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/builder"
	"github.com/stretchr/testify/assert"
)

func TestScenarioG1Cliques(t *testing.T) {
	g := builder.ScenarioG1()
	want := [][]int{{0, 1, 2, 3}, {0, 1, 4}, {1, 2, 6}, {1, 4, 6}, {3, 5}, {4, 5, 6, 7}}

	noPivot := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeAll)).Run()
	assert.Equal(t, want, sortedCliques(noPivot.Cliques))

	pivot := bron.New(g, bron.VariantPivot, bron.WithMode(bron.ModeAll)).Run()
	assert.Equal(t, want, sortedCliques(pivot.Cliques))

	assert.Equal(t, 4, maxLen(noPivot.Cliques))
}

func TestScenarioG2Cliques(t *testing.T) {
	g := builder.ScenarioG2()
	want := [][]int{{0, 1, 2, 3}, {0, 1, 4}, {1, 2, 3, 6}, {1, 4, 6}, {4, 5, 6, 7}, {7, 8}}

	res := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeAll)).Run()
	assert.Equal(t, want, sortedCliques(res.Cliques))
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 4, maxLen(res.Cliques))
}

func maxLen(cliques [][]int) int {
	m := 0
	for _, c := range cliques {
		if len(c) > m {
			m = len(c)
		}
	}

	return m
}
