package zykov_test

import (
	"testing"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/builder"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/zykov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classSizes(t *testing.T, res *zykov.Result, n int) {
	t.Helper()
	total := 0
	for _, c := range res.ColorClasses {
		total += len(c)
	}
	assert.Equal(t, n, total)
}

func TestCompleteGraphNeedsNColors(t *testing.T) {
	g := builder.CompleteGraph(4)
	res := zykov.New(g).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
	classSizes(t, res, 4)
}

func TestEmptyGraphIsOneColorable(t *testing.T) {
	g := builder.EmptyGraph(5)
	res := zykov.New(g).Run()
	assert.Equal(t, 1, res.ChromaticNumber)
	classSizes(t, res, 5)
}

func TestScenarioC1(t *testing.T) {
	g := builder.ScenarioC1()
	res := zykov.New(g).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
	classSizes(t, res, 8)
}

func TestMycielskiC5(t *testing.T) {
	g := builder.Mycielski(3)
	res := zykov.New(g).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
	classSizes(t, res, 5)
}

func TestApplyProducesProperColoring(t *testing.T) {
	g := builder.ScenarioC1()
	res := zykov.New(g).Run()
	assert.False(t, g.IsProper()) // nothing colored yet
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestBoundIsConsultedWithoutChangingAnswer(t *testing.T) {
	g := builder.ScenarioC1()
	calls := 0
	bound := zykov.WithBound(func(state *core.Graph, best int) bool {
		calls++
		return false // never actually prune; just observe every bound check
	})
	res := zykov.New(g, bound).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
	assert.Greater(t, calls, 0)
}
