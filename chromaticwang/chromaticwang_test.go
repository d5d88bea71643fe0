package chromaticwang_test

import (
	"testing"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/builder"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/chromaticwang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWangCompleteGraph(t *testing.T) {
	g := builder.CompleteGraph(4)
	res := chromaticwang.NewWang(g).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
}

func TestWangEmptyGraph(t *testing.T) {
	g := builder.EmptyGraph(5)
	res := chromaticwang.NewWang(g).Run()
	assert.Equal(t, 1, res.ChromaticNumber)
}

func TestWangScenarioC1(t *testing.T) {
	g := builder.ScenarioC1()
	res := chromaticwang.NewWang(g).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
}

func TestWangScenarioC2(t *testing.T) {
	g := builder.ScenarioG2()
	res := chromaticwang.NewWang(g).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
}

func TestWangMycielski(t *testing.T) {
	c5 := builder.Mycielski(3)
	res := chromaticwang.NewWang(c5).Run()
	assert.Equal(t, 3, res.ChromaticNumber)

	grotzsch := builder.Mycielski(4)
	res = chromaticwang.NewWang(grotzsch).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
}

func TestChristofidesCompleteGraph(t *testing.T) {
	g := builder.CompleteGraph(4)
	res := chromaticwang.NewChristofides(g).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
}

func TestChristofidesScenarioC1(t *testing.T) {
	g := builder.ScenarioC1()
	res := chromaticwang.NewChristofides(g).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
}

func TestChristofidesMycielski(t *testing.T) {
	grotzsch := builder.Mycielski(4)
	res := chromaticwang.NewChristofides(grotzsch).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
}

func TestChristofidesAndWangAgree(t *testing.T) {
	g := builder.ScenarioG2()
	wang := chromaticwang.NewWang(g).Run()
	christofides := chromaticwang.NewChristofides(g).Run()
	assert.Equal(t, wang.ChromaticNumber, christofides.ChromaticNumber)
}

func TestWangApplyProducesProperColoring(t *testing.T) {
	g := builder.ScenarioC1()
	res := chromaticwang.NewWang(g).Run()
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestChristofidesApplyProducesProperColoring(t *testing.T) {
	g := builder.ScenarioC1()
	res := chromaticwang.NewChristofides(g).Run()
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}
