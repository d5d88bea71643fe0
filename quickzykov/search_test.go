package quickzykov_test

import (
	"testing"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/builder"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/quickzykov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(t *testing.T, g *core.Graph, edges [][2]int) {
	t.Helper()
	for _, e := range edges {
		_, err := g.Join(e[0], e[1], "", core.NoColor, 0)
		require.NoError(t, err)
	}
}

// coveredVertices asserts that classes partitions exactly g's n vertices,
// with no id missing and none repeated.
func coveredVertices(t *testing.T, g *core.Graph, classes [][]core.VertexID) {
	t.Helper()
	seen := make(map[core.VertexID]bool)
	for _, class := range classes {
		for _, id := range class {
			assert.False(t, seen[id], "vertex id %d appears in more than one class", id)
			seen[id] = true
		}
	}
	assert.Equal(t, g.Order(), len(seen))
}

func TestNullGraphIsZeroColorable(t *testing.T) {
	g := core.NewGraph(0)
	res := quickzykov.New(g).Run()
	assert.Equal(t, 0, res.ChromaticNumber)
	assert.Empty(t, res.ColorClasses)
}

func TestEmptyGraphIsOneColorable(t *testing.T) {
	g := core.NewGraph(4)
	res := quickzykov.New(g).Run()
	assert.Equal(t, 1, res.ChromaticNumber)
	require.Len(t, res.ColorClasses, 1)
	coveredVertices(t, g, res.ColorClasses)
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestCompleteGraphNeedsNColors(t *testing.T) {
	g := core.NewGraph(5)
	g.MakeComplete()
	res := quickzykov.New(g).Run()
	assert.Equal(t, 5, res.ChromaticNumber)
	coveredVertices(t, g, res.ColorClasses)
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestScenarioC1(t *testing.T) {
	g := core.NewGraph(8)
	join(t, g, [][2]int{{0, 1}, {0, 2}, {0, 5}, {1, 2}, {1, 3}, {2, 4}, {3, 4}, {3, 5}, {3, 6}, {4, 5}, {5, 6}, {5, 7}})
	res := quickzykov.New(g).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
	coveredVertices(t, g, res.ColorClasses)
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestScenarioC2(t *testing.T) {
	g := builder.ScenarioG2()
	res := quickzykov.New(g).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
	coveredVertices(t, g, res.ColorClasses)
	require.NoError(t, res.Apply(g))
	assert.True(t, g.IsProper())
}

func TestMycielskiChromaticNumbers(t *testing.T) {
	c5 := builder.Mycielski(3)
	res := quickzykov.New(c5).Run()
	assert.Equal(t, 3, res.ChromaticNumber)
	coveredVertices(t, c5, res.ColorClasses)
	require.NoError(t, res.Apply(c5))
	assert.True(t, c5.IsProper())

	grotzsch := builder.Mycielski(4)
	res = quickzykov.New(grotzsch).Run()
	assert.Equal(t, 4, res.ChromaticNumber)
	coveredVertices(t, grotzsch, res.ColorClasses)
	require.NoError(t, res.Apply(grotzsch))
	assert.True(t, grotzsch.IsProper())
}
