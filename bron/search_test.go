package bron_test

import (
	"sort"
	"testing"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/bron"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kite is K4 with one extra pendant vertex hanging off vertex 0: vertices
// 0-3 form a complete graph, vertex 4 is joined only to vertex 0. The
// single maximum clique is {0,1,2,3}.
func kite(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5)
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {0, 4}}
	for _, e := range edges {
		_, err := g.Join(e[0], e[1], "", core.NoColor, 0)
		require.NoError(t, err)
	}

	return g
}

func sortedCliques(cliques [][]int) [][]int {
	out := make([][]int, len(cliques))
	for i, c := range cliques {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < len(out[i]) && k < len(out[j]); k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return len(out[i]) < len(out[j])
	})

	return out
}

func TestNoPivotAllMaximalCliques(t *testing.T) {
	g := kite(t)
	s := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeAll))
	res := s.Run()
	assert.False(t, res.Cancelled)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {0, 4}}, sortedCliques(res.Cliques))
}

func TestPivotAllMaximalCliques(t *testing.T) {
	g := kite(t)
	s := bron.New(g, bron.VariantPivot, bron.WithMode(bron.ModeAll))
	res := s.Run()
	assert.False(t, res.Cancelled)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {0, 4}}, sortedCliques(res.Cliques))
}

func TestMaxOnlyKeepsCliqueNumber(t *testing.T) {
	g := kite(t)
	s := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeMaxOnly))
	res := s.Run()
	require.Len(t, res.Cliques, 1)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, sortedCliques(res.Cliques))
	assert.Equal(t, 4, res.Number)
}

func TestFirstMaxFindsMaximumClique(t *testing.T) {
	g := kite(t)
	s := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeFirstMax))
	res := s.Run()
	require.Len(t, res.Cliques, 1)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, sortedCliques(res.Cliques))
	assert.Equal(t, 4, res.Number)
}

// TestFirstMaxPrunesPastSmallerCliques: a graph where the ascending
// no-pivot recursion would reach a smaller maximal clique before the
// maximum one if ModeFirstMax simply stopped at the first leaf. Vertices
// 0..3, edges (0,1) and the triangle (1,2,3): {0,1} is maximal and would be
// found first by vertex number, but {1,2,3} is the actual maximum clique.
func TestFirstMaxPrunesPastSmallerCliques(t *testing.T) {
	g := core.NewGraph(4)
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}
	for _, e := range edges {
		_, err := g.Join(e[0], e[1], "", core.NoColor, 0)
		require.NoError(t, err)
	}

	s := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeFirstMax))
	res := s.Run()
	require.Len(t, res.Cliques, 1)
	assert.Equal(t, 3, res.Number)
	assert.Equal(t, []int{1, 2, 3}, sortedCliques(res.Cliques)[0])
}

func TestFoundCallbackCancels(t *testing.T) {
	g := kite(t)
	seen := 0
	s := bron.New(g, bron.VariantNoPivot, bron.WithMode(bron.ModeAll), bron.WithFound(func(clique []int) bool {
		seen++
		return false
	}))
	res := s.Run()
	assert.True(t, res.Cancelled)
	assert.Equal(t, 1, seen)
}

func TestNullGraphHasOnlyTheEmptyClique(t *testing.T) {
	g := core.NewGraph(0)
	s := bron.New(g, bron.VariantNoPivot)
	res := s.Run()
	// The empty clique is the only maximal clique of the null graph.
	require.Len(t, res.Cliques, 1)
	assert.Empty(t, res.Cliques[0])
}
