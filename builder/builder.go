// Package builder supplies deterministic graph constructors used across
// this module's test suites: the complete and empty graphs used in the
// algorithmic-property checks, the Mycielski family used to exercise the
// ω=2/χ=k Grötzsch-style scenarios, and the literal scenario graphs from
// the testable-properties examples.
//
// Every constructor here is deterministic — no random-graph sampler is
// provided, by design (see the package's companion component in
// SPEC_FULL.md). Construction failures here would indicate a mistake in
// one of these literal fixtures, not a caller error, so each constructor
// panics rather than returning an error — matching the teacher's
// must-style helpers for internally-consistent fixture construction.
package builder

import "github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"

func must(_ int, err error) {
	if err != nil {
		panic(err)
	}
}

// CompleteGraph returns the complete graph on n vertices, K_n.
func CompleteGraph(n int) *core.Graph {
	g := core.NewGraph(n)
	g.MakeComplete()

	return g
}

// EmptyGraph returns the edgeless graph on n vertices.
func EmptyGraph(n int) *core.Graph {
	return core.NewGraph(n)
}

// Mycielski returns the level-k graph of the Mycielski construction: level
// 2 is a single edge, level 3 is the 5-cycle C₅, level 4 is the Grötzsch
// graph, and in general level k has clique number 2 and chromatic number k
// (for k >= 3). Each level doubles the previous level's vertex count and
// adds one new apex: every "shadow" vertex is joined to the neighborhood
// image of its twin in the previous level, and to the new apex.
func Mycielski(k int) *core.Graph {
	g := core.NewGraph(nOfK(k))
	if k < 2 {
		return g
	}

	must(g.Join(0, 1, "", core.NoColor, 0))

	prevN := 2
	for ic := 3; ic <= k; ic++ {
		apex := 2 * prevN
		for iv, is := 0, prevN; iv < prevN; iv, is = iv+1, is+1 {
			for jv := 0; jv < prevN; jv++ {
				if g.Adjacent(iv, jv) {
					must(g.Join(is, jv, "", core.NoColor, 0))
				}
			}
			must(g.Join(apex, is, "", core.NoColor, 0))
		}
		prevN = apex + 1
	}

	return g
}

// nOfK returns the vertex count of the level-k Mycielski graph.
func nOfK(k int) int {
	if k <= 2 {
		return k
	}

	return 3*(1<<(k-2)) - 1
}

func joinAll(g *core.Graph, edges [][2]int) *core.Graph {
	for _, e := range edges {
		must(g.Join(e[0], e[1], "", core.NoColor, 0))
	}

	return g
}

// ScenarioG1 returns the 8-vertex sample clique graph: ω = 4, with maximal
// cliques {0,1,2,3}, {0,1,4}, {1,2,6}, {1,4,6}, {3,5}, {4,5,6,7}.
func ScenarioG1() *core.Graph {
	return joinAll(core.NewGraph(8), [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4}, {1, 6},
		{2, 3}, {2, 6},
		{3, 5},
		{4, 5}, {4, 6}, {4, 7},
		{5, 6}, {5, 7},
		{6, 7},
	})
}

// ScenarioG2 returns the 9-vertex graph derived from ScenarioG1 by adding
// edge (7,8) and replacing edge (3,5) with (3,6): ω = 4, with maximal
// cliques {0,1,2,3}, {0,1,4}, {1,2,3,6}, {1,4,6}, {4,5,6,7}, {7,8}.
func ScenarioG2() *core.Graph {
	return joinAll(core.NewGraph(9), [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4}, {1, 6},
		{2, 3}, {2, 6},
		{3, 6},
		{4, 5}, {4, 6}, {4, 7},
		{5, 6}, {5, 7},
		{6, 7},
		{7, 8},
	})
}

// ScenarioC1 returns the 8-vertex coloring example: χ = 3, with a valid
// chromatic coloring {{0,4,6,7}, {1,5}, {2,3}}.
func ScenarioC1() *core.Graph {
	return joinAll(core.NewGraph(8), [][2]int{
		{0, 1}, {0, 2}, {0, 5},
		{1, 2}, {1, 3},
		{2, 4},
		{3, 4}, {3, 5}, {3, 6},
		{4, 5},
		{5, 6}, {5, 7},
	})
}
