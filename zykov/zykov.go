// Package zykov computes the chromatic number χ(G) of a simple graph with
// the classical Zykov branch-and-bound recursion:
//
//	χ(G) = min(χ(G/uv), χ(G+uv))
//
// for any non-adjacent pair u, v — contracting them assumes they share a
// color, joining them with an edge assumes they don't. The recursion
// bottoms out at a complete graph, whose order is the number of colors that
// branch needs; the smallest complete graph reached over the whole tree is
// the answer, and its vertices' contracted-sets are the color classes.
package zykov

import (
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// Bound decides whether to prune the subtree rooted at state, given the
// order of the best complete graph found so far (the current upper bound
// on the chromatic number). Returning true prunes; false continues
// branching. A nil Bound never prunes, exploring the full tree.
type Bound func(state *core.Graph, currentBest int) bool

type config struct {
	bound Bound
}

func defaultConfig() config { return config{} }

// Option configures a Search.
type Option func(*config)

// WithBound installs a pruning hook.
func WithBound(b Bound) Option {
	return func(c *config) { c.bound = b }
}

// Search runs one classical-Zykov chromatic-number computation over a
// fixed graph.
type Search struct {
	harness.Harness

	g       *core.Graph
	bound   Bound
	current *core.Graph
}

// New builds a Search over g.
func New(g *core.Graph, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{g: g, bound: cfg.bound}
}

// Result is the outcome of one Search.Run.
type Result struct {
	ChromaticNumber int
	// ColorClasses partitions the original graph's vertex ids into χ(G)
	// independent sets.
	ColorClasses [][]core.VertexID
}

// Apply mutates g's vertex colors to 1…ChromaticNumber, one color per entry
// of ColorClasses.
func (r *Result) Apply(g *core.Graph) error {
	return core.ApplyColoring(g, r.ColorClasses)
}

// Run executes the search and returns its result. A Search can be Run only
// once; build a new Search to run again.
func (s *Search) Run() *Result {
	harness.Execute(&s.Harness, func() bool {
		s.current = core.Clone(s.g)
		s.branch(s.g)
		return true
	})

	return s.result()
}

// branch is the recursive bound-check/leaf-check/branch step: see the
// package doc for the contraction/edge-addition identity it implements.
func (s *Search) branch(state *core.Graph) {
	s.EnterCall()
	defer s.ExitCall()

	if s.bound != nil && s.bound(state, s.current.Order()) {
		return
	}

	if state.IsComplete() {
		if state.Order() < s.current.Order() {
			s.current = core.Clone(state)
		}
		return
	}

	u, v := firstNonAdjacentPair(state)

	if contracted, err := core.Contract(state, u, v); err == nil {
		s.branch(contracted)
	}

	addition := core.Clone(state)
	if _, err := addition.Join(u, v, "", core.NoColor, 0); err == nil {
		s.branch(addition)
	}
}

// firstNonAdjacentPair finds the first (in vertex-number order) pair of
// non-adjacent vertices. It assumes state is not complete, which every
// caller checks first.
func firstNonAdjacentPair(state *core.Graph) (int, int) {
	n := state.Order()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if !state.Adjacent(i, j) {
				return i, j
			}
		}
	}

	return 0, 0
}

func (s *Search) result() *Result {
	n := s.current.Order()
	classes := make([][]core.VertexID, n)
	for i := 0; i < n; i++ {
		v, _ := s.current.Vertex(i)
		if len(v.Contracted) == 0 {
			classes[i] = []core.VertexID{v.ID}
			continue
		}
		class := make([]core.VertexID, 0, len(v.Contracted))
		for id := range v.Contracted {
			class = append(class, id)
		}
		classes[i] = class
	}

	return &Result{ChromaticNumber: n, ColorClasses: classes}
}
