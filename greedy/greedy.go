// Package greedy computes an upper bound on the chromatic number with a
// largest-first sequential coloring: vertices are visited in non-increasing
// degree order and each takes the smallest color not already used by one of
// its colored neighbors.
//
// When WithInterchange is enabled (the default) a vertex that would
// otherwise force a brand-new color first tries a Matula-style two-color
// Kempe-chain interchange: among the colors blocking it, find a pair (a, b)
// whose connected component — within the subgraph induced by colors a and
// b — containing one blocking neighbor does not also touch the vertex
// through color b; a and b are swapped throughout that component, which
// keeps the coloring proper, and the vertex's color is then chosen again.
// The swap frees a for the vertex only when every neighbor of color a lies
// in that component; otherwise the vertex still takes a new color.
//
// The output is always a proper coloring but is not guaranteed optimal:
// compare its ChromaticNumber against bron's clique number for a lower
// bound and against zykov/quickzykov/chromaticwang's exact answer for an
// upper bound check.
package greedy

import (
	"sort"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// uncolored marks a vertex that has not yet been assigned a color in the
// working colors slice (distinct from core.NoColor, since this package
// works with zero-based color indices until the final result is built).
const uncolored = -1

type config struct {
	interchange bool
}

func defaultConfig() config { return config{interchange: true} }

// Option configures a Search.
type Option func(*config)

// WithInterchange toggles the Kempe-chain interchange step. It is on by
// default; WithInterchange(false) recovers plain largest-first coloring
// with no interchange, for comparison against the interchange-enabled
// result.
func WithInterchange(enabled bool) Option {
	return func(c *config) { c.interchange = enabled }
}

// Search runs one largest-first coloring over a fixed graph.
type Search struct {
	harness.Harness

	g           *core.Graph
	interchange bool
}

// New builds a Search over g.
func New(g *core.Graph, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{g: g, interchange: cfg.interchange}
}

// Result is the outcome of one Search.Run.
type Result struct {
	ChromaticNumber int
	// ColorClasses partitions the graph's vertex ids into ChromaticNumber
	// independent sets.
	ColorClasses [][]core.VertexID
}

// Apply mutates g's vertex colors to 1…ChromaticNumber, one color per entry
// of ColorClasses.
func (r *Result) Apply(g *core.Graph) error {
	return core.ApplyColoring(g, r.ColorClasses)
}

// Run executes the coloring and returns its result. A Search can be Run
// only once; build a new Search to run again.
func (s *Search) Run() *Result {
	var colors []int

	harness.Execute(&s.Harness, func() bool {
		colors = s.color()
		return true
	})

	return s.result(colors)
}

// color assigns a zero-based color to every vertex number, largest-degree
// first, returning the assignment indexed by vertex number.
func (s *Search) color() []int {
	n := s.g.Order()
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return s.g.Degree(order[a]) > s.g.Degree(order[b])
	})

	colors := make([]int, n)
	for i := range colors {
		colors[i] = uncolored
	}

	numColors := 0
	for _, v := range order {
		s.EnterCall()

		used := s.usedColors(v, colors, numColors)
		c := firstUnused(used)

		if c == numColors && s.interchange && numColors > 0 {
			if s.tryInterchange(v, colors, numColors) {
				used = s.usedColors(v, colors, numColors)
				c = firstUnused(used)
			}
		}

		colors[v] = c
		if c == numColors {
			numColors++
		}

		s.ExitCall()
	}

	return colors
}

// usedColors reports, for every color below numColors, whether some
// already-colored neighbor of v carries it.
func (s *Search) usedColors(v int, colors []int, numColors int) []bool {
	used := make([]bool, numColors)
	for u := 0; u < s.g.Order(); u++ {
		if colors[u] < 0 {
			continue
		}
		s.AddStep()
		if s.g.Adjacent(v, u) {
			used[colors[u]] = true
		}
	}

	return used
}

func firstUnused(used []bool) int {
	for i, u := range used {
		if !u {
			return i
		}
	}

	return len(used)
}

// tryInterchange looks for a pair of colors (a, b) such that v has an
// already-colored neighbor of color a whose (a, b)-Kempe chain does not
// also reach v through color b, and if found swaps a and b throughout that
// chain, which frees color a for v when all of v's a-colored neighbors lie
// in the chain. It makes at most one swap and reports whether it made one.
func (s *Search) tryInterchange(v int, colors []int, numColors int) bool {
	neighborOf := s.oneNeighborPerColor(v, colors, numColors)

	for a := 0; a < numColors; a++ {
		seed, ok := neighborOf[a]
		if !ok {
			continue
		}
		for b := 0; b < numColors; b++ {
			if b == a {
				continue
			}

			component := s.kempeComponent(seed, a, b, colors)
			if s.touchesColorInComponent(v, component, b, colors) {
				continue
			}

			swapColors(component, a, b, colors)
			return true
		}
	}

	return false
}

// oneNeighborPerColor returns, for each color below numColors that some
// already-colored neighbor of v carries, one such neighbor's vertex number.
func (s *Search) oneNeighborPerColor(v int, colors []int, numColors int) map[int]int {
	found := make(map[int]int)
	for u := 0; u < s.g.Order(); u++ {
		if colors[u] < 0 || colors[u] >= numColors {
			continue
		}
		if _, done := found[colors[u]]; done {
			continue
		}
		s.AddStep()
		if s.g.Adjacent(v, u) {
			found[colors[u]] = u
		}
	}

	return found
}

// kempeComponent returns the connected component, within the subgraph
// induced by vertices colored a or b, containing seed.
func (s *Search) kempeComponent(seed, a, b int, colors []int) []int {
	n := s.g.Order()
	visited := make([]bool, n)
	stack := []int{seed}
	visited[seed] = true

	var component []int
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component = append(component, u)

		for w := 0; w < n; w++ {
			if visited[w] || (colors[w] != a && colors[w] != b) {
				continue
			}
			s.AddStep()
			if s.g.Adjacent(u, w) {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}

	return component
}

// touchesColorInComponent reports whether v is adjacent to some member of
// component that carries color b.
func (s *Search) touchesColorInComponent(v int, component []int, b int, colors []int) bool {
	for _, u := range component {
		if colors[u] == b && s.g.Adjacent(v, u) {
			return true
		}
	}

	return false
}

func swapColors(component []int, a, b int, colors []int) {
	for _, u := range component {
		switch colors[u] {
		case a:
			colors[u] = b
		case b:
			colors[u] = a
		}
	}
}

func (s *Search) result(colors []int) *Result {
	n := s.g.Order()
	if n == 0 {
		return &Result{}
	}

	numColors := 0
	for _, c := range colors {
		if c+1 > numColors {
			numColors = c + 1
		}
	}

	classes := make([][]core.VertexID, numColors)
	for i := 0; i < n; i++ {
		v, _ := s.g.Vertex(i)
		classes[colors[i]] = append(classes[colors[i]], v.ID)
	}

	return &Result{ChromaticNumber: numColors, ColorClasses: classes}
}
