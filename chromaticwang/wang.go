// Package chromaticwang computes the chromatic number χ(G) by repeatedly
// extending a partial coloring with one more maximal independent set (MIS)
// until every vertex has been covered — a MIS in G being a maximal clique
// in G's complement, so each extension step is one Bron–Kerbosch run.
//
// Two search strategies are provided:
//
//   - Wang (NewWang) searches depth-first: at each step it picks the
//     vertex covered by the fewest of the candidate MISs and only
//     recurses through MISs containing that vertex, aiming for the
//     shallowest (smallest-k) complete coloring first.
//   - Christofides (NewChristofides) searches breadth-first: it extends
//     every partial coloring at the current level by every candidate MIS,
//     then discards colorings whose covered-vertex set is a subset of
//     another coloring's at the same level, before moving to the next
//     level.
//
// Christofides stops at the first level that yields a complete coloring.
// Wang keeps the smallest complete coloring found over its whole
// depth-first search, skipping branches that cannot use fewer colors than
// it. Either way the coloring kept is the chromatic coloring.
package chromaticwang

import (
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/bron"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// Result is the outcome of one search.
type Result struct {
	ChromaticNumber int
	ColorClasses    [][]core.VertexID
}

// Apply mutates g's vertex colors to 1…ChromaticNumber, one color per entry
// of ColorClasses.
func (r *Result) Apply(g *core.Graph) error {
	return core.ApplyColoring(g, r.ColorClasses)
}

// WangSearch runs the depth-first Wang refinement over a fixed graph.
type WangSearch struct {
	harness.Harness

	g          *core.Graph
	complement *core.Graph
	best       [][]core.VertexID
}

// NewWang builds a WangSearch over g.
func NewWang(g *core.Graph) *WangSearch {
	comp, err := core.Complement(g)
	if err != nil {
		panic(err) // Complement never fails on a graph with no loop/multi edges
	}

	return &WangSearch{g: g, complement: comp}
}

// Run executes the search and returns its result.
func (s *WangSearch) Run() *Result {
	harness.Execute(&s.Harness, func() bool {
		if !s.g.IsNull() {
			s.nextStates(nil, map[core.VertexID]struct{}{})
		}
		return true
	})

	return &Result{ChromaticNumber: len(s.best), ColorClasses: s.best}
}

// nextStates generates the MISs available from the vertices not yet
// covered by coloring, picks the rarest-covered vertex among them, and
// recurses only through the MISs that contain it.
func (s *WangSearch) nextStates(coloring [][]core.VertexID, used map[core.VertexID]struct{}) {
	s.EnterCall()
	defer s.ExitCall()

	// Once a complete coloring of size len(best) exists, any branch that
	// would need at least that many colors cannot improve on it.
	last := len(s.best) > 0 && len(coloring)+1 >= len(s.best)

	subgraph, keepID := s.remainingSubgraph(used)

	miss := bron.New(subgraph, bron.VariantPivot, bron.WithMode(bron.ModeAll)).Run()

	n := subgraph.Order()
	inMIS := make([]int, n)
	for _, mis := range miss.Cliques {
		for _, v := range mis {
			inMIS[v]++
		}
	}

	target, count, first := 0, 0, true
	for i := 0; i < n; i++ {
		if first || inMIS[i] < count {
			target, count, first = i, inMIS[i], false
		}
	}

	for _, mis := range miss.Cliques {
		if !containsVertex(mis, target) {
			continue
		}

		misIDs := make([]core.VertexID, 0, len(mis))
		for _, v := range mis {
			vv, _ := subgraph.Vertex(v)
			misIDs = append(misIDs, vv.ID)
		}

		nextColoring := appendClass(coloring, misIDs)
		nextUsed := unionUsed(used, misIDs)

		if len(nextUsed) >= s.g.Order() {
			if len(s.best) == 0 || len(nextColoring) < len(s.best) {
				s.best = nextColoring
			}
			continue
		}

		if !last {
			s.nextStates(nextColoring, nextUsed)
		}
	}

	_ = keepID
}

// remainingSubgraph returns the induced subgraph of the complement on the
// vertices not yet covered by used.
func (s *WangSearch) remainingSubgraph(used map[core.VertexID]struct{}) (*core.Graph, map[int]core.VertexID) {
	var keep []int
	keepID := make(map[int]core.VertexID)
	for i := 0; i < s.complement.Order(); i++ {
		v, _ := s.complement.Vertex(i)
		if _, done := used[v.ID]; !done {
			keepID[len(keep)] = v.ID
			keep = append(keep, i)
		}
	}
	subgraph, err := core.InducedSubgraph(s.complement, keep)
	if err != nil {
		panic(err) // keep is always a valid vertex-number list derived from s.complement
	}

	return subgraph, keepID
}

func containsVertex(set []int, v int) bool {
	for _, u := range set {
		if u == v {
			return true
		}
	}

	return false
}

func appendClass(coloring [][]core.VertexID, class []core.VertexID) [][]core.VertexID {
	out := make([][]core.VertexID, len(coloring), len(coloring)+1)
	copy(out, coloring)

	return append(out, class)
}

func unionUsed(used map[core.VertexID]struct{}, class []core.VertexID) map[core.VertexID]struct{} {
	out := make(map[core.VertexID]struct{}, len(used)+len(class))
	for id := range used {
		out[id] = struct{}{}
	}
	for _, id := range class {
		out[id] = struct{}{}
	}

	return out
}
