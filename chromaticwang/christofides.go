package chromaticwang

import (
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/bron"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// partialColoring is one candidate coloring under construction: the color
// classes assigned so far, and the set of vertex ids they cover.
type partialColoring struct {
	classes [][]core.VertexID
	used    map[core.VertexID]struct{}
}

// ChristofidesSearch runs the breadth-first MIS-extension search over a
// fixed graph: every partial coloring at one level is extended by every
// MIS available to it, colorings whose coverage is a subset of another's
// are discarded, and the first level at which some partial coloring covers
// every vertex determines the chromatic number.
type ChristofidesSearch struct {
	harness.Harness

	g          *core.Graph
	complement *core.Graph
	best       [][]core.VertexID
}

// NewChristofides builds a ChristofidesSearch over g.
func NewChristofides(g *core.Graph) *ChristofidesSearch {
	comp, err := core.Complement(g)
	if err != nil {
		panic(err)
	}

	return &ChristofidesSearch{g: g, complement: comp}
}

// Run executes the search and returns its result.
func (s *ChristofidesSearch) Run() *Result {
	harness.Execute(&s.Harness, func() bool {
		if !s.g.IsNull() {
			s.search()
		}
		return true
	})

	return &Result{ChromaticNumber: len(s.best), ColorClasses: s.best}
}

func (s *ChristofidesSearch) search() {
	level := []partialColoring{{used: map[core.VertexID]struct{}{}}}

	for {
		var next []partialColoring

		for _, pc := range level {
			s.EnterCall()
			extensions, complete := s.extend(pc)
			s.ExitCall()
			if complete != nil {
				s.best = complete
				return
			}
			next = append(next, extensions...)
		}

		level = pruneDominated(next)
	}
}

// extend generates every MIS available to pc's uncovered vertices and
// returns one extended partialColoring per MIS. If any extension covers
// every vertex, extend returns that coloring directly instead (the
// level's remaining extensions are irrelevant once a complete coloring is
// found at this level, by the level-by-level breadth-first ordering).
func (s *ChristofidesSearch) extend(pc partialColoring) ([]partialColoring, [][]core.VertexID) {
	subgraph, err := remainingSubgraph(s.complement, pc.used)
	if err != nil {
		panic(err)
	}

	miss := bron.New(subgraph, bron.VariantPivot, bron.WithMode(bron.ModeAll)).Run()

	var out []partialColoring
	for _, mis := range miss.Cliques {
		misIDs := make([]core.VertexID, 0, len(mis))
		for _, v := range mis {
			vv, _ := subgraph.Vertex(v)
			misIDs = append(misIDs, vv.ID)
		}

		nextUsed := unionUsed(pc.used, misIDs)
		nextClasses := appendClass(pc.classes, misIDs)

		if len(nextUsed) >= s.g.Order() {
			return nil, nextClasses
		}

		out = append(out, partialColoring{classes: nextClasses, used: nextUsed})
	}

	return out, nil
}

// remainingSubgraph returns the induced subgraph of complement on the
// vertices not in used.
func remainingSubgraph(complement *core.Graph, used map[core.VertexID]struct{}) (*core.Graph, error) {
	var keep []int
	for i := 0; i < complement.Order(); i++ {
		v, _ := complement.Vertex(i)
		if _, done := used[v.ID]; !done {
			keep = append(keep, i)
		}
	}

	return core.InducedSubgraph(complement, keep)
}

// pruneDominated drops every partial coloring whose covered-vertex set is
// a subset of another surviving coloring's at the same level: a dominated
// coloring can never reach a strictly smaller complete coloring than the
// one dominating it.
func pruneDominated(states []partialColoring) []partialColoring {
	var kept []partialColoring
	for _, st := range states {
		dominated := false
		var survivors []partialColoring
		for _, k := range kept {
			switch {
			case isSubset(st.used, k.used):
				dominated = true
				survivors = append(survivors, k)
			case isSubset(k.used, st.used):
				// k is dominated by st; drop it.
			default:
				survivors = append(survivors, k)
			}
		}
		kept = survivors
		if !dominated {
			kept = append(kept, st)
		}
	}

	return kept
}

func isSubset(a, b map[core.VertexID]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}
