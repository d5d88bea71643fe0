package quickzykov

import "github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"

// Run executes the search and returns its result. A Search can be Run only
// once; build a new Search to run again.
func (s *Search) Run() *Result {
	harness.Execute(&s.Harness, func() bool {
		s.outerLoop()
		return true
	})

	return &Result{ChromaticNumber: s.k, ColorClasses: s.buildColoring(), Counters: s.Counters}
}

// outerLoop finds the smallest k for which the graph is k-colorable: null
// graphs are 0-colorable, empty graphs are 1-colorable, everything else is
// tried starting at k=2 and incremented until a decision succeeds.
func (s *Search) outerLoop() {
	ref := &graphRef{g: s.g}

	s.AddStep()
	if ref.g.IsNull() {
		s.k = 0
		s.chromatic = ref.g
		return
	}

	s.AddStep()
	if ref.g.IsEmpty() {
		s.k = 1
		s.chromatic = ref.g
		return
	}

	s.AddStep()
	s.k = 2
	s.tracef("outer: initialized k=%d", s.k)

	for !s.subroutine(ref, s.k) {
		s.AddStep()
		s.k++
		s.tracef("outer: incrementing k=%d", s.k)
	}
	s.chromatic = ref.g
}

// subroutine wraps one k-colorability decision in the call/depth
// instrumentation, matching every recursive entry point into isKColorable.
func (s *Search) subroutine(ref *graphRef, k int) bool {
	s.EnterCall()
	defer s.ExitCall()

	return s.isKColorable(ref, k)
}

// isKColorable runs the six bounding tests in order, looping back to the
// first whenever one of the first four triggers a graph reduction, then
// branches by contraction or edge addition if none of the tests decide the
// question outright.
func (s *Search) isKColorable(ref *graphRef, k int) bool {
	var b int
	var v1, v2, v1Nonadj, v2Nonadj int

	for {
		s.AddStep()
		if checkForSuccess(ref.g, k) {
			return true
		}

		s.AddStep()
		a := maxEdgeThreshold(ref.g, k)

		s.AddStep()
		s.EdgeThresholdTries++
		if !checkMaxEdges(ref.g, a) {
			s.EdgeThresholdHits++
			s.tracef("bound: edge threshold exceeded, not %d-colorable", k)
			return false
		}

		s.AddStep()
		x := findSmallDegree(ref.g, k)

		s.AddStep()
		s.SmallDegreeTries++
		if removed, err := s.removeSmallVertices(ref, x); err == nil && removed {
			s.SmallDegreeHits++
			continue
		}

		s.AddStep()
		subset, smallest, p1, p2, _, n1, n2 := findCommonNeighbors(ref.g)
		b, v1, v2, v1Nonadj, v2Nonadj = smallest, p1, p2, n1, n2

		s.AddStep()
		s.NeighborhoodSubsetTries++
		if subset {
			s.NeighborhoodSubsetHits++
			s.tracef("bound: N(%d) subset of N(%d), removing %d", v1, v2, v1)
			if err := s.removeSubset(ref, v1, v2); err != nil {
				return false
			}
			continue
		}

		s.AddStep()
		c := minCommonUB(ref.g, k)

		s.AddStep()
		s.CommonNeighborsTries++
		if !checkCommonUB(float64(b), c) {
			s.CommonNeighborsHits++
			s.tracef("bound: common-neighbor minimum %d exceeds bound %.2f, not %d-colorable", b, c, k)
			return false
		}

		break
	}

	s.AddStep()
	if s.contractVertices(ref, v1Nonadj, v2Nonadj, k) {
		return true
	}

	s.AddStep()
	if s.addEdge(ref, v1Nonadj, v2Nonadj, k) {
		return true
	}

	s.AddStep()
	s.tracef("not %d-colorable", k)

	return false
}

// contractVertices tries assuming v1 and v2 share a color: it recurses on
// the graph with them merged, and keeps that graph in ref only on success.
func (s *Search) contractVertices(ref *graphRef, v1, v2, k int) bool {
	s.tracef("branch: contracting %d and %d", v1, v2)
	recursive, err := coreContract(ref.g, v1, v2)
	if err != nil {
		return false
	}
	mark := len(s.restores)
	next := &graphRef{g: recursive}
	if s.subroutine(next, k) {
		ref.g = next.g
		return true
	}
	s.restores = s.restores[:mark]

	return false
}

// addEdge tries assuming v1 and v2 take different colors: it recurses on
// the graph with an edge joining them, and keeps that graph in ref only on
// success.
func (s *Search) addEdge(ref *graphRef, v1, v2, k int) bool {
	s.tracef("branch: joining %d and %d", v1, v2)
	recursive := coreClone(ref.g)
	if _, err := recursive.Join(v1, v2, "", 0, 0); err != nil {
		return false
	}
	mark := len(s.restores)
	next := &graphRef{g: recursive}
	if s.subroutine(next, k) {
		ref.g = next.g
		return true
	}
	s.restores = s.restores[:mark]

	return false
}
