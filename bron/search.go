package bron

import "github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"

// Run executes the search and returns its result. A Search can be Run only
// once; build a new Search to run again.
func (s *Search) Run() *Result {
	ok := harness.Execute(&s.Harness, func() bool {
		n := s.g.Order()
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}

		switch s.variant {
		case VariantPivot:
			return s.expandPivot(nil, p, nil)
		default:
			return s.expand(nil, p, nil)
		}
	})

	number := 0
	for _, c := range s.cliques {
		if len(c) > number {
			number = len(c)
		}
	}

	return &Result{Cliques: s.cliques, Total: s.total, Number: number, Cancelled: !ok}
}

// bestSize is the order of the largest clique saved so far (0 before any is
// found), used by ModeFirstMax's branch-and-bound prune.
func (s *Search) bestSize() int {
	if len(s.cliques) == 0 {
		return 0
	}

	return len(s.cliques[0])
}

// pruned reports whether the branch rooted at (r, p) can be discarded under
// ModeFirstMax: |r|+|p| bounds the size of any clique reachable from here,
// so once that bound no longer exceeds the best clique saved so far, no
// descendant of this branch can improve on it.
func (s *Search) pruned(r, p []int) bool {
	return s.mode == ModeFirstMax && len(r)+len(p) <= s.bestSize()
}

// recordClique saves R according to the save mode, invokes the found
// callback, and reports whether the search should continue.
func (s *Search) recordClique(r []int) bool {
	s.total++
	clique := append([]int(nil), r...)

	switch s.mode {
	case ModeAll:
		s.cliques = append(s.cliques, clique)
	case ModeFirstMax:
		if len(s.cliques) == 0 || len(clique) > len(s.cliques[0]) {
			s.cliques = [][]int{clique}
		}
	case ModeMaxOnly:
		switch {
		case len(s.cliques) == 0 || len(clique) > len(s.cliques[0]):
			s.cliques = [][]int{clique}
		case len(clique) == len(s.cliques[0]):
			s.cliques = append(s.cliques, clique)
		}
	}

	if s.found != nil && !s.found(clique) {
		return false
	}

	return true
}

// expand is the no-pivot Bron–Kerbosch recursion: branch on every candidate
// in P in turn, moving it to X once its branch has been explored.
func (s *Search) expand(r, p, x []int) bool {
	s.EnterCall()
	defer s.ExitCall()

	if s.pruned(r, p) {
		return true
	}

	if len(p) == 0 && len(x) == 0 {
		s.AddStep()
		return s.recordClique(r)
	}

	candidates := append([]int(nil), p...)
	for _, v := range candidates {
		s.AddStep()
		if !s.expand(append(append([]int(nil), r...), v), intersectNeighbors(s, p, v), intersectNeighbors(s, x, v)) {
			return false
		}
		p = removeVertex(p, v)
		x = append(x, v)
	}

	return true
}

// expandPivot is the pivoted Bron–Kerbosch recursion: branch only on
// candidates in P not adjacent to a chosen pivot.
func (s *Search) expandPivot(r, p, x []int) bool {
	s.EnterCall()
	defer s.ExitCall()

	if s.pruned(r, p) {
		return true
	}

	if len(p) == 0 && len(x) == 0 {
		s.AddStep()
		return s.recordClique(r)
	}

	pivot := s.choosePivot(p, x)
	candidates := subtractNeighbors(s, p, pivot)
	for _, v := range candidates {
		s.AddStep()
		if !s.expandPivot(append(append([]int(nil), r...), v), intersectNeighbors(s, p, v), intersectNeighbors(s, x, v)) {
			return false
		}
		p = removeVertex(p, v)
		x = append(x, v)
	}

	return true
}

// choosePivot picks the vertex of P ∪ X with the fewest non-neighbors in P,
// considering X before P so that a tie is broken in X's favor.
func (s *Search) choosePivot(p, x []int) int {
	best, bestCount := -1, -1
	consider := func(u int) {
		count := 0
		for _, v := range p {
			if v != u && !s.g.Adjacent(u, v) {
				count++
			}
		}
		if best == -1 || count < bestCount {
			best, bestCount = u, count
		}
	}
	for _, u := range x {
		consider(u)
	}
	for _, u := range p {
		consider(u)
	}

	return best
}

func intersectNeighbors(s *Search, set []int, v int) []int {
	var out []int
	for _, u := range set {
		if s.g.Adjacent(u, v) {
			out = append(out, u)
		}
	}

	return out
}

func subtractNeighbors(s *Search, set []int, v int) []int {
	var out []int
	for _, u := range set {
		if u == v || !s.g.Adjacent(u, v) {
			out = append(out, u)
		}
	}

	return out
}

func removeVertex(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}
