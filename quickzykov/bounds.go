package quickzykov

import "github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"

func coreClone(g *core.Graph) *core.Graph { return core.Clone(g) }

func coreContract(g *core.Graph, v1, v2 int) (*core.Graph, error) {
	return core.Contract(g, v1, v2)
}

// checkForSuccess reports whether g is trivially k-colorable because it has
// no more than k vertices.
func checkForSuccess(g *core.Graph, k int) bool {
	return g.Order() <= k
}

// maxEdgeThreshold returns the Turán bound on the edge count of a
// k-partite graph on g's vertex set: a k-colorable graph can have at most
// this many edges.
func maxEdgeThreshold(g *core.Graph, k int) float64 {
	n := float64(g.Order())
	kf := float64(k)

	return n * n * (kf - 1) / (2 * kf)
}

// checkMaxEdges reports whether g's edge count is within the threshold.
func checkMaxEdges(g *core.Graph, threshold float64) bool {
	return float64(g.Size()) <= threshold
}

// findSmallDegree returns every vertex number with degree strictly less
// than k: such a vertex can always be colored last, after every other
// vertex, using a color none of its fewer-than-k neighbors has taken.
func findSmallDegree(g *core.Graph, k int) []int {
	var out []int
	for i := 0; i < g.Order(); i++ {
		if g.Degree(i) < k {
			out = append(out, i)
		}
	}

	return out
}

// removeSmallVertices removes the listed vertices from ref's graph one at a
// time, recording each one's neighbor ids (as of its own removal) for later
// coloring reconstruction, and reports whether a removal happened. Removing
// one at a time, rather than the whole list in a single RemoveSubgraph call,
// matters when two listed vertices are themselves adjacent: each one's
// recorded neighbor set must reflect the graph as it stood at that vertex's
// own removal, not after its sibling was already gone.
func (s *Search) removeSmallVertices(ref *graphRef, x []int) (bool, error) {
	if len(x) == 0 {
		return false, nil
	}

	ids := make([]core.VertexID, 0, len(x))
	for _, v := range x {
		vv, err := ref.g.Vertex(v)
		if err != nil {
			return false, err
		}
		ids = append(ids, vv.ID)
	}

	for _, id := range ids {
		n, err := ref.g.FindByID(id)
		if err != nil {
			return false, err
		}

		var neighbors []core.VertexID
		for j := 0; j < ref.g.Order(); j++ {
			if j == n || !ref.g.Adjacent(n, j) {
				continue
			}
			vj, err := ref.g.Vertex(j)
			if err != nil {
				return false, err
			}
			neighbors = append(neighbors, vj.ID)
		}

		next, err := core.RemoveSubgraph(ref.g, []int{n}, nil)
		if err != nil {
			return false, err
		}
		ref.g = next
		s.restores = append(s.restores, restoreOp{kind: restoreSmallDegree, vertex: id, neighbors: neighbors})
	}

	return true, nil
}

// findCommonNeighbors scans every pair of vertices, returning:
//
//   - whether some pair's common-neighbor count equals one vertex's full
//     degree (meaning that vertex's neighborhood is a subset of the
//     other's, v1/v2 identifying the subset vertex first);
//   - the smallest common-neighbor count seen over all pairs, with its
//     vertices;
//   - the smallest common-neighbor count seen over non-adjacent pairs only,
//     with its vertices — used by the branch step, which must pick a
//     non-adjacent pair to either contract or join.
//
// This assumes g is not complete and has at least two vertices, which the
// preceding bounding tests guarantee by the time this runs.
func findCommonNeighbors(g *core.Graph) (subset bool, smallest, v1, v2, smallestNonadj, v1Nonadj, v2Nonadj int) {
	n := g.Order()
	first, firstNonadj := true, true

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			common := 0
			for k := 0; k < n; k++ {
				if g.Adjacent(i, k) && g.Adjacent(j, k) {
					common++
				}
			}

			if common == g.Degree(i) {
				return true, 0, i, j, 0, 0, 0
			}
			if common == g.Degree(j) {
				return true, 0, j, i, 0, 0, 0
			}

			if first || common < smallest {
				smallest, v1, v2 = common, i, j
				first = false
			}

			if !g.Adjacent(i, j) {
				if firstNonadj || common < smallestNonadj {
					smallestNonadj, v1Nonadj, v2Nonadj = common, i, j
					firstNonadj = false
				}
			}
		}
	}

	return false, smallest, v1, v2, smallestNonadj, v1Nonadj, v2Nonadj
}

// removeSubset removes v1 from ref's graph, because its neighborhood was
// found to be a subset of v2's: v1 can always take v2's eventual color.
func (s *Search) removeSubset(ref *graphRef, v1, v2 int) error {
	removed, err := ref.g.Vertex(v1)
	if err != nil {
		return err
	}
	donor, err := ref.g.Vertex(v2)
	if err != nil {
		return err
	}

	next, err := core.RemoveSubgraph(ref.g, []int{v1}, nil)
	if err != nil {
		return err
	}
	ref.g = next
	s.restores = append(s.restores, restoreOp{kind: restoreSubset, vertex: removed.ID, donor: donor.ID})

	return nil
}

// minCommonUB returns the upper bound on the minimum common-neighbor count,
// taken over all vertex pairs, that a k-colorable graph can have.
func minCommonUB(g *core.Graph, k int) float64 {
	n := float64(g.Order())
	kf := float64(k)

	return n - 2 - (n-2)/(kf-1)
}

// checkCommonUB reports whether the smallest common-neighbor count b found
// is within the upper bound c.
func checkCommonUB(b, c float64) bool {
	return b <= c
}
