package quickzykov

import "github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"

// buildColoring reconstructs a full coloring of the original graph from the
// search's final working graph and the trail of bounding-test removals that
// got there. s.chromatic's own vertices supply the base colors — walking
// each one's Contracted set exactly as zykov's result does, since Contract
// never discards an id, only folds it into its merged vertex. s.restores is
// then replayed last-removed-first, coloring every vertex a bounding test
// took out of the graph along the way.
func (s *Search) buildColoring() [][]core.VertexID {
	if s.chromatic == nil || s.k == 0 {
		return nil
	}

	n := s.chromatic.Order()

	if s.k == 1 {
		// The empty-graph shortcut never ran a bounding test, so there is
		// nothing in s.restores: every vertex shares the graph's one color.
		class := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			v, _ := s.chromatic.Vertex(i)
			class[i] = v.ID
		}

		return [][]core.VertexID{class}
	}

	color := make(map[core.VertexID]int)
	for i := 0; i < n; i++ {
		v, _ := s.chromatic.Vertex(i)
		if len(v.Contracted) == 0 {
			color[v.ID] = i
			continue
		}
		for id := range v.Contracted {
			color[id] = i
		}
	}

	for i := len(s.restores) - 1; i >= 0; i-- {
		op := s.restores[i]
		switch op.kind {
		case restoreSubset:
			color[op.vertex] = color[op.donor]
		case restoreSmallDegree:
			used := make(map[int]bool, len(op.neighbors))
			for _, nb := range op.neighbors {
				if c, ok := color[nb]; ok {
					used[c] = true
				}
			}
			c := 0
			for used[c] {
				c++
			}
			color[op.vertex] = c
		}
	}

	classes := make(map[int][]core.VertexID)
	maxColor := -1
	for id, c := range color {
		classes[c] = append(classes[c], id)
		if c > maxColor {
			maxColor = c
		}
	}

	out := make([][]core.VertexID, maxColor+1)
	for c := 0; c <= maxColor; c++ {
		out[c] = classes[c]
	}

	return out
}
