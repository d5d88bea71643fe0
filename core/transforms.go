package core

// Complement returns the complement of g, always as a simple undirected
// graph: the same vertices (ids, labels, colors, coordinates preserved), with
// an edge between every pair not adjacent in g. Complement is defined on a
// simple graph; if g carries directed/multi/loop edges, only the undirected
// adjacency between distinct vertex pairs is considered.
func Complement(g *Graph) (*Graph, error) {
	n := g.Order()
	out := &Graph{}
	out.vertices = make([]Vertex, n)
	for i, v := range g.vertices {
		out.vertices[i] = v
		out.vertices[i].Contracted = copyIDSet(v.Contracted)
	}
	out.nextID = g.nextID
	out.rebuild()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.Adjacent(i, j) {
				if _, err := out.Join(i, j, "", NoColor, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// InducedSubgraph returns the subgraph induced by the vertex numbers in
// keep, in the order given: vertex number p of the result is the vertex
// keep[p] of g, and an edge of g survives iff both its endpoints are kept.
func InducedSubgraph(g *Graph, keep []int) (*Graph, error) {
	n := g.Order()
	newPos := make(map[int]int, len(keep))
	out := newSkeleton(g)
	out.vertices = make([]Vertex, len(keep))
	out.nextID = g.nextID
	for p, old := range keep {
		if old < 0 || old >= n {
			return nil, ErrOutOfRange
		}
		newPos[old] = p
		out.vertices[p] = g.vertices[old]
		out.vertices[p].Contracted = copyIDSet(g.vertices[old].Contracted)
	}
	out.rebuild() // establishes out.matrix before any rawJoin below

	for _, e := range g.edges {
		fromOld, err := g.FindByID(e.FromID)
		if err != nil {
			continue
		}
		toOld, err := g.FindByID(e.ToID)
		if err != nil {
			continue
		}
		fromNew, keepFrom := newPos[fromOld]
		toNew, keepTo := newPos[toOld]
		if keepFrom && keepTo {
			if _, err := out.rawJoin(fromNew, toNew, e.Label, e.Color, e.Weight); err != nil {
				return nil, err
			}
		}
	}
	out.rebuild() // re-sync idToNumber/labelToNumber (rawJoin does not touch them)

	return out, nil
}

// RemoveSubgraph returns g with the listed vertex numbers and edge numbers
// removed. An edge incident to a removed vertex is dropped even if its own
// number is not listed.
func RemoveSubgraph(g *Graph, removeVertices, removeEdges []int) (*Graph, error) {
	n := g.Order()
	removedV := make(map[int]bool, len(removeVertices))
	for _, v := range removeVertices {
		if v < 0 || v >= n {
			return nil, ErrOutOfRange
		}
		removedV[v] = true
	}
	removedE := make(map[int]bool, len(removeEdges))
	for _, k := range removeEdges {
		if k < 0 || k >= g.Size() {
			return nil, ErrOutOfRange
		}
		removedE[k] = true
	}

	keep := make([]int, 0, n-len(removedV))
	for i := 0; i < n; i++ {
		if !removedV[i] {
			keep = append(keep, i)
		}
	}

	out, err := InducedSubgraph(g, keep)
	if err != nil {
		return nil, err
	}
	if len(removedE) == 0 {
		return out, nil
	}

	// Re-derive, this time skipping explicitly removed edge numbers too.
	newPos := make(map[int]int, len(keep))
	for p, old := range keep {
		newPos[old] = p
	}
	out2 := newSkeleton(g)
	out2.vertices = make([]Vertex, len(out.vertices))
	copy(out2.vertices, out.vertices)
	out2.nextID = g.nextID
	out2.rebuild() // establishes out2.matrix before any rawJoin below
	for k, e := range g.edges {
		if removedE[k] {
			continue
		}
		fromOld, err := g.FindByID(e.FromID)
		if err != nil {
			continue
		}
		toOld, err := g.FindByID(e.ToID)
		if err != nil {
			continue
		}
		fromNew, keepFrom := newPos[fromOld]
		toNew, keepTo := newPos[toOld]
		if keepFrom && keepTo {
			if _, err := out2.rawJoin(fromNew, toNew, e.Label, e.Color, e.Weight); err != nil {
				return nil, err
			}
		}
	}
	out2.rebuild()

	return out2, nil
}

// rawJoin is Join without the vertex-number range check, used internally by
// transforms that copy edges between vertex numbers they have already
// mapped into the new graph's table.
func (g *Graph) rawJoin(i, j int, label string, color Color, weight Weight) (int, error) {
	if i == j && !g.allowLoops {
		return 0, ErrLoopEdge
	}
	if !g.allowMulti && g.Adjacent(i, j) {
		return 0, ErrMultipleEdge
	}
	e := Edge{FromID: g.vertices[i].ID, ToID: g.vertices[j].ID, Label: label, Color: color, Weight: weight}
	g.edges = append(g.edges, e)
	k := len(g.edges) - 1
	g.matrix[i][j] = append(g.matrix[i][j], k)
	if !g.directed && i != j {
		g.matrix[j][i] = append(g.matrix[j][i], k)
	}

	return k, nil
}

// Contract returns g with vertex numbers from and to merged into one
// vertex, failing with ErrSameVertexContract if from == to. It is
// ContractSets with a single two-element fragment.
func Contract(g *Graph, from, to int) (*Graph, error) {
	if from == to {
		return nil, ErrSameVertexContract
	}

	return ContractSets(g, [][]int{{from, to}})
}

// ContractSets returns g with each fragment of two or more vertex numbers
// merged into one vertex. Fragments of fewer than two vertices are ignored.
// It fails with ErrSameVertexContract if a vertex number appears in more
// than one fragment, or twice within the same fragment.
//
// The merged vertex w inherits the label and color of the first element of
// its fragment, and a Contracted set equal to the union of each merged
// vertex's own Contracted set (or, for a vertex that was never itself a
// contraction, its own id). An edge whose endpoints land on the same merged
// vertex after the merge is dropped; a duplicate edge between two merged
// vertices is dropped unless the graph allows multi-edges.
func ContractSets(g *Graph, fragments [][]int) (*Graph, error) {
	n := g.Order()
	where := make(map[int]int) // vertex number -> fragment index, for fragments of size >= 2
	var kept [][]int
	for _, frag := range fragments {
		if len(frag) < 2 {
			continue
		}
		idx := len(kept)
		kept = append(kept, frag)
		for _, v := range frag {
			if v < 0 || v >= n {
				return nil, ErrOutOfRange
			}
			if _, dup := where[v]; dup {
				return nil, ErrSameVertexContract
			}
			where[v] = idx
		}
	}

	out := newSkeleton(g)
	out.nextID = g.nextID

	// Lay out unaffected vertices first, in original order, then one new
	// vertex per fragment, in fragment order.
	newPos := make(map[int]int, n)
	for i := 0; i < n; i++ {
		if _, affected := where[i]; !affected {
			newPos[i] = len(out.vertices)
			v := g.vertices[i]
			v.Contracted = copyIDSet(g.vertices[i].Contracted)
			out.vertices = append(out.vertices, v)
		}
	}

	fragPos := make([]int, len(kept))
	for idx, frag := range kept {
		first := g.vertices[frag[0]]
		merged := Vertex{
			ID:    out.nextID,
			Label: first.Label,
			Color: first.Color,
			X:     first.X,
			Y:     first.Y,
		}
		out.nextID++

		ids := make(map[VertexID]struct{})
		for _, v := range frag {
			src := g.vertices[v].Contracted
			if len(src) == 0 {
				ids[g.vertices[v].ID] = struct{}{}
			} else {
				for id := range src {
					ids[id] = struct{}{}
				}
			}
		}
		merged.Contracted = ids

		fragPos[idx] = len(out.vertices)
		out.vertices = append(out.vertices, merged)
		for _, v := range frag {
			newPos[v] = fragPos[idx]
		}
	}

	out.rebuild() // establishes out.matrix, sized to the final vertex count, before any rawJoin

	for _, e := range g.edges {
		fromOld, err := g.FindByID(e.FromID)
		if err != nil {
			continue
		}
		toOld, err := g.FindByID(e.ToID)
		if err != nil {
			continue
		}
		fromNew, toNew := newPos[fromOld], newPos[toOld]
		if fromNew == toNew {
			continue
		}
		if !out.allowMulti && out.Adjacent(fromNew, toNew) {
			continue
		}
		if _, err := out.rawJoin(fromNew, toNew, e.Label, e.Color, e.Weight); err != nil {
			return nil, err
		}
	}
	out.rebuild() // re-sync idToNumber/labelToNumber (rawJoin does not touch them)

	return out, nil
}
