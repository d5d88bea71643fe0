package core

// Order returns the vertex count.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the edge count.
func (g *Graph) Size() int { return len(g.edges) }

// IsNull reports whether the graph has no vertices.
func (g *Graph) IsNull() bool { return len(g.vertices) == 0 }

// IsEmpty reports whether the graph has no edges.
func (g *Graph) IsEmpty() bool { return len(g.edges) == 0 }

// Directed reports whether g was built with WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether g was built with WithMultiEdges.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether g was built with WithLoops.
func (g *Graph) Looped() bool { return g.allowLoops }

// Vertex returns the vertex at number i.
func (g *Graph) Vertex(i int) (Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, ErrOutOfRange
	}

	return g.vertices[i], nil
}

// Edge returns the edge at number k.
func (g *Graph) Edge(k int) (Edge, error) {
	if k < 0 || k >= len(g.edges) {
		return Edge{}, ErrOutOfRange
	}

	return g.edges[k], nil
}

// FindByID returns the vertex number carrying id.
func (g *Graph) FindByID(id VertexID) (int, error) {
	n, ok := g.idToNumber[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return n, nil
}

// FindByLabel returns the vertex number carrying label.
func (g *Graph) FindByLabel(label string) (int, error) {
	n, ok := g.labelToNumber[label]
	if !ok {
		return 0, ErrLabelNotFound
	}

	return n, nil
}

// IDsToNumbers maps a set of vertex ids to their current vertex numbers in g.
// It fails with ErrVertexNotFound on the first id not present in g.
func (g *Graph) IDsToNumbers(ids map[VertexID]struct{}) ([]int, error) {
	out := make([]int, 0, len(ids))
	for id := range ids {
		n, err := g.FindByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// Adjacent reports whether any edge connects vertex number i to vertex
// number j (either direction, for an undirected graph).
func (g *Graph) Adjacent(i, j int) bool {
	if i < 0 || i >= len(g.vertices) || j < 0 || j >= len(g.vertices) {
		return false
	}

	return len(g.matrix[i][j]) > 0
}

// EdgesBetween returns the edge numbers connecting vertex number i to vertex
// number j, in insertion order.
func (g *Graph) EdgesBetween(i, j int) []int {
	if i < 0 || i >= len(g.vertices) || j < 0 || j >= len(g.vertices) {
		return nil
	}

	return g.matrix[i][j]
}

// Degree returns the out-degree of vertex number i: the number of edges
// recorded from i to any vertex (including i itself, if loops are present).
// For an undirected graph this equals the total degree, since join mirrors
// every edge into both matrix[i][j] and matrix[j][i].
func (g *Graph) Degree(i int) int {
	d := 0
	for j := range g.vertices {
		d += len(g.matrix[i][j])
	}

	return d
}

// MinDegree returns the minimum Degree over all vertices, or 0 if g is null.
// Recomputed on every call rather than cached, since Graph values are
// produced fresh by every transform.
func (g *Graph) MinDegree() int {
	if g.IsNull() {
		return 0
	}
	min := g.Degree(0)
	for i := 1; i < len(g.vertices); i++ {
		if d := g.Degree(i); d < min {
			min = d
		}
	}

	return min
}

// MaxDegree returns the maximum Degree over all vertices, or 0 if g is null.
func (g *Graph) MaxDegree() int {
	max := 0
	for i := range g.vertices {
		if d := g.Degree(i); d > max {
			max = d
		}
	}

	return max
}

// IsComplete reports whether every distinct pair of vertices is adjacent.
func (g *Graph) IsComplete() bool {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.Adjacent(i, j) {
				return false
			}
		}
	}

	return true
}

// IsProper reports whether g carries a proper coloring: every vertex has a
// color other than NoColor, and no two adjacent vertices share a color.
func (g *Graph) IsProper() bool {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		ci := g.vertices[i].Color
		if ci == NoColor {
			return false
		}
		for j := i + 1; j < n; j++ {
			if g.Adjacent(i, j) && ci == g.vertices[j].Color {
				return false
			}
		}
	}

	return true
}

// SetColor assigns a color to vertex number i.
func (g *Graph) SetColor(i int, c Color) error {
	if i < 0 || i >= len(g.vertices) {
		return ErrOutOfRange
	}
	g.vertices[i].Color = c

	return nil
}

// Coloring returns the current Color of every vertex, indexed by vertex
// number.
func (g *Graph) Coloring() []Color {
	out := make([]Color, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Color
	}

	return out
}

// ApplyColoring assigns colors 1…len(classes) to g's vertices, one color per
// class, every id in classes[i] taking Color(i+1). It is the shared
// mutation every chromatic-number algorithm's Result.Apply delegates to.
func ApplyColoring(g *Graph, classes [][]VertexID) error {
	for ci, class := range classes {
		for _, id := range class {
			n, err := g.FindByID(id)
			if err != nil {
				return err
			}
			if err := g.SetColor(n, Color(ci+1)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Join adds an edge between vertex numbers i and j, in place, failing with
// ErrLoopEdge if i == j and loops are disallowed, or ErrMultipleEdge if i and
// j are already connected and multi-edges are disallowed. It returns the new
// edge's number.
//
// Join is the only in-place structural mutator on Graph (SetColor and
// LabelVertex change vertex attributes in place; the transforms return a new
// value). Algorithms that need to add an edge during a search first Clone the
// graph they are branching from, then Join on the clone.
func (g *Graph) Join(i, j int, label string, color Color, weight Weight) (int, error) {
	if i < 0 || i >= len(g.vertices) || j < 0 || j >= len(g.vertices) {
		return 0, ErrOutOfRange
	}
	if i == j && !g.allowLoops {
		return 0, ErrLoopEdge
	}
	if !g.allowMulti && g.Adjacent(i, j) {
		return 0, ErrMultipleEdge
	}

	// Edge labels are descriptive only; DuplicateLabel applies to vertex
	// labels (see LabelVertex), not edge labels.
	e := Edge{FromID: g.vertices[i].ID, ToID: g.vertices[j].ID, Label: label, Color: color, Weight: weight}
	g.edges = append(g.edges, e)
	k := len(g.edges) - 1

	g.matrix[i][j] = append(g.matrix[i][j], k)
	if !g.directed && i != j {
		g.matrix[j][i] = append(g.matrix[j][i], k)
	}

	return k, nil
}

// LabelVertex assigns label to vertex number i, in place, failing with
// ErrDuplicateLabel if another vertex already carries it.
func (g *Graph) LabelVertex(i int, label string) error {
	if i < 0 || i >= len(g.vertices) {
		return ErrOutOfRange
	}
	if label != "" {
		if n, dup := g.labelToNumber[label]; dup && n != i {
			return ErrDuplicateLabel
		}
	}
	if old := g.vertices[i].Label; old != "" {
		delete(g.labelToNumber, old)
	}
	g.vertices[i].Label = label
	if label != "" {
		g.labelToNumber[label] = i
	}

	return nil
}

// MakeComplete joins every distinct pair of vertices not already adjacent,
// in place. It never fails: a simple graph being completed can only add
// edges between non-adjacent pairs, which Join always accepts.
func (g *Graph) MakeComplete() {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.Adjacent(i, j) {
				_, _ = g.Join(i, j, "", NoColor, 0)
			}
		}
	}
}
