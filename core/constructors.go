package core

// NewGraph builds an empty simple graph of n vertices (no edges), numbered
// 0..n-1 in insertion order, each assigned a fresh VertexID. Options select a
// non-simple configuration (directed, multi-edge, looped); the default is a
// simple undirected graph.
func NewGraph(n int, opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.vertices = make([]Vertex, n)
	for i := range g.vertices {
		g.vertices[i] = Vertex{ID: g.nextID}
		g.nextID++
	}
	g.rebuild()

	return g
}

// VertexValues is the per-vertex input to NewGraphFromValues.
type VertexValues struct {
	Label string
	Color Color
	X, Y  float64
}

// EdgeValues is the per-edge input to NewGraphFromValues: From/To are vertex
// numbers indexing the VertexValues slice passed alongside.
type EdgeValues struct {
	From, To int
	Label    string
	Color    Color
	Weight   Weight
}

// NewGraphFromValues builds a graph from explicit vertex and edge value
// lists, in one pass, returning the same errors Join would return if the
// edges were added one at a time in order.
func NewGraphFromValues(vertices []VertexValues, edges []EdgeValues, opts ...Option) (*Graph, error) {
	g := NewGraph(len(vertices), opts...)
	for i, vv := range vertices {
		g.vertices[i].Label = vv.Label
		g.vertices[i].Color = vv.Color
		g.vertices[i].X, g.vertices[i].Y = vv.X, vv.Y
	}
	if err := g.rebuildLabels(); err != nil {
		return nil, err
	}

	for _, ev := range edges {
		if _, err := g.Join(ev.From, ev.To, ev.Label, ev.Color, ev.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Clone returns an independent copy of g: same flags, vertices, edges, and
// matrix, sharing no backing storage with g.
func Clone(g *Graph) *Graph {
	out := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextID:     g.nextID,
	}
	out.vertices = make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out.vertices[i] = v
		out.vertices[i].Contracted = copyIDSet(v.Contracted)
	}
	out.edges = make([]Edge, len(g.edges))
	copy(out.edges, g.edges)
	out.rebuild()

	return out
}

// newSkeleton returns an empty graph carrying the same flags as g, with no
// vertices or edges, ready for a transform to populate.
func newSkeleton(g *Graph) *Graph {
	return &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
	}
}

func copyIDSet(s map[VertexID]struct{}) map[VertexID]struct{} {
	if len(s) == 0 {
		return nil
	}
	out := make(map[VertexID]struct{}, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// rebuild recomputes the id/label lookup maps and the connection matrix from
// the current vertex and edge tables. Every transform that produces a new
// vertex or edge table calls this once at the end, rather than patching the
// matrix incrementally.
func (g *Graph) rebuild() {
	n := len(g.vertices)
	g.idToNumber = make(map[VertexID]int, n)
	g.labelToNumber = make(map[string]int, n)
	for i, v := range g.vertices {
		g.idToNumber[v.ID] = i
		if v.Label != "" {
			g.labelToNumber[v.Label] = i
		}
	}

	g.matrix = make([][][]int, n)
	for i := range g.matrix {
		g.matrix[i] = make([][]int, n)
	}
	for k, e := range g.edges {
		from, okF := g.idToNumber[e.FromID]
		to, okT := g.idToNumber[e.ToID]
		if !okF || !okT {
			continue
		}
		g.matrix[from][to] = append(g.matrix[from][to], k)
		if !g.directed && from != to {
			g.matrix[to][from] = append(g.matrix[to][from], k)
		}
	}
}

// rebuildLabels rechecks label uniqueness after NewGraphFromValues assigns
// labels directly into the vertex table, then rebuilds the lookup maps.
func (g *Graph) rebuildLabels() error {
	g.labelToNumber = make(map[string]int, len(g.vertices))
	for i, v := range g.vertices {
		if v.Label == "" {
			continue
		}
		if _, dup := g.labelToNumber[v.Label]; dup {
			return ErrDuplicateLabel
		}
		g.labelToNumber[v.Label] = i
	}

	return nil
}
