// Package quickzykov computes the chromatic number χ(G) of a simple graph
// by repeatedly deciding k-colorability for k = 2, 3, ... until a k that
// works is found.
//
// Each k-colorability decision (is_k_colorable in original_source) tries, in
// order, six bounding tests before branching:
//
//  1. success: the graph already has at most k vertices.
//  2. edge threshold: the edge count exceeds the Turán bound for k parts.
//  3. small-degree peeling: remove every vertex of degree < k (always safe:
//     such a vertex can be colored last with any unused neighbor color).
//  4. neighborhood-subset removal: if N(u) ⊆ N(v) for some pair, u can
//     always share v's eventual color, so u is removed.
//  5. common-neighbor upper bound: the smallest common-neighbor count over
//     all vertex pairs exceeds a bound derived from k, failing the test.
//  6. branch: contract the least-adjacent non-adjacent pair (assume same
//     color) or, failing that, join them with an edge (assume different
//     colors), recursing on each.
//
// Reductions applied at one value of k persist across later, larger values
// of k: the graph only ever shrinks or gains edges, so a reduction that was
// valid for a smaller k remains valid for every larger k tried afterward.
package quickzykov

import (
	"fmt"

	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// TraceFormatter receives one human-readable line per notable decision
// point in the search (a bounding test firing, a branch taken). It is nil
// by default; installing one has no effect on the search's outcome.
type TraceFormatter func(line string)

type config struct {
	trace TraceFormatter
}

func defaultConfig() config { return config{} }

// Option configures a Search.
type Option func(*config)

// WithTrace installs a TraceFormatter.
func WithTrace(fn TraceFormatter) Option {
	return func(c *config) { c.trace = fn }
}

// Counters exposes the try/hit counts for each bounding test, for diagnosing
// how much of the search space a given graph's structure let the bounds
// prune.
type Counters struct {
	EdgeThresholdTries, EdgeThresholdHits           int
	SmallDegreeTries, SmallDegreeHits               int
	NeighborhoodSubsetTries, NeighborhoodSubsetHits int
	CommonNeighborsTries, CommonNeighborsHits       int
}

// restoreKind identifies which bounding test produced a restoreOp.
type restoreKind int

const (
	// restoreSmallDegree undoes a small-degree-peeling removal: vertex was
	// colorable last, using any color not already taken by neighbors.
	restoreSmallDegree restoreKind = iota
	// restoreSubset undoes a neighborhood-subset removal: vertex always
	// shares donor's eventual color.
	restoreSubset
)

// restoreOp records one vertex removed by a bounding test, in enough detail
// to reconstruct its color once the rest of the graph has been colored.
// Replaying a Search's restores in reverse (last removed, first restored)
// guarantees every id a restoreOp references — a neighbor or a donor — has
// already been assigned a color by the time that op is processed: it was
// present when vertex was removed, so it is restored no later than vertex
// is, and Contract never discards an id outright.
type restoreOp struct {
	kind      restoreKind
	vertex    core.VertexID
	neighbors []core.VertexID // restoreSmallDegree: ids adjacent to vertex when it was removed
	donor     core.VertexID   // restoreSubset: the vertex whose color vertex copies
}

// Search runs one chromatic-number computation over a fixed graph.
type Search struct {
	harness.Harness

	g     *core.Graph
	trace TraceFormatter

	k         int
	chromatic *core.Graph // the working graph at the point the winning k succeeded
	restores  []restoreOp
	Counters
}

// New builds a Search over g.
func New(g *core.Graph, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{g: g, trace: cfg.trace}
}

// Result is the outcome of one Search.Run.
type Result struct {
	ChromaticNumber int
	// ColorClasses partitions the original graph's vertex ids into
	// ChromaticNumber independent sets.
	ColorClasses [][]core.VertexID
	Counters     Counters
}

// Apply mutates g's vertex colors to 1…ChromaticNumber, one color per entry
// of ColorClasses.
func (r *Result) Apply(g *core.Graph) error {
	return core.ApplyColoring(g, r.ColorClasses)
}

// graphRef is a shared, mutable reference to the graph currently under
// consideration: is_k_colorable's bounding reductions replace it in place
// (within one k attempt and across attempts), mirroring the GraphPtr* the
// original algorithm threads through outer_loop and its recursions.
type graphRef struct {
	g *core.Graph
}

func (s *Search) tracef(format string, args ...any) {
	if s.trace == nil {
		return
	}
	s.trace(fmt.Sprintf(format, args...))
}
