// Package bron enumerates maximal cliques of a simple graph with the
// Bron–Kerbosch algorithm, in either of its classical forms: no-pivot
// (exhaustive branching over every candidate) or pivoted (branching only
// over candidates not adjacent to a chosen pivot, pruning branches that
// cannot extend to a new maximal clique).
//
// Three save modes control what Search.Run keeps:
//
//	ModeAll      every maximal clique found, in discovery order.
//	ModeMaxOnly  only the maximum-size maximal cliques (the clique number).
//	ModeFirstMax only the first maximum-size clique found: a branch whose
//	             remaining candidates can no longer beat the best clique
//	             saved so far (|R|+|P| ≤ best) is pruned rather than
//	             explored, so this mode is typically faster than ModeAll
//	             or ModeMaxOnly while still finding a true maximum clique.
//
// A caller-supplied FoundFunc is invoked for every maximal clique as it is
// discovered, regardless of save mode; returning false from it cancels the
// remainder of the search, the only cancellation mechanism this package
// offers (there is no context.Context parameter).
package bron

import (
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/core"
	"github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants/harness"
)

// Mode selects which maximal cliques Search.Run retains.
type Mode int

const (
	ModeAll Mode = iota
	ModeMaxOnly
	ModeFirstMax
)

// Variant selects the branching strategy.
type Variant int

const (
	// VariantNoPivot branches over every candidate vertex in turn
	// (original_source bron1.cc).
	VariantNoPivot Variant = iota
	// VariantPivot branches only over candidates not adjacent to a pivot
	// chosen to minimize that candidate set (original_source bron2.cc).
	VariantPivot
)

// FoundFunc is called with each maximal clique (as vertex numbers) as it is
// discovered. Returning false cancels the rest of the search.
type FoundFunc func(clique []int) bool

type config struct {
	mode  Mode
	found FoundFunc
}

func defaultConfig() config {
	return config{mode: ModeAll}
}

// Option configures a Search.
type Option func(*config)

// WithMode sets the save mode. The default is ModeAll.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithFound installs a callback invoked on every maximal clique found.
func WithFound(fn FoundFunc) Option {
	return func(c *config) { c.found = fn }
}

// Search runs one Bron–Kerbosch enumeration over a fixed graph.
type Search struct {
	harness.Harness

	g       *core.Graph
	variant Variant
	mode    Mode
	found   FoundFunc

	cliques [][]int
	total   int
}

// New builds a Search over g using the given branching variant.
func New(g *core.Graph, variant Variant, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{g: g, variant: variant, mode: cfg.mode, found: cfg.found}
}

// Result is the outcome of one Search.Run.
type Result struct {
	// Cliques holds the maximal cliques retained under the search's save
	// mode, each as a sorted-by-discovery list of vertex numbers.
	Cliques [][]int
	// Total is the number of maximal cliques actually found, regardless of
	// how many were retained.
	Total int
	// Number is the order of the largest clique saved (ω(G), or a lower
	// bound on it if the search was cancelled before completing).
	Number int
	// Cancelled reports whether a FoundFunc returned false before the
	// search explored its full space.
	Cancelled bool
}
