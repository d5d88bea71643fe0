// Package graphinvariants computes two classical NP-hard graph invariants —
// the clique number ω(G) and the chromatic number χ(G) — on finite simple
// graphs, using exact and heuristic branch-and-bound search.
//
// What's here:
//
//	core/          — Graph, Vertex, Edge: contraction, subgraph, complement, connection matrix
//	harness/       — shared timing and step/call/depth instrumentation for every search below
//	bron/          — Bron–Kerbosch maximal-clique enumeration (no-pivot and pivot variants)
//	quickzykov/    — chromatic number via k-colorability decisions with bounded branching
//	chromaticwang/ — chromatic number via MIS enumeration on the complement (Christofides, Wang)
//	zykov/         — classical Zykov branch-and-bound: χ(G) = min(χ(G/uv), χ(G+uv))
//	greedy/        — largest-first sequential coloring with Kempe-chain interchange
//	builder/       — deterministic graph constructors (complete, empty, Mycielski family)
//
// All algorithm packages operate on a *core.Graph built as a simple graph
// (undirected, no parallel edges, no self-loops); core.Graph also models
// directed and multi-edge graphs for the data-model's own sake, but the
// search packages assume a simple graph as a precondition.
//
// The core is single-threaded and synchronous: no package here spawns a
// goroutine or holds a lock. Each algorithm owns the working graphs it
// creates during its own search for the duration of that search only.
//
//	go get github.com/jeffery-cavallaro-cavcom/cavcom-graphinvariants
package graphinvariants
