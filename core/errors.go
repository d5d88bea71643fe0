// Package core defines the central Graph, Vertex, and Edge types shared by
// every search algorithm in this module: vertex/edge storage, the connection
// matrix, contraction, induced/removed subgraphs, and complement.
//
// Graphs are immutable under algorithms: every structural transform below
// (Clone, Complement, InducedSubgraph, RemoveSubgraph, Contract, ContractSets)
// returns a new *Graph that owns its own vertex, edge, and matrix state. The
// only in-place structural mutator is Join (and MakeComplete, which calls
// it), used to build a graph up before handing it to a search, or by a search
// that has already taken ownership of a private clone; SetColor and
// LabelVertex change vertex attributes in place.
//
// Errors:
//
//	ErrOutOfRange        - vertex/edge number beyond the table.
//	ErrVertexNotFound     - id lookup miss.
//	ErrLabelNotFound      - label lookup miss.
//	ErrDuplicateLabel     - label already in use by a different vertex.
//	ErrMultipleEdge       - parallel edge attempted where disallowed.
//	ErrLoopEdge           - self-loop attempted where disallowed.
//	ErrSameVertexContract - a contraction argument places one vertex into two fragments, or contracts a vertex with itself.
package core

import "errors"

var (
	// ErrOutOfRange indicates a vertex or edge number beyond the current table.
	ErrOutOfRange = errors.New("core: number out of range")

	// ErrVertexNotFound indicates a lookup by id found no matching vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLabelNotFound indicates a lookup by label found no matching vertex.
	ErrLabelNotFound = errors.New("core: label not found")

	// ErrDuplicateLabel indicates a non-empty label is already in use by a different vertex.
	ErrDuplicateLabel = errors.New("core: duplicate label")

	// ErrMultipleEdge indicates an attempt to add a parallel edge when multi-edges are disabled.
	ErrMultipleEdge = errors.New("core: multiple edge not allowed")

	// ErrLoopEdge indicates an attempt to add a self-loop when loops are disabled.
	ErrLoopEdge = errors.New("core: loop edge not allowed")

	// ErrSameVertexContract indicates a contraction placed one vertex in two fragments,
	// or asked to contract a vertex with itself.
	ErrSameVertexContract = errors.New("core: same vertex contracted twice")
)
