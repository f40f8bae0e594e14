// Package core defines the central Graph, Vertex, and Edge types used by the
// decomposition structures in this module, and provides thread-safe
// primitives for building, querying, and cloning undirected multigraphs.
//
// # Model
//
// A Graph is an in-memory undirected multigraph with string vertex IDs and
// generated textual edge IDs ("e1", "e2", ...). By default it is simple;
// WithMultiEdges and WithLoops relax that per instance. The decomposition
// layers keep two of them side by side: the caller's graph G and an
// auxiliary graph H that must allow parallel edges.
//
// Beyond the usual vertex/edge lifecycle, the substrate offers SplitEdge,
// which subdivides an existing edge with a fresh vertex and returns the two
// replacement edges. Edge subdivision is the second structural update the
// dynamic decompositions support, so it lives here next to AddEdge.
//
// # Determinism
//
// Vertices(), Edges(), IncidentEdges() and NeighborIDs() return sorted
// results, so replaying the same insertion script always yields the same
// IDs and iteration orders.
//
// # Concurrency
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so the substrate itself may
// be shared across goroutines with minimal contention. The dynamic
// decomposition layers built on top (bctree, spqr) require single-writer
// discipline; see their package docs.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrVertexExists        - a fresh vertex ID was required but already taken.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
