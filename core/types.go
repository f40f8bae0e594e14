// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors, and the NewGraph
//       constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates an operation required a fresh vertex ID
	// (e.g. SplitEdge) but the ID is already present in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// Each Edge has a unique ID and endpoints From/To. The From/To naming is a
// storage convention only; the edge carries no orientation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is one endpoint vertex ID.
	From string

	// To is the other endpoint vertex ID.
	To string
}

// Other returns the endpoint of e opposite to vertex id.
// If id is neither endpoint, Other returns the empty string.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
// The auxiliary graphs maintained by the decomposition layers rely on this.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory undirected multigraph.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and
// adjacencyList. nextEdgeID is an atomic counter for unique Edge.ID
// generation ("e1", "e2", ...).
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v][edgeID] = struct{}{}; undirected edges are mirrored.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is a simple graph: no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted by policy. If false, AddEdge rejects duplicates with
// ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// GraphStats is a deterministic, read-only snapshot of configuration flags
// and catalog sizes. Produced by Graph.Stats.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
}

// Stats produces a snapshot of configuration flags and catalog sizes.
// The two locks are taken in sequence, never simultaneously.
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}
