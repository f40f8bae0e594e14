// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muVert write lock; reads under muVert read lock.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is
// a no-op (idempotent), matching the needs of edge-driven construction.
//
// Steps:
//  1. Reject empty IDs.
//  2. Lock muVert, insert if absent.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending (stable, deterministic).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the total number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
