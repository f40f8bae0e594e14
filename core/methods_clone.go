// File: methods_clone.go
// Role: Cloning: CloneEmpty (vertices+flags) and Clone (deep copy).

package core

// CloneEmpty returns a new Graph with the same flags and vertices but no
// edges. Vertex Metadata maps are shared (shallow).
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := &Graph{
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
	}

	return clone
}

// Clone returns a deep copy of the graph: vertices, edges, adjacency, and
// the edge-ID sequence (so IDs generated after cloning do not collide).
// Vertex Metadata maps are shared (shallow), matching CloneEmpty.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: e.ID, From: e.From, To: e.To}
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
