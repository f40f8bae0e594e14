// File: methods_adjacent.go
// Role: Adjacency maintenance helpers and traversal queries:
//       IncidentEdges/NeighborIDs/Degree.
// Determinism:
//   - IncidentEdges() and NeighborIDs() return results sorted ascending.
// Concurrency:
//   - Reads under muEdgeAdj read lock; helpers assume the write lock is held.

package core

import "sort"

// ensureAdjacency makes sure the nested adjacency buckets for (from,to)
// exist. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency drops edge e from both adjacency buckets, deleting the
// buckets if they become empty. Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	dropBucket(g, e.From, e.To, e.ID)
	if e.From != e.To {
		dropBucket(g, e.To, e.From, e.ID)
	}
}

// dropBucket removes one edge ID from adjacencyList[u][v] and prunes empty maps.
func dropBucket(g *Graph, u, v, eid string) {
	inner := g.adjacencyList[u][v]
	if inner == nil {
		return
	}
	delete(inner, eid)
	if len(inner) == 0 {
		delete(g.adjacencyList[u], v)
		if len(g.adjacencyList[u]) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}

// IncidentEdges returns every edge incident to the given vertex, sorted by
// Edge.ID asc. Loops appear once; parallel edges appear once each.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the distinct neighbor vertex IDs of id, sorted asc.
// A vertex with a self-loop is its own neighbor.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacencyList[id]))
	for nid := range g.adjacencyList[id] {
		out = append(out, nid)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edge-endpoints at the given vertex
// (a self-loop counts twice, parallel edges count once each).
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for nid, bucket := range g.adjacencyList[id] {
		if nid == id {
			deg += 2 * len(bucket) // loop endpoints
			continue
		}
		deg += len(bucket)
	}

	return deg, nil
}
