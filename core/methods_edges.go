// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/
//       EdgeCount/Endpoints, plus the SplitEdge subdivision primitive and
//       nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; reads under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to, creating the
// endpoint vertices if they do not exist yet.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the edge ID atomically, store, and mirror adjacency.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	return g.addEdgeLocked(from, to)
}

// addEdgeLocked performs the edge insertion proper. Caller holds muEdgeAdj.
func (g *Graph) addEdgeLocked(from, to string) (string, error) {
	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// Mirror the undirected edge unless it is a loop.
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its adjacency mirror.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	return g.removeEdgeLocked(eid)
}

// removeEdgeLocked performs the removal proper. Caller holds muEdgeAdj.
func (g *Graph) removeEdgeLocked(eid string) error {
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge between from and to exists.
// Works in both argument orders, as adjacency is mirrored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a pointer to the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present.
//
// Contract: the returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Endpoints returns the two endpoint vertex IDs of the given edge.
// Complexity: O(1).
func (g *Graph) Endpoints(edgeID string) (string, string, error) {
	e, err := g.GetEdge(edgeID)
	if err != nil {
		return "", "", err
	}

	return e.From, e.To, nil
}

// SplitEdge subdivides the edge edgeID with a fresh vertex newVertexID:
// the original edge (u,v) is removed and replaced by two edges (u,new) and
// (new,to). The two replacement edge IDs are returned in that order.
//
// Steps:
//  1. Validate newVertexID is non-empty and not yet present.
//  2. Lock muEdgeAdj, look up and remove the old edge.
//  3. Insert newVertexID and the two replacement edges.
//
// Complexity: O(1).
func (g *Graph) SplitEdge(edgeID, newVertexID string) (string, string, error) {
	// 1) Validate the fresh vertex
	if newVertexID == "" {
		return "", "", ErrEmptyVertexID
	}
	if g.HasVertex(newVertexID) {
		return "", "", ErrVertexExists
	}

	// 2) Swap edges under one lock so no observer sees a half-split state.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return "", "", ErrEdgeNotFound
	}
	from, to := e.From, e.To

	if err := g.AddVertex(newVertexID); err != nil {
		return "", "", err
	}
	if err := g.removeEdgeLocked(edgeID); err != nil {
		return "", "", err
	}

	// 3) Two replacement edges in series
	e1, err := g.addEdgeLocked(from, newVertexID)
	if err != nil {
		return "", "", err
	}
	e2, err := g.addEdgeLocked(newVertexID, to)
	if err != nil {
		return "", "", err
	}

	return e1, e2, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism: a monotonic uint64 counter incremented atomically produces
// "e" + decimal digits (no locale/time/randomness). Avoids fmt.Sprintf to
// remove heap churn in hot paths.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
