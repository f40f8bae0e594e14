// File: create.go
// Role: lazy tree construction: chain decomposition of a block over a DFS
//       tree, foundation cycle, and ear-by-ear insertion.

package spqr

import "github.com/katalvlaran/spqr/bctree"

// half is one directed view of an undirected H-edge.
type half struct {
	e, to string
}

// createTree builds the SPQR-tree of block b, which must be a biconnected
// component with at least three H-edges. The first chain of the block's
// chain decomposition (a cycle) founds the tree as a single S or P node;
// every later chain is an open ear inserted through the same tree-path
// restructure the dynamic updates use, so the result coincides with the
// canonical triconnected decomposition.
// Complexity: O(block size · α) plus restructure costs.
func (f *Forest) createTree(b bctree.BlockID) {
	hEdges, err := f.BlockEdges(b)
	if err != nil || len(hEdges) < 3 {
		panic("spqr: internal: createTree on an undersized block")
	}
	f.counts[b] = &Counts{}

	// 1. Adjacency over the block's real H-edges.
	adj := make(map[string][]half, len(hEdges))
	for _, e := range hEdges {
		u, v := f.ends(e)
		adj[u] = append(adj[u], half{e, v})
		adj[v] = append(adj[v], half{e, u})
	}

	// 2. Iterative DFS: tree edges via parent pointers, non-tree edges
	//    recorded at their earlier-discovered endpoint.
	rootV, _ := f.ends(hEdges[0])
	index := map[string]int{rootV: 0}
	order := []string{rootV}
	parentEdge := make(map[string]string, len(adj))
	parentVert := make(map[string]string, len(adj))
	seen := make(map[string]bool, len(hEdges))
	backAt := make(map[string][]string)
	backDesc := make(map[string]string, len(hEdges))

	type frame struct {
		v string
		i int
	}
	stack := []frame{{rootV, 0}}
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		if fr.i >= len(adj[fr.v]) {
			stack = stack[:len(stack)-1]
			continue
		}
		h := adj[fr.v][fr.i]
		fr.i++
		if seen[h.e] {
			continue
		}
		seen[h.e] = true
		if _, visited := index[h.to]; !visited {
			index[h.to] = len(order)
			order = append(order, h.to)
			parentEdge[h.to] = h.e
			parentVert[h.to] = fr.v
			stack = append(stack, frame{h.to, 0})
			continue
		}
		anc, desc := fr.v, h.to
		if index[h.to] < index[fr.v] {
			anc, desc = h.to, fr.v
		}
		backAt[anc] = append(backAt[anc], h.e)
		backDesc[h.e] = desc
	}

	// 3. Chains in DFS order: each non-tree edge opens a chain that climbs
	//    parent pointers until it meets an already placed vertex. In a
	//    biconnected block exactly the first chain is a cycle.
	placed := make(map[string]bool, len(order))
	built := false
	for _, u := range order {
		for _, e := range backAt[u] {
			founding := !placed[u]
			placed[u] = true
			ear := []string{e}
			cur := backDesc[e]
			for !placed[cur] {
				placed[cur] = true
				ear = append(ear, parentEdge[cur])
				cur = parentVert[cur]
			}
			if founding {
				if built {
					panic("spqr: internal: second cycle chain in a block")
				}
				typ := SComp
				if len(ear) == 2 {
					typ = PComp // a pair of parallel edges
				}
				n0 := f.newNode(b, typ)
				for _, ce := range ear {
					f.placeEdge(n0, ce, "")
				}
				f.roots[b] = n0
				built = true
				continue
			}
			if cur == u {
				panic("spqr: internal: closed ear in a biconnected block")
			}
			f.insertAttachment(b, u, cur, ear)
		}
	}

	// A real edge left out of every chain would mean the block was not
	// biconnected; the partition invariant depends on it.
	for _, e := range hEdges {
		if _, ok := f.info[e]; !ok {
			panic("spqr: internal: block edge missed by chain decomposition")
		}
	}
}

// ends returns the endpoints of an H-edge, panicking on unknown IDs (every
// skeleton edge must exist in H).
func (f *Forest) ends(e string) (string, string) {
	u, v, err := f.H().Endpoints(e)
	if err != nil {
		panic("spqr: internal: " + err.Error())
	}

	return u, v
}

// allocNode resolves a vertex of block b to a node of the block's tree: the
// representative holding some placed edge incident to the vertex.
func (f *Forest) allocNode(b bctree.BlockID, vtx string) NodeID {
	incident, err := f.G().IncidentEdges(vtx)
	if err != nil {
		panic("spqr: internal: " + err.Error())
	}
	for _, e := range incident {
		pb, err := f.ProperBlock(e.ID)
		if err != nil || pb != b {
			continue
		}
		eH, err := f.HEdgeOf(e.ID)
		if err != nil {
			continue
		}
		if _, ok := f.info[eH]; ok {
			return f.properEdgeNode(eH)
		}
	}
	panic("spqr: internal: vertex " + vtx + " has no placed edge in its block")
}
