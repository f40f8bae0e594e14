// File: update.go
// Role: the dynamic maintenance operations: InsertVertex, InsertEdge /
//       ApplyEdge (intra-block append, path condensation, tree link, fresh
//       block) and SplitEdge / ApplySplit (edge subdivision).

package bctree

import "fmt"

// InsertVertex adds an isolated vertex to G and H. The vertex joins a block
// only once an incident edge is inserted.
// Complexity: O(1).
func (t *Tree) InsertVertex(id string) error {
	if err := t.g.AddVertex(id); err != nil {
		return fmt.Errorf("bctree: InsertVertex(%q): %w", id, err)
	}
	if err := t.h.AddVertex(id); err != nil {
		return fmt.Errorf("bctree: InsertVertex(%q): %w", id, err)
	}

	return nil
}

// InsertEdge adds an edge from–to to G (creating endpoints as needed),
// mirrors it into H, and updates the BC-tree. Returns the new G edge ID.
//
// This is the plain form of the maintenance hook; decorating layers use
// ApplyEdge to obtain the structural report.
func (t *Tree) InsertEdge(from, to string) (string, error) {
	rep, err := t.ApplyEdge(from, to)
	if err != nil {
		return "", err
	}

	return rep.EdgeID, nil
}

// ApplyEdge performs the same maintenance as InsertEdge and reports the
// structural effect.
//
// Cases:
//  1. Both endpoints new           → fresh single-edge block (new BC-tree).
//  2. One endpoint new             → fresh block hung off a cut anchor.
//  3. Same proper node (one block) → intra-block append.
//  4. Same BC-tree, distinct nodes → condense the BC path into one block.
//  5. Different BC-trees           → link: fresh bridge block, reroot one side.
//
// Complexity: O(path length) for condensation, O(depth) for links, O(1)
// otherwise, plus amortized union-find costs.
func (t *Tree) ApplyEdge(from, to string) (EdgeInsertion, error) {
	// 1. Resolve current positions before mutating anything.
	su := t.properNodeIdx(from)
	sv := t.properNodeIdx(to)

	// 2. Materialize the edge in G and H.
	eG, err := t.g.AddEdge(from, to)
	if err != nil {
		return EdgeInsertion{}, fmt.Errorf("bctree: ApplyEdge(%q,%q): %w", from, to, err)
	}
	eH, err := t.h.AddEdge(from, to)
	if err != nil {
		return EdgeInsertion{}, fmt.Errorf("bctree: ApplyEdge(%q,%q): %w", from, to, err)
	}
	t.gToH[eG] = eH
	t.hToG[eH] = eG
	rep := EdgeInsertion{EdgeID: eG, HEdgeID: eH}

	switch {
	case su == nilNode && sv == nilNode:
		// Case 1: a brand-new single-edge block rooting its own BC-tree.
		nb := t.newBlock()
		t.nodes[nb].hEdges = append(t.nodes[nb].hEdges, eH)
		t.vertexNode[from] = nb
		t.vertexNode[to] = nb
		t.edgeBlock[eH] = nb
		rep.Block = BlockID(nb)

	case su == nilNode || sv == nilNode:
		// Case 2: one endpoint joins the structure for the first time.
		anchorV, leafV := from, to
		if su == nilNode {
			anchorV, leafV = to, from
		}
		cu := t.cutAnchor(anchorV)
		nb := t.newBlock()
		t.nodes[nb].hEdges = append(t.nodes[nb].hEdges, eH)
		t.nodes[nb].parent = cu
		t.nodes[cu].deg++
		t.vertexNode[leafV] = nb
		t.edgeBlock[eH] = nb
		rep.Block = BlockID(nb)

	case su == sv:
		// Case 3: both endpoints interior to the same block.
		t.nodes[su].hEdges = append(t.nodes[su].hEdges, eH)
		t.edgeBlock[eH] = su
		rep.Block = BlockID(su)
		rep.MergedBlocks = []BlockID{BlockID(su)}
		rep.Intra = true

	default:
		path, topAt, same := t.pathBetween(su, sv)
		if !same {
			// Case 5: the edge bridges two connected components.
			nb := t.linkTrees(from, to, sv)
			t.nodes[nb].hEdges = append(t.nodes[nb].hEdges, eH)
			t.edgeBlock[eH] = nb
			rep.Block = BlockID(nb)
			rep.Linked = true
			break
		}
		// Case 4: condense the cycle the new edge closes in the BC-tree.
		merged, absorbed := t.condense(path, topAt, eH)
		rep.Block = BlockID(merged)
		rep.MergedBlocks = absorbed
		rep.Intra = len(absorbed) == 1
	}

	return rep, nil
}

// cutAnchor returns the cut node for vertex v, creating one (hung under v's
// current block) if v was interior. The caller accounts for the new tree
// edge by incrementing deg.
func (t *Tree) cutAnchor(v string) int {
	i := t.vertexNode[v]
	if t.nodes[i].kind == cutKind {
		return i
	}
	b := t.find(i)
	c := t.newCut(v)
	t.nodes[c].parent = b
	t.nodes[c].deg = 1
	t.vertexNode[v] = c

	return c
}

// linkTrees attaches the BC-tree containing node sv (the proper node of
// vertex "to") beneath a fresh bridge block adjacent to vertex "from".
// Returns the new block's index; the caller assigns its edge.
func (t *Tree) linkTrees(from, to string, sv int) int {
	nb := t.newBlock()

	// u side: hang the bridge under from's cut anchor.
	cu := t.cutAnchor(from)
	t.nodes[nb].parent = cu
	t.nodes[cu].deg++

	// v side: make sv the root of its tree, then attach it under the bridge.
	t.rerootAt(sv)
	if t.nodes[sv].kind == cutKind {
		t.nodes[sv].parent = nb
		t.nodes[sv].deg++

		return nb
	}
	cv := t.newCut(to)
	t.nodes[cv].parent = nb
	t.nodes[cv].deg = 2
	t.nodes[sv].parent = cv
	t.vertexNode[to] = cv

	return nb
}

// condense merges every block on the given BC path into one block, absorbs
// the new H-edge, and adjusts the cut nodes along the path: interior cuts
// lose one tree edge and dissolve when their degree drops to 1.
//
// path alternates block and cut nodes; path[topAt] is the node nearest the
// tree root. Returns the surviving block index and the former block
// representatives in path order.
func (t *Tree) condense(path []int, topAt int, eH string) (int, []BlockID) {
	top := path[topAt]

	// 1. Gather the blocks; the first becomes the survivor.
	merged := nilNode
	absorbed := make([]BlockID, 0, (len(path)+1)/2)
	for _, n := range path {
		if t.nodes[n].kind != blockKind {
			continue
		}
		absorbed = append(absorbed, BlockID(n))
		if merged == nilNode {
			merged = n
			continue
		}
		// Union: fixed convention, the first block survives.
		t.nodes[n].owner = merged
		t.nodes[merged].hEdges = append(t.nodes[merged].hEdges, t.nodes[n].hEdges...)
		t.nodes[n].hEdges = nil
	}
	t.nodes[merged].hEdges = append(t.nodes[merged].hEdges, eH)
	t.edgeBlock[eH] = merged

	// 2. Wire the survivor into the tree at the top position.
	if t.nodes[top].kind == cutKind {
		t.nodes[merged].parent = top
	} else {
		t.nodes[merged].parent = t.nodes[top].parent
	}

	// 3. Adjust cut nodes on the path.
	for at, c := range path {
		if t.nodes[c].kind != cutKind {
			continue
		}
		interior := at > 0 && at < len(path)-1
		if c == top {
			if interior {
				t.nodes[c].deg-- // two merged children collapse into one
			}
			continue // parent block lies above the path, untouched
		}
		// Non-top cuts had their parent block on the path; repoint at the
		// survivor, then check for dissolution.
		if interior {
			t.nodes[c].deg--
		}
		if t.nodes[c].deg <= 1 {
			// The vertex stopped being a cut vertex: absorb into the block.
			t.nodes[c].dead = true
			t.nodes[c].parent = nilNode
			t.vertexNode[t.nodes[c].vertex] = merged
			continue
		}
		t.nodes[c].parent = merged
	}

	return merged, absorbed
}

// SplitEdge subdivides the G edge edgeID with the fresh vertex newVertexID
// and maintains the BC-tree. Returns the two replacement G edge IDs.
func (t *Tree) SplitEdge(edgeID, newVertexID string) (string, string, error) {
	rep, err := t.ApplySplit(edgeID, newVertexID)
	if err != nil {
		return "", "", err
	}

	return rep.E1, rep.E2, nil
}

// ApplySplit performs the same maintenance as SplitEdge and reports the
// structural effect.
//
// Subdividing an edge of a block with two or more edges keeps the block
// biconnected: the new vertex simply joins it. Subdividing a bridge splits
// the single-edge block in two around a new cut vertex.
func (t *Tree) ApplySplit(edgeID, newVertexID string) (EdgeSplit, error) {
	// 1. Resolve the edge and its block before mutating.
	eH, ok := t.gToH[edgeID]
	if !ok {
		return EdgeSplit{}, ErrEdgeNotFound
	}
	b := t.find(t.edgeBlock[eH])
	from, to, err := t.h.Endpoints(eH)
	if err != nil {
		return EdgeSplit{}, fmt.Errorf("bctree: ApplySplit(%q): %w", edgeID, err)
	}

	// 2. Subdivide in G, then mirror in H (same endpoint order).
	e1, e2, err := t.g.SplitEdge(edgeID, newVertexID)
	if err != nil {
		return EdgeSplit{}, fmt.Errorf("bctree: ApplySplit(%q): %w", edgeID, err)
	}
	h1, h2, err := t.h.SplitEdge(eH, newVertexID)
	if err != nil {
		return EdgeSplit{}, fmt.Errorf("bctree: ApplySplit(%q): %w", edgeID, err)
	}
	delete(t.gToH, edgeID)
	delete(t.hToG, eH)
	delete(t.edgeBlock, eH)
	t.gToH[e1], t.gToH[e2] = h1, h2
	t.hToG[h1], t.hToG[h2] = e1, e2

	out := EdgeSplit{
		VertexID: newVertexID, OldEdgeID: edgeID, OldHEdgeID: eH,
		From: from, To: to, E1: e1, E2: e2, H1: h1, H2: h2,
	}

	if len(t.nodes[b].hEdges) > 1 {
		// 3a. Ordinary block: replace the edge in place, vertex joins it.
		t.replaceBlockEdge(b, eH, h1, h2)
		t.edgeBlock[h1] = b
		t.edgeBlock[h2] = b
		t.vertexNode[newVertexID] = b
		out.Block = BlockID(b)
		out.ExtraBlock = BlockID(b)

		return out, nil
	}

	// 3b. Bridge: two single-edge blocks around a new cut vertex. The half
	// containing the parent-side endpoint keeps the old block's position.
	keep, moved := h1, h2
	if p := t.nodes[b].parent; p != nilNode && t.nodes[p].vertex == to {
		keep, moved = h2, h1
	}
	t.nodes[b].hEdges = []string{keep}
	t.edgeBlock[keep] = b

	cw := t.newCut(newVertexID)
	b2 := t.newBlock()
	t.nodes[b2].hEdges = append(t.nodes[b2].hEdges, moved)
	t.nodes[cw].parent = b
	t.nodes[cw].deg = 2
	t.nodes[b2].parent = cw
	t.edgeBlock[moved] = b2
	t.vertexNode[newVertexID] = cw

	// Re-home the far endpoint of the moved half.
	far := to
	if moved == h1 {
		far = from
	}
	if i, ok := t.vertexNode[far]; ok {
		if t.nodes[i].kind == cutKind {
			// The far cut vertex hung beneath b; move its link to b2.
			if t.find(t.nodes[i].parent) == b {
				t.nodes[i].parent = b2
			}
		} else if t.find(i) == b {
			t.vertexNode[far] = b2
		}
	}

	out.Block = BlockID(t.edgeBlock[h1])
	out.ExtraBlock = BlockID(t.edgeBlock[h2])
	out.Bridge = true

	return out, nil
}

// replaceBlockEdge swaps old for the two replacement edges inside a block's
// edge list. O(block size) scan; subdivisions are rare relative to inserts.
func (t *Tree) replaceBlockEdge(b int, old, n1, n2 string) {
	list := t.nodes[b].hEdges
	for i, e := range list {
		if e == old {
			list[i] = n1
			t.nodes[b].hEdges = append(list, n2)

			return
		}
	}
	panic("bctree: internal: split edge missing from its block list")
}
