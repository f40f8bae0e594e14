// File: queries.go
// Role: read-only queries: union-find resolution, block membership, edge
//       mappings, cut-vertex tests, shared-block lookup.

package bctree

// Find resolves a possibly stale BlockID (one absorbed by a later
// condensation) to its current representative. Amortized near O(1).
func (t *Tree) Find(b BlockID) (BlockID, error) {
	if int(b) < 0 || int(b) >= len(t.nodes) || t.nodes[b].kind != blockKind {
		return 0, ErrBadBlock
	}

	return BlockID(t.find(int(b))), nil
}

// ProperBlock returns the representative block holding the given G edge.
func (t *Tree) ProperBlock(edgeID string) (BlockID, error) {
	eH, ok := t.gToH[edgeID]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return BlockID(t.find(t.edgeBlock[eH])), nil
}

// BlockEdges returns the real H-edge IDs of a block. The returned slice is
// the live list; callers must not mutate it.
func (t *Tree) BlockEdges(b BlockID) ([]string, error) {
	rb, err := t.Find(b)
	if err != nil {
		return nil, err
	}

	return t.nodes[rb].hEdges, nil
}

// BlockEdgeCount returns the number of real H-edges in a block.
func (t *Tree) BlockEdgeCount(b BlockID) (int, error) {
	edges, err := t.BlockEdges(b)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// HEdgeOf maps a G edge to its real H counterpart.
func (t *Tree) HEdgeOf(edgeID string) (string, error) {
	eH, ok := t.gToH[edgeID]
	if !ok {
		return "", ErrEdgeNotFound
	}

	return eH, nil
}

// GEdgeOf maps a real H edge back to its G edge. Virtual H-edges added by a
// decomposition layer have no G counterpart and yield ErrEdgeNotFound.
func (t *Tree) GEdgeOf(hEdgeID string) (string, error) {
	eG, ok := t.hToG[hEdgeID]
	if !ok {
		return "", ErrEdgeNotFound
	}

	return eG, nil
}

// IsCutVertex reports whether the vertex currently separates two or more
// blocks. Vertices outside every block are not cut vertices.
func (t *Tree) IsCutVertex(id string) bool {
	i, ok := t.vertexNode[id]

	return ok && t.nodes[i].kind == cutKind
}

// SharedBlock returns the block containing both vertices, or
// ErrDifferentBlocks when no single biconnected component holds both.
// A cut vertex belongs to every block adjacent to its BC node; an interior
// vertex belongs to exactly one. O(1) after union-find resolution.
func (t *Tree) SharedBlock(u, v string) (BlockID, error) {
	su := t.properNodeIdx(u)
	sv := t.properNodeIdx(v)
	if su == nilNode || sv == nilNode {
		return 0, ErrVertexNotFound
	}

	uCut := t.nodes[su].kind == cutKind
	vCut := t.nodes[sv].kind == cutKind
	switch {
	case !uCut && !vCut:
		if su == sv {
			return BlockID(su), nil
		}

	case uCut != vCut:
		// One interior vertex pins the candidate block; check BC adjacency
		// with the other endpoint's cut node.
		b, c := su, sv
		if uCut {
			b, c = sv, su
		}
		if t.parentOf(b) == c || t.parentOf(c) == b {
			return BlockID(b), nil
		}

	default:
		// Two cut vertices share a block only at BC distance 2, through a
		// block adjacent to both. The candidates are the two parent blocks.
		if b := t.parentOf(su); b != nilNode && (t.parentOf(sv) == b || t.parentOf(b) == sv) {
			return BlockID(b), nil
		}
		if b := t.parentOf(sv); b != nilNode && t.parentOf(b) == su {
			return BlockID(b), nil
		}
	}

	return 0, ErrDifferentBlocks
}

// SameBlock reports whether some biconnected component contains both vertices.
func (t *Tree) SameBlock(u, v string) bool {
	_, err := t.SharedBlock(u, v)

	return err == nil
}
