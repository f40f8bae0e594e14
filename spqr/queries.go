// File: queries.go
// Role: read accessors over the decomposition: representatives, node types,
//       skeletons, twins, virtual links, per-block counters.

package spqr

import "github.com/katalvlaran/spqr/bctree"

// Representative resolves a possibly absorbed NodeID to its current
// representative, compressing the owner chain.
func (f *Forest) Representative(n NodeID) (NodeID, error) {
	if int(n) < 0 || int(n) >= len(f.nodes) {
		return 0, ErrNotRepresentative
	}

	return f.find(n), nil
}

// TypeOf returns the component type of a representative node. Absorbed or
// unknown IDs yield ErrNotRepresentative; resolve them first.
func (f *Forest) TypeOf(n NodeID) (CompType, error) {
	if int(n) < 0 || int(n) >= len(f.nodes) || f.find(n) != n {
		return 0, ErrNotRepresentative
	}

	return f.nodes[n].typ, nil
}

// SkeletonEdges returns the H-edge IDs of a representative node's skeleton,
// in skeleton order. The slice is the caller's to keep.
func (f *Forest) SkeletonEdges(n NodeID) ([]string, error) {
	if int(n) < 0 || int(n) >= len(f.nodes) || f.find(n) != n {
		return nil, ErrNotRepresentative
	}
	out := make([]string, 0, f.nodes[n].skel.Len())
	for el := f.nodes[n].skel.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(string))
	}

	return out, nil
}

// Twin returns the paired virtual edge of an H-edge, or "" for real edges
// and edges outside every skeleton.
func (f *Forest) Twin(hEdgeID string) string {
	if inf, ok := f.info[hEdgeID]; ok {
		return inf.twin
	}

	return ""
}

// ProperEdge returns the representative node whose skeleton holds the given
// H-edge, refreshing the stale-tolerant back reference.
func (f *Forest) ProperEdge(hEdgeID string) (NodeID, error) {
	if _, ok := f.info[hEdgeID]; !ok {
		return 0, ErrNotTreeEdge
	}

	return f.properEdgeNode(hEdgeID), nil
}

// VirtualEdge returns s's copy of the virtual pair joining two adjacent
// tree nodes, or "" when the nodes are not tree-adjacent.
func (f *Forest) VirtualEdge(s, t NodeID) string {
	if int(s) < 0 || int(s) >= len(f.nodes) || int(t) < 0 || int(t) >= len(f.nodes) {
		return ""
	}
	s, t = f.find(s), f.find(t)
	if f.parentNode(s) == t {
		return f.nodes[s].refEdge
	}
	if f.parentNode(t) == s {
		return f.info[f.nodes[t].refEdge].twin
	}

	return ""
}

// HasTree reports whether the block already carries a decomposition tree.
func (f *Forest) HasTree(b bctree.BlockID) bool {
	rb, err := f.Tree.Find(b)
	if err != nil {
		return false
	}

	return f.hasTree(rb)
}

func (f *Forest) hasTree(b bctree.BlockID) bool {
	_, ok := f.roots[b]

	return ok
}

// Root returns the root node of the block's tree, or ErrNoTree.
func (f *Forest) Root(b bctree.BlockID) (NodeID, error) {
	rb, err := f.Tree.Find(b)
	if err != nil {
		return 0, err
	}
	root, ok := f.roots[rb]
	if !ok {
		return 0, ErrNoTree
	}

	return f.find(root), nil
}

// Counts returns the number of live S, P, and R nodes in the block's tree,
// or ErrNoTree when no tree has been created yet.
func (f *Forest) Counts(b bctree.BlockID) (Counts, error) {
	rb, err := f.Tree.Find(b)
	if err != nil {
		return Counts{}, err
	}
	c, ok := f.counts[rb]
	if !ok {
		return Counts{}, ErrNoTree
	}

	return *c, nil
}
