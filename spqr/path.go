// File: path.go
// Role: tree path queries between vertex allocation nodes, with and without
//       lazy tree creation.

package spqr

import (
	"errors"

	"github.com/katalvlaran/spqr/bctree"
)

// FindPath returns the tree path between the allocation nodes of two
// vertices in their shared block, creating the block's tree on first
// demand. The path runs from s's node to t's node; Nodes[Top] is the
// nearest common ancestor.
//
// Returns ErrVertexNotFound, ErrDifferentBlocks, or ErrBlockTooSmall (the
// shared block has fewer than three edges and carries no tree).
// Complexity: O(tree depth) amortized once the tree exists.
func (f *Forest) FindPath(s, t string) (*TreePath, error) {
	b, err := f.sharedBlock(s, t)
	if err != nil {
		return nil, err
	}
	if !f.hasTree(b) {
		n, err := f.BlockEdgeCount(b)
		if err != nil {
			return nil, err
		}
		if n < 3 {
			return nil, ErrBlockTooSmall
		}
		f.createTree(b)
	}

	return f.pathBetween(b, s, t), nil
}

// ExistingPath is FindPath without lazy creation: if the shared block has
// no tree yet it returns ErrNoTree and leaves the forest untouched.
func (f *Forest) ExistingPath(s, t string) (*TreePath, error) {
	b, err := f.sharedBlock(s, t)
	if err != nil {
		return nil, err
	}
	if !f.hasTree(b) {
		return nil, ErrNoTree
	}

	return f.pathBetween(b, s, t), nil
}

func (f *Forest) pathBetween(b bctree.BlockID, s, t string) *TreePath {
	nodes, topAt := f.nca(f.allocNode(b, s), f.allocNode(b, t))

	return &TreePath{Nodes: nodes, Top: topAt}
}

// sharedBlock maps the BC-layer lookup onto this package's sentinels.
func (f *Forest) sharedBlock(s, t string) (bctree.BlockID, error) {
	b, err := f.SharedBlock(s, t)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, bctree.ErrVertexNotFound):
		return 0, ErrVertexNotFound
	default:
		return 0, ErrDifferentBlocks
	}
}
