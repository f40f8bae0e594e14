// File: types.go
// Role: component-node arena, the Forest type, sentinel errors, result
//       types, and the constructors.

package spqr

import (
	"container/list"
	"errors"

	"github.com/katalvlaran/spqr/bctree"
	"github.com/katalvlaran/spqr/core"
)

// Sentinel errors for SPQR-forest operations.
var (
	// ErrVertexNotFound indicates the referenced vertex lies in no block.
	ErrVertexNotFound = errors.New("spqr: vertex not in any block")

	// ErrDifferentBlocks indicates two vertices share no biconnected
	// component, so no single SPQR-tree spans both.
	ErrDifferentBlocks = errors.New("spqr: vertices share no block")

	// ErrBlockTooSmall indicates the shared block has fewer than three
	// edges and therefore carries no decomposition tree.
	ErrBlockTooSmall = errors.New("spqr: block too small for a tree")

	// ErrNoTree indicates the block's tree has not been created yet.
	ErrNoTree = errors.New("spqr: block has no tree")

	// ErrNotTreeEdge indicates the H-edge belongs to no skeleton.
	ErrNotTreeEdge = errors.New("spqr: edge not in any skeleton")

	// ErrNotRepresentative indicates a NodeID that is unknown or has been
	// absorbed by a merge; resolve it through Representative first.
	ErrNotRepresentative = errors.New("spqr: node is not a representative")
)

// NodeID identifies a component node of an SPQR-tree. IDs are arena indices;
// after merges an ID may name an absorbed node, which Representative
// resolves to the current one.
type NodeID int

// nilID marks an absent node reference.
const nilID NodeID = -1

// CompType classifies a component node by its skeleton.
type CompType uint8

const (
	// SComp marks a series node: the skeleton is a cycle.
	SComp CompType = iota
	// PComp marks a parallel node: a bundle of edges between two poles.
	PComp
	// RComp marks a rigid node: a triconnected skeleton.
	RComp
)

// String returns the conventional one-letter name of the component type.
func (c CompType) String() string {
	switch c {
	case SComp:
		return "S"
	case PComp:
		return "P"
	case RComp:
		return "R"
	}

	return "?"
}

// Counts reports the number of live component nodes per type in one tree.
type Counts struct {
	S, P, R int
}

// TreePath is the result of a path query: the tree nodes between the proper
// allocation nodes of two vertices, endpoints included.
type TreePath struct {
	// Nodes lists representatives from the first vertex's node to the
	// second's; the nearest common ancestor appears exactly once.
	Nodes []NodeID

	// Top indexes into Nodes at the node closest to the tree root.
	Top int
}

// tNode is one arena entry: a component node of some SPQR-tree. Union-find
// state (owner) is fused into the record; absorbed nodes keep an empty
// skeleton and an owner chain to their representative.
type tNode struct {
	typ   CompType
	owner NodeID

	// blk is the block this node's tree belongs to, stale-tolerant
	// (resolved through bctree.Tree.Find on read).
	blk bctree.BlockID

	// refEdge is this node's copy of the virtual edge toward its parent;
	// "" at a tree root. The twin of refEdge lives in the parent skeleton.
	refEdge string

	// skel holds the H-edge IDs of the skeleton. Elements are owned by the
	// per-edge records, which store their position for O(1) removal.
	skel *list.List
}

// edgeInfo is the per-H-edge record of the decomposition: which node's
// skeleton holds the edge, where, and the twin for virtual edges.
type edgeInfo struct {
	node NodeID // owning node, stale-tolerant
	twin string // twin virtual edge ID; "" for real edges
	pos  *list.Element
}

// Forest is the dynamic SPQR-forest: one lazily created SPQR-tree per
// biconnected component of a growing graph. It embeds the dynamic BC-tree
// and decorates its maintenance operations.
//
// Concurrency: single writer, like the BC-tree. Query methods also mutate
// internal state (path compression, lazy tree creation) and take no locks.
type Forest struct {
	*bctree.Tree

	nodes []tNode

	// info records every H-edge currently held by some skeleton, real and
	// virtual alike. Real H-edges of blocks without a tree are absent.
	info map[string]*edgeInfo

	// roots maps a block representative to its tree root. Absent for
	// blocks without a tree; keys are re-established on block merges.
	roots  map[bctree.BlockID]NodeID
	counts map[bctree.BlockID]*Counts

	// epoch/mark implement O(1)-reset scratch marking for tree-path walks.
	epoch int
	mark  []int
	pos   []int
}

// New creates an empty dynamic SPQR-forest over a fresh graph.
func New() *Forest {
	return &Forest{
		Tree:   bctree.New(),
		info:   make(map[string]*edgeInfo),
		roots:  make(map[bctree.BlockID]NodeID),
		counts: make(map[bctree.BlockID]*Counts),
	}
}

// FromGraph builds a forest equivalent to the given static graph by
// replaying its vertices and edges through the dynamic updates. Trees are
// not created during the replay (they stay lazy).
// Complexity: O(V + E·α) amortized.
func FromGraph(src *core.Graph) (*Forest, error) {
	f := New()
	for _, id := range src.Vertices() {
		if err := f.InsertVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range src.Edges() {
		if _, err := f.InsertEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return f, nil
}
