// File: types.go
// Role: node arena, the Tree type, sentinel errors, the maintenance reports
//       consumed by decorating layers, and the constructors.

package bctree

import (
	"errors"

	"github.com/katalvlaran/spqr/core"
)

// Sentinel errors for BC-tree operations.
var (
	// ErrVertexNotFound indicates the referenced vertex is unknown or has
	// never participated in an edge (and therefore lies in no block).
	ErrVertexNotFound = errors.New("bctree: vertex not in any block")

	// ErrEdgeNotFound indicates the referenced graph edge is unknown.
	ErrEdgeNotFound = errors.New("bctree: edge not found")

	// ErrDifferentBlocks indicates two vertices share no biconnected component.
	ErrDifferentBlocks = errors.New("bctree: vertices share no block")

	// ErrBadBlock indicates a BlockID that does not name a block node.
	ErrBadBlock = errors.New("bctree: invalid block ID")
)

// BlockID identifies a block (biconnected component) node of the BC-tree.
// IDs are arena indices; after condensations an ID may name an absorbed
// node, which Find resolves to the current representative.
type BlockID int

// nilNode marks an absent arena reference (no parent, no mapping).
const nilNode = -1

// nodeKind discriminates the two BC-tree node kinds.
type nodeKind uint8

const (
	blockKind nodeKind = iota // a biconnected component ("B" node)
	cutKind                   // a cut vertex ("C" node)
)

// bcNode is one arena entry. Union-find state (owner) is fused directly
// into the record: block nodes unite during path condensation, and the
// owner pointer chain resolves any stale BlockID to its representative.
type bcNode struct {
	kind nodeKind

	// owner is the union-find parent among block nodes; self when the node
	// is a representative. Cut nodes never unite and always own themselves.
	owner int

	// parent is the BC-tree parent: for a block, a cut node (or nilNode at
	// the root of its tree); for a cut, a block node. Block references may
	// be stale and are resolved through find on read.
	parent int

	// hEdges lists the real H-edges of this block, valid at representatives
	// only. Transferred wholesale on condensation.
	hEdges []string

	// vertex is the cut vertex ID (cut nodes only).
	vertex string

	// deg counts incident BC-tree edges (cut nodes only). A live cut vertex
	// always has deg >= 2; dropping to 1 dissolves the node.
	deg int

	// dead marks a dissolved cut node.
	dead bool
}

// EdgeInsertion reports the structural effect of one edge insertion so a
// decorating layer (the SPQR forest) can chain its own maintenance. This
// replaces the virtual-hook override pattern with explicit data.
type EdgeInsertion struct {
	// EdgeID is the new edge in G; HEdgeID its real counterpart in H.
	EdgeID  string
	HEdgeID string

	// Block is the proper representative of the block now holding HEdgeID.
	Block BlockID

	// MergedBlocks lists the former block representatives condensed into
	// Block, in BC-path order. Nil unless a condensation happened; a
	// single-element list means the edge landed inside one existing block.
	MergedBlocks []BlockID

	// Intra is true when exactly one pre-existing block absorbed the edge.
	Intra bool

	// Linked is true when the edge bridged two connected components
	// (a fresh single-edge block; no blocks merged).
	Linked bool
}

// EdgeSplit reports the structural effect of one edge subdivision.
type EdgeSplit struct {
	// VertexID is the new vertex; OldEdgeID/OldHEdgeID the removed pair.
	VertexID   string
	OldEdgeID  string
	OldHEdgeID string

	// From/To are the endpoints of the removed edge, in stored order.
	From, To string

	// E1,E2 are the replacement G edges (From–VertexID, VertexID–To);
	// H1,H2 their H counterparts, in the same order.
	E1, E2 string
	H1, H2 string

	// Block holds H1 after the split. For non-bridge blocks it also holds
	// H2; for a subdivided bridge, H2 lands in ExtraBlock and Bridge is set.
	Block      BlockID
	ExtraBlock BlockID
	Bridge     bool
}

// Tree is the dynamic BC-tree. It owns the graph G being grown and the
// auxiliary graph H (one real H-edge per G-edge; decomposition layers may
// add further H-edges of their own).
//
// Concurrency: single-writer. The underlying core graphs are individually
// thread-safe, but Tree operations compose several graph mutations and
// arena updates that must not interleave.
type Tree struct {
	g *core.Graph // the original graph G
	h *core.Graph // the auxiliary graph H

	gToH map[string]string // G edge ID → real H edge ID
	hToG map[string]string // real H edge ID → G edge ID

	nodes []bcNode

	// vertexNode maps a G vertex to its BC position: the cut node for a cut
	// vertex (exact), or a block node for an interior vertex (stale-tolerant,
	// resolved through find). Vertices with no incident edge are absent.
	vertexNode map[string]int

	// edgeBlock maps a real H-edge to a block node (stale-tolerant).
	edgeBlock map[string]int

	// epoch/mark implement O(1)-reset scratch marking for path walks.
	epoch   int
	mark    []int
	markPos []int
}

// New creates an empty dynamic BC-tree over fresh graphs G and H.
// Both graphs allow parallel edges (H requires them; blocks of parallel
// G-edges are legitimate biconnected components). Self-loops are rejected.
func New() *Tree {
	return &Tree{
		g:          core.NewGraph(core.WithMultiEdges()),
		h:          core.NewGraph(core.WithMultiEdges()),
		gToH:       make(map[string]string),
		hToG:       make(map[string]string),
		vertexNode: make(map[string]int),
		edgeBlock:  make(map[string]int),
	}
}

// FromGraph builds a dynamic BC-tree equivalent to the given static graph by
// replaying its vertices and edges through the dynamic updates. The tree
// owns its own copy of the graph; edge IDs are regenerated in replay order
// (the input's deterministic Edges() order).
// Complexity: O(V + E·α) amortized.
func FromGraph(src *core.Graph) (*Tree, error) {
	t := New()
	for _, id := range src.Vertices() {
		if err := t.InsertVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range src.Edges() {
		if _, err := t.InsertEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// G returns the underlying original graph. Callers must not mutate it
// directly; all growth goes through InsertVertex/InsertEdge/SplitEdge.
func (t *Tree) G() *core.Graph { return t.g }

// H returns the auxiliary graph. The BC-tree owns its real edges; a
// decomposition layer may own additional (virtual) edges.
func (t *Tree) H() *core.Graph { return t.h }
