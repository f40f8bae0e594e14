// Package bctree maintains the block-cut-vertex tree (BC-tree) of an
// undirected graph that grows one edge or one subdivision at a time.
//
// # What & Why
//
// The BC-tree of a connected graph alternates two node kinds: block nodes
// (maximal biconnected components) and cut nodes (articulation vertices).
// A cut vertex is adjacent in the tree to every block it belongs to; every
// other vertex lies inside exactly one block. For a disconnected graph the
// structure is a forest, one tree per connected component.
//
// Recomputing blocks from scratch after every insertion costs O(V+E) each
// time. This package instead maintains the forest incrementally:
//
//   - an edge inside one block is appended to it;
//   - an edge between two nodes of the same tree condenses the whole
//     BC-path between them into a single block (cut vertices on the path
//     whose degree drops to one stop being cut vertices);
//   - an edge between two trees links them through a fresh bridge block,
//     rerooting the smaller attachment;
//   - subdividing an edge keeps its block, except on a bridge, which
//     splits into two bridges around a new cut vertex.
//
// Amortized cost per update is near O(1) plus the length of the condensed
// path, via union-find state fused directly into the node arena.
//
// # Model
//
// The tree owns two graphs: G, the caller's graph, and an auxiliary graph H
// mirroring G's vertices with exactly one "real" H-edge per G-edge. Block
// nodes list their real H-edges; across all proper blocks these lists
// partition H's real edges. Decomposition layers (package spqr) add further
// H-edges of their own on top of the same H.
//
// # Usage
//
//	t := bctree.New()
//	e1, _ := t.InsertEdge("a", "b")
//	t.InsertEdge("b", "c")
//	t.InsertEdge("c", "a") // condenses the three bridges into one block
//	b, _ := t.ProperBlock(e1)
//	n, _ := t.BlockEdgeCount(b) // 3
//
// Layers needing the structural details of an update call ApplyEdge or
// ApplySplit instead and receive an EdgeInsertion / EdgeSplit report.
//
// # Concurrency
//
// Single writer. Tree operations compose several graph and arena mutations;
// callers must serialize all access to one Tree.
//
// Deletion of vertices or edges is not supported: the maintenance is
// strictly incremental.
package bctree
