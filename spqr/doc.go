// Package spqr maintains the SPQR-trees (triconnected decompositions) of
// the biconnected components of a graph that grows one edge or one
// subdivision at a time.
//
// # What & Why
//
// The SPQR-tree of a biconnected graph describes how the graph splits along
// its separation pairs. Each tree node carries a skeleton multigraph over a
// subset of the vertices:
//
//   - S (series): the skeleton is a cycle;
//   - P (parallel): a bundle of three or more edges between two poles;
//   - R (rigid): a triconnected skeleton.
//
// Skeleton edges are either real (one per graph edge) or virtual: virtual
// edges come in twin pairs, one copy in each of two adjacent tree nodes,
// marking the separation pair the two components share. Merging a node's
// skeleton with its neighbors along virtual pairs reconstructs the block.
// The decomposition is unique, which makes the tree a normal form for
// questions like "which separation pairs lie between s and t", the basis
// of planarity-aware routing and graph drawing algorithms.
//
// This package keeps one SPQR-tree per biconnected component, layered on
// the dynamic BC-tree of package bctree, and maintains them under edge
// insertion and edge subdivision.
//
// # Laziness
//
// Trees are expensive relative to the BC layer, so they are created only on
// demand: the first FindPath over a block builds its tree; afterwards
// updates touching that block maintain it incrementally. An insertion that
// fuses several blocks of which at least one had a tree rebuilds the merged
// block's tree. Blocks nobody queried cost nothing beyond BC maintenance.
//
// Blocks with fewer than three edges (bridges and plain 2-cycles) carry no
// tree; a three-edge block gets a trivial single-node tree.
//
// # Usage
//
//	f := spqr.New()
//	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}} {
//		f.InsertEdge(e[0], e[1])
//	}
//	path, err := f.FindPath("a", "c") // builds the 4-cycle's tree: one S node
//	typ, _ := f.TypeOf(path.Nodes[0]) // spqr.SComp
//
// Component NodeIDs are stable handles: merges absorb nodes, and
// Representative resolves an old handle to the surviving node, the same way
// bctree.Tree.Find resolves absorbed BlockIDs.
//
// # Concurrency
//
// Single writer, like the BC-tree. Queries compress union-find chains and
// may create trees, so they are writes too; serialize all access.
//
// Deletion of vertices or edges is not supported.
package spqr
