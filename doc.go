// Package spqr maintains connectivity decompositions of an undirected
// graph under edge insertions: online, without ever recomputing from
// scratch.
//
// 🚀 What is spqr?
//
//	A dynamic decomposition library built from four subpackages:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Block-cut forest: 2-connected blocks and the cut vertices between them
//		• SPQR forest: series / parallel / rigid structure inside each block
//		• Builders: reusable scripts for classic topologies in tests & examples
//
// ✨ Why choose spqr?
//
//   - Incremental – every inserted edge restructures only the affected
//     tree path, never the whole decomposition
//   - Lazy – SPQR trees materialize on the first path query of a block
//   - Rock-solid guarantees – union-find arenas, in-code docs, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bctree/  — dynamic block-cut forest over the graph of 2-edge connectivity
//	spqr/    — dynamic SPQR forest: triconnected structure per block
//	builder/ — edge-script generators (cycles, wheels, thetas, ladders)
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │
//	    C───D
//
//	K4 is a single block and a single rigid (R) SPQR component.
//
// Dive into the subpackage docs for the data model, the laziness rules,
// and full usage examples.
//
//	go get github.com/katalvlaran/spqr
package spqr
