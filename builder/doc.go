// Package builder provides deterministic edge scripts for the small
// canonical topologies the decomposition packages are exercised with:
// cycles, cliques, wheels, theta graphs, and ladders.
//
// A Script is just an ordered list of endpoint pairs; Apply replays it into
// anything with an InsertEdge method (bctree.Tree, spqr.Forest). Same
// script, same order, same resulting structure, which is what scenario
// tests need to compare dynamic builds against replayed ones.
//
//	script, _ := builder.Wheel(5)
//	f := spqr.New()
//	_ = builder.Apply(f, script)
package builder
