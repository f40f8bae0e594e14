// File: update.go
// Role: the maintenance operations decorating the BC-tree updates:
//       InsertEdge, SplitEdge, and stale-tree disposal on block merges.

package spqr

import "github.com/katalvlaran/spqr/bctree"

// InsertEdge adds an edge from–to to the graph, maintains the BC-tree, and
// updates the SPQR-forest. Returns the new G edge ID.
//
// Tree maintenance is lazy: an edge landing inside a block that already has
// a tree restructures it incrementally; an edge merging blocks of which at
// least one had a tree rebuilds the merged block's tree; everything else
// touches only the BC layer.
func (f *Forest) InsertEdge(from, to string) (string, error) {
	rep, err := f.ApplyEdge(from, to)
	if err != nil {
		return "", err
	}

	switch {
	case rep.Intra:
		if f.hasTree(rep.Block) {
			f.insertAttachment(rep.Block, from, to, []string{rep.HEdgeID})
		}

	case len(rep.MergedBlocks) > 1:
		had := false
		for _, old := range rep.MergedBlocks {
			if f.disposeTree(old) {
				had = true
			}
		}
		if had {
			f.createTree(rep.Block)
		}
	}

	return rep.EdgeID, nil
}

// SplitEdge subdivides the G edge edgeID with the fresh vertex newVertexID,
// maintaining the BC-tree and the owning block's SPQR-tree: a series owner
// absorbs both halves in place; a parallel or rigid owner delegates them to
// a fresh series child standing in for the subdivided edge.
// Returns the two replacement G edge IDs.
func (f *Forest) SplitEdge(edgeID, newVertexID string) (string, string, error) {
	rep, err := f.ApplySplit(edgeID, newVertexID)
	if err != nil {
		return "", "", err
	}
	if rep.Bridge {
		return rep.E1, rep.E2, nil // bridge blocks never carry a tree
	}
	if _, ok := f.info[rep.OldHEdgeID]; !ok {
		return rep.E1, rep.E2, nil // no tree yet, nothing placed
	}

	n := f.properEdgeNode(rep.OldHEdgeID)
	f.dropEdge(rep.OldHEdgeID)

	if f.nodes[n].typ == SComp {
		// Subdividing a cycle edge keeps the cycle.
		f.placeEdge(n, rep.H1, "")
		f.placeEdge(n, rep.H2, "")

		return rep.E1, rep.E2, nil
	}

	b := rep.Block
	gN, gS := f.newTwinPair(rep.From, rep.To)
	s := f.newNode(b, SComp)
	f.placeEdge(n, gN, gS)
	f.placeEdge(s, rep.H1, "")
	f.placeEdge(s, rep.H2, "")
	f.placeEdge(s, gS, gN)
	f.nodes[s].refEdge = gS

	return rep.E1, rep.E2, nil
}

// disposeTree tears down the tree of (former) block representative b:
// every virtual edge leaves H, every skeleton record is dropped. Reports
// whether a tree existed. Used when block merges invalidate old trees.
func (f *Forest) disposeTree(b bctree.BlockID) bool {
	root, ok := f.roots[b]
	if !ok {
		return false
	}

	// 1. Collect the component nodes by walking child links from the root.
	comps := []NodeID{f.find(root)}
	for i := 0; i < len(comps); i++ {
		n := comps[i]
		for el := f.nodes[n].skel.Front(); el != nil; el = el.Next() {
			e := el.Value.(string)
			if f.info[e].twin == "" || e == f.nodes[n].refEdge {
				continue
			}
			comps = append(comps, f.properEdgeNode(f.info[e].twin))
		}
	}

	// 2. Drop every record; each virtual ID lives in exactly one skeleton.
	for _, n := range comps {
		for el := f.nodes[n].skel.Front(); el != nil; el = el.Next() {
			e := el.Value.(string)
			if f.info[e].twin != "" {
				if err := f.H().RemoveEdge(e); err != nil {
					panic("spqr: internal: " + err.Error())
				}
			}
			delete(f.info, e)
		}
		f.nodes[n].skel.Init()
	}
	delete(f.roots, b)
	delete(f.counts, b)

	return true
}
