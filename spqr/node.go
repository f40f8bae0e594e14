// File: node.go
// Role: component-node arena plumbing: union-find, skeleton edge placement,
//       twin pairs, parent navigation, rerooting, and the NCA path walk.

package spqr

import (
	"container/list"

	"github.com/katalvlaran/spqr/bctree"
)

// newNode appends a fresh component node for block b and bumps the block's
// counter for typ.
func (f *Forest) newNode(b bctree.BlockID, typ CompType) NodeID {
	n := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, tNode{typ: typ, owner: n, blk: b, skel: list.New()})
	f.bumpCount(b, typ, +1)

	return n
}

// find resolves an arena index to its union-find representative, compressing
// the owner chain on the way. Amortized near O(1).
func (f *Forest) find(n NodeID) NodeID {
	root := n
	for f.nodes[root].owner != root {
		root = f.nodes[root].owner
	}
	for f.nodes[n].owner != n {
		next := f.nodes[n].owner
		f.nodes[n].owner = root
		n = next
	}

	return root
}

// unite absorbs node t into node s (both representatives of block b):
// t's skeleton edges transfer to s, t's owner points at s, and the block's
// counter for t's type drops by one. O(|t's skeleton|).
func (f *Forest) unite(b bctree.BlockID, s, t NodeID) {
	if s == t {
		return
	}
	for el := f.nodes[t].skel.Front(); el != nil; el = f.nodes[t].skel.Front() {
		e := el.Value.(string)
		f.nodes[t].skel.Remove(el)
		inf := f.info[e]
		inf.node = s
		inf.pos = f.nodes[s].skel.PushBack(e)
	}
	f.nodes[t].owner = s
	f.bumpCount(b, f.nodes[t].typ, -1)
}

func (f *Forest) bumpCount(b bctree.BlockID, typ CompType, delta int) {
	c := f.counts[b]
	switch typ {
	case SComp:
		c.S += delta
	case PComp:
		c.P += delta
	case RComp:
		c.R += delta
	}
}

// placeEdge records H-edge e in node n's skeleton. twin is "" for real
// edges, the paired virtual edge ID otherwise.
func (f *Forest) placeEdge(n NodeID, e, twin string) {
	f.info[e] = &edgeInfo{node: n, twin: twin, pos: f.nodes[n].skel.PushBack(e)}
}

// moveEdge transfers an already placed H-edge to node n's skeleton.
func (f *Forest) moveEdge(e string, n NodeID) {
	inf := f.info[e]
	f.nodes[f.find(inf.node)].skel.Remove(inf.pos)
	inf.node = n
	inf.pos = f.nodes[n].skel.PushBack(e)
}

// dropEdge removes an H-edge from its skeleton and forgets it. The H graph
// entry (for virtual edges) is the caller's to clean up.
func (f *Forest) dropEdge(e string) {
	inf := f.info[e]
	f.nodes[f.find(inf.node)].skel.Remove(inf.pos)
	delete(f.info, e)
}

// newTwinPair adds two parallel virtual edges u–v to H and returns their
// IDs. The caller places each into its skeleton with the other as twin.
func (f *Forest) newTwinPair(u, v string) (string, string) {
	e1, err := f.H().AddEdge(u, v)
	if err != nil {
		panic("spqr: internal: " + err.Error())
	}
	e2, err := f.H().AddEdge(u, v)
	if err != nil {
		panic("spqr: internal: " + err.Error())
	}

	return e1, e2
}

// properEdgeNode returns the representative node owning H-edge e,
// refreshing the stale-tolerant back reference.
func (f *Forest) properEdgeNode(e string) NodeID {
	inf := f.info[e]
	inf.node = f.find(inf.node)

	return inf.node
}

// parentNode returns the representative parent of node n, or nilID at a
// tree root. The parent is the node holding the twin of n's refEdge.
func (f *Forest) parentNode(n NodeID) NodeID {
	re := f.nodes[n].refEdge
	if re == "" {
		return nilID
	}

	return f.properEdgeNode(f.info[re].twin)
}

// rerootAt makes node n the root of its tree by reversing refEdge
// assignments along the path to the old root: each former parent adopts its
// copy of the link as the new refEdge. O(depth).
func (f *Forest) rerootAt(n NodeID) {
	carry := ""
	for cur := n; cur != nilID; {
		old := f.nodes[cur].refEdge
		f.nodes[cur].refEdge = carry
		if old == "" {
			break
		}
		next := f.properEdgeNode(f.info[old].twin)
		carry = f.info[old].twin
		cur = next
	}
}

// bump advances the scratch epoch, growing the mark arrays to the arena size.
func (f *Forest) bump() {
	f.epoch++
	if len(f.mark) < len(f.nodes) {
		grown := make([]int, len(f.nodes))
		copy(grown, f.mark)
		f.mark = grown
		grownPos := make([]int, len(f.nodes))
		copy(grownPos, f.pos)
		f.pos = grownPos
	}
}

// nca returns the tree path from node s to node t (representatives,
// inclusive) and the index within the path of the nearest common ancestor.
// Mark-one-chain-then-walk-the-other; O(depth).
func (f *Forest) nca(s, t NodeID) ([]NodeID, int) {
	f.bump()

	chainS := make([]NodeID, 0, 8)
	for cur := s; cur != nilID; cur = f.parentNode(cur) {
		f.mark[cur] = f.epoch
		f.pos[cur] = len(chainS)
		chainS = append(chainS, cur)
	}

	chainT := make([]NodeID, 0, 8)
	top := nilID
	for cur := t; cur != nilID; cur = f.parentNode(cur) {
		if f.mark[cur] == f.epoch {
			top = cur
			break
		}
		chainT = append(chainT, cur)
	}
	if top == nilID {
		panic("spqr: internal: path query across distinct trees")
	}

	path := append([]NodeID{}, chainS[:f.pos[top]+1]...)
	topAt := len(path) - 1
	for i := len(chainT) - 1; i >= 0; i-- {
		path = append(path, chainT[i])
	}

	return path, topAt
}
