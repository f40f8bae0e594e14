// File: restructure.go
// Role: the tree-path restructure behind every insertion: attachment
//       preparation, allocation-path trimming, single-node cases (P extend,
//       S chord split, R parallel introduction), and the multi-node merge
//       into one rigid component.

package spqr

import "github.com/katalvlaran/spqr/bctree"

// insertAttachment inserts a new connection between vertices u and v of
// block b into the block's existing tree. ear lists the H-edges of the
// connection: a single edge u–v, or an open ear whose interior vertices are
// new to the skeletons. The restructured component becomes the tree root.
func (f *Forest) insertAttachment(b bctree.BlockID, u, v string, ear []string) {
	// 1. Resolve the endpoints before the ear claims any skeleton slots.
	nu, nv := f.allocNode(b, u), f.allocNode(b, v)

	// 2. A multi-edge ear becomes a series node of its own; X is the edge
	//    that joins the restructured skeleton at (u,v).
	X := ear[0]
	earTwin := ""
	if len(ear) > 1 {
		gE, gX := f.newTwinPair(u, v)
		sEar := f.newNode(b, SComp)
		for _, e := range ear {
			f.placeEdge(sEar, e, "")
		}
		f.placeEdge(sEar, gE, gX)
		f.nodes[sEar].refEdge = gE
		X, earTwin = gX, gE
	}

	// 3. Allocation path, trimmed while an endpoint sits on the separation
	//    pair linking the outer node inward (the outer node then
	//    contributes nothing to the restructure).
	path, _ := f.nca(nu, nv)
	path = f.trim(path, u, v)

	// 4. Reroot first so parent pointers along the path all run inward and
	//    the merged component ends up the root.
	f.rerootAt(path[0])

	if len(path) == 1 {
		f.attachSingle(b, path[0], u, v, X, earTwin)
		return
	}
	f.mergePath(b, path, u, v, X, earTwin)
}

// trim drops path ends whose linking separation pair already contains the
// corresponding attachment vertex.
func (f *Forest) trim(path []NodeID, u, v string) []NodeID {
	onLink := func(a, b NodeID, vtx string) bool {
		x, y := f.ends(f.linkEdge(a, b))

		return vtx == x || vtx == y
	}
	for len(path) >= 2 && onLink(path[0], path[1], u) {
		path = path[1:]
	}
	for len(path) >= 2 && onLink(path[len(path)-1], path[len(path)-2], v) {
		path = path[:len(path)-1]
	}

	return path
}

// linkEdge returns a's copy of the virtual pair joining adjacent tree
// nodes a and b.
func (f *Forest) linkEdge(a, b NodeID) string {
	if f.parentNode(a) == b {
		return f.nodes[a].refEdge
	}
	if f.parentNode(b) == a {
		return f.info[f.nodes[b].refEdge].twin
	}
	panic("spqr: internal: nodes not adjacent in the tree")
}

// attachSingle handles an attachment whose trimmed path is one node n
// (already the tree root).
func (f *Forest) attachSingle(b bctree.BlockID, n NodeID, u, v string, X, earTwin string) {
	switch f.nodes[n].typ {
	case PComp:
		// (u,v) are the poles: the bundle simply grows.
		f.placeEdge(n, X, earTwin)
		f.roots[b] = n

	case SComp:
		// A chord splits the cycle into two arcs between u and v; both
		// hang off a fresh parallel node that also takes the attachment.
		p := f.newNode(b, PComp)
		f.dismantleS(b, n, map[string]bool{u: true, v: true}, p)
		f.placeEdge(p, X, earTwin)
		f.roots[b] = p

	case RComp:
		f.attachRigid(b, n, u, v, X, earTwin)
	}
}

// attachRigid adds an attachment at (u,v) to rigid node n. A skeleton edge
// already spanning (u,v) forces a parallel bundle; otherwise the rigid
// skeleton grows by one edge (adding an edge keeps triconnectivity).
func (f *Forest) attachRigid(b bctree.BlockID, n NodeID, u, v string, X, earTwin string) {
	f.roots[b] = n

	var dup string
	for el := f.nodes[n].skel.Front(); el != nil; el = el.Next() {
		e := el.Value.(string)
		x, y := f.ends(e)
		if (x == u && y == v) || (x == v && y == u) {
			dup = e
			break
		}
	}
	if dup == "" {
		f.placeEdge(n, X, earTwin)

		return
	}

	// A virtual duplicate whose far side is already a parallel node with
	// poles (u,v): route the attachment into that bundle directly.
	if tw := f.info[dup].twin; tw != "" {
		if q := f.properEdgeNode(tw); f.nodes[q].typ == PComp {
			f.placeEdge(q, X, earTwin)

			return
		}
	}

	// Introduce a parallel node between the duplicate and the attachment;
	// a fresh virtual pair keeps the rigid skeleton's shape unchanged.
	gN, gP := f.newTwinPair(u, v)
	p := f.newNode(b, PComp)
	f.placeEdge(n, gN, gP)
	f.moveEdge(dup, p)
	f.placeEdge(p, gP, gN)
	f.nodes[p].refEdge = gP
	f.placeEdge(p, X, earTwin)
}

// mergePath collapses a trimmed tree path of two or more nodes into a
// single rigid component holding the attachment:
//   - the virtual pairs linking consecutive path nodes disappear,
//   - rigid nodes merge wholesale,
//   - series nodes break into maximal arcs (split at link endpoints and,
//     at the path ends, at the attachment vertex),
//   - parallel interiors dissolve, shrink, or survive behind a new pair.
func (f *Forest) mergePath(b bctree.BlockID, path []NodeID, u, v string, X, earTwin string) {
	// 1. Collect every link pair before touching any skeleton.
	type link struct {
		near, far string // path[i]'s copy, path[i+1]'s copy
		x, y      string // the separation pair
	}
	links := make([]link, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		near := f.linkEdge(path[i], path[i+1])
		x, y := f.ends(near)
		links[i] = link{near: near, far: f.info[near].twin, x: x, y: y}
	}

	// 2. Strip the links from the skeletons and from H; remember where
	//    each series node must break.
	splitAt := make([]map[string]bool, len(path))
	for i := range splitAt {
		splitAt[i] = make(map[string]bool, 3)
	}
	for i, lk := range links {
		f.dropEdge(lk.near)
		f.dropEdge(lk.far)
		for _, e := range []string{lk.near, lk.far} {
			if err := f.H().RemoveEdge(e); err != nil {
				panic("spqr: internal: " + err.Error())
			}
		}
		splitAt[i][lk.x], splitAt[i][lk.y] = true, true
		splitAt[i+1][lk.x], splitAt[i+1][lk.y] = true, true
	}
	splitAt[0][u] = true
	splitAt[len(path)-1][v] = true

	// 3. Fold every path node into one rigid component.
	merged := f.newNode(b, RComp)
	for i, n := range path {
		switch f.nodes[n].typ {
		case RComp:
			f.unite(b, merged, n)
		case SComp:
			f.dismantleS(b, n, splitAt[i], merged)
		case PComp:
			f.dismantleP(b, n, merged)
		}
	}

	f.placeEdge(merged, X, earTwin)
	f.nodes[merged].refEdge = ""
	f.roots[b] = merged
}

// dismantleS breaks series node n into maximal arcs between the split
// vertices and contributes each to target: a one-edge arc moves directly,
// a longer arc becomes a fresh series child closed by a virtual pair.
// n, emptied, is united into target.
func (f *Forest) dismantleS(b bctree.BlockID, n NodeID, split map[string]bool, target NodeID) {
	// Remaining-skeleton adjacency; every vertex has degree at most two.
	adj := make(map[string][]half)
	for el := f.nodes[n].skel.Front(); el != nil; el = el.Next() {
		e := el.Value.(string)
		x, y := f.ends(e)
		adj[x] = append(adj[x], half{e, y})
		adj[y] = append(adj[y], half{e, x})
	}

	done := make(map[string]bool, f.nodes[n].skel.Len())
	for sv := range split {
		for _, h := range adj[sv] {
			if done[h.e] {
				continue
			}
			arc := []string{h.e}
			done[h.e] = true
			cur, last := h.to, h.e
			for !split[cur] {
				step, ok := otherHalf(adj[cur], last)
				if !ok {
					panic("spqr: internal: series arc ends off a split vertex")
				}
				arc = append(arc, step.e)
				done[step.e] = true
				cur, last = step.to, step.e
			}
			f.emitArc(b, sv, cur, arc, target)
		}
	}
	f.unite(b, target, n)
}

// otherHalf picks the continuation edge at an interior arc vertex.
func otherHalf(at []half, last string) (half, bool) {
	for _, h := range at {
		if h.e != last {
			return h, true
		}
	}

	return half{}, false
}

// emitArc contributes one series arc with endpoints (x,y) to target.
func (f *Forest) emitArc(b bctree.BlockID, x, y string, arc []string, target NodeID) {
	if len(arc) == 1 {
		e := arc[0]
		// A lone virtual arc backed by a parallel node dissolves into a
		// parallel target: adjacent P nodes may not survive.
		if tw := f.info[e].twin; tw != "" && f.nodes[target].typ == PComp {
			if q := f.properEdgeNode(tw); f.nodes[q].typ == PComp {
				f.dropEdge(e)
				f.dropEdge(tw)
				for _, id := range []string{e, tw} {
					if err := f.H().RemoveEdge(id); err != nil {
						panic("spqr: internal: " + err.Error())
					}
				}
				f.unite(b, target, q)

				return
			}
		}
		f.moveEdge(e, target)

		return
	}
	s := f.newNode(b, SComp)
	for _, e := range arc {
		f.moveEdge(e, s)
	}
	gC, gT := f.newTwinPair(x, y)
	f.placeEdge(s, gC, gT)
	f.nodes[s].refEdge = gC
	f.placeEdge(target, gT, gC)
}

// dismantleP folds parallel node n into target: zero or one remaining edge
// dissolves the node, two or more keep it as a child behind a fresh pair.
func (f *Forest) dismantleP(b bctree.BlockID, n NodeID, target NodeID) {
	switch f.nodes[n].skel.Len() {
	case 0:
		f.unite(b, target, n)
	case 1:
		f.moveEdge(f.nodes[n].skel.Front().Value.(string), target)
		f.unite(b, target, n)
	default:
		x, y := f.ends(f.nodes[n].skel.Front().Value.(string))
		gC, gT := f.newTwinPair(x, y)
		f.placeEdge(n, gC, gT)
		f.nodes[n].refEdge = gC
		f.placeEdge(target, gT, gC)
	}
}
