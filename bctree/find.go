// File: find.go
// Role: union-find over block nodes (path compression fused into the arena),
//       BC-tree parent navigation, and the marked path walk between nodes.

package bctree

// find resolves an arena index to its union-find representative, compressing
// the owner chain on the way. Cut nodes are always their own representative.
// Amortized near O(1).
func (t *Tree) find(i int) int {
	root := i
	for t.nodes[root].owner != root {
		root = t.nodes[root].owner
	}
	// Path compression: rewrite intermediate owners to point at the root.
	for t.nodes[i].owner != i {
		next := t.nodes[i].owner
		t.nodes[i].owner = root
		i = next
	}

	return root
}

// parentOf returns the representative BC-tree parent of node i, or nilNode
// at a tree root. Cut parents reference blocks and may be stale, so the
// block step resolves through find.
func (t *Tree) parentOf(i int) int {
	p := t.nodes[i].parent
	if p == nilNode {
		return nilNode
	}
	if t.nodes[i].kind == cutKind {
		return t.find(p) // cut → block, possibly absorbed
	}

	return p // block → cut, cut nodes never merge
}

// newBlock appends a fresh block node and returns its index.
func (t *Tree) newBlock() int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, bcNode{kind: blockKind, owner: i, parent: nilNode})

	return i
}

// newCut appends a fresh cut node for vertex v and returns its index.
func (t *Tree) newCut(v string) int {
	i := len(t.nodes)
	t.nodes = append(t.nodes, bcNode{kind: cutKind, owner: i, parent: nilNode, vertex: v})

	return i
}

// properNodeIdx resolves a vertex to its proper BC node: the cut node for a
// cut vertex, the block representative for an interior vertex, or nilNode
// when the vertex lies in no block yet.
func (t *Tree) properNodeIdx(v string) int {
	i, ok := t.vertexNode[v]
	if !ok {
		return nilNode
	}
	if t.nodes[i].kind == cutKind {
		return i
	}

	return t.find(i)
}

// bump advances the scratch epoch, growing the mark arrays to the arena size.
func (t *Tree) bump() {
	t.epoch++
	if len(t.mark) < len(t.nodes) {
		grown := make([]int, len(t.nodes))
		copy(grown, t.mark)
		t.mark = grown
		grownPos := make([]int, len(t.nodes))
		copy(grownPos, t.markPos)
		t.markPos = grownPos
	}
}

// pathBetween returns the BC-tree path from node a to node b (inclusive,
// alternating block/cut nodes) together with the index *within the path* of
// the node nearest the tree root, or ok=false when a and b lie in different
// trees. Mark-one-chain-then-walk-the-other; O(depth).
func (t *Tree) pathBetween(a, b int) (path []int, topAt int, ok bool) {
	t.bump()

	// 1. Walk a's ancestor chain to the root, marking positions.
	chainA := make([]int, 0, 8)
	for cur := a; cur != nilNode; cur = t.parentOf(cur) {
		t.mark[cur] = t.epoch
		t.markPos[cur] = len(chainA)
		chainA = append(chainA, cur)
	}

	// 2. Walk b's chain until a marked node (the NCA) appears.
	chainB := make([]int, 0, 8)
	top := nilNode
	for cur := b; cur != nilNode; cur = t.parentOf(cur) {
		if t.mark[cur] == t.epoch {
			top = cur
			break
		}
		chainB = append(chainB, cur)
	}
	if top == nilNode {
		return nil, 0, false // different BC-trees
	}

	// 3. Assemble a..top..b with the NCA appearing exactly once.
	path = append(path, chainA[:t.markPos[top]+1]...)
	topAt = len(path) - 1
	for i := len(chainB) - 1; i >= 0; i-- {
		path = append(path, chainB[i])
	}

	return path, topAt, true
}

// rerootAt makes node x the root of its BC-tree by reversing the parent
// pointers along the path from x to the old root. Kind alternation is
// preserved because every reversed pointer still crosses a block/cut edge.
// O(depth).
func (t *Tree) rerootAt(x int) {
	prev := nilNode
	for cur := x; cur != nilNode; {
		next := t.parentOf(cur)
		t.nodes[cur].parent = prev
		prev = cur
		cur = next
	}
}
