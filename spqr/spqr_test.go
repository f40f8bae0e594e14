package spqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spqr/bctree"
	"github.com/katalvlaran/spqr/builder"
	"github.com/katalvlaran/spqr/core"
	"github.com/katalvlaran/spqr/spqr"
)

func insertAll(t *testing.T, f *spqr.Forest, script builder.Script) {
	t.Helper()
	require.NoError(t, builder.Apply(f, script))
}

// blockOf resolves the shared block of two vertices or fails the test.
func blockOf(t *testing.T, f *spqr.Forest, u, v string) bctree.BlockID {
	t.Helper()
	b, err := f.SharedBlock(u, v)
	require.NoError(t, err)

	return b
}

// treeNodes walks the whole tree of block b through the public surface.
func treeNodes(t *testing.T, f *spqr.Forest, b bctree.BlockID) []spqr.NodeID {
	t.Helper()
	root, err := f.Root(b)
	require.NoError(t, err)
	seen := map[spqr.NodeID]bool{root: true}
	queue := []spqr.NodeID{root}
	for i := 0; i < len(queue); i++ {
		skel, err := f.SkeletonEdges(queue[i])
		require.NoError(t, err)
		for _, e := range skel {
			tw := f.Twin(e)
			if tw == "" {
				continue
			}
			m, err := f.ProperEdge(tw)
			require.NoError(t, err)
			if !seen[m] {
				seen[m] = true
				queue = append(queue, m)
			}
		}
	}

	return queue
}

func TestLazyCreation(t *testing.T) {
	f := spqr.New()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		_, err := f.InsertEdge(e[0], e[1])
		require.NoError(t, err)
	}
	b := blockOf(t, f, "a", "c")

	// Updates alone never build a tree.
	assert.False(t, f.HasTree(b))
	_, err := f.ExistingPath("a", "c")
	assert.ErrorIs(t, err, spqr.ErrNoTree)
	_, err = f.Counts(b)
	assert.ErrorIs(t, err, spqr.ErrNoTree)

	// The first path query does.
	path, err := f.FindPath("a", "c")
	require.NoError(t, err)
	assert.True(t, f.HasTree(b))
	require.Len(t, path.Nodes, 1)
	assert.Equal(t, 0, path.Top)

	typ, err := f.TypeOf(path.Nodes[0])
	require.NoError(t, err)
	assert.Equal(t, spqr.SComp, typ)

	// Once built, ExistingPath serves the same answer.
	again, err := f.ExistingPath("a", "c")
	require.NoError(t, err)
	assert.Equal(t, path.Nodes, again.Nodes)
}

func TestFindPath_Errors(t *testing.T) {
	f := spqr.New()
	insertAll(t, f, builder.Script{{"a", "b"}, {"b", "c"}})

	_, err := f.FindPath("a", "nope")
	assert.ErrorIs(t, err, spqr.ErrVertexNotFound)

	// a and c meet only at the cut vertex b.
	_, err = f.FindPath("a", "c")
	assert.ErrorIs(t, err, spqr.ErrDifferentBlocks)

	// A bridge block is too small for a tree.
	_, err = f.FindPath("a", "b")
	assert.ErrorIs(t, err, spqr.ErrBlockTooSmall)

	// Two parallel edges still are.
	_, err = f.InsertEdge("a", "b")
	require.NoError(t, err)
	_, err = f.FindPath("a", "b")
	assert.ErrorIs(t, err, spqr.ErrBlockTooSmall)

	// Three make a parallel bundle.
	_, err = f.InsertEdge("a", "b")
	require.NoError(t, err)
	path, err := f.FindPath("a", "b")
	require.NoError(t, err)
	require.Len(t, path.Nodes, 1)
	typ, err := f.TypeOf(path.Nodes[0])
	require.NoError(t, err)
	assert.Equal(t, spqr.PComp, typ)

	c, err := f.Counts(blockOf(t, f, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{P: 1}, c)
}

func TestTriangleThenSplit(t *testing.T) {
	f := spqr.New()
	eAB, err := f.InsertEdge("a", "b")
	require.NoError(t, err)
	insertAll(t, f, builder.Script{{"b", "c"}, {"c", "a"}})

	_, err = f.FindPath("a", "b")
	require.NoError(t, err)
	b := blockOf(t, f, "a", "b")
	c, err := f.Counts(b)
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{S: 1}, c)

	// Subdividing a cycle edge keeps a single series node, one edge longer.
	_, _, err = f.SplitEdge(eAB, "w")
	require.NoError(t, err)
	c, err = f.Counts(b)
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{S: 1}, c)

	root, err := f.Root(b)
	require.NoError(t, err)
	skel, err := f.SkeletonEdges(root)
	require.NoError(t, err)
	assert.Len(t, skel, 4)

	// The new vertex is a full member of the block.
	path, err := f.FindPath("w", "c")
	require.NoError(t, err)
	assert.Len(t, path.Nodes, 1)
}

func TestCompleteGraphIsRigid(t *testing.T) {
	f := spqr.New()
	script, err := builder.Complete(4)
	require.NoError(t, err)
	insertAll(t, f, script)

	path, err := f.FindPath("v0", "v2")
	require.NoError(t, err)
	require.Len(t, path.Nodes, 1)
	typ, err := f.TypeOf(path.Nodes[0])
	require.NoError(t, err)
	assert.Equal(t, spqr.RComp, typ)

	skel, err := f.SkeletonEdges(path.Nodes[0])
	require.NoError(t, err)
	assert.Len(t, skel, 6)

	c, err := f.Counts(blockOf(t, f, "v0", "v2"))
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{R: 1}, c)
}

func TestWheelIsRigid(t *testing.T) {
	for _, rim := range []int{4, 5} {
		f := spqr.New()
		script, err := builder.Wheel(rim)
		require.NoError(t, err)
		insertAll(t, f, script)

		path, err := f.FindPath("hub", "v1")
		require.NoError(t, err)
		require.Len(t, path.Nodes, 1)

		skel, err := f.SkeletonEdges(path.Nodes[0])
		require.NoError(t, err)
		assert.Len(t, skel, 2*rim)

		c, err := f.Counts(blockOf(t, f, "hub", "v0"))
		require.NoError(t, err)
		assert.Equal(t, spqr.Counts{R: 1}, c, "wheel with rim %d", rim)
	}
}

func TestThetaDecomposition(t *testing.T) {
	for _, paths := range []int{3, 4} {
		f := spqr.New()
		script, err := builder.Theta(paths, 2)
		require.NoError(t, err)
		insertAll(t, f, script)

		_, err = f.FindPath("s", "t")
		require.NoError(t, err)
		c, err := f.Counts(blockOf(t, f, "s", "t"))
		require.NoError(t, err)
		assert.Equal(t, spqr.Counts{S: paths, P: 1}, c, "theta with %d paths", paths)
	}
}

func TestLadderDecomposition(t *testing.T) {
	f := spqr.New()
	script, err := builder.Ladder(3)
	require.NoError(t, err)
	insertAll(t, f, script)

	// Two 4-cycles glued along a1–b1: two series nodes under one parallel.
	_, err = f.FindPath("a0", "b2")
	require.NoError(t, err)
	c, err := f.Counts(blockOf(t, f, "a0", "b2"))
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{S: 2, P: 1}, c)

	// The query path crosses the parallel node between the two cycles.
	path, err := f.FindPath("a0", "a2")
	require.NoError(t, err)
	require.Len(t, path.Nodes, 3)
	assert.Equal(t, 1, path.Top)
	mid, err := f.TypeOf(path.Nodes[1])
	require.NoError(t, err)
	assert.Equal(t, spqr.PComp, mid)
	for _, end := range []spqr.NodeID{path.Nodes[0], path.Nodes[2]} {
		typ, err := f.TypeOf(end)
		require.NoError(t, err)
		assert.Equal(t, spqr.SComp, typ)
	}
}

func TestSubdividedRigid(t *testing.T) {
	f := spqr.New()
	script, err := builder.Complete(4)
	require.NoError(t, err)
	insertAll(t, f, script)
	_, err = f.FindPath("v0", "v1")
	require.NoError(t, err)

	// Subdividing an edge of a rigid skeleton hangs a series node off it.
	edges, err := f.G().IncidentEdges("v0")
	require.NoError(t, err)
	_, _, err = f.SplitEdge(edges[0].ID, "w")
	require.NoError(t, err)

	c, err := f.Counts(blockOf(t, f, "v0", "v1"))
	require.NoError(t, err)
	assert.Equal(t, spqr.Counts{S: 1, R: 1}, c)

	path, err := f.FindPath("w", "v3")
	require.NoError(t, err)
	assert.Len(t, path.Nodes, 2)
}

func TestDynamicMatchesReplay(t *testing.T) {
	// Build the wheel dynamically with an early path query, so the rim's
	// tree exists and is rebuilt and restructured by the spoke insertions.
	f := spqr.New()
	rim, err := builder.Cycle(4)
	require.NoError(t, err)
	insertAll(t, f, rim)
	_, err = f.FindPath("v0", "v2")
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = f.InsertEdge("hub", "v"+string(rune('0'+i)))
		require.NoError(t, err)
	}
	got, err := f.Counts(blockOf(t, f, "hub", "v0"))
	require.NoError(t, err)

	// Fresh replay of the finished graph, decomposed in one shot.
	src := core.NewGraph(core.WithMultiEdges())
	wheel, err := builder.Wheel(4)
	require.NoError(t, err)
	for _, e := range wheel {
		_, err = src.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	fresh, err := spqr.FromGraph(src)
	require.NoError(t, err)
	_, err = fresh.FindPath("hub", "v0")
	require.NoError(t, err)
	want, err := fresh.Counts(blockOf(t, fresh, "hub", "v0"))
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, spqr.Counts{R: 1}, got)
}

func TestRepresentativeResolution(t *testing.T) {
	f := spqr.New()
	script, err := builder.Complete(4)
	require.NoError(t, err)
	insertAll(t, f, script)
	path, err := f.FindPath("v0", "v1")
	require.NoError(t, err)
	rep := path.Nodes[0]

	// Idempotence.
	r1, err := f.Representative(rep)
	require.NoError(t, err)
	assert.Equal(t, rep, r1)

	// Construction absorbed earlier nodes; their handles still resolve.
	found := false
	for n := spqr.NodeID(0); ; n++ {
		r, err := f.Representative(n)
		if err != nil {
			break
		}
		assert.Equal(t, rep, r)
		if n != rep {
			found = true
			_, err = f.TypeOf(n)
			assert.ErrorIs(t, err, spqr.ErrNotRepresentative)
		}
	}
	assert.True(t, found, "K4 construction must merge intermediate nodes")

	_, err = f.Representative(spqr.NodeID(-1))
	assert.ErrorIs(t, err, spqr.ErrNotRepresentative)
}

// TestSkeletonInvariants checks, across topologies, that the real edges of
// a block are partitioned among the skeletons, that virtual edges pair up
// symmetrically across adjacent nodes, and that each skeleton matches its
// node type.
func TestSkeletonInvariants(t *testing.T) {
	cases := []struct {
		name   string
		script func() (builder.Script, error)
		u, v   string
	}{
		{"complete5", func() (builder.Script, error) { return builder.Complete(5) }, "v0", "v1"},
		{"wheel5", func() (builder.Script, error) { return builder.Wheel(5) }, "hub", "v2"},
		{"theta3x3", func() (builder.Script, error) { return builder.Theta(3, 3) }, "s", "t"},
		{"ladder4", func() (builder.Script, error) { return builder.Ladder(4) }, "a0", "b3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := spqr.New()
			script, err := tc.script()
			require.NoError(t, err)
			insertAll(t, f, script)
			_, err = f.FindPath(tc.u, tc.v)
			require.NoError(t, err)

			b := blockOf(t, f, tc.u, tc.v)
			nodes := treeNodes(t, f, b)

			var real []string
			for _, n := range nodes {
				skel, err := f.SkeletonEdges(n)
				require.NoError(t, err)
				typ, err := f.TypeOf(n)
				require.NoError(t, err)

				degrees := map[string]int{}
				poles := map[string]bool{}
				for _, e := range skel {
					x, y, err := f.H().Endpoints(e)
					require.NoError(t, err)
					degrees[x]++
					degrees[y]++
					poles[x], poles[y] = true, true

					tw := f.Twin(e)
					if tw == "" {
						real = append(real, e)
						continue
					}
					// Twin symmetry across an adjacent node.
					assert.Equal(t, e, f.Twin(tw))
					m, err := f.ProperEdge(tw)
					require.NoError(t, err)
					assert.NotEqual(t, n, m)
					assert.NotEmpty(t, f.VirtualEdge(n, m))
				}

				switch typ {
				case spqr.SComp:
					assert.GreaterOrEqual(t, len(skel), 3)
					for vtx, d := range degrees {
						assert.Equal(t, 2, d, "series skeleton degree at %s", vtx)
					}
				case spqr.PComp:
					assert.GreaterOrEqual(t, len(skel), 3)
					assert.Len(t, poles, 2)
				case spqr.RComp:
					assert.GreaterOrEqual(t, len(skel), 6)
				}
			}

			// Partition: every real block edge in exactly one skeleton.
			blockEdges, err := f.BlockEdges(b)
			require.NoError(t, err)
			assert.ElementsMatch(t, blockEdges, real)

			// Counts match the live nodes.
			c, err := f.Counts(b)
			require.NoError(t, err)
			assert.Equal(t, len(nodes), c.S+c.P+c.R)
		})
	}
}

// TestPathValidity checks the query contract on a tree with real depth.
func TestPathValidity(t *testing.T) {
	f := spqr.New()
	script, err := builder.Ladder(5)
	require.NoError(t, err)
	insertAll(t, f, script)

	path, err := f.FindPath("a0", "b4")
	require.NoError(t, err)
	require.NotEmpty(t, path.Nodes)
	require.True(t, path.Top >= 0 && path.Top < len(path.Nodes))

	seen := map[spqr.NodeID]bool{}
	for i, n := range path.Nodes {
		assert.False(t, seen[n], "path repeats node %d", n)
		seen[n] = true
		if i > 0 {
			assert.NotEmpty(t, f.VirtualEdge(path.Nodes[i-1], n),
				"consecutive path nodes must be tree-adjacent")
		}
	}
}

func TestCrossBlockMergeRebuilds(t *testing.T) {
	// Two queried triangles, then an edge pair fusing them into one block:
	// the stale trees must vanish and the merged block decompose afresh.
	f := spqr.New()
	insertAll(t, f, builder.Script{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	insertAll(t, f, builder.Script{{"x", "y"}, {"y", "z"}, {"z", "x"}})
	_, err := f.FindPath("a", "b")
	require.NoError(t, err)
	_, err = f.FindPath("x", "y")
	require.NoError(t, err)

	_, err = f.InsertEdge("a", "x") // bridge: no block merge yet
	require.NoError(t, err)
	_, err = f.InsertEdge("b", "y") // fuses both triangles and the bridge
	require.NoError(t, err)

	b := blockOf(t, f, "c", "z")
	assert.True(t, f.HasTree(b), "merged block inherits a tree")

	c, err := f.Counts(b)
	require.NoError(t, err)
	total := c.S + c.P + c.R
	assert.Equal(t, len(treeNodes(t, f, b)), total)

	// The rebuilt tree equals a one-shot decomposition of the same graph.
	fresh, err := spqr.FromGraph(f.G())
	require.NoError(t, err)
	_, err = fresh.FindPath("c", "z")
	require.NoError(t, err)
	want, err := fresh.Counts(blockOf(t, fresh, "c", "z"))
	require.NoError(t, err)
	assert.Equal(t, want, c)
}

func TestSplitEdgeWithoutTree(t *testing.T) {
	f := spqr.New()
	insertAll(t, f, builder.Script{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	edges, err := f.G().IncidentEdges("a")
	require.NoError(t, err)

	e1, e2, err := f.SplitEdge(edges[0].ID, "w")
	require.NoError(t, err)
	assert.NotEmpty(t, e1)
	assert.NotEmpty(t, e2)

	// Still lazy: the subdivision alone builds nothing.
	b := blockOf(t, f, "b", "c")
	assert.False(t, f.HasTree(b))

	// And the 4-cycle decomposes as one series node when asked.
	path, err := f.FindPath("w", "c")
	require.NoError(t, err)
	require.Len(t, path.Nodes, 1)
	typ, err := f.TypeOf(path.Nodes[0])
	require.NoError(t, err)
	assert.Equal(t, spqr.SComp, typ)
}
