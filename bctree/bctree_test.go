package bctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spqr/bctree"
	"github.com/katalvlaran/spqr/core"
)

// insertAll replays an edge script and returns the G edge IDs in order.
func insertAll(t *testing.T, tr *bctree.Tree, script [][2]string) []string {
	t.Helper()
	ids := make([]string, 0, len(script))
	for _, e := range script {
		id, err := tr.InsertEdge(e[0], e[1])
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return ids
}

func TestInsertEdge_FreshBlock(t *testing.T) {
	tr := bctree.New()
	id, err := tr.InsertEdge("a", "b")
	require.NoError(t, err)

	b, err := tr.ProperBlock(id)
	require.NoError(t, err)
	n, err := tr.BlockEdgeCount(b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, tr.IsCutVertex("a"))
	assert.False(t, tr.IsCutVertex("b"))

	// G and H stay in lockstep, one real H-edge per G-edge.
	eH, err := tr.HEdgeOf(id)
	require.NoError(t, err)
	back, err := tr.GEdgeOf(eH)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestInsertEdge_PathMakesCutVertices(t *testing.T) {
	tr := bctree.New()
	ids := insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})

	assert.True(t, tr.IsCutVertex("b"))
	assert.True(t, tr.IsCutVertex("c"))
	assert.False(t, tr.IsCutVertex("a"))
	assert.False(t, tr.IsCutVertex("d"))

	// Three bridges, three distinct blocks.
	seen := map[bctree.BlockID]bool{}
	for _, id := range ids {
		b, err := tr.ProperBlock(id)
		require.NoError(t, err)
		seen[b] = true
	}
	assert.Len(t, seen, 3)
}

func TestInsertEdge_TriangleCondenses(t *testing.T) {
	tr := bctree.New()
	ids := insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	// Closing the triangle merges both bridges; b stops being a cut vertex.
	assert.False(t, tr.IsCutVertex("b"))
	b0, err := tr.ProperBlock(ids[0])
	require.NoError(t, err)
	for _, id := range ids[1:] {
		b, err := tr.ProperBlock(id)
		require.NoError(t, err)
		assert.Equal(t, b0, b)
	}
	n, err := tr.BlockEdgeCount(b0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestApplyEdge_Reports(t *testing.T) {
	tr := bctree.New()

	rep, err := tr.ApplyEdge("a", "b")
	require.NoError(t, err)
	assert.False(t, rep.Intra)
	assert.False(t, rep.Linked)
	assert.Empty(t, rep.MergedBlocks)

	_, err = tr.ApplyEdge("b", "c")
	require.NoError(t, err)

	rep, err = tr.ApplyEdge("c", "a")
	require.NoError(t, err)
	assert.False(t, rep.Intra, "two blocks merged")
	assert.Len(t, rep.MergedBlocks, 2)

	// A parallel edge lands inside the existing block.
	rep, err = tr.ApplyEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, rep.Intra)
	assert.Len(t, rep.MergedBlocks, 1)
}

func TestApplyEdge_PartialCondensation(t *testing.T) {
	tr := bctree.New()
	insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})

	// a–c closes a cycle over the first two bridges only.
	rep, err := tr.ApplyEdge("a", "c")
	require.NoError(t, err)
	require.Len(t, rep.MergedBlocks, 2)

	n, err := tr.BlockEdgeCount(rep.Block)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// c still separates the merged block from the c–d bridge; b does not.
	assert.True(t, tr.IsCutVertex("c"))
	assert.False(t, tr.IsCutVertex("b"))

	// Stale IDs resolve to the survivor.
	for _, old := range rep.MergedBlocks {
		got, err := tr.Find(old)
		require.NoError(t, err)
		assert.Equal(t, rep.Block, got)
	}
}

func TestApplyEdge_LinksComponents(t *testing.T) {
	tr := bctree.New()
	insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	insertAll(t, tr, [][2]string{{"x", "y"}, {"y", "z"}, {"z", "x"}})

	rep, err := tr.ApplyEdge("a", "x")
	require.NoError(t, err)
	assert.True(t, rep.Linked)
	n, err := tr.BlockEdgeCount(rep.Block)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "a bridge block joins the trees")

	assert.True(t, tr.IsCutVertex("a"))
	assert.True(t, tr.IsCutVertex("x"))

	// Closing a long cycle across the link merges everything into one block.
	rep, err = tr.ApplyEdge("b", "y")
	require.NoError(t, err)
	n, err = tr.BlockEdgeCount(rep.Block)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.False(t, tr.IsCutVertex("a"))
	assert.False(t, tr.IsCutVertex("x"))
}

func TestSharedBlock(t *testing.T) {
	tr := bctree.New()
	// Two triangles glued at c: a,b,c and c,d,e.
	insertAll(t, tr, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"c", "d"}, {"d", "e"}, {"e", "c"},
	})
	require.True(t, tr.IsCutVertex("c"))

	// interior/interior, same block
	b1, err := tr.SharedBlock("a", "b")
	require.NoError(t, err)
	// cut/interior
	b2, err := tr.SharedBlock("c", "a")
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	// interior/interior across blocks
	_, err = tr.SharedBlock("a", "d")
	assert.ErrorIs(t, err, bctree.ErrDifferentBlocks)

	// unknown vertex
	_, err = tr.SharedBlock("a", "nope")
	assert.ErrorIs(t, err, bctree.ErrVertexNotFound)

	assert.True(t, tr.SameBlock("d", "e"))
	assert.False(t, tr.SameBlock("b", "e"))
}

func TestSharedBlock_TwoCutVertices(t *testing.T) {
	tr := bctree.New()
	// Square a-b-c-d-a plus pendants off b and d make both cut vertices.
	insertAll(t, tr, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"},
		{"b", "p"}, {"d", "q"},
	})
	require.True(t, tr.IsCutVertex("b"))
	require.True(t, tr.IsCutVertex("d"))

	b, err := tr.SharedBlock("b", "d")
	require.NoError(t, err)
	n, err := tr.BlockEdgeCount(b)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = tr.SharedBlock("p", "q")
	assert.ErrorIs(t, err, bctree.ErrDifferentBlocks)
}

func TestSplitEdge_InsideBlock(t *testing.T) {
	tr := bctree.New()
	ids := insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	e1, e2, err := tr.SplitEdge(ids[0], "w")
	require.NoError(t, err)

	b1, err := tr.ProperBlock(e1)
	require.NoError(t, err)
	b2, err := tr.ProperBlock(e2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "subdivision keeps the block")
	n, err := tr.BlockEdgeCount(b1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.False(t, tr.IsCutVertex("w"))

	// The old edge is gone from G and from the mapping.
	_, err = tr.ProperBlock(ids[0])
	assert.ErrorIs(t, err, bctree.ErrEdgeNotFound)
	assert.False(t, tr.G().HasEdge("a", "b"))
}

func TestSplitEdge_Bridge(t *testing.T) {
	tr := bctree.New()
	insertAll(t, tr, [][2]string{{"a", "b"}, {"b", "c"}})

	id := func(u, v string) string {
		t.Helper()
		edges, err := tr.G().IncidentEdges(u)
		require.NoError(t, err)
		for _, e := range edges {
			if e.Other(u) == v {
				return e.ID
			}
		}
		t.Fatalf("no edge %s-%s", u, v)

		return ""
	}

	rep, err := tr.ApplySplit(id("b", "c"), "w")
	require.NoError(t, err)
	assert.True(t, rep.Bridge)
	assert.NotEqual(t, rep.Block, rep.ExtraBlock)
	assert.True(t, tr.IsCutVertex("w"))
	assert.True(t, tr.IsCutVertex("b"))

	// Each half is its own single-edge block.
	for _, e := range []string{rep.E1, rep.E2} {
		b, err := tr.ProperBlock(e)
		require.NoError(t, err)
		n, err := tr.BlockEdgeCount(b)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	// Closing w–a condenses a–b and b–w with the new edge; the w–c bridge
	// stays separate, so w remains a cut vertex and b does not.
	got, err := tr.ApplyEdge("w", "a")
	require.NoError(t, err)
	n, err := tr.BlockEdgeCount(got.Block)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, tr.IsCutVertex("w"))
	assert.False(t, tr.IsCutVertex("b"))
}

func TestSplitEdge_UnknownEdge(t *testing.T) {
	tr := bctree.New()
	_, _, err := tr.SplitEdge("e404", "w")
	assert.ErrorIs(t, err, bctree.ErrEdgeNotFound)
}

func TestFromGraph_ReplayMatchesDynamic(t *testing.T) {
	src := core.NewGraph(core.WithMultiEdges())
	script := [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"c", "d"}, {"d", "e"}, {"e", "f"}, {"f", "d"},
	}
	for _, e := range script {
		_, err := src.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	tr, err := bctree.FromGraph(src)
	require.NoError(t, err)

	assert.Equal(t, src.VertexCount(), tr.G().VertexCount())
	assert.Equal(t, src.EdgeCount(), tr.G().EdgeCount())
	assert.True(t, tr.IsCutVertex("c"))
	assert.True(t, tr.IsCutVertex("d"))
	assert.False(t, tr.IsCutVertex("e"))

	// Triangle, bridge, triangle: block sizes 3, 1, 3.
	sizes := map[bctree.BlockID]int{}
	for _, e := range tr.G().Edges() {
		b, err := tr.ProperBlock(e.ID)
		require.NoError(t, err)
		sizes[b]++
	}
	counts := []int{}
	for _, n := range sizes {
		counts = append(counts, n)
	}
	assert.ElementsMatch(t, []int{3, 1, 3}, counts)
}

func TestInsertVertex_Isolated(t *testing.T) {
	tr := bctree.New()
	require.NoError(t, tr.InsertVertex("solo"))
	assert.True(t, tr.G().HasVertex("solo"))
	assert.True(t, tr.H().HasVertex("solo"))
	assert.False(t, tr.IsCutVertex("solo"))
	_, err := tr.SharedBlock("solo", "solo")
	assert.ErrorIs(t, err, bctree.ErrVertexNotFound)
}
