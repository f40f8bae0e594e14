package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/spqr/core"
)

func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithMultiEdges())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := strconv.Itoa(i % 1000)
		v := strconv.Itoa((i + 1) % 1000)
		_, _ = g.AddEdge(u, v)
	}
}

func BenchmarkSplitEdge(b *testing.B) {
	g := core.NewGraph()
	id, _ := g.AddEdge("a", "b")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _, _ = g.SplitEdge(id, "w"+strconv.Itoa(i))
	}
}
