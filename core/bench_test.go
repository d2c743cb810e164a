// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/socialpath/core"
)

// BenchmarkInsertNode measures idempotent node insertion over a bounded label set.
func BenchmarkInsertNode(b *testing.B) {
	g := core.NewGraph[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.InsertNode(i % 4096)
	}
}

// BenchmarkInsertEdge_Parallel measures edge insertion with parallel edges allowed.
func BenchmarkInsertEdge_Parallel(b *testing.B) {
	g := core.NewGraph[string, int](core.WithParallelEdges())
	g.InsertNode("Root")
	for i := 0; i < 100; i++ {
		g.InsertNode(fmt.Sprintf("N%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InsertEdge("Root", fmt.Sprintf("N%d", i%100), i)
	}
}

// BenchmarkInsertEdge_Overwrite measures the scan cost of the overwrite policy.
func BenchmarkInsertEdge_Overwrite(b *testing.B) {
	g := core.NewGraph[string, int]()
	g.InsertNode("Root")
	for i := 0; i < 100; i++ {
		g.InsertNode(fmt.Sprintf("N%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InsertEdge("Root", fmt.Sprintf("N%d", i%100), i)
	}
}

// BenchmarkLeaving measures the copying cost of the traversal view.
func BenchmarkLeaving(b *testing.B) {
	g := core.NewGraph[int, int]()
	g.InsertNode(0)
	for i := 1; i <= 64; i++ {
		g.InsertNode(i)
		_ = g.InsertEdge(0, i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Leaving(0)
	}
}
