// SPDX-License-Identifier: MIT

package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ugraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain; the visited scan makes it quadratic.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 1000
	g, nodes := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BFS(nodes[0], quiet)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, 2·M·(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 30
	g := core.NewGraph[int]()
	cells := make([]*core.Node[int], M*M)
	for i := range cells {
		cells[i] = core.NewNode(i, i)
		g.AddNode(cells[i])
		if i%M > 0 {
			core.AddEdge(cells[i-1], cells[i])
		}
		if i >= M {
			core.AddEdge(cells[i-M], cells[i])
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BFS(cells[0], quiet)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph with parallel edges.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 1000
	const E = 3000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph[int]()
	nodes := make([]*core.Node[int], V)
	for i := range nodes {
		nodes[i] = core.NewNode(i, i)
		g.AddNode(nodes[i])
	}
	for k := 0; k < E; k++ {
		core.AddEdge(nodes[rnd.Intn(V)], nodes[rnd.Intn(V)])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BFS(nodes[0], quiet)
	}
}
