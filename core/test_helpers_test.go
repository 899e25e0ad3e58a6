// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/katalvlaran/ugraph/core"
)

// payload is a small struct value carried by fixture nodes.
type payload struct {
	A int
	B int
}

// quiet silences visit records in tests that do not inspect them.
var quiet = core.WithLogger(slog.New(slog.DiscardHandler))

// scenario builds nodes 0..3, registers them in order and links
// (0,2), (0,3), (1,2), (2,3).
func scenario() (*core.Graph[payload], []*core.Node[payload]) {
	nodes := []*core.Node[payload]{
		core.NewNode(0, payload{A: 1, B: 2}),
		core.NewNode(1, payload{A: 3, B: 4}),
		core.NewNode(2, payload{A: 5, B: 6}),
		core.NewNode(3, payload{A: 7, B: 8}),
	}
	g := core.NewGraph[payload]()
	for _, n := range nodes {
		g.AddNode(n)
	}
	core.AddEdge(nodes[0], nodes[2])
	core.AddEdge(nodes[0], nodes[3])
	core.AddEdge(nodes[1], nodes[2])
	core.AddEdge(nodes[2], nodes[3])

	return g, nodes
}

// chain links n nodes 0-1-...-(n-1) and registers all of them.
func chain(n int) (*core.Graph[int], []*core.Node[int]) {
	g := core.NewGraph[int]()
	nodes := make([]*core.Node[int], n)
	for i := range nodes {
		nodes[i] = core.NewNode(i, i*i)
		g.AddNode(nodes[i])
		if i > 0 {
			core.AddEdge(nodes[i-1], nodes[i])
		}
	}

	return g, nodes
}

// ids maps nodes to their identifiers.
func ids[T any](nodes []*core.Node[T]) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}

	return out
}

// captureLogger returns a text logger writing into buf without timestamps.
func captureLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// linkTransient links keep to a node that nothing else references.
//
//go:noinline
func linkTransient(keep *core.Node[payload], id int) {
	tmp := core.NewNode(id, payload{A: id})
	core.AddEdge(keep, tmp)
}

// collectUntil runs the garbage collector until cond holds or attempts run out.
func collectUntil(t *testing.T, cond func() bool) {
	t.Helper()
	for i := 0; i < 10; i++ {
		runtime.GC()
		if cond() {
			return
		}
	}
	t.Fatalf("condition not reached after repeated GC")
}
