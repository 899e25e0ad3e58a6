// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph membership and edge creation.
// Determinism:
//   - Nodes() preserves AddNode call order, duplicates included.

package core

import "slices"

// AddNode appends n to the graph's collection and keeps it alive for as long as
// the graph is. Adding the same node twice stores two entries. A nil node is ignored.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(n *Node[T]) {
	if n == nil {
		return
	}
	g.nodes = append(g.nodes, n)
}

// AddEdge links a and b in both directions by appending a weak reference to
// each node's neighbor list.
//
// It does not depend on any Graph: neither node has to be registered. Calling
// it twice for the same pair yields parallel entries, and AddEdge(a, a) appends
// two entries to a. If either argument is nil nothing is linked.
//
// Complexity: O(1) amortized.
func AddEdge[T any](a, b *Node[T]) {
	if a == nil || b == nil {
		return
	}
	a.link(b)
	b.link(a)
}

// Nodes returns a snapshot of the owned nodes in insertion order.
// The slice is a copy; the *Node values are shared with the graph.
// Complexity: O(V).
func (g *Graph[T]) Nodes() []*Node[T] {
	return slices.Clone(g.nodes)
}

// Len reports the number of entries in the collection, duplicates included.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Lookup returns the first registered node whose identifier equals id.
// Complexity: O(V).
func (g *Graph[T]) Lookup(id int) (*Node[T], bool) {
	for _, n := range g.nodes {
		if n.id == id {
			return n, true
		}
	}

	return nil, false
}
