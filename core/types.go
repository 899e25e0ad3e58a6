// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Graph declarations and their constructors.
// Ownership:
//   - Graph.nodes holds strong pointers; a Node lives while any strong holder exists.
//   - Node.neighbors holds weak.Pointer values only, so A↔B links never keep a node alive.
// Concurrency:
//   - None. Callers own exclusive access during mutation and traversal.

package core

import "weak"

// Node is a vertex of an undirected graph.
//
// id is the sole equality key (see Equal). value is an arbitrary payload.
// neighbors is ordered by edge-creation time and may contain parallel entries
// as well as stale entries whose target has already been collected.
type Node[T any] struct {
	id        int
	value     T
	neighbors []weak.Pointer[Node[T]]
}

// Graph owns an ordered collection of nodes.
//
// The collection is append-only and does not enforce uniqueness: the same
// *Node may be registered several times, and nodes linked via AddEdge need not
// be registered at all.
type Graph[T any] struct {
	nodes []*Node[T]
}

// NewNode allocates a standalone node with the given identifier and payload.
// It has no neighbors and belongs to no graph.
// Complexity: O(1).
func NewNode[T any](id int, value T) *Node[T] {
	return &Node[T]{id: id, value: value}
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{}
}
