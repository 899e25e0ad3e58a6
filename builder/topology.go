// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// topology.go: id-level graph sketch filled by constructors.
//
// A Topology records node ids in first-seen order and undirected edges in
// emission order. It is materialised into a core.Graph by BuildGraph, which
// keeps constructors independent of the payload type.

package builder

import "slices"

// Edge is an undirected link between two node ids, in emission order (U first).
type Edge struct {
	U, V int
}

// Topology is an ordered set of node ids plus an ordered list of edges.
// The zero value is ready to use.
type Topology struct {
	ids   []int
	seen  map[int]struct{}
	edges []Edge
}

// NewTopology returns an empty Topology.
func NewTopology() *Topology {
	return &Topology{seen: make(map[int]struct{})}
}

// AddNode records id if not yet present. Idempotent.
// Complexity: O(1) amortized.
func (t *Topology) AddNode(id int) {
	if t.seen == nil {
		t.seen = make(map[int]struct{})
	}
	if _, ok := t.seen[id]; ok {
		return
	}
	t.seen[id] = struct{}{}
	t.ids = append(t.ids, id)
}

// AddEdge records an edge u-v, adding missing endpoints first (u, then v).
// Parallel edges and self-loops are kept as given.
func (t *Topology) AddEdge(u, v int) {
	t.AddNode(u)
	t.AddNode(v)
	t.edges = append(t.edges, Edge{U: u, V: v})
}

// HasNode reports whether id was recorded.
func (t *Topology) HasNode(id int) bool {
	_, ok := t.seen[id]
	return ok
}

// NodeIDs returns a copy of the ids in first-seen order.
func (t *Topology) NodeIDs() []int { return slices.Clone(t.ids) }

// Edges returns a copy of the edges in emission order.
func (t *Topology) Edges() []Edge { return slices.Clone(t.edges) }
