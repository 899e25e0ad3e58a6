// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node accessors, identity and neighborhood queries.
// Determinism:
//   - Neighbors() and LiveNeighbors() preserve edge-creation order.

package core

import (
	"fmt"
	"slices"
	"weak"
)

// ID returns the node identifier.
func (n *Node[T]) ID() int { return n.id }

// Value returns the stored payload. Pointer-like payloads are shared, not copied.
func (n *Node[T]) Value() T { return n.value }

// SetID replaces the identifier in place.
//
// No uniqueness validation is performed: two nodes sharing an id are Equal
// and a traversal treats them as one vertex.
func (n *Node[T]) SetID(id int) { n.id = id }

// Neighbors returns a snapshot of the neighbor references in edge-creation order.
//
// Entries are weak: resolve each with Value() and skip nil results, which
// denote neighbors that were already collected. The returned slice is a copy;
// appending to it does not alter the node.
//
// Complexity: O(deg), Space O(deg).
func (n *Node[T]) Neighbors() []weak.Pointer[Node[T]] {
	return slices.Clone(n.neighbors)
}

// LiveNeighbors resolves Neighbors and drops stale entries.
// Parallel edges yield repeated entries, self-loops yield the node itself.
//
// Complexity: O(deg), Space O(deg).
func (n *Node[T]) LiveNeighbors() []*Node[T] {
	out := make([]*Node[T], 0, len(n.neighbors))
	for _, wp := range n.neighbors {
		if nbr := wp.Value(); nbr != nil {
			out = append(out, nbr)
		}
	}

	return out
}

// Degree reports the number of neighbor entries, stale and parallel ones included.
func (n *Node[T]) Degree() int { return len(n.neighbors) }

// Equal reports whether n and other carry the same identifier.
// Payload and neighbors are ignored. Two nil nodes are equal; nil never equals a non-nil node.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.id == other.id
}

// String renders the node for diagnostics, e.g. "Node(id=3, value={A:7 B:8})".
func (n *Node[T]) String() string {
	if n == nil {
		return "Node(nil)"
	}

	return fmt.Sprintf("Node(id=%d, value=%+v)", n.id, n.value)
}

// link appends a weak reference to other. Callers keep edges symmetric.
func (n *Node[T]) link(other *Node[T]) {
	n.neighbors = append(n.neighbors, weak.Make(other))
}
