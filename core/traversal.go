// SPDX-License-Identifier: MIT

package core

// Traversal holds the outcome of a breadth-first traversal.
//
// Order, Depth and Parent are parallel slices:
//   - Order[i]: the i-th discovered node (Order[0] is the start).
//   - Depth[i]: hop distance of Order[i] from the start.
//   - Parent[i]: index in Order of the node that discovered Order[i]; -1 for the start.
type Traversal[T any] struct {
	Order  []*Node[T]
	Depth  []int
	Parent []int
}

// IDs returns the identifiers of Order.
func (t *Traversal[T]) IDs() []int {
	ids := make([]int, len(t.Order))
	for i, n := range t.Order {
		ids[i] = n.id
	}

	return ids
}

// indexOf returns the position of the first visited node with identifier id, or -1.
func (t *Traversal[T]) indexOf(id int) int {
	for i, n := range t.Order {
		if n.id == id {
			return i
		}
	}

	return -1
}

// DepthOf returns the hop distance of the node with identifier id.
// ok is false if no such node was reached.
func (t *Traversal[T]) DepthOf(id int) (depth int, ok bool) {
	i := t.indexOf(id)
	if i < 0 {
		return 0, false
	}

	return t.Depth[i], true
}

// PathTo reconstructs the fewest-hop path from the start to the node with
// identifier id along the BFS tree. ok is false if that node was not reached.
func (t *Traversal[T]) PathTo(id int) (path []*Node[T], ok bool) {
	i := t.indexOf(id)
	if i < 0 {
		return nil, false
	}
	// build reversed path
	for cur := i; cur >= 0; cur = t.Parent[cur] {
		path = append(path, t.Order[cur])
	}
	// reverse to get start → dest
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, true
}
