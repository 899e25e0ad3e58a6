// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: breadth-first traversal over weak neighbor links.
//
// Algorithm:
//   - FIFO queue and visited list, both seeded with the start node.
//   - Dequeue, emit a visit record, then for each neighbor in edge-creation order:
//     resolve the weak reference (skip if collected), and if no visited node is
//     Equal to it (linear scan by identifier) append it to visited and queue.
//
// Complexity: O(V·d·V) time for V visited nodes of average degree d, O(V) space.
// The visited check is a linear scan; identity is the node identifier, not the pointer.

package core

// queueItem pairs a node with its index in the visited order.
type queueItem[T any] struct {
	node *Node[T]
	idx  int
}

// walker encapsulates mutable traversal state.
type walker[T any] struct {
	cfg   bfsConfig
	queue []queueItem[T]
	res   *Traversal[T]
}

// BFS returns the nodes reachable from start in breadth-first discovery order.
//
// The start node is always first. Neighbor order within a node follows that
// node's edge-creation order. Only the connected component of start is
// explored; membership in g is not required and not checked. A nil start
// yields an empty result.
//
// One diagnostic record per visited node is written through slog (see WithLogger).
func (g *Graph[T]) BFS(start *Node[T], opts ...BFSOption) []*Node[T] {
	return g.Traverse(start, opts...).Order
}

// Traverse runs the same traversal as BFS and additionally records hop
// distances and the BFS tree.
func (g *Graph[T]) Traverse(start *Node[T], opts ...BFSOption) *Traversal[T] {
	cfg := defaultBFSConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &walker[T]{cfg: cfg, res: &Traversal[T]{}}
	if start == nil {
		return w.res
	}
	w.discover(start, 0, -1)
	w.loop()

	return w.res
}

// discover appends n to the visited order and the queue.
func (w *walker[T]) discover(n *Node[T], depth, parent int) {
	idx := len(w.res.Order)
	w.res.Order = append(w.res.Order, n)
	w.res.Depth = append(w.res.Depth, depth)
	w.res.Parent = append(w.res.Parent, parent)
	w.queue = append(w.queue, queueItem[T]{node: n, idx: idx})
}

// loop drains the queue. Each identifier is discovered at most once, so it terminates.
func (w *walker[T]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		depth := w.res.Depth[item.idx]
		w.cfg.logVisit(item.node.id, depth, item.node.value)
		w.cfg.onVisit(item.node.id, depth)

		for _, wp := range item.node.neighbors {
			nbr := wp.Value()
			if nbr == nil {
				// collected neighbor: stale edge
				continue
			}
			if !w.visited(nbr) {
				w.discover(nbr, depth+1, item.idx)
			}
		}
	}
}

// visited reports whether a node Equal to n was already discovered.
func (w *walker[T]) visited(n *Node[T]) bool {
	for _, v := range w.res.Order {
		if v.Equal(n) {
			return true
		}
	}

	return false
}
