// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the center; leaves are indices 1..n-1.
//   - Emits edges center -> leaf in ascending leaf order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Leaves are registered by their first edge, so node order equals index order.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// Register the center first so it leads the node order.
		center := cfg.idFn(0)
		t.AddNode(center)

		// Spokes: AddEdge registers each leaf as it is reached.
		for i := 1; i < n; i++ {
			t.AddEdge(center, cfg.idFn(i))
		}

		// Success: star fully constructed.
		return nil
	}
}
