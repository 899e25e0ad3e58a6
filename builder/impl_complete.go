// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated node.
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i -> j for i<j, i asc then j asc.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Lexicographic (i,j) emission order.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Register all nodes before any edge so isolated K_1 still appears.
		for i := 0; i < n; i++ {
			t.AddNode(cfg.idFn(i))
		}

		// One edge per unordered pair {i,j}, i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t.AddEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		// Success: clique fully constructed.
		return nil
	}
}
