// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (t,cfg).
	return func(t *Topology, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Register n nodes with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			t.AddNode(cfg.idFn(i))
		}

		// Emit path edges 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			t.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		// Success: path fully constructed.
		return nil
	}
}
