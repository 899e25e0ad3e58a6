// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1; the closing edge is last.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.
//   - Space: O(1) extra (iter vars only).
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.

package builder

import "fmt"

// File-local constants (stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (t,cfg).
	return func(t *Topology, cfg builderConfig) error {
		// Validate parameter domain early (no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Register n nodes with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			t.AddNode(cfg.idFn(i))
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			t.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		// Success: cycle fully constructed.
		return nil
	}
}
