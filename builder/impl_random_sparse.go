// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Trials over unordered pairs {i,j}, i asc then j>i asc; no loops, no parallels.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed trial order ⇒ identical output for a fixed seed.
//   - p ∈ {0,1} consumes no randomness.

package builder

import "fmt"

// File-local constants for method tagging, minima and probability bounds.
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		// Validate size first, then probability, then RNG presence.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// p ∈ {0,1} is deterministic and needs no RNG.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// Register all nodes so isolated ones still appear.
		for i := 0; i < n; i++ {
			t.AddNode(cfg.idFn(i))
		}

		// One trial per unordered pair in lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keepPair(cfg, p) {
					t.AddEdge(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		// Success: sample fully constructed.
		return nil
	}
}

// keepPair runs one Bernoulli trial.
func keepPair(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
