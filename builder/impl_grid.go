// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) has index r*cols+c; its id is cfg.idFn(index).
//   - Nodes in row-major order; for each cell emit Right then Bottom if present.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(rows*cols) nodes + O(2*rows*cols) edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn over row-major indices.
//   - Stable (r,c) scan with fixed Right/Bottom neighbor order.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(t *Topology, cfg builderConfig) error {
		// Validate both dimensions before any mutation.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		// cell maps (r,c) to its configured id.
		cell := func(r, c int) int { return cfg.idFn(r*cols + c) }

		// Register all cells in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				t.AddNode(cell(r, c))
			}
		}

		// Emit Right then Bottom for every cell that has them.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					t.AddEdge(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					t.AddEdge(cell(r, c), cell(r+1, c))
				}
			}
		}

		// Success: grid fully constructed.
		return nil
	}
}
