// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_edges.go: implementation of Edges(pairs...) constructor.
//
// Contract:
//   - Records the given pairs verbatim, in argument order.
//   - Ids are taken as-is; cfg.idFn is not applied.
//   - Endpoints are registered on first sight (U before V).
//   - Parallel edges and self-loops are preserved. Never fails.
//
// Complexity:
//   - Time: O(len(pairs)) edges, plus O(1) amortised per new endpoint.
//   - Space: O(1) extra.
//
// Determinism:
//   - Output depends only on the argument order.

package builder

// Edges returns a Constructor that records the given pairs verbatim, in order.
func Edges(pairs ...Edge) Constructor {
	// The builder config is irrelevant: ids are explicit.
	return func(t *Topology, _ builderConfig) error {
		for _, e := range pairs {
			t.AddEdge(e.U, e.V)
		}

		// Success: all pairs recorded.
		return nil
	}
}
