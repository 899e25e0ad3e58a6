// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(valueFn, bopts, cons...). Resolves cfg, runs cons in order
//     on a single Topology, then materialises it into a core.Graph.
//   - Topology factories are implemented in impl_*.go.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Complexity:
//   - Time: Σ cost of constructors + O(V+E) materialisation.
//   - Space: O(V) id index during materialisation.
//
// Determinism:
//   - Same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Node order is first-seen id order; edge order is emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Method tags used as error prefixes.
const (
	methodBuildGraph = "BuildGraph"
	methodApply      = "Apply"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors wrapped with their method tag, and never panic.
type Constructor func(t *Topology, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to one Topology and materialises the result: one
// core.Node per distinct id (registered in first-seen order, payload
// valueFn(id)) and one core.AddEdge per recorded edge.
//
// Constructors share nodes whose ids collide; use WithIDOffset to keep them apart.
// A nil valueFn yields zero payloads. Constructor errors are wrapped as
// "BuildGraph: %w"; no partial graph is returned.
//
// Complexity: Σ cost of constructors + O(V+E) materialisation.
func BuildGraph[T any](valueFn func(id int) T, bopts []BuilderOption, cons ...Constructor) (*core.Graph[T], error) {
	// Resolve options once and fill a fresh sketch.
	t := NewTopology()
	if err := run(methodBuildGraph, t, newBuilderConfig(bopts...), cons); err != nil {
		// No partial graph on failure.
		return nil, err
	}

	// Success: hand the sketch to core.
	return Materialize(t, valueFn), nil
}

// Materialize turns a Topology into a graph. See BuildGraph for the rules.
// A nil topology yields an empty graph.
func Materialize[T any](t *Topology, valueFn func(id int) T) *core.Graph[T] {
	g := core.NewGraph[T]()
	if t == nil {
		return g
	}

	// One node per distinct id, in first-seen order.
	byID := make(map[int]*core.Node[T], len(t.ids))
	for _, id := range t.ids {
		var v T
		if valueFn != nil {
			v = valueFn(id)
		}
		n := core.NewNode(id, v)
		byID[id] = n
		g.AddNode(n)
	}
	// Link edges in emission order; every endpoint is already indexed.
	for _, e := range t.edges {
		core.AddEdge(byID[e.U], byID[e.V])
	}

	return g
}

// Apply runs constructors against an existing Topology with options resolved
// once. Useful to extend a topology before building a document from it.
func Apply(t *Topology, bopts []BuilderOption, cons ...Constructor) error {
	if t == nil {
		return fmt.Errorf("Apply: nil topology: %w", ErrConstructFailed)
	}

	return run(methodApply, t, newBuilderConfig(bopts...), cons)
}

// run applies cons in order and wraps the first failure with the method tag.
func run(method string, t *Topology, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		// Guard against nil constructors in the variadic list.
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		// Stop at the first failure; earlier mutations stay in t.
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
