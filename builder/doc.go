// Package builder provides deterministic topology fixtures and YAML graph
// documents for core.Graph.
//
// Constructors describe a topology over integer node ids; BuildGraph
// materialises it into a core.Graph[T] with caller-supplied payloads:
//
//	g, err := builder.BuildGraph(
//	    func(id int) string { return fmt.Sprintf("v%d", id) },
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Cycle(6),
//	)
//
// The package offers:
//
//   - Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse, Edges.
//   - Options: WithIDScheme, WithIDOffset (index → id), WithSeed, WithRand (RNG).
//   - Documents: DecodeDocument / Document.Encode (gopkg.in/yaml.v3),
//     Document.Build, FromTopology.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ same node order and
//     the same neighbor order on every node.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is(err, ErrTooFewVertices), ...).
//   - Option constructors panic on nil functions or RNGs.
package builder
