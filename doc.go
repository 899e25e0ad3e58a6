// Package ugraph is an in-memory playground for building and exploring
// undirected graphs whose nodes carry arbitrary payloads.
//
// What is ugraph?
//
//   - Core primitives: Node[T] with an integer id and a payload, Graph[T]
//     owning an ordered node collection, symmetric AddEdge.
//   - Weak neighbor links: nodes reference each other through weak.Pointer,
//     so dropping a node never leaks through its A↔B cycles; stale links are skipped.
//   - Traversal: breadth-first search with slog diagnostics, depth and
//     fewest-hop path reconstruction.
//   - Fixtures: deterministic topology constructors and YAML graph documents.
//
// Under the hood, everything is organized in subpackages:
//
//	core/        Node, Graph, AddEdge, BFS/Traverse and their options
//	builder/     Path, Cycle, Star, Complete, Grid, RandomSparse, Edges; YAML documents
//	cmd/ugraph/  CLI: `ugraph bfs -f graph.yaml`, `ugraph gen grid 3 3`
//	examples/    runnable programs
//
// Quick ASCII example:
//
//	0 ── 2 ── 1
//	│   /
//	3 ─┘
//
// BFS from 0 visits 0, 2, 3, 1.
//
//	go get github.com/katalvlaran/ugraph
package ugraph
