// Package core provides a generic, in-memory undirected graph made of
// Node[T] values linked by weak references, plus breadth-first traversal.
//
// Model:
//
//   - Node[T]: integer identifier, payload of any type T, ordered neighbor list.
//   - Graph[T]: ordered, append-only collection of *Node[T] (strong references).
//   - AddEdge(a, b): free function that links two nodes symmetrically.
//
// Ownership:
//
//	A Graph keeps its nodes alive. Neighbor lists hold weak.Pointer values, so
//	the A↔B cycle of an undirected edge never keeps a node alive by itself.
//	When a node has no strong holder left the garbage collector may reclaim it;
//	its former neighbors then hold a stale entry that resolves to nil and is
//	silently skipped by every reader, BFS included.
//
// Identity:
//
//	Node.Equal compares identifiers only. BFS uses it for its visited check,
//	so two distinct nodes sharing an identifier are visited once. Keeping
//	identifiers unique is the caller's responsibility; nothing validates it.
//
// Errors:
//
//	None. Construction always succeeds, mutations accept any input (nil
//	arguments are ignored) and stale neighbors are not failures.
//
// Concurrency:
//
//	Not safe for concurrent use. Mutation (AddNode, AddEdge, SetID) and
//	traversal require exclusive access.
//
// Usage:
//
//	g := core.NewGraph[string]()
//	a, b := core.NewNode(0, "a"), core.NewNode(1, "b")
//	g.AddNode(a)
//	g.AddNode(b)
//	core.AddEdge(a, b)
//	order := g.BFS(a, core.WithLogger(logger)) // [a b]
//
// Diagnostics:
//
//	Every visited node produces one slog record ("bfs visit", vertex, value,
//	depth) in visitation order; WithLogger, WithLogLevel and WithOnVisit tune it.
package core
