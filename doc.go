// Package lattis is an in-memory weighted graph engine: build a graph
// in one of two storage representations, then run traversals, shortest
// paths, and dependency ordering over it.
//
// What lattis provides:
//
//   - graph/    — the Graph ADT with two interchangeable backends:
//     AdjacencyList (sparse-friendly, O(V+E) space) and
//     AdjacencyMatrix (dense-friendly, O(1) edge lookup)
//   - heap/     — a generic array-backed binary heap with Floyd's
//     linear-time Heapify; the scheduling primitive behind Dijkstra
//   - bfs/      — breadth-first traversal with hooks and limits
//   - dfs/      — depth-first traversal, topological sort, cycle detection
//   - dijkstra/ — single-source shortest paths with lazy decrease-key
//
// Why choose lattis?
//
//   - Minimal API, clear naming — one interface, two backends, no
//     inheritance tricks
//   - Deterministic — Vertices(), Edges(), NeighborIDs() return sorted
//     results, so traversal orders are reproducible
//   - Pure Go — no cgo, no hidden deps
//   - Explicit failure semantics — sentinel errors per package,
//     matched with errors.Is
//
// The engine is single-threaded by design: graphs and heaps are plain
// mutable structures with no internal locking, and algorithms borrow
// their input graph read-only. Callers needing concurrent mutation
// must serialize access themselves.
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      4   2
//	       \  │
//	        ──C──1──D
//
//	dijkstra from A finds A→B→C→D at total cost 4.
//
// See examples/ for runnable demos: resolving service start-up order
// with TopologicalSort, and lowest-latency routing with Dijkstra.
//
//	go get github.com/arvandor/lattis
package lattis
