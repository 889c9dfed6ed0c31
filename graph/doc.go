// Package graph defines the weighted graph ADT and its two storage
// implementations.
//
// The Graph interface describes a mutable collection of string-identified
// vertices and weighted edges, tagged at construction time as directed or
// undirected. Two independent types implement it:
//
//   - AdjacencyList   — vertex → outgoing-edge map; O(V+E) space,
//     neighbor queries proportional to degree. Best for sparse graphs.
//   - AdjacencyMatrix — vertex→index mapping over a square weight table;
//     O(1) HasEdge/EdgeWeight, O(V²) space regardless of edge count.
//     Best for dense graphs or edge-existence-heavy workloads.
//
// Both implementations produce identical observable results for identical
// operation sequences; they diverge only in complexity. Pick one with
// NewAdjacencyList or NewAdjacencyMatrix and configure it through
// GraphOption values:
//
//	g := graph.NewAdjacencyList(graph.WithDirected(true))
//	_ = g.AddVertex("build")
//	_ = g.AddVertex("test")
//	_ = g.AddEdge("build", "test")                          // weight 1.0
//	_ = g.AddEdge("build", "test", graph.WithWeight(2.5))   // upsert
//
// Invariants, common to both backends:
//
//   - Vertex insertion is idempotent; re-adding an existing vertex is a no-op.
//   - Edge insertion is an idempotent upsert: re-adding an (from,to) pair
//     replaces the weight, it never creates a parallel edge.
//   - An edge may only reference vertices currently in the graph; AddEdge
//     never auto-creates endpoints (ErrVertexNotFound instead).
//   - In an undirected graph every logical edge is stored as two mirrored
//     directed entries sharing one weight, added and removed as a pair.
//   - Removing a vertex removes every edge incident to it; no dangling
//     edges survive.
//   - VertexCount and EdgeCount always agree with the live vertex/edge
//     set. EdgeCount counts logical edges: an undirected pair counts once.
//
// Determinism: Vertices(), NeighborIDs(), Neighbors() and Edges() return
// sorted results, so algorithm output built on them is reproducible.
//
// Concurrency: none. Graphs are plain mutable structures without internal
// locking; concurrent mutation without external synchronization is
// undefined behavior. Algorithms in sibling packages only read the graphs
// they are given.
//
// Errors:
//
//	ErrEmptyVertexID  – vertex ID is the empty string.
//	ErrVertexNotFound – operation referenced a missing vertex.
//	ErrEdgeNotFound   – queried edge does not exist.
//	ErrBadWeight      – edge weight is NaN or ±Inf.
package graph
