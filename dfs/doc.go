// Package dfs provides depth-first traversal over any graph.Graph,
// plus the DFS-based directed-graph utilities built on three-color
// marking: topological sort and cycle detection.
//
// DFS(g, start, opts...) walks every vertex reachable from start
// exactly once, recursively, with optional pre-order and post-order
// hooks, a depth limit, neighbor filtering, and a full-graph (forest)
// mode covering disconnected components. A visited set guarantees
// termination on cyclic input. Neighbor order follows the graph's
// sorted NeighborIDs enumeration, so traversals are deterministic.
//
// TopologicalSort(g) linearizes a directed graph so that every edge
// u→v has u before v, failing with ErrCycleDetected the moment a
// back-edge into the in-progress (Gray) path is found. HasCycle(g)
// answers the orderability question without the error branch.
//
// Complexity: O(V + E) time, O(V) memory for all entry points,
// assuming O(1) hooks.
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start vertex absent
//	ErrUndirectedGraph     – topological sort on an undirected graph
//	ErrCycleDetected       – the directed graph cannot be linearized
//	any error returned by an OnVisit or OnExit hook
package dfs
