// Package bfs provides breadth-first traversal over any graph.Graph,
// returning visit order, hop distances, and parent links.
//
// BFS explores vertices in increasing hop distance from a start
// vertex using a FIFO queue and a visited set, so every reachable
// vertex is visited exactly once and traversal terminates even on
// cyclic graphs. Visit order within one depth layer follows the
// graph's NeighborIDs enumeration, which is sorted — traversals are
// therefore deterministic.
//
// Options:
//
//   - WithOnVisit(fn)         per-visit hook; a returned error aborts traversal
//   - WithMaxDepth(limit)     do not enqueue vertices beyond the given depth
//   - WithFilterNeighbor(fn)  skip neighbors for which fn returns false
//
// Complexity: O(V + E) time, O(V) memory, assuming O(1) hooks.
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start vertex absent
//	any error returned by an OnVisit hook
package bfs
