// Package dijkstra implements single-source shortest paths on weighted
// graphs with non-negative edge weights.
//
// Dijkstra processes vertices in order of increasing tentative
// distance using the binary min-heap from the heap package. Instead of
// a decrease-key operation, the implementation is deliberately "lazy":
// whenever a shorter path to an already-queued vertex is found, a
// fresh entry is pushed and the stale one is simply skipped when it
// eventually pops (its vertex is already finalized by then). This
// keeps the heap simple at the cost of up to O(E) queued entries.
//
// Precondition: all edge weights are non-negative. This is a
// documented caller responsibility — it is not checked at runtime, and
// results are unspecified if it is violated.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is extracted at most once,
//     each relaxation may push one entry, each heap operation is
//     O(log V) (up to O(log(V+E)), simplified).
//   - Space: O(V + E) — distance/predecessor maps plus the lazily
//     duplicated heap entries.
//
// Errors:
//
//	ErrGraphNil       – nil graph
//	ErrEmptySource    – no Source option given
//	ErrSourceNotFound – source vertex absent from the graph
package dijkstra
