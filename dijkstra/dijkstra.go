package dijkstra

import (
	"fmt"
	"math"

	"github.com/arvandor/lattis/graph"
	"github.com/arvandor/lattis/heap"
)

// queueEntry pairs a vertex with the tentative distance it was queued
// at. Lazy decrease-key means several entries may exist per vertex;
// only the first (smallest) pop per vertex is acted upon.
type queueEntry struct {
	id   string
	dist float64
}

// Dijkstra computes shortest distances from the source vertex
// (Source option) to all other vertices of g. Edge weights must be
// non-negative; this precondition is documented, not checked.
//
// Returns:
//
//   - dist: vertex ID → minimum distance; unreachable vertices carry
//     math.Inf(1).
//   - prev: predecessor map if WithReturnPath was given (nil
//     otherwise); prev[v] == u means the shortest path to v arrives
//     via u, and prev[v] == "" means v has no predecessor (the source,
//     or unreachable).
//   - err:  validation failure, checked in order: ErrEmptySource,
//     ErrGraphNil, ErrSourceNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g graph.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1. Build and validate options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrSourceNotFound
	}

	// 2. Initialize state and run the main loop.
	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution. The
// heap instance is private to this invocation and never shared.
type runner struct {
	g       graph.Graph
	dist    map[string]float64
	prev    map[string]string // nil unless ReturnPath
	visited map[string]bool   // distance finalized
	pq      *heap.Heap[queueEntry]
}

// newRunner sets every tentative distance to +Inf except the source
// (0), and seeds the min-heap with the source entry.
func newRunner(g graph.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      heap.New(func(a, b queueEntry) bool { return a.dist < b.dist }),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = "" // no predecessor yet
		}
	}
	r.dist[cfg.Source] = 0
	r.pq.Push(queueEntry{id: cfg.Source, dist: 0})

	return r
}

// process repeatedly extracts the minimum-distance vertex and relaxes
// its outgoing edges, until the heap drains. Stale entries (vertices
// already finalized under a smaller distance) are skipped.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		entry, err := r.pq.Pop()
		if err != nil {
			return err // unreachable: guarded by Len
		}

		// Skip stale lazily-queued duplicates.
		if r.visited[entry.id] {
			continue
		}
		r.visited[entry.id] = true

		if err = r.relax(entry.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the tentative distance of every neighbor
// of u; each strict improvement records the new distance and
// predecessor and pushes a fresh heap entry.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: Neighbors(%q): %w", u, err)
	}

	for _, e := range neighbors {
		candidate := r.dist[u] + e.Weight
		// Strict improvement only; equal-cost paths keep the first
		// predecessor found and push no duplicate.
		if candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(queueEntry{id: e.To, dist: candidate})
	}

	return nil
}
