package bfs

import (
	"fmt"

	"github.com/arvandor/lattis/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	graph   graph.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. The graph is read-only to BFS.
// Returns ErrGraphNil or ErrStartVertexNotFound on invalid input, or
// any error produced by the OnVisit hook.
// Complexity: O(V + E).
func BFS(g graph.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate input graph and start vertex.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Prepare walker with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 3. Seed the queue with the start vertex and drain it.
	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, and
// appends it to the FIFO queue. Marking on enqueue (not on dequeue)
// guarantees exactly-once visitation even when a vertex is reachable
// through several same-layer edges.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and fires the OnVisit hook.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit hook for %q: %w", item.id, err)
		}
	}

	return nil
}

// expand enqueues the unseen neighbors of item, honoring the filter
// and depth limit.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: NeighborIDs(%q): %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth >= 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
