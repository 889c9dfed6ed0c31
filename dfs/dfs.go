package dfs

import (
	"fmt"

	"github.com/arvandor/lattis/graph"
)

// walker encapsulates mutable state for one DFS run.
type walker struct {
	graph   graph.Graph
	opts    Options
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on g. In single-source mode it
// starts from start; with WithFullTraversal it covers every
// disconnected component and start only seeds the first tree (it may
// be empty to let sorted vertex order pick the roots). The graph is
// read-only to DFS.
// Returns ErrGraphNil or ErrStartVertexNotFound on invalid input, or
// any error produced by a hook.
// Complexity: O(V + E).
func DFS(g graph.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. A given start vertex must exist; forest mode only tolerates
	// the empty string.
	if start != "" || !o.FullTraversal {
		if !g.HasVertex(start) {
			return nil, ErrStartVertexNotFound
		}
	}

	// 3. Initialize result with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 4. Traverse: a single tree, or the whole forest in sorted order.
	if o.FullTraversal {
		if start != "" {
			if err := w.traverse(start, 0); err != nil {
				return nil, err
			}
		}
		for _, v := range g.Vertices() {
			if !w.visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return nil, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into its
// unvisited neighbors, honoring the depth limit, filter, and hooks.
func (w *walker) traverse(id string, depth int) error {
	// 1. Mark visited, record discovery order and depth.
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth

	// 2. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 3. Recurse into neighbors unless the depth limit is reached.
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
		for _, nbr := range neighbors {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				continue
			}
			if !w.visited[nbr] {
				w.res.Parent[nbr] = id
				if err = w.traverse(nbr, depth+1); err != nil {
					return err
				}
			}
		}
	}

	// 4. Post-order hook, after all descendants finished.
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	return nil
}
