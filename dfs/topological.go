// Package dfs: topological sort and cycle detection over directed
// graphs, via three-color DFS.
//
// TopologicalSort computes a linear ordering of all vertices such that
// for every directed edge u→v, u appears before v. A cycle makes such
// an ordering impossible; the sort fails with ErrCycleDetected as soon
// as a back-edge into the Gray (in-progress) path is found, and never
// loops on cyclic input. Only the existence of a cycle is reported,
// not its membership — use HasCycle when a boolean answer reads better
// at the call site.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

import (
	"errors"
	"fmt"

	"github.com/arvandor/lattis/graph"
)

// sorter encapsulates state for one topological-sort traversal.
type sorter struct {
	graph graph.Graph
	state map[string]int // White / Gray / Black per vertex
	order []string       // post-order sequence, reversed at the end
}

// TopologicalSort computes a dependency ordering of all vertices in g,
// covering disconnected components. Roots are taken in sorted vertex
// order, so the result is deterministic for a given graph.
// Returns ErrGraphNil for a nil graph, ErrUndirectedGraph for an
// undirected one, and ErrCycleDetected if no ordering exists.
// Complexity: O(V + E).
func TopologicalSort(g graph.Graph) ([]string, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2. Initialize sorter state; every vertex starts White.
	verts := g.Vertices()
	s := &sorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}

	// 3. Drive DFS from every unvisited vertex.
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse the post-order to obtain the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a three-color DFS from id: Gray marks the current
// recursion path, and meeting a Gray vertex again means a back-edge —
// a cycle. Vertices are appended to the post-order only after every
// descendant finished (turned Black).
func (s *sorter) visit(id string) error {
	switch s.state[id] {
	case Gray:
		// Back-edge into the in-progress path.
		return ErrCycleDetected
	case Black:
		return nil // already fully explored
	}
	s.state[id] = Gray

	neighbors, err := s.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range neighbors {
		if err = s.visit(nbr); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}

// HasCycle reports whether the directed graph g contains a cycle.
// It runs the same three-color DFS as TopologicalSort but folds the
// structural failure into a boolean, for callers who want to pre-test
// orderability without branching on an error value.
// Returns ErrGraphNil or ErrUndirectedGraph on invalid input.
// Complexity: O(V + E).
func HasCycle(g graph.Graph) (bool, error) {
	switch _, err := TopologicalSort(g); {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
