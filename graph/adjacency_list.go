// Package graph: adjacency-list backend.
//
// Storage: vertex ID → (neighbor ID → weight). Space O(V+E);
// HasEdge/EdgeWeight O(1) amortized via map lookups; Neighbors costs
// O(deg·log deg) for the sorted copy. Best suited to sparse graphs.
package graph

import "sort"

// AdjacencyList implements Graph with a per-vertex outgoing-edge map.
type AdjacencyList struct {
	directed bool

	// adj[from][to] = weight. A vertex is present iff it has a bucket,
	// so vertex membership and adjacency can never drift apart.
	adj map[string]map[string]float64

	// edgeCount tracks logical edges: an undirected mirror pair counts
	// once. Updated in lockstep with every adj mutation.
	edgeCount int
}

// compile-time check: *AdjacencyList satisfies Graph.
var _ Graph = (*AdjacencyList)(nil)

// NewAdjacencyList creates an empty adjacency-list graph.
// Undirected by default; pass WithDirected(true) for a directed graph.
// Complexity: O(1).
func NewAdjacencyList(opts ...GraphOption) *AdjacencyList {
	cfg := defaultGraphConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AdjacencyList{
		directed: cfg.directed,
		adj:      make(map[string]map[string]float64),
	}
}

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1).
func (g *AdjacencyList) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.adj[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adj[id] = make(map[string]float64)

	return nil
}

// RemoveVertex deletes id and all incident edges, reporting presence.
// Complexity: O(V) directed (incoming scan), O(deg) undirected.
func (g *AdjacencyList) RemoveVertex(id string) bool {
	nbrs, ok := g.adj[id]
	if !ok {
		return false
	}

	// Outgoing edges. In the undirected case the bucket holds every
	// incident edge, so dropping mirrors here covers the whole cascade.
	for to := range nbrs {
		g.edgeCount--
		if !g.directed && to != id {
			delete(g.adj[to], id)
		}
	}
	delete(g.adj, id)

	// Directed graphs may still hold incoming edges elsewhere.
	if g.directed {
		for _, bucket := range g.adj {
			if _, in := bucket[id]; in {
				delete(bucket, id)
				g.edgeCount--
			}
		}
	}

	return true
}

// AddEdge inserts or updates the edge from→to (upsert). Both endpoints
// must already exist. Undirected graphs mirror the entry atomically.
// Complexity: O(1) amortized.
func (g *AdjacencyList) AddEdge(from, to string, opts ...EdgeOption) error {
	e, err := buildEdge(from, to, opts...)
	if err != nil {
		return err
	}
	if _, ok := g.adj[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[to]; !ok {
		return ErrVertexNotFound
	}

	// Count only genuinely new edges; a re-add is a weight update.
	if _, exists := g.adj[from][to]; !exists {
		g.edgeCount++
	}
	g.adj[from][to] = e.Weight
	if !g.directed && from != to {
		g.adj[to][from] = e.Weight
	}

	return nil
}

// RemoveEdge deletes from→to and its mirror when undirected,
// reporting whether the edge was present.
// Complexity: O(1).
func (g *AdjacencyList) RemoveEdge(from, to string) bool {
	nbrs, ok := g.adj[from]
	if !ok {
		return false
	}
	if _, ok = nbrs[to]; !ok {
		return false
	}
	delete(nbrs, to)
	if !g.directed && from != to {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return true
}

// HasVertex reports membership of id. Complexity: O(1).
func (g *AdjacencyList) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether from→to exists. Complexity: O(1).
func (g *AdjacencyList) HasEdge(from, to string) bool {
	nbrs, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}

// EdgeWeight returns the weight of from→to or ErrEdgeNotFound.
// Complexity: O(1).
func (g *AdjacencyList) EdgeWeight(from, to string) (float64, error) {
	nbrs, ok := g.adj[from]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	w, ok := nbrs[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the outgoing edges of id sorted by target ID.
// Complexity: O(deg·log deg).
func (g *AdjacencyList) Neighbors(id string) ([]Edge, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the sorted target IDs adjacent to id.
// Complexity: O(deg·log deg).
func (g *AdjacencyList) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for to := range nbrs {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V·log V).
func (g *AdjacencyList) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every logical edge sorted by (From, To). Undirected
// edges appear once, endpoints normalized lexicographically.
// Complexity: O(E·log E).
func (g *AdjacencyList) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			// Skip the mirror half of each undirected pair.
			if !g.directed && from > to {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *AdjacencyList) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of logical edges. Complexity: O(1).
func (g *AdjacencyList) EdgeCount() int { return g.edgeCount }

// Directed reports the directedness fixed at construction.
func (g *AdjacencyList) Directed() bool { return g.directed }

// Clone returns a deep, independent copy. Complexity: O(V+E).
func (g *AdjacencyList) Clone() Graph {
	cp := &AdjacencyList{
		directed:  g.directed,
		adj:       make(map[string]map[string]float64, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for id, nbrs := range g.adj {
		bucket := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			bucket[to] = w
		}
		cp.adj[id] = bucket
	}

	return cp
}
