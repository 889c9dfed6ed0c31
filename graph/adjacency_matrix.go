// Package graph: adjacency-matrix backend.
//
// Storage: vertex→slot index over a square weight table plus a
// presence table (weight 0 is a legal edge, so presence is tracked
// separately). HasEdge/EdgeWeight are O(1); space is O(cap²)
// regardless of edge count. The table doubles each dimension when a
// new vertex exceeds capacity, copying existing weights across; slots
// freed by RemoveVertex are recycled before the table grows again.
// Best suited to dense graphs and edge-existence-heavy workloads.
package graph

import "sort"

// defaultMatrixCapacity is the initial table dimension when
// WithCapacity is not given.
const defaultMatrixCapacity = 16

// AdjacencyMatrix implements Graph with a two-dimensional weight table.
type AdjacencyMatrix struct {
	directed bool

	index map[string]int // vertex ID → slot
	ids   []string       // slot → vertex ID; "" marks a free slot
	free  []int          // recycled slots, reused before high-water growth
	used  int            // high-water mark of ever-allocated slots

	weight  [][]float64
	present [][]bool

	// edgeCount tracks logical edges; an undirected mirror pair counts once.
	edgeCount int
}

// compile-time check: *AdjacencyMatrix satisfies Graph.
var _ Graph = (*AdjacencyMatrix)(nil)

// NewAdjacencyMatrix creates an empty adjacency-matrix graph.
// Undirected by default; WithDirected(true) makes it directed and
// WithCapacity(n) pre-sizes the table.
// Complexity: O(cap²) for table allocation.
func NewAdjacencyMatrix(opts ...GraphOption) *AdjacencyMatrix {
	cfg := defaultGraphConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &AdjacencyMatrix{
		directed: cfg.directed,
		index:    make(map[string]int, cfg.capacity),
		ids:      make([]string, cfg.capacity),
	}
	g.weight, g.present = allocTables(cfg.capacity)

	return g
}

// allocTables allocates cap×cap weight and presence tables.
func allocTables(capacity int) ([][]float64, [][]bool) {
	weight := make([][]float64, capacity)
	present := make([][]bool, capacity)
	for i := range weight {
		weight[i] = make([]float64, capacity)
		present[i] = make([]bool, capacity)
	}

	return weight, present
}

// grow doubles the table dimension, copying existing rows. The
// vertex→slot mapping is unchanged: slots keep their indices, only
// the table around them is enlarged.
// Complexity: O(cap²).
func (g *AdjacencyMatrix) grow() {
	newCap := 2 * len(g.ids)
	weight, present := allocTables(newCap)
	for i := 0; i < g.used; i++ {
		copy(weight[i], g.weight[i])
		copy(present[i], g.present[i])
	}
	g.weight, g.present = weight, present

	ids := make([]string, newCap)
	copy(ids, g.ids)
	g.ids = ids
}

// takeSlot claims a slot for a new vertex: a recycled one if
// available, else the next high-water slot, growing the table first
// when capacity is exhausted.
func (g *AdjacencyMatrix) takeSlot() int {
	if n := len(g.free); n > 0 {
		slot := g.free[n-1]
		g.free = g.free[:n-1]

		return slot
	}
	if g.used == len(g.ids) {
		g.grow()
	}
	slot := g.used
	g.used++

	return slot
}

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized; O(cap²) when a growth is triggered.
func (g *AdjacencyMatrix) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return nil // no-op for existing vertex
	}
	slot := g.takeSlot()
	g.index[id] = slot
	g.ids[slot] = id

	return nil
}

// RemoveVertex deletes id and all incident edges, clears its row and
// column, and recycles the slot. Reports whether id was present.
// Complexity: O(cap).
func (g *AdjacencyMatrix) RemoveVertex(id string) bool {
	i, ok := g.index[id]
	if !ok {
		return false
	}

	// Outgoing row. In the undirected case this covers every incident
	// logical edge; clear the mirrored column cell alongside.
	for j := 0; j < g.used; j++ {
		if !g.present[i][j] {
			continue
		}
		g.present[i][j] = false
		g.edgeCount--
		if !g.directed && j != i {
			g.present[j][i] = false
		}
	}

	// Directed graphs may still hold incoming edges in the column.
	if g.directed {
		for j := 0; j < g.used; j++ {
			if g.present[j][i] {
				g.present[j][i] = false
				g.edgeCount--
			}
		}
	}

	delete(g.index, id)
	g.ids[i] = ""
	g.free = append(g.free, i)

	return true
}

// AddEdge inserts or updates the edge from→to (upsert). Both endpoints
// must already exist. Undirected graphs mirror the cell atomically.
// Complexity: O(1).
func (g *AdjacencyMatrix) AddEdge(from, to string, opts ...EdgeOption) error {
	e, err := buildEdge(from, to, opts...)
	if err != nil {
		return err
	}
	i, ok := g.index[from]
	if !ok {
		return ErrVertexNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return ErrVertexNotFound
	}

	if !g.present[i][j] {
		g.edgeCount++
	}
	g.present[i][j] = true
	g.weight[i][j] = e.Weight
	if !g.directed && i != j {
		g.present[j][i] = true
		g.weight[j][i] = e.Weight
	}

	return nil
}

// RemoveEdge deletes from→to and its mirror when undirected,
// reporting whether the edge was present.
// Complexity: O(1).
func (g *AdjacencyMatrix) RemoveEdge(from, to string) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}
	if !g.present[i][j] {
		return false
	}
	g.present[i][j] = false
	if !g.directed && i != j {
		g.present[j][i] = false
	}
	g.edgeCount--

	return true
}

// HasVertex reports membership of id. Complexity: O(1).
func (g *AdjacencyMatrix) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether from→to exists. Complexity: O(1).
func (g *AdjacencyMatrix) HasEdge(from, to string) bool {
	i, ok := g.index[from]
	if !ok {
		return false
	}
	j, ok := g.index[to]
	if !ok {
		return false
	}

	return g.present[i][j]
}

// EdgeWeight returns the weight of from→to or ErrEdgeNotFound.
// Complexity: O(1).
func (g *AdjacencyMatrix) EdgeWeight(from, to string) (float64, error) {
	i, ok := g.index[from]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	j, ok := g.index[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	if !g.present[i][j] {
		return 0, ErrEdgeNotFound
	}

	return g.weight[i][j], nil
}

// Neighbors returns the outgoing edges of id sorted by target ID.
// Complexity: O(cap + deg·log deg).
func (g *AdjacencyMatrix) Neighbors(id string) ([]Edge, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, g.used)
	for j := 0; j < g.used; j++ {
		if g.present[i][j] {
			out = append(out, Edge{From: id, To: g.ids[j], Weight: g.weight[i][j]})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].To < out[b].To })

	return out, nil
}

// NeighborIDs returns the sorted target IDs adjacent to id.
// Complexity: O(cap + deg·log deg).
func (g *AdjacencyMatrix) NeighborIDs(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, g.used)
	for j := 0; j < g.used; j++ {
		if g.present[i][j] {
			out = append(out, g.ids[j])
		}
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V·log V).
func (g *AdjacencyMatrix) Vertices() []string {
	out := make([]string, 0, len(g.index))
	for id := range g.index {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every logical edge sorted by (From, To). Undirected
// edges appear once, endpoints normalized lexicographically.
// Complexity: O(cap² + E·log E).
func (g *AdjacencyMatrix) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for i := 0; i < g.used; i++ {
		for j := 0; j < g.used; j++ {
			if !g.present[i][j] {
				continue
			}
			from, to := g.ids[i], g.ids[j]
			// Skip the mirror half of each undirected pair.
			if !g.directed && from > to {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: g.weight[i][j]})
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].From != out[b].From {
			return out[a].From < out[b].From
		}

		return out[a].To < out[b].To
	})

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *AdjacencyMatrix) VertexCount() int { return len(g.index) }

// EdgeCount returns the number of logical edges. Complexity: O(1).
func (g *AdjacencyMatrix) EdgeCount() int { return g.edgeCount }

// Directed reports the directedness fixed at construction.
func (g *AdjacencyMatrix) Directed() bool { return g.directed }

// Clone returns a deep, independent copy. Complexity: O(cap²).
func (g *AdjacencyMatrix) Clone() Graph {
	cp := &AdjacencyMatrix{
		directed:  g.directed,
		index:     make(map[string]int, len(g.index)),
		ids:       append([]string(nil), g.ids...),
		free:      append([]int(nil), g.free...),
		used:      g.used,
		edgeCount: g.edgeCount,
	}
	for id, slot := range g.index {
		cp.index[id] = slot
	}
	cp.weight, cp.present = allocTables(len(g.ids))
	for i := 0; i < g.used; i++ {
		copy(cp.weight[i], g.weight[i])
		copy(cp.present[i], g.present[i])
	}

	return cp
}
