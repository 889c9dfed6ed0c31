// Package graph: ADT contract, edge values, sentinel errors, and the
// functional options shared by both storage implementations.
package graph

import (
	"errors"
	"math"
)

// DefaultWeight is assigned to edges added without WithWeight, so an
// unweighted use of the graph still yields meaningful path costs.
const DefaultWeight = 1.0

// Sentinel errors for graph operations. Match with errors.Is.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates a queried edge does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a NaN or ±Inf edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")
)

// Edge is a weighted, directed connection between two vertices.
// Undirected graphs store each logical edge as two mirrored entries
// sharing one weight; Edges() reports the pair once, with From/To
// normalized into lexicographic order.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the target vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Graph is the storage-independent contract implemented by
// AdjacencyList and AdjacencyMatrix. Algorithms accept any Graph and
// treat it as read-only.
type Graph interface {
	// AddVertex inserts a vertex if missing. Idempotent: adding an
	// existing vertex is a no-op, not an error.
	// Returns ErrEmptyVertexID for the empty string.
	AddVertex(id string) error

	// RemoveVertex deletes id and every edge incident to it.
	// Reports whether the vertex was present.
	RemoveVertex(id string) bool

	// AddEdge inserts or updates the edge from→to (idempotent upsert;
	// re-adding replaces the weight). The weight defaults to
	// DefaultWeight unless WithWeight is given. In an undirected graph
	// the mirrored entry is created/updated in the same call.
	// Returns ErrVertexNotFound if either endpoint is absent,
	// ErrBadWeight for a non-finite weight.
	AddEdge(from, to string, opts ...EdgeOption) error

	// RemoveEdge deletes the edge from→to (and its mirror, if
	// undirected). Reports whether the edge was present.
	RemoveEdge(from, to string) bool

	// HasVertex reports whether id exists. O(1).
	HasVertex(id string) bool

	// HasEdge reports whether the edge from→to exists. In an
	// undirected graph HasEdge(a,b) == HasEdge(b,a).
	HasEdge(from, to string) bool

	// EdgeWeight returns the weight of edge from→to, or
	// ErrEdgeNotFound if it does not exist.
	EdgeWeight(from, to string) (float64, error)

	// Neighbors returns the outgoing edges of id, sorted by target ID.
	// Returns ErrVertexNotFound if id is absent.
	Neighbors(id string) ([]Edge, error)

	// NeighborIDs returns the unique, sorted target IDs adjacent to id.
	// Returns ErrVertexNotFound if id is absent.
	NeighborIDs(id string) ([]string, error)

	// Vertices returns all vertex IDs, sorted lexicographically.
	Vertices() []string

	// Edges returns every logical edge, sorted by (From, To).
	// Undirected edges appear once with endpoints normalized.
	Edges() []Edge

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// EdgeCount returns the number of logical edges. O(1).
	EdgeCount() int

	// Directed reports the directedness fixed at construction time.
	Directed() bool

	// Clone returns a deep, independent copy with the same
	// representation, directedness, vertices and edges.
	Clone() Graph
}

// GraphOption configures a graph at construction time.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time settings before allocation.
type graphConfig struct {
	directed bool
	capacity int
}

// defaultGraphConfig: undirected, matrix capacity 16.
func defaultGraphConfig() graphConfig {
	return graphConfig{directed: false, capacity: defaultMatrixCapacity}
}

// WithDirected fixes the directedness of the graph for its lifetime
// (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithCapacity pre-sizes the AdjacencyMatrix weight table to hold n
// vertices before the first doubling growth. Values < 1 are ignored.
// AdjacencyList accepts but ignores this option.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n >= 1 {
			c.capacity = n
		}
	}
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight (default DefaultWeight).
// Non-finite weights are rejected by AddEdge with ErrBadWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// buildEdge applies edge options and enforces the finite-weight policy.
func buildEdge(from, to string, opts ...EdgeOption) (Edge, error) {
	e := Edge{From: from, To: to, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return Edge{}, ErrBadWeight
	}

	return e, nil
}
