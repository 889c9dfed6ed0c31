package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvandor/lattis/dijkstra"
	"github.com/arvandor/lattis/graph"
)

// weightedEdge is a compact fixture row.
type weightedEdge struct {
	from, to string
	w        float64
}

// build constructs a graph from weighted edges, auto-adding vertices.
func build(directed bool, edges []weightedEdge) graph.Graph {
	g := graph.NewAdjacencyList(graph.WithDirected(directed))
	for _, e := range edges {
		_ = g.AddVertex(e.from)
		_ = g.AddVertex(e.to)
		_ = g.AddEdge(e.from, e.to, graph.WithWeight(e.w))
	}

	return g
}

// TestDijkstra_EmptySource verifies the missing-source check fires
// before any graph inspection.
func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

// TestDijkstra_NilGraph verifies a nil graph is rejected.
func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)
}

// TestDijkstra_SourceNotFound verifies an absent source is rejected.
func TestDijkstra_SourceNotFound(t *testing.T) {
	g := graph.NewAdjacencyList()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("ghost"))
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

// TestDijkstra_SingleVertex covers the trivial graph.
func TestDijkstra_SingleVertex(t *testing.T) {
	g := graph.NewAdjacencyList()
	require.NoError(t, g.AddVertex("A"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0}, dist)
	assert.Nil(t, prev, "prev is only built under WithReturnPath")
}

// TestDijkstra_ShorterIndirectPath runs the canonical relaxation
// scenario: the direct A→C edge (4) loses to the A→B→C route (3).
func TestDijkstra_ShorterIndirectPath(t *testing.T) {
	g := build(true, []weightedEdge{
		{"A", "B", 1},
		{"A", "C", 4},
		{"B", "C", 2},
		{"C", "D", 1},
	})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, dist)

	// Predecessor chain D ← C ← B ← A.
	assert.Equal(t, "C", prev["D"])
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "", prev["A"], "source has no predecessor")
}

// TestDijkstra_Unreachable verifies disconnected vertices keep +Inf and
// an empty predecessor.
func TestDijkstra_Unreachable(t *testing.T) {
	g := build(true, []weightedEdge{{"A", "B", 2}})
	require.NoError(t, g.AddVertex("island"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["island"], 1))
	assert.Equal(t, "", prev["island"])
}

// TestDijkstra_Undirected verifies traversal follows undirected edges
// in both directions.
func TestDijkstra_Undirected(t *testing.T) {
	g := build(false, []weightedEdge{
		{"A", "B", 3},
		{"B", "C", 4},
	})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 7, "B": 4, "C": 0}, dist)
}

// TestDijkstra_ZeroWeightEdges verifies weight 0 is a legal, traversed
// weight.
func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := build(true, []weightedEdge{
		{"A", "B", 0},
		{"B", "C", 0},
	})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0, "C": 0}, dist)
}

// TestDijkstra_EqualCostPaths verifies ties keep the first predecessor
// found (strict-improvement relaxation).
func TestDijkstra_EqualCostPaths(t *testing.T) {
	// Both A→B→D and A→C→D cost 2; B sorts before C, so B relaxes D
	// first and C's equal offer is rejected.
	g := build(true, []weightedEdge{
		{"A", "B", 1},
		{"A", "C", 1},
		{"B", "D", 1},
		{"C", "D", 1},
	})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["D"])
	assert.Equal(t, "B", prev["D"])
}

// TestDijkstra_StaleEntriesSkipped builds a graph that forces duplicate
// heap entries and checks the final distances stay minimal.
func TestDijkstra_StaleEntriesSkipped(t *testing.T) {
	// A's direct edge to D (10) is superseded twice: via B (total 5),
	// then via C (total 3). D gets three heap entries; only the last
	// queued (smallest) may win.
	g := build(true, []weightedEdge{
		{"A", "D", 10},
		{"A", "B", 1},
		{"B", "D", 4},
		{"A", "C", 2},
		{"C", "D", 1},
	})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist["D"])
	assert.Equal(t, "C", prev["D"])
}

// TestDijkstra_MatrixBackend reruns the canonical scenario on the
// matrix backend.
func TestDijkstra_MatrixBackend(t *testing.T) {
	g := graph.NewAdjacencyMatrix(graph.WithDirected(true))
	for _, v := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", graph.WithWeight(1)))
	require.NoError(t, g.AddEdge("A", "C", graph.WithWeight(4)))
	require.NoError(t, g.AddEdge("B", "C", graph.WithWeight(2)))
	require.NoError(t, g.AddEdge("C", "D", graph.WithWeight(1)))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, dist)
}

// TestDijkstra_LargerGrid sanity-checks a 5×5 grid with unit weights:
// the distance to each cell is its Manhattan distance from the corner.
func TestDijkstra_LargerGrid(t *testing.T) {
	const n = 5
	id := func(r, c int) string { return string(rune('a'+r)) + string(rune('0'+c)) }

	g := graph.NewAdjacencyList(graph.WithDirected(true))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			require.NoError(t, g.AddVertex(id(r, c)))
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r+1 < n {
				require.NoError(t, g.AddEdge(id(r, c), id(r+1, c)))
			}
			if c+1 < n {
				require.NoError(t, g.AddEdge(id(r, c), id(r, c+1)))
			}
		}
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(id(0, 0)))
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			assert.Equal(t, float64(r+c), dist[id(r, c)], "cell %s", id(r, c))
		}
	}
}
