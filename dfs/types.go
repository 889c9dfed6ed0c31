// Package dfs: visitation states, options, result type, and sentinel
// errors shared by DFS, TopologicalSort, and HasCycle.
package dfs

import "errors"

// Three-color visitation states for cycle-aware DFS.
const (
	// White: the vertex has not been visited yet.
	White = iota
	// Gray: the vertex is on the current recursion path (in progress).
	Gray
	// Black: the vertex and all its descendants are fully explored.
	Black
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUndirectedGraph indicates TopologicalSort or HasCycle was
	// given an undirected graph; dependency ordering is only defined
	// over directed edges.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")

	// ErrCycleDetected indicates a back-edge into the current DFS path
	// was found: the graph contains at least one cycle and cannot be
	// topologically ordered.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when hooks and filters are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked on vertex discovery (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// finish (post-order). Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// Depth 0 visits only the start vertex. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor; returning
	// false skips that subtree.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex
	// in sorted order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no
// filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth to limit.
// A limit of 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs fn as the neighbor filter.
// If fn(id) == false, that subtree is skipped.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal: DFS restarts from each
// unvisited vertex, so disconnected components are covered too.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []string

	// Depth maps each visited vertex to its recursion depth from the
	// root it was discovered under.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was discovered
	// from; traversal roots have no entry.
	Parent map[string]string
}
