// Package bfs: options, result type, and sentinel errors.
package bfs

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures optional behavior of BFS traversal.
type Option func(*Options)

// Options holds configurable parameters for BFS traversal.
// Complexity stays O(V+E) when hooks and filters are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is dequeued and
	// recorded. Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, stops expansion beyond the given hop
	// depth. Depth 0 visits only the start vertex. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor; returning
	// false skips that neighbor entirely.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns Options with no hook, no depth limit, and no
// neighbor filtering.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as the per-visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal to the given hop depth.
// A limit of 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs fn as the neighbor filter.
// If fn(id) == false, that neighbor is not enqueued.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Order records vertices in the sequence they were visited.
	Order []string

	// Depth maps each visited vertex to its hop distance from the start.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was first
	// discovered from; the start vertex has no entry.
	Parent map[string]string
}
