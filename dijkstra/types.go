// Package dijkstra: options and sentinel errors.
package dijkstra

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrSourceNotFound indicates the configured source vertex does not
	// exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")
)

// Options configures a Dijkstra run.
type Options struct {
	// Source is the ID of the starting vertex. Required.
	Source string

	// ReturnPath controls whether the predecessor map is built and
	// returned; when false the prev result is nil.
	ReturnPath bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options for the given source with no
// predecessor map requested.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Source sets the starting vertex ID. Required on every call.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables the predecessor map in the result, for path
// reconstruction by walking prev[v] back to the source.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
