// File: types.go
// Role: Options and sentinel errors for street-distance queries.
//
// Edge cost is the Euclidean length of the street segment, so distances are
// walking distances in world units.
//
// Options:
//
//	– Source:       ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on distances to explore; vertices beyond this are skipped.
//	– Avoid:        predicate marking impassable edges (e.g. wall segments).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Center"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["g3"], dijkstra.PathTo(prev, "Center", "g3"))

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/townmesh/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string               // The ID of the source vertex
	ReturnPath  bool                 // Whether to return the predecessor map
	MaxDistance float64              // Maximum distance to explore
	Avoid       func(core.Edge) bool // Impassable edges; nil means none
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithAvoid marks edges for which fn returns true as impassable.
func WithAvoid(fn func(core.Edge) bool) Option {
	return func(o *Options) {
		o.Avoid = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults for
// the given source vertex ID:
//   - ReturnPath:  false.
//   - MaxDistance: +Inf (explore all reachable).
//   - Avoid:       nil (every street is passable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
