// Package core defines the central Graph, Vertex and Edge types of the
// planar mesh, plus the sentinel errors shared by every mesh operation.
//
// This file declares Vertex, Edge, Graph, GraphOption, the sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/golang/geo/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates an attempt to register a vertex ID twice.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered pair is already connected.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrDanglingEndpoint indicates a seed edge references an unknown vertex.
	ErrDanglingEndpoint = errors.New("core: dangling edge endpoint")

	// ErrBadPosition indicates a NaN or infinite vertex coordinate.
	ErrBadPosition = errors.New("core: vertex position is not finite")

	// ErrEdgesCross indicates two edges share a point other than a common endpoint.
	ErrEdgesCross = errors.New("core: edges cross")
)

// Vertex is a positioned node of the mesh.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Pos is the vertex position in the plane.
	Pos r2.Point
}

// Edge is an unordered vertex pair, normalized so that U < V.
// Use NewEdge to build one; the zero Edge is never stored in a Graph.
type Edge struct {
	U, V string
}

// NewEdge returns the normalized edge joining a and b.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// Has reports whether id is one of the endpoints.
func (e Edge) Has(id string) bool { return e.U == id || e.V == id }

// Other returns the endpoint opposite id. If id is not an endpoint the
// result is "".
func (e Edge) Other(id string) string {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return ""
	}
}

// String renders the edge as "U-V".
func (e Edge) String() string { return e.U + "-" + e.V }

// lessEdge orders edges by (U, V); used by every sorted edge listing.
func lessEdge(a, b Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertexPrefix sets the prefix of IDs allocated by AddPoint
// (default "v", giving "v1", "v2", ...).
func WithVertexPrefix(prefix string) GraphOption {
	return func(g *Graph) {
		if prefix != "" {
			g.vertexPrefix = prefix
		}
	}
}

// defaultVertexPrefix prefixes IDs allocated by AddPoint.
const defaultVertexPrefix = "v"

// Graph is the planar mesh graph.
//
// muVert protects the vertex catalog and the ID counter; muEdgeAdj protects
// the edge set and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, nextVertexID
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	vertexPrefix string
	nextVertexID uint64

	// Storage
	vertices map[string]r2.Point // vertex ID → position
	edges    map[Edge]struct{}   // normalized edge set

	// adjacency[id][neighborID] = struct{}{}
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexPrefix: defaultVertexPrefix,
		vertices:     make(map[string]r2.Point),
		edges:        make(map[Edge]struct{}),
		adjacency:    make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
