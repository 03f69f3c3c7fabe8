// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus geometric accessors Segment and Length.
// Determinism:
//   - Edges() returns edges sorted by (U, V) asc.
// Concurrency:
//   - Endpoint existence checked under muVert, then mutations under muEdgeAdj.

package core

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"
)

// AddEdge connects a and b and returns the normalized edge.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Both endpoints must already exist (positions are required, so
//     unlike a plain graph there is no auto-creation).
//  3. Lock muEdgeAdj, reject duplicates, store edge and mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (Edge, error) {
	if a == "" || b == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if a == b {
		return Edge{}, fmt.Errorf("AddEdge(%s,%s): %w", a, b, ErrLoopNotAllowed)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[a]; !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s,%s): endpoint %s: %w", a, b, a, ErrVertexNotFound)
	}
	if _, ok := g.vertices[b]; !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s,%s): endpoint %s: %w", a, b, b, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := NewEdge(a, b)
	if _, dup := g.edges[e]; dup {
		return Edge{}, fmt.Errorf("AddEdge(%s): %w", e, ErrDuplicateEdge)
	}
	g.edges[e] = struct{}{}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return e, nil
}

// RemoveEdge deletes the edge {a,b} and its adjacency mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := NewEdge(a, b)
	if _, ok := g.edges[e]; !ok {
		return fmt.Errorf("RemoveEdge(%s): %w", e, ErrEdgeNotFound)
	}
	delete(g.edges, e)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return nil
}

// HasEdge reports whether {a,b} is an edge. Order of a and b is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[NewEdge(a, b)]

	return ok
}

// Edges returns all edges sorted by (U, V) asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return lessEdge(out[i], out[j]) })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Segment returns the endpoint positions of e, in (U, V) order.
// Errors: ErrEdgeNotFound, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Segment(e Edge) (r2.Point, r2.Point, error) {
	if !g.HasEdge(e.U, e.V) {
		return r2.Point{}, r2.Point{}, fmt.Errorf("Segment(%s): %w", e, ErrEdgeNotFound)
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	a, okA := g.vertices[e.U]
	b, okB := g.vertices[e.V]
	if !okA || !okB {
		return r2.Point{}, r2.Point{}, fmt.Errorf("Segment(%s): %w", e, ErrVertexNotFound)
	}

	return a, b, nil
}

// Length returns the Euclidean length of e.
// Errors: as Segment.
func (g *Graph) Length(e Edge) (float64, error) {
	a, b, err := g.Segment(e)
	if err != nil {
		return 0, err
	}
	return b.Sub(a).Norm(), nil
}
