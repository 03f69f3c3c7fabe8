// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexList() return IDs sorted lexicographically ascending.
//   - AddPoint allocates IDs from a monotonic counter, skipping taken IDs.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/golang/geo/r2"
)

// finite reports whether both coordinates are finite numbers.
func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// AddVertex registers a new vertex at pos.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and finite position.
//   - Stage 2: Under muVert write lock, reject an existing ID, then register.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadPosition, ErrVertexExists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, pos r2.Point) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !finite(pos) {
		return fmt.Errorf("AddVertex(%s): %w", id, ErrBadPosition)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("AddVertex(%s): %w", id, ErrVertexExists)
	}
	g.vertices[id] = pos

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// AddPoint registers a vertex at pos under a freshly allocated ID
// (prefix + counter, e.g. "v7") and returns that ID.
// IDs already taken by explicitly named vertices are skipped.
//
// Errors:
//   - ErrBadPosition.
//
// Complexity: O(1) amortized.
func (g *Graph) AddPoint(pos r2.Point) (string, error) {
	if !finite(pos) {
		return "", fmt.Errorf("AddPoint: %w", ErrBadPosition)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	var id string
	for {
		g.nextVertexID++
		id = g.vertexPrefix + strconv.FormatUint(g.nextVertexID, 10)
		if _, taken := g.vertices[id]; !taken {
			break
		}
	}
	g.vertices[id] = pos

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return id, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Position returns the position of vertex id.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Position(id string) (r2.Point, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	p, ok := g.vertices[id]
	if !ok {
		return r2.Point{}, fmt.Errorf("Position(%s): %w", id, ErrVertexNotFound)
	}

	return p, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexList returns all vertices with positions, sorted by ID.
// Complexity: O(V log V).
func (g *Graph) VertexList() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Vertex, 0, len(g.vertices))
	for id, p := range g.vertices {
		out = append(out, Vertex{ID: id, Pos: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the sorted IDs adjacent to id.
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nb, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%s): %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(nb))
	for n := range nb {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nb, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrVertexNotFound)
	}

	return len(nb), nil
}

// Bounds returns the bounding rectangle of all vertex positions
// (r2.EmptyRect for an empty graph).
// Complexity: O(V).
func (g *Graph) Bounds() r2.Rect {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	r := r2.EmptyRect()
	for _, p := range g.vertices {
		r = r.AddPoint(p)
	}

	return r
}
