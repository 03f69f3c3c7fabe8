// SPDX-License-Identifier: MIT
// Package: townmesh/cycle
//
// splitter.go — Splitter type, construction and read-only queries.

package cycle

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
)

// CutSegment asks to replace edge From–To by the chain
// From → Points[0] → … → Points[n-1] → To. Every point must lie strictly
// inside the edge; the points may be given in any order and are sorted
// along the edge starting at From.
type CutSegment struct {
	From, To string
	Points   []r2.Point
}

// Splitter owns cycles over a backing graph. The graph is mutated in place;
// callers that need the seed intact should pass a clone.
// A Splitter is not safe for concurrent mutation.
type Splitter struct {
	g      *core.Graph
	rings  []*ring
	byEdge map[core.Edge][]int
}

// NewSplitter validates every cycle against g and returns a Splitter holding
// them in the given order. A cycle is a list of at least three distinct,
// existing vertex IDs whose consecutive pairs (including last→first) are
// edges of g.
//
// Errors: ErrInvalidCycle (wrapped with the cycle index).
// Complexity: O(Σ len(cycle)).
func NewSplitter(g *core.Graph, cycles ...[]string) (*Splitter, error) {
	if g == nil {
		return nil, fmt.Errorf("NewSplitter: nil graph: %w", ErrInvalidCycle)
	}
	s := &Splitter{g: g, byEdge: make(map[core.Edge][]int)}
	for i, ids := range cycles {
		if err := validateCycle(g, ids); err != nil {
			return nil, fmt.Errorf("NewSplitter: cycle #%d: %w", i, err)
		}
	}
	for _, ids := range cycles {
		s.addRing(newRing(ids))
	}

	return s, nil
}

// AddCycle validates ids and registers it as a new cycle, returning its index.
func (s *Splitter) AddCycle(ids []string) (int, error) {
	if err := validateCycle(s.g, ids); err != nil {
		return -1, fmt.Errorf("AddCycle: %w", err)
	}
	return s.addRing(newRing(ids)), nil
}

func validateCycle(g *core.Graph, ids []string) error {
	if len(ids) < 3 {
		return fmt.Errorf("%d vertices < 3: %w", len(ids), ErrInvalidCycle)
	}
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			return fmt.Errorf("vertex %q repeats: %w", id, ErrInvalidCycle)
		}
		seen[id] = true
		nx := ids[(i+1)%len(ids)]
		if !g.HasEdge(id, nx) {
			return fmt.Errorf("%s-%s is not an edge: %w", id, nx, ErrInvalidCycle)
		}
	}
	return nil
}

func (s *Splitter) addRing(r *ring) int {
	idx := len(s.rings)
	s.rings = append(s.rings, r)
	for _, e := range r.edges() {
		s.byEdge[e] = append(s.byEdge[e], idx)
	}
	return idx
}

// Graph returns the backing graph.
func (s *Splitter) Graph() *core.Graph { return s.g }

// EdgeSet returns the live edge collection of the backing graph, sorted.
func (s *Splitter) EdgeSet() []core.Edge { return s.g.Edges() }

// CycleCount returns the number of cycles held.
func (s *Splitter) CycleCount() int { return len(s.rings) }

// Cycle returns the vertex IDs of cycle i in traversal order, starting from
// the cycle's first registered vertex.
func (s *Splitter) Cycle(i int) ([]string, error) {
	if i < 0 || i >= len(s.rings) {
		return nil, fmt.Errorf("Cycle(%d): %w", i, ErrCycleNotFound)
	}
	return s.rings[i].order(), nil
}

// Polygon returns the positions of cycle i in traversal order.
func (s *Splitter) Polygon(i int) ([]r2.Point, error) {
	ids, err := s.Cycle(i)
	if err != nil {
		return nil, fmt.Errorf("Polygon: %w", err)
	}
	pts := make([]r2.Point, len(ids))
	for k, id := range ids {
		if pts[k], err = s.g.Position(id); err != nil {
			return nil, fmt.Errorf("Polygon(%d): %w", i, err)
		}
	}
	return pts, nil
}

// CyclesOn returns the indices of the cycles traversing e, ascending.
func (s *Splitter) CyclesOn(e core.Edge) []int {
	return append([]int(nil), s.byEdge[e]...)
}
