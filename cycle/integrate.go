// SPDX-License-Identifier: MIT
// Package: townmesh/cycle
//
// integrate.go — cut-segment integration and chord splitting.

package cycle

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/geom"
)

// IntegrateCutSegment replaces edge cut.From–cut.To with a chain through
// cut.Points and splices the new vertices into every cycle traversing the
// edge, each in that cycle's own direction.
//
// Implementation:
//   - Stage 1: Reject a missing edge (ErrNotAnEdge).
//   - Stage 2: Reject an empty cut, any point not strictly inside the edge,
//     and any two points at the same position (ErrDegenerateSplit).
//   - Stage 3: Remove the edge, add the points via core.AddPoint in From→To
//     order, add the chain edges, splice the rings and reindex.
//
// Nothing is mutated unless every check in stages 1–2 passes.
// Returns the new vertex IDs in From→To order.
//
// Complexity: O(k log k + c·k), independent of graph size.
func (s *Splitter) IntegrateCutSegment(cut CutSegment) ([]string, error) {
	const method = "IntegrateCutSegment"
	if !s.g.HasEdge(cut.From, cut.To) {
		return nil, fmt.Errorf("%s: %s-%s: %w", method, cut.From, cut.To, ErrNotAnEdge)
	}
	if len(cut.Points) == 0 {
		return nil, fmt.Errorf("%s: %s-%s: no points: %w", method, cut.From, cut.To, ErrDegenerateSplit)
	}
	a, err := s.g.Position(cut.From)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	b, err := s.g.Position(cut.To)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	type placed struct {
		p r2.Point
		t float64
	}
	pts := make([]placed, len(cut.Points))
	for i, p := range cut.Points {
		if !geom.StrictlyBetween(a, b, p) {
			return nil, fmt.Errorf("%s: point #%d %v not strictly inside %s-%s: %w",
				method, i, p, cut.From, cut.To, ErrDegenerateSplit)
		}
		t, _ := geom.ParamOnSegment(a, b, p)
		pts[i] = placed{p: p, t: t}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].t < pts[j].t })
	for i := 1; i < len(pts); i++ {
		if geom.NearlyEqual(pts[i-1].p, pts[i].p) {
			return nil, fmt.Errorf("%s: points %v and %v coincide: %w", method, pts[i-1].p, pts[i].p, ErrDegenerateSplit)
		}
	}

	// Validation done; from here on every step is expected to succeed.
	e := core.NewEdge(cut.From, cut.To)
	if err = s.g.RemoveEdge(cut.From, cut.To); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	ids := make([]string, len(pts))
	for i, pl := range pts {
		if ids[i], err = s.g.AddPoint(pl.p); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	chain := append(append([]string{cut.From}, ids...), cut.To)
	for i := 0; i+1 < len(chain); i++ {
		if _, err = s.g.AddEdge(chain[i], chain[i+1]); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	owners := s.byEdge[e]
	delete(s.byEdge, e)
	reversed := reverse(ids)
	for _, idx := range owners {
		r := s.rings[idx]
		if r.next[cut.From] == cut.To {
			r.insertBetween(cut.From, cut.To, ids)
		} else {
			r.insertBetween(cut.To, cut.From, reversed)
		}
	}
	for i := 0; i+1 < len(chain); i++ {
		ce := core.NewEdge(chain[i], chain[i+1])
		s.byEdge[ce] = append([]int(nil), owners...)
	}

	return ids, nil
}

// SplitCycle adds the chord u–v to the graph and divides cycle i into two:
// cycle i keeps the walk u→…→v, and a new cycle holds v→…→u. Both contain
// the chord. Returns the index of the new cycle.
//
// Errors: ErrCycleNotFound; ErrBadChord when u or v is not on the cycle,
// u == v, they are adjacent on it, or u–v is already an edge.
// Complexity: O(L).
func (s *Splitter) SplitCycle(i int, u, v string) (int, error) {
	const method = "SplitCycle"
	if i < 0 || i >= len(s.rings) {
		return -1, fmt.Errorf("%s(%d): %w", method, i, ErrCycleNotFound)
	}
	r := s.rings[i]
	_, okU := r.next[u]
	_, okV := r.next[v]
	switch {
	case !okU || !okV:
		return -1, fmt.Errorf("%s(%d): %s-%s not on cycle: %w", method, i, u, v, ErrBadChord)
	case u == v || r.next[u] == v || r.next[v] == u:
		return -1, fmt.Errorf("%s(%d): %s-%s adjacent: %w", method, i, u, v, ErrBadChord)
	case s.g.HasEdge(u, v):
		return -1, fmt.Errorf("%s(%d): %s-%s already an edge: %w", method, i, u, v, ErrBadChord)
	}

	first, second := r.walk(u, v), r.walk(v, u)
	if _, err := s.g.AddEdge(u, v); err != nil {
		return -1, fmt.Errorf("%s: %w", method, err)
	}

	for _, e := range r.edges() {
		s.byEdge[e] = removeIndex(s.byEdge[e], i)
	}
	s.rings[i] = newRing(first)
	for _, e := range s.rings[i].edges() {
		s.byEdge[e] = insertIndex(s.byEdge[e], i)
	}

	return s.addRing(newRing(second)), nil
}

func reverse(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}

func removeIndex(xs []int, x int) []int {
	out := xs[:0]
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// insertIndex keeps xs ascending.
func insertIndex(xs []int, x int) []int {
	pos := sort.SearchInts(xs, x)
	xs = append(xs, 0)
	copy(xs[pos+1:], xs[pos:])
	xs[pos] = x
	return xs
}
