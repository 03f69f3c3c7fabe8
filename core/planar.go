// File: planar.go
// Role: Geometric planarity queries over the embedded graph.
// Determinism:
//   - Edges are scanned in Edges() order, so the reported conflict is stable.

package core

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/geom"
)

// FirstConflict reports the first edge (in Edges() order) that the candidate
// segment a–b would conflict with: cross, touch in its interior, or overlap.
// Edges meeting the candidate only at a shared endpoint do not conflict.
// Edges listed in ignore are skipped, e.g. the edges a chord will split.
//
// Complexity: O(E log E) for the sorted scan.
func (g *Graph) FirstConflict(a, b r2.Point, ignore ...Edge) (Edge, bool) {
	for _, e := range g.Edges() {
		if containsEdge(ignore, e) {
			continue
		}
		p, q, err := g.Segment(e)
		if err != nil {
			continue
		}
		if geom.SegmentsConflict(a, b, p, q) {
			return e, true
		}
	}
	return Edge{}, false
}

// ValidatePlanar checks every pair of edges and reports the first
// conflicting pair wrapped around ErrEdgesCross.
//
// Complexity: O(E²).
func (g *Graph) ValidatePlanar() error {
	edges := g.Edges()
	segs := make([][2]r2.Point, len(edges))
	for i, e := range edges {
		p, q, err := g.Segment(e)
		if err != nil {
			return fmt.Errorf("ValidatePlanar: %w", err)
		}
		segs[i] = [2]r2.Point{p, q}
	}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if geom.SegmentsConflict(segs[i][0], segs[i][1], segs[j][0], segs[j][1]) {
				return fmt.Errorf("ValidatePlanar: %s and %s: %w", edges[i], edges[j], ErrEdgesCross)
			}
		}
	}
	return nil
}

// HasChain reports whether a and b are joined by a path of edges running
// straight from a to b: every inner vertex lies strictly between them and
// each step moves further along the segment. A direct edge a–b is the
// one-piece chain. Unknown IDs report false.
//
// Complexity: O(k·d) for a chain of k pieces.
func (g *Graph) HasChain(a, b string) bool {
	pa, errA := g.Position(a)
	pb, errB := g.Position(b)
	if errA != nil || errB != nil || a == b {
		return false
	}
	cur, t := a, 0.0
	for steps := g.VertexCount(); steps > 0; steps-- {
		nbs, err := g.NeighborIDs(cur)
		if err != nil {
			return false
		}
		next, nextT := "", 2.0
		for _, n := range nbs {
			if n == b {
				return true
			}
			p, _ := g.Position(n)
			if !geom.StrictlyBetween(pa, pb, p) {
				continue
			}
			if tn, _ := geom.ParamOnSegment(pa, pb, p); tn > t && tn < nextT {
				next, nextT = n, tn
			}
		}
		if next == "" {
			return false
		}
		cur, t = next, nextT
	}
	return false
}

func containsEdge(es []Edge, e Edge) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}
