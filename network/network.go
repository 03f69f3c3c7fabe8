// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// network.go — the built mesh and its exclusion overlay.

package network

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/cycle"
	"github.com/katalvlaran/townmesh/geom"
)

// Quarter is one bounded face of the mesh.
type Quarter struct {
	// Vertices lists the boundary counterclockwise.
	Vertices []string
	// Polygon holds the matching positions.
	Polygon []r2.Point
	// Holes are the outlines of street components nested inside the
	// quarter, such as a citadel inside a wall ring. Their edges are
	// excluded and no lot may overlap them.
	Holes [][]r2.Point
	// Area is the enclosed area minus the holes.
	Area float64
	// Compactness is 4πA/P², P counting hole outlines too: 1 for a disc,
	// near 0 for a sliver.
	Compactness float64
	// Eligible reports whether lots may be laid out inside the quarter.
	Eligible bool
}

// Network is an accepted mesh: the densified graph, its quarters and the
// set of edges that may not bound a lot. It is read-only.
type Network struct {
	g            *core.Graph
	quarters     []Quarter
	seedQuarters [][]string
	excluded     map[core.Edge]struct{}
	attempts     int
}

// newNetwork freezes g and derives the overlay.
//
// Implementation:
//   - Stage 1: Read quarters from the splitter cycles, attach their holes
//     and compute metrics.
//   - Stage 2: Exclude every outer-boundary edge (clockwise face walks of g).
//   - Stage 3: Exclude every edge bounding no quarter.
//   - Stage 4: Exclude every edge of a quarter with compactness < minCompactness.
func newNetwork(g *core.Graph, sp *cycle.Splitter, holes [][][]r2.Point, seedQuarters [][]string, minCompactness float64, attempts int) *Network {
	n := &Network{
		g:            g,
		seedQuarters: seedQuarters,
		excluded:     make(map[core.Edge]struct{}),
		attempts:     attempts,
	}

	onQuarter := make(map[core.Edge]bool)
	for i := 0; i < sp.CycleCount(); i++ {
		ids, _ := sp.Cycle(i)
		poly, _ := sp.Polygon(i)
		q := Quarter{Vertices: ids, Polygon: poly, Holes: holes[i]}
		q.Area, q.Compactness = metrics(poly, q.Holes)
		q.Eligible = q.Compactness >= minCompactness
		for k := range ids {
			e := core.NewEdge(ids[k], ids[(k+1)%len(ids)])
			onQuarter[e] = true
			if !q.Eligible {
				n.excluded[e] = struct{}{}
			}
		}
		n.quarters = append(n.quarters, q)
	}

	for e := range extractFaces(g).outer {
		n.excluded[e] = struct{}{}
	}
	for _, e := range g.Edges() {
		if !onQuarter[e] {
			n.excluded[e] = struct{}{}
		}
	}

	return n
}

// metrics returns the area of poly minus its holes and the matching
// isoperimetric quotient.
func metrics(poly []r2.Point, holes [][]r2.Point) (area, compactness float64) {
	area = math.Abs(geom.SignedArea(poly))
	perimeter := geom.Perimeter(poly)
	for _, h := range holes {
		area -= math.Abs(geom.SignedArea(h))
		perimeter += geom.Perimeter(h)
	}
	if perimeter == 0 || area <= 0 {
		return 0, 0
	}
	return area, 4 * math.Pi * area / (perimeter * perimeter)
}

// Graph returns the densified graph. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.g }

// EdgeSet returns every street edge, sorted.
func (n *Network) EdgeSet() []core.Edge { return n.g.Edges() }

// ExcludedEdges returns the edges that may not bound a lot, sorted.
// The result is always a subset of EdgeSet.
func (n *Network) ExcludedEdges() []core.Edge {
	out := make([]core.Edge, 0, len(n.excluded))
	for e := range n.excluded {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// IsExcluded reports whether e (in either orientation) is excluded.
func (n *Network) IsExcluded(e core.Edge) bool {
	_, ok := n.excluded[core.NewEdge(e.U, e.V)]
	return ok
}

// Quarters returns the bounded faces in creation order: seed quarters
// first, then the halves produced by each cut.
func (n *Network) Quarters() []Quarter {
	out := make([]Quarter, len(n.quarters))
	copy(out, n.quarters)
	return out
}

// SeedCycles returns the bounded faces of the seed graph as vertex lists.
func (n *Network) SeedCycles() [][]string {
	out := make([][]string, len(n.seedQuarters))
	for i, c := range n.seedQuarters {
		out[i] = append([]string(nil), c...)
	}
	return out
}

// Attempts returns how many attempts Build used, the accepted one included.
func (n *Network) Attempts() int { return n.attempts }
