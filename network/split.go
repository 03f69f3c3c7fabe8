// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// split.go — cutting one quarter with a chord.

package network

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/cycle"
	"github.com/katalvlaran/townmesh/geom"
)

// Chord end points are drawn from the middle band of an edge.
const (
	bandLo = 0.3
	bandHi = 0.7
)

// side is one boundary edge of a quarter, oriented along the cycle.
type side struct {
	from, to string
	a, b     r2.Point
	length   float64
}

// splitQuarter tries to cut quarter i, whose holes are given, by a chord.
//
// Implementation:
//   - Stage 1: Collect sides long enough to be split into two pieces of at
//     least minLen; fewer than two ⇒ no cut.
//   - Stage 2: First side = longest (lowest index on ties); the other sides
//     are tried in random order. Chord ends are drawn from the middle band,
//     clipped so both pieces keep minLen.
//   - Stage 3: A chord fits when it is ≥ minLen, its midpoint is inside the
//     quarter and outside every hole, and it conflicts with no street except
//     the two it will split.
//   - Stage 4: Integrate both end points of the first fitting chord and
//     split the cycle.
//
// Returns the index of the new quarter and whether a cut was made. An
// error means the splitter rejected a cut that passed every check.
func splitQuarter(sp *cycle.Splitter, i int, holes [][]r2.Point, minLen float64, rng *rand.Rand) (int, bool, error) {
	ids, err := sp.Cycle(i)
	if err != nil {
		return -1, false, err
	}
	poly, err := sp.Polygon(i)
	if err != nil {
		return -1, false, err
	}

	var long []side
	for k := range ids {
		n := (k + 1) % len(ids)
		s := side{from: ids[k], to: ids[n], a: poly[k], b: poly[n]}
		s.length = geom.Distance(s.a, s.b)
		if s.length >= 2*minLen {
			long = append(long, s)
		}
	}
	if len(long) < 2 {
		return -1, false, nil
	}

	first := 0
	for k := range long {
		if long[k].length > long[first].length {
			first = k
		}
	}
	s1 := long[first]
	rest := append(append([]side(nil), long[:first]...), long[first+1:]...)

	for _, k := range rng.Perm(len(rest)) {
		s2 := rest[k]
		p := geom.Lerp(s1.a, s1.b, drawT(rng, s1.length, minLen))
		q := geom.Lerp(s2.a, s2.b, drawT(rng, s2.length, minLen))
		if !chordFits(sp.Graph(), poly, holes, s1, s2, p, q, minLen) {
			continue
		}

		u, err := sp.IntegrateCutSegment(cycle.CutSegment{From: s1.from, To: s1.to, Points: []r2.Point{p}})
		if err != nil {
			return -1, false, fmt.Errorf("splitQuarter: %w", err)
		}
		v, err := sp.IntegrateCutSegment(cycle.CutSegment{From: s2.from, To: s2.to, Points: []r2.Point{q}})
		if err != nil {
			return -1, false, fmt.Errorf("splitQuarter: %w", err)
		}
		j, err := sp.SplitCycle(i, u[0], v[0])
		if err != nil {
			return -1, false, fmt.Errorf("splitQuarter: %w", err)
		}
		return j, true, nil
	}

	return -1, false, nil
}

func chordFits(g *core.Graph, poly []r2.Point, holes [][]r2.Point, s1, s2 side, p, q r2.Point, minLen float64) bool {
	if geom.Distance(p, q) < minLen {
		return false
	}
	mid := geom.Lerp(p, q, 0.5)
	if !geom.ContainsPoint(poly, mid) || insideAny(holes, mid) {
		return false
	}
	_, hit := g.FirstConflict(p, q, core.NewEdge(s1.from, s1.to), core.NewEdge(s2.from, s2.to))
	return !hit
}

// splitHoles divides the holes of a cut quarter between its halves: a hole
// moves to the new half when it lies inside that half's polygon.
func splitHoles(holes [][]r2.Point, newHalf []r2.Point) (kept, moved [][]r2.Point) {
	for _, h := range holes {
		if geom.ContainsPoint(newHalf, h[0]) {
			moved = append(moved, h)
		} else {
			kept = append(kept, h)
		}
	}
	return kept, moved
}

// drawT returns a parameter in the middle band that leaves both pieces of
// an edge of the given length at least minLen long.
func drawT(rng *rand.Rand, length, minLen float64) float64 {
	lo := max(bandLo, minLen/length)
	hi := min(bandHi, 1-minLen/length)
	if hi < lo {
		return 0.5
	}
	return lo + rng.Float64()*(hi-lo)
}
