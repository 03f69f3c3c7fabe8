// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// impl_ring.go — implementation of Ring(n, radius) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); radius finite and > 0 (else ErrBadSize).
//   • Vertex i sits at angle 2πi/n on the circle of the given radius around
//     the configured origin, so the ring runs counter-clockwise.
//   • Emits edges (i, i+1 mod n) for i = 0..n-1.
//   • With WithJitter, each vertex is perturbed by the configured rng
//     (ErrNeedRandSource if none).
//
// Complexity:
//   • Time: O(n), Space: O(n) for the ID slice.
//
// Determinism:
//   • IDs via cfg.idFn(0..n-1); positions fixed for a fixed rng seed.

package builder

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/geom"
)

// Ring returns a Constructor that builds a closed regular n-gon.
func Ring(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRing, "n", n, MinRingNodes); err != nil {
			return err
		}
		if err := validateSize(MethodRing, "radius", radius); err != nil {
			return err
		}
		if err := validateJitter(MethodRing, cfg); err != nil {
			return err
		}

		ids, err := addPlacedVertices(g, cfg, MethodRing, 0, ringPoints(n, radius, 0))
		if err != nil {
			return err
		}

		return addChainEdges(g, MethodRing, ids, true)
	}
}

// ringPoints returns n points evenly spaced CCW on a circle, the first at
// angle phase.
func ringPoints(n int, radius float64, phase s1.Angle) []r2.Point {
	pts := make([]r2.Point, n)
	step := s1.Angle(2 * math.Pi / float64(n))
	for i := range pts {
		pts[i] = geom.Rotate(r2.Point{X: radius}, phase+step*s1.Angle(i))
	}

	return pts
}
