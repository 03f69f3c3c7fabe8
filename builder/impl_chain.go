// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// impl_chain.go — implementation of Chain(points...) constructor.
//
// Contract:
//   • len(points) ≥ 2 (else ErrTooFewVertices).
//   • Vertex i sits at points[i] (plus origin/jitter); edges (i, i+1).
//   • The chain is open; use Polygon for a closed outline.

package builder

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
)

// Chain returns a Constructor that builds an open polyline, e.g. a road
// leading out of a gate.
func Chain(points ...r2.Point) Constructor {
	pts := append([]r2.Point(nil), points...)
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodChain, "len(points)", len(pts), MinChainNodes); err != nil {
			return err
		}
		if err := validateJitter(MethodChain, cfg); err != nil {
			return err
		}
		ids, err := addPlacedVertices(g, cfg, MethodChain, 0, pts)
		if err != nil {
			return err
		}

		return addChainEdges(g, MethodChain, ids, false)
	}
}

// Polygon returns a Constructor that builds a closed outline through the
// given points in order. At least three points are required.
func Polygon(points ...r2.Point) Constructor {
	pts := append([]r2.Point(nil), points...)
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, "len(points)", len(pts), MinRingNodes); err != nil {
			return err
		}
		if err := validateJitter(MethodPolygon, cfg); err != nil {
			return err
		}
		ids, err := addPlacedVertices(g, cfg, MethodPolygon, 0, pts)
		if err != nil {
			return err
		}

		return addChainEdges(g, MethodPolygon, ids, true)
	}
}
