// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// impl_rectangle.go — implementation of Rectangle(w, h) constructor.
//
// Contract:
//   • w, h finite and > 0 (else ErrBadSize).
//   • Four corners, CCW from the origin: (0,0), (w,0), (w,h), (0,h).
//   • Edges close the ring 0-1-2-3-0.

package builder

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
)

// Rectangle returns a Constructor that builds an axis-aligned w×h rectangle
// anchored at the configured origin.
func Rectangle(w, h float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodRectangle, "w", w); err != nil {
			return err
		}
		if err := validateSize(MethodRectangle, "h", h); err != nil {
			return err
		}
		if err := validateJitter(MethodRectangle, cfg); err != nil {
			return err
		}

		corners := []r2.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
		ids, err := addPlacedVertices(g, cfg, MethodRectangle, 0, corners)
		if err != nil {
			return err
		}

		return addChainEdges(g, MethodRectangle, ids, true)
	}
}
