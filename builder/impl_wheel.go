// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// impl_wheel.go — implementation of Wheel(n, radius) constructor.
//
// Canonical definition:
//   • Wₙ = ring of (n-1) vertices + hub "Center" at the origin.
//   • Therefore, n ≥ 4 (the rim must be a valid ring: n-1 ≥ 3).
//
// Contract:
//   • Builds the rim exactly like Ring(n-1, radius).
//   • Adds the hub with ID CenterVertexID (prefixed inside Scoped).
//   • Emits spokes Center–rim[i] in increasing rim index.
//   • The hub is never jittered, so every spoke stays inside its wedge.
//
// Complexity:
//   • Time: O(n), Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/townmesh/core"
)

// Wheel returns a Constructor that builds a wheel: a walled ring with n-1
// gates and radial streets meeting at a central square. Each wedge between
// two spokes is a triangular quarter.
func Wheel(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateSize(MethodWheel, "radius", radius); err != nil {
			return err
		}
		if err := validateJitter(MethodWheel, cfg); err != nil {
			return err
		}

		rim, err := addPlacedVertices(g, cfg, MethodWheel, 0, ringPoints(n-1, radius, 0))
		if err != nil {
			return err
		}
		if err = addChainEdges(g, MethodWheel, rim, true); err != nil {
			return err
		}

		hub := cfg.scope + CenterVertexID
		if err = g.AddVertex(hub, cfg.origin); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, hub, err)
		}
		for _, id := range rim {
			if _, err = g.AddEdge(hub, id); err != nil {
				return fmt.Errorf("%s: spoke %s-%s: %w", MethodWheel, hub, id, err)
			}
		}

		return nil
	}
}
