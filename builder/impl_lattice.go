// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// impl_lattice.go — implementation of Lattice(rows, cols, spacing) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices); spacing finite and > 0 (else ErrBadSize).
//   • Vertex (r,c) sits at (c·spacing, r·spacing); IDs are assigned row-major
//     via cfg.idFn(r*cols + c).
//   • Emits horizontal edges (r,c)–(r,c+1) then vertical edges (r,c)–(r+1,c),
//     each block in row-major order.
//
// Complexity:
//   • Time: O(rows·cols), Space: O(rows·cols) for the ID slice.

package builder

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
)

// Lattice returns a Constructor that builds a rows×cols grid of square cells.
// Every inner cell is a four-edge cycle, which makes a lattice a ready-made
// multi-quarter seed.
func Lattice(rows, cols int, spacing float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodLattice, "rows", rows, MinLatticeDim); err != nil {
			return err
		}
		if err := validateMin(MethodLattice, "cols", cols, MinLatticeDim); err != nil {
			return err
		}
		if err := validateSize(MethodLattice, "spacing", spacing); err != nil {
			return err
		}
		if err := validateJitter(MethodLattice, cfg); err != nil {
			return err
		}

		pts := make([]r2.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, r2.Point{X: float64(c) * spacing, Y: float64(r) * spacing})
			}
		}
		ids, err := addPlacedVertices(g, cfg, MethodLattice, 0, pts)
		if err != nil {
			return err
		}

		at := func(r, c int) string { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if _, err = g.AddEdge(at(r, c), at(r, c+1)); err != nil {
					return fmt.Errorf("%s: horizontal edge (%d,%d): %w", MethodLattice, r, c, err)
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err = g.AddEdge(at(r, c), at(r+1, c)); err != nil {
					return fmt.Errorf("%s: vertical edge (%d,%d): %w", MethodLattice, r, c, err)
				}
			}
		}

		return nil
	}
}
