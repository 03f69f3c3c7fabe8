// SPDX-License-Identifier: MIT
// Package: townmesh/layout
//
// raster.go — world/grid conversion and street rasterization.

package layout

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/gridgraph"
	"github.com/katalvlaran/townmesh/internal/mathx"
)

// grid maps world coordinates to cells of side size.
type grid struct {
	size   float64
	bounds gridgraph.Bounds
}

// newGrid covers the rectangle r with whole cells.
func newGrid(r r2.Rect, size float64) grid {
	x0, y0 := int(math.Floor(r.X.Lo/size)), int(math.Floor(r.Y.Lo/size))
	x1, y1 := int(math.Floor(r.X.Hi/size)), int(math.Floor(r.Y.Hi/size))
	return grid{size: size, bounds: gridgraph.Bounds{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}}
}

// cellOf returns the cell holding p, clamped into the bounds.
func (gr grid) cellOf(p r2.Point) gridgraph.Cell {
	b := gr.bounds
	return gridgraph.Cell{
		X: mathx.Clamp(int(math.Floor(p.X/gr.size)), b.X, b.X+b.W-1),
		Y: mathx.Clamp(int(math.Floor(p.Y/gr.size)), b.Y, b.Y+b.H-1),
	}
}

// center returns the world position of the middle of c.
func (gr grid) center(c gridgraph.Cell) r2.Point {
	return r2.Point{X: (float64(c.X) + 0.5) * gr.size, Y: (float64(c.Y) + 0.5) * gr.size}
}

// corner returns the world position of the lower-left corner of cell (x, y).
func (gr grid) corner(x, y int) r2.Point {
	return r2.Point{X: float64(x) * gr.size, Y: float64(y) * gr.size}
}

// rasterize marks every cell a street edge passes through. Segments are
// sampled every quarter cell, which cannot step over a cell.
func (gr grid) rasterize(g *core.Graph) map[gridgraph.Cell]bool {
	cells := make(map[gridgraph.Cell]bool)
	step := gr.size / 4
	for _, e := range g.Edges() {
		a, b, err := g.Segment(e)
		if err != nil {
			continue
		}
		n := int(math.Ceil(b.Sub(a).Norm()/step)) + 1
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			cells[gr.cellOf(a.Add(b.Sub(a).Mul(t)))] = true
		}
	}
	return cells
}
