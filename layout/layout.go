// SPDX-License-Identifier: MIT
// Package: townmesh/layout
//
// layout.go — the one-shot generation pass.

package layout

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/dijkstra"
	"github.com/katalvlaran/townmesh/geom"
	"github.com/katalvlaran/townmesh/gridgraph"
	"github.com/katalvlaran/townmesh/internal/xlog"
	"github.com/katalvlaran/townmesh/network"
	"github.com/katalvlaran/townmesh/partition"
)

// Lot is a building plot inside one quarter.
type Lot struct {
	// Quarter indexes Network.Quarters().
	Quarter int
	// Rect is the lot in grid cells.
	Rect partition.Rectangle
	// Polygon is the lot outline in world units, counterclockwise.
	Polygon []r2.Point
	// Distance is the walk from Layout.Origin: along the streets to the
	// nearest quarter corner, then straight to the lot centre. +Inf when
	// no street leads from the origin to the quarter.
	Distance float64
}

// Layout is the result of one Generate call.
type Layout struct {
	Network *network.Network
	// Origin is the vertex lot distances are measured from.
	Origin string
	Lots   []Lot
	// Features are the chosen feature cells in row-major order.
	Features []gridgraph.Cell
	// OpenRegions are the 4-connected areas of cells inside the town that
	// are neither street, lot nor buffer.
	OpenRegions [][]gridgraph.Cell
	Grid        gridgraph.Bounds
	CellSize    float64
}

// CellCenter returns the world position of the middle of c.
func (l *Layout) CellCenter(c gridgraph.Cell) r2.Point {
	return grid{size: l.CellSize, bounds: l.Grid}.center(c)
}

// Generate builds a complete layout from seed.
//
// Implementation:
//   - Stage 1: Resolve and validate cfg; build the street network.
//   - Stage 2: Cover the network with a grid of CellSize cells and mark
//     every cell a street passes through.
//   - Stage 3: For each eligible quarter, partition the cells inside its
//     bounding box and keep lots lying strictly inside the quarter and
//     touching no street cell.
//   - Stage 4: Measure every lot's walking distance from the origin vertex.
//   - Stage 5: Forbid street and lot cells, buffer them by BufferDepth and
//     pick feature cells among the cells inside some quarter.
//
// Errors: ErrNilSeed, ErrInvalidConfig, dijkstra.ErrVertexNotFound for an
// unknown WithOrigin vertex, and anything network.Build returns (notably
// network.ErrUnsatisfiableMesh).
func Generate(seed *core.Graph, cfg Config, opts ...Option) (*Layout, error) {
	if seed == nil {
		return nil, ErrNilSeed
	}
	var st settings
	for _, opt := range opts {
		opt(&st)
	}
	log := xlog.Or(st.log)

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	nb, err := network.New(seed, cfg.Network, network.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	net, err := nb.Build()
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	gr := newGrid(net.Graph().Bounds(), cfg.CellSize)
	streets := gr.rasterize(net.Graph())
	quarters := net.Quarters()

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	lots := make([]Lot, 0)
	taken := make(map[gridgraph.Cell]bool)
	for qi, q := range quarters {
		if !q.Eligible {
			continue
		}
		for _, lot := range carveLots(gr, q, streets, cfg, rng) {
			lot.Quarter = qi
			lots = append(lots, lot)
			markRect(taken, lot.Rect)
		}
	}

	origin := st.origin
	if origin == "" {
		origin = nearestVertex(net.Graph(), net.Graph().Bounds().Center())
	}
	dist, _, err := dijkstra.Dijkstra(net.Graph(), dijkstra.Source(origin))
	if err != nil {
		return nil, fmt.Errorf("Generate: origin: %w", err)
	}
	for i := range lots {
		lots[i].Distance = lotDistance(net.Graph(), quarters[lots[i].Quarter], lots[i], dist)
	}

	forbidden := func(c gridgraph.Cell) bool { return streets[c] || taken[c] }
	border, err := gridgraph.NewBufferBorder(gr.bounds, *cfg.BufferDepth, forbidden)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	var inside []gridgraph.Cell
	for _, c := range gr.bounds.Cells() {
		if insideAny(quarters, gr.center(c)) {
			inside = append(inside, c)
		}
	}
	finder, err := gridgraph.NewDistantCellsFinder(border, cfg.MinDistanceBetweenCells)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	features, err := finder.FindFrom(inside)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	regions, err := gridgraph.Regions(border, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	var open [][]gridgraph.Cell
	for _, r := range regions {
		if insideAny(quarters, gr.center(r[0])) {
			open = append(open, r)
		}
	}

	log.Info("layout: generated",
		slog.Int("quarters", len(quarters)),
		slog.Int("lots", len(lots)),
		slog.Int("features", len(features)),
		slog.Int("openRegions", len(open)),
		slog.String("origin", origin),
		slog.String("grid", gr.bounds.String()))

	return &Layout{
		Network:     net,
		Origin:      origin,
		Lots:        lots,
		Features:    features,
		OpenRegions: open,
		Grid:        gr.bounds,
		CellSize:    cfg.CellSize,
	}, nil
}

// carveLots partitions the cell box of q and keeps the rectangles that fit
// inside it, clear of its holes, without touching a street cell.
func carveLots(gr grid, q network.Quarter, streets map[gridgraph.Cell]bool, cfg Config, rng *rand.Rand) []Lot {
	box := geom.BoundingRect(q.Polygon)
	lo, hi := gr.cellOf(box.Lo()), gr.cellOf(box.Hi())
	sys := partition.Create(lo.X, lo.Y, hi.X-lo.X+1, hi.Y-lo.Y+1,
		cfg.MinRectangleWidth, cfg.BorderWidth, partition.WithRand(rng))

	var lots []Lot
	for _, r := range sys.Rectangles() {
		outline := []r2.Point{
			gr.corner(r.X, r.Y),
			gr.corner(r.X+r.W, r.Y),
			gr.corner(r.X+r.W, r.Y+r.H),
			gr.corner(r.X, r.Y+r.H),
		}
		if !polygonInside(outline, q.Polygon) || overlapsAny(outline, q.Holes) || touchesCells(r, streets) {
			continue
		}
		lots = append(lots, Lot{Rect: r, Polygon: outline})
	}
	return lots
}

// polygonInside reports whether inner lies strictly inside outer: every
// vertex inside and no pair of sides in conflict.
func polygonInside(inner, outer []r2.Point) bool {
	for _, p := range inner {
		if !geom.ContainsPoint(outer, p) {
			return false
		}
	}
	for i := range inner {
		a, b := inner[i], inner[(i+1)%len(inner)]
		for j := range outer {
			if geom.SegmentsConflict(a, b, outer[j], outer[(j+1)%len(outer)]) {
				return false
			}
		}
	}
	return true
}

// overlapsAny reports whether poly shares any area or boundary with one of
// the holes.
func overlapsAny(poly []r2.Point, holes [][]r2.Point) bool {
	for _, h := range holes {
		for _, p := range h {
			if geom.ContainsPoint(poly, p) {
				return true
			}
		}
		for _, p := range poly {
			if geom.ContainsPoint(h, p) {
				return true
			}
		}
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			for j := range h {
				if geom.SegmentsConflict(a, b, h[j], h[(j+1)%len(h)]) {
					return true
				}
			}
		}
	}
	return false
}

func touchesCells(r partition.Rectangle, cells map[gridgraph.Cell]bool) bool {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if cells[gridgraph.Cell{X: x, Y: y}] {
				return true
			}
		}
	}
	return false
}

func markRect(cells map[gridgraph.Cell]bool, r partition.Rectangle) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cells[gridgraph.Cell{X: x, Y: y}] = true
		}
	}
}

// insideAny reports whether p lies in the area of some quarter: inside its
// polygon and outside its holes.
func insideAny(quarters []network.Quarter, p r2.Point) bool {
	for _, q := range quarters {
		if !geom.ContainsPoint(q.Polygon, p) {
			continue
		}
		inHole := false
		for _, h := range q.Holes {
			if geom.ContainsPoint(h, p) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// nearestVertex returns the vertex closest to p; ties go to the smaller ID.
func nearestVertex(g *core.Graph, p r2.Point) string {
	best, bestD := "", math.Inf(1)
	for _, v := range g.VertexList() {
		if d := geom.Distance(v.Pos, p); d < bestD || (d == bestD && v.ID < best) {
			best, bestD = v.ID, d
		}
	}
	return best
}

func lotDistance(g *core.Graph, q network.Quarter, lot Lot, dist map[string]float64) float64 {
	c := geom.BoundingRect(lot.Polygon).Center()
	best := math.Inf(1)
	for _, id := range q.Vertices {
		p, err := g.Position(id)
		if err != nil {
			continue
		}
		best = math.Min(best, dist[id]+geom.Distance(p, c))
	}
	return best
}
