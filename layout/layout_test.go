package layout_test

import (
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/townmesh/builder"
	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/dijkstra"
	"github.com/katalvlaran/townmesh/geom"
	"github.com/katalvlaran/townmesh/gridgraph"
	"github.com/katalvlaran/townmesh/layout"
	"github.com/katalvlaran/townmesh/network"
)

func townSeed(t *testing.T) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(9, 120))
	require.NoError(t, err)
	return g
}

func TestGenerateInvariants(t *testing.T) {
	cfg := layout.Config{RandomSeed: 5, CellSize: 2, MinDistanceBetweenCells: 5}
	l, err := layout.Generate(townSeed(t), cfg)
	require.NoError(t, err)
	require.NotEmpty(t, l.Lots)

	quarters := l.Network.Quarters()
	for _, lot := range l.Lots {
		q := quarters[lot.Quarter]
		require.True(t, q.Eligible)
		for _, p := range lot.Polygon {
			require.True(t, geom.ContainsPoint(q.Polygon, p), "lot %v leaves its quarter", lot.Rect)
		}
		require.GreaterOrEqual(t, lot.Rect.W, layout.DefaultMinRectangleWidth)
		require.GreaterOrEqual(t, lot.Rect.H, layout.DefaultMinRectangleWidth)
	}
	for i := range l.Lots {
		for j := i + 1; j < len(l.Lots); j++ {
			require.True(t, l.Lots[i].Rect.Separated(l.Lots[j].Rect, 0), "lots %d and %d overlap", i, j)
		}
	}

	for i, a := range l.Features {
		require.True(t, l.Grid.Contains(a))
		for _, b := range l.Features[i+1:] {
			require.GreaterOrEqual(t, gridgraph.Chebyshev(a, b), 5)
		}
		for _, lot := range l.Lots {
			require.False(t, lot.Rect.Contains(a.X, a.Y), "feature %v on a lot", a)
		}
	}

	for _, e := range l.Network.ExcludedEdges() {
		require.True(t, l.Network.Graph().HasEdge(e.U, e.V))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := layout.Generate(townSeed(t), layout.Config{RandomSeed: 9})
	require.NoError(t, err)
	b, err := layout.Generate(townSeed(t), layout.Config{RandomSeed: 9})
	require.NoError(t, err)
	require.Equal(t, a.Network.EdgeSet(), b.Network.EdgeSet())
	require.Equal(t, a.Lots, b.Lots)
	require.Equal(t, a.Features, b.Features)
	require.Equal(t, a.Grid, b.Grid)
}

func TestGenerateSurfacesUnsatisfiableMesh(t *testing.T) {
	seed, err := builder.BuildGraph(nil, nil, builder.Rectangle(50, 50))
	require.NoError(t, err)
	// Diagonals 0-2 and 1-3 cross in the middle.
	_, err = seed.AddEdge("0", "2")
	require.NoError(t, err)
	_, err = seed.AddEdge("1", "3")
	require.NoError(t, err)

	l, err := layout.Generate(seed, layout.Config{Network: network.Config{MaxAttempts: 2}})
	require.ErrorIs(t, err, network.ErrUnsatisfiableMesh)
	require.Nil(t, l)

	_, err = layout.Generate(nil, layout.Config{})
	require.ErrorIs(t, err, layout.ErrNilSeed)
}

func TestLoadConfig(t *testing.T) {
	doc := `
randomSeed: 3
cellSize: 1.5
bufferDepth: 2
network:
  minimumEdgeLength: 12
  subdivisionProbability: 0.5
`
	cfg, err := layout.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, int64(3), cfg.RandomSeed)
	require.Equal(t, 1.5, cfg.CellSize)
	require.Equal(t, 2, *cfg.BufferDepth)
	require.Equal(t, 0.5, *cfg.Network.SubdivisionProbability)
	require.Equal(t, layout.DefaultMinDistanceBetweenCells, cfg.MinDistanceBetweenCells)
	require.Equal(t, 12.0, cfg.Network.MinimumEdgeLength)
	require.Equal(t, int64(3), cfg.Network.RandomSeed, "network inherits the run seed")
	require.Equal(t, network.DefaultMaxAttempts, cfg.Network.MaxAttempts)

	empty, err := layout.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, layout.Config{}.WithDefaults(), empty)

	_, err = layout.LoadConfig(strings.NewReader("cellSise: 2\n"))
	require.ErrorIs(t, err, layout.ErrInvalidConfig, "unknown keys are rejected")

	zero, err := layout.LoadConfig(strings.NewReader("bufferDepth: 0\nnetwork:\n  subdivisionProbability: 0\n"))
	require.NoError(t, err)
	require.Equal(t, 0, *zero.BufferDepth, "an explicit zero is kept")
	require.Equal(t, 0.0, *zero.Network.SubdivisionProbability)
	require.Equal(t, layout.DefaultBufferDepth, *empty.BufferDepth)

	_, err = layout.LoadConfig(strings.NewReader("bufferDepth: -1\n"))
	require.ErrorIs(t, err, layout.ErrInvalidConfig)

	_, err = layout.LoadConfig(strings.NewReader("network:\n  subdivisionProbability: 4\n"))
	require.ErrorIs(t, err, layout.ErrInvalidConfig)
	require.ErrorIs(t, err, network.ErrInvalidConfig)
}

func TestGenerateLotDistances(t *testing.T) {
	l, err := layout.Generate(townSeed(t), layout.Config{RandomSeed: 5})
	require.NoError(t, err)
	require.Equal(t, builder.CenterVertexID, l.Origin, "hub sits at the centre")

	g := l.Network.Graph()
	hub, err := g.Position(l.Origin)
	require.NoError(t, err)
	for _, lot := range l.Lots {
		c := geom.BoundingRect(lot.Polygon).Center()
		// A walk is never shorter than the straight line.
		require.GreaterOrEqual(t, lot.Distance+1e-9, geom.Distance(hub, c))
		require.False(t, math.IsInf(lot.Distance, 1))
	}

	rim, err := layout.Generate(townSeed(t), layout.Config{RandomSeed: 5}, layout.WithOrigin("0"))
	require.NoError(t, err)
	require.Equal(t, "0", rim.Origin)
	require.Equal(t, len(l.Lots), len(rim.Lots), "origin only changes distances")

	_, err = layout.Generate(townSeed(t), layout.Config{RandomSeed: 5}, layout.WithOrigin("nowhere"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestGenerateKeepsLotsOutOfNestedRing(t *testing.T) {
	seed, err := builder.BuildGraph(nil, nil,
		builder.Scoped("wall", r2.Point{}, builder.Ring(10, 150)),
		builder.Scoped("keep", r2.Point{}, builder.Ring(4, 30)),
	)
	require.NoError(t, err)
	l, err := layout.Generate(seed, layout.Config{RandomSeed: 4, BufferDepth: layout.Depth(0)})
	require.NoError(t, err)

	keep := make([]r2.Point, 4)
	for i := range keep {
		keep[i], err = seed.Position("keep." + builder.DefaultIDFn(i))
		require.NoError(t, err)
	}
	quarters := l.Network.Quarters()
	outsideKeep := 0
	for _, lot := range l.Lots {
		for _, p := range lot.Polygon {
			require.False(t, geom.ContainsPoint(keep, p), "lot %v corner inside the keep", lot.Rect)
		}
		for _, p := range keep {
			require.False(t, geom.ContainsPoint(lot.Polygon, p), "lot %v covers the keep", lot.Rect)
		}
		if !geom.ContainsPoint(keep, geom.BoundingRect(lot.Polygon).Center()) {
			outsideKeep++
		}
		require.LessOrEqual(t, len(quarters[lot.Quarter].Holes), 1)
	}
	require.Positive(t, outsideKeep, "the town around the keep gets lots")
}
