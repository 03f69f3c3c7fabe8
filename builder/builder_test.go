package builder_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/townmesh/builder"
	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/geom"
)

func TestRingIsCCWRegularPolygon(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(6, 10))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	require.True(t, g.HasEdge("5", "0"))

	var poly []r2.Point
	for i := 0; i < 6; i++ {
		p, err := g.Position(builder.DefaultIDFn(i))
		require.NoError(t, err)
		require.InDelta(t, 10.0, p.Norm(), 1e-9)
		poly = append(poly, p)
	}
	require.Greater(t, geom.SignedArea(poly), 0.0, "counter-clockwise")
	require.NoError(t, g.ValidatePlanar())
}

func TestRectangleAndLattice(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOrigin(r2.Point{X: 5, Y: 5})},
		builder.Rectangle(4, 2))
	require.NoError(t, err)
	p, err := g.Position("2")
	require.NoError(t, err)
	require.Equal(t, r2.Point{X: 9, Y: 7}, p)

	g, err = builder.BuildGraph(nil, nil, builder.Lattice(3, 4, 1))
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())
	// rows*(cols-1) + (rows-1)*cols
	require.Equal(t, 3*3+2*4, g.EdgeCount())
	require.True(t, g.HasEdge("0", "4"))
	require.NoError(t, g.ValidatePlanar())
}

func TestWheelHubAndSpokes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(7, 3))
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount())
	d, err := g.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	require.Equal(t, 6, d)
	require.NoError(t, g.ValidatePlanar())
}

func TestScopedSeedsShareOneGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Scoped("wall", r2.Point{}, builder.Wheel(5, 10)),
		builder.Scoped("fort", r2.Point{X: 40}, builder.Ring(3, 2)),
	)
	require.NoError(t, err)
	require.True(t, g.HasVertex("wall.Center"))
	require.True(t, g.HasVertex("fort.0"))
	p, err := g.Position("fort.0")
	require.NoError(t, err)
	require.InDelta(t, 42.0, p.X, 1e-9)
	require.Len(t, g.Components(), 2)
}

func TestChainAndPolygon(t *testing.T) {
	pts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Chain(pts...))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.HasEdge("A", "B"))

	g, err = builder.BuildGraph(nil, nil, builder.Polygon(pts...))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
}

func TestJitterIsSeeded(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.5)},
			builder.Ring(8, 20))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.VertexList(), b.VertexList())

	p, err := a.Position("0")
	require.NoError(t, err)
	require.LessOrEqual(t, math.Abs(p.X-20), 0.5)
	require.LessOrEqual(t, math.Abs(p.Y), 0.5)
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"ring too small", nil, builder.Ring(2, 1), builder.ErrTooFewVertices},
		{"ring bad radius", nil, builder.Ring(3, 0), builder.ErrBadSize},
		{"rect NaN", nil, builder.Rectangle(math.NaN(), 1), builder.ErrBadSize},
		{"lattice zero rows", nil, builder.Lattice(0, 2, 1), builder.ErrTooFewVertices},
		{"wheel too small", nil, builder.Wheel(3, 1), builder.ErrTooFewVertices},
		{"chain single point", nil, builder.Chain(r2.Point{}), builder.ErrTooFewVertices},
		{"jitter without rng", []builder.BuilderOption{builder.WithJitter(1)}, builder.Ring(3, 1), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestDuplicateIDsSurfaceCoreError(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Ring(3, 1), builder.Ring(3, 2))
	require.ErrorIs(t, err, core.ErrVertexExists)
}

func TestApplyExtendsGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithPrefixIDs("r")}, builder.Rectangle(1, 1)))
	require.True(t, g.HasVertex("r3"))
	require.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithJitter(-1) })
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
}
