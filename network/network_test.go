package network_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/townmesh/builder"
	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/geom"
	"github.com/katalvlaran/townmesh/network"
)

// countingHandler counts records per level.
type countingHandler struct{ counts map[slog.Level]int }

func (h countingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h countingHandler) Handle(_ context.Context, r slog.Record) error {
	h.counts[r.Level]++
	return nil
}
func (h countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h countingHandler) WithGroup(string) slog.Handler      { return h }

func wheelSeed(t require.TestingT) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(9, 100))
	require.NoError(t, err)
	return g
}

type NetworkSuite struct {
	suite.Suite
	seed *core.Graph
	cfg  network.Config
	net  *network.Network
}

func (s *NetworkSuite) SetupTest() {
	s.seed = wheelSeed(s.T())
	s.cfg = network.Config{MinimumEdgeLength: 8, SubdivisionProbability: network.Probability(0.9), RandomSeed: 42}
	b, err := network.New(s.seed, s.cfg)
	s.Require().NoError(err)
	s.net, err = b.Build()
	s.Require().NoError(err)
}

func (s *NetworkSuite) TestSupersetOfSeed() {
	require := require.New(s.T())
	g := s.net.Graph()
	require.Greater(g.EdgeCount(), s.seed.EdgeCount(), "the mesh was densified")
	for _, id := range s.seed.Vertices() {
		require.True(g.HasVertex(id), id)
	}
	require.True(g.Connected(s.seed.Vertices()...))

	cut := 0
	for _, e := range s.seed.Edges() {
		require.True(g.HasChain(e.U, e.V), "seed edge %s survives as a chain", e)
		if !g.HasEdge(e.U, e.V) {
			cut++
		}
	}
	require.Positive(cut, "some seed edges were split into pieces")
	require.Len(s.net.SeedCycles(), 8)
	require.Equal(16, s.seed.EdgeCount(), "seed untouched")
}

func (s *NetworkSuite) TestPlanarAndMinimumLength() {
	require := require.New(s.T())
	g := s.net.Graph()
	require.NoError(g.ValidatePlanar())
	for _, e := range g.Edges() {
		if s.seed.HasVertex(e.U) && s.seed.HasVertex(e.V) {
			continue
		}
		l, err := g.Length(e)
		require.NoError(err)
		require.GreaterOrEqual(l, s.cfg.MinimumEdgeLength-1e-9, "%s", e)
	}
}

func (s *NetworkSuite) TestExcludedIsSubsetOfEdgeSet() {
	require := require.New(s.T())
	g := s.net.Graph()
	excluded := s.net.ExcludedEdges()
	require.NotEmpty(excluded)
	require.Less(len(excluded), len(s.net.EdgeSet()))
	for _, e := range excluded {
		require.True(g.HasEdge(e.U, e.V), "%s", e)
		require.True(s.net.IsExcluded(core.Edge{U: e.V, V: e.U}), "orientation-free lookup")
	}

	// The rim is the wall: every rim edge and every piece of one is excluded.
	var rim []r2.Point
	for i := 0; i < 8; i++ {
		p, err := s.seed.Position(builder.DefaultIDFn(i))
		require.NoError(err)
		rim = append(rim, p)
	}
	pieces := 0
	for _, e := range s.net.EdgeSet() {
		p, q, err := g.Segment(e)
		require.NoError(err)
		mid := geom.Lerp(p, q, 0.5)
		for i := range rim {
			if geom.StrictlyBetween(rim[i], rim[(i+1)%len(rim)], mid) {
				require.True(s.net.IsExcluded(e), "rim piece %s", e)
				pieces++
			}
		}
	}
	require.GreaterOrEqual(pieces, 8)
}

func (s *NetworkSuite) TestQuartersTileTheSeed() {
	require := require.New(s.T())
	total := 0.0
	for _, q := range s.net.Quarters() {
		require.Greater(q.Area, 0.0)
		require.Len(q.Polygon, len(q.Vertices))
		total += q.Area
	}
	var seedArea float64
	for i := 0; i < 8; i++ {
		seedArea += 0.5 * 100 * 100 * sinEighth
	}
	require.InDelta(seedArea, total, 1e-6)
	require.Greater(len(s.net.Quarters()), 8)
	require.Equal(1, s.net.Attempts())
}

// sinEighth is sin(2π/8).
const sinEighth = 0.7071067811865476

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

// onBoundary reports whether p is a vertex of poly or lies inside one of
// its sides.
func onBoundary(poly []r2.Point, p r2.Point) bool {
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		if geom.NearlyEqual(a, p) || geom.StrictlyBetween(a, b, p) {
			return true
		}
	}
	return false
}

func ringPolygon(t *testing.T, g *core.Graph, scope string, n int) []r2.Point {
	poly := make([]r2.Point, n)
	for i := range poly {
		p, err := g.Position(scope + builder.DefaultIDFn(i))
		require.NoError(t, err)
		poly[i] = p
	}
	return poly
}

func TestNestedRingIsDensified(t *testing.T) {
	seed, err := builder.BuildGraph(nil, nil,
		builder.Scoped("wall", r2.Point{}, builder.Ring(10, 300)),
		builder.Scoped("keep", r2.Point{}, builder.Ring(4, 40)),
	)
	require.NoError(t, err)
	b, err := network.New(seed, network.Config{SubdivisionProbability: network.Probability(1), RandomSeed: 3})
	require.NoError(t, err)
	n, err := b.Build()
	require.NoError(t, err)
	require.Len(t, n.SeedCycles(), 2, "keep face and the wall face around it")

	wall := ringPolygon(t, seed, "wall.", 10)
	keep := ringPolygon(t, seed, "keep.", 4)
	g := n.Graph()

	// New vertices on the wall: the town between wall and keep was cut.
	onWall := 0
	for _, v := range g.VertexList() {
		if !seed.HasVertex(v.ID) && onBoundary(wall, v.Pos) {
			onWall++
		}
	}
	require.Positive(t, onWall)

	total, holed, outside := 0.0, 0, 0
	for _, q := range n.Quarters() {
		total += q.Area
		if len(q.Holes) > 0 {
			holed++
			require.Len(t, q.Holes, 1)
		}
		for _, p := range q.Polygon {
			if !geom.ContainsPoint(keep, p) && !onBoundary(keep, p) {
				outside++
				break
			}
		}
	}
	require.Equal(t, 1, holed, "exactly one quarter surrounds the keep")
	require.Greater(t, outside, 1)
	require.InEpsilon(t, geom.SignedArea(wall), total, 1e-9, "quarters tile the town once")

	// The keep outline is a wall of its own: every piece is excluded.
	for _, e := range n.EdgeSet() {
		p, q, err := g.Segment(e)
		require.NoError(t, err)
		if onBoundary(keep, geom.Lerp(p, q, 0.5)) {
			require.True(t, n.IsExcluded(e), "keep piece %s", e)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	build := func() *network.Network {
		b, err := network.New(wheelSeed(t), network.Config{RandomSeed: 7})
		require.NoError(t, err)
		n, err := b.Build()
		require.NoError(t, err)
		return n
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeSet(), b.EdgeSet())
	require.Equal(t, a.Graph().VertexList(), b.Graph().VertexList())
	require.Equal(t, a.ExcludedEdges(), b.ExcludedEdges())
}

func TestCrossingSeedIsUnsatisfiable(t *testing.T) {
	seed, err := core.FromSeed([]core.Vertex{
		{ID: "A", Pos: r2.Point{X: 0, Y: 0}},
		{ID: "B", Pos: r2.Point{X: 10, Y: 10}},
		{ID: "C", Pos: r2.Point{X: 0, Y: 10}},
		{ID: "D", Pos: r2.Point{X: 10, Y: 0}},
	}, [][2]string{{"A", "B"}, {"C", "D"}})
	require.NoError(t, err)

	h := countingHandler{counts: map[slog.Level]int{}}
	b, err := network.New(seed, network.Config{MaxAttempts: 5}, network.WithLogger(slog.New(h)))
	require.NoError(t, err)
	n, err := b.Build()
	require.ErrorIs(t, err, network.ErrUnsatisfiableMesh)
	require.ErrorIs(t, err, core.ErrEdgesCross)
	require.Nil(t, n)
	require.Equal(t, 5, h.counts[slog.LevelWarn], "one rejection per attempt")
	require.Zero(t, h.counts[slog.LevelInfo])
}

func TestOpenChainHasNoQuarters(t *testing.T) {
	seed, err := builder.BuildGraph(nil, nil, builder.Chain(r2.Point{}, r2.Point{X: 50}, r2.Point{X: 50, Y: 50}))
	require.NoError(t, err)
	b, err := network.New(seed, network.Config{})
	require.NoError(t, err)
	n, err := b.Build()
	require.NoError(t, err)
	require.Empty(t, n.Quarters())
	require.Equal(t, n.EdgeSet(), n.ExcludedEdges(), "no edge bounds a quarter")
}

func TestZeroProbabilityKeepsSeed(t *testing.T) {
	seed := wheelSeed(t)
	b, err := network.New(seed, network.Config{SubdivisionProbability: network.Probability(0)})
	require.NoError(t, err)
	n, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, seed.Edges(), n.EdgeSet())
	// Triangular wedges are compact enough; only the rim is excluded.
	require.Len(t, n.ExcludedEdges(), 8)
	require.Equal(t, 0.0, *b.Config().SubdivisionProbability, "zero is not replaced by the default")
}

func TestConfig(t *testing.T) {
	cfg := network.Config{}.WithDefaults()
	require.Equal(t, network.Config{
		MinimumEdgeLength:      8,
		SubdivisionProbability: network.Probability(0.75),
		RandomSeed:             1,
		MaxAttempts:            16,
		MaxSplitsPerQuarter:    64,
		MinLotCompactness:      0.15,
	}, cfg)
	require.NoError(t, cfg.Validate())

	bad := []network.Config{
		{MinimumEdgeLength: -1, SubdivisionProbability: network.Probability(0.5), MaxAttempts: 1},
		{MinimumEdgeLength: 1, SubdivisionProbability: network.Probability(1.5), MaxAttempts: 1},
		{MinimumEdgeLength: 1, SubdivisionProbability: network.Probability(0.5), MaxAttempts: 0},
		{MinimumEdgeLength: 1, SubdivisionProbability: network.Probability(0.5), MaxAttempts: 1, MaxSplitsPerQuarter: -2},
		{MinimumEdgeLength: 1, SubdivisionProbability: network.Probability(0.5), MaxAttempts: 1, MinLotCompactness: 2},
	}
	for i, c := range bad {
		require.ErrorIs(t, c.Validate(), network.ErrInvalidConfig, "case %d", i)
	}

	_, err := network.New(nil, network.Config{})
	require.ErrorIs(t, err, network.ErrNilSeed)
	_, err = network.New(wheelSeed(t), network.Config{SubdivisionProbability: network.Probability(3)})
	require.ErrorIs(t, err, network.ErrInvalidConfig)
	require.Panics(t, func() { network.WithRand(nil) })
}
