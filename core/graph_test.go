package core_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/townmesh/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// unitSquare returns the seed of the unit square A(0,0) B(1,0) C(1,1) D(0,1).
func unitSquare() ([]core.Vertex, [][2]string) {
	return []core.Vertex{
			{ID: VertexA, Pos: r2.Point{X: 0, Y: 0}},
			{ID: VertexB, Pos: r2.Point{X: 1, Y: 0}},
			{ID: VertexC, Pos: r2.Point{X: 1, Y: 1}},
			{ID: VertexD, Pos: r2.Point{X: 0, Y: 1}},
		}, [][2]string{
			{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}, {VertexD, VertexA},
		}
}

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	vs, es := unitSquare()
	g, err := core.FromSeed(vs, es)
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(4, s.g.VertexCount())
	require.Equal(4, s.g.EdgeCount())
	require.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())
}

func (s *GraphSuite) TestEdgesAreUnorderedAndSorted() {
	require := require.New(s.T())
	require.True(s.g.HasEdge(VertexA, VertexB))
	require.True(s.g.HasEdge(VertexB, VertexA))
	require.False(s.g.HasEdge(VertexA, VertexC))

	require.Equal([]core.Edge{
		{U: "A", V: "B"}, {U: "A", V: "D"}, {U: "B", V: "C"}, {U: "C", V: "D"},
	}, s.g.Edges())
}

func (s *GraphSuite) TestAddEdgeErrors() {
	require := require.New(s.T())
	_, err := s.g.AddEdge(VertexA, VertexA)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge(VertexB, VertexA)
	require.ErrorIs(err, core.ErrDuplicateEdge)

	_, err = s.g.AddEdge(VertexA, "Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	_, err = s.g.AddEdge("", VertexA)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	e, err := s.g.AddEdge(VertexC, VertexA)
	require.NoError(err)
	require.Equal(core.Edge{U: "A", V: "C"}, e)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.RemoveEdge(VertexB, VertexA))
	require.False(s.g.HasEdge(VertexA, VertexB))
	require.ErrorIs(s.g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)

	nb, err := s.g.NeighborIDs(VertexA)
	require.NoError(err)
	require.Equal([]string{VertexD}, nb)
}

func (s *GraphSuite) TestAddPointSkipsTakenIDs() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("v1", r2.Point{X: 5, Y: 5}))

	id, err := s.g.AddPoint(r2.Point{X: 2, Y: 2})
	require.NoError(err)
	require.Equal("v2", id)

	require.ErrorIs(s.g.AddVertex("v1", r2.Point{}), core.ErrVertexExists)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	c := s.g.Clone()
	require.Equal(s.g.Edges(), c.Edges())
	require.Equal(s.g.VertexList(), c.VertexList())

	require.NoError(c.RemoveEdge(VertexA, VertexB))
	require.True(s.g.HasEdge(VertexA, VertexB), "source untouched")

	idSrc, _ := s.g.AddPoint(r2.Point{X: 3})
	idClone, _ := c.AddPoint(r2.Point{X: 3})
	require.Equal(idSrc, idClone, "ID sequence carried over")
}

func (s *GraphSuite) TestComponentsAndConnected() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("X", r2.Point{X: 9, Y: 9}))

	comps := s.g.Components()
	require.Len(comps, 2)
	require.ElementsMatch([]string{"A", "B", "C", "D"}, comps[0])
	require.Equal([]string{"X"}, comps[1])

	require.True(s.g.Connected(VertexA, VertexC))
	require.False(s.g.Connected(VertexA, "X"))
	require.False(s.g.Connected(VertexA, "missing"))

	st := s.g.Stats()
	require.Equal(1, st.IsolatedCount)
	require.Equal(2, st.ComponentCount)
}

func (s *GraphSuite) TestPlanarity() {
	require := require.New(s.T())
	require.NoError(s.g.ValidatePlanar())

	// The diagonal A–C conflicts with nothing; B–D would then cross it.
	_, hit := s.g.FirstConflict(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
	require.False(hit)
	_, err := s.g.AddEdge(VertexA, VertexC)
	require.NoError(err)

	e, hit := s.g.FirstConflict(r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1})
	require.True(hit)
	require.Equal(core.Edge{U: "A", V: "C"}, e)
	_, hit = s.g.FirstConflict(r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, core.NewEdge(VertexC, VertexA))
	require.False(hit, "ignored edge")

	_, err = s.g.AddEdge(VertexB, VertexD)
	require.NoError(err)
	require.ErrorIs(s.g.ValidatePlanar(), core.ErrEdgesCross)
}

func (s *GraphSuite) TestHasChain() {
	require := require.New(s.T())
	require.True(s.g.HasChain(VertexA, VertexB))
	require.False(s.g.HasChain(VertexA, VertexC), "no diagonal")

	// Split A–B at (0.25,0) and (0.75,0).
	require.NoError(s.g.RemoveEdge(VertexA, VertexB))
	require.NoError(s.g.AddVertex("p", r2.Point{X: 0.25}))
	require.NoError(s.g.AddVertex("q", r2.Point{X: 0.75}))
	for _, pair := range [][2]string{{VertexA, "p"}, {"p", "q"}, {"q", VertexB}} {
		_, err := s.g.AddEdge(pair[0], pair[1])
		require.NoError(err)
	}
	require.True(s.g.HasChain(VertexA, VertexB))
	require.True(s.g.HasChain(VertexB, VertexA))

	// Breaking the middle piece loses the chain even though B is reachable.
	require.NoError(s.g.RemoveEdge("p", "q"))
	require.True(s.g.Connected(VertexA, VertexB))
	require.False(s.g.HasChain(VertexA, VertexB))
	require.False(s.g.HasChain(VertexA, "missing"))
}

func (s *GraphSuite) TestGeometry() {
	require := require.New(s.T())
	l, err := s.g.Length(core.NewEdge(VertexA, VertexB))
	require.NoError(err)
	require.InDelta(1.0, l, 1e-12)

	_, _, err = s.g.Segment(core.NewEdge(VertexA, VertexC))
	require.ErrorIs(err, core.ErrEdgeNotFound)

	b := s.g.Bounds()
	require.Equal(r2.Point{X: 0, Y: 0}, b.Lo())
	require.Equal(r2.Point{X: 1, Y: 1}, b.Hi())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestFromSeedValidation(t *testing.T) {
	vs, _ := unitSquare()
	cases := []struct {
		name  string
		verts []core.Vertex
		edges [][2]string
		want  error
	}{
		{"dangling", vs, [][2]string{{"A", "Z"}}, core.ErrDanglingEndpoint},
		{"self-loop", vs, [][2]string{{"A", "A"}}, core.ErrLoopNotAllowed},
		{"duplicate reversed", vs, [][2]string{{"A", "B"}, {"B", "A"}}, core.ErrDuplicateEdge},
		{"duplicate vertex", append(append([]core.Vertex{}, vs...), core.Vertex{ID: "A"}), nil, core.ErrVertexExists},
		{"empty id", []core.Vertex{{ID: ""}}, nil, core.ErrEmptyVertexID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromSeed(tc.verts, tc.edges)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g, "no partial graph")
		})
	}
}

func TestEdgeHelpers(t *testing.T) {
	e := core.NewEdge("B", "A")
	require.Equal(t, "A", e.U)
	require.Equal(t, "B", e.Other("A"))
	require.Equal(t, "", e.Other("C"))
	require.True(t, e.Has("B"))
	require.Equal(t, "A-B", e.String())
}
