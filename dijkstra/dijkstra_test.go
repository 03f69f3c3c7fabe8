package dijkstra_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/dijkstra"
)

// block returns a 3×4 rectangle A B C D with the diagonal A–C, plus an
// isolated vertex E.
func block(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromSeed([]core.Vertex{
		{ID: "A", Pos: r2.Point{X: 0, Y: 0}},
		{ID: "B", Pos: r2.Point{X: 3, Y: 0}},
		{ID: "C", Pos: r2.Point{X: 3, Y: 4}},
		{ID: "D", Pos: r2.Point{X: 0, Y: 4}},
		{ID: "E", Pos: r2.Point{X: 10, Y: 10}},
	}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}})
	require.NoError(t, err)
	return g
}

func TestDijkstraDistances(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(block(t), dijkstra.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)

	require.InDelta(t, 0, dist["A"], 1e-12)
	require.InDelta(t, 3, dist["B"], 1e-12)
	require.InDelta(t, 5, dist["C"], 1e-12, "diagonal")
	require.InDelta(t, 4, dist["D"], 1e-12)
	require.True(t, math.IsInf(dist["E"], 1))
}

func TestDijkstraAvoidAndPath(t *testing.T) {
	diag := core.NewEdge("C", "A")
	dist, prev, err := dijkstra.Dijkstra(block(t),
		dijkstra.Source("A"),
		dijkstra.WithReturnPath(),
		dijkstra.WithAvoid(func(e core.Edge) bool { return e == diag }),
	)
	require.NoError(t, err)
	require.InDelta(t, 7, dist["C"], 1e-12)
	require.Equal(t, []string{"A", "B", "C"}, dijkstra.PathTo(prev, "A", "C"))
	require.Equal(t, []string{"A"}, dijkstra.PathTo(prev, "A", "A"))
	require.Nil(t, dijkstra.PathTo(prev, "A", "E"))
	require.Nil(t, dijkstra.PathTo(nil, "A", "C"))
}

func TestDijkstraMaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(block(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	require.InDelta(t, 3, dist["B"], 1e-12)
	require.InDelta(t, 4, dist["D"], 1e-12)
	require.True(t, math.IsInf(dist["C"], 1), "beyond the cap")
}

func TestDijkstraErrors(t *testing.T) {
	g := block(t)

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}
