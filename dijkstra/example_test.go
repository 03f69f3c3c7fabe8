package dijkstra_test

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/dijkstra"
)

// ExampleDijkstra walks from one corner of a 3×4 block to the opposite one.
func ExampleDijkstra() {
	g, _ := core.FromSeed([]core.Vertex{
		{ID: "A", Pos: r2.Point{X: 0, Y: 0}},
		{ID: "B", Pos: r2.Point{X: 3, Y: 0}},
		{ID: "C", Pos: r2.Point{X: 3, Y: 4}},
		{ID: "D", Pos: r2.Point{X: 0, Y: 4}},
	}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	fmt.Println(dist["C"], dijkstra.PathTo(prev, "A", "C"))
	// Output: 7 [A B C]
}
