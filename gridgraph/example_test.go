// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/townmesh/gridgraph"
)

// ExampleDistantCellsFinder_Find places features next to a wall running
// along x = 0. The one-cell buffer keeps column x = 1 clear, and the
// three-cell spacing leaves a regular pattern.
func ExampleDistantCellsFinder_Find() {
	bounds := gridgraph.Bounds{X: 0, Y: 0, W: 10, H: 5}
	wall := func(c gridgraph.Cell) bool { return c.X == 0 }

	bb, _ := gridgraph.NewBufferBorder(bounds, 1, wall)
	f, _ := gridgraph.NewDistantCellsFinder(bb, 3)
	cells, _ := f.Find()
	fmt.Println(cells)

	// Output:
	// [(2,0) (5,0) (8,0) (2,3) (5,3) (8,3)]
}
