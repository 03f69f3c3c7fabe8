// Package builder provides internal helper functions used by Constructor
// implementations to emit positioned vertices and edge chains.
package builder

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
)

// addPlacedVertices inserts len(pts) vertices with IDs cfg.idFn(first..),
// placing each point through cfg.place. Returns the IDs in input order.
//
// Complexity: O(n) time, O(n) space for the returned IDs.
func addPlacedVertices(g *core.Graph, cfg builderConfig, method string, first int, pts []r2.Point) ([]string, error) {
	ids := make([]string, len(pts))
	for i, p := range pts {
		id := cfg.idFn(first + i)
		if err := g.AddVertex(id, cfg.place(p)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addChainEdges connects ids[i]–ids[i+1]; when closed, also ids[n-1]–ids[0].
//
// Complexity: O(n) time, O(1) extra space.
func addChainEdges(g *core.Graph, method string, ids []string, closed bool) error {
	n := len(ids)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		u, v := ids[i], ids[(i+1)%n]
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
		}
	}

	return nil
}
