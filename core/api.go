// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Seed-graph construction with full validation, plus read-only stats.
// Policy:
//   - FromSeed is atomic: it returns either a fully valid graph or an error,
//     never a partially populated graph.
//   - Every exported function documents complexity.

package core

import (
	"fmt"
)

// FromSeed builds a Graph from a vertex list and an edge list.
//
// Implementation:
//   - Stage 1: Register every vertex (rejects empty IDs, duplicates, non-finite positions).
//   - Stage 2: Validate every edge: both endpoints known (ErrDanglingEndpoint),
//     no self-loop (ErrLoopNotAllowed), no repeated unordered pair (ErrDuplicateEdge).
//   - Stage 3: Insert the edges in input order.
//
// Errors are wrapped with the offending index so callers can report the
// malformed input precisely; use errors.Is against the sentinels.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
//
// Notes:
//   - Planarity is not checked here; call ValidatePlanar when the seed comes
//     from an untrusted source.
func FromSeed(vertices []Vertex, edges [][2]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	for i, v := range vertices {
		if err := g.AddVertex(v.ID, v.Pos); err != nil {
			return nil, fmt.Errorf("FromSeed: vertex #%d: %w", i, err)
		}
	}

	seen := make(map[Edge]int, len(edges))
	for i, pair := range edges {
		a, b := pair[0], pair[1]
		if !g.HasVertex(a) {
			return nil, fmt.Errorf("FromSeed: edge #%d (%s,%s): endpoint %q: %w", i, a, b, a, ErrDanglingEndpoint)
		}
		if !g.HasVertex(b) {
			return nil, fmt.Errorf("FromSeed: edge #%d (%s,%s): endpoint %q: %w", i, a, b, b, ErrDanglingEndpoint)
		}
		if a == b {
			return nil, fmt.Errorf("FromSeed: edge #%d (%s,%s): %w", i, a, b, ErrLoopNotAllowed)
		}
		e := NewEdge(a, b)
		if first, dup := seen[e]; dup {
			return nil, fmt.Errorf("FromSeed: edge #%d repeats edge #%d (%s): %w", i, first, e, ErrDuplicateEdge)
		}
		seen[e] = i
	}

	for _, pair := range edges {
		if _, err := g.AddEdge(pair[0], pair[1]); err != nil {
			// Unreachable after validation; kept so a future invariant change surfaces loudly.
			return nil, fmt.Errorf("FromSeed: %w", err)
		}
	}

	return g, nil
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int
	IsolatedCount  int // vertices with degree 0
	ComponentCount int
}

// Stats produces a deterministic snapshot of graph sizes.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:    g.VertexCount(),
		EdgeCount:      g.EdgeCount(),
		ComponentCount: len(g.Components()),
	}

	g.muEdgeAdj.RLock()
	for _, nb := range g.adjacency {
		if len(nb) == 0 {
			stats.IsolatedCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
