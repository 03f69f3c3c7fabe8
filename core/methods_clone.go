// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over the AddPoint counter so IDs allocated on the clone
//     follow the same sequence they would have followed on the source.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, positions, edges,
// adjacency, vertex prefix and ID counter.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithVertexPrefix(g.vertexPrefix))
	clone.nextVertexID = g.nextVertexID
	for id, p := range g.vertices {
		clone.vertices[id] = p
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for e := range g.edges {
		clone.edges[e] = struct{}{}
		clone.adjacency[e.U][e.V] = struct{}{}
		clone.adjacency[e.V][e.U] = struct{}{}
	}

	return clone
}
