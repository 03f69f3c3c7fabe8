// Package core provides the planar mesh graph every townmesh stage works on:
// positioned vertices joined by unordered, simple edges.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Each vertex has a unique string ID and an r2.Point position.
//   - Each edge is an unordered pair {U,V} stored normalized (U < V).
//   - No self-loops, no parallel edges, no dangling endpoints.
//   - The graph need not be connected (several disjoint cycles or chains
//     are a normal seed).
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Planarity is a geometric property and is not enforced on every AddEdge:
// generators probe candidates with FirstConflict before inserting, and
// ValidatePlanar performs the full pairwise check.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts...) *Graph                               // O(1)
//	FromSeed(vertices []Vertex, edges [][2]string) (*Graph, error) // O(V+E)
//
//	// Vertex lifecycle
//	AddVertex(id string, pos r2.Point) error               // O(1)
//	AddPoint(pos r2.Point) (string, error)                 // O(1), fresh ID
//	HasVertex(id string) bool                              // O(1)
//	Position(id string) (r2.Point, error)                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string) (Edge, error)                     // O(1)
//	RemoveEdge(a, b string) error                          // O(1)
//	HasEdge(a, b string) bool                              // O(1)
//
//	// Query
//	Vertices() []string, VertexList() []Vertex             // O(V log V)
//	Edges() []Edge                                         // O(E log E)
//	NeighborIDs(id) ([]string, error), Degree(id)          // O(d log d)
//	Segment(e), Length(e), Bounds()
//
//	// Topology & geometry checks
//	Components() [][]string, Connected(ids...) bool        // O(V+E)
//	FirstConflict(a, b r2.Point) (Edge, bool)              // O(E)
//	ValidatePlanar() error                                 // O(E²)
//
//	// Cloning
//	Clone() *Graph                                         // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID     – zero-length vertex ID
//	ErrVertexExists      – vertex ID already present
//	ErrVertexNotFound    – missing vertex
//	ErrEdgeNotFound      – missing edge
//	ErrLoopNotAllowed    – self-loop
//	ErrDuplicateEdge     – edge already present
//	ErrDanglingEndpoint  – seed edge references an unknown vertex
//	ErrBadPosition       – NaN or infinite coordinate
//	ErrEdgesCross        – two edges share more than an endpoint
package core
