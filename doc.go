// Package townmesh generates the street network of a settlement: road
// topology, building quarters, lots and obstacle-respecting feature cells,
// all laid over an arbitrary planar seed graph.
//
// What is townmesh?
//
//	A deterministic, seeded generator built from small packages:
//		• geom      — vector helpers on r2.Point, segment predicates, angle bisector
//		• core      — the planar mesh graph: positioned vertices, simple edges, planarity checks
//		• builder   — seed constructors: Ring, Rectangle, Lattice, Wheel, Chain, Polygon
//		• cycle     — cycle splitter: cut an edge into a chain, split a cycle by a chord
//		• network   — densify a seed into quarters; derive the lot-exclusion overlay
//		• partition — worklist rectangle partitioner for lots
//		• gridgraph — buffer zones and greedy distant-cell selection on a cell grid
//		• dijkstra  — street distances and routes over the mesh
//		• layout    — one generation pass tying everything together, YAML config
//
// Guarantees
//
//   - Reproducible: same seed graph, config and seed ⇒ identical output.
//   - No partial results: validation runs before mutation; a failed build
//     returns an error and no graph.
//   - No globals: every generator owns its random source, caches and logger.
//
// Quick ASCII example:
//
//	    D───────C          D───x───C
//	    │       │   build  │   │   │
//	    │       │  ─────▶  y───z───w
//	    │       │          │   │   │
//	    A───────B          A───v───B
//
// A rectangle seed becomes four quarters after three chord cuts (x–v, then
// y–z and z–w); the outer ring stays excluded from lot frontage.
//
//	go get github.com/katalvlaran/townmesh
package townmesh
