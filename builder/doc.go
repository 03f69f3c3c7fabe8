// Package builder provides seed-graph constructors for the mesh generator:
// the rings, rectangles, lattices, wheels and chains a settlement layout
// starts from. It follows the functional-options style used across townmesh,
// keeping construction deterministic, testable and free of globals.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:     creates a core.Graph and runs Constructors in order.
//     – Apply:          runs Constructors against an existing graph.
//     – Constructor:    a closure mutating the graph with a resolved config.
//     – Scoped:         runs a Constructor under an ID prefix and offset, so
//     several seeds (e.g., disjoint cycles) can share one graph.
//   - Constructors:
//     – Ring(n, radius):          regular polygon cycle, counterclockwise.
//     – Rectangle(w, h):          axis-aligned 4-cycle, counterclockwise.
//     – Lattice(rows, cols, s):   rows×cols street lattice with spacing s.
//     – Wheel(n, radius):         ring of n-1 rim vertices plus a hub with spokes.
//     – Chain(points...):         open polyline.
//     – Polygon(points...):       closed outline through arbitrary points.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: ID scheme, RNG, origin, jitter.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, PrefixIDFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options and seed ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime validation returns sentinel errors; constructors never panic.
//   - Documented complexity per constructor.
package builder
