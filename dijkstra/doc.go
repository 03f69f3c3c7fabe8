// Package dijkstra computes street distances over the planar mesh.
//
// Overview:
//
//   - Dijkstra expands vertices from a single source in order of walking
//     distance, with each street costing its Euclidean length.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps and impassable streets.
//
// When to use:
//
//   - Ranking lots by distance from the town centre or a gate.
//   - Finding the walking route between two junctions (see PathTo).
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - Avoid: treats matching edges (for instance wall segments) as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
