// SPDX-License-Identifier: MIT

// Package geom provides the planar geometry the mesh generator is built on.
//
// Points and vectors are github.com/golang/geo/r2 values; angles are
// github.com/golang/geo/s1 values. The package adds what r2 does not carry:
//
//   - Orientation, SegmentsConflict and friends for planarity checks
//     (two edges may share an endpoint, nothing else).
//   - ParamOnSegment / StrictlyBetween for validating cut points.
//   - Polygon metrics: SignedArea, Perimeter, Compactness, ContainsPoint.
//   - Bisector: the interior-facing bisector of a wedge, used by
//     straight-skeleton style offsetting.
//
// Tolerances:
//
//	Epsilon is an absolute tolerance scaled by segment length where a length
//	is involved, so predicates behave the same for unit and city-sized inputs.
//
// Complexity:
//
//   - Segment predicates: O(1).
//   - Polygon metrics: O(n) in the number of vertices.
package geom
