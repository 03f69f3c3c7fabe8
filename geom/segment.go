// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Orientation classifies c against the directed line a→b:
// +1 counterclockwise (left), -1 clockwise (right), 0 collinear.
// Complexity: O(1).
func Orientation(a, b, c r2.Point) int {
	ab, ac := b.Sub(a), c.Sub(a)
	cross := ab.Cross(ac)
	tol := Epsilon * math.Max(1, ab.Norm()*ac.Norm())
	switch {
	case cross > tol:
		return 1
	case cross < -tol:
		return -1
	default:
		return 0
	}
}

// ParamOnSegment projects p onto the line through a and b.
// It returns the line parameter t (p ≈ a + t·(b-a)) and whether p lies on
// that line within tolerance. A degenerate segment (a == b) reports false.
// Complexity: O(1).
func ParamOnSegment(a, b, p r2.Point) (t float64, onLine bool) {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0, false
	}
	ap := p.Sub(a)
	t = ap.Dot(d) / l2
	dist := math.Abs(d.Cross(ap)) / math.Sqrt(l2)

	return t, dist <= Epsilon*math.Max(1, math.Sqrt(l2))
}

// StrictlyBetween reports whether p lies on segment a–b and differs from
// both endpoints.
func StrictlyBetween(a, b, p r2.Point) bool {
	t, on := ParamOnSegment(a, b, p)
	return on && t > Epsilon && t < 1-Epsilon
}

// SegmentsConflict reports whether segments a–b and c–d share any point other
// than a common endpoint. Proper crossings, T-junctions (an endpoint touching
// the other segment's interior) and collinear overlaps all conflict; two
// segments meeting only at a shared endpoint do not.
//
// This is the planarity predicate used for street edges.
// Complexity: O(1).
func SegmentsConflict(a, b, c, d r2.Point) bool {
	o1 := Orientation(a, b, c)
	o2 := Orientation(a, b, d)
	o3 := Orientation(c, d, a)
	o4 := Orientation(c, d, b)

	if o1 == 0 && o2 == 0 {
		return collinearOverlap(a, b, c, d)
	}
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	// Endpoint resting on the other segment's interior.
	if o1 == 0 && StrictlyBetween(a, b, c) {
		return true
	}
	if o2 == 0 && StrictlyBetween(a, b, d) {
		return true
	}
	if o3 == 0 && StrictlyBetween(c, d, a) {
		return true
	}
	if o4 == 0 && StrictlyBetween(c, d, b) {
		return true
	}

	return false
}

// collinearOverlap reports whether two collinear segments overlap on more
// than a single point.
func collinearOverlap(a, b, c, d r2.Point) bool {
	tc, okc := ParamOnSegment(a, b, c)
	td, okd := ParamOnSegment(a, b, d)
	if !okc || !okd {
		// a == b: a point cannot overlap along a length.
		return false
	}
	lo, hi := math.Min(tc, td), math.Max(tc, td)
	lo, hi = math.Max(lo, 0), math.Min(hi, 1)

	return hi-lo > Epsilon
}
