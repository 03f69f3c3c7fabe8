// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// SignedArea returns the shoelace area of the closed polygon pts:
// positive for counterclockwise order, negative for clockwise.
// Complexity: O(n).
func SignedArea(pts []r2.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += pts[i].Cross(pts[(i+1)%n])
	}
	return sum / 2
}

// Perimeter returns the length of the closed polygon boundary.
// Complexity: O(n).
func Perimeter(pts []r2.Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += Distance(pts[i], pts[(i+1)%n])
	}
	return sum
}

// Compactness returns the isoperimetric quotient 4πA/P² of pts:
// 1 for a disc, π/4 for a square, approaching 0 for sliver polygons.
// Degenerate polygons report 0.
func Compactness(pts []r2.Point) float64 {
	p := Perimeter(pts)
	if p == 0 {
		return 0
	}
	return 4 * math.Pi * math.Abs(SignedArea(pts)) / (p * p)
}

// ContainsPoint reports whether q lies strictly inside the polygon pts
// (even-odd rule). Points on the boundary are reported as outside.
// Complexity: O(n).
func ContainsPoint(pts []r2.Point, q r2.Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if Orientation(a, b, q) == 0 {
			if t, on := ParamOnSegment(a, b, q); on && t >= -Epsilon && t <= 1+Epsilon {
				return false
			}
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			x := (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y) + a.X
			if q.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// BoundingRect returns the smallest r2.Rect holding every point in pts.
func BoundingRect(pts []r2.Point) r2.Rect {
	return r2.RectFromPoints(pts...)
}
