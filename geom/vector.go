// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Epsilon is the base tolerance of all predicates in this package.
const Epsilon = 1e-9

// Pt is a convenience constructor for r2.Point.
func Pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

// Rotate returns p rotated counterclockwise by angle around the origin.
func Rotate(p r2.Point, angle s1.Angle) r2.Point {
	sin, cos := math.Sincos(angle.Radians())
	return r2.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b r2.Point, t float64) r2.Point {
	return r2.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// NearlyEqual reports whether a and b coincide within Epsilon, scaled by
// their magnitude.
func NearlyEqual(a, b r2.Point) bool {
	scale := math.Max(1, math.Max(a.Norm(), b.Norm()))
	return b.Sub(a).Norm() <= Epsilon*scale
}

// CCWAngle returns the counterclockwise angle swept from u to v, in [0, 2π).
func CCWAngle(u, v r2.Point) s1.Angle {
	a := math.Atan2(u.Cross(v), u.Dot(v))
	if a < 0 {
		a += 2 * math.Pi
	}
	return s1.Angle(a) * s1.Radian
}
