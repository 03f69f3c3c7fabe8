// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// straightAngleTolerance is how close (in radians) the opening of a wedge
// must be to π to be resolved by the anti-parallel tie-break.
const straightAngleTolerance = 1e-12

// Bisector describes a wedge spanned counterclockwise from CW to CCW around
// a shared origin. The wedge interior is the region swept when rotating CW
// counterclockwise until it meets CCW; it may be reflex (> π).
//
// Callers must supply correctly oriented arms: swapping them selects the
// complementary wedge and flips the bisector outward.
type Bisector struct {
	cw, ccw r2.Point
}

// NewBisector validates the wedge arms and returns a Bisector.
// Returns ErrZeroVector if either arm has zero length.
func NewBisector(cw, ccw r2.Point) (Bisector, error) {
	if cw.Norm() == 0 {
		return Bisector{}, fmt.Errorf("NewBisector: cw arm: %w", ErrZeroVector)
	}
	if ccw.Norm() == 0 {
		return Bisector{}, fmt.Errorf("NewBisector: ccw arm: %w", ErrZeroVector)
	}
	return Bisector{cw: cw, ccw: ccw}, nil
}

// Angle returns the counterclockwise opening of the wedge, in [0, 2π).
func (b Bisector) Angle() s1.Angle {
	return CCWAngle(b.cw, b.ccw)
}

// AsVector returns the unit vector bisecting the wedge, pointing into its
// interior: CW rotated counterclockwise by half the opening angle.
//
// Anti-parallel arms (opening π) leave the bisector direction ambiguous in
// floating point; the result is then exactly CW rotated 90° counterclockwise,
// which is the interior side of a counterclockwise-measured wedge.
// Coincident arms (opening 0) return CW normalized.
func (b Bisector) AsVector() r2.Point {
	u := b.cw.Normalize()
	theta := b.Angle().Radians()
	if math.Abs(theta-math.Pi) <= straightAngleTolerance || isAntiParallel(b.cw, b.ccw) {
		return u.Ortho()
	}
	return Rotate(u, s1.Angle(theta/2)*s1.Radian).Normalize()
}

// isAntiParallel reports whether u and v point in exactly opposite
// directions after normalization.
func isAntiParallel(u, v r2.Point) bool {
	un, vn := u.Normalize(), v.Normalize()
	return NearlyEqual(un, r2.Point{X: -vn.X, Y: -vn.Y})
}
