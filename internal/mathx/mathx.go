// Package mathx holds small generic numeric helpers shared by the grid and
// layout packages.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns |v|.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to [lo, hi]. If lo > hi the result is lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FloorDiv divides rounding toward negative infinity, so that negative
// coordinates map to the correct bucket.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
