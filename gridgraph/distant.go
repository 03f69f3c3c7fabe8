package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/townmesh/internal/mathx"
)

// DistantCellsFinder greedily picks free cells spaced at least minDistance
// apart (Chebyshev). The pick is order-dependent and deterministic for a
// fixed candidate order; it is not guaranteed to be maximum.
type DistantCellsFinder struct {
	border      *BufferBorder
	minDistance int
}

// NewDistantCellsFinder binds a finder to border.
// Errors: ErrNilBorder, ErrBadDistance (minDistance < 1).
func NewDistantCellsFinder(border *BufferBorder, minDistance int) (*DistantCellsFinder, error) {
	if border == nil {
		return nil, ErrNilBorder
	}
	if minDistance < 1 {
		return nil, fmt.Errorf("NewDistantCellsFinder: minDistance=%d: %w", minDistance, ErrBadDistance)
	}
	return &DistantCellsFinder{border: border, minDistance: minDistance}, nil
}

// Find runs the greedy pass over every cell of the border's bounds in
// row-major order (y ascending, then x ascending).
func (f *DistantCellsFinder) Find() ([]Cell, error) {
	return f.FindFrom(f.border.bounds.Cells())
}

// FindFrom runs the greedy pass over candidates in the given order.
//
// Implementation:
//   - Stage 1: Reject the call if any candidate is out of bounds (ErrOutOfBounds).
//   - Stage 2: For each candidate, skip it if forbidden or in the buffer;
//     otherwise probe the 3×3 buckets around it (bucket side = minDistance)
//     and accept it iff no accepted cell there is closer than minDistance.
//
// Complexity: O(n·depth²) for n candidates on a cold cache.
func (f *DistantCellsFinder) FindFrom(candidates []Cell) ([]Cell, error) {
	for _, c := range candidates {
		if !f.border.bounds.Contains(c) {
			return nil, fmt.Errorf("FindFrom: candidate %v outside %v: %w", c, f.border.bounds, ErrOutOfBounds)
		}
	}

	var accepted []Cell
	buckets := make(map[[2]int][]Cell)
	side := f.minDistance
	for _, c := range candidates {
		ok, err := f.border.free(c)
		if err != nil {
			return nil, fmt.Errorf("FindFrom: %w", err)
		}
		if !ok {
			continue
		}
		key := [2]int{mathx.FloorDiv(c.X, side), mathx.FloorDiv(c.Y, side)}
		if f.tooClose(buckets, key, c) {
			continue
		}
		accepted = append(accepted, c)
		buckets[key] = append(buckets[key], c)
	}

	return accepted, nil
}

func (f *DistantCellsFinder) tooClose(buckets map[[2]int][]Cell, key [2]int, c Cell) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, o := range buckets[[2]int{key[0] + dx, key[1] + dy}] {
				if Chebyshev(o, c) < f.minDistance {
					return true
				}
			}
		}
	}
	return false
}
