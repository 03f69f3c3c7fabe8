// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/townmesh.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/townmesh/internal/mathx"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offsets for c in a fixed order.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Cell is one integer grid cell.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Chebyshev returns max(|Δx|, |Δy|).
// Complexity: O(1).
func Chebyshev(a, b Cell) int {
	return max(mathx.Abs(a.X-b.X), mathx.Abs(a.Y-b.Y))
}

// Bounds is the rectangle of cells [X, X+W) × [Y, Y+H).
type Bounds struct {
	X, Y, W, H int
}

// Empty reports whether b holds no cell.
func (b Bounds) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Len returns the number of cells in b.
func (b Bounds) Len() int {
	if b.Empty() {
		return 0
	}
	return b.W * b.H
}

// Contains reports whether c lies in b.
// Complexity: O(1).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.X && c.X < b.X+b.W && c.Y >= b.Y && c.Y < b.Y+b.H
}

// Index maps c to its row-major index: (y-Y)·W + (x-X).
// Errors: ErrOutOfBounds.
func (b Bounds) Index(c Cell) (int, error) {
	if !b.Contains(c) {
		return -1, fmt.Errorf("Index%v in %v: %w", c, b, ErrOutOfBounds)
	}
	return (c.Y-b.Y)*b.W + (c.X - b.X), nil
}

// Cell is the inverse of Index for 0 ≤ i < Len().
func (b Bounds) Cell(i int) Cell {
	return Cell{X: b.X + i%b.W, Y: b.Y + i/b.W}
}

// Cells returns every cell of b in row-major order (y, then x).
// Complexity: O(W·H).
func (b Bounds) Cells() []Cell {
	out := make([]Cell, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		out = append(out, b.Cell(i))
	}
	return out
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", b.X, b.Y, b.W, b.H)
}
