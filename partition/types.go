// SPDX-License-Identifier: MIT
// Package: townmesh/partition
//
// types.go — Rectangle, Split and RectangleSystem.

package partition

import "fmt"

// Rectangle is an axis-aligned rectangle on the integer grid covering cells
// [X, X+W) × [Y, Y+H).
type Rectangle struct {
	X, Y, W, H int
}

// Area returns W·H.
func (r Rectangle) Area() int { return r.W * r.H }

// Empty reports whether r covers no cell.
func (r Rectangle) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether cell (x, y) lies in r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Gap returns the number of free cells between r and o along each axis.
// A negative value on an axis means the projections overlap there.
func (r Rectangle) Gap(o Rectangle) (dx, dy int) {
	dx = max(o.X-(r.X+r.W), r.X-(o.X+o.W))
	dy = max(o.Y-(r.Y+r.H), r.Y-(o.Y+o.H))
	return dx, dy
}

// Separated reports whether r and o are at least border cells apart along
// some axis.
func (r Rectangle) Separated(o Rectangle, border int) bool {
	dx, dy := r.Gap(o)
	b := max(border, 0)
	return dx >= b || dy >= b
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Orientation names the axis a split cuts across.
type Orientation int

const (
	// Vertical splits divide the width: children sit left and right.
	Vertical Orientation = iota
	// Horizontal splits divide the height: children sit bottom and top.
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Split records one step of the partition tree.
type Split struct {
	Parent      Rectangle
	Orientation Orientation
	// Offset is the size of the first child along the split axis.
	Offset   int
	Children [2]Rectangle
}

// RectangleSystem is the immutable result of Create.
type RectangleSystem struct {
	bounds Rectangle
	border int
	rects  []Rectangle
	splits []Split
}

// Rectangles returns the leaf rectangles in the order they left the worklist.
func (s *RectangleSystem) Rectangles() []Rectangle {
	return append([]Rectangle(nil), s.rects...)
}

// Splits returns the split log in execution order.
func (s *RectangleSystem) Splits() []Split {
	return append([]Split(nil), s.splits...)
}

// BorderWidth returns the gap kept between sibling rectangles.
func (s *RectangleSystem) BorderWidth() int { return s.border }

// Len returns the number of leaf rectangles.
func (s *RectangleSystem) Len() int { return len(s.rects) }

// Bounds returns the seed rectangle.
func (s *RectangleSystem) Bounds() Rectangle { return s.bounds }

// Area returns the total area of the leaves; it never exceeds Bounds().Area().
func (s *RectangleSystem) Area() int {
	total := 0
	for _, r := range s.rects {
		total += r.Area()
	}
	return total
}
