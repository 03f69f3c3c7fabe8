// SPDX-License-Identifier: MIT
// Package: townmesh/partition
//
// partition.go — the worklist partitioner.

package partition

// Threshold returns the smallest side length that can still be split:
// 2·minRectangleWidth + borderWidth + 1, after normalizing the inputs the
// same way Create does.
func Threshold(minRectangleWidth, borderWidth int) int {
	m, b := normalize(minRectangleWidth, borderWidth)
	return 2*m + b + 1
}

// normalize clamps the minimum width to ≥ 1 and the border to ≥ 0.
func normalize(minRectangleWidth, borderWidth int) (int, int) {
	return max(minRectangleWidth, 1), max(borderWidth, 0)
}

// Create partitions the rectangle (x, y, width, height).
//
// Implementation:
//   - Stage 1: Non-positive width or height ⇒ empty system.
//   - Stage 2: Seed a FIFO worklist with the input rectangle.
//   - Stage 3: Pop a rectangle. If neither side is ≥ Threshold it is a leaf.
//     Otherwise pick the axis (forced or rng.Intn(2)), draw the first child's
//     size a uniformly from [min, dim − border − min], emit children of size
//     a and dim − a − border separated by the border, log the split and push
//     both children.
//
// Each split strictly shrinks both children, so the loop reaches a fixed point.
//
// Complexity: O(R) splits and pushes for R leaves; O(R) space.
func Create(x, y, width, height, minRectangleWidth, borderWidth int, opts ...Option) *RectangleSystem {
	m, border := normalize(minRectangleWidth, borderWidth)
	seed := Rectangle{X: x, Y: y, W: width, H: height}
	sys := &RectangleSystem{bounds: seed, border: border}
	if seed.Empty() {
		return sys
	}

	cfg := newConfig(opts...)
	threshold := 2*m + border + 1

	queue := []Rectangle{seed}
	for head := 0; head < len(queue); head++ {
		r := queue[head]
		canW, canH := r.W >= threshold, r.H >= threshold
		if !canW && !canH {
			sys.rects = append(sys.rects, r)
			continue
		}

		orient := Horizontal
		switch {
		case canW && canH:
			if cfg.rng.Intn(2) == 0 {
				orient = Vertical
			}
		case canW:
			orient = Vertical
		}

		dim := r.H
		if orient == Vertical {
			dim = r.W
		}
		a := m + cfg.rng.Intn(dim-border-2*m+1)

		var c0, c1 Rectangle
		if orient == Vertical {
			c0 = Rectangle{X: r.X, Y: r.Y, W: a, H: r.H}
			c1 = Rectangle{X: r.X + a + border, Y: r.Y, W: dim - a - border, H: r.H}
		} else {
			c0 = Rectangle{X: r.X, Y: r.Y, W: r.W, H: a}
			c1 = Rectangle{X: r.X, Y: r.Y + a + border, W: r.W, H: dim - a - border}
		}
		sys.splits = append(sys.splits, Split{Parent: r, Orientation: orient, Offset: a, Children: [2]Rectangle{c0, c1}})
		queue = append(queue, c0, c1)
	}

	return sys
}
