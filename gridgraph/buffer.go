package gridgraph

import "fmt"

const unknown = -1

// BufferBorder answers buffer-zone membership over a fixed Bounds.
//
// A cell is a border member iff it is not forbidden itself and the nearest
// forbidden cell is at Chebyshev distance 1..depth. The forbidden predicate
// is total: cells outside Bounds are consulted too, so a street just past
// the edge of the grid still pushes its buffer inward.
//
// Answers are memoized per cell. A BufferBorder is not safe for concurrent
// use; build one per goroutine.
type BufferBorder struct {
	bounds    Bounds
	depth     int
	forbidden func(Cell) bool
	// memo[i] is the nearest forbidden distance of cell i, depth+1 when none
	// lies within depth, or unknown.
	memo []int
}

// NewBufferBorder validates its inputs and returns an empty-cache BufferBorder.
// A nil predicate forbids nothing.
//
// Errors: ErrEmptyBounds, ErrNegativeDepth.
// Complexity: O(W·H) to allocate the memo.
func NewBufferBorder(bounds Bounds, depth int, forbidden func(Cell) bool) (*BufferBorder, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("NewBufferBorder: %v: %w", bounds, ErrEmptyBounds)
	}
	if depth < 0 {
		return nil, fmt.Errorf("NewBufferBorder: depth=%d: %w", depth, ErrNegativeDepth)
	}
	if forbidden == nil {
		forbidden = func(Cell) bool { return false }
	}
	memo := make([]int, bounds.Len())
	for i := range memo {
		memo[i] = unknown
	}

	return &BufferBorder{bounds: bounds, depth: depth, forbidden: forbidden, memo: memo}, nil
}

// Bounds returns the declared bounds.
func (b *BufferBorder) Bounds() Bounds { return b.bounds }

// Depth returns the configured buffer depth.
func (b *BufferBorder) Depth() int { return b.depth }

// Forbidden reports the predicate for an in-bounds cell.
func (b *BufferBorder) Forbidden(c Cell) (bool, error) {
	d, found, err := b.Distance(c)
	if err != nil {
		return false, fmt.Errorf("Forbidden: %w", err)
	}
	return found && d == 0, nil
}

// Contains reports whether c is a border member.
// Errors: ErrOutOfBounds.
func (b *BufferBorder) Contains(c Cell) (bool, error) {
	d, found, err := b.Distance(c)
	if err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}
	return found && d >= 1, nil
}

// Distance returns the Chebyshev distance from c to the nearest forbidden
// cell and true, or (0, false) when none lies within depth. A forbidden c
// reports (0, true).
//
// Implementation:
//   - Stage 1: Map c to its memo slot (ErrOutOfBounds outside Bounds).
//   - Stage 2: On a miss, test c, then rings r = 1..depth around c, stopping
//     at the first ring holding a forbidden cell.
//
// Complexity: O(depth²) on a miss, O(1) on a hit.
func (b *BufferBorder) Distance(c Cell) (int, bool, error) {
	i, err := b.bounds.Index(c)
	if err != nil {
		return 0, false, fmt.Errorf("Distance: %w", err)
	}
	if b.memo[i] == unknown {
		b.memo[i] = b.scan(c)
	}
	d := b.memo[i]
	if d > b.depth {
		return 0, false, nil
	}
	return d, true, nil
}

// scan returns the nearest forbidden ring radius, or depth+1.
func (b *BufferBorder) scan(c Cell) int {
	if b.forbidden(c) {
		return 0
	}
	for r := 1; r <= b.depth; r++ {
		if b.ringHit(c, r) {
			return r
		}
	}
	return b.depth + 1
}

// ringHit tests the 8r cells at Chebyshev distance exactly r from c.
func (b *BufferBorder) ringHit(c Cell, r int) bool {
	for dx := -r; dx <= r; dx++ {
		if b.forbidden(Cell{X: c.X + dx, Y: c.Y - r}) || b.forbidden(Cell{X: c.X + dx, Y: c.Y + r}) {
			return true
		}
	}
	for dy := -r + 1; dy <= r-1; dy++ {
		if b.forbidden(Cell{X: c.X - r, Y: c.Y + dy}) || b.forbidden(Cell{X: c.X + r, Y: c.Y + dy}) {
			return true
		}
	}
	return false
}

// free reports whether c is neither forbidden nor a border member.
func (b *BufferBorder) free(c Cell) (bool, error) {
	_, found, err := b.Distance(c)
	if err != nil {
		return false, err
	}
	return !found, nil
}
