package gridgraph

import "errors"

var (
	// ErrOutOfBounds indicates a cell outside the declared bounds.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrEmptyBounds indicates bounds with no cells.
	ErrEmptyBounds = errors.New("gridgraph: bounds must have positive width and height")
	// ErrNegativeDepth indicates a negative buffer depth.
	ErrNegativeDepth = errors.New("gridgraph: buffer depth must be ≥ 0")
	// ErrBadDistance indicates a minimum distance below 1.
	ErrBadDistance = errors.New("gridgraph: minimum distance must be ≥ 1")
	// ErrNilBorder indicates a finder built without a BufferBorder.
	ErrNilBorder = errors.New("gridgraph: nil buffer border")
)
