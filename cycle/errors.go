// SPDX-License-Identifier: MIT
// Package: townmesh/cycle
//
// errors.go — sentinel errors for cycle maintenance.
//
// Callers MUST branch with errors.Is; context is attached with %w.

package cycle

import "errors"

var (
	// ErrNotAnEdge indicates a cut referenced an edge absent from the graph.
	ErrNotAnEdge = errors.New("cycle: not an edge")

	// ErrDegenerateSplit indicates a cut point that is not strictly inside the
	// edge, two cut points at the same position, or an empty cut.
	ErrDegenerateSplit = errors.New("cycle: degenerate split")

	// ErrInvalidCycle indicates a vertex sequence that is not a simple closed
	// walk over existing edges.
	ErrInvalidCycle = errors.New("cycle: invalid cycle")

	// ErrCycleNotFound indicates a cycle index out of range.
	ErrCycleNotFound = errors.New("cycle: cycle not found")

	// ErrBadChord indicates a chord whose endpoints are not two distinct,
	// non-adjacent vertices of the cycle, or which is already an edge.
	ErrBadChord = errors.New("cycle: bad chord")
)
