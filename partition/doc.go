// Package partition splits an axis-aligned integer rectangle into a system
// of non-overlapping rectangles separated by a fixed border gap, the way a
// city block is carved into building lots.
//
// Create runs an explicit FIFO worklist: a rectangle is split while at least
// one of its sides is ≥ 2·minRectangleWidth + borderWidth + 1. The split axis
// is forced when only one side qualifies and chosen by a fair coin otherwise;
// the offset is uniform over every position leaving both children at least
// minRectangleWidth wide. Every split is logged, so the partition tree can be
// replayed or compared across runs.
//
// Create never fails: undersized input is returned unsplit and non-positive
// sizes produce an empty system. Given the same seed the output is identical.
package partition
