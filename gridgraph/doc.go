// Package gridgraph treats an integer cell grid as the placement surface for
// settlement features and answers the two spatial questions placement needs.
//
// What:
//
//   - BufferBorder: the cells whose Chebyshev distance to the nearest
//     forbidden cell (street, wall, water) is between 1 and a depth. Lookups
//     expand outward ring by ring, never more than depth rings, and every
//     answer is memoized per cell for the lifetime of the BufferBorder.
//   - DistantCellsFinder: a greedy pass over candidate cells that keeps a
//     candidate iff it is free, outside the buffer, and at least minDistance
//     (Chebyshev) from every cell kept before it.
//   - Regions: connected components of free cells outside the buffer.
//
// Why:
//
//   - Wells, shrines and market stalls must keep clear of streets and of
//     each other; the buffer models the clearance, the finder the spacing.
//
// Complexity:
//
//   - BufferBorder.Contains: O(depth²) on first lookup of a cell, O(1) after.
//   - DistantCellsFinder.Find: O(W·H·depth²) worst case; each spacing check
//     inspects at most nine buckets.
//   - Regions: O(W·H·d), d = 4 or 8.
//
// Errors:
//
//   - ErrOutOfBounds: a queried cell lies outside the declared Bounds.
//   - ErrEmptyBounds: Bounds with non-positive width or height.
//   - ErrNegativeDepth, ErrBadDistance: meaningless parameters.
package gridgraph
