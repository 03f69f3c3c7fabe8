// Package network densifies a seed street graph into a mesh of quarters and
// derives which street edges may bound a building lot.
//
// A Builder takes a planar seed (walls, main roads, disjoint cycles or open
// chains) and a Config. Build clones the seed, finds its bounded faces
// (quarters) with a half-edge walk, and subdivides them: a quarter picked by
// the seeded coin is cut by a chord between points on two of its long edges.
// Chords are checked against every street before they are laid. A face with
// other street components inside it, such as a wall ring around a keep, is a
// quarter too: the nested outlines are its holes and chords stay clear of them.
//
// Planarity, seed-edge survival and cycle connectivity are guaranteed by check-and-retry. After
// each attempt the whole result is validated; a failing attempt is thrown
// away and the next one starts again from the seed with a fresh random
// stream. When MaxAttempts attempts fail, Build returns ErrUnsatisfiableMesh
// and no graph.
//
// The exclusion overlay is a flag, not a topology change: excluded edges stay
// in the graph and in EdgeSet. An edge is excluded when it lies on an outer
// boundary (including the outline of a nested component), when it bounds no
// quarter, or when it bounds a quarter too thin to hold a lot (compactness
// below MinLotCompactness).
package network
