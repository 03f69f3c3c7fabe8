// Package cycle maintains closed polygon boundaries (cycles) over a backing
// core.Graph and mutates them without breaking their traversal order.
//
// The central type is Splitter. It owns a set of cycles, each stored as a
// doubly linked ring of vertex IDs, plus an index from edge to the cycles
// that traverse it. Two mutations are offered:
//
//   - IntegrateCutSegment replaces one edge by a chain through new interior
//     points and splices those points into every cycle using the edge.
//   - SplitCycle closes a chord between two vertices of one cycle and
//     divides it into two cycles sharing the chord.
//
// Both validate before they mutate: a rejected call leaves the graph and
// every cycle exactly as they were.
//
// Complexity:
//
//   - IntegrateCutSegment: O(k log k + c·k) for k points and c cycles on the edge.
//   - SplitCycle:          O(L) for a cycle of length L.
//   - Cycle / Polygon:     O(L).
package cycle
