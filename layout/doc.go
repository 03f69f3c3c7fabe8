// Package layout runs one generation pass over a seed street graph and
// returns everything a renderer or placement step consumes:
//
//   - the densified street Network with its exclusion overlay,
//   - building Lots carved from every eligible quarter by the rectangle
//     partitioner,
//   - feature cells (wells, shrines, stalls) chosen by the distant-cells
//     finder on a cell grid where streets and lots are forbidden,
//   - the open regions of that grid.
//
// Configuration is a plain record, usually decoded from YAML with
// LoadConfig. Generate is synchronous, reproducible for a fixed config and
// seed graph, and shares no state between calls.
package layout
