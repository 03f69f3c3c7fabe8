// Package builder defines shared constants used by seed constructors, ensuring
// consistent defaults and validation across all topologies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRing is the canonical name for the Ring constructor.
	MethodRing = "Ring"
	// MethodRectangle is the canonical name for the Rectangle constructor.
	MethodRectangle = "Rectangle"
	// MethodLattice is the canonical name for the Lattice constructor.
	MethodLattice = "Lattice"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier of the hub vertex in Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRingNodes is the smallest meaningful ring: a triangle.
const MinRingNodes = 3

// MinChainNodes is the smallest chain with at least one edge.
const MinChainNodes = 2

// MinWheelNodes is a triangle rim plus one hub.
const MinWheelNodes = 4

// MinLatticeDim is the smallest allowed lattice dimension (rows or cols).
// A 1×1 lattice is a lone vertex, still a valid seed.
const MinLatticeDim = 1
