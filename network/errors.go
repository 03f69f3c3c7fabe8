// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// errors.go — sentinel errors for mesh building.

package network

import "errors"

var (
	// ErrUnsatisfiableMesh indicates every bounded attempt produced an
	// invalid mesh (crossing streets or a disconnected seed cycle).
	ErrUnsatisfiableMesh = errors.New("network: unsatisfiable mesh")

	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("network: invalid config")

	// ErrNilSeed indicates New was called without a seed graph.
	ErrNilSeed = errors.New("network: nil seed graph")
)
