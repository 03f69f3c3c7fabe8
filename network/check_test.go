package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/townmesh/builder"
)

func TestCheckRejectsLostSeedEdge(t *testing.T) {
	seed, err := builder.BuildGraph(nil, nil, builder.Wheel(5, 50))
	require.NoError(t, err)
	b, err := New(seed, Config{})
	require.NoError(t, err)

	g := seed.Clone()
	require.NoError(t, b.check(g))

	// Dropping one spoke keeps every vertex connected but loses a street.
	require.NoError(t, g.RemoveEdge(builder.CenterVertexID, "0"))
	require.True(t, g.Connected(g.Vertices()...))
	require.ErrorIs(t, b.check(g), ErrUnsatisfiableMesh)
}
