// SPDX-License-Identifier: MIT

package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/internal/fixtures"
)

func TestRandomSpatialGraph_DeterministicForFixedSeed(t *testing.T) {
	require := require.New(t)

	a, err := fixtures.RandomSpatialGraph(200, 2, fixtures.WithSeed(42), fixtures.WithEdgeProbability(0.05))
	require.NoError(err)
	b, err := fixtures.RandomSpatialGraph(200, 2, fixtures.WithSeed(42), fixtures.WithEdgeProbability(0.05))
	require.NoError(err)

	require.Equal(a.Graph().Len(), b.Graph().Len())
	require.Equal(a.Graph().NumEdges(), b.Graph().NumEdges())

	edgesA, err := a.Graph().Edges(nil)
	require.NoError(err)
	edgesB, err := b.Graph().Edges(nil)
	require.NoError(err)
	require.Equal(edgesA, edgesB)
}

func TestRandomSpatialGraph_RejectsBadParams(t *testing.T) {
	require := require.New(t)

	_, err := fixtures.RandomSpatialGraph(0, 2)
	require.ErrorIs(err, fixtures.ErrTooFewVertices)

	_, err = fixtures.RandomSpatialGraph(10, 0)
	require.ErrorIs(err, fixtures.ErrInvalidDims)

	_, err = fixtures.RandomSpatialGraph(10, 2, fixtures.WithBounds([]float64{0}, []float64{1}))
	require.ErrorIs(err, fixtures.ErrBoundsMismatch)
}

func TestRandomSpatialGraph_PointTreeMatchesVertexCount(t *testing.T) {
	require := require.New(t)

	sg, err := fixtures.RandomSpatialGraph(500, 3, fixtures.WithSeed(7), fixtures.WithEdgeProbability(0.02))
	require.NoError(err)

	ids, err := sg.QueryNodesInROI([]float64{-1e9, -1e9, -1e9}, []float64{1e9, 1e9, 1e9})
	require.NoError(err)
	require.Len(ids, sg.Graph().Len())
}
