// SPDX-License-Identifier: MIT

package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/internal/fixtures"
)

func TestGridSpatialGraph_VertexAndEdgeCounts(t *testing.T) {
	require := require.New(t)

	sg, err := fixtures.GridSpatialGraph(3, 4)
	require.NoError(err)
	require.Equal(12, sg.Graph().Len())
	// interior right-edges: 3*3, interior bottom-edges: 2*4
	require.Equal(3*3+2*4, sg.Graph().NumEdges())
}

func TestGridSpatialGraph_DirectedMirrorsEdges(t *testing.T) {
	require := require.New(t)

	sg, err := fixtures.GridSpatialGraph(2, 2, fixtures.WithDirected())
	require.NoError(err)
	require.True(sg.Graph().Directed())
	// 2 right-edges + 2 bottom-edges, each mirrored
	require.Equal((2+2)*2, sg.Graph().NumEdges())
}

func TestGridSpatialGraph_RejectsTooSmall(t *testing.T) {
	require := require.New(t)

	_, err := fixtures.GridSpatialGraph(0, 3)
	require.ErrorIs(err, fixtures.ErrTooFewVertices)
}
