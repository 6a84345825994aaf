// SPDX-License-Identifier: MIT

package spatialgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/dtype"
	"github.com/katalvlaran/spatialgraph/graph"
	"github.com/katalvlaran/spatialgraph/spatialgraph"
)

func newFixture(t *testing.T) *spatialgraph.Graph[int, float64] {
	t.Helper()
	sg, err := spatialgraph.NewGraph[int, float64](
		"pos", 2,
		spatialgraph.WithNodeAttr("pos", dtype.MustParse("float64[2]")),
	)
	require.NoError(t, err)

	return sg
}

func TestNewGraph_RequiresDeclaredPositionAttr(t *testing.T) {
	require := require.New(t)

	_, err := spatialgraph.NewGraph[int, float64]("pos", 2)
	require.ErrorIs(err, spatialgraph.ErrPositionAttrUndeclared)

	_, err = spatialgraph.NewGraph[int, float64]("pos", 2,
		spatialgraph.WithNodeAttr("pos", dtype.MustParse("float64[3]")))
	require.ErrorIs(err, spatialgraph.ErrPositionAttrShape)

	_, err = spatialgraph.NewGraph[int, float64]("pos", 0)
	require.ErrorIs(err, spatialgraph.ErrInvalidDims)
}

func TestAddNode_IndexesPointAndRollsBackOnFailure(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	n, err := sg.AddNode(1, map[string]any{"pos": []float64{1, 2}})
	require.NoError(err)
	require.Equal(1, n)

	_, err = sg.AddNode(2, map[string]any{"pos": "not-a-position"})
	require.ErrorIs(err, spatialgraph.ErrPositionValue)

	ids, err := sg.QueryNodesInROI([]float64{0, 0}, []float64{10, 10})
	require.NoError(err)
	require.Equal([]int{1}, ids, "the rejected AddNode must not leave an orphan point entry")
}

func TestAddNode_DuplicateDoesNotDuplicatePoint(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	_, err := sg.AddNode(1, map[string]any{"pos": []float64{1, 1}})
	require.NoError(err)
	n, err := sg.AddNode(1, map[string]any{"pos": []float64{9, 9}})
	require.NoError(err)
	require.Equal(0, n)

	ids, err := sg.QueryNodesInROI([]float64{0, 0}, []float64{10, 10})
	require.NoError(err)
	require.Len(ids, 1)
}

func TestAddEdge_IndexesSegmentAndRollsBackOnFailure(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	_, err := sg.AddNode(1, map[string]any{"pos": []float64{0, 0}})
	require.NoError(err)
	_, err = sg.AddNode(2, map[string]any{"pos": []float64{10, 0}})
	require.NoError(err)

	n, err := sg.AddEdge(1, 2, map[string]any{})
	require.NoError(err)
	require.Equal(1, n)

	edges, err := sg.QueryEdgesInROI([]float64{-1, -1}, []float64{11, 1})
	require.NoError(err)
	require.Len(edges, 1)

	_, err = sg.AddEdge(1, 3, map[string]any{})
	require.ErrorIs(err, graph.ErrNodeNotFound)

	edges, err = sg.QueryEdgesInROI([]float64{-100, -100}, []float64{100, 100})
	require.NoError(err)
	require.Len(edges, 1, "the rejected AddEdge must not leave an orphan line entry")

	n, err = sg.AddEdge(2, 1, map[string]any{})
	require.NoError(err)
	require.Equal(0, n, "duplicate edge rolls back its speculative line entry")

	edges, err = sg.QueryEdgesInROI([]float64{-100, -100}, []float64{100, 100})
	require.NoError(err)
	require.Len(edges, 1)
}

func TestQueryNearestNodesAndEdges(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	positions := map[int][]float64{
		1: {0, 0},
		2: {5, 0},
		3: {10, 0},
	}
	for id, pos := range positions {
		_, err := sg.AddNode(id, map[string]any{"pos": pos})
		require.NoError(err)
	}
	_, err := sg.AddEdge(1, 2, map[string]any{})
	require.NoError(err)
	_, err = sg.AddEdge(2, 3, map[string]any{})
	require.NoError(err)

	nearest, err := sg.QueryNearestNodes([]float64{1, 0}, 1)
	require.NoError(err)
	require.Equal([]int{1}, nearest)

	nearestEdges, err := sg.QueryNearestEdges([]float64{5, 1}, 1)
	require.NoError(err)
	require.Len(nearestEdges, 1)

	nodeIDs, nodeDists, err := sg.QueryNearestNodesWithDistances([]float64{1, 0}, 1)
	require.NoError(err)
	require.Equal([]int{1}, nodeIDs)
	require.Equal([]float64{1}, nodeDists)

	edgePairs, edgeDists, err := sg.QueryNearestEdgesWithDistances([]float64{5, 1}, 1)
	require.NoError(err)
	require.Len(edgePairs, 1)
	require.Len(edgeDists, 1)
	require.Equal(1.0, edgeDists[0])
}

func TestUpdateNodePosition_MovesPointAndIncidentEdges(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	_, err := sg.AddNode(1, map[string]any{"pos": []float64{0, 0}})
	require.NoError(err)
	_, err = sg.AddNode(2, map[string]any{"pos": []float64{10, 0}})
	require.NoError(err)
	_, err = sg.AddEdge(1, 2, map[string]any{})
	require.NoError(err)

	require.NoError(sg.UpdateNodePosition(1, []float64{0, 10}))

	ids, err := sg.QueryNodesInROI([]float64{-1, -1}, []float64{1, 1})
	require.NoError(err)
	require.Empty(ids, "the old point entry must not remain after the move")

	ids, err = sg.QueryNodesInROI([]float64{-1, 9}, []float64{1, 11})
	require.NoError(err)
	require.Equal([]int{1}, ids)

	pos, err := graph.GetNodeAttr[[]float64](sg.Graph(), "pos", []int{1})
	require.NoError(err)
	require.Equal([]float64{0, 10}, pos[0])

	edges, err := sg.QueryEdgesInROI([]float64{-1, -1}, []float64{11, 11})
	require.NoError(err)
	require.Len(edges, 1, "moving the point must not leave a duplicate line-tree entry behind")

	// (10,0) is the fixed endpoint, so the new bounding box (x:[0,10],
	// y:[0,10]) is the only one that reaches y>1: the old bounding box
	// (x:[0,10], y:[0,0]) never did, since node 2 never moved.
	edges, err = sg.QueryEdgesInROI([]float64{-1, 5}, []float64{11, 6})
	require.NoError(err)
	require.Len(edges, 1, "the line-tree entry must reflect node 1's new position")

	err = sg.UpdateNodePosition(1, []float64{1, 2, 3})
	require.ErrorIs(err, spatialgraph.ErrPositionValue)
}

func TestRemoveNodes_CascadesBothTrees(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	_, err := sg.AddNode(1, map[string]any{"pos": []float64{0, 0}})
	require.NoError(err)
	_, err = sg.AddNode(2, map[string]any{"pos": []float64{1, 0}})
	require.NoError(err)
	_, err = sg.AddNode(3, map[string]any{"pos": []float64{2, 0}})
	require.NoError(err)
	_, err = sg.AddEdge(1, 2, map[string]any{})
	require.NoError(err)
	_, err = sg.AddEdge(2, 3, map[string]any{})
	require.NoError(err)

	require.NoError(sg.RemoveNode(2))

	require.Equal(2, sg.Graph().Len())
	require.Equal(0, sg.Graph().NumEdges())

	ids, err := sg.QueryNodesInROI([]float64{-10, -10}, []float64{10, 10})
	require.NoError(err)
	require.ElementsMatch([]int{1, 3}, ids)

	edges, err := sg.QueryEdgesInROI([]float64{-10, -10}, []float64{10, 10})
	require.NoError(err)
	require.Empty(edges, "both incident edges must be removed from the line tree")
}

func TestROI_TracksPointTreeBoundingBox(t *testing.T) {
	require := require.New(t)
	sg := newFixture(t)

	_, ok := sg.ROI()
	require.False(ok, "an empty graph has no ROI")

	_, err := sg.AddNode(1, map[string]any{"pos": []float64{-3, 4}})
	require.NoError(err)
	_, err = sg.AddNode(2, map[string]any{"pos": []float64{7, -1}})
	require.NoError(err)

	roi, ok := sg.ROI()
	require.True(ok)
	require.Equal([]float64{-3, -1}, roi.Min)
	require.Equal([]float64{7, 4}, roi.Max)
}
