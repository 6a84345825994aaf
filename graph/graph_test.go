// SPDX-License-Identifier: MIT

package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/dtype"
	"github.com/katalvlaran/spatialgraph/graph"
)

func newUndirected(t *testing.T) *graph.Graph[int] {
	t.Helper()
	g, err := graph.NewGraph[int](
		graph.WithNodeAttr("label", dtype.MustParse("int32")),
		graph.WithEdgeAttr("weight", dtype.MustParse("float64")),
	)
	require.NoError(t, err)

	return g
}

func TestAddNode_IdempotentAndValidated(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	n, err := g.AddNode(1, map[string]any{"label": int32(10)})
	require.NoError(err)
	require.Equal(1, n)

	n, err = g.AddNode(1, map[string]any{"label": int32(99)})
	require.NoError(err)
	require.Equal(0, n, "re-adding an existing id is a no-op")

	_, err = g.AddNode(2, map[string]any{"label": "wrong-type"})
	require.ErrorIs(err, graph.ErrAttrMismatch)

	_, err = g.AddNode(3, map[string]any{})
	require.ErrorIs(err, graph.ErrAttrMismatch)

	require.Equal(1, g.Len())
}

func TestAddEdge_RejectsSelfLoopAndMissingNodes(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNode(1, map[string]any{"label": int32(1)})
	require.NoError(err)

	_, err = g.AddEdge(1, 1, map[string]any{"weight": 1.0})
	require.ErrorIs(err, graph.ErrSelfLoop)

	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2}, []map[string]any{
		{"label": int32(1)},
		{"label": int32(2)},
	})
	require.NoError(err)

	n, err := g.AddEdge(1, 2, map[string]any{"weight": 1.5})
	require.NoError(err)
	require.Equal(1, n)

	n, err = g.AddEdge(2, 1, map[string]any{"weight": 9.9})
	require.NoError(err)
	require.Equal(0, n, "reversed endpoint pair resolves to the same canonical edge")

	require.Equal(1, g.NumEdges())
}

func TestUndirected_CanonicalEdgeOrder_FiveNodesAllPairs(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	ids := []int{10, 20, 30, 40, 50}
	attrs := make([]map[string]any, len(ids))
	for i := range ids {
		attrs[i] = map[string]any{"label": int32(i)}
	}
	_, err := g.AddNodes(ids, attrs)
	require.NoError(err)

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_, err := g.AddEdge(ids[j], ids[i], map[string]any{"weight": 1.0})
			require.NoError(err)
		}
	}

	require.Equal(10, g.NumEdges())

	neighbors, err := g.NumNeighbors(ids)
	require.NoError(err)
	for _, n := range neighbors {
		require.Equal(4, n)
	}

	edges, err := g.Edges(nil)
	require.NoError(err)
	require.Len(edges, 10)
	for _, pair := range edges {
		iu := indexOf(ids, pair[0])
		iv := indexOf(ids, pair[1])
		require.Less(iu, iv, "canonical pair orders by insertion ordinal")
	}
	for k := 1; k < len(edges); k++ {
		require.False(less(edges[k], edges[k-1]), "Edges() is sorted by ordinal pair")
	}
}

func indexOf(ids []int, v int) int {
	for i, id := range ids {
		if id == v {
			return i
		}
	}

	return -1
}

func less(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}

	return a[1] < b[1]
}

func TestRemoveNode_CascadesIncidentEdges(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2, 3}, []map[string]any{
		{"label": int32(1)}, {"label": int32(2)}, {"label": int32(3)},
	})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.NoError(err)
	_, err = g.AddEdge(2, 3, map[string]any{"weight": 1.0})
	require.NoError(err)

	require.NoError(g.RemoveNode(2))
	require.Equal(2, g.Len())
	require.Equal(0, g.NumEdges())

	err = g.RemoveNode(2)
	require.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestDirectedGraph_InOutEdgesAndCounts(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewGraph[int](graph.WithDirected(), graph.WithEdgeAttr("weight", dtype.MustParse("float64")))
	require.NoError(err)

	_, err = g.AddNodes([]int{1, 2, 3}, []map[string]any{{}, {}, {}})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.NoError(err)
	_, err = g.AddEdge(1, 3, map[string]any{"weight": 1.0})
	require.NoError(err)
	_, err = g.AddEdge(2, 3, map[string]any{"weight": 1.0})
	require.NoError(err)

	out, err := g.OutEdges(1)
	require.NoError(err)
	require.Len(out, 2)

	in, err := g.InEdges(3)
	require.NoError(err)
	require.Len(in, 2)

	numOut, err := g.NumOut([]int{1})
	require.NoError(err)
	require.Equal([]int{2}, numOut)

	numIn, err := g.NumIn([]int{3})
	require.NoError(err)
	require.Equal([]int{2}, numIn)

	_, err = g.InEdges(1)
	require.NoError(err)

	undirected := newUndirected(t)
	_, err = undirected.InEdges(1)
	require.ErrorIs(err, graph.ErrDirectedOnly)
}

func TestNodeAttr_GetSetRoundTrip(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2}, []map[string]any{
		{"label": int32(7)}, {"label": int32(8)},
	})
	require.NoError(err)

	got, err := graph.GetNodeAttr[int32](g, "label", []int{1, 2})
	require.NoError(err)
	require.Equal([]int32{7, 8}, got)

	require.NoError(graph.SetNodeAttr(g, "label", []int{1, 2}, []int32{70, 80}))

	got, err = graph.GetNodeAttr[int32](g, "label", []int{1, 2})
	require.NoError(err)
	require.Equal([]int32{70, 80}, got)

	_, err = graph.GetNodeAttr[int32](g, "nope", []int{1})
	require.ErrorIs(err, graph.ErrUnknownAttr)

	_, err = graph.GetNodeAttr[float64](g, "label", []int{1})
	require.ErrorIs(err, graph.ErrAttrTypeMismatch)
}

func TestEdgeAttr_GetSetRoundTrip(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2}, []map[string]any{{"label": int32(0)}, {"label": int32(0)}})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 3.5})
	require.NoError(err)

	got, err := graph.GetEdgeAttr[float64](g, "weight", []int{2}, []int{1})
	require.NoError(err)
	require.Equal([]float64{3.5}, got)

	require.NoError(graph.SetEdgeAttr(g, "weight", []int{1}, []int{2}, []float64{9.25}))

	got, err = graph.GetEdgeAttr[float64](g, "weight", []int{1}, []int{2})
	require.NoError(err)
	require.Equal([]float64{9.25}, got)

	_, err = graph.GetEdgeAttr[float64](g, "weight", []int{1}, []int{99})
	require.ErrorIs(err, graph.ErrNodeNotFound)
}

func TestEdgeAttr_OmittedEndpointsIteratesAllEdges(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2, 3}, []map[string]any{
		{"label": int32(0)}, {"label": int32(0)}, {"label": int32(0)},
	})
	require.NoError(err)
	_, err = g.AddEdges([]int{1, 1}, []int{2, 3}, []map[string]any{
		{"weight": 1.5}, {"weight": 2.5},
	})
	require.NoError(err)

	pairs, err := g.Edges(nil)
	require.NoError(err)

	got, err := graph.GetEdgeAttr[float64](g, "weight", nil, nil)
	require.NoError(err)
	require.Equal(len(pairs), len(got))
	for i, p := range pairs {
		want, err := graph.GetEdgeAttr[float64](g, "weight", []int{p[0]}, []int{p[1]})
		require.NoError(err)
		require.Equal(want[0], got[i])
	}

	require.NoError(graph.SetEdgeAttr(g, "weight", nil, nil, []float64{10, 20}))
	got, err = graph.GetEdgeAttr[float64](g, "weight", nil, nil)
	require.NoError(err)
	require.Equal([]float64{10, 20}, got)

	err = graph.SetEdgeAttr(g, "weight", nil, nil, []float64{1})
	require.ErrorIs(err, graph.ErrLengthMismatch)
}

func TestAttrName_InvalidIdentifierRejected(t *testing.T) {
	require := require.New(t)

	_, err := graph.NewGraph[int](graph.WithNodeAttr("2bad", dtype.MustParse("int32")))
	require.ErrorIs(err, graph.ErrInvalidAttrName)

	_, err = graph.NewGraph[int](
		graph.WithNodeAttr("dup", dtype.MustParse("int32")),
		graph.WithNodeAttr("dup", dtype.MustParse("float64")),
	)
	require.ErrorIs(err, graph.ErrDuplicateAttr)
}

func TestEdgesByNodes_DedupesSharedEdge(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2, 3}, []map[string]any{{"label": int32(0)}, {"label": int32(0)}, {"label": int32(0)}})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.NoError(err)
	_, err = g.AddEdge(2, 3, map[string]any{"weight": 1.0})
	require.NoError(err)

	edges, err := g.EdgesByNodes([]int{1, 2})
	require.NoError(err)
	require.Len(edges, 2, "edge (1,2) is incident to both anchors but must not repeat")
}

func TestClone_IsIndependent(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2}, []map[string]any{{"label": int32(1)}, {"label": int32(2)}})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.NoError(err)

	clone := graph.Clone(g)
	require.NoError(graph.SetNodeAttr(clone, "label", []int{1}, []int32{999}))

	orig, err := graph.GetNodeAttr[int32](g, "label", []int{1})
	require.NoError(err)
	require.Equal(int32(1), orig[0], "mutating the clone must not affect the source")

	require.NoError(clone.RemoveNode(2))
	require.Equal(2, g.Len(), "removing from the clone must not affect the source")
}

func TestInducedSubgraph_KeepsOnlySelectedVerticesAndEdges(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2, 3}, []map[string]any{
		{"label": int32(1)}, {"label": int32(2)}, {"label": int32(3)},
	})
	require.NoError(err)
	_, err = g.AddEdge(1, 2, map[string]any{"weight": 1.0})
	require.NoError(err)
	_, err = g.AddEdge(2, 3, map[string]any{"weight": 1.0})
	require.NoError(err)

	sub, err := graph.InducedSubgraph(g, func(id int) bool { return id != 3 })
	require.NoError(err)
	require.Equal(2, sub.Len())
	require.Equal(1, sub.NumEdges())

	labels, err := graph.GetNodeAttr[int32](sub, "label", []int{1, 2})
	require.NoError(err)
	require.Equal([]int32{1, 2}, labels)
}

func TestLengthMismatch(t *testing.T) {
	require := require.New(t)
	g := newUndirected(t)

	_, err := g.AddNodes([]int{1, 2}, []map[string]any{{"label": int32(1)}})
	require.True(errors.Is(err, graph.ErrLengthMismatch))
}
