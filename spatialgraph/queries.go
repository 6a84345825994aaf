// SPDX-License-Identifier: MIT
//
// queries.go — QueryNodesInROI/QueryEdgesInROI/QueryNearestNodes/
// QueryNearestEdges/ROI (spec.md §4.5).

package spatialgraph

import "github.com/katalvlaran/spatialgraph/rtree"

// QueryNodesInROI returns every node ID whose position lies within the
// axis-aligned box [min, max].
func (sg *Graph[ID, C]) QueryNodesInROI(min, max []C) ([]ID, error) {
	return sg.points.Search(min, max)
}

// QueryEdgesInROI returns every edge, as its endpoint pair, whose bounding
// box intersects [min, max]. This is a bounding-box test, not true
// segment-box intersection: an edge whose bounding box overlaps the ROI but
// whose actual segment does not is still returned (spec.md §4.5).
func (sg *Graph[ID, C]) QueryEdgesInROI(min, max []C) ([][2]ID, error) {
	items, err := sg.lines.Search(min, max)
	if err != nil {
		return nil, err
	}

	return linesToPairs(items), nil
}

// QueryNearestNodes returns up to k node IDs nearest to point, in
// non-decreasing order of squared distance.
func (sg *Graph[ID, C]) QueryNearestNodes(point []C, k int) ([]ID, error) {
	return sg.points.Nearest(point, k)
}

// QueryNearestNodesWithDistances is QueryNearestNodes, additionally
// returning the squared Euclidean distance of each returned node from
// point, per spec.md §4.5's "queryNearestNodes(point, k, returnDistances?)".
func (sg *Graph[ID, C]) QueryNearestNodesWithDistances(point []C, k int) ([]ID, []float64, error) {
	return sg.points.NearestWithDistances(point, k)
}

// QueryNearestEdges returns up to k edges, as endpoint pairs, nearest to
// point by exact squared point-to-segment distance, in non-decreasing order.
func (sg *Graph[ID, C]) QueryNearestEdges(point []C, k int) ([][2]ID, error) {
	items, err := sg.lines.Nearest(point, k)
	if err != nil {
		return nil, err
	}

	return linesToPairs(items), nil
}

// QueryNearestEdgesWithDistances is QueryNearestEdges, additionally
// returning the exact squared point-to-segment distance of each returned
// edge from point, per spec.md §4.5's
// "queryNearestEdges(point, k, returnDistances?)".
func (sg *Graph[ID, C]) QueryNearestEdgesWithDistances(point []C, k int) ([][2]ID, []float64, error) {
	items, dists, err := sg.lines.NearestWithDistances(point, k)
	if err != nil {
		return nil, nil, err
	}

	return linesToPairs(items), dists, nil
}

// ROI returns the point tree's bounding box: the smallest axis-aligned box
// enclosing every node position currently stored. The second return value is
// false if the graph has no nodes.
func (sg *Graph[ID, C]) ROI() (rtree.Rect[C], bool) {
	return sg.points.BoundingBox()
}

func linesToPairs[ID comparable](items []rtree.LineItem[ID]) [][2]ID {
	out := make([][2]ID, len(items))
	for i, it := range items {
		out[i] = [2]ID{it.U, it.V}
	}

	return out
}
