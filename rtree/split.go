// SPDX-License-Identifier: MIT
//
// split.go — the R*-tree node split: perimeter-sum axis selection followed
// by an overlap-minimizing split position, tie-broken by total area.
//
// Grounded in the algorithm description carried over from
// spatial_graph's C r-tree (see rtree.py/rtree.c in the retained reference
// material): candidate split positions range over
// [MinItems, len(entries)-MinItems], where len(entries) is MaxItems+1.

package rtree

import "sort"

// splitNode partitions n's overflowing entry set into two groups: n keeps
// one group, and a new sibling node (same leaf-ness as n) holds the other.
// n.entries must number MaxItems+1 on entry.
func (t *Tree[Item, C]) splitNode(n *node[Item, C]) *node[Item, C] {
	m := len(n.entries)

	bestAxis := 0
	bestSum := axisMarginSum(n.entries, 0, t.minItems)
	for d := 1; d < t.dims; d++ {
		sum := axisMarginSum(n.entries, d, t.minItems)
		if sum < bestSum {
			bestSum = sum
			bestAxis = d
		}
	}

	sorted := append([]entry[Item, C](nil), n.entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].rect.Min[bestAxis] < sorted[j].rect.Min[bestAxis]
	})

	bestK := t.minItems
	bestOverlap := 0.0
	bestArea := 0.0
	first := true
	for k := t.minItems; k <= m-t.minItems; k++ {
		left := unionRects(sorted[:k])
		right := unionRects(sorted[k:])
		overlap := left.overlapF64(right)
		area := left.areaF64() + right.areaF64()

		if first || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestK, bestOverlap, bestArea, first = k, overlap, area, false
		}
	}

	n.entries = append([]entry[Item, C](nil), sorted[:bestK]...)
	sibling := &node[Item, C]{leaf: n.leaf, entries: append([]entry[Item, C](nil), sorted[bestK:]...)}

	return sibling
}

// axisMarginSum sums, over both the min-bound and max-bound sort orders of
// entries along axis, the combined margin (perimeter proxy) of every valid
// two-way split in [minItems, len(entries)-minItems].
func axisMarginSum[Item any, C Ordered](entries []entry[Item, C], axis, minItems int) float64 {
	m := len(entries)
	sum := 0.0

	byMin := append([]entry[Item, C](nil), entries...)
	sort.Slice(byMin, func(i, j int) bool { return byMin[i].rect.Min[axis] < byMin[j].rect.Min[axis] })
	sum += marginSumForOrder(byMin, minItems, m)

	byMax := append([]entry[Item, C](nil), entries...)
	sort.Slice(byMax, func(i, j int) bool { return byMax[i].rect.Max[axis] < byMax[j].rect.Max[axis] })
	sum += marginSumForOrder(byMax, minItems, m)

	return sum
}

func marginSumForOrder[Item any, C Ordered](sorted []entry[Item, C], minItems, m int) float64 {
	sum := 0.0
	for k := minItems; k <= m-minItems; k++ {
		left := unionRects(sorted[:k])
		right := unionRects(sorted[k:])
		sum += left.marginF64() + right.marginF64()
	}

	return sum
}

func unionRects[Item any, C Ordered](entries []entry[Item, C]) Rect[C] {
	box := entries[0].rect.clone()
	for _, e := range entries[1:] {
		box = box.union(e.rect)
	}

	return box
}
