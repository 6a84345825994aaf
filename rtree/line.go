// SPDX-License-Identifier: MIT
//
// line.go — the line-item specialization (spec.md §4.3): item is an
// endpoint pair plus a corner mask recording which endpoint holds the
// smaller coordinate on each axis, so the original segment can be
// reconstructed from its bounding box alone. CornerMask is computed once at
// insertion and never recomputed (spec.md §9, "Edge-rectangle orientation").

package rtree

import "math"

// LineItem is the payload stored in a line tree: the endpoint pair and the
// per-axis corner mask needed to recover which endpoint was "from" and
// which was "to" from the stored bounding box alone.
//
// CornerMask caps dimensionality at 64 (one bit per axis), comfortably
// beyond any realistic spatial-graph embedding.
type LineItem[ID comparable] struct {
	U, V       ID
	CornerMask uint64
}

// NewLineTree constructs a Tree whose items are LineItem[ID] values at the
// endpoint-bounding box of each segment, with the equality predicate
// comparing the unordered endpoint pair {U,V} and the distance predicate
// computing the exact squared point-to-segment distance (spec.md §4.3).
func NewLineTree[ID comparable, C Ordered](dims int, opts ...TreeOption) (*Tree[LineItem[ID], C], error) {
	equal := func(a, b LineItem[ID]) bool {
		return (a.U == b.U && a.V == b.V) || (a.U == b.V && a.V == b.U)
	}
	distance := func(point []C, rect Rect[C], item LineItem[ID]) float64 {
		start, end := segmentEndpoints(rect, item.CornerMask)

		return pointSegmentDist2(point, start, end)
	}

	return NewTree[LineItem[ID], C](dims, equal, distance, opts...)
}

// Segment builds the LineItem and its endpoint-bounding Rect for the
// directed pair from -> to, computing CornerMask once: bit i is set iff
// from[i] < to[i].
func Segment[ID comparable, C Ordered](u, v ID, from, to []C) (LineItem[ID], Rect[C]) {
	dims := len(from)
	min := make([]C, dims)
	max := make([]C, dims)
	var mask uint64
	for i := 0; i < dims; i++ {
		if from[i] < to[i] {
			mask |= 1 << uint(i)
			min[i], max[i] = from[i], to[i]
		} else {
			min[i], max[i] = to[i], from[i]
		}
	}

	return LineItem[ID]{U: u, V: v, CornerMask: mask}, Rect[C]{Min: min, Max: max}
}

// segmentEndpoints reconstructs the original start/end coordinates from
// rect and mask: bit i set means the smaller coordinate (rect.Min[i]) was
// the "from" endpoint's value on axis i.
func segmentEndpoints[C Ordered](rect Rect[C], mask uint64) (start, end []float64) {
	dims := len(rect.Min)
	start = make([]float64, dims)
	end = make([]float64, dims)
	for i := 0; i < dims; i++ {
		if mask&(1<<uint(i)) != 0 {
			start[i] = float64(rect.Min[i])
			end[i] = float64(rect.Max[i])
		} else {
			start[i] = float64(rect.Max[i])
			end[i] = float64(rect.Min[i])
		}
	}

	return start, end
}

// pointSegmentDist2 returns the exact squared Euclidean distance from point
// to the closest point of the parametric segment p(alpha) = start +
// alpha*(end-start), alpha clamped to [0,1].
func pointSegmentDist2[C Ordered](point []C, start, end []float64) float64 {
	dims := len(start)

	var num, den float64
	for i := 0; i < dims; i++ {
		dir := end[i] - start[i]
		num += (float64(point[i]) - start[i]) * dir
		den += dir * dir
	}

	alpha := 0.0
	if den > 0 {
		alpha = num / den
	}
	alpha = math.Max(0, math.Min(1, alpha))

	sum := 0.0
	for i := 0; i < dims; i++ {
		closest := start[i] + alpha*(end[i]-start[i])
		d := float64(point[i]) - closest
		sum += d * d
	}

	return sum
}
