// SPDX-License-Identifier: MIT
//
// point.go — the point-item specialization (spec.md §4.3): item is the
// caller's vertex-id type directly, rect.Min == rect.Max == position.

package rtree

// NewPointTree constructs a Tree whose items are bare vertex identifiers at
// degenerate (zero-extent) rectangles. ID must be comparable so the default
// equality predicate (==) can locate an entry for Delete.
//
// No custom distance predicate is installed: the core's default box-to-point
// squared distance is already exact for a degenerate box, per spec.md §4.3.
func NewPointTree[ID comparable, C Ordered](dims int, opts ...TreeOption) (*Tree[ID, C], error) {
	equal := func(a, b ID) bool { return a == b }

	return NewTree[ID, C](dims, equal, nil, opts...)
}

// Point builds the degenerate Rect (Min == Max == p) used to insert or
// delete a point item.
func Point[C Ordered](p []C) Rect[C] {
	min := make([]C, len(p))
	max := make([]C, len(p))
	copy(min, p)
	copy(max, p)

	return Rect[C]{Min: min, Max: max}
}
