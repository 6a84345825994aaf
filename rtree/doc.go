// SPDX-License-Identifier: MIT
//
// Package rtree implements a generic, in-memory R*-tree: point and
// bounding-box insertion, box range search, exact best-first k-NN with a
// pluggable leaf-distance predicate, and deletion by item identity plus box.
//
// The tree is generic over an opaque payload type Item and a coordinate type
// C (any of the built-in signed/unsigned integer or floating-point kinds).
// Dimensionality is a construction-time value, not a type parameter, since a
// single process may hold trees of differing dimensionality built from the
// same instantiation.
//
// Two ready-made specializations sit on top of the core: NewPointTree, whose
// items are bare IDs at degenerate (zero-extent) rectangles, and
// NewLineTree, whose items are vertex-id pairs at the bounding box of a line
// segment, queried with the true point-to-segment distance rather than the
// box-to-point distance.
//
// Splitting follows the classic R*-tree recipe: the split axis is chosen by
// summing candidate-partition margins (perimeter proxies) across every valid
// split position on each axis and picking the axis with the smallest sum;
// the split position on that axis is chosen to minimise the overlap area
// between the two resulting rectangles, ties broken by total area.
//
// The tree keeps no internal locks: a Tree is safe for any number of
// concurrent readers, but callers must serialize mutations themselves
// (spatialgraph, which composes two trees with a graph, adds no locking
// either).
package rtree
