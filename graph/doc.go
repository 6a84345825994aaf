// SPDX-License-Identifier: MIT
//
// Package graph implements the typed property graph of spec.md §4.4: an
// adjacency store over typed vertex IDs, insertion-ordered vertices,
// directed and undirected variants, and per-vertex/per-edge typed attribute
// storage addressed by declared attribute name.
//
// Graph[ID] is generic over ID comparable, the vertex-identifier type.
// Attribute values are not part of the type parameter list: per spec.md §9's
// recommended tagged-column route, each declared attribute is a column of a
// single concrete element type, type-erased behind the column interface and
// checked against a caller's type parameter (by a type assertion on the
// column's concrete type) on every bulk read/write in attrs.go. A fixed-length array ID (e.g. [3]int32) works out
// of the box since Go arrays are comparable.
//
// Adapted from katalvlaran/lvlath's core.Graph: the same two-mutex
// (muVert/muEdgeAdj) concurrency design, the same functional-options
// construction style, and the same file-per-concern split, generalized from
// core's string-keyed/lexicographically-sorted determinism to an explicit
// insertion-ordinal counter so it works for any comparable ID and preserves
// spec.md §3's "insertion ordinal... stable across the vertex's lifetime"
// invariant.
package graph
