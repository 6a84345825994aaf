// SPDX-License-Identifier: MIT
//
// Package spatialgraph composes a typed property graph (package graph) with
// two R-trees (package rtree): one indexing vertex positions as points, one
// indexing edges as line segments. Every mutation keeps all three stores
// consistent, rolling back the tree side of a mutation if the graph side
// rejects it.
//
// Graph adds no locking of its own: the point and line trees take no locks,
// and the underlying graph.Graph's mutexes guard only the graph's own state,
// not a mutation that spans all three stores, so a caller mutating a Graph concurrently with any read or write must
// serialize that access itself, exactly as spec.md's concurrency model
// requires of the composite.
package spatialgraph
