// SPDX-License-Identifier: MIT
//
// Package spatialgraph (module github.com/katalvlaran/spatialgraph) is an
// in-memory spatial graph index: a typed property graph whose vertices
// carry positions in d-dimensional Euclidean space, backed by R-tree
// acceleration structures that answer range and k-nearest-neighbor queries
// over vertices and over edges treated as line segments.
//
// Everything is organized under five subpackages:
//
//	dtype/         — scalar and fixed-length-array element type descriptors
//	rtree/         — generic R*-tree: point items, line items, k-NN, deletion
//	graph/         — typed property graph: directed/undirected, typed attrs
//	spatialgraph/  — graph + point tree + line tree, kept consistent
//	buffer/        — shape checks for the bulk, contiguous-buffer entry points
//
// internal/fixtures/ generates random spatial graphs for tests and
// benchmarks; it is not part of the public API.
//
// The core composition is spatialgraph.Graph: every AddNode mirrors into
// the point tree, every AddEdge mirrors into the line tree, and every
// RemoveNode(s) cascades through incident edges in the graph and both
// trees, with rollback on any failed step. Only graph guards its own state
// with read/write mutexes; rtree and spatialgraph take no locks, so a caller
// mutating a spatialgraph.Graph concurrently with any other access must
// serialize that access itself.
package spatialgraph
