// SPDX-License-Identifier: MIT
//
// Package buffer validates the shape of the flat, parallel slices every
// bulk entry point in graph, rtree, and spatialgraph accepts at its
// boundary. Go slices are already contiguous, typed, row-major buffers,
// so the only work left here is catching a length mismatch between
// parallel arrays before any package under this module touches state —
// the "validate, then apply" discipline the mutating methods all follow.
package buffer
