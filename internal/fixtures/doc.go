// SPDX-License-Identifier: MIT
//
// Package fixtures generates random spatial graphs for tests and benchmarks,
// adapted from lvlath/builder's functional-option random-graph generators
// (RandomSparse in particular) and retargeted to also assign each vertex a
// random position, so the result seeds a spatialgraph.Graph directly.
package fixtures
