// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the fixtures package, following
// builder/errors.go's "only sentinels, wrap with %w at call sites" policy.

package fixtures

import "errors"

// ErrTooFewVertices indicates n < 1 was passed to a generator.
var ErrTooFewVertices = errors.New("fixtures: n must be at least 1")

// ErrInvalidDims indicates dims < 1 was passed to a generator.
var ErrInvalidDims = errors.New("fixtures: dims must be at least 1")

// ErrBoundsMismatch indicates WithBounds was given slices whose length does
// not match the generator's dims.
var ErrBoundsMismatch = errors.New("fixtures: bounds length does not match dims")
