// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the rtree package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. The package panics only in option-constructor validation and
// when NewTree is given a nil equal function.

package rtree

import "errors"

// ErrInvalidRect indicates a rectangle whose Min/Max do not describe a valid
// box: mismatched dimensionality, or Min[i] > Max[i] on some axis.
var ErrInvalidRect = errors.New("rtree: invalid rectangle")

// ErrDimMismatch indicates a point or rectangle whose length does not match
// the tree's configured dimensionality.
var ErrDimMismatch = errors.New("rtree: dimension mismatch")

// ErrInvalidK indicates a negative k was passed to a k-NN query.
var ErrInvalidK = errors.New("rtree: k must be non-negative")

// ErrInvalidMinItems indicates WithMinItems received a value outside
// [2, MaxItems/2].
var ErrInvalidMinItems = errors.New("rtree: invalid MinItems")

// ErrInvalidMaxItems indicates WithMaxItems received a non-positive value.
var ErrInvalidMaxItems = errors.New("rtree: invalid MaxItems")

// ErrLengthMismatch indicates a bulk call (InsertMany/DeleteMany) received
// slices of unequal length.
var ErrLengthMismatch = errors.New("rtree: length mismatch")
