// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the spatialgraph package.

package spatialgraph

import "errors"

var (
	// ErrPositionAttrUndeclared indicates positionAttr was not declared among
	// the node attributes passed to NewGraph.
	ErrPositionAttrUndeclared = errors.New("spatialgraph: position attribute not declared")

	// ErrPositionAttrShape indicates the declared position attribute's DType
	// is not an array of length dims.
	ErrPositionAttrShape = errors.New("spatialgraph: position attribute must be an array of length dims")

	// ErrPositionValue indicates a node's supplied position attribute value
	// is not a []C of length dims.
	ErrPositionValue = errors.New("spatialgraph: position value must be a coordinate slice of length dims")

	// ErrInvalidDims indicates dims <= 0 was passed to NewGraph.
	ErrInvalidDims = errors.New("spatialgraph: dims must be positive")

	// ErrLengthMismatch indicates a bulk call received parallel slices of
	// unequal length.
	ErrLengthMismatch = errors.New("spatialgraph: parallel slice length mismatch")
)
