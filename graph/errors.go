// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the graph package, named after spec.md
// §7's error taxonomy. Callers branch with errors.Is; context is added with
// fmt.Errorf("%w: ...") at call sites, never baked into the sentinel itself.

package graph

import "errors"

var (
	// ErrNodeNotFound indicates an operation referenced a vertex ID that
	// does not exist (spec.md §7 "missing-node").
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an endpoint pair
	// with no stored edge (spec.md §7 "missing-edge").
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoop indicates an edge (u,u) was rejected (spec.md §3).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrDuplicateEdge indicates an edge already exists between the given
	// endpoint pair (canonical for undirected graphs, directional for
	// directed graphs); spec.md §3 "at most one edge per endpoint pair".
	ErrDuplicateEdge = errors.New("graph: edge already exists")

	// ErrAttrMismatch indicates the attributes supplied to an add*
	// operation differ from the declared spec by name, count, or element
	// dtype (spec.md §7 "attr-mismatch").
	ErrAttrMismatch = errors.New("graph: attribute set does not match declared spec")

	// ErrLengthMismatch indicates parallel bulk-call slices of unequal
	// length (spec.md §7 "length-mismatch").
	ErrLengthMismatch = errors.New("graph: parallel slice length mismatch")

	// ErrUnknownAttr indicates a lookup by a name not present in the
	// declared attribute spec.
	ErrUnknownAttr = errors.New("graph: unknown attribute name")

	// ErrInvalidAttrName indicates an attribute name is not a valid
	// identifier (spec.md §4.4: "Attribute names must be valid identifiers").
	ErrInvalidAttrName = errors.New("graph: invalid attribute name")

	// ErrAttrTypeMismatch indicates a generic accessor's type parameter T
	// does not match an attribute column's declared dtype.
	ErrAttrTypeMismatch = errors.New("graph: attribute type parameter does not match declared dtype")

	// ErrDirectedOnly indicates InEdges/OutEdges was called on an
	// undirected graph.
	ErrDirectedOnly = errors.New("graph: operation is only valid on a directed graph")

	// ErrDuplicateAttr indicates the same attribute name was declared
	// twice in a node or edge attribute spec.
	ErrDuplicateAttr = errors.New("graph: duplicate attribute name in spec")
)
