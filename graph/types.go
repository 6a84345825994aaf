// SPDX-License-Identifier: MIT
//
// types.go — AttrField, the type-erased column store, Graph[ID] state, and
// the functional-options construction surface (GraphOption/EdgeOption,
// verbatim naming from core/types.go).

package graph

import (
	"fmt"
	"regexp"
	"sync"

	set3 "github.com/TomTonic/Set3"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/spatialgraph/dtype"
)

// AttrField declares one entry of a node or edge attribute spec: a name and
// its frozen DType, in the order the caller lists them (spec.md §3:
// "a fixed set of attributes whose names and DTypes are frozen at graph
// construction").
type AttrField struct {
	Name string
	Type dtype.DType
}

// identRe matches a valid attribute identifier: a letter or underscore,
// followed by letters, digits, or underscores. Applied after NFC
// normalization so visually-identical names from different input encodings
// collide predictably (domain-stack wiring, SPEC_FULL.md §2).
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateAttrName(name string) (string, error) {
	normalized := norm.NFC.String(name)
	if !identRe.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttrName, name)
	}

	return normalized, nil
}

// column is the type-erased interface every attribute column satisfies. The
// concrete element type lives only in colT[T]; callers recover it through
// GetNodeAttr[T]/SetNodeAttr[T] (attrs.go), which type-assert the column to
// *colT[T] and report ErrAttrTypeMismatch when T is not its element type.
type column interface {
	dt() dtype.DType
	length() int
	appendZero()
	swapRemove(row int)
	setAny(row int, v any) error
	getAny(row int) any
	clone() column
}

type colT[T any] struct {
	typ  dtype.DType
	data []T
}

func (c *colT[T]) dt() dtype.DType { return c.typ }
func (c *colT[T]) length() int     { return len(c.data) }
func (c *colT[T]) appendZero() {
	var zero T
	c.data = append(c.data, zero)
}
func (c *colT[T]) swapRemove(row int) {
	last := len(c.data) - 1
	c.data[row] = c.data[last]
	c.data = c.data[:last]
}
func (c *colT[T]) setAny(row int, v any) error {
	val, ok := v.(T)
	if !ok {
		return ErrAttrTypeMismatch
	}
	c.data[row] = val

	return nil
}
func (c *colT[T]) getAny(row int) any { return c.data[row] }
func (c *colT[T]) clone() column      { return &colT[T]{typ: c.typ, data: append([]T(nil), c.data...)} }

// attrTable is an ordered collection of named, densely packed columns
// sharing a single row index space (the vertex's or edge's slot, per
// spec.md §4.4 "Attribute storage").
type attrTable struct {
	fields []AttrField
	byName map[string]column
	rows   int
}

func newAttrTable(fields []AttrField) (*attrTable, error) {
	t := &attrTable{byName: make(map[string]column, len(fields))}
	for _, f := range fields {
		name, err := validateAttrName(f.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := t.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAttr, name)
		}
		f.Name = name
		t.fields = append(t.fields, f)
		t.byName[name] = newColumnFor(f.Type)
	}

	return t, nil
}

// newColumnFor allocates the concrete colT[T] matching dt's base kind.
// Array dtypes are stored as a column of fixed-length slices; element width
// is enforced by the caller (spec.md §4.1 DType invariants already rule out
// nested arrays).
func newColumnFor(dt dtype.DType) column {
	switch dt.BaseKind() {
	case dtype.F32:
		return newScalarOrArrayCol[float32](dt)
	case dtype.F64:
		return newScalarOrArrayCol[float64](dt)
	case dtype.I8:
		return newScalarOrArrayCol[int8](dt)
	case dtype.I16:
		return newScalarOrArrayCol[int16](dt)
	case dtype.I32:
		return newScalarOrArrayCol[int32](dt)
	case dtype.I64:
		return newScalarOrArrayCol[int64](dt)
	case dtype.U8:
		return newScalarOrArrayCol[uint8](dt)
	case dtype.U16:
		return newScalarOrArrayCol[uint16](dt)
	case dtype.U32:
		return newScalarOrArrayCol[uint32](dt)
	case dtype.U64:
		return newScalarOrArrayCol[uint64](dt)
	default:
		panic("graph: unreachable dtype base kind")
	}
}

// newScalarOrArrayCol builds a column of T for a scalar dtype, or of []T
// (one slice per row; a new row holds a nil slice until a value is written)
// for an array dtype.
func newScalarOrArrayCol[T any](dt dtype.DType) column {
	if dt.IsArray() {
		return &colT[[]T]{typ: dt}
	}

	return &colT[T]{typ: dt}
}

func (t *attrTable) clone() *attrTable {
	out := &attrTable{
		fields: append([]AttrField(nil), t.fields...),
		byName: make(map[string]column, len(t.byName)),
		rows:   t.rows,
	}
	for name, c := range t.byName {
		out.byName[name] = c.clone()
	}

	return out
}

func (t *attrTable) valuesAt(row int) map[string]any {
	out := make(map[string]any, len(t.fields))
	for _, f := range t.fields {
		out[f.Name] = t.byName[f.Name].getAny(row)
	}

	return out
}

func (t *attrTable) addRow() int {
	for _, c := range t.byName {
		c.appendZero()
	}
	row := t.rows
	t.rows++

	return row
}

// removeRow swap-removes row, invoking the caller-supplied notify callback
// with the row that used to hold the last slot (now moved into row) so the
// caller can fix up its own row index for the owner that moved, unless row
// was already the last slot.
func (t *attrTable) removeRow(row int, notify func(movedFromRow int)) {
	last := t.rows - 1
	for _, c := range t.byName {
		c.swapRemove(row)
	}
	t.rows--
	if row != last {
		notify(last)
	}
}

// vertexRecord is the per-vertex bookkeeping entry: insertion ordinal
// (spec.md §3, stable across the vertex's lifetime) and its row in the node
// attribute columns.
type vertexRecord[ID comparable] struct {
	id      ID
	ordinal uint64
	row     int
}

// Graph is a typed property graph over vertex identifier type ID: an
// adjacency store with insertion-ordered vertices, directed or undirected
// edges, and per-vertex/per-edge typed attribute columns frozen at
// construction (spec.md §4.4).
//
// Graph keeps the teacher's two-mutex design: muVert guards vertex
// state/columns, muEdgeAdj guards edge state/columns/adjacency. Bulk
// mutating operations are serialized by the caller (spec.md §5: "no
// internal asynchrony... mutation... serialised externally" — these locks
// guard against torn reads from concurrent readers, not against concurrent
// writers racing each other).
type Graph[ID comparable] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool

	nodeAttrs []AttrField
	edgeAttrs []AttrField

	nextOrdinal uint64
	verts       map[ID]*vertexRecord[ID]
	nodeCols    *attrTable

	// undirected: adj holds the single neighbor set. directed: adjOut/adjIn
	// hold out- and in-neighbor sets respectively; adj is unused.
	adj    map[ID]*set3.Set3[ID]
	adjOut map[ID]*set3.Set3[ID]
	adjIn  map[ID]*set3.Set3[ID]

	edgeSlot map[[2]ID]int
	edgeCols *attrTable
}

// GraphOption configures a Graph before construction, exactly as
// core/types.go's GraphOption configures *core.Graph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed  bool
	nodeAttrs []AttrField
	edgeAttrs []AttrField
}

// WithDirected marks the graph directed; the default is undirected.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithNodeAttr declares a node attribute, appended in call order so the
// spec's "ordered mapping" is preserved.
func WithNodeAttr(name string, dt dtype.DType) GraphOption {
	return func(c *graphConfig) { c.nodeAttrs = append(c.nodeAttrs, AttrField{Name: name, Type: dt}) }
}

// WithEdgeAttr declares an edge attribute, appended in call order.
func WithEdgeAttr(name string, dt dtype.DType) GraphOption {
	return func(c *graphConfig) { c.edgeAttrs = append(c.edgeAttrs, AttrField{Name: name, Type: dt}) }
}

// EdgeOption is reserved for future per-edge construction-time overrides;
// none are defined today (spec.md's edges carry no first-class directedness
// override the way core's mixed-edge graphs do — see DESIGN.md).
type EdgeOption func()

// NewGraph constructs an empty Graph[ID] per opts. Directedness and the
// node/edge attribute specs are frozen for the graph's lifetime.
//
// Complexity: O(F) where F is the total number of declared attribute
// fields.
func NewGraph[ID comparable](opts ...GraphOption) (*Graph[ID], error) {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodeCols, err := newAttrTable(cfg.nodeAttrs)
	if err != nil {
		return nil, err
	}
	edgeCols, err := newAttrTable(cfg.edgeAttrs)
	if err != nil {
		return nil, err
	}

	g := &Graph[ID]{
		directed:  cfg.directed,
		nodeAttrs: nodeCols.fields,
		edgeAttrs: edgeCols.fields,
		verts:     make(map[ID]*vertexRecord[ID]),
		nodeCols:  nodeCols,
		edgeSlot:  make(map[[2]ID]int),
		edgeCols:  edgeCols,
	}
	if cfg.directed {
		g.adjOut = make(map[ID]*set3.Set3[ID])
		g.adjIn = make(map[ID]*set3.Set3[ID])
	} else {
		g.adj = make(map[ID]*set3.Set3[ID])
	}

	return g, nil
}

// Directed reports whether g was constructed with WithDirected.
func (g *Graph[ID]) Directed() bool { return g.directed }

// NodeAttrSpec returns the frozen, ordered node attribute spec.
func (g *Graph[ID]) NodeAttrSpec() []AttrField {
	return append([]AttrField(nil), g.nodeAttrs...)
}

// EdgeAttrSpec returns the frozen, ordered edge attribute spec.
func (g *Graph[ID]) EdgeAttrSpec() []AttrField {
	return append([]AttrField(nil), g.edgeAttrs...)
}
