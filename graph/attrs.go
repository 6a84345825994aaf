// SPDX-License-Identifier: MIT
//
// attrs.go — attribute-set validation for add* operations, and the generic
// bulk GetNodeAttr[T]/SetNodeAttr[T]/GetEdgeAttr[T]/SetEdgeAttr[T] accessors
// (spec.md §4.4, per-attribute method-style interface per SPEC_FULL.md §6).

package graph

import (
	"fmt"

	"github.com/katalvlaran/spatialgraph/buffer"
	"github.com/katalvlaran/spatialgraph/dtype"
)

// matchScalar reports whether v holds a T.
func matchScalar[T any](v any) bool {
	_, ok := v.(T)

	return ok
}

// matchArray reports whether v holds a []T of exactly length n.
func matchArray[T any](v any, n int) bool {
	sl, ok := v.([]T)

	return ok && len(sl) == n
}

// dtypeMatches reports whether v's concrete Go type matches dt: a bare T for
// a scalar dtype, a []T of length dt.Size() for an array dtype.
func dtypeMatches(dt dtype.DType, v any) bool {
	if dt.IsArray() {
		n := dt.Size()
		switch dt.BaseKind() {
		case dtype.F32:
			return matchArray[float32](v, n)
		case dtype.F64:
			return matchArray[float64](v, n)
		case dtype.I8:
			return matchArray[int8](v, n)
		case dtype.I16:
			return matchArray[int16](v, n)
		case dtype.I32:
			return matchArray[int32](v, n)
		case dtype.I64:
			return matchArray[int64](v, n)
		case dtype.U8:
			return matchArray[uint8](v, n)
		case dtype.U16:
			return matchArray[uint16](v, n)
		case dtype.U32:
			return matchArray[uint32](v, n)
		case dtype.U64:
			return matchArray[uint64](v, n)
		default:
			return false
		}
	}

	switch dt.BaseKind() {
	case dtype.F32:
		return matchScalar[float32](v)
	case dtype.F64:
		return matchScalar[float64](v)
	case dtype.I8:
		return matchScalar[int8](v)
	case dtype.I16:
		return matchScalar[int16](v)
	case dtype.I32:
		return matchScalar[int32](v)
	case dtype.I64:
		return matchScalar[int64](v)
	case dtype.U8:
		return matchScalar[uint8](v)
	case dtype.U16:
		return matchScalar[uint16](v)
	case dtype.U32:
		return matchScalar[uint32](v)
	case dtype.U64:
		return matchScalar[uint64](v)
	default:
		return false
	}
}

// validateAttrs checks that attrs supplies exactly the fields declared in
// spec, each with a value of the declared dtype, before any state change
// (spec.md §7: "pre-validated, no state change").
func validateAttrs(spec []AttrField, attrs map[string]any) error {
	if len(attrs) != len(spec) {
		return fmt.Errorf("%w: expected %d attributes, got %d", ErrAttrMismatch, len(spec), len(attrs))
	}
	for _, f := range spec {
		v, ok := attrs[f.Name]
		if !ok {
			return fmt.Errorf("%w: missing attribute %q", ErrAttrMismatch, f.Name)
		}
		if !dtypeMatches(f.Type, v) {
			return fmt.Errorf("%w: attribute %q has the wrong type", ErrAttrMismatch, f.Name)
		}
	}

	return nil
}

func writeRow(tbl *attrTable, row int, attrs map[string]any) {
	for name, v := range attrs {
		_ = tbl.byName[name].setAny(row, v)
	}
}

func findColumn[T any](tbl *attrTable, name string) (*colT[T], error) {
	c, ok := tbl.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, name)
	}
	ct, ok := c.(*colT[T])
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q", ErrAttrTypeMismatch, name)
	}

	return ct, nil
}

// GetNodeAttr reads the declared node attribute name for each of ids, in
// order. Every id must exist; T must match the attribute's declared dtype.
func GetNodeAttr[T any, ID comparable](g *Graph[ID], name string, ids []ID) ([]T, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	col, err := findColumn[T](g.nodeCols, name)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(ids))
	for i, id := range ids {
		rec, ok := g.verts[id]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
		out[i] = col.data[rec.row]
	}

	return out, nil
}

// SetNodeAttr writes the declared node attribute name for each of ids to
// the parallel values slice. Validated, then applied: a missing id or a
// length mismatch aborts before any value is written.
func SetNodeAttr[T any, ID comparable](g *Graph[ID], name string, ids []ID, values []T) error {
	if err := buffer.CheckIDs(values, len(ids)); err != nil {
		return ErrLengthMismatch
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	col, err := findColumn[T](g.nodeCols, name)
	if err != nil {
		return err
	}

	rows := make([]int, len(ids))
	for i, id := range ids {
		rec, ok := g.verts[id]
		if !ok {
			return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
		rows[i] = rec.row
	}
	for i, row := range rows {
		col.data[row] = values[i]
	}

	return nil
}

// GetEdgeAttr reads the declared edge attribute name for each (us[i],vs[i])
// pair, in order. Every pair must have a stored edge. When both us and vs
// are omitted (nil or empty), it instead reads name for every edge
// currently stored, in the same canonical order Edges(nil) returns (spec.md
// §4.4: "edges()-style iteration when endpoints are omitted").
//
// Edge keys are canonicalized under muVert before muEdgeAdj is ever
// acquired, matching the lock order AddNode/AddEdge/RemoveNodes use, so the
// two locks are never nested in opposite orders.
func GetEdgeAttr[T any, ID comparable](g *Graph[ID], name string, us, vs []ID) ([]T, error) {
	if len(us) == 0 && len(vs) == 0 {
		pairs, err := g.Edges(nil)
		if err != nil {
			return nil, err
		}
		us, vs = make([]ID, len(pairs)), make([]ID, len(pairs))
		for i, p := range pairs {
			us[i], vs[i] = p[0], p[1]
		}
	} else if err := buffer.CheckIDs(vs, len(us)); err != nil {
		return nil, ErrLengthMismatch
	}

	keys, err := g.edgeKeys(us, vs)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	col, err := findColumn[T](g.edgeCols, name)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(us))
	for i, key := range keys {
		row, ok := g.edgeSlot[key]
		if !ok {
			return nil, fmt.Errorf("%w: (%v,%v)", ErrEdgeNotFound, us[i], vs[i])
		}
		out[i] = col.data[row]
	}

	return out, nil
}

// SetEdgeAttr writes the declared edge attribute name for each (us[i],vs[i])
// pair to the parallel values slice. Validated, then applied. When both us
// and vs are omitted (nil or empty), it instead writes name for every edge
// currently stored, in Edges(nil)'s canonical order, so values must then
// have exactly NumEdges() entries (spec.md §4.4: "edges()-style iteration
// when endpoints are omitted").
func SetEdgeAttr[T any, ID comparable](g *Graph[ID], name string, us, vs []ID, values []T) error {
	if len(us) == 0 && len(vs) == 0 {
		pairs, err := g.Edges(nil)
		if err != nil {
			return err
		}
		if err := buffer.CheckIDs(values, len(pairs)); err != nil {
			return ErrLengthMismatch
		}
		us, vs = make([]ID, len(pairs)), make([]ID, len(pairs))
		for i, p := range pairs {
			us[i], vs[i] = p[0], p[1]
		}
	} else if err := buffer.CheckIDs(vs, len(us)); err != nil {
		return ErrLengthMismatch
	} else if err := buffer.CheckIDs(values, len(us)); err != nil {
		return ErrLengthMismatch
	}

	keys, err := g.edgeKeys(us, vs)
	if err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	col, err := findColumn[T](g.edgeCols, name)
	if err != nil {
		return err
	}

	rows := make([]int, len(us))
	for i, key := range keys {
		row, ok := g.edgeSlot[key]
		if !ok {
			return fmt.Errorf("%w: (%v,%v)", ErrEdgeNotFound, us[i], vs[i])
		}
		rows[i] = row
	}
	for i, row := range rows {
		col.data[row] = values[i]
	}

	return nil
}
