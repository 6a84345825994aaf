// SPDX-License-Identifier: MIT
//
// methods.go — AddNode/AddNodes/AddEdge/AddEdges/RemoveNode/RemoveNodes,
// each keeping graph, point tree, and line tree consistent with
// rollback-on-failure (spec.md §4.5, SPEC_FULL.md §7).

package spatialgraph

import (
	"fmt"

	set3 "github.com/TomTonic/Set3"

	"github.com/katalvlaran/spatialgraph/buffer"
	"github.com/katalvlaran/spatialgraph/graph"
	"github.com/katalvlaran/spatialgraph/rtree"
)

// AddNode validates attrs[positionAttr] as a []C of length dims, inserts the
// point into the point tree, then forwards to the underlying graph. If id
// already exists, the call is forwarded directly without touching the point
// tree (graph.AddNode's own no-op contract, see DESIGN.md: this avoids
// leaving an orphaned duplicate point entry behind for an id that never
// changes position). If the graph add fails, the just-inserted point is
// removed.
func (sg *Graph[ID, C]) AddNode(id ID, attrs map[string]any) (int, error) {
	pos, err := sg.position(attrs)
	if err != nil {
		return 0, err
	}

	if sg.g.Has(id) {
		return sg.g.AddNode(id, attrs)
	}

	rect := rtree.Point[C](pos)
	if err := sg.points.Insert(id, rect); err != nil {
		return 0, err
	}

	n, err := sg.g.AddNode(id, attrs)
	if err != nil {
		sg.points.Delete(id, rect)

		return 0, err
	}

	return n, nil
}

// AddNodes inserts every (ids[i], attrs[i]) pair via AddNode, returning the
// number newly inserted.
func (sg *Graph[ID, C]) AddNodes(ids []ID, attrs []map[string]any) (int, error) {
	if err := buffer.CheckAttr(attrs, len(ids)); err != nil {
		return 0, ErrLengthMismatch
	}

	n := 0
	for i, id := range ids {
		inserted, err := sg.AddNode(id, attrs[i])
		if err != nil {
			return n, err
		}
		n += inserted
	}

	return n, nil
}

// storedPosition looks up id's stored position, for callers (AddEdge,
// RemoveNodes) that need an existing node's coordinates rather than a
// caller-supplied attrs map.
func (sg *Graph[ID, C]) storedPosition(id ID) ([]C, error) {
	vals, err := graph.GetNodeAttr[[]C](sg.g, sg.positionAttr, []ID{id})
	if err != nil {
		return nil, err
	}

	return vals[0], nil
}

// AddEdge looks up both endpoints' positions, inserts the line item, then
// forwards to the underlying graph. The line item is removed if the graph
// add fails or was a no-op (missing endpoint, self-loop, or an edge already
// existing between u and v).
func (sg *Graph[ID, C]) AddEdge(u, v ID, attrs map[string]any) (int, error) {
	pu, err := sg.storedPosition(u)
	if err != nil {
		return 0, err
	}
	pv, err := sg.storedPosition(v)
	if err != nil {
		return 0, err
	}

	item, rect := rtree.Segment[ID, C](u, v, pu, pv)
	if err := sg.lines.Insert(item, rect); err != nil {
		return 0, err
	}

	n, err := sg.g.AddEdge(u, v, attrs)
	if err != nil || n == 0 {
		sg.lines.Delete(item, rect)

		return 0, err
	}

	return n, nil
}

// AddEdges inserts every (us[i],vs[i]) pair with attrs[i] via AddEdge,
// returning the count inserted.
func (sg *Graph[ID, C]) AddEdges(us, vs []ID, attrs []map[string]any) (int, error) {
	if err := buffer.CheckIDs(vs, len(us)); err != nil {
		return 0, ErrLengthMismatch
	}
	if err := buffer.CheckAttr(attrs, len(us)); err != nil {
		return 0, ErrLengthMismatch
	}

	n := 0
	for i := range us {
		inserted, err := sg.AddEdge(us[i], vs[i], attrs[i])
		if err != nil {
			return n, err
		}
		n += inserted
	}

	return n, nil
}

// RemoveNode deletes id, every edge incident to it, and its point-tree
// entry.
func (sg *Graph[ID, C]) RemoveNode(id ID) error {
	_, err := sg.RemoveNodes([]ID{id})

	return err
}

// RemoveNodes deletes every id in ids, the union of their incident edges
// (in- and out-, directed or undirected), and their point-tree entries,
// keeping both trees consistent with the underlying graph in one pass.
// Positions and incident edges are resolved before any tree is touched, so a
// missing id aborts before any mutation (spec.md §7 "validate, then apply").
//
// The union-of-incident-edges step resolves spec.md's Open Question about
// the original's apparent argument-swap bug when collecting edges to delete
// from the line tree before removing a batch of nodes: see DESIGN.md.
func (sg *Graph[ID, C]) RemoveNodes(ids []ID) (int, error) {
	positions := make(map[ID][]C, len(ids))
	edgeSet := set3.Empty[[2]ID]()

	for _, id := range ids {
		pos, err := sg.storedPosition(id)
		if err != nil {
			return 0, err
		}
		positions[id] = pos

		edges, err := sg.g.Edges(&id)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			edgeSet.Add(e)
		}
	}

	posOf := func(id ID) []C {
		if p, ok := positions[id]; ok {
			return p
		}
		p, _ := sg.storedPosition(id)

		return p
	}

	edgeSet.ForEach(func(pair [2]ID) bool {
		item, rect := rtree.Segment[ID, C](pair[0], pair[1], posOf(pair[0]), posOf(pair[1]))
		sg.lines.Delete(item, rect)

		return true
	})

	for _, id := range ids {
		sg.points.Delete(id, rtree.Point[C](positions[id]))
	}

	return sg.g.RemoveNodes(ids)
}

// UpdateNodePosition moves id to newPos, keeping the point tree, every
// incident edge's line-tree entry, and the underlying position attribute
// column mutually consistent. It uses rtree.Tree.Replace (delete-then-insert
// sugar, rtree/replace.go) rather than a bare Delete+Insert pair for the
// point move and for each incident edge's line-tree entry, since both the
// old and new rects are known up front.
//
// A Replace failure here can only come from an invalid new rect, which
// cannot happen once newPos has passed the length check above — the R-tree
// itself has no retryable failures (spec.md §4.2) — so this does not attempt
// a multi-step rollback the way AddNode/AddEdge do for their single tree
// entry.
func (sg *Graph[ID, C]) UpdateNodePosition(id ID, newPos []C) error {
	if len(newPos) != sg.dims {
		return fmt.Errorf("%w: attribute %q", ErrPositionValue, sg.positionAttr)
	}

	oldPos, err := sg.storedPosition(id)
	if err != nil {
		return err
	}

	edges, err := sg.g.Edges(&id)
	if err != nil {
		return err
	}

	if _, err := sg.points.Replace(id, rtree.Point[C](oldPos), id, rtree.Point[C](newPos)); err != nil {
		return err
	}

	for _, pair := range edges {
		u, v := pair[0], pair[1]
		other := u
		if other == id {
			other = v
		}
		otherPos, err := sg.storedPosition(other)
		if err != nil {
			return err
		}

		posFor := func(endpoint ID, moved []C) []C {
			if endpoint == id {
				return moved
			}

			return otherPos
		}

		oldItem, oldRect := rtree.Segment[ID, C](u, v, posFor(u, oldPos), posFor(v, oldPos))
		newItem, newRect := rtree.Segment[ID, C](u, v, posFor(u, newPos), posFor(v, newPos))
		if _, err := sg.lines.Replace(oldItem, oldRect, newItem, newRect); err != nil {
			return err
		}
	}

	return graph.SetNodeAttr(sg.g, sg.positionAttr, []ID{id}, [][]C{newPos})
}
