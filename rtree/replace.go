// SPDX-License-Identifier: MIT
//
// replace.go — Replace: delete-then-insert sugar for moving a stored item
// without a caller needing to sequence the two calls itself. Not named in
// spec.md's operation table; present in original_source's rtree.py and used
// by spatialgraph.Graph.UpdateNodePosition (spatialgraph/methods.go) to move
// a vertex's point and every incident edge's line-tree entry without a full
// remove/re-add round trip (see SPEC_FULL.md §4).

package rtree

// Replace removes (oldItem, oldRect) and inserts (newItem, newRect). It
// reports whether the old entry was found and removed; newItem/newRect are
// inserted unconditionally (even if the old entry was absent), matching the
// semantics of a plain Delete-then-Insert pair.
func (t *Tree[Item, C]) Replace(oldItem Item, oldRect Rect[C], newItem Item, newRect Rect[C]) (bool, error) {
	removed := t.Delete(oldItem, oldRect)
	if err := t.Insert(newItem, newRect); err != nil {
		return removed, err
	}

	return removed, nil
}
