// SPDX-License-Identifier: MIT
//
// delete.go — Delete/DeleteMany and the "condense tree" reinsertion that
// repairs underflowed leaves. Item/rect mismatches are reported by a false
// return rather than an error, per the tree's failure-semantics contract:
// this is a pure in-memory structure with no retryable failures.

package rtree

import "github.com/katalvlaran/spatialgraph/buffer"

// Delete removes the stored entry matching both item (via the tree's equal
// function) and rect (by exact coordinates). It reports whether a matching
// entry was found and removed.
//
// Complexity: O(n) worst case to locate the entry (bounded by height in the
// common case where rect prunes most subtrees), plus O(log_M n) amortized
// for condensing.
func (t *Tree[Item, C]) Delete(item Item, rect Rect[C]) bool {
	if !rect.valid(t.dims) || t.root == nil {
		return false
	}

	loc := t.locate(rect, item)
	if loc == nil {
		return false
	}

	leaf := loc.path[len(loc.path)-1]
	leaf.entries = append(leaf.entries[:loc.leafIdx], leaf.entries[loc.leafIdx+1:]...)
	t.size--

	t.condense(loc.path, loc.idxPath)

	return true
}

// DeleteMany deletes every (items[i], rects[i]) pair independently,
// returning one bool per pair in the same order. A false entry does not
// abort the remaining deletions.
func (t *Tree[Item, C]) DeleteMany(items []Item, rects []Rect[C]) ([]bool, error) {
	if err := buffer.CheckIDs(rects, len(items)); err != nil {
		return nil, ErrLengthMismatch
	}

	out := make([]bool, len(items))
	for i := range items {
		out[i] = t.Delete(items[i], rects[i])
	}

	return out, nil
}

type deleteLocation[Item any, C Ordered] struct {
	path    []*node[Item, C]
	idxPath []int
	leafIdx int
}

// locate finds the leaf entry matching rect and item exactly, pruning
// subtrees whose rectangle does not intersect rect (any node enclosing the
// matching leaf entry must intersect it).
func (t *Tree[Item, C]) locate(rect Rect[C], item Item) *deleteLocation[Item, C] {
	path := []*node[Item, C]{t.root}
	idxPath := make([]int, 0, 4)

	var rec func(n *node[Item, C]) int
	rec = func(n *node[Item, C]) int {
		if n.leaf {
			for i, e := range n.entries {
				if rectEqual(e.rect, rect) && t.equal(e.item, item) {
					return i
				}
			}

			return -1
		}

		for i, e := range n.entries {
			if !e.rect.intersects(rect) {
				continue
			}
			path = append(path, e.child)
			idxPath = append(idxPath, i)
			if leafIdx := rec(e.child); leafIdx >= 0 {
				return leafIdx
			}
			path = path[:len(path)-1]
			idxPath = idxPath[:len(idxPath)-1]
		}

		return -1
	}

	leafIdx := rec(t.root)
	if leafIdx < 0 {
		return nil
	}

	return &deleteLocation[Item, C]{path: path, idxPath: idxPath, leafIdx: leafIdx}
}

func rectEqual[C Ordered](a, b Rect[C]) bool {
	if len(a.Min) != len(b.Min) {
		return false
	}
	for i := range a.Min {
		if a.Min[i] != b.Min[i] || a.Max[i] != b.Max[i] {
			return false
		}
	}

	return true
}

// condense repairs underflowed nodes along path after a leaf deletion: any
// node left with fewer than MinItems entries is unlinked from its parent and
// its surviving leaf-level items are collected for reinsertion; ancestors
// that did not underflow simply have their child rectangle tightened.
func (t *Tree[Item, C]) condense(path []*node[Item, C], idxPath []int) {
	var orphans []entry[Item, C]

	i := len(path) - 1
	for i > 0 {
		n := path[i]
		parent := path[i-1]
		pIdx := idxPath[i-1]

		if len(n.entries) < t.minItems {
			orphans = append(orphans, collectLeafItems(n)...)
			parent.entries = append(parent.entries[:pIdx], parent.entries[pIdx+1:]...)
		} else {
			parent.entries[pIdx].rect = n.boundingBox()
		}
		i--
	}

	if t.root != nil && !t.root.leaf && len(t.root.entries) == 1 {
		t.root = t.root.entries[0].child
	}
	if t.root != nil && !t.root.leaf && len(t.root.entries) == 0 {
		t.root = &node[Item, C]{leaf: true}
	}

	for _, e := range orphans {
		t.reinsertEntry(e)
	}

	if t.size == 0 {
		t.root = nil
	}
}

// collectLeafItems gathers every leaf-level entry reachable under n,
// preserving original rect/item/ordinal so reinsertion keeps k-NN tie-break
// ordering stable across a delete that triggers condensing.
func collectLeafItems[Item any, C Ordered](n *node[Item, C]) []entry[Item, C] {
	if n.leaf {
		return append([]entry[Item, C](nil), n.entries...)
	}

	var out []entry[Item, C]
	for _, e := range n.entries {
		out = append(out, collectLeafItems(e.child)...)
	}

	return out
}
