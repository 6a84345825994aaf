// SPDX-License-Identifier: MIT
//
// insert.go — Insert/InsertMany and the R*-style subtree-choice and
// fixup-propagation they share with reinsertion during delete (condense, in delete.go).

package rtree

import "github.com/katalvlaran/spatialgraph/buffer"

// Insert adds item at rect. rect is copied; the tree never aliases a
// caller-owned slice.
//
// Complexity: O(log_M n) expected, where M is MaxItems; an insert that
// triggers a chain of node splits up to the root costs O(height) extra work.
func (t *Tree[Item, C]) Insert(item Item, rect Rect[C]) error {
	if err := t.validateRect(rect); err != nil {
		return err
	}
	if t.root == nil {
		t.root = &node[Item, C]{leaf: true}
	}

	e := entry[Item, C]{rect: rect.clone(), item: item, ordinal: t.nextSeq}
	t.nextSeq++

	path, idxPath := t.chooseLeafPath(e.rect)
	leaf := path[len(path)-1]
	leaf.entries = append(leaf.entries, e)
	t.size++
	t.insertFixup(path, idxPath)

	return nil
}

// InsertMany inserts every (items[i], rects[i]) pair. It fails fast on the
// first invalid rect or length mismatch, leaving any already-inserted pairs
// in the tree.
func (t *Tree[Item, C]) InsertMany(items []Item, rects []Rect[C]) error {
	if err := buffer.CheckIDs(rects, len(items)); err != nil {
		return ErrLengthMismatch
	}
	for i := range items {
		if err := t.Insert(items[i], rects[i]); err != nil {
			return err
		}
	}

	return nil
}

// reinsertEntry re-inserts an already-existing entry (preserving its
// ordinal) during delete-time condensing; it must not change t.size.
func (t *Tree[Item, C]) reinsertEntry(e entry[Item, C]) {
	if t.root == nil {
		t.root = &node[Item, C]{leaf: true}
	}
	path, idxPath := t.chooseLeafPath(e.rect)
	leaf := path[len(path)-1]
	leaf.entries = append(leaf.entries, e)
	t.insertFixup(path, idxPath)
}

// chooseLeafPath descends from the root choosing, at each internal level,
// the child entry requiring least enlargement to contain rect (ties broken
// first by the resulting union area, then by the child's current area). It
// returns the full root-to-leaf path and, for each non-root step, the index
// within its parent's entries.
func (t *Tree[Item, C]) chooseLeafPath(rect Rect[C]) ([]*node[Item, C], []int) {
	path := []*node[Item, C]{t.root}
	idxPath := make([]int, 0, 4)

	n := t.root
	for !n.leaf {
		best := chooseSubtree(n, rect)
		idxPath = append(idxPath, best)
		n = n.entries[best].child
		path = append(path, n)
	}

	return path, idxPath
}

func chooseSubtree[Item any, C Ordered](n *node[Item, C], rect Rect[C]) int {
	bestIdx := 0
	bestEnl := n.entries[0].rect.enlargement(rect)
	bestArea := n.entries[0].rect.union(rect).areaF64()
	bestCur := n.entries[0].rect.areaF64()

	for i := 1; i < len(n.entries); i++ {
		cand := n.entries[i].rect
		enl := cand.enlargement(rect)
		area := cand.union(rect).areaF64()
		cur := cand.areaF64()

		switch {
		case enl < bestEnl:
			bestIdx, bestEnl, bestArea, bestCur = i, enl, area, cur
		case enl == bestEnl && area < bestArea:
			bestIdx, bestEnl, bestArea, bestCur = i, enl, area, cur
		case enl == bestEnl && area == bestArea && cur < bestCur:
			bestIdx, bestEnl, bestArea, bestCur = i, enl, area, cur
		}
	}

	return bestIdx
}

// insertFixup splits the leaf if it overflowed, then walks back up the path
// updating each ancestor's child rectangle and propagating any further
// splits; if the root itself splits, tree height grows by one.
func (t *Tree[Item, C]) insertFixup(path []*node[Item, C], idxPath []int) {
	i := len(path) - 1

	var sibling *node[Item, C]
	if len(path[i].entries) > t.maxItems {
		sibling = t.splitNode(path[i])
	}

	for i > 0 {
		parent := path[i-1]
		pIdx := idxPath[i-1]
		parent.entries[pIdx].rect = path[i].boundingBox()

		if sibling != nil {
			parent.entries = append(parent.entries, entry[Item, C]{rect: sibling.boundingBox(), child: sibling})
			sibling = nil
			if len(parent.entries) > t.maxItems {
				sibling = t.splitNode(parent)
			}
		}
		i--
	}

	if sibling != nil {
		newRoot := &node[Item, C]{leaf: false}
		newRoot.entries = append(newRoot.entries,
			entry[Item, C]{rect: t.root.boundingBox(), child: t.root},
			entry[Item, C]{rect: sibling.boundingBox(), child: sibling},
		)
		t.root = newRoot
	}
}
