// SPDX-License-Identifier: MIT
//
// tree.go — Tree construction and the read-only accessors that don't belong
// to search.go/knn.go.

package rtree

// Tree is a generic in-memory R*-tree. The zero value is not usable; obtain
// one with NewTree, NewPointTree, or NewLineTree.
//
// A Tree keeps no internal lock: concurrent reads are safe, but the caller
// must serialize any call against a concurrent mutation.
type Tree[Item any, C Ordered] struct {
	dims     int
	root     *node[Item, C]
	size     int
	nextSeq  uint64
	minItems int
	maxItems int
	equal    func(a, b Item) bool
	distance func(point []C, rect Rect[C], item Item) float64
}

// NewTree constructs an empty Tree of the given dimensionality.
//
// equal must report whether two Items refer to the same stored entry; it is
// used by Delete/DeleteMany to locate the item to remove and must not be
// nil (NewTree panics if it is).
//
// distance, if non-nil, is used to compute the exact leaf-item distance
// during Nearest/NearestWithDistances; the priority queue always uses the
// rect-to-point distance as the admissible lower bound for ordering
// regardless of what distance returns, so a distance that is never smaller
// than the rect bound is always safe to supply. If distance is nil, the
// rect-to-point squared distance is used directly (exact for point items).
func NewTree[Item any, C Ordered](dims int, equal func(a, b Item) bool, distance func(point []C, rect Rect[C], item Item) float64, opts ...TreeOption) (*Tree[Item, C], error) {
	if equal == nil {
		panic("rtree: NewTree requires a non-nil equal function")
	}
	cfg, err := resolveTreeConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Tree[Item, C]{
		dims:     dims,
		minItems: cfg.minItems,
		maxItems: cfg.maxItems,
		equal:    equal,
		distance: distance,
	}, nil
}

// Len returns the number of items currently stored in t.
func (t *Tree[Item, C]) Len() int { return t.size }

// BoundingBox returns the union of every stored item's rectangle, and false
// if t is empty.
func (t *Tree[Item, C]) BoundingBox() (Rect[C], bool) {
	if t.root == nil {
		return Rect[C]{}, false
	}

	return t.root.boundingBox(), true
}

func (t *Tree[Item, C]) validateRect(r Rect[C]) error {
	if !r.valid(t.dims) {
		return ErrInvalidRect
	}

	return nil
}
