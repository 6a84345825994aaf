// SPDX-License-Identifier: MIT
//
// methods_vertices.go — AddNode/AddNodes/RemoveNode/RemoveNodes/Nodes and
// the vertex-side bulk queries (NumNeighbors/NumIn/NumOut), adapted from
// core/methods.go's AddVertex/RemoveVertex but keyed by insertion ordinal
// rather than sorted string ID (spec.md §3, §4.4).

package graph

import (
	"fmt"
	"sort"

	set3 "github.com/TomTonic/Set3"

	"github.com/katalvlaran/spatialgraph/buffer"
)

// AddNode inserts id with the given attrs (one entry per declared node
// attribute, spec.md §4.4). Returns 1 if id was newly inserted, 0 if id
// already existed (a no-op, not an error). attrs is validated against the
// declared spec before any state change.
func (g *Graph[ID]) AddNode(id ID, attrs map[string]any) (int, error) {
	if err := validateAttrs(g.nodeAttrs, attrs); err != nil {
		return 0, err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.verts[id]; exists {
		return 0, nil
	}

	row := g.nodeCols.addRow()
	writeRow(g.nodeCols, row, attrs)
	g.verts[id] = &vertexRecord[ID]{id: id, ordinal: g.nextOrdinal, row: row}
	g.nextOrdinal++

	g.muEdgeAdj.Lock()
	g.ensureAdjEntry(id)
	g.muEdgeAdj.Unlock()

	return 1, nil
}

// AddNodes inserts every (ids[i], attrs[i]) pair, returning the number
// newly inserted. All attrs are validated before any vertex is inserted
// (spec.md §7: "validate, then apply").
func (g *Graph[ID]) AddNodes(ids []ID, attrs []map[string]any) (int, error) {
	if err := buffer.CheckAttr(attrs, len(ids)); err != nil {
		return 0, ErrLengthMismatch
	}
	for _, a := range attrs {
		if err := validateAttrs(g.nodeAttrs, a); err != nil {
			return 0, err
		}
	}

	n := 0
	for i, id := range ids {
		inserted, err := g.AddNode(id, attrs[i])
		if err != nil {
			return n, err
		}
		n += inserted
	}

	return n, nil
}

func (g *Graph[ID]) ensureAdjEntry(id ID) {
	if g.directed {
		if _, ok := g.adjOut[id]; !ok {
			g.adjOut[id] = set3.Empty[ID]()
		}
		if _, ok := g.adjIn[id]; !ok {
			g.adjIn[id] = set3.Empty[ID]()
		}

		return
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = set3.Empty[ID]()
	}
}

// RemoveNode deletes id and every edge incident to it (spec.md §3: "removing
// a vertex removes all its incident edges").
func (g *Graph[ID]) RemoveNode(id ID) error {
	n, err := g.RemoveNodes([]ID{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}

	return nil
}

// RemoveNodes deletes every id in ids along with all incident edges,
// validating that every id exists before mutating anything.
func (g *Graph[ID]) RemoveNodes(ids []ID) (int, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, id := range ids {
		if _, ok := g.verts[id]; !ok {
			return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
	}

	for _, id := range ids {
		g.removeIncidentEdgesLocked(id)
	}

	for _, id := range ids {
		rec := g.verts[id]
		g.nodeCols.removeRow(rec.row, func(movedFromRow int) {
			for _, other := range g.verts {
				if other.row == movedFromRow {
					other.row = rec.row

					break
				}
			}
		})
		delete(g.verts, id)
		if g.directed {
			delete(g.adjOut, id)
			delete(g.adjIn, id)
		} else {
			delete(g.adj, id)
		}
	}

	return len(ids), nil
}

// Has reports whether id is currently present in g.
func (g *Graph[ID]) Has(id ID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.verts[id]

	return ok
}

// Nodes returns every vertex ID in insertion order (spec.md §5: "the order
// returned by nodes() equals insertion order").
func (g *Graph[ID]) Nodes() []ID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	recs := make([]*vertexRecord[ID], 0, len(g.verts))
	for _, r := range g.verts {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ordinal < recs[j].ordinal })

	out := make([]ID, len(recs))
	for i, r := range recs {
		out[i] = r.id
	}

	return out
}

// Len returns the number of vertices currently in the graph.
func (g *Graph[ID]) Len() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.verts)
}

// NumNeighbors returns, per id, the size of its undirected neighbor set
// (directed graphs: the union of in- and out-neighbors, matching the
// "numNeighbors" entry of spec.md §4.4's table which is undirected-shaped;
// directed callers needing a single direction use NumIn/NumOut).
func (g *Graph[ID]) NumNeighbors(ids []ID) ([]int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		if g.directed {
			outSet, ok1 := g.adjOut[id]
			inSet, ok2 := g.adjIn[id]
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
			}
			union := outSet.Clone()
			inSet.ForEach(func(v ID) bool {
				union.Add(v)

				return true
			})
			out[i] = union.Len()

			continue
		}
		s, ok := g.adj[id]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
		out[i] = s.Len()
	}

	return out, nil
}

// NumIn returns, per id, the size of its in-neighbor set. Directed graphs
// only.
func (g *Graph[ID]) NumIn(ids []ID) ([]int, error) {
	if !g.directed {
		return nil, ErrDirectedOnly
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		s, ok := g.adjIn[id]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
		out[i] = s.Len()
	}

	return out, nil
}

// NumOut returns, per id, the size of its out-neighbor set. Directed graphs
// only.
func (g *Graph[ID]) NumOut(ids []ID) ([]int, error) {
	if !g.directed {
		return nil, ErrDirectedOnly
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		s, ok := g.adjOut[id]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
		out[i] = s.Len()
	}

	return out, nil
}
