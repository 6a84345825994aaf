// SPDX-License-Identifier: MIT
//
// methods_edges.go — AddEdge/AddEdges/Edges/InEdges/OutEdges/EdgesByNodes/
// NumEdges, and the edge-key canonicalization shared with attrs.go.
// Adapted from core/methods_edges.go's AddEdge/RemoveEdge, generalized from
// sorting by string Edge.ID to spec.md §5's insertion-ordinal ordering.
//
// Lock order: every exported entry point here acquires muVert before
// muEdgeAdj (nested or sequential), matching AddNode/RemoveNodes in
// methods_vertices.go, so the two locks are never taken in reverse order.

package graph

import (
	"fmt"
	"sort"

	set3 "github.com/TomTonic/Set3"

	"github.com/katalvlaran/spatialgraph/buffer"
)

// edgeKeyLocked canonicalizes (u,v) into the key used by edgeSlot, assuming
// the caller already holds at least a read lock on muVert. Both u and v
// must already be present in g.verts.
func (g *Graph[ID]) edgeKeyLocked(u, v ID) [2]ID {
	if g.directed {
		return [2]ID{u, v}
	}
	ru := g.verts[u]
	rv := g.verts[v]
	if ru.ordinal <= rv.ordinal {
		return [2]ID{u, v}
	}

	return [2]ID{v, u}
}

// edgeKeys canonicalizes every (us[i],vs[i]) pair, taking its own muVert
// read lock. Used by attrs.go, which must not already hold muEdgeAdj when
// calling this (see the lock-order note above).
func (g *Graph[ID]) edgeKeys(us, vs []ID) ([][2]ID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([][2]ID, len(us))
	for i := range us {
		if _, ok := g.verts[us[i]]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, us[i])
		}
		if _, ok := g.verts[vs[i]]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, vs[i])
		}
		out[i] = g.edgeKeyLocked(us[i], vs[i])
	}

	return out, nil
}

// AddEdge inserts the edge (u,v) with the given attrs. u and v must already
// exist and differ (spec.md §3: no self-loops); at most one edge per
// endpoint pair is kept (canonical for undirected, directional for
// directed). Returns 1 if inserted, 0 if the pair already had an edge.
func (g *Graph[ID]) AddEdge(u, v ID, attrs map[string]any) (int, error) {
	if err := validateAttrs(g.edgeAttrs, attrs); err != nil {
		return 0, err
	}
	if u == v {
		return 0, ErrSelfLoop
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.verts[u]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	if _, ok := g.verts[v]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := g.edgeKeyLocked(u, v)
	if _, exists := g.edgeSlot[key]; exists {
		return 0, nil
	}

	row := g.edgeCols.addRow()
	writeRow(g.edgeCols, row, attrs)
	g.edgeSlot[key] = row

	if g.directed {
		g.adjOut[u].Add(v)
		g.adjIn[v].Add(u)
	} else {
		g.adj[u].Add(v)
		g.adj[v].Add(u)
	}

	return 1, nil
}

// AddEdges inserts every (us[i],vs[i]) pair with attrs[i], returning the
// count inserted. All attrs are validated before any edge is inserted.
func (g *Graph[ID]) AddEdges(us, vs []ID, attrs []map[string]any) (int, error) {
	if err := buffer.CheckIDs(vs, len(us)); err != nil {
		return 0, ErrLengthMismatch
	}
	if err := buffer.CheckAttr(attrs, len(us)); err != nil {
		return 0, ErrLengthMismatch
	}
	for _, a := range attrs {
		if err := validateAttrs(g.edgeAttrs, a); err != nil {
			return 0, err
		}
	}

	n := 0
	for i := range us {
		inserted, err := g.AddEdge(us[i], vs[i], attrs[i])
		if err != nil {
			return n, err
		}
		n += inserted
	}

	return n, nil
}

// removeEdgeRowLocked removes key's attribute row and catalog entry. The
// caller must already hold muEdgeAdj for writing. No-op if key is absent.
func (g *Graph[ID]) removeEdgeRowLocked(key [2]ID) {
	row, ok := g.edgeSlot[key]
	if !ok {
		return
	}
	delete(g.edgeSlot, key)
	g.edgeCols.removeRow(row, func(movedFromRow int) {
		for k, r := range g.edgeSlot {
			if r == movedFromRow {
				g.edgeSlot[k] = row

				break
			}
		}
	})
}

// removeIncidentEdgesLocked removes every edge touching id from both
// adjacency and the edge attribute columns. The caller must already hold
// muVert and muEdgeAdj for writing (see RemoveNodes).
func (g *Graph[ID]) removeIncidentEdgesLocked(id ID) {
	if g.directed {
		out := g.adjOut[id]
		in := g.adjIn[id]
		out.ForEach(func(v ID) bool {
			g.removeEdgeRowLocked([2]ID{id, v})
			g.adjIn[v].Remove(id)

			return true
		})
		in.ForEach(func(u ID) bool {
			g.removeEdgeRowLocked([2]ID{u, id})
			g.adjOut[u].Remove(id)

			return true
		})

		return
	}

	s := g.adj[id]
	s.ForEach(func(w ID) bool {
		g.removeEdgeRowLocked(g.edgeKeyLocked(id, w))
		g.adj[w].Remove(id)

		return true
	})
}

// edgePairsSorted returns keys ordered by the ordinal of their first
// component then their second, matching spec.md §5's canonical-enumeration
// order. Caller must hold at least muVert.RLock().
func (g *Graph[ID]) edgePairsSorted(keys [][2]ID) [][2]ID {
	out := append([][2]ID(nil), keys...)
	sort.Slice(out, func(i, j int) bool {
		oi0, oi1 := g.verts[out[i][0]].ordinal, g.verts[out[i][1]].ordinal
		oj0, oj1 := g.verts[out[j][0]].ordinal, g.verts[out[j][1]].ordinal
		if oi0 != oj0 {
			return oi0 < oj0
		}

		return oi1 < oj1
	})

	return out
}

// Edges returns edges as endpoint pairs. With no anchor (node == nil), it
// enumerates canonically for undirected graphs (each pair once, smaller
// insertion ordinal first, spec.md §4.4) or every directed edge once;
// with an anchor it returns edges incident to node (undirected) or the
// union of inEdges/outEdges (directed).
func (g *Graph[ID]) Edges(node *ID) ([][2]ID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if node == nil {
		keys := make([][2]ID, 0, len(g.edgeSlot))
		for k := range g.edgeSlot {
			keys = append(keys, k)
		}

		return g.edgePairsSorted(keys), nil
	}

	if _, ok := g.verts[*node]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, *node)
	}

	if g.directed {
		out, err := g.directedEdgesLocked(*node, true, true)

		return out, err
	}

	s := g.adj[*node]
	keys := make([][2]ID, 0, s.Len())
	s.ForEach(func(w ID) bool {
		keys = append(keys, g.edgeKeyLocked(*node, w))

		return true
	})

	return g.edgePairsSorted(keys), nil
}

// directedEdgesLocked collects (node,*) pairs if out, (*,node) pairs if in,
// for a directed graph. Caller holds both locks for reading.
func (g *Graph[ID]) directedEdgesLocked(node ID, out, in bool) ([][2]ID, error) {
	var keys [][2]ID
	if out {
		g.adjOut[node].ForEach(func(v ID) bool {
			keys = append(keys, [2]ID{node, v})

			return true
		})
	}
	if in {
		g.adjIn[node].ForEach(func(u ID) bool {
			keys = append(keys, [2]ID{u, node})

			return true
		})
	}

	return keys, nil
}

// InEdges returns the edges directed into node. Directed graphs only.
func (g *Graph[ID]) InEdges(node ID) ([][2]ID, error) {
	if !g.directed {
		return nil, ErrDirectedOnly
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s, ok := g.adjIn[node]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, node)
	}
	var keys [][2]ID
	s.ForEach(func(u ID) bool {
		keys = append(keys, [2]ID{u, node})

		return true
	})

	return keys, nil
}

// OutEdges returns the edges directed out of node. Directed graphs only.
func (g *Graph[ID]) OutEdges(node ID) ([][2]ID, error) {
	if !g.directed {
		return nil, ErrDirectedOnly
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s, ok := g.adjOut[node]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, node)
	}
	var keys [][2]ID
	s.ForEach(func(v ID) bool {
		keys = append(keys, [2]ID{node, v})

		return true
	})

	return keys, nil
}

// EdgesByNodes returns every edge incident to any id in ids; an edge with
// both endpoints in ids is returned once (spec.md §4.4: "may repeat if both
// endpoints in set" refers to the original's per-node scan — this
// implementation dedupes via a Set3 since returning the same edge twice
// from a single bulk call is surprising API behavior the spec does not
// otherwise require; see DESIGN.md).
func (g *Graph[ID]) EdgesByNodes(ids []ID) ([][2]ID, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, id := range ids {
		if _, ok := g.verts[id]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
		}
	}

	seen := set3.Empty[[2]ID]()
	var keys [][2]ID
	addKey := func(k [2]ID) {
		if seen.Contains(k) {
			return
		}
		seen.Add(k)
		keys = append(keys, k)
	}

	for _, id := range ids {
		if g.directed {
			g.adjOut[id].ForEach(func(v ID) bool { addKey([2]ID{id, v}); return true })
			g.adjIn[id].ForEach(func(u ID) bool { addKey([2]ID{u, id}); return true })

			continue
		}
		g.adj[id].ForEach(func(w ID) bool { addKey(g.edgeKeyLocked(id, w)); return true })
	}

	return g.edgePairsSorted(keys), nil
}

// NumEdges returns the total number of edges currently stored.
func (g *Graph[ID]) NumEdges() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeSlot)
}
