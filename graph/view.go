// SPDX-License-Identifier: MIT
//
// view.go — Clone and InducedSubgraph: non-mutating structural views,
// adapted from core/view.go. core's UnweightedView is not carried forward:
// spec.md's edges have no first-class weight field to zero out (weight, if
// a caller wants one, is just another typed edge-attribute column), so
// there is nothing for an "unweighted view" to project away; see DESIGN.md.

package graph

import set3 "github.com/TomTonic/Set3"

func cloneAdjMap[ID comparable](m map[ID]*set3.Set3[ID]) map[ID]*set3.Set3[ID] {
	out := make(map[ID]*set3.Set3[ID], len(m))
	for id, s := range m {
		out[id] = s.Clone()
	}

	return out
}

// Clone returns a deep, independent copy of g: its own vertex/edge attribute
// columns, adjacency sets, and edge catalog. Mutating the clone never
// affects g and vice versa.
func Clone[ID comparable](g *Graph[ID]) *Graph[ID] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := &Graph[ID]{
		directed:    g.directed,
		nodeAttrs:   append([]AttrField(nil), g.nodeAttrs...),
		edgeAttrs:   append([]AttrField(nil), g.edgeAttrs...),
		nextOrdinal: g.nextOrdinal,
		verts:       make(map[ID]*vertexRecord[ID], len(g.verts)),
		nodeCols:    g.nodeCols.clone(),
		edgeSlot:    make(map[[2]ID]int, len(g.edgeSlot)),
		edgeCols:    g.edgeCols.clone(),
	}
	for id, rec := range g.verts {
		r := *rec
		out.verts[id] = &r
	}
	for k, v := range g.edgeSlot {
		out.edgeSlot[k] = v
	}
	if g.directed {
		out.adjOut = cloneAdjMap(g.adjOut)
		out.adjIn = cloneAdjMap(g.adjIn)
	} else {
		out.adj = cloneAdjMap(g.adj)
	}

	return out
}

// InducedSubgraph returns a new Graph containing exactly the vertices for
// which keep reports true, and every edge of g whose both endpoints satisfy
// keep. Insertion order of the surviving vertices (and the canonical edge
// order derived from it) is preserved from g, not re-derived from iteration
// order over keep.
func InducedSubgraph[ID comparable](g *Graph[ID], keep func(ID) bool) (*Graph[ID], error) {
	opts := make([]GraphOption, 0, 1+len(g.nodeAttrs)+len(g.edgeAttrs))
	if g.directed {
		opts = append(opts, WithDirected())
	}
	for _, f := range g.nodeAttrs {
		opts = append(opts, WithNodeAttr(f.Name, f.Type))
	}
	for _, f := range g.edgeAttrs {
		opts = append(opts, WithEdgeAttr(f.Name, f.Type))
	}

	out, err := NewGraph[ID](opts...)
	if err != nil {
		return nil, err
	}

	g.muVert.RLock()
	kept := make(map[ID]bool)
	for _, id := range g.Nodes() {
		if keep(id) {
			kept[id] = true
		}
	}
	for _, id := range g.Nodes() {
		if !kept[id] {
			continue
		}
		rec := g.verts[id]
		if _, err := out.AddNode(id, g.nodeCols.valuesAt(rec.row)); err != nil {
			g.muVert.RUnlock()

			return nil, err
		}
	}
	g.muVert.RUnlock()

	edges, err := g.Edges(nil)
	if err != nil {
		return nil, err
	}
	for _, pair := range edges {
		if !kept[pair[0]] || !kept[pair[1]] {
			continue
		}
		g.muEdgeAdj.RLock()
		row := g.edgeSlot[g.edgeKeyLocked(pair[0], pair[1])]
		attrs := g.edgeCols.valuesAt(row)
		g.muEdgeAdj.RUnlock()

		if _, err := out.AddEdge(pair[0], pair[1], attrs); err != nil {
			return nil, err
		}
	}

	return out, nil
}
