// SPDX-License-Identifier: MIT
//
// grid.go — GridSpatialGraph: a 2D orthogonal lattice, adapted from
// builder/impl_grid.go's Grid(rows, cols) constructor. The teacher's "r,c"
// string ID scheme is replaced with an int ID (row-major index) since the
// spatial graph's position attribute already carries the (r,c) coordinate —
// encoding it twice, once in the ID and once in the position, would be
// redundant. Edge emission order (right neighbor, then bottom neighbor, for
// each cell in row-major order) is kept identical to the teacher.

package fixtures

import (
	"fmt"

	"github.com/katalvlaran/spatialgraph/dtype"
	"github.com/katalvlaran/spatialgraph/spatialgraph"
)

const minGridDim = 1

// GridSpatialGraph builds a rows×cols orthogonal lattice spatial graph.
// Vertex (r,c) gets ID r*cols+c and position [float64(r), float64(c)]
// (spacing 1.0 per axis; WithBounds is ignored for grids — the lattice
// defines its own geometry). Edges connect each cell to its right and bottom neighbor;
// WithDirected mirrors each edge, exactly as the teacher's Grid does for
// directed graphs.
func GridSpatialGraph(rows, cols int, opts ...Option) (*spatialgraph.Graph[int, float64], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("fixtures: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}

	cfg := defaultConfig(2)
	for _, opt := range opts {
		opt(&cfg)
	}

	sgOpts := []spatialgraph.Option{
		spatialgraph.WithNodeAttr(positionAttrName, dtype.MustParse("float64[2]")),
	}
	if cfg.directed {
		sgOpts = append(sgOpts, spatialgraph.WithDirected())
	}

	sg, err := spatialgraph.NewGraph[int, float64](positionAttrName, 2, sgOpts...)
	if err != nil {
		return nil, err
	}

	id := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := []float64{float64(r), float64(c)}
			if _, err := sg.AddNode(id(r, c), map[string]any{positionAttrName: pos}); err != nil {
				return nil, fmt.Errorf("fixtures: AddNode(%d,%d): %w", r, c, err)
			}
		}
	}

	addEdge := func(u, v int) error {
		if _, err := sg.AddEdge(u, v, map[string]any{}); err != nil {
			return err
		}
		if cfg.directed {
			if _, err := sg.AddEdge(v, u, map[string]any{}); err != nil {
				return err
			}
		}

		return nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				if err := addEdge(u, id(r, c+1)); err != nil {
					return nil, fmt.Errorf("fixtures: AddEdge right of (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if err := addEdge(u, id(r+1, c)); err != nil {
					return nil, fmt.Errorf("fixtures: AddEdge below (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return sg, nil
}
