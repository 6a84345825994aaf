// SPDX-License-Identifier: MIT
//
// types.go — Graph[ID,C] state and its functional-options construction
// surface, composing graph.GraphOption and rtree.TreeOption the way
// graph/types.go composes its own options (SPEC_FULL.md §7).

package spatialgraph

import (
	"fmt"

	"github.com/katalvlaran/spatialgraph/dtype"
	"github.com/katalvlaran/spatialgraph/graph"
	"github.com/katalvlaran/spatialgraph/rtree"
)

// Graph composes a typed property graph over ID with a point R-tree (vertex
// positions) and a line R-tree (edges as segments), both over coordinate
// type C and fixed dimensionality dims, kept consistent on every mutation
// (spec.md §4.5).
type Graph[ID comparable, C rtree.Ordered] struct {
	g            *graph.Graph[ID]
	points       *rtree.Tree[ID, C]
	lines        *rtree.Tree[rtree.LineItem[ID], C]
	positionAttr string
	dims         int
}

// Option configures a Graph before construction.
type Option func(*config)

type config struct {
	graphOpts []graph.GraphOption
	treeOpts  []rtree.TreeOption
}

// WithDirected marks the underlying graph directed; the default is
// undirected.
func WithDirected() Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, graph.WithDirected()) }
}

// WithNodeAttr declares a node attribute, exactly as graph.WithNodeAttr. The
// position attribute passed to NewGraph must be declared this way, with an
// array DType of length dims.
func WithNodeAttr(name string, dt dtype.DType) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, graph.WithNodeAttr(name, dt)) }
}

// WithEdgeAttr declares an edge attribute, exactly as graph.WithEdgeAttr.
func WithEdgeAttr(name string, dt dtype.DType) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, graph.WithEdgeAttr(name, dt)) }
}

// WithTreeOptions forwards rtree.TreeOptions (e.g. WithMinItems,
// WithMaxItems) to both the point tree and the line tree.
func WithTreeOptions(opts ...rtree.TreeOption) Option {
	return func(c *config) { c.treeOpts = append(c.treeOpts, opts...) }
}

// NewGraph constructs an empty Graph. positionAttr must already be declared
// (via WithNodeAttr, among opts) with an array DType of length dims; dims
// must be positive.
func NewGraph[ID comparable, C rtree.Ordered](positionAttr string, dims int, opts ...Option) (*Graph[ID, C], error) {
	if dims <= 0 {
		return nil, ErrInvalidDims
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := graph.NewGraph[ID](cfg.graphOpts...)
	if err != nil {
		return nil, err
	}

	declared := false
	for _, f := range g.NodeAttrSpec() {
		if f.Name != positionAttr {
			continue
		}
		declared = true
		if !f.Type.IsArray() || f.Type.Size() != dims {
			return nil, fmt.Errorf("%w: %q is %s", ErrPositionAttrShape, positionAttr, f.Type)
		}
	}
	if !declared {
		return nil, fmt.Errorf("%w: %q", ErrPositionAttrUndeclared, positionAttr)
	}

	points, err := rtree.NewPointTree[ID, C](dims, cfg.treeOpts...)
	if err != nil {
		return nil, err
	}
	lines, err := rtree.NewLineTree[ID, C](dims, cfg.treeOpts...)
	if err != nil {
		return nil, err
	}

	return &Graph[ID, C]{
		g:            g,
		points:       points,
		lines:        lines,
		positionAttr: positionAttr,
		dims:         dims,
	}, nil
}

// Graph returns the underlying typed property graph, for callers that need
// direct access to attribute accessors or structural views
// (graph.GetNodeAttr, graph.Clone, and friends).
func (sg *Graph[ID, C]) Graph() *graph.Graph[ID] { return sg.g }

// Dims returns the fixed coordinate dimensionality sg was constructed with.
func (sg *Graph[ID, C]) Dims() int { return sg.dims }

func (sg *Graph[ID, C]) position(attrs map[string]any) ([]C, error) {
	pos, ok := attrs[sg.positionAttr].([]C)
	if !ok || len(pos) != sg.dims {
		return nil, fmt.Errorf("%w: attribute %q", ErrPositionValue, sg.positionAttr)
	}

	return pos, nil
}
