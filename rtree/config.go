// SPDX-License-Identifier: MIT
//
// config.go — functional options for tree construction, in the teacher's
// WithX(...) style (see builder/config.go). These constructors panic on an
// invalid argument; NewTree returns an error for an invalid resolved
// configuration and panics only when given a nil equal function.

package rtree

const (
	defaultMaxItems = 32
	defaultMinItems = 8
)

type treeConfig struct {
	minItems int
	maxItems int
}

func defaultTreeConfig() treeConfig {
	return treeConfig{minItems: defaultMinItems, maxItems: defaultMaxItems}
}

// TreeOption configures a Tree at construction time.
type TreeOption func(*treeConfig)

// WithMaxItems overrides the default maximum entry count per node (32).
// Panics if n is not positive.
func WithMaxItems(n int) TreeOption {
	if n <= 0 {
		panic("rtree: WithMaxItems requires a positive value")
	}

	return func(c *treeConfig) { c.maxItems = n }
}

// WithMinItems overrides the default minimum entry count per non-root node
// (8). Panics if n < 2; the final resolved value is also checked against
// maxItems/2 in NewTree, since option application order is not fixed.
func WithMinItems(n int) TreeOption {
	if n < 2 {
		panic("rtree: WithMinItems requires a value >= 2")
	}

	return func(c *treeConfig) { c.minItems = n }
}

func resolveTreeConfig(opts []TreeOption) (treeConfig, error) {
	cfg := defaultTreeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minItems < 2 || cfg.minItems > cfg.maxItems/2 {
		return treeConfig{}, ErrInvalidMinItems
	}
	if cfg.maxItems <= 0 {
		return treeConfig{}, ErrInvalidMaxItems
	}

	return cfg, nil
}
