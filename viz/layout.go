// File: layout.go — node-position resolution: explicit coordinates first,
// layout heuristics as fallback.
package viz

import (
	"fmt"
	"math/rand"

	"github.com/spinvane/isingviz/core"
)

// Heuristic selects the fallback placement used when explicit coordinates
// are unavailable.
type Heuristic int

const (
	// RandomLayout places nodes uniformly in the unit cube (seeded).
	RandomLayout Heuristic = iota

	// ForceLayout runs a Fruchterman–Reingold force simulation and
	// rescales the result into the unit cube (seeded, deterministic).
	ForceLayout
)

// Attribute names read for explicit coordinates. Dimensions beyond the
// attribute pair are zero-filled.
const (
	xAttr = "x"
	yAttr = "y"
)

// Layout defaults.
const (
	// DefaultDimensions is the coordinate dimensionality.
	DefaultDimensions = 2

	// DefaultSeed makes fallback layouts reproducible out of the box;
	// override with WithSeed when variation is wanted.
	DefaultSeed int64 = 1

	// DefaultIterations is the force-simulation step count.
	DefaultIterations = 50
)

// LayoutOption configures Positions via functional arguments.
// An invalid option is recorded internally and surfaced when Positions
// is invoked.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	dim        int
	seed       int64
	iterations int
	fallback   Heuristic

	err error
}

func defaultLayoutConfig() layoutConfig {
	return layoutConfig{
		dim:        DefaultDimensions,
		seed:       DefaultSeed,
		iterations: DefaultIterations,
		fallback:   RandomLayout,
	}
}

// WithDimensions sets the coordinate dimensionality (d ≥ 2). When d > 2,
// all extra dimensions of attribute-derived positions are set to 0.
func WithDimensions(d int) LayoutOption {
	return func(c *layoutConfig) {
		if d < 2 {
			c.recordErr(fmt.Errorf("%w: dimensions must be >= 2 (%d)", ErrOptionViolation, d))

			return
		}
		c.dim = d
	}
}

// WithSeed seeds the fallback heuristics for reproducible placement.
func WithSeed(seed int64) LayoutOption {
	return func(c *layoutConfig) { c.seed = seed }
}

// WithIterations sets the force-simulation step count (n ≥ 1).
// It has no effect on RandomLayout.
func WithIterations(n int) LayoutOption {
	return func(c *layoutConfig) {
		if n < 1 {
			c.recordErr(fmt.Errorf("%w: iterations must be >= 1 (%d)", ErrOptionViolation, n))

			return
		}
		c.iterations = n
	}
}

// WithFallback selects the fallback heuristic.
func WithFallback(h Heuristic) LayoutOption {
	return func(c *layoutConfig) {
		if h != RandomLayout && h != ForceLayout {
			c.recordErr(fmt.Errorf("%w: unknown heuristic (%d)", ErrOptionViolation, h))

			return
		}
		c.fallback = h
	}
}

func (c *layoutConfig) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Positions resolves one coordinate slice (length = dimensions) per node.
//
// Resolution order:
//  1. If every node carries numeric "x" and "y" attributes, those are
//     used directly, extended with zeros beyond two dimensions. The check
//     is all-or-nothing: a single node lacking a coordinate sends the
//     whole graph to the fallback.
//  2. Otherwise the configured fallback heuristic places the nodes.
//
// Positions never fails on a well-formed graph — it degrades to the
// fallback rather than raising. The only errors are a nil graph and
// invalid option values.
//
// Complexity: O(V) for attribute placement; O(iterations · V²) for the
// force fallback.
func Positions(g *core.Graph, opts ...LayoutOption) (map[string][]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	nodes := g.Nodes()
	if pos, ok := attributePositions(g, nodes, cfg.dim); ok {
		return pos, nil
	}

	switch cfg.fallback {
	case ForceLayout:
		return forcePositions(g, nodes, cfg), nil
	default:
		return randomPositions(nodes, cfg), nil
	}
}

// attributePositions attempts the best case: every node has explicit
// x/y coordinates. Reports ok=false as soon as any node misses one.
func attributePositions(g *core.Graph, nodes []string, dim int) (map[string][]float64, bool) {
	pos := make(map[string][]float64, len(nodes))
	for _, id := range nodes {
		x, okX := floatAttr(g, id, xAttr)
		y, okY := floatAttr(g, id, yAttr)
		if !okX || !okY {
			return nil, false
		}
		coord := make([]float64, dim)
		coord[0], coord[1] = x, y
		pos[id] = coord
	}

	return pos, true
}

// randomPositions places every node uniformly in [0,1)^dim.
// Nodes are visited in sorted order, so a fixed seed fixes the layout.
func randomPositions(nodes []string, cfg layoutConfig) map[string][]float64 {
	rng := rand.New(rand.NewSource(cfg.seed))
	pos := make(map[string][]float64, len(nodes))
	for _, id := range nodes {
		coord := make([]float64, cfg.dim)
		for d := range coord {
			coord[d] = rng.Float64()
		}
		pos[id] = coord
	}

	return pos
}

// floatAttr reads a node attribute as float64, coercing the numeric
// types an attribute map realistically carries.
func floatAttr(g *core.Graph, id, key string) (float64, bool) {
	v, ok := g.NodeAttr(id, key)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
