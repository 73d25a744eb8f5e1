// File: build.go — the NewGraph factory and its functional options.
//
// Design contract:
//   - One orchestrator: NewGraph(h, J, opts...). Resolves options, fills
//     the container, attaches biases, then named attributes, in a
//     deterministic order.
//   - NewGraph is a factory returning a fresh graph; WithGraph opts into
//     reusing a caller-supplied container (cleared first), for callers
//     that rebuild models in a loop and want to avoid reallocation.
//   - Invalid option values are recorded during resolution and surfaced
//     as an error from NewGraph (no panics at runtime).
package ising

import "github.com/spinvane/isingviz/core"

// Option configures NewGraph via functional arguments.
// An invalid Option (nil graph, empty attribute name) is recorded
// internally and surfaced when NewGraph is invoked.
type Option func(*buildConfig)

// namedNodeAttrs is one WithNodeAttributes entry; order of appearance is
// preserved so later maps deterministically overwrite earlier ones on key
// collision.
type namedNodeAttrs struct {
	name   string
	values map[string]any
}

// namedEdgeAttrs is one WithEdgeAttributes entry.
type namedEdgeAttrs struct {
	name   string
	values map[Couple]any
}

// buildConfig holds resolved construction parameters.
type buildConfig struct {
	graph     *core.Graph
	nodeAttrs []namedNodeAttrs
	edgeAttrs []namedEdgeAttrs

	// first error recorded during option resolution
	err error
}

// WithGraph reuses the given container instead of allocating a fresh one.
// The container is Reset before filling, so prior contents never leak
// into the new model. A nil graph surfaces ErrNilGraph from NewGraph.
func WithGraph(g *core.Graph) Option {
	return func(c *buildConfig) {
		if g == nil {
			c.recordErr(ErrNilGraph)

			return
		}
		c.graph = g
	}
}

// WithNodeAttributes attaches a named node-attribute map: node id → value.
// Nodes referenced here are added to the graph if missing, upholding the
// invariant that every attributed node exists in the node set.
// An empty name surfaces ErrEmptyAttributeName from NewGraph.
func WithNodeAttributes(name string, values map[string]any) Option {
	return func(c *buildConfig) {
		if name == "" {
			c.recordErr(ErrEmptyAttributeName)

			return
		}
		c.nodeAttrs = append(c.nodeAttrs, namedNodeAttrs{name: name, values: values})
	}
}

// WithEdgeAttributes attaches a named edge-attribute map: couple → value.
// Edges referenced here are added to the graph if missing (endpoints
// implicitly), upholding the invariant that every attributed edge exists
// in the edge set.
// An empty name surfaces ErrEmptyAttributeName from NewGraph.
func WithEdgeAttributes(name string, values map[Couple]any) Option {
	return func(c *buildConfig) {
		if name == "" {
			c.recordErr(ErrEmptyAttributeName)

			return
		}
		c.edgeAttrs = append(c.edgeAttrs, namedEdgeAttrs{name: name, values: values})
	}
}

// recordErr keeps the first violation; later ones would only shadow it.
func (c *buildConfig) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// NewGraph builds an attributed Ising graph from the linear biases h and
// quadratic biases J.
//
// Behavior:
//  1. Start from a fresh graph (or Reset the WithGraph container) tagged
//     GraphName.
//  2. Add every node of h; add every couple of J as an edge, creating its
//     endpoints implicitly. Loop couples become loop edges.
//  3. Attach BiasAttr edge attributes from J and BiasAttr node attributes
//     from h. Nothing is defaulted to 0 at storage time.
//  4. Apply WithNodeAttributes / WithEdgeAttributes maps in option order.
//
// Either-orientation J keys fold additively into the canonical edge
// before attachment, so a map populated with both (u,v) and (v,u) yields
// one edge whose bias is their sum.
//
// Errors:
//   - ErrNilGraph / ErrEmptyAttributeName from invalid options.
//   - Structural errors from core propagate unwrapped.
//
// Construction is deterministic: nodes and edges are inserted in sorted
// order, so identical inputs yield identical graphs.
//
// Complexity: O((|h| + |J| + Σ|attrs|) log(...)) due to sorted insertion.
func NewGraph(h LinearBiases, J QuadraticBiases, opts ...Option) (*core.Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	g := cfg.graph
	if g == nil {
		g = core.NewGraph(core.WithName(GraphName))
	} else {
		g.Reset()
		g.SetName(GraphName)
	}

	// Nodes from h.
	for _, id := range sortedNodes(h) {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}

	// Edges from J, canonical and orientation-folded.
	folded := fold(J)
	for _, c := range sortedCouples(folded) {
		if _, err := g.AddEdge(c.U, c.V); err != nil {
			return nil, err
		}
		if err := g.SetEdgeAttr(c, BiasAttr, folded[c]); err != nil {
			return nil, err
		}
	}

	// Node biases from h. Every key of h already exists as a node.
	for _, id := range sortedNodes(h) {
		if err := g.SetNodeAttr(id, BiasAttr, h[id]); err != nil {
			return nil, err
		}
	}

	// Named attribute maps, in option order.
	for _, na := range cfg.nodeAttrs {
		for _, id := range sortedAnyNodes(na.values) {
			if err := g.AddNode(id); err != nil {
				return nil, err
			}
			if err := g.SetNodeAttr(id, na.name, na.values[id]); err != nil {
				return nil, err
			}
		}
	}
	for _, ea := range cfg.edgeAttrs {
		for _, c := range sortedAnyCouples(ea.values) {
			if _, err := g.AddEdge(c.U, c.V); err != nil {
				return nil, err
			}
			if err := g.SetEdgeAttr(c, ea.name, ea.values[c]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
