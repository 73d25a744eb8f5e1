// File: attributes.go — heterogeneous attribute-map classification.
//
// AttachAttributes keeps the untyped entry point alive for callers whose
// attribute maps arrive with dynamic keys (e.g. decoded from a foreign
// format). New code should prefer the typed WithNodeAttributes /
// WithEdgeAttributes options on NewGraph, which need no runtime
// inspection.
package ising

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spinvane/isingviz/core"
)

// AttachAttributes classifies each named attribute map in extra by its
// keys and attaches it to g.
//
// Classification, per named map:
//   - If every key is a 2-element pair (Couple, [2]string, [2]int, or
//     [2]any of node-like elements), attach as an edge attribute.
//   - Else, if every key is a node identifier (string or int), attach as
//     a node attribute.
//   - Else the map is invalid: ErrMixedAttributeKeys, wrapped with the
//     offending attribute name.
//
// Referenced nodes and edges are added to g if missing, upholding the
// invariant that every attributed node/edge exists in the graph.
//
// The operation is atomic in effect ordering: all maps are classified
// before anything is attached, so a mixed-key map leaves g untouched.
//
// Complexity: O(Σ|maps| log Σ|maps|).
func AttachAttributes(g *core.Graph, extra map[string]map[any]any) error {
	if g == nil {
		return ErrNilGraph
	}

	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)

	// Classification pass: no mutation until every map is proven valid.
	type classified struct {
		name  string
		nodes map[string]any
		edges map[Couple]any
	}
	plan := make([]classified, 0, len(names))
	for _, name := range names {
		nodes, edges, err := classifyKeys(extra[name])
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMixedAttributeKeys, name)
		}
		plan = append(plan, classified{name: name, nodes: nodes, edges: edges})
	}

	// Attachment pass.
	for _, cl := range plan {
		for _, id := range sortedAnyNodes(cl.nodes) {
			if err := g.AddNode(id); err != nil {
				return err
			}
			if err := g.SetNodeAttr(id, cl.name, cl.nodes[id]); err != nil {
				return err
			}
		}
		for _, c := range sortedAnyCouples(cl.edges) {
			if _, err := g.AddEdge(c.U, c.V); err != nil {
				return err
			}
			if err := g.SetEdgeAttr(c, cl.name, cl.edges[c]); err != nil {
				return err
			}
		}
	}

	return nil
}

// classifyKeys splits one attribute map into node-keyed or edge-keyed
// form. Exactly one of the returned maps is non-nil on success. Pair
// classification is tried first, mirroring the edge-before-node order of
// the contract; an empty map classifies as (empty) edge attributes.
func classifyKeys(values map[any]any) (map[string]any, map[Couple]any, error) {
	edges := make(map[Couple]any, len(values))
	allPairs := true
	for k, v := range values {
		c, ok := coupleKey(k)
		if !ok {
			allPairs = false

			break
		}
		edges[c] = v
	}
	if allPairs {
		return nil, edges, nil
	}

	nodes := make(map[string]any, len(values))
	for k, v := range values {
		id, ok := nodeKey(k)
		if !ok {
			return nil, nil, ErrMixedAttributeKeys
		}
		nodes[id] = v
	}

	return nodes, nil, nil
}

// nodeKey coerces a dynamic key into a node identifier.
// Accepted forms: string, int, int64.
func nodeKey(k any) (string, bool) {
	switch id := k.(type) {
	case string:
		return id, id != ""
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	default:
		return "", false
	}
}

// coupleKey coerces a dynamic key into a canonical Couple.
// Accepted forms: Couple, [2]string, [2]int, [2]any of node-like elements.
func coupleKey(k any) (Couple, bool) {
	switch p := k.(type) {
	case Couple:
		return p.Canonical(), true
	case [2]string:
		if p[0] == "" || p[1] == "" {
			return Couple{}, false
		}

		return NewCouple(p[0], p[1]), true
	case [2]int:
		return NewCouple(strconv.Itoa(p[0]), strconv.Itoa(p[1])), true
	case [2]any:
		u, okU := nodeKey(p[0])
		v, okV := nodeKey(p[1])
		if !okU || !okV {
			return Couple{}, false
		}

		return NewCouple(u, v), true
	default:
		return Couple{}, false
	}
}
