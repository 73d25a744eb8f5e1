// File: types.go
// Role: Declares EdgeKey, Node, Edge, Graph, GraphOption, sentinel errors,
//       and the NewGraph constructor.
// Determinism:
//   - EdgeKey canonical ordering (smaller endpoint first) is a structural
//     invariant, not a convention; every edge method normalizes its input.
// Concurrency:
//   - All catalogs are guarded by a single sync.RWMutex (g.mu).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// EdgeKey identifies an undirected edge {U, V}.
//
// The canonical form stores the lexicographically smaller endpoint in U.
// Construct keys with NewEdgeKey; a zero-value or hand-written literal may
// be non-canonical and is normalized by every Graph method that accepts one.
type EdgeKey struct {
	// U is the lexicographically smaller endpoint in canonical form.
	U string

	// V is the lexicographically larger endpoint in canonical form.
	V string
}

// NewEdgeKey returns the canonical key for the undirected edge {u, v}.
// Complexity: O(1).
func NewEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Canonical returns the canonical form of k (endpoints ordered).
func (k EdgeKey) Canonical() EdgeKey { return NewEdgeKey(k.U, k.V) }

// Reversed returns k with its endpoints swapped. The result addresses the
// same undirected edge; it exists for either-orientation lookups over raw
// caller-supplied maps.
func (k EdgeKey) Reversed() EdgeKey { return EdgeKey{U: k.V, V: k.U} }

// IsLoop reports whether k is a self-loop (both endpoints equal).
func (k EdgeKey) IsLoop() bool { return k.U == k.V }

// Less imposes the total order used by EdgeKeys()/Edges() enumeration:
// by U first, then by V.
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.U != o.U {
		return k.U < o.U
	}

	return k.V < o.V
}

// String renders k as "u--v" (undirected notation).
func (k EdgeKey) String() string { return k.U + "--" + k.V }

// Node is a graph node with its attribute table.
//
// Attrs is owned by the Graph; treat it as read-only and mutate via
// Graph.SetNodeAttr.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Attrs stores named attributes (e.g. "bias", "x", "y").
	Attrs map[string]any
}

// Edge is an undirected graph edge with its attribute table.
//
// Attrs is owned by the Graph; treat it as read-only and mutate via
// Graph.SetEdgeAttr.
type Edge struct {
	// Key is the canonical endpoint pair.
	Key EdgeKey

	// Attrs stores named attributes (e.g. "bias").
	Attrs map[string]any
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithName tags the graph with a model name (e.g. "ising").
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is an undirected attributed graph with canonical edge keys.
//
// Loops are always permitted; multi-edges never are. All methods are safe
// for concurrent use.
type Graph struct {
	mu sync.RWMutex // guards every field below

	name string

	nodes     map[string]*Node
	edges     map[EdgeKey]*Edge
	adjacency map[string]map[string]struct{} // node ID → neighbor IDs
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
