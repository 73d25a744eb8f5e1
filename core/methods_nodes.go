// File: methods_nodes.go
// Role: Node lifecycle, attribute access and queries.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - All operations take g.mu (write lock for mutations, read lock for queries).
package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// The attribute table is initialized to a non-nil map so callers can attach
// attributes immediately after insertion.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}

	g.nodes[id] = &Node{ID: id, Attrs: make(map[string]any)}
	g.ensureAdjacency(id)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the record for id, or ErrNodeNotFound.
// The returned *Node is read-only by convention.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all node IDs in lexicographic ascending order.
//
// This is the stable enumeration surface: color arrays and layouts keyed
// off Nodes() stay positionally aligned across calls.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetNodeAttr attaches key=value to the node's attribute table.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist (attributes never
//     auto-create topology).
//
// Complexity: O(1).
func (g *Graph) SetNodeAttr(id, key string, value any) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Attrs[key] = value

	return nil
}

// NodeAttr looks up a node attribute. The second result reports presence;
// a missing node or missing key both yield (nil, false).
// Complexity: O(1).
func (g *Graph) NodeAttr(id, key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	v, ok := n.Attrs[key]

	return v, ok
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// A node with a self-loop lists itself among its neighbors.
//
// Errors:
//   - ErrEmptyNodeID / ErrNodeNotFound on invalid input.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency bootstraps the neighbor bucket for id.
// Callers must hold g.mu for writing.
func (g *Graph) ensureAdjacency(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
