// File: methods_edges.go
// Role: Edge lifecycle, attribute access and queries.
// Determinism:
//   - Edges()/EdgeKeys() return edges sorted by canonical key ascending.
// Concurrency:
//   - All operations take g.mu (write lock for mutations, read lock for queries).
package core

import "sort"

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints
// implicitly. Adding an existing edge is a no-op (no multi-edges); loops
// (u == v) are always legal.
//
// Returns the canonical EdgeKey under which the edge is stored.
//
// Errors:
//   - ErrEmptyNodeID: if either endpoint is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (EdgeKey, error) {
	if u == "" || v == "" {
		return EdgeKey{}, ErrEmptyNodeID
	}

	k := NewEdgeKey(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure endpoints exist before linking them.
	for _, id := range [2]string{k.U, k.V} {
		if _, exists := g.nodes[id]; !exists {
			g.nodes[id] = &Node{ID: id, Attrs: make(map[string]any)}
			g.ensureAdjacency(id)
		}
	}

	if _, exists := g.edges[k]; exists {
		return k, nil // idempotent: the edge is already present
	}

	g.edges[k] = &Edge{Key: k, Attrs: make(map[string]any)}
	g.adjacency[k.U][k.V] = struct{}{}
	g.adjacency[k.V][k.U] = struct{}{}

	return k, nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Orientation is irrelevant: HasEdge(u, v) == HasEdge(v, u).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[NewEdgeKey(u, v)]

	return ok
}

// Edge returns the record stored under k (normalized to canonical form),
// or ErrEdgeNotFound. The returned *Edge is read-only by convention.
// Complexity: O(1).
func (g *Graph) Edge(k EdgeKey) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[k.Canonical()]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeKeys returns all canonical edge keys sorted ascending (by U, then V).
// Complexity: O(E log E).
func (g *Graph) EdgeKeys() []EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}

// Edges returns all edge records sorted by canonical key ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })

	return out
}

// EdgeCount returns the total number of edges (loops included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SetEdgeAttr attaches key=value to the edge stored under k (normalized
// to canonical form).
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist (attributes never
//     auto-create topology).
//
// Complexity: O(1).
func (g *Graph) SetEdgeAttr(k EdgeKey, key string, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[k.Canonical()]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attrs[key] = value

	return nil
}

// EdgeAttr looks up an edge attribute under k (normalized to canonical
// form). The second result reports presence; a missing edge or missing
// key both yield (nil, false).
// Complexity: O(1).
func (g *Graph) EdgeAttr(k EdgeKey, key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[k.Canonical()]
	if !ok {
		return nil, false
	}
	v, ok := e.Attrs[key]

	return v, ok
}
