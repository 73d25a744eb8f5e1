// File: methods.go
// Role: Graph-level operations: naming and in-place reset.
package core

// Name returns the model name tag ("" when untagged).
// Complexity: O(1).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName tags the graph with a model name.
// Complexity: O(1).
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.name = name
}

// Reset clears all nodes, edges, attributes and the name tag in place,
// leaving an empty graph ready for reuse. Prefer NewGraph for a fresh
// value; Reset exists for callers that rebuild models in a loop and want
// to keep a single container instance.
//
// Complexity: O(1) (old catalogs are released to the GC).
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.name = ""
	g.nodes = make(map[string]*Node)
	g.edges = make(map[EdgeKey]*Edge)
	g.adjacency = make(map[string]map[string]struct{})
}
