// Package core provides a thread-safe in-memory attributed Graph
// specialized for undirected models such as Ising lattices.
//
// The Graph G = (V,E) is deliberately narrower than a general-purpose
// container:
//
//   - Edges are undirected and keyed canonically: an EdgeKey always stores
//     the lexicographically smaller endpoint first, so (u,v) and (v,u)
//     address the same edge and dual-orientation storage is unrepresentable.
//   - Self-loops are always legal. In the Ising encoding a loop (v,v)
//     carries a linear bias, so forbidding loops would forbid the model.
//   - Parallel edges are not supported; AddEdge is idempotent.
//   - Every node and edge owns an attribute table (string → any). The
//     graph owns these tables exclusively; mutate them only through
//     SetNodeAttr/SetEdgeAttr.
//
// Why use core.Graph?
//
//   - Deterministic iteration — Nodes(), Edges(), EdgeKeys(), Neighbors()
//     all return sorted results, so downstream layouts, color arrays and
//     golden tests are reproducible.
//   - Reuse without reallocation — Reset() clears catalogs in place for
//     callers that rebuild models in a loop.
//   - Single sync.RWMutex — one attribute-bearing catalog per kind does
//     not warrant finer-grained locking; concurrent readers never block
//     each other.
//
// Error policy: only package-level sentinels ("core: ...") are returned;
// branch with errors.Is. Sentinels are never wrapped at definition site.
package core
