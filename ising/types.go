// File: types.go — bias map types, the Couple edge key, and ingestion
// helpers for the dense-sequence and either-orientation input forms.
package ising

import (
	"sort"
	"strconv"

	"github.com/spinvane/isingviz/core"
)

// Attribute and model-name tags attached by NewGraph.
const (
	// BiasAttr is the attribute name under which linear and quadratic
	// biases are stored on nodes and edges.
	BiasAttr = "bias"

	// GraphName tags graphs produced by NewGraph.
	GraphName = "ising"
)

// Couple is the canonical unordered node pair keying a quadratic bias.
// It is core.EdgeKey by another name so bias maps and graph edges share
// one key space.
type Couple = core.EdgeKey

// NewCouple returns the canonical Couple for {u, v}
// (lexicographically smaller endpoint first).
func NewCouple(u, v string) Couple { return core.NewEdgeKey(u, v) }

// LinearBiases maps node → external-field bias h. Nodes absent from the
// map implicitly have bias 0.
type LinearBiases map[string]float64

// QuadraticBiases maps an unordered node pair → coupling bias J.
// A loop couple (v,v) is semantically a linear contribution on v.
// Pairs absent from the map implicitly have bias 0.
//
// Hand-written literals may contain non-canonical (or even both)
// orientations of a pair; consumers fold orientations additively.
// Prefer NewCouple keys or QuadraticFromPairs ingestion, which keep the
// map canonical and make double-orientation storage unrepresentable.
type QuadraticBiases map[Couple]float64

// LinearFromSlice converts the dense-sequence form of linear biases,
// where the index is the node id, into a LinearBiases map with decimal
// node IDs ("0", "1", ...).
//
// Every index is a specified bias — including explicit zeros — matching
// the dense-form convention that listing a value asserts it.
//
// Complexity: O(n).
func LinearFromSlice(biases []float64) LinearBiases {
	h := make(LinearBiases, len(biases))
	for i, b := range biases {
		h[strconv.Itoa(i)] = b
	}

	return h
}

// QuadraticFromPairs ingests an ordered-pair map into canonical form.
// Both orientations of the same pair fold additively into one entry,
// preserving the either-orientation tolerance at the boundary while the
// returned map holds a single canonical key per edge.
//
// Complexity: O(len(pairs)).
func QuadraticFromPairs(pairs map[[2]string]float64) QuadraticBiases {
	J := make(QuadraticBiases, len(pairs))
	for p, b := range pairs {
		J[NewCouple(p[0], p[1])] += b
	}

	return J
}

// fold returns J with every key canonicalized, orientations summed.
// Internal normalization step shared by NewGraph.
func fold(J QuadraticBiases) QuadraticBiases {
	out := make(QuadraticBiases, len(J))
	for c, b := range J {
		out[c.Canonical()] += b
	}

	return out
}

// sortedNodes returns the keys of h in lexicographic order for
// deterministic construction.
func sortedNodes(h LinearBiases) []string {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// sortedCouples returns the keys of J in canonical order for
// deterministic construction.
func sortedCouples(J QuadraticBiases) []Couple {
	keys := make([]Couple, 0, len(J))
	for c := range J {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}

// sortedAnyNodes is sortedNodes for attribute maps with arbitrary values.
func sortedAnyNodes(m map[string]any) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// sortedAnyCouples is sortedCouples for attribute maps with arbitrary values.
func sortedAnyCouples(m map[Couple]any) []Couple {
	keys := make([]Couple, 0, len(m))
	for c := range m {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}
