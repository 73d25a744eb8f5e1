// File: colormap.go — bias → color-value mapping and shared scale bounds.
package viz

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spinvane/isingviz/ising"
)

// ColorMap computes one numeric color value per entry of nodelist and
// edgelist, positionally aligned with its input list.
//
// Scoring:
//   - node v:      h[v] + J[(v,v)]. The self-loop entry, if present,
//     folds into the node's color and never surfaces as an edge color.
//   - edge (u,v):  J[(u,v)] + J[(v,u)]. Both orientations are summed
//     because a raw map may record either; this is tolerance for
//     either-orientation storage, not deduplication. Canonically-built
//     maps (NewCouple keys, QuadraticFromPairs) hold one orientation, so
//     the second lookup simply misses.
//
// Unspecified biases score 0 — absence is never an error. The lists need
// not cover every node or edge of any graph; ColorMap scores exactly what
// it is given.
//
// Pure function of its arguments: no mutation, no hidden state.
// Complexity: O(len(nodelist) + len(edgelist)).
func ColorMap(nodelist []string, edgelist []ising.Couple, h ising.LinearBiases, J ising.QuadraticBiases) (nodeColors, edgeColors []float64) {
	nodeColors = make([]float64, len(nodelist))
	for i, v := range nodelist {
		c := h[v]
		c += J[ising.Couple{U: v, V: v}]
		nodeColors[i] = c
	}

	edgeColors = make([]float64, len(edgelist))
	for i, e := range edgelist {
		c := J[e]
		if !e.IsLoop() {
			c += J[e.Reversed()]
		}
		edgeColors[i] = c
	}

	return nodeColors, edgeColors
}

// ColorRange returns the shared, zero-centered color scale bounds
// [-vmag, vmag], where vmag is the largest absolute value across both
// color arrays. Nodes and edges share the range so equal biases render
// as equal colors regardless of kind.
//
// Empty inputs yield (0, 0).
// Complexity: O(len(nodeColors) + len(edgeColors)).
func ColorRange(nodeColors, edgeColors []float64) (vmin, vmax float64) {
	var vmag float64
	if len(nodeColors) > 0 {
		vmag = floats.Norm(nodeColors, math.Inf(1))
	}
	if len(edgeColors) > 0 {
		vmag = math.Max(vmag, floats.Norm(edgeColors, math.Inf(1)))
	}
	if vmag == 0 {
		return 0, 0 // avoid a negative zero lower bound
	}

	return -vmag, vmag
}
