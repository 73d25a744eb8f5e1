// Package viz maps Ising model biases onto visualization primitives:
// numeric color values, node positions, and an SVG rendering.
//
// The three surfaces are independent and compose left to right:
//
//   - ColorMap scores a node list and an edge list against the bias maps,
//     producing one color value per entry, positionally aligned. The
//     self-loop entry (v,v) of the quadratic map folds into v's node
//     color; unspecified biases score 0. ColorRange derives the shared,
//     zero-centered scale bounds [-vmag, vmag] from the two arrays.
//   - Positions resolves a coordinate per node: explicit "x"/"y" node
//     attributes when every node carries them, otherwise a layout
//     heuristic (seeded random placement by default, force-directed on
//     request). Extra dimensions beyond the attributes are zero-filled.
//   - DrawSVG renders graph + positions + colors on a diverging color
//     scale (blue–white–red, blended in Lab space) with an optional
//     colorbar legend. It draws exactly the Ising artifact; it is not a
//     general plotting surface.
//
// ColorMap is a pure function of its arguments: no mutation, no hidden
// state, deterministic. Positions is deterministic for a fixed seed.
package viz
