// Package ising constructs attributed graphs from sparse Ising model
// specifications.
//
// An Ising problem is given by two bias maps:
//
//   - LinearBiases h: node → external-field bias.
//   - QuadraticBiases J: unordered node pair (Couple) → coupling bias.
//     A loop couple (v,v) encodes a linear contribution inside the
//     quadratic map.
//
// NewGraph turns (h, J) into a core.Graph tagged "ising": every node of h
// becomes a graph node, every couple of J becomes an edge (endpoints are
// created implicitly), and biases are attached under the "bias" attribute.
// A node or edge absent from its bias map gets no "bias" attribute at all;
// the zero default is applied at read time by consumers such as
// viz.ColorMap, never at storage time.
//
// Additional attribute maps attach either through the typed options
// WithNodeAttributes / WithEdgeAttributes, or through AttachAttributes,
// which classifies a heterogeneous map by inspecting its keys and rejects
// maps that mix node and edge keys with ErrMixedAttributeKeys.
//
// Unspecified biases are zero by the Ising convention, so absence is never
// an error anywhere in this package.
package ising
