// Package isingviz builds weighted graph representations of Ising /
// spin-glass models and turns their biases into visualization-ready
// color encodings.
//
// An Ising model is an undirected graph whose nodes carry external-field
// (linear) biases h and whose edges carry coupling (quadratic) biases J.
// isingviz assembles such models into attributed graphs and maps their
// biases onto a shared, zero-centered color scale for rendering.
//
// Everything is organized under three subpackages:
//
//	core/  — attributed undirected Graph container & thread-safe primitives
//	ising/ — model construction: bias maps → attributed Ising graph
//	viz/   — bias→color mapping, node positioning, SVG rendering
//
// Quick ASCII example (a frustrated triangle, J = -1 on every edge):
//
//	    0───1
//	     ╲ ╱
//	      2
//
// A typical pipeline:
//
//	h := ising.LinearBiases{"0": -0.5, "1": -1, "2": 0.0}
//	J := ising.QuadraticBiases{
//		ising.NewCouple("0", "1"): -1,
//		ising.NewCouple("1", "2"): -1,
//		ising.NewCouple("2", "0"): -1,
//	}
//	g, _ := ising.NewGraph(h, J)
//	nodeColors, edgeColors := viz.ColorMap(g.Nodes(), g.EdgeKeys(), h, J)
//	pos, _ := viz.Positions(g)
//	_ = viz.DrawSVG(w, g, pos, nodeColors, edgeColors)
//
// Unspecified biases default to zero everywhere — absence is never an
// error in the Ising convention.
//
//	go get github.com/spinvane/isingviz
package isingviz
