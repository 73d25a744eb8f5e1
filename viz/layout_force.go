// File: layout_force.go — Fruchterman–Reingold force simulation over a
// dense position matrix.
package viz

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/spinvane/isingviz/core"
)

// forcePositions runs a Fruchterman–Reingold simulation in cfg.dim
// dimensions and rescales the result into the unit cube.
//
// State lives in two n×dim dense matrices (positions and per-step
// displacements). The simulation is deterministic for a fixed seed:
// initial placement is seeded-random and the node order is sorted.
//
// Loops exert no attractive force — a node cannot pull on itself.
//
// Complexity: O(iterations · (V² + E)) time, O(V·dim) space.
func forcePositions(g *core.Graph, nodes []string, cfg layoutConfig) map[string][]float64 {
	n := len(nodes)
	if n == 0 {
		return map[string][]float64{}
	}

	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	// Non-loop edges as index pairs.
	type link struct{ i, j int }
	var links []link
	for _, k := range g.EdgeKeys() {
		if k.IsLoop() {
			continue
		}
		links = append(links, link{i: index[k.U], j: index[k.V]})
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	x := mat.NewDense(n, cfg.dim, nil)
	for i := 0; i < n; i++ {
		for d := 0; d < cfg.dim; d++ {
			x.Set(i, d, rng.Float64())
		}
	}
	disp := mat.NewDense(n, cfg.dim, nil)

	// Optimal pairwise distance for unit volume: k = (1/n)^(1/dim).
	k := math.Pow(1.0/float64(n), 1.0/float64(cfg.dim))
	const eps = 1e-9

	// Linear cooling from an initial temperature of one tenth of the frame.
	temp := 0.1
	cool := temp / float64(cfg.iterations)

	for it := 0; it < cfg.iterations; it++ {
		disp.Zero()

		// Repulsion between every node pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dist := eps
				for d := 0; d < cfg.dim; d++ {
					delta := x.At(i, d) - x.At(j, d)
					dist += delta * delta
				}
				dist = math.Sqrt(dist)
				f := k * k / dist
				for d := 0; d < cfg.dim; d++ {
					delta := (x.At(i, d) - x.At(j, d)) / dist
					disp.Set(i, d, disp.At(i, d)+delta*f)
					disp.Set(j, d, disp.At(j, d)-delta*f)
				}
			}
		}

		// Attraction along edges.
		for _, l := range links {
			dist := eps
			for d := 0; d < cfg.dim; d++ {
				delta := x.At(l.i, d) - x.At(l.j, d)
				dist += delta * delta
			}
			dist = math.Sqrt(dist)
			f := dist * dist / k
			for d := 0; d < cfg.dim; d++ {
				delta := (x.At(l.i, d) - x.At(l.j, d)) / dist
				disp.Set(l.i, d, disp.At(l.i, d)-delta*f)
				disp.Set(l.j, d, disp.At(l.j, d)+delta*f)
			}
		}

		// Displace, capped by the current temperature.
		for i := 0; i < n; i++ {
			norm := eps
			for d := 0; d < cfg.dim; d++ {
				norm += disp.At(i, d) * disp.At(i, d)
			}
			norm = math.Sqrt(norm)
			step := math.Min(norm, temp)
			for d := 0; d < cfg.dim; d++ {
				x.Set(i, d, x.At(i, d)+disp.At(i, d)/norm*step)
			}
		}

		temp -= cool
	}

	rescaleUnit(x, n, cfg.dim)

	pos := make(map[string][]float64, n)
	for i, id := range nodes {
		coord := make([]float64, cfg.dim)
		mat.Row(coord, i, x)
		pos[id] = coord
	}

	return pos
}

// rescaleUnit maps each column of x onto [0,1]. A degenerate column
// (all values equal) collapses to 0.5.
func rescaleUnit(x *mat.Dense, n, dim int) {
	for d := 0; d < dim; d++ {
		lo, hi := x.At(0, d), x.At(0, d)
		for i := 1; i < n; i++ {
			v := x.At(i, d)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		span := hi - lo
		for i := 0; i < n; i++ {
			if span == 0 {
				x.Set(i, d, 0.5)
			} else {
				x.Set(i, d, (x.At(i, d)-lo)/span)
			}
		}
	}
}
