package viz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spinvane/isingviz/core"
	"github.com/spinvane/isingviz/ising"
	"github.com/spinvane/isingviz/viz"
)

// attributedTriangle builds the triangle with explicit x/y coordinates.
func attributedTriangle(t *testing.T) *core.Graph {
	t.Helper()
	h, J := triangle()
	g, err := ising.NewGraph(h, J,
		ising.WithNodeAttributes("x", map[string]any{"0": 0.0, "1": 1.0, "2": 0.0}),
		ising.WithNodeAttributes("y", map[string]any{"0": 0.0, "1": 0.0, "2": 1.0}),
	)
	require.NoError(t, err)

	return g
}

// TestPositions_ExplicitAttributes verifies the best case: every node has
// x/y attributes, so those are used directly.
func TestPositions_ExplicitAttributes(t *testing.T) {
	g := attributedTriangle(t)

	pos, err := viz.Positions(g)
	require.NoError(t, err)

	require.Equal(t, map[string][]float64{
		"0": {0, 0},
		"1": {1, 0},
		"2": {0, 1},
	}, pos)
}

// TestPositions_ZeroExtension verifies that dimensions beyond the x/y
// attributes are zero-filled.
func TestPositions_ZeroExtension(t *testing.T) {
	g := attributedTriangle(t)

	pos, err := viz.Positions(g, viz.WithDimensions(3))
	require.NoError(t, err)

	require.Equal(t, []float64{1, 0, 0}, pos["1"])
}

// TestPositions_FallbackAllOrNothing verifies that one node lacking a
// coordinate sends the whole graph to the fallback heuristic.
func TestPositions_FallbackAllOrNothing(t *testing.T) {
	h, J := triangle()
	g, err := ising.NewGraph(h, J,
		// node "2" gets x but no y
		ising.WithNodeAttributes("x", map[string]any{"0": 0.0, "1": 1.0, "2": 0.5}),
		ising.WithNodeAttributes("y", map[string]any{"0": 0.0, "1": 0.0}),
	)
	require.NoError(t, err)

	pos, err := viz.Positions(g, viz.WithSeed(7))
	require.NoError(t, err)

	require.Len(t, pos, 3)
	// fallback ignores the partial attributes: node "1" is not at (1,0)
	require.NotEqual(t, []float64{1, 0}, pos["1"])
	for id, coord := range pos {
		require.Len(t, coord, 2, "node %s", id)
		for _, c := range coord {
			require.GreaterOrEqual(t, c, 0.0)
			require.Less(t, c, 1.0)
		}
	}
}

// TestPositions_RandomDeterminism verifies seed-fixed reproducibility.
func TestPositions_RandomDeterminism(t *testing.T) {
	_, J := triangle()
	g, err := ising.NewGraph(nil, J)
	require.NoError(t, err)

	p1, err := viz.Positions(g, viz.WithSeed(42))
	require.NoError(t, err)
	p2, err := viz.Positions(g, viz.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, p1, p2)

	p3, err := viz.Positions(g, viz.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, p1, p3)
}

// TestPositions_ForceLayout verifies shape, bounds and determinism of the
// force-directed fallback.
func TestPositions_ForceLayout(t *testing.T) {
	h, J := triangle()
	// a loop must not break the simulation
	J[ising.NewCouple("0", "0")] = 1
	g, err := ising.NewGraph(h, J)
	require.NoError(t, err)

	p1, err := viz.Positions(g, viz.WithFallback(viz.ForceLayout), viz.WithSeed(3), viz.WithIterations(30))
	require.NoError(t, err)
	require.Len(t, p1, 3)
	for id, coord := range p1 {
		require.Len(t, coord, 2, "node %s", id)
		for _, c := range coord {
			require.GreaterOrEqual(t, c, 0.0)
			require.LessOrEqual(t, c, 1.0)
		}
	}

	p2, err := viz.Positions(g, viz.WithFallback(viz.ForceLayout), viz.WithSeed(3), viz.WithIterations(30))
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

// TestPositions_Errors verifies nil-graph and option violations.
func TestPositions_Errors(t *testing.T) {
	_, err := viz.Positions(nil)
	require.ErrorIs(t, err, viz.ErrNilGraph)

	g, err := ising.NewGraph(ising.LinearBiases{"a": 1}, nil)
	require.NoError(t, err)

	_, err = viz.Positions(g, viz.WithDimensions(1))
	require.ErrorIs(t, err, viz.ErrOptionViolation)
	_, err = viz.Positions(g, viz.WithIterations(0))
	require.ErrorIs(t, err, viz.ErrOptionViolation)
	_, err = viz.Positions(g, viz.WithFallback(viz.Heuristic(99)))
	require.ErrorIs(t, err, viz.ErrOptionViolation)
}

// TestPositions_EmptyGraph verifies the degenerate case.
func TestPositions_EmptyGraph(t *testing.T) {
	g, err := ising.NewGraph(nil, nil)
	require.NoError(t, err)

	pos, err := viz.Positions(g)
	require.NoError(t, err)
	require.Empty(t, pos)
}
