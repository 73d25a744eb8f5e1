package ising_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/spinvane/isingviz/core"
	"github.com/spinvane/isingviz/ising"
)

// triangle is the canonical frustrated-triangle fixture used throughout:
// h = {0:-0.5, 1:-1, 2:0.0}, J = -1 on every edge of the 3-cycle.
func triangle() (ising.LinearBiases, ising.QuadraticBiases) {
	h := ising.LinearBiases{"0": -0.5, "1": -1, "2": 0.0}
	J := ising.QuadraticBiases{
		ising.NewCouple("0", "1"): -1,
		ising.NewCouple("1", "2"): -1,
		ising.NewCouple("2", "0"): -1,
	}

	return h, J
}

// BuildSuite exercises NewGraph under various model shapes.
type BuildSuite struct {
	suite.Suite
}

// TestTriangle verifies the canonical example: node set, edge set, and
// per-node/per-edge bias attributes.
func (s *BuildSuite) TestTriangle() {
	h, J := triangle()
	g, err := ising.NewGraph(h, J)
	require.NoError(s.T(), err)

	require.Equal(s.T(), ising.GraphName, g.Name())
	require.Equal(s.T(), []string{"0", "1", "2"}, g.Nodes())
	require.Equal(s.T(), []ising.Couple{
		ising.NewCouple("0", "1"),
		ising.NewCouple("0", "2"),
		ising.NewCouple("1", "2"),
	}, g.EdgeKeys())

	for _, c := range g.EdgeKeys() {
		v, ok := g.EdgeAttr(c, ising.BiasAttr)
		require.True(s.T(), ok, "edge %v must carry a bias", c)
		require.Equal(s.T(), -1.0, v)
	}
	wantNode := map[string]float64{"0": -0.5, "1": -1, "2": 0.0}
	for id, want := range wantNode {
		v, ok := g.NodeAttr(id, ising.BiasAttr)
		require.True(s.T(), ok, "node %s must carry a bias", id)
		require.Equal(s.T(), want, v)
	}
}

// TestImplicitEndpoints verifies that edges create missing endpoints and
// that such nodes carry no bias attribute (not a stored zero).
func (s *BuildSuite) TestImplicitEndpoints() {
	h := ising.LinearBiases{"a": 0.25}
	J := ising.QuadraticBiases{ising.NewCouple("a", "b"): 1.5}

	g, err := ising.NewGraph(h, J)
	require.NoError(s.T(), err)

	require.Equal(s.T(), []string{"a", "b"}, g.Nodes())
	_, ok := g.NodeAttr("b", ising.BiasAttr)
	require.False(s.T(), ok, "node b is not in h: no stored bias, zero is a read-time default")
}

// TestSelfLoop verifies that a loop couple becomes a loop edge carrying
// its bias as an edge attribute (folding into node color happens in viz).
func (s *BuildSuite) TestSelfLoop() {
	J := ising.QuadraticBiases{ising.NewCouple("v", "v"): 2.0}

	g, err := ising.NewGraph(nil, J)
	require.NoError(s.T(), err)

	require.Equal(s.T(), []string{"v"}, g.Nodes())
	require.Equal(s.T(), 1, g.EdgeCount())
	v, ok := g.EdgeAttr(ising.NewCouple("v", "v"), ising.BiasAttr)
	require.True(s.T(), ok)
	require.Equal(s.T(), 2.0, v)
}

// TestOrientationFolding verifies that both orientations of one pair fold
// additively into a single canonical edge.
func (s *BuildSuite) TestOrientationFolding() {
	J := ising.QuadraticBiases{
		{U: "a", V: "b"}: 1.0,
		{U: "b", V: "a"}: 0.5,
	}

	g, err := ising.NewGraph(nil, J)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, g.EdgeCount())
	v, ok := g.EdgeAttr(ising.NewCouple("a", "b"), ising.BiasAttr)
	require.True(s.T(), ok)
	require.Equal(s.T(), 1.5, v)
}

// TestIdempotence verifies that building twice from identical inputs
// yields identical node/edge sets and attribute values.
func (s *BuildSuite) TestIdempotence() {
	h, J := triangle()

	g1, err := ising.NewGraph(h, J)
	require.NoError(s.T(), err)
	g2, err := ising.NewGraph(h, J)
	require.NoError(s.T(), err)

	require.Equal(s.T(), g1.Nodes(), g2.Nodes())
	require.Equal(s.T(), g1.EdgeKeys(), g2.EdgeKeys())
	for _, id := range g1.Nodes() {
		v1, ok1 := g1.NodeAttr(id, ising.BiasAttr)
		v2, ok2 := g2.NodeAttr(id, ising.BiasAttr)
		require.Equal(s.T(), ok1, ok2)
		require.Equal(s.T(), v1, v2)
	}
	for _, c := range g1.EdgeKeys() {
		v1, _ := g1.EdgeAttr(c, ising.BiasAttr)
		v2, _ := g2.EdgeAttr(c, ising.BiasAttr)
		require.Equal(s.T(), v1, v2)
	}
}

// TestWithGraph verifies container reuse: the supplied graph is cleared,
// refilled, and the result matches a fresh build.
func (s *BuildSuite) TestWithGraph() {
	h, J := triangle()

	reused := core.NewGraph()
	_, err := reused.AddEdge("stale", "leftover")
	require.NoError(s.T(), err)

	g, err := ising.NewGraph(h, J, ising.WithGraph(reused))
	require.NoError(s.T(), err)

	require.Same(s.T(), reused, g, "WithGraph must fill the supplied container")
	require.False(s.T(), g.HasNode("stale"), "prior contents must not leak")

	fresh, err := ising.NewGraph(h, J)
	require.NoError(s.T(), err)
	require.Equal(s.T(), fresh.Nodes(), g.Nodes())
	require.Equal(s.T(), fresh.EdgeKeys(), g.EdgeKeys())
	require.Equal(s.T(), fresh.Name(), g.Name())
}

// TestTypedAttributeOptions verifies WithNodeAttributes/WithEdgeAttributes,
// including topology creation for attributed-but-unbiased elements.
func (s *BuildSuite) TestTypedAttributeOptions() {
	h, J := triangle()

	g, err := ising.NewGraph(h, J,
		ising.WithNodeAttributes("x", map[string]any{"0": 0.0, "1": 1.0, "2": 0.0, "3": 2.0}),
		ising.WithEdgeAttributes("chain", map[ising.Couple]any{
			ising.NewCouple("2", "3"): true,
		}),
	)
	require.NoError(s.T(), err)

	// node "3" and edge {2,3} exist only through attribute maps
	require.True(s.T(), g.HasNode("3"))
	require.True(s.T(), g.HasEdge("2", "3"))

	v, ok := g.NodeAttr("3", "x")
	require.True(s.T(), ok)
	require.Equal(s.T(), 2.0, v)

	ch, ok := g.EdgeAttr(ising.NewCouple("3", "2"), "chain")
	require.True(s.T(), ok)
	require.Equal(s.T(), true, ch)

	// the attribute-created edge has no bias attribute
	_, ok = g.EdgeAttr(ising.NewCouple("2", "3"), ising.BiasAttr)
	require.False(s.T(), ok)
}

// TestOptionViolations verifies option-resolution errors.
func (s *BuildSuite) TestOptionViolations() {
	_, err := ising.NewGraph(nil, nil, ising.WithGraph(nil))
	require.ErrorIs(s.T(), err, ising.ErrNilGraph)

	_, err = ising.NewGraph(nil, nil, ising.WithNodeAttributes("", nil))
	require.ErrorIs(s.T(), err, ising.ErrEmptyAttributeName)

	_, err = ising.NewGraph(nil, nil, ising.WithEdgeAttributes("", nil))
	require.ErrorIs(s.T(), err, ising.ErrEmptyAttributeName)
}

// TestEmptyModel verifies the degenerate build.
func (s *BuildSuite) TestEmptyModel() {
	g, err := ising.NewGraph(nil, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, g.NodeCount())
	require.Equal(s.T(), 0, g.EdgeCount())
	require.Equal(s.T(), ising.GraphName, g.Name())
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestLinearFromSlice verifies dense-form ingestion: indices become
// decimal IDs and explicit zeros are specified biases.
func TestLinearFromSlice(t *testing.T) {
	h := ising.LinearFromSlice([]float64{-0.5, -1, 0.0})
	require.Equal(t, ising.LinearBiases{"0": -0.5, "1": -1, "2": 0.0}, h)

	require.Empty(t, ising.LinearFromSlice(nil))
}

// TestQuadraticFromPairs verifies canonicalization and orientation folding
// at ingestion.
func TestQuadraticFromPairs(t *testing.T) {
	J := ising.QuadraticFromPairs(map[[2]string]float64{
		{"1", "0"}: -1,
		{"0", "1"}: -0.5,
		{"2", "2"}: 3,
	})
	require.Equal(t, ising.QuadraticBiases{
		ising.NewCouple("0", "1"): -1.5,
		ising.NewCouple("2", "2"): 3,
	}, J)
}
