package persistence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/persistence"
	"github.com/katalvlaran/sheafrisk/simplex"
)

// mustComplex builds a complex over g or fails the test.
func mustComplex(t *testing.T, g *core.Graph, opts ...simplex.Option) *simplex.Complex {
	t.Helper()
	K, err := simplex.Build(g, opts...)
	require.NoError(t, err)

	return K
}

// addWeighted inserts a batch of (u, v, weight) edges or fails the test.
func addWeighted(t *testing.T, g *core.Graph, edges [][2]string, w float64) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], w))
	}
}

// inf is the infinite-death sentinel used throughout the expectations.
var inf = math.Inf(1)

// TestComputeValidation covers nil inputs and unknown filtration parameters.
func TestComputeValidation(t *testing.T) {
	g := core.NewGraph()
	K := mustComplex(t, g)

	_, err := persistence.Compute(nil, K)
	assert.ErrorIs(t, err, persistence.ErrNilGraph)

	_, err = persistence.Compute(g, nil)
	assert.ErrorIs(t, err, persistence.ErrNilComplex)

	// No edge ever declared "amount", so the parameter is unknown.
	require.NoError(t, g.AddEdge("A", "B", 1))
	K = mustComplex(t, g)
	_, err = persistence.Compute(g, K, persistence.WithFiltrationParam(persistence.ParamAmount))
	assert.ErrorIs(t, err, persistence.ErrUnknownFiltrationParam)
	assert.ErrorContains(t, err, "amount")
}

// TestComputeEmptyGraph verifies the degenerate case is a valid empty diagram.
func TestComputeEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	d, err := persistence.Compute(g, mustComplex(t, g))
	require.NoError(t, err)
	assert.Empty(t, d.H0)
	assert.Empty(t, d.H1)
}

// TestComputeSingleEdge checks the two-components-collapse-to-one scenario:
// exactly one surviving H0 interval, no H1 intervals.
func TestComputeSingleEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	d, err := persistence.Compute(g, mustComplex(t, g))
	require.NoError(t, err)

	// A is the older class ("A" sorts first), so B's component dies.
	want := []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 1},
	}
	assert.Equal(t, want, d.H0)
	assert.Empty(t, d.H1)
}

// TestComputeTriangle contrasts the hollow and filled 3-cycle: the cycle is
// born at the closing edge and survives only until a triangle fills it.
func TestComputeTriangle(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}, 1)

	// Hollow: the complex stops at dimension 1, so the cycle never dies.
	hollow, err := persistence.Compute(g, mustComplex(t, g, simplex.WithMaxDim(1)))
	require.NoError(t, err)
	require.Len(t, hollow.H1, 1)
	assert.Equal(t, persistence.Interval{Dim: 1, Birth: 1, Death: inf}, hollow.H1[0])

	// Filled: the triangle enters right after its last edge and kills it.
	filled, err := persistence.Compute(g, mustComplex(t, g, simplex.WithMaxDim(2)))
	require.NoError(t, err)
	require.Len(t, filled.H1, 1)
	assert.Equal(t, persistence.Interval{Dim: 1, Birth: 1, Death: 1}, filled.H1[0])
	assert.Zero(t, filled.H1[0].Lifetime())

	// Either way two of the three components die at weight 1.
	assert.Equal(t, []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 1},
	}, filled.H0)
}

// TestComputeBridgedTriangles walks two filled triangles joined later by a
// heavier bridge: both cycles die immediately, the bridge merge kills the
// younger component, and exactly one component survives.
func TestComputeBridgedTriangles(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}, 1)
	addWeighted(t, g, [][2]string{{"D", "E"}, {"E", "F"}, {"D", "F"}}, 1)
	require.NoError(t, g.AddEdge("C", "D", 2))

	d, err := persistence.Compute(g, mustComplex(t, g, simplex.WithMaxDim(2)))
	require.NoError(t, err)

	// Vertex order A..F fixes class order; D's component is younger than
	// A's when the bridge merges them at 2.
	assert.Equal(t, []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 2},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 1},
	}, d.H0)
	assert.Equal(t, []persistence.Interval{
		{Dim: 1, Birth: 1, Death: 1},
		{Dim: 1, Birth: 1, Death: 1},
	}, d.H1)
}

// TestComputeSquareWithChord pins the oldest-first death rule: the chord
// splits the square into two triangles that enter together and retire the
// two live cycles in birth order.
func TestComputeSquareWithChord(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}}, 1)
	require.NoError(t, g.AddEdge("A", "C", 2))

	d, err := persistence.Compute(g, mustComplex(t, g, simplex.WithMaxDim(2)))
	require.NoError(t, err)

	// The square closes a cycle at 1; the chord opens a second at 2. Both
	// triangles carry filtration 2 (each contains the chord): the first
	// kills the older cycle, the second the chord's own.
	assert.Equal(t, []persistence.Interval{
		{Dim: 1, Birth: 1, Death: 2},
		{Dim: 1, Birth: 2, Death: 2},
	}, d.H1)
	assert.InDelta(t, 1.0, d.H1[0].Lifetime(), 0)

	assert.Equal(t, []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 1},
	}, d.H0)
}

// TestComputeFiltrationParam drives the sweep by the "time" attribute,
// including the 1.0 fallback for an edge that never declared it.
func TestComputeFiltrationParam(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithEdgeTime(3)))
	require.NoError(t, g.AddEdge("B", "C", 1, core.WithEdgeTime(5)))
	require.NoError(t, g.AddEdge("A", "C", 1)) // no time attribute, falls back to 1.0

	d, err := persistence.Compute(g, mustComplex(t, g, simplex.WithMaxDim(2)),
		persistence.WithFiltrationParam(persistence.ParamTime))
	require.NoError(t, err)

	// A-C enters at the 1.0 fallback, A-B at 3, B-C at 5; the triangle
	// follows at max(1,3,5)=5 and kills the cycle on the spot.
	require.Len(t, d.H1, 1)
	assert.Equal(t, persistence.Interval{Dim: 1, Birth: 5, Death: 5}, d.H1[0])

	assert.Equal(t, []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 3},
		{Dim: 0, Birth: 0, Death: 1},
	}, d.H0)
}

// TestComputeSubThresholdEdgesStillSweep confirms the sweep runs over the
// full graph even when the complex was built with a stricter threshold.
func TestComputeSubThresholdEdgesStillSweep(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 0.2))

	K := mustComplex(t, g, simplex.WithThreshold(0.5), simplex.WithMaxDim(2))
	require.Zero(t, K.Card(2)) // the weak edge keeps the triangle out

	d, err := persistence.Compute(g, K)
	require.NoError(t, err)

	// The weak edge still sweeps first and merges A with C.
	assert.Equal(t, []persistence.Interval{
		{Dim: 0, Birth: 0, Death: inf},
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 0, Birth: 0, Death: 0.2},
	}, d.H0)
	// The cycle closes at 1 and never dies: no triangle made the complex.
	assert.Equal(t, []persistence.Interval{{Dim: 1, Birth: 1, Death: inf}}, d.H1)
}

// TestComputeSelfLoopIgnored verifies loops neither merge nor birth anything.
func TestComputeSelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 1))

	d, err := persistence.Compute(g, mustComplex(t, g))
	require.NoError(t, err)
	assert.Len(t, d.H0, 2)
	assert.Empty(t, d.H1)
}

// TestComputeDeterministic runs the same input twice and demands identical
// diagrams.
func TestComputeDeterministic(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}}, 1)
	require.NoError(t, g.AddEdge("A", "C", 2))
	K := mustComplex(t, g, simplex.WithMaxDim(2))

	first, err := persistence.Compute(g, K)
	require.NoError(t, err)
	second, err := persistence.Compute(g, K)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestIntervalLifetime exercises the finite and infinite sentinel rules.
func TestIntervalLifetime(t *testing.T) {
	finite := persistence.Interval{Dim: 1, Birth: 0.5, Death: 2.0}
	assert.False(t, finite.Infinite())
	assert.InDelta(t, 1.5, finite.Lifetime(), 1e-15)

	open := persistence.Interval{Dim: 1, Birth: 0.7, Death: inf}
	assert.True(t, open.Infinite())
	assert.InDelta(t, 0.7, open.Lifetime(), 1e-15)
}
