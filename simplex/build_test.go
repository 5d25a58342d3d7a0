package simplex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleGraph builds the complete graph on A,B,C with the given uniform
// edge weight.
func triangleGraph(t *testing.T, w float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", w))
	require.NoError(t, g.AddEdge("B", "C", w))
	require.NoError(t, g.AddEdge("A", "C", w))

	return g
}

func TestBuild_Validation(t *testing.T) {
	_, err := simplex.Build(nil)
	assert.ErrorIs(t, err, simplex.ErrNilGraph)

	_, err = simplex.Build(core.NewGraph(), simplex.WithThreshold(math.NaN()))
	assert.ErrorIs(t, err, simplex.ErrBadThreshold)
}

func TestBuild_NegativeMaxDim(t *testing.T) {
	K, err := simplex.Build(triangleGraph(t, 1), simplex.WithMaxDim(-1))
	require.NoError(t, err)

	assert.Equal(t, -1, K.MaxDim())
	assert.Zero(t, K.TotalSimplices())
	assert.Zero(t, K.Card(0))
	assert.Empty(t, K.Simplices(0))
	assert.NoError(t, K.Validate())
}

func TestBuild_EmptyGraph(t *testing.T) {
	K, err := simplex.Build(core.NewGraph())
	require.NoError(t, err)

	assert.Equal(t, 2, K.MaxDim())
	assert.Zero(t, K.TotalSimplices())
	for dim := 0; dim <= 2; dim++ {
		assert.Zero(t, K.Card(dim), "dim %d", dim)
	}
}

func TestBuild_FilledTriangle(t *testing.T) {
	K, err := simplex.Build(triangleGraph(t, 1))
	require.NoError(t, err)

	assert.Equal(t, 3, K.Card(0))
	assert.Equal(t, 3, K.Card(1))
	assert.Equal(t, 1, K.Card(2))
	assert.Equal(t, 7, K.TotalSimplices())

	assert.Equal(t, []simplex.Simplex{{"A", "B", "C"}}, K.Simplices(2))
	assert.Equal(t,
		[]simplex.Simplex{{"A", "B"}, {"A", "C"}, {"B", "C"}},
		K.Simplices(1))
	assert.NoError(t, K.Validate())
}

// TestBuild_ThresholdGuard verifies that an edge below the threshold is
// excluded from the complex entirely: it neither appears as a 1-simplex
// nor supports any triangle through the still-adjacent endpoints.
func TestBuild_ThresholdGuard(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1.0))
	require.NoError(t, g.AddEdge("B", "C", 1.0))
	require.NoError(t, g.AddEdge("A", "C", 0.05)) // weak edge

	K, err := simplex.Build(g, simplex.WithThreshold(0.5))
	require.NoError(t, err)

	assert.Equal(t, 3, K.Card(0), "vertices are never filtered")
	assert.Equal(t,
		[]simplex.Simplex{{"A", "B"}, {"B", "C"}},
		K.Simplices(1))
	assert.Zero(t, K.Card(2), "triangle must not form through the weak edge")
}

// TestBuild_ThresholdInclusive: weight == threshold passes (≥, not >).
func TestBuild_ThresholdInclusive(t *testing.T) {
	K, err := simplex.Build(triangleGraph(t, 0.5), simplex.WithThreshold(0.5))
	require.NoError(t, err)

	assert.Equal(t, 3, K.Card(1))
	assert.Equal(t, 1, K.Card(2))
}

func TestBuild_MaxDimZero(t *testing.T) {
	K, err := simplex.Build(triangleGraph(t, 1), simplex.WithMaxDim(0))
	require.NoError(t, err)

	assert.Equal(t, 0, K.MaxDim())
	assert.Equal(t, 3, K.Card(0))
	assert.Zero(t, K.Card(1))
	assert.Empty(t, K.Simplices(1))
}

// TestBuild_TetrahedronK4 climbs to dimension 3 on the complete graph K4.
func TestBuild_TetrahedronK4(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D"}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j], 1))
		}
	}

	K, err := simplex.Build(g, simplex.WithMaxDim(3))
	require.NoError(t, err)

	assert.Equal(t, 4, K.Card(0))
	assert.Equal(t, 6, K.Card(1))
	assert.Equal(t, 4, K.Card(2))
	assert.Equal(t, 1, K.Card(3))
	assert.Equal(t, []simplex.Simplex{{"A", "B", "C", "D"}}, K.Simplices(3))
	assert.NoError(t, K.Validate())
}

func TestBuild_SkipsSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 1))

	K, err := simplex.Build(g)
	require.NoError(t, err)

	assert.Equal(t, []simplex.Simplex{{"A", "B"}}, K.Simplices(1))
}

// TestBuild_LexicographicTriangles checks emission order on two triangles
// sharing the edge B-C.
func TestBuild_LexicographicTriangles(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	K, err := simplex.Build(g)
	require.NoError(t, err)

	assert.Equal(t,
		[]simplex.Simplex{{"A", "B", "C"}, {"B", "C", "D"}},
		K.Simplices(2))
}

func TestBuild_Deterministic(t *testing.T) {
	g := triangleGraph(t, 1)
	require.NoError(t, g.AddEdge("C", "D", 0.3))

	K1, err := simplex.Build(g, simplex.WithThreshold(0.2))
	require.NoError(t, err)
	K2, err := simplex.Build(g, simplex.WithThreshold(0.2))
	require.NoError(t, err)

	for dim := 0; dim <= 2; dim++ {
		assert.Equal(t, K1.Simplices(dim), K2.Simplices(dim), "dim %d", dim)
		assert.Equal(t, K1.Index(dim), K2.Index(dim), "index %d", dim)
	}
}

// TestComplex_IndexMatchesOrder ties Index ordinals to Simplices order,
// the contract the coboundary builder depends on.
func TestComplex_IndexMatchesOrder(t *testing.T) {
	K, err := simplex.Build(triangleGraph(t, 1))
	require.NoError(t, err)

	for dim := 0; dim <= 2; dim++ {
		idx := K.Index(dim)
		list := K.Simplices(dim)
		require.Len(t, idx, len(list), "dim %d", dim)
		for i, s := range list {
			assert.Equal(t, i, idx[s.Key()], "dim %d simplex %v", dim, s)
		}
	}
}
