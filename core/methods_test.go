// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare constructs the 4-cycle A-B-C-D-A with unit weights plus a
// chord A-C of weight 2. Used across lookup and enumeration tests.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))

	return g
}

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	// Empty ID is rejected.
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	// First insert succeeds, repeat is a silent no-op.
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	// Unknown and empty IDs report absent.
	assert.False(t, g.HasVertex("Z"))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y", 0.5))

	assert.True(t, g.HasVertex("X"))
	assert.True(t, g.HasVertex("Y"))
	assert.True(t, g.HasEdge("X", "Y"))
	// Undirected: reversed endpoints address the same edge.
	assert.True(t, g.HasEdge("Y", "X"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_WeightValidation(t *testing.T) {
	g := core.NewGraph()

	for name, w := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"posInf":   math.Inf(1),
		"negInf":   math.Inf(-1),
	} {
		assert.ErrorIs(t, g.AddEdge("A", "B", w), core.ErrBadWeight, name)
	}

	// Zero is a legal weight.
	assert.NoError(t, g.AddEdge("A", "B", 0))
}

func TestAddEdge_AttrValidation(t *testing.T) {
	g := core.NewGraph()

	// A NaN attribute value is rejected and the sentinel survives wrapping.
	err := g.AddEdge("A", "B", 1, core.WithEdgeAttr("amount", math.NaN()))
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// The failed insert must not have registered anything.
	assert.False(t, g.HasEdge("A", "B"))
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	// Default graph rejects self-loops.
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	assert.False(t, g.Looped())

	// WithLoops permits them; a loop counts as a single edge with degree 2.
	gl := core.NewGraph(core.WithLoops())
	require.NoError(t, gl.AddEdge("A", "A", 1))
	assert.True(t, gl.Looped())
	assert.Equal(t, 1, gl.EdgeCount())

	deg, err := gl.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	// The loop lists the vertex among its own neighbors.
	nbs, err := gl.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbs)
}

func TestAddEdge_Upsert(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithEdgeTime(10)))

	// Re-adding overwrites the weight and replaces the attribute set.
	require.NoError(t, g.AddEdge("B", "A", 3, core.WithEdgeAmount(250)))
	assert.Equal(t, 1, g.EdgeCount())

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	amount, err := g.EdgeAttr("A", "B", core.AttrAmount)
	require.NoError(t, err)
	assert.Equal(t, 250.0, amount)

	// The old attribute is gone, but its name stays declared on the graph.
	_, err = g.EdgeAttr("A", "B", core.AttrTime)
	assert.ErrorIs(t, err, core.ErrUnknownAttr)
	assert.Equal(t, []string{"amount", "time"}, g.AttrNames())
}

func TestEdgeLookup_Errors(t *testing.T) {
	g := buildSquare(t)

	_, err := g.EdgeWeight("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.EdgeWeight("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// B and D both exist but are not adjacent.
	_, err = g.EdgeWeight("B", "D")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.EdgeAttr("A", "B", "missing")
	assert.ErrorIs(t, err, core.ErrUnknownAttr)
}

func TestNeighbors_SortedAndValidated(t *testing.T) {
	g := buildSquare(t)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, nbs)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDeterministicEnumeration(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.VertexIDs())

	edges := g.Edges()
	require.Len(t, edges, 5)
	// Sorted by (From, To) with canonical From < To.
	wantPairs := [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"C", "D"}}
	for i, e := range edges {
		assert.Equal(t, wantPairs[i][0], e.From, "edge %d From", i)
		assert.Equal(t, wantPairs[i][1], e.To, "edge %d To", i)
	}
}

func TestEdges_ReturnsDeepCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithEdgeAmount(100)))

	edges := g.Edges()
	require.Len(t, edges, 1)

	// Mutating the copy must not leak into the graph.
	edges[0].Weight = 999
	edges[0].Attrs[core.AttrAmount] = 999

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	amount, err := g.EdgeAttr("A", "B", core.AttrAmount)
	require.NoError(t, err)
	assert.Equal(t, 100.0, amount)
}

func TestDegree(t *testing.T) {
	g := buildSquare(t)

	for id, want := range map[string]int{"A": 3, "B": 2, "C": 3, "D": 2} {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, deg, "degree of %s", id)
	}

	_, err := g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independence(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithEdgeAmount(50)))

	cp := g.Clone()

	// The clone starts structurally identical.
	assert.Equal(t, g.VertexIDs(), cp.VertexIDs())
	assert.Equal(t, g.Edges(), cp.Edges())
	assert.Equal(t, g.AttrNames(), cp.AttrNames())

	// Mutating the clone leaves the original untouched.
	require.NoError(t, cp.AddEdge("B", "D", 7))
	require.NoError(t, cp.AddEdge("A", "B", 9))

	assert.False(t, g.HasEdge("B", "D"))
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

// TestConcurrentConstruction exercises parallel AddEdge/AddVertex calls;
// the race detector is the real assertion here.
func TestConcurrentConstruction(t *testing.T) {
	g := core.NewGraph()

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				u := fmt.Sprintf("V%d", w)
				v := fmt.Sprintf("V%d_%d", w, i)
				_ = g.AddEdge(u, v, float64(i), core.WithEdgeTime(float64(i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*50, g.EdgeCount())
	assert.Equal(t, workers*50+workers, g.VertexCount())
}
