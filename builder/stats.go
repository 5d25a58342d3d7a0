// SPDX-License-Identifier: MIT
// File: stats.go
// Role: descriptive statistics of a transaction graph.

package builder

import (
	"github.com/katalvlaran/sheafrisk/core"
)

// Stats summarizes a transaction graph for reporting.
type Stats struct {
	Nodes         int     // vertex count
	Edges         int     // edge count, self-loops included
	Density       float64 // 2E / V(V-1), 0 below two vertices
	AvgDegree     float64 // mean vertex degree, loops counting twice
	Components    int     // connected components
	AvgClustering float64 // mean local clustering coefficient, loops ignored
}

// NetworkStats computes the summary in one pass over the graph. An empty
// graph yields the zero Stats, not an error.
//
// Error conditions:
//   - ErrNilGraph : g is nil.
//
// Complexity: O(V + E) for density, degree and components, plus
// O(Σ deg²) for the clustering pass.
func NetworkStats(g *core.Graph) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}

	s := Stats{Nodes: g.VertexCount(), Edges: g.EdgeCount()}
	if s.Nodes == 0 {
		return s, nil
	}
	ids := g.VertexIDs()

	// Density and average degree.
	if s.Nodes > 1 {
		s.Density = float64(2*s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}
	var degSum int
	for _, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			return Stats{}, err
		}
		degSum += deg
	}
	s.AvgDegree = float64(degSum) / float64(s.Nodes)

	// Components via path-compressed union-find over the edge list.
	parent := make(map[string]string, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	for _, e := range g.Edges() {
		if ru, rv := find(e.From), find(e.To); ru != rv {
			parent[ru] = rv
		}
	}
	roots := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		roots[find(id)] = struct{}{}
	}
	s.Components = len(roots)

	// Average clustering coefficient over all vertices.
	var coeffSum float64
	for _, id := range ids {
		coeffSum += clusteringOf(g, id)
	}
	s.AvgClustering = coeffSum / float64(s.Nodes)

	return s, nil
}

// clusteringOf is the local clustering coefficient: the realized share
// of links among a vertex's neighbor pairs. Vertices with fewer than two
// neighbors score 0; self-loops never count as neighbors.
func clusteringOf(g *core.Graph, id string) float64 {
	all, err := g.Neighbors(id)
	if err != nil {
		return 0
	}
	nbrs := all[:0]
	for _, nb := range all {
		if nb != id {
			nbrs = append(nbrs, nb)
		}
	}
	k := len(nbrs)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}

	return float64(2*links) / float64(k*(k-1))
}
