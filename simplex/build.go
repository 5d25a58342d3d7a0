// File: build.go
// Role: clique-expansion construction of a Complex from a core.Graph.

package simplex

import (
	"math"
	"sort"

	"github.com/katalvlaran/sheafrisk/core"
)

// Build constructs the clique complex of the graph.
//
// Steps:
//  1. Validate: non-nil graph, non-NaN threshold.
//  2. MaxDim < 0 ⇒ empty complex (no dimensions at all); likewise an
//     empty graph yields empty dimension lists. Neither is an error.
//  3. Dimension 0: every vertex, sorted ascending; the threshold never
//     filters vertices.
//  4. Dimension 1: every edge with weight ≥ threshold; self-loops are
//     skipped (a simplex has distinct vertices).
//  5. Dimension k ≥ 2: extend each (k-1)-simplex by every vertex beyond
//     its last that is threshold-adjacent to all its members. Growth
//     happens only through edges meeting the threshold in the underlying
//     graph, so a clique reachable via sub-threshold adjacency can never
//     enter. Lexicographic emission order falls out of the construction.
//
// Complexity: O(V log V + E log E + Σ_k C_k·deg) with C_k cliques per
// dimension; WithMaxDim caps the expansion.
func Build(g *core.Graph, opts ...Option) (*Complex, error) {
	// 1. Validate input and configuration.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.threshold) {
		return nil, ErrBadThreshold
	}

	// 2. Negative MaxDim: nothing is materialized.
	if cfg.maxDim < 0 {
		return &Complex{maxDim: -1}, nil
	}

	c := &Complex{
		maxDim:    cfg.maxDim,
		simplices: make([][]Simplex, cfg.maxDim+1),
		index:     make([]map[string]int, cfg.maxDim+1),
	}

	// 3. Dimension 0: all vertices in sorted order.
	verts := g.VertexIDs()
	zeros := make([]Simplex, len(verts))
	for i, v := range verts {
		zeros[i] = Simplex{v}
	}
	c.simplices[0] = zeros

	// 4. Dimension 1: threshold-passing edges, already sorted by (From,To).
	//    adj records threshold-adjacency for the clique expansion below.
	adj := make(map[string]map[string]struct{})
	if cfg.maxDim >= 1 {
		var ones []Simplex
		for _, e := range g.Edges() {
			if e.From == e.To || e.Weight < cfg.threshold {
				continue
			}
			ones = append(ones, Simplex{e.From, e.To})
			link(adj, e.From, e.To)
			link(adj, e.To, e.From)
		}
		c.simplices[1] = ones
	}

	// 5. Dimensions ≥ 2: grow cliques through threshold-adjacency.
	if cfg.maxDim >= 2 {
		// Sorted neighbor lists keep the extension order deterministic.
		nbrs := make(map[string][]string, len(adj))
		for v, set := range adj {
			list := make([]string, 0, len(set))
			for nb := range set {
				list = append(list, nb)
			}
			sort.Strings(list)
			nbrs[v] = list
		}

		prev := c.simplices[1]
		for dim := 2; dim <= cfg.maxDim; dim++ {
			var next []Simplex
			for _, s := range prev {
				last := s[len(s)-1]
				for _, cand := range nbrs[last] {
					if cand <= last {
						continue // extend upward only: each clique is built once
					}
					if !adjacentToAll(adj, s[:len(s)-1], cand) {
						continue
					}
					ext := make(Simplex, len(s)+1)
					copy(ext, s)
					ext[len(s)] = cand
					next = append(next, ext)
				}
			}
			c.simplices[dim] = next
			prev = next
		}
	}

	if err := c.finalize(); err != nil {
		return nil, err
	}

	return c, nil
}

// link records b as a threshold-neighbor of a.
func link(adj map[string]map[string]struct{}, a, b string) {
	if adj[a] == nil {
		adj[a] = make(map[string]struct{})
	}
	adj[a][b] = struct{}{}
}

// adjacentToAll reports whether cand is threshold-adjacent to every
// vertex in members.
func adjacentToAll(adj map[string]map[string]struct{}, members Simplex, cand string) bool {
	for _, v := range members {
		if _, ok := adj[v][cand]; !ok {
			return false
		}
	}

	return true
}
