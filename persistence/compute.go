package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/simplex"
)

// cell is one simplex scheduled for the sweep.
type cell struct {
	dim   int      // 0 vertex, 1 edge, 2 triangle
	filt  float64  // filtration value
	order int      // assembly sequence number, the final tie-break
	verts []string // canonical vertex list, len == dim+1
}

// pairKey identifies an undirected edge; u < v always holds because
// every construction site below starts from canonically ordered input.
type pairKey struct{ u, v string }

// h0class tracks the age of one component class for the younger-dies rule.
type h0class struct {
	birth float64
	order int
}

// younger reports whether class a is younger than class b: born later,
// ties broken by later insertion order.
func younger(a, b h0class) bool {
	if a.birth != b.birth {
		return a.birth > b.birth
	}

	return a.order > b.order
}

// Compute sweeps the filtered complex and reports persistent H0 and H1
// intervals.
//
// Filtration values: vertices 0; edges the configured parameter
// (ParamWeight reads Edge.Weight, attribute params fall back to
// DefaultAttrFiltration on edges lacking the attribute); dimension-2
// simplices the maximum over their pairwise edges, excluded when any
// pairwise edge is missing from the graph. Simplices of dimension above
// 2 cannot change H0 or H1 and are not swept.
//
// Error conditions:
//   - ErrNilGraph    : g is nil.
//   - ErrNilComplex  : K is nil.
//   - ErrUnknownFiltrationParam : the configured parameter is neither
//     ParamWeight nor an attribute the graph declares.
//
// Steps:
//  1. Validate inputs, resolve options, check the filtration parameter.
//  2. Schedule vertices, all graph edges (self-loops excluded) and the
//     complex's triangles, each with its filtration value.
//  3. Sort the schedule by (filtration, dimension, assembly order).
//  4. Initialize the disjoint-set maps and the GF(2) row store.
//  5. Sweep: vertices open components; merging edges close the younger
//     component; non-merging edges open 1-cycles; triangles whose
//     boundary is independent of earlier ones close the oldest live
//     1-cycle.
//  6. Return intervals per dimension in birth order, survivors at +Inf.
//
// Complexity: O(N log N) scheduling over N swept simplices, near-linear
// union-find, and O(T²·E/64) worst-case bitset reduction over T
// triangles and E edges.
func Compute(g *core.Graph, K *simplex.Complex, opts ...Option) (*Diagram, error) {
	// 1. Validate inputs and resolve options.
	if g == nil {
		return nil, ErrNilGraph
	}
	if K == nil {
		return nil, ErrNilComplex
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateParam(g, cfg.param); err != nil {
		return nil, err
	}

	// 2. Assemble the sweep schedule.
	cells, edgeIdx := schedule(g, K, cfg.param)

	// 3. Order by (filtration, dimension, assembly order). Vertices carry
	//    filtration 0 and the graph admits only non-negative edge values,
	//    so every edge sees both endpoints already present.
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].filt != cells[j].filt {
			return cells[i].filt < cells[j].filt
		}
		if cells[i].dim != cells[j].dim {
			return cells[i].dim < cells[j].dim
		}

		return cells[i].order < cells[j].order
	})

	// 4. Disjoint-set structures, in the union-find manner used by the
	//    spanning-tree code: iterative find with path compression, union
	//    by rank. classOf maps a structural root to its component class.
	var (
		parent  = make(map[string]string, g.VertexCount())
		rank    = make(map[string]int, g.VertexCount())
		classOf = make(map[string]int, g.VertexCount())
	)
	find := func(u string) string {
		for parent[u] != u {
			// Path compression: point u at its grandparent while walking.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	// union merges two distinct roots and returns the surviving one.
	union := func(rootU, rootV string) string {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV

			return rootV
		}
		parent[rootV] = rootU
		if rank[rootU] == rank[rootV] {
			rank[rootU]++
		}

		return rootU
	}

	// 5. Sweep.
	var (
		h0    []Interval
		ages  []h0class
		h1    []Interval
		alive []int                           // indices into h1, oldest first
		rows  = make(map[uint]*bitset.BitSet) // reduced boundaries keyed by pivot edge
		inf   = math.Inf(1)
	)
	for _, c := range cells {
		switch c.dim {
		case 0:
			id := c.verts[0]
			parent[id] = id
			rank[id] = 0
			classOf[id] = len(h0)
			h0 = append(h0, Interval{Dim: 0, Birth: c.filt, Death: inf})
			ages = append(ages, h0class{birth: c.filt, order: c.order})

		case 1:
			rootU, rootV := find(c.verts[0]), find(c.verts[1])
			if rootU == rootV {
				// The edge closes a cycle: a 1-class is born.
				alive = append(alive, len(h1))
				h1 = append(h1, Interval{Dim: 1, Birth: c.filt, Death: inf})

				continue
			}
			// The edge merges two components: the younger class dies now,
			// the older identity survives on the merged root.
			kept, dead := classOf[rootU], classOf[rootV]
			if younger(ages[kept], ages[dead]) {
				kept, dead = dead, kept
			}
			h0[dead].Death = c.filt
			classOf[union(rootU, rootV)] = kept

		case 2:
			// Boundary of the triangle as an edge-index set over GF(2).
			b := bitset.New(uint(len(edgeIdx)))
			for i := 0; i < len(c.verts); i++ {
				for j := i + 1; j < len(c.verts); j++ {
					b.Set(edgeIdx[pairKey{u: c.verts[i], v: c.verts[j]}])
				}
			}
			// Gaussian elimination against earlier triangle boundaries:
			// XOR away rows sharing our lowest set bit until none match.
			for b.Any() {
				p, _ := b.NextSet(0)
				row, ok := rows[p]
				if !ok {
					break
				}
				b.InPlaceSymmetricDifference(row)
			}
			if b.None() {
				// Dependent boundary: the cycle it fills is already gone.
				continue
			}
			p, _ := b.NextSet(0)
			rows[p] = b
			if len(alive) == 0 {
				continue
			}
			// An independent boundary kills the oldest still-alive 1-class.
			oldest := alive[0]
			alive = alive[1:]
			h1[oldest].Death = c.filt
		}
	}

	// 6. Survivors already carry Death=+Inf; slices are in birth order.
	return &Diagram{H0: h0, H1: h1}, nil
}

// validateParam accepts ParamWeight or any attribute name the graph has
// recorded; anything else is a configuration error.
func validateParam(g *core.Graph, param string) error {
	if param == ParamWeight {
		return nil
	}
	for _, name := range g.AttrNames() {
		if name == param {
			return nil
		}
	}

	return fmt.Errorf("persistence: filtration parameter %q: %w", param, ErrUnknownFiltrationParam)
}

// schedule lists every simplex that can move H0 or H1 with its
// filtration value and assembly order, and returns the edge ordinal
// index used by the triangle boundary reduction.
func schedule(g *core.Graph, K *simplex.Complex, param string) ([]cell, map[pairKey]uint) {
	var (
		cells    []cell
		order    int
		edgeIdx  = make(map[pairKey]uint, g.EdgeCount())
		edgeFilt = make(map[pairKey]float64, g.EdgeCount())
	)

	// Vertices in sorted order, all born at filtration 0.
	for _, id := range g.VertexIDs() {
		cells = append(cells, cell{dim: 0, filt: 0, order: order, verts: []string{id}})
		order++
	}

	// Every graph edge participates, not only those that met the complex
	// threshold; self-loops bound no cycle and are skipped.
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		f := filtrationOf(e, param)
		k := pairKey{u: e.From, v: e.To}
		edgeIdx[k] = uint(len(edgeIdx))
		edgeFilt[k] = f
		cells = append(cells, cell{dim: 1, filt: f, order: order, verts: []string{e.From, e.To}})
		order++
	}

	// Triangles from the complex, at the max over their pairwise edges.
	for _, tri := range K.Simplices(2) {
		f, ok := triangleFiltration(tri, edgeFilt)
		if !ok {
			continue
		}
		cells = append(cells, cell{dim: 2, filt: f, order: order, verts: tri})
		order++
	}

	return cells, edgeIdx
}

// filtrationOf resolves one edge's filtration value under param.
func filtrationOf(e core.Edge, param string) float64 {
	if param == ParamWeight {
		return e.Weight
	}
	if v, ok := e.Attrs[param]; ok {
		return v
	}

	return DefaultAttrFiltration
}

// triangleFiltration is the maximum over the three pairwise edges; ok is
// false when any pairwise edge is absent from the graph.
func triangleFiltration(tri simplex.Simplex, edgeFilt map[pairKey]float64) (float64, bool) {
	maxF := math.Inf(-1)
	for i := 0; i < len(tri); i++ {
		for j := i + 1; j < len(tri); j++ {
			f, ok := edgeFilt[pairKey{u: tri[i], v: tri[j]}]
			if !ok {
				return 0, false
			}
			if f > maxF {
				maxF = f
			}
		}
	}

	return maxF, true
}
