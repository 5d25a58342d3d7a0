// SPDX-License-Identifier: MIT
// File: score.go
// Role: per-vertex PCR scores and the cocycle-norm estimate behind them.

package pcr

import (
	"fmt"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/persistence"
)

// Score returns the raw PCR score of one vertex: the sum over every H1
// interval of pw·lifetime + nw·cocycle-norm estimate. Lifetimes follow
// the sentinel rule (birth stands in for an infinite death), so the
// result is always finite.
//
// Error conditions:
//   - ErrNotFitted            : called on the zero Model.
//   - core.ErrVertexNotFound  : the vertex is not in the fitted graph.
func (m *Model) Score(vertex string, pw, nw float64) (float64, error) {
	if err := m.ready(); err != nil {
		return 0, err
	}
	if !m.graph.HasVertex(vertex) {
		return 0, fmt.Errorf("pcr: vertex %q: %w", vertex, core.ErrVertexNotFound)
	}

	return m.rawScore(vertex, pw, nw), nil
}

// AllScores computes the raw score of every vertex and normalizes by the
// maximum, yielding values in [0,1] with the top scorer at exactly 1.
// When the maximum is 0 the scores are left at 0.
func (m *Model) AllScores(pw, nw float64) (map[string]float64, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	ids := m.graph.VertexIDs()
	scores := make(map[string]float64, len(ids))
	var maxScore float64
	for _, id := range ids {
		s := m.rawScore(id, pw, nw)
		scores[id] = s
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore > 0 {
		for id := range scores {
			scores[id] /= maxScore
		}
	}

	return scores, nil
}

// rawScore accumulates the weighted interval contributions for a vertex
// known to exist in the fitted graph.
func (m *Model) rawScore(vertex string, pw, nw float64) float64 {
	// Neighbors cannot fail here: every scored vertex came from the
	// fitted snapshot.
	neighbors, _ := m.graph.Neighbors(vertex)

	var total float64
	for _, iv := range m.diagram.H1 {
		total += pw*iv.Lifetime() + nw*m.cocycleNorm(vertex, neighbors, iv)
	}

	return total
}

// cocycleNorm estimates how strongly a vertex participates in one
// persistent cycle: the mean restriction discrepancy over its incident
// edges, doubled for edges whose filtration value falls inside
// [birth, death], or [birth, 2·birth] when the death is infinite.
// Edges without attached features are skipped; no usable edge means 0.
func (m *Model) cocycleNorm(vertex string, neighbors []string, iv persistence.Interval) float64 {
	lo, hi := iv.Birth, iv.Death
	if iv.Infinite() {
		hi = 2 * iv.Birth
	}

	var (
		sum float64
		n   int
	)
	for _, nb := range neighbors {
		d, err := m.store.Discrepancy(vertex, vertex, nb)
		if err != nil {
			// The edge carries no stalk; it contributes nothing.
			continue
		}
		if f := m.edgeFiltration(vertex, nb); f >= lo && f <= hi {
			d *= 2
		}
		sum += d
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// edgeFiltration mirrors the sweep's assignment for one incident edge of
// a known vertex pair.
func (m *Model) edgeFiltration(u, v string) float64 {
	if m.param == persistence.ParamWeight {
		w, _ := m.graph.EdgeWeight(u, v)

		return w
	}
	if a, err := m.graph.EdgeAttr(u, v, m.param); err == nil {
		return a
	}

	return persistence.DefaultAttrFiltration
}
