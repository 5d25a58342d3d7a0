// SPDX-License-Identifier: MIT
// File: fit.go
// Role: the one-shot Fit pipeline producing an immutable Model.

package pcr

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/persistence"
	"github.com/katalvlaran/sheafrisk/sheaf"
	"github.com/katalvlaran/sheafrisk/simplex"
)

// Model is the frozen result of one Fit run. Every query method is a
// pure function of this state; the zero Model answers ErrNotFitted.
type Model struct {
	fitID   string               // unique identity of this fit
	param   string               // filtration parameter the sweep used
	graph   *core.Graph          // private snapshot of the input graph
	complex *simplex.Complex     // thresholded clique expansion
	store   *sheaf.Store         // attached vertex/edge stalks
	diagram *persistence.Diagram // persistent H0/H1 intervals
	top     []string             // risk-class vertex shortlist, fixed at fit
}

// Fit runs the full pipeline: snapshot the graph, clique-expand it,
// attach sheaf data, sweep the filtration, and precompute the
// risk-class vertex shortlist.
//
// Error conditions:
//   - ErrNilGraph       : g is nil.
//   - ErrInvalidMaxDim  : a negative WithMaxDim value.
//   - simplex / sheaf / persistence sentinels pass through unchanged
//     (bad threshold, missing features, unknown filtration parameter).
//
// Complexity: clique expansion dominates construction; scoring the
// shortlist adds O(V·|H1|·deg).
func Fit(g *core.Graph, vfeat map[string][]float64, efeat map[sheaf.EdgeKey]float64, opts ...Option) (*Model, error) {
	// 1. Validate the graph and resolve configuration.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDim < 0 {
		return nil, fmt.Errorf("pcr: max dimension %d: %w", cfg.maxDim, ErrInvalidMaxDim)
	}

	// 2. Snapshot the graph so later caller mutations cannot leak in.
	snap := g.Clone()

	// 3. Clique-expand the thresholded complex.
	K, err := simplex.Build(snap,
		simplex.WithThreshold(cfg.threshold),
		simplex.WithMaxDim(cfg.maxDim),
	)
	if err != nil {
		return nil, err
	}

	// 4. Attach sheaf data; missing or non-finite features surface here.
	var sheafOpts []sheaf.Option
	if cfg.rho != nil {
		sheafOpts = append(sheafOpts, sheaf.WithRestriction(cfg.rho))
	}
	store, err := sheaf.Attach(K, vfeat, efeat, sheafOpts...)
	if err != nil {
		return nil, err
	}

	// 5. Sweep the filtration into a persistence diagram.
	diagram, err := persistence.Compute(snap, K,
		persistence.WithFiltrationParam(cfg.param),
	)
	if err != nil {
		return nil, err
	}

	// 6. Assemble the model and fix the risk-class vertex shortlist.
	m := &Model{
		fitID:   uuid.NewString(),
		param:   cfg.param,
		graph:   snap,
		complex: K,
		store:   store,
		diagram: diagram,
	}
	m.top = m.rankVertices()

	return m, nil
}

// ready guards every query against the zero Model.
func (m *Model) ready() error {
	if m == nil || m.graph == nil {
		return ErrNotFitted
	}

	return nil
}

// rankVertices fixes the risk-class vertex shortlist: vertices whose raw
// default-weight score clears the floor, best first, ties by ID.
func (m *Model) rankVertices() []string {
	type ranked struct {
		id    string
		score float64
	}

	var hot []ranked
	for _, id := range m.graph.VertexIDs() {
		if s := m.rawScore(id, DefaultPersistenceWeight, DefaultNormWeight); s > crcScoreFloor {
			hot = append(hot, ranked{id: id, score: s})
		}
	}
	sort.Slice(hot, func(i, j int) bool {
		if hot[i].score != hot[j].score {
			return hot[i].score > hot[j].score
		}

		return hot[i].id < hot[j].id
	})
	if len(hot) > crcVertexLimit {
		hot = hot[:crcVertexLimit]
	}

	out := make([]string, len(hot))
	for i, r := range hot {
		out[i] = r.id
	}

	return out
}
