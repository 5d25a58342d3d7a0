// SPDX-License-Identifier: MIT
// File: types.go
// Role: sentinel errors, defaults, risk-class record and Fit options.

package pcr

import (
	"errors"

	"github.com/katalvlaran/sheafrisk/persistence"
	"github.com/katalvlaran/sheafrisk/sheaf"
)

// Sentinel errors of the scoring pipeline. Errors raised by the
// underlying stages (simplex, sheaf, persistence) pass through Fit
// unchanged and keep their own sentinels.
var (
	// ErrNilGraph is returned by Fit for a nil *core.Graph.
	ErrNilGraph = errors.New("pcr: nil *core.Graph provided")

	// ErrInvalidMaxDim rejects negative clique-expansion caps.
	ErrInvalidMaxDim = errors.New("pcr: max dimension must be non-negative")

	// ErrNotFitted is returned when querying a zero Model; a usable
	// Model only ever comes out of Fit.
	ErrNotFitted = errors.New("pcr: model not fitted")
)

// Scoring defaults.
const (
	// DefaultPersistenceWeight scales interval lifetimes in PCR scores.
	DefaultPersistenceWeight = 1.0

	// DefaultNormWeight scales cocycle-norm estimates in PCR scores.
	DefaultNormWeight = 0.5

	// DefaultMaxDim caps the clique expansion at triangles.
	DefaultMaxDim = 2

	// DefaultEdgeThreshold admits every non-negative edge weight into
	// the complex.
	DefaultEdgeThreshold = 0.0

	// DefaultRiskThreshold is the minimum lifetime an interval needs to
	// register as a risk class.
	DefaultRiskThreshold = 0.1
)

// Risk-class extraction constants: a vertex joins the shortlist only if
// its raw default-weight score clears crcScoreFloor; at most
// crcVertexLimit vertices are listed, best first; lifetimes map onto
// [0,1] risk levels through riskLevelScale.
const (
	crcScoreFloor  = 0.5
	crcVertexLimit = 10
	riskLevelScale = 10.0
)

// RiskClass is one Cohomological Risk Class: a persistent 1-dimensional
// interval whose lifetime cleared the caller's threshold.
type RiskClass struct {
	ID          int      // interval index in birth order
	Birth       float64  // filtration value the cycle appeared at
	Death       float64  // filtration value it was filled at, or +Inf
	Persistence float64  // Interval.Lifetime of the underlying interval
	RiskLevel   float64  // min(riskLevelScale·Persistence, 1)
	Vertices    []string // global high-scorer shortlist, not a cycle trace
}

// Option adjusts the Fit pipeline.
type Option func(*config)

// config carries the resolved Fit settings.
type config struct {
	maxDim    int
	threshold float64
	param     string
	rho       sheaf.Restriction
}

// defaultConfig returns the baseline pipeline settings.
func defaultConfig() config {
	return config{
		maxDim:    DefaultMaxDim,
		threshold: DefaultEdgeThreshold,
		param:     persistence.ParamWeight,
	}
}

// WithMaxDim caps the clique-expansion dimension. Fit rejects negative
// values with ErrInvalidMaxDim.
func WithMaxDim(d int) Option {
	return func(c *config) { c.maxDim = d }
}

// WithEdgeThreshold sets the minimum edge weight admitted into the
// complex. The persistence sweep still visits every graph edge.
func WithEdgeThreshold(w float64) Option {
	return func(c *config) { c.threshold = w }
}

// WithFiltrationParam selects the edge attribute driving the
// persistence filtration, persistence.ParamWeight by default.
func WithFiltrationParam(name string) Option {
	return func(c *config) { c.param = name }
}

// WithRestriction substitutes the sheaf restriction map used by both
// the discrepancy machinery and the cocycle-norm estimate.
func WithRestriction(rho sheaf.Restriction) Option {
	return func(c *config) { c.rho = rho }
}
