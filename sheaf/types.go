// File: types.go
// Role: EdgeKey, Restriction, sentinel errors and Attach options.

package sheaf

import (
	"errors"

	"github.com/viterin/vek"
)

// Sentinel errors for sheaf attachment and stalk lookups.
var (
	// ErrNilComplex indicates a nil *simplex.Complex was provided.
	ErrNilComplex = errors.New("sheaf: nil *simplex.Complex provided")

	// ErrNilRestriction indicates a nil restriction function was configured.
	ErrNilRestriction = errors.New("sheaf: restriction function is nil")

	// ErrMissingVertexFeature indicates a vertex referenced by the complex
	// has no feature vector. The wrapped message names the vertex.
	ErrMissingVertexFeature = errors.New("sheaf: vertex feature missing")

	// ErrMissingEdgeFeature indicates the requested edge carries no feature.
	ErrMissingEdgeFeature = errors.New("sheaf: edge feature missing")

	// ErrBadFeature indicates a feature value is NaN or infinite.
	ErrBadFeature = errors.New("sheaf: feature must be finite")
)

// EdgeKey identifies an undirected edge by its canonically ordered
// endpoints (U ≤ V). Build keys with NewEdgeKey; Attach also accepts
// reversed literals and canonicalizes them on ingestion, so a feature
// keyed (v,u) is always found under (u,v).
type EdgeKey struct {
	// U is the lexicographically smaller endpoint ID.
	U string

	// V is the lexicographically larger endpoint ID.
	V string
}

// NewEdgeKey returns the canonical key for the unordered pair {a, b}.
func NewEdgeKey(a, b string) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// Restriction maps a vertex stalk and the scalar stalk of an incident
// edge to a non-negative discrepancy. Implementations must be pure: no
// retained references, no mutation of the input slice.
type Restriction func(v []float64, e float64) float64

// EuclideanRestriction is the default restriction map. The scalar edge
// stalk is explicitly coerced to a constant vector of the vertex stalk's
// length; the result is the Euclidean norm of the difference. Identical
// stalks therefore restrict to exactly 0.
func EuclideanRestriction(v []float64, e float64) float64 {
	if len(v) == 0 {
		return 0
	}
	c := make([]float64, len(v))
	for i := range c {
		c[i] = e
	}

	return vek.Distance(v, c)
}

// Option configures Attach.
type Option func(*config)

// config is the resolved, immutable Attach configuration.
type config struct {
	rho Restriction
}

// defaultConfig returns the Attach defaults.
func defaultConfig() config {
	return config{rho: EuclideanRestriction}
}

// WithRestriction replaces the default EuclideanRestriction.
func WithRestriction(rho Restriction) Option {
	return func(c *config) { c.rho = rho }
}
