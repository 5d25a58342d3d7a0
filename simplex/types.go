// File: types.go
// Role: Simplex value type, sentinel errors, functional options.

package simplex

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for complex construction and validation.
var (
	// ErrNilGraph indicates a nil *core.Graph was provided.
	ErrNilGraph = errors.New("simplex: nil *core.Graph provided")

	// ErrBadThreshold indicates a NaN threshold.
	ErrBadThreshold = errors.New("simplex: threshold must not be NaN")

	// ErrBadSimplex indicates a simplex that is not canonical: vertices
	// must be distinct, non-empty and sorted ascending, and the count
	// must match the declared dimension.
	ErrBadSimplex = errors.New("simplex: simplex is not canonical")

	// ErrNotClosed indicates a complex that is not closed under faces.
	ErrNotClosed = errors.New("simplex: complex is not closed under faces")
)

// Defaults for Build configuration.
const (
	// DefaultThreshold includes every edge in the complex.
	DefaultThreshold = 0.0

	// DefaultMaxDim stops at triangles.
	DefaultMaxDim = 2
)

// keySep separates vertex IDs inside a Simplex key. The ASCII unit
// separator keeps keys collision-free for any printable vertex ID.
const keySep = "\x1f"

// Simplex is a canonical k-simplex: k+1 distinct vertex IDs sorted
// ascending. The zero value is not valid; obtain simplices from New,
// NewSimplex or a built Complex.
type Simplex []string

// NewSimplex canonicalizes the given vertex IDs into a Simplex: IDs are
// sorted ascending and must be non-empty and pairwise distinct.
//
// Errors:
//   - ErrBadSimplex: no IDs, an empty ID, or a duplicate ID.
//
// Complexity: O(k log k)
func NewSimplex(ids ...string) (Simplex, error) {
	if len(ids) == 0 {
		return nil, ErrBadSimplex
	}
	s := make(Simplex, len(ids))
	copy(s, ids)
	sort.Strings(s)
	for i, id := range s {
		if id == "" {
			return nil, ErrBadSimplex
		}
		if i > 0 && s[i-1] == id {
			return nil, ErrBadSimplex
		}
	}

	return s, nil
}

// Dim returns the dimension of the simplex (vertex count minus one).
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns the canonical map key of the simplex.
func (s Simplex) Key() string { return strings.Join(s, keySep) }

// Clone returns an independent copy of the simplex.
func (s Simplex) Clone() Simplex {
	cp := make(Simplex, len(s))
	copy(cp, s)

	return cp
}

// String renders the simplex as {v0,v1,...} for logs and test failures.
func (s Simplex) String() string { return "{" + strings.Join(s, ",") + "}" }

// canonical reports whether the simplex is sorted ascending with distinct
// non-empty IDs.
func (s Simplex) canonical() bool {
	if len(s) == 0 {
		return false
	}
	for i, id := range s {
		if id == "" {
			return false
		}
		if i > 0 && s[i-1] >= id {
			return false
		}
	}

	return true
}

// lessSimplex orders simplices lexicographically by vertex IDs.
func lessSimplex(a, b Simplex) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Option configures Build.
type Option func(*config)

// config is the resolved, immutable Build configuration.
type config struct {
	threshold float64
	maxDim    int
}

// defaultConfig returns the Build defaults.
func defaultConfig() config {
	return config{threshold: DefaultThreshold, maxDim: DefaultMaxDim}
}

// WithThreshold sets the minimum edge weight for an edge to enter the
// complex. Edges below it are excluded entirely, including from clique
// enumeration.
func WithThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// WithMaxDim sets the maximum simplex dimension to materialize.
// Negative values yield an empty complex.
func WithMaxDim(d int) Option {
	return func(c *config) { c.maxDim = d }
}
