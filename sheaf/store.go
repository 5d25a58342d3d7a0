// File: store.go
// Role: Attach validation and the immutable Store with stalk accessors.

package sheaf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sheafrisk/simplex"
)

// Store holds the attached sheaf data: vertex stalks (feature vectors),
// edge stalks (scalars) and the restriction map. It is immutable after
// Attach and safe for concurrent readers.
type Store struct {
	vfeat map[string][]float64
	efeat map[EdgeKey]float64
	rho   Restriction
}

// Attach validates the feature data against the complex and freezes it
// into a Store.
//
// Rules:
//  1. Every vertex the complex references must map to a non-empty feature
//     vector; a gap yields ErrMissingVertexFeature naming the vertex.
//  2. All provided feature values (vertex and edge, including extras the
//     complex never references) must be finite; ErrBadFeature otherwise.
//  3. Edge features may cover any subset of edges. Keys are
//     canonicalized on ingestion, so reversed pairs land on one entry.
//  4. The restriction defaults to EuclideanRestriction; WithRestriction
//     overrides it, and a nil function is rejected.
//
// All inputs are deep-copied; the caller's maps stay untouched and
// later caller-side mutation cannot reach the Store.
//
// Complexity: O(V·d + E) for V vectors of length d and E edge features.
func Attach(K *simplex.Complex, vfeat map[string][]float64, efeat map[EdgeKey]float64, opts ...Option) (*Store, error) {
	// 1. Validate the complex and resolve options.
	if K == nil {
		return nil, ErrNilComplex
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rho == nil {
		return nil, ErrNilRestriction
	}

	// 2. Strict vertex coverage: every 0-simplex needs a feature vector.
	for _, s := range K.Simplices(0) {
		id := s[0]
		if len(vfeat[id]) == 0 {
			return nil, fmt.Errorf("sheaf: vertex %q: %w", id, ErrMissingVertexFeature)
		}
	}

	// 3. Deep-copy and validate vertex stalks.
	vcopy := make(map[string][]float64, len(vfeat))
	for id, vec := range vfeat {
		cp := make([]float64, len(vec))
		for i, x := range vec {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("sheaf: vertex %q component %d: %w", id, i, ErrBadFeature)
			}
			cp[i] = x
		}
		vcopy[id] = cp
	}

	// 4. Canonicalize and validate edge stalks.
	ecopy := make(map[EdgeKey]float64, len(efeat))
	for k, x := range efeat {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("sheaf: edge (%s,%s): %w", k.U, k.V, ErrBadFeature)
		}
		ecopy[NewEdgeKey(k.U, k.V)] = x
	}

	return &Store{vfeat: vcopy, efeat: ecopy, rho: cfg.rho}, nil
}

// VertexStalk returns a copy of the feature vector attached to the
// vertex.
//
// Errors:
//   - ErrMissingVertexFeature: no feature vector for this ID.
//
// Complexity: O(d)
func (s *Store) VertexStalk(id string) ([]float64, error) {
	vec, ok := s.vfeat[id]
	if !ok {
		return nil, fmt.Errorf("sheaf: vertex %q: %w", id, ErrMissingVertexFeature)
	}
	cp := make([]float64, len(vec))
	copy(cp, vec)

	return cp, nil
}

// EdgeStalk returns the scalar feature of the undirected edge (u, v) and
// whether one is attached. Endpoint order does not matter.
// Complexity: O(1)
func (s *Store) EdgeStalk(u, v string) (float64, bool) {
	x, ok := s.efeat[NewEdgeKey(u, v)]

	return x, ok
}

// Discrepancy applies the restriction map to the vertex's stalk and the
// stalk of the edge (u, v): the local disagreement between the vertex's
// data and the transaction connecting it. The stalk is handed to the
// restriction as a copy, keeping the Store immutable even under impure
// restriction functions.
//
// Errors:
//   - ErrMissingVertexFeature: vertex has no stalk.
//   - ErrMissingEdgeFeature: edge has no stalk.
//
// Complexity: O(d) plus the restriction itself.
func (s *Store) Discrepancy(vertex, u, v string) (float64, error) {
	stalk, err := s.VertexStalk(vertex)
	if err != nil {
		return 0, err
	}
	e, ok := s.EdgeStalk(u, v)
	if !ok {
		return 0, fmt.Errorf("sheaf: edge (%s,%s): %w", u, v, ErrMissingEdgeFeature)
	}

	return s.rho(stalk, e), nil
}
