// File: complex.go
// Role: the immutable Complex container, accessors and the face-closure
// validator.

package simplex

import (
	"fmt"
	"sort"
)

// Complex is an immutable simplicial complex with every dimension from 0
// to MaxDim materialized. Within a dimension, simplices are ordered
// lexicographically; Index exposes the resulting ordinals, which the
// cohomology and persistence layers use as matrix coordinates.
type Complex struct {
	maxDim    int
	simplices [][]Simplex      // per dimension, lexicographic order
	index     []map[string]int // per dimension, Simplex.Key() → ordinal
}

// New assembles a Complex from explicit per-dimension simplex lists,
// canonicalizing order and verifying face closure. Build covers the
// common case; New exists for hand-crafted complexes in analyses and
// tests.
//
// Errors:
//   - ErrBadSimplex: dimension out of [0, maxDim], vertex count not
//     matching the dimension, non-canonical vertices, or duplicates.
//   - ErrNotClosed: a face of a listed simplex is missing.
//
// Complexity: O(N·k log N) over N simplices of dimension ≤ k.
func New(maxDim int, simplices map[int][]Simplex) (*Complex, error) {
	if maxDim < 0 {
		for dim, list := range simplices {
			if len(list) > 0 {
				return nil, fmt.Errorf("simplex: dimension %d above max %d: %w", dim, maxDim, ErrBadSimplex)
			}
		}

		return &Complex{maxDim: -1}, nil
	}

	c := &Complex{
		maxDim:    maxDim,
		simplices: make([][]Simplex, maxDim+1),
		index:     make([]map[string]int, maxDim+1),
	}
	for dim, list := range simplices {
		if dim < 0 || dim > maxDim {
			return nil, fmt.Errorf("simplex: dimension %d out of range [0,%d]: %w", dim, maxDim, ErrBadSimplex)
		}
		dst := make([]Simplex, 0, len(list))
		for _, s := range list {
			if len(s) != dim+1 || !s.canonical() {
				return nil, fmt.Errorf("simplex: %v is not a canonical %d-simplex: %w", s, dim, ErrBadSimplex)
			}
			dst = append(dst, s.Clone())
		}
		sort.Slice(dst, func(i, j int) bool { return lessSimplex(dst[i], dst[j]) })
		c.simplices[dim] = dst
	}

	if err := c.finalize(); err != nil {
		return nil, err
	}

	return c, nil
}

// finalize builds the per-dimension ordinal indexes, rejecting duplicate
// simplices, then audits face closure.
func (c *Complex) finalize() error {
	for dim := 0; dim <= c.maxDim; dim++ {
		idx := make(map[string]int, len(c.simplices[dim]))
		for i, s := range c.simplices[dim] {
			key := s.Key()
			if _, dup := idx[key]; dup {
				return fmt.Errorf("simplex: duplicate %v in dimension %d: %w", s, dim, ErrBadSimplex)
			}
			idx[key] = i
		}
		c.index[dim] = idx
	}

	return c.Validate()
}

// MaxDim returns the highest materialized dimension; -1 for the empty
// complex produced by a negative MaxDim option.
func (c *Complex) MaxDim() int { return c.maxDim }

// Card returns the number of simplices of the given dimension. Unknown
// dimensions have cardinality 0.
func (c *Complex) Card(dim int) int {
	if dim < 0 || dim > c.maxDim {
		return 0
	}

	return len(c.simplices[dim])
}

// Simplices returns deep copies of the simplices of the given dimension
// in lexicographic order. Unknown dimensions yield an empty slice.
// Complexity: O(n·k)
func (c *Complex) Simplices(dim int) []Simplex {
	if dim < 0 || dim > c.maxDim {
		return nil
	}
	out := make([]Simplex, len(c.simplices[dim]))
	for i, s := range c.simplices[dim] {
		out[i] = s.Clone()
	}

	return out
}

// Index returns a copy of the key → ordinal mapping for the given
// dimension. Ordinals follow the lexicographic simplex order and are the
// row/column coordinates of the coboundary matrices.
// Complexity: O(n)
func (c *Complex) Index(dim int) map[string]int {
	if dim < 0 || dim > c.maxDim {
		return map[string]int{}
	}
	out := make(map[string]int, len(c.index[dim]))
	for k, v := range c.index[dim] {
		out[k] = v
	}

	return out
}

// TotalSimplices returns the simplex count across all dimensions.
func (c *Complex) TotalSimplices() int {
	total := 0
	for dim := 0; dim <= c.maxDim; dim++ {
		total += len(c.simplices[dim])
	}

	return total
}

// Validate audits the face-closure invariant: every (dim-1)-face of every
// stored simplex must itself be stored. Build and New outputs always
// pass; the method exists so downstream layers can assert the invariant
// they rely on.
//
// Errors:
//   - ErrBadSimplex: a stored simplex lost canonical form.
//   - ErrNotClosed: a face is missing, wrapped with simplex and face.
//
// Complexity: O(N·k²) over N simplices of dimension ≤ k.
func (c *Complex) Validate() error {
	for dim := 1; dim <= c.maxDim; dim++ {
		for _, s := range c.simplices[dim] {
			if len(s) != dim+1 || !s.canonical() {
				return fmt.Errorf("simplex: %v is not a canonical %d-simplex: %w", s, dim, ErrBadSimplex)
			}
			// Drop one vertex at a time to enumerate the faces.
			face := make(Simplex, dim)
			for drop := 0; drop <= dim; drop++ {
				copy(face, s[:drop])
				copy(face[drop:], s[drop+1:])
				if _, ok := c.index[dim-1][face.Key()]; !ok {
					return fmt.Errorf("simplex: %v misses face %v: %w", s, face, ErrNotClosed)
				}
			}
		}
	}

	return nil
}
