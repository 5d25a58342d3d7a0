// SPDX-License-Identifier: MIT
// File: coboundary.go
// Role: sparse COO coboundary operator construction.

package cohomology

import (
	"math"

	"github.com/katalvlaran/sheafrisk/simplex"
	"gonum.org/v1/gonum/mat"
)

// Coboundary is the sparse matrix of δ^P in coordinate (COO) form: one
// row per (P+1)-simplex, one column per P-simplex, entries ±1. The
// triplet slices share one index k: entry (Row[k], Col[k]) = Data[k].
type Coboundary struct {
	// P is the cochain dimension the operator maps from.
	P int

	// NRows is the number of (P+1)-simplices.
	NRows int

	// NCols is the number of P-simplices.
	NCols int

	// Row holds the row index of each stored entry.
	Row []int

	// Col holds the column index of each stored entry.
	Col []int

	// Data holds the orientation signs (+1 or -1).
	Data []float64
}

// Matrix builds the coboundary operator δ^p of the complex.
//
// Entry (j,i) is the orientation sign when p-simplex i is a face of
// (p+1)-simplex j: (−1) raised to the sum of the zero-based positions of
// the face's vertices within the coface's canonical ordering. Dropping
// position d from a (p+1)-simplex leaves position sum T−d with
// T = (p+1)(p+2)/2, so the sign falls out of the drop position directly.
//
// Shapes follow the cochain spaces: NRows = Card(p+1), NCols = Card(p),
// so an absent dimension contributes zero extent and p < 0 yields the
// empty operator.
//
// Errors:
//   - ErrNilComplex: K is nil.
//
// Complexity: O(Card(p+1)·p)
func Matrix(K *simplex.Complex, p int) (*Coboundary, error) {
	if K == nil {
		return nil, ErrNilComplex
	}
	cb := &Coboundary{P: p}
	if p < 0 {
		return cb, nil
	}
	cb.NCols = K.Card(p)
	cb.NRows = K.Card(p + 1)
	if cb.NRows == 0 || cb.NCols == 0 {
		return cb, nil
	}

	idx := K.Index(p)
	// T is the position sum of a full (p+1)-simplex, see above.
	total := (p + 1) * (p + 2) / 2
	face := make(simplex.Simplex, p+1)
	for j, sigma := range K.Simplices(p + 1) {
		for drop := 0; drop <= p+1; drop++ {
			copy(face, sigma[:drop])
			copy(face[drop:], sigma[drop+1:])
			// Face closure makes this lookup total; a miss simply
			// contributes no entry, matching the subset rule.
			i, ok := idx[face.Key()]
			if !ok {
				continue
			}
			sign := 1.0
			if (total-drop)%2 != 0 {
				sign = -1.0
			}
			cb.Row = append(cb.Row, j)
			cb.Col = append(cb.Col, i)
			cb.Data = append(cb.Data, sign)
		}
	}

	return cb, nil
}

// NNZ returns the number of stored entries.
func (cb *Coboundary) NNZ() int { return len(cb.Data) }

// Dense materializes the operator as a gonum matrix for the numeric
// path. Empty operators (zero rows or columns) return nil; callers
// branch on the degenerate shapes before touching the dense form.
// Complexity: O(NRows·NCols)
func (cb *Coboundary) Dense() *mat.Dense {
	if cb.NRows == 0 || cb.NCols == 0 {
		return nil
	}
	d := mat.NewDense(cb.NRows, cb.NCols, nil)
	for k := range cb.Data {
		d.Set(cb.Row[k], cb.Col[k], cb.Data[k])
	}

	return d
}

// ComposeZero reports whether next∘prev vanishes within Tolerance, the
// δ∘δ = 0 law for successive coboundaries. Empty operators compose to
// zero trivially.
//
// Errors:
//   - ErrShapeMismatch: next.NCols != prev.NRows with both non-empty.
//
// Complexity: O(NRows·NCols·inner)
func ComposeZero(next, prev *Coboundary) (bool, error) {
	if next.NRows == 0 || next.NCols == 0 || prev.NRows == 0 || prev.NCols == 0 {
		return true, nil
	}
	if next.NCols != prev.NRows {
		return false, ErrShapeMismatch
	}

	var prod mat.Dense
	prod.Mul(next.Dense(), prev.Dense())

	rows, cols := prod.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(prod.At(i, j)) > Tolerance {
				return false, nil
			}
		}
	}

	return true, nil
}
