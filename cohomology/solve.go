// SPDX-License-Identifier: MIT
// File: solve.go
// Role: cohomology group computation via SVD kernel extraction and
// rank-aware image projection.

package cohomology

import (
	"github.com/katalvlaran/sheafrisk/simplex"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the singular-value threshold below which a direction is
// treated as null, both for kernel membership and for rank detection.
const Tolerance = 1e-10

// Group is the computed cohomology group H^Dim of a complex.
type Group struct {
	// Dim is the cochain dimension p.
	Dim int

	// KernelDim is dim ker δ^p (the cocycles).
	KernelDim int

	// ImageDim is the numerical rank of δ^{p-1} (the coboundaries);
	// 0 when p == 0.
	ImageDim int

	// CohomologyDim is dim H^p = KernelDim − overlap with the image.
	CohomologyDim int

	// Basis holds one orthonormal cohomology representative per column,
	// Card(p) rows; nil when CohomologyDim == 0.
	Basis *mat.Dense
}

// Compute derives H^p = ker δ^p / im δ^{p−1} for the complex.
//
// Steps:
//  1. p < 0 or no p-simplices: the trivial group (zero columns mean an
//     empty basis).
//  2. For p > 0, an orthonormal basis of im δ^{p−1}: left singular
//     directions of its dense form with σ ≥ Tolerance.
//  3. Kernel of δ^p: with no (p+1)-simplices the operator has zero rows
//     and the kernel is all of C^p (identity basis); otherwise the right
//     singular directions with σ < Tolerance from a full SVD.
//  4. p == 0 keeps the kernel as the cohomology basis. Otherwise the
//     image projection is subtracted and the residual re-orthonormalized
//     by SVD, dropping directions that collapse below Tolerance.
//
// The resulting Basis columns are pairwise orthonormal and lie in
// ker δ^p within Tolerance.
//
// Errors:
//   - ErrNilComplex: K is nil.
//   - ErrNumeric: an SVD failed to converge.
//
// Complexity: O(n³) in the simplex counts of dimensions p−1, p, p+1.
func Compute(K *simplex.Complex, p int) (Group, error) {
	if K == nil {
		return Group{}, ErrNilComplex
	}
	grp := Group{Dim: p}

	// 1. Trivial cochain space.
	if p < 0 || K.Card(p) == 0 {
		return grp, nil
	}
	n := K.Card(p)

	// 2. Orthonormal image basis of δ^{p−1}, rank-aware.
	var imgQ mat.Matrix
	var uImg mat.Dense
	if p > 0 && K.Card(p-1) > 0 {
		prev, err := Matrix(K, p-1)
		if err != nil {
			return Group{}, err
		}
		var svd mat.SVD
		if !svd.Factorize(prev.Dense(), mat.SVDThin) {
			return Group{}, ErrNumeric
		}
		rank := countAbove(svd.Values(nil))
		grp.ImageDim = rank
		if rank > 0 {
			svd.UTo(&uImg)
			imgQ = uImg.Slice(0, n, 0, rank)
		}
	}

	// 3. Kernel of δ^p.
	next, err := Matrix(K, p)
	if err != nil {
		return Group{}, err
	}
	var kernel *mat.Dense
	if next.NRows == 0 {
		// Zero rows: δ^p is the zero map and the kernel is everything.
		kernel = identity(n)
		grp.KernelDim = n
	} else {
		var svd mat.SVD
		if !svd.Factorize(next.Dense(), mat.SVDFull) {
			return Group{}, ErrNumeric
		}
		rank := countAbove(svd.Values(nil))
		grp.KernelDim = n - rank
		if grp.KernelDim > 0 {
			var v mat.Dense
			svd.VTo(&v)
			// Null directions are the trailing right singular vectors:
			// σ is sorted non-increasing and implicit values beyond
			// min(m,n) are zero.
			kernel = mat.DenseCopyOf(v.Slice(0, n, rank, n))
		}
	}
	if kernel == nil {
		return grp, nil
	}

	// 4. No coboundaries to quotient by: the kernel is the basis.
	if imgQ == nil {
		grp.Basis = kernel
		grp.CohomologyDim = grp.KernelDim

		return grp, nil
	}

	// Subtract the image projection, then re-orthonormalize.
	var qtk, proj, resid mat.Dense
	qtk.Mul(imgQ.T(), kernel)
	proj.Mul(imgQ, &qtk)
	resid.Sub(kernel, &proj)

	var svd mat.SVD
	if !svd.Factorize(&resid, mat.SVDThin) {
		return Group{}, ErrNumeric
	}
	h := countAbove(svd.Values(nil))
	grp.CohomologyDim = h
	if h > 0 {
		var u mat.Dense
		svd.UTo(&u)
		grp.Basis = mat.DenseCopyOf(u.Slice(0, n, 0, h))
	}

	return grp, nil
}

// countAbove counts singular values at or above Tolerance; the values
// arrive sorted non-increasing.
func countAbove(vals []float64) int {
	n := 0
	for _, s := range vals {
		if s >= Tolerance {
			n++
		}
	}

	return n
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}
