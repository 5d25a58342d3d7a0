// SPDX-License-Identifier: MIT

// Package cohomology builds coboundary operators over a simplicial
// complex and computes sheaf cohomology groups by numerically stable
// linear algebra.
//
// The coboundary δ^p maps p-cochains to (p+1)-cochains. Its matrix has
// one row per (p+1)-simplex and one column per p-simplex; the entry is
// the orientation sign (−1)^(sum of the face's vertex positions within
// the coface) when the column simplex is a face of the row simplex, else
// zero. Successive operators compose to zero (δ∘δ = 0), the property
// ComposeZero audits.
//
// Compute derives H^p = ker δ^p / im δ^{p−1}:
//
//  1. Kernel of δ^p from a full SVD: right singular directions whose
//     singular value falls below Tolerance.
//  2. For p > 0, an orthonormal basis of im δ^{p−1} from the left
//     singular directions with values ≥ Tolerance (rank-aware).
//  3. The image projection is subtracted from the kernel basis and the
//     residual re-orthonormalized by SVD, dropping collapsed directions.
//
// Degenerate shapes follow the cochain spaces, not the matrix literal:
// zero columns mean an empty basis, zero rows mean the kernel is all of
// C^p (identity basis). H^0 counts connected components of the complex;
// H^1 counts independent cycles not bounded by triangles, the layered
// flow structures risk scoring feeds on.
//
// Matrices are rebuilt per call; a Complex is immutable, so callers may
// cache results freely.
package cohomology
