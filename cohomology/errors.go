// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel error set.

package cohomology

import "errors"

var (
	// ErrNilComplex indicates a nil *simplex.Complex was provided.
	ErrNilComplex = errors.New("cohomology: nil *simplex.Complex provided")

	// ErrShapeMismatch indicates two operators whose shapes do not compose.
	ErrShapeMismatch = errors.New("cohomology: operator shapes do not compose")

	// ErrNumeric indicates a matrix factorization failed to converge.
	ErrNumeric = errors.New("cohomology: matrix factorization failed")
)
