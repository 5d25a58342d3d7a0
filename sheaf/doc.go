// Package sheaf attaches feature data to a simplicial complex: a vector
// stalk per vertex, a scalar stalk per edge, and a restriction map that
// measures how far a vertex's data sits from an incident edge's data.
//
// The discrepancy produced by the restriction map is the "local
// disagreement" signal of the whole pipeline: consistent neighborhoods
// restrict to near-zero values, while laundering-style flows leave
// residuals that the cocycle-norm estimate in pcr picks up.
//
// Attach is strict about vertex coverage: every vertex the complex
// references must come with a feature vector, and a missing one is
// reported by name rather than silently defaulted. Edge features may be
// partial; consumers skip edges without features.
//
// The default restriction, EuclideanRestriction, first coerces the scalar
// edge stalk to a constant vector of the vertex stalk's length and then
// takes the Euclidean norm of the difference. The coercion is performed
// explicitly here so the broadcasting rule is a documented part of the
// contract, not an accident of vector arithmetic.
//
// A Store is immutable after Attach and safe for concurrent readers.
//
// Errors:
//
//	ErrNilComplex           - nil *simplex.Complex provided.
//	ErrNilRestriction       - a nil restriction function was configured.
//	ErrMissingVertexFeature - a complex vertex has no feature vector.
//	ErrMissingEdgeFeature   - the requested edge carries no feature.
//	ErrBadFeature           - a feature contains NaN or Inf.
package sheaf
