// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors for network construction and preprocessing.

package builder

import "errors"

var (
	// ErrNilGraph is returned when a nil *core.Graph reaches NetworkStats.
	ErrNilGraph = errors.New("builder: nil *core.Graph provided")

	// ErrTooFewVertices rejects RandomNetwork sizes below one vertex.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability rejects edge probabilities outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrBadHeader is returned when a transaction log does not start with
	// the source,target,amount,timestamp header row.
	ErrBadHeader = errors.New("builder: malformed transaction header")

	// ErrBadRecord is returned for a transaction row that cannot be
	// parsed; the wrap carries the row number.
	ErrBadRecord = errors.New("builder: malformed transaction record")

	// ErrUnknownNormalization is returned for a normalization method
	// other than NormStandard, NormMinMax or NormL2.
	ErrUnknownNormalization = errors.New("builder: unknown normalization method")

	// ErrRaggedFeatures is returned when feature vectors disagree on
	// length; column-wise normalization needs a rectangular batch.
	ErrRaggedFeatures = errors.New("builder: feature vectors differ in length")
)
