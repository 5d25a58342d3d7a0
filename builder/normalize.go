// SPDX-License-Identifier: MIT
// File: normalize.go
// Role: feature-batch normalization ahead of sheaf attachment.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/viterin/vek"
)

// Normalization method names accepted by NormalizeFeatures.
const (
	NormStandard = "standard" // column-wise zero mean, unit variance
	NormMinMax   = "minmax"   // column-wise rescale onto [0,1]
	NormL2       = "l2"       // row-wise unit Euclidean norm
)

// normEps keeps every divisor strictly positive, so constant columns and
// zero vectors normalize to zero instead of NaN.
const normEps = 1e-8

// NormalizeFeatures rescales a batch of feature vectors and returns a
// new map; the input is never mutated. Standard and minmax operate per
// component across the batch, l2 per vector. All vectors must share one
// length.
//
// Error conditions:
//   - ErrUnknownNormalization : method is not one of the Norm* names.
//   - ErrRaggedFeatures       : vectors disagree on length.
func NormalizeFeatures(features map[string][]float64, method string) (map[string][]float64, error) {
	switch method {
	case NormStandard, NormMinMax, NormL2:
	default:
		return nil, fmt.Errorf("builder: normalization %q: %w", method, ErrUnknownNormalization)
	}

	out := make(map[string][]float64, len(features))
	if len(features) == 0 {
		return out, nil
	}

	// Deterministic key order doubles as the rectangularity check.
	keys := make([]string, 0, len(features))
	for k := range features {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	dim := len(features[keys[0]])
	for _, k := range keys {
		if len(features[k]) != dim {
			return nil, fmt.Errorf("builder: vertex %q has %d components, want %d: %w",
				k, len(features[k]), dim, ErrRaggedFeatures)
		}
		out[k] = append([]float64(nil), features[k]...)
	}
	if dim == 0 {
		return out, nil
	}

	if method == NormL2 {
		for _, k := range keys {
			out[k] = vek.DivNumber(out[k], vek.Norm(out[k])+normEps)
		}

		return out, nil
	}

	// Column-wise standard / minmax over the batch.
	n := len(keys)
	col := make([]float64, n)
	for d := 0; d < dim; d++ {
		for i, k := range keys {
			col[i] = out[k][d]
		}
		var scaled []float64
		if method == NormStandard {
			mean := vek.Mean(col)
			centered := vek.SubNumber(col, mean)
			std := math.Sqrt(vek.Dot(centered, centered) / float64(n))
			scaled = vek.DivNumber(centered, std+normEps)
		} else {
			lo, hi := vek.Min(col), vek.Max(col)
			scaled = vek.DivNumber(vek.SubNumber(col, lo), hi-lo+normEps)
		}
		for i, k := range keys {
			out[k][d] = scaled[i]
		}
	}

	return out, nil
}
