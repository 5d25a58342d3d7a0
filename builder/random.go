// SPDX-License-Identifier: MIT
// File: random.go
// Role: seeded Erdős–Rényi transaction network generation.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/sheafrisk/core"
	"github.com/katalvlaran/sheafrisk/sheaf"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generation constants: the amount mix and the per-account profile
// distributions of the demo network.
const (
	minNetworkVertices = 1
	probMin            = 0.0
	probMax            = 1.0

	heavyTailShare   = 0.10   // share of suspicious, heavier transactions
	normalAmountMean = 100.0  // mean of ordinary transaction amounts
	heavyAmountMean  = 1000.0 // mean of the heavy tail
	timeSpan         = 100    // integer time attribute domain [0, timeSpan)

	incomeMean     = 50000.0 // declared income, normal
	incomeSigma    = 20000.0
	kycAlpha       = 2.0 // KYC completeness, Beta(2,5) on [0,1]
	kycBeta        = 5.0
	accountAgeMean = 10.0 // account age in months, exponential
)

// RandomNetwork samples an Erdős–Rényi transaction graph over n accounts
// with independent edge probability p, deterministic for a fixed seed.
//
// Every edge carries its amount as weight and as the "amount" attribute,
// plus an integer "time" attribute in [0, 100). 90% of amounts are drawn
// around a small mean and 10% around a 10× heavier one, the circular-flow
// tail the risk scorer is meant to surface. Each account receives a
// 3-component profile: declared income N(50000, 20000), KYC completeness
// Beta(2, 5) and account age Exp(mean 10).
//
// Error conditions:
//   - ErrTooFewVertices     : n < 1.
//   - ErrInvalidProbability : p is NaN or outside [0,1].
//
// Steps:
//  1. Validate n and p.
//  2. Seed one random stream; all distributions share it, so outcomes
//     are reproducible per seed.
//  3. Add vertices "0".."n-1", then Bernoulli-trial each unordered pair
//     in ascending order, attaching amount and time on success.
//  4. Draw per-account profile vectors in ascending vertex order.
//
// Complexity: O(n²) pair trials, O(n) profiles.
func RandomNetwork(n int, p float64, seed int64) (*core.Graph, map[string][]float64, map[sheaf.EdgeKey]float64, error) {
	// 1. Validate parameters before touching any state.
	if n < minNetworkVertices {
		return nil, nil, nil, fmt.Errorf("builder: n=%d: %w", n, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, nil, nil, fmt.Errorf("builder: p=%v: %w", p, ErrInvalidProbability)
	}

	// 2. One shared stream keeps the whole network a function of the seed.
	src := rand.NewSource(uint64(seed))
	rng := rand.New(src)
	var (
		ordinary = distuv.Exponential{Rate: 1 / normalAmountMean, Src: src}
		heavy    = distuv.Exponential{Rate: 1 / heavyAmountMean, Src: src}
		income   = distuv.Normal{Mu: incomeMean, Sigma: incomeSigma, Src: src}
		kyc      = distuv.Beta{Alpha: kycAlpha, Beta: kycBeta, Src: src}
		age      = distuv.Exponential{Rate: 1 / accountAgeMean, Src: src}
	)

	// 3. Vertices in ascending index order, then pair trials.
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, nil, nil, fmt.Errorf("builder: vertex %d: %w", i, err)
		}
	}
	efeat := make(map[sheaf.EdgeKey]float64)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			var amount float64
			if rng.Float64() > heavyTailShare {
				amount = ordinary.Rand()
			} else {
				amount = heavy.Rand()
			}
			u, v := strconv.Itoa(i), strconv.Itoa(j)
			err := g.AddEdge(u, v, amount,
				core.WithEdgeAmount(amount),
				core.WithEdgeTime(float64(rng.Intn(timeSpan))),
			)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("builder: edge %s-%s: %w", u, v, err)
			}
			efeat[sheaf.NewEdgeKey(u, v)] = amount
		}
	}

	// 4. Per-account profiles in ascending vertex order.
	vfeat := make(map[string][]float64, n)
	for i := 0; i < n; i++ {
		vfeat[strconv.Itoa(i)] = []float64{income.Rand(), kyc.Rand(), age.Rand()}
	}

	return g, vfeat, efeat, nil
}
