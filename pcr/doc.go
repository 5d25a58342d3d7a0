// SPDX-License-Identifier: MIT

// Package pcr fits the whole persistent sheaf-cohomology pipeline over a
// transaction graph and turns it into per-account risk scores.
//
// 🚀 What is a PCR score?
//
//	PCR stands for Persistent Cohomological Risk. Fit clique-expands the
//	graph into a simplicial complex, attaches vertex and edge features as
//	sheaf data, sweeps a weight (or attribute) filtration to obtain
//	persistent H0/H1 intervals, and freezes everything into an immutable
//	Model. A vertex's score sums, over every 1-dimensional interval, the
//	interval's lifetime plus an estimate of how inconsistently the
//	vertex's features sit against its incident transactions, weighted
//	toward edges that are temporally co-located with the interval.
//
// ✨ Key operations:
//   - Fit: one-shot pipeline, all configuration errors surface here
//   - Model.Score / Model.AllScores: raw and max-normalized PCR scores
//   - Model.RiskClasses: persistent intervals promoted to Cohomological
//     Risk Classes with a [0,1] risk level and a vertex shortlist
//   - Model.Cohomology: the static cohomology groups of the fitted
//     complex, for structural inspection
//
// ⚙️ Usage:
//
//	m, err := pcr.Fit(g, vertexFeatures, edgeFeatures,
//	    pcr.WithMaxDim(2),
//	    pcr.WithFiltrationParam(persistence.ParamAmount),
//	)
//	if err != nil { ... }
//	scores, _ := m.AllScores(pcr.DefaultPersistenceWeight, pcr.DefaultNormWeight)
//	crcs, _ := m.RiskClasses(pcr.DefaultRiskThreshold)
//
// Every Model query is a pure function of the fitted state: repeated
// calls with equal arguments return equal results, and mutating the
// input graph after Fit changes nothing.
//
// The vertex list attached to each risk class is a global ranking of
// high scorers, not a trace of the actual cocycle representative; exact
// attribution would require tracking generators through the sweep.
package pcr
