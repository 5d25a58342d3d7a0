// SPDX-License-Identifier: MIT

// Package builder supplies the collaborators around the scoring core:
// demo transaction networks, CSV ingestion, feature normalization and
// descriptive network statistics.
//
// 🚀 What lives here?
//
//	The scoring pipeline consumes a weighted graph plus vertex and edge
//	feature maps. This package produces exactly those triples, either
//	synthetically (RandomNetwork, an Erdős–Rényi transaction graph with
//	a heavy-tailed amount mix and per-account profile vectors) or from a
//	transaction log (LoadTransactionsCSV). NormalizeFeatures rescales
//	profile vectors before attachment; NetworkStats summarizes a graph
//	for reporting.
//
// ✨ Key operations:
//   - RandomNetwork: deterministic per seed; 90% of amounts drawn around
//     a small mean, 10% around a 10× heavier one, integer times in
//     [0,100), features [income N(50000,20000), KYC Beta(2,5),
//     account age Exp(mean 10)]
//   - LoadTransactionsCSV: "source,target,amount,timestamp" rows into a
//     graph with amount/time attributes, per-account in/out volume and
//     degree features, and edge stalks
//   - NormalizeFeatures: standard, minmax or l2, all eps-guarded
//   - NetworkStats: nodes, edges, density, average degree, components,
//     average clustering
//
// ⚙️ Usage:
//
//	g, vfeat, efeat, err := builder.RandomNetwork(20, 0.3, 42)
//	if err != nil { ... }
//	vfeat, err = builder.NormalizeFeatures(vfeat, builder.NormStandard)
//	if err != nil { ... }
//	m, err := pcr.Fit(g, vfeat, efeat)
//
// Everything here is pure construction: no goroutines, no global state,
// and deterministic output for a fixed seed and input.
package builder
