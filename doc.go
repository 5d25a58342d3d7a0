// Package sheafrisk scores transaction-network risk through the lens of
// persistent sheaf cohomology: cycles of money flow become algebraic
// classes whose lifetimes and inconsistencies rank the accounts riding
// them.
//
// 🚀 What is sheafrisk?
//
//	A thread-safe financial-topology toolkit that brings together:
//		• Core primitives: weighted transaction graphs with edge attributes
//		• Clique expansion: thresholded simplicial complexes up to triangles and beyond
//		• Sheaf modeling: vertex/edge stalks with pluggable restriction maps
//		• Exact cohomology: coboundary matrices and SVD-ranked Betti numbers
//		• Persistence: H0/H1 birth-death diagrams over weight, time or amount filtrations
//		• PCR scoring: per-account Persistent Cohomological Risk and risk classes
//
// ✨ Why choose sheafrisk?
//
//   - Deterministic – seeded generators, canonical orderings, reproducible fits
//   - Rock-solid guarantees – R/W locks on the graph, immutable fitted models
//   - Explainable – every score decomposes into named cycles with birth/death scales
//   - Extensible – swap the restriction map, the filtration parameter, the thresholds
//
// Under the hood, everything is organized in a pipeline of subpackages:
//
//	core/        — fundamental Graph and Edge types & thread-safe primitives
//	simplex/     — clique-expansion complex builder (vertices, edges, triangles, ...)
//	sheaf/       — feature stalks + restriction maps over a complex
//	cohomology/  — coboundary operators and numerical-rank cohomology groups
//	persistence/ — filtration sweep producing H0/H1 interval diagrams
//	pcr/         — the fitted Model: scores, risk classes, cohomology queries
//	builder/     — synthetic networks, CSV ingestion, normalization, statistics
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square of transfers is a 1-cycle; if no triangle ever fills it,
//	its H1 class never dies and every account on it inherits the risk.
//
// Dive into examples/ for full pipelines, from random-network smoke
// tests to capacity-aware restriction maps.
//
//	go get github.com/katalvlaran/sheafrisk
package sheafrisk
