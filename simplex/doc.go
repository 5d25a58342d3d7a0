// Package simplex builds simplicial complexes over a core.Graph by clique
// expansion, the combinatorial substrate for sheaf cohomology and
// persistence.
//
// 🚀 What is a simplicial complex?
//
//	A k-simplex is a set of k+1 distinct vertices: a vertex (k=0), an edge
//	(k=1), a filled triangle (k=2), a tetrahedron (k=3), and so on. A
//	complex is a collection of simplices closed under taking faces: every
//	edge of a stored triangle is itself stored, every vertex of a stored
//	edge likewise. In a transaction graph, triangles and higher cliques
//	mark tightly coupled account groups, exactly where layered money flows
//	hide.
//
// ✨ Construction rules (Build):
//   - dimension 0: every vertex of the graph, sorted ascending
//   - dimension 1: every edge whose weight ≥ Threshold (self-loops never
//     qualify; sub-threshold edges are excluded from all higher cliques)
//   - dimension k ≥ 2: all (k+1)-cliques grown exclusively through edges
//     that meet the threshold in the underlying graph, emitted in
//     lexicographic order with canonically sorted vertices
//
// ⚙️ Usage:
//
//	K, err := simplex.Build(g,
//	    simplex.WithThreshold(0.25),
//	    simplex.WithMaxDim(2),
//	)
//	if err != nil { ... }
//	fmt.Println(K.Card(2)) // number of triangles
//
// A negative MaxDim or an empty graph yields an empty complex, not an
// error; strict configuration checks belong to the risk scorer.
//
// Determinism: the same graph and options always produce byte-identical
// complexes. Validate() audits face closure, the invariant every other
// package builds on.
//
// Performance:
//
//   - Build: O(V log V + E log E + C·deg) where C is the number of
//     cliques materialized; MaxDim caps the blowup.
//
// See example_test.go for a filled-triangle walkthrough.
package simplex
