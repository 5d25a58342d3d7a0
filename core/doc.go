// Package core defines the weighted undirected transaction graph that every
// analysis layer of sheafrisk consumes.
//
// A Graph stores opaque string vertex IDs and simple float64-weighted edges.
// Each edge may additionally carry named scalar attributes (AttrTime,
// AttrAmount, or any caller-chosen key); the persistence layer reads them as
// alternative filtration parameters. The surface is small: build the
// graph, hand it to simplex.Build or pcr.Fit, and treat it as read-only
// from then on.
//
// Semantics:
//   - Undirected and simple: re-adding an existing edge overwrites its
//     weight and attributes (upsert); parallel edges never occur.
//   - Self-loops are rejected by default; enable them with WithLoops().
//   - Weights and attribute values must be finite and non-negative.
//   - Construction is thread-safe (a single sync.RWMutex guards storage).
//   - Enumeration is deterministic: VertexIDs() is sorted ascending and
//     Edges() is sorted by (From, To), so downstream complexes, diagrams
//     and scores are reproducible run to run.
//
// Options:
//   - WithLoops()            - permit self-loops.
//   - WithEdgeAttr(name, v)  - set a named scalar attribute on one edge.
//   - WithEdgeTime(t)        - shorthand for WithEdgeAttr(AttrTime, t).
//   - WithEdgeAmount(a)      - shorthand for WithEdgeAttr(AttrAmount, a).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop attempted while loops are disabled.
//	ErrBadWeight      - negative, NaN or infinite weight or attribute value.
//	ErrUnknownAttr    - requested attribute is not set on the edge.
//
// See also: simplex (clique complexes over a Graph), sheaf (feature
// stalks), persistence (filtration sweeps), pcr (risk scoring).
package core
