// File: methods_edges.go
// Role: edge lifecycle, lookups and deterministic enumeration.
//
// Canonical storage: an undirected edge (u,v) is held once with From ≤ To;
// adjacency[u][v] and adjacency[v][u] point at the same Edge.

package core

import (
	"fmt"
	"math"
	"sort"
)

// canonical orders a vertex pair so the smaller ID comes first.
func canonical(u, v string) (string, string) {
	if u > v {
		return v, u
	}

	return u, v
}

// validWeight reports whether w is a legal weight or attribute value:
// finite and non-negative.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// AddEdge inserts or updates the undirected edge (u, v) with weight w.
//
// Semantics:
//  1. Missing endpoints are created automatically.
//  2. Re-adding an existing edge overwrites its weight and replaces its
//     attributes (upsert); the graph never holds parallel edges.
//  3. The weight and every attribute value must be finite and
//     non-negative; violations yield ErrBadWeight (attribute failures
//     wrap it with the attribute name).
//  4. u == v requires WithLoops(), otherwise ErrLoopNotAllowed.
//
// Complexity: O(A) for A attribute options, O(1) otherwise.
func (g *Graph) AddEdge(u, v string, w float64, opts ...EdgeOption) error {
	// 1. Validate endpoints.
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2. Validate the weight.
	if !validWeight(w) {
		return ErrBadWeight
	}

	// 3. Materialize the candidate edge and apply per-edge options.
	from, to := canonical(u, v)
	cand := &Edge{From: from, To: to, Weight: w}
	for _, opt := range opts {
		opt(cand)
	}
	for name, val := range cand.Attrs {
		if !validWeight(val) {
			return fmt.Errorf("core: attribute %q: %w", name, ErrBadWeight)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4. Auto-create endpoints and their adjacency buckets.
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = struct{}{}
			g.adjacency[id] = make(map[string]*Edge)
		}
	}

	// 5. Upsert: overwrite in place when the edge already exists.
	if e, ok := g.adjacency[from][to]; ok {
		e.Weight = cand.Weight
		e.Attrs = cand.Attrs
	} else {
		g.adjacency[from][to] = cand
		g.adjacency[to][from] = cand
		g.edgeCount++
	}

	// 6. Record attribute names for AttrNames() and filtration validation.
	for name := range cand.Attrs {
		g.attrNames[name] = struct{}{}
	}

	return nil
}

// HasEdge reports whether the undirected edge (u, v) exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	from, to := canonical(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of the undirected edge (u, v).
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrVertexNotFound: if either endpoint does not exist.
//   - ErrEdgeNotFound: if both endpoints exist but the edge does not.
//
// Complexity: O(1)
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	e, err := g.lookup(u, v)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// EdgeAttr returns the named attribute of the undirected edge (u, v).
// An existing edge without the attribute yields ErrUnknownAttr; callers
// that want a fallback (the persistence sweep defaults absent attributes
// to 1.0) match it with errors.Is.
//
// Complexity: O(1)
func (g *Graph) EdgeAttr(u, v, name string) (float64, error) {
	e, err := g.lookup(u, v)
	if err != nil {
		return 0, err
	}
	val, ok := e.Attrs[name]
	if !ok {
		return 0, fmt.Errorf("core: attribute %q: %w", name, ErrUnknownAttr)
	}

	return val, nil
}

// lookup resolves (u, v) to the shared *Edge under a read lock.
func (g *Graph) lookup(u, v string) (*Edge, error) {
	if u == "" || v == "" {
		return nil, ErrEmptyVertexID
	}
	from, to := canonical(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, ErrVertexNotFound
	}
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Neighbors returns the IDs adjacent to the vertex, sorted ascending.
// A self-loop lists the vertex itself among its own neighbors.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns deep copies of all edges sorted by (From, To). Mutating
// the returned slice or its Attrs maps does not affect the graph.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, e := range bucket {
			if from > to {
				continue // visit each undirected edge once
			}
			out = append(out, copyEdge(e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// copyEdge clones one edge record including its attribute map.
func copyEdge(e *Edge) Edge {
	cp := Edge{From: e.From, To: e.To, Weight: e.Weight}
	if e.Attrs != nil {
		cp.Attrs = make(map[string]float64, len(e.Attrs))
		for k, val := range e.Attrs {
			cp.Attrs[k] = val
		}
	}

	return cp
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AttrNames returns every attribute name ever set on an edge, sorted
// ascending. Upserts never un-declare a name.
// Complexity: O(A log A)
func (g *Graph) AttrNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.attrNames))
	for n := range g.attrNames {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
