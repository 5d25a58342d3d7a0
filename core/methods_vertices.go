// File: methods_vertices.go
// Role: vertex lifecycle and queries.
//
// Determinism: VertexIDs() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// 1. Validate the ID before touching any state.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Existing vertices are a no-op.
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}

	// 3. Bootstrap the adjacency bucket so edge methods can rely on it.
	g.adjacency[id] = make(map[string]*Edge)

	return nil
}

// HasVertex reports whether the vertex exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexIDs returns all vertex IDs sorted ascending. The stable order is
// what makes complexes, diagrams and scores reproducible run to run.
// Complexity: O(V log V)
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the undirected degree of the vertex. A self-loop
// contributes 2, the classic graph-theory convention.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := len(g.adjacency[id])
	if _, loop := g.adjacency[id][id]; loop {
		// The loop's second incidence.
		deg++
	}

	return deg, nil
}
