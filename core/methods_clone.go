// File: methods_clone.go
// Role: deep copy of the whole graph.

package core

// Clone returns a deep copy of the graph: fresh vertex catalog, fresh
// shared-edge storage and fresh attribute maps. The copy and the original
// can be mutated independently afterwards.
// Complexity: O(V + E·A)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string]map[string]*Edge, len(g.adjacency)),
		attrNames:  make(map[string]struct{}, len(g.attrNames)),
		edgeCount:  g.edgeCount,
	}

	for id := range g.vertices {
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]*Edge, len(g.adjacency[id]))
	}
	for name := range g.attrNames {
		out.attrNames[name] = struct{}{}
	}

	// Copy each undirected edge exactly once and re-share the copy between
	// both directions, mirroring the original storage shape.
	for from, bucket := range g.adjacency {
		for to, e := range bucket {
			if from > to {
				continue
			}
			cp := copyEdge(e)
			out.adjacency[from][to] = &cp
			out.adjacency[to][from] = &cp
		}
	}

	return out
}
