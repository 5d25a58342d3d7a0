// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph and Edge declarations, sentinel errors, functional options
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was passed as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted while loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite weight or attribute value.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrUnknownAttr indicates the requested attribute is not set on the edge.
	ErrUnknownAttr = errors.New("core: edge attribute not set")
)

// Attribute names that transaction data naturally carries. The CSV loader
// and the demo generator emit exactly these; any other name is equally
// legal as a filtration parameter.
const (
	// AttrTime is the timestamp attribute of a transaction edge.
	AttrTime = "time"

	// AttrAmount is the monetary amount attribute of a transaction edge.
	AttrAmount = "amount"
)

// Edge represents a single undirected weighted connection.
//
// Endpoints are stored canonically with From ≤ To, so (u,v) and (v,u)
// address the same edge. Weight is the primary filtration quantity; Attrs
// holds auxiliary scalars keyed by name.
type Edge struct {
	// From is the lexicographically smaller endpoint ID.
	From string

	// To is the lexicographically larger endpoint ID.
	To string

	// Weight is the non-negative finite edge weight.
	Weight float64

	// Attrs holds named auxiliary scalars; nil when the edge carries none.
	Attrs map[string]float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures a single edge as it is added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets the named scalar attribute on the edge being added.
// Later options override earlier ones for the same name.
func WithEdgeAttr(name string, value float64) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]float64, 1)
		}
		e.Attrs[name] = value
	}
}

// WithEdgeTime sets the AttrTime attribute on the edge being added.
func WithEdgeTime(t float64) EdgeOption { return WithEdgeAttr(AttrTime, t) }

// WithEdgeAmount sets the AttrAmount attribute on the edge being added.
func WithEdgeAmount(a float64) EdgeOption { return WithEdgeAttr(AttrAmount, a) }

// Graph is an undirected, simple, float64-weighted graph with optional
// per-edge scalar attributes.
//
// A single RWMutex guards all storage: construction may happen from many
// goroutines, while the analysis layers (simplex, sheaf, persistence, pcr)
// treat a fully built Graph as read-only.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // permit From == To edges

	vertices  map[string]struct{}         // vertex catalog
	adjacency map[string]map[string]*Edge // both directions share one *Edge
	attrNames map[string]struct{}         // every attribute name ever set
	edgeCount int                         // number of distinct edges
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
		attrNames: make(map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1)
func (g *Graph) Looped() bool { return g.allowLoops }
