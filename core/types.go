// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a colour in the graph.
type Vertex struct {
	// ID is the unique identifier (the colour token) of this Vertex.
	ID string
}

// Edge is an undirected connection between two colours.
//
// Index is the position of the adjacency in the reduced string it was created
// from (first component index). FromWeight and ToWeight label the two half-edges,
// i.e. the sizes of the components incident to the adjacency.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs, in insertion order.
	From string
	To   string

	// Index is the positional index of the edge.
	Index int

	// FromWeight and ToWeight are the half-edge labels at From and To.
	FromWeight int
	ToWeight   int
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}
	return e.From
}

// WeightAt returns the half-edge label of e at endpoint v, or 0 if v is not an endpoint.
func (e *Edge) WeightAt(v string) int {
	switch v {
	case e.From:
		return e.FromWeight
	case e.To:
		return e.ToWeight
	}
	return 0
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithIndex sets the positional index of the edge.
func WithIndex(i int) EdgeOption {
	return func(e *Edge) { e.Index = i }
}

// WithHalfWeights labels the half-edges at From and To.
func WithHalfWeights(wFrom, wTo int) EdgeOption {
	return func(e *Edge) {
		e.FromWeight = wFrom
		e.ToWeight = wTo
	}
}

// Graph is an undirected in-memory graph keyed by colour IDs.
//
// muVert protects vertices; muEdgeAdj protects edges and incidence.
// nextEdgeID is a counter for unique Edge.ID generation (guarded by muEdgeAdj).
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and incidence

	allowMulti bool // allow parallel edges

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// incidence[vertexID][edgeID] = struct{}{}
	incidence map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Loops are never allowed; parallel edges only WithMultiEdges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		incidence: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
