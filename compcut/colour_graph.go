// SPDX-License-Identifier: MIT
//
// File: colour_graph.go
// Role: colour graph construction and canonical traversals per vertex.
// Contract:
//   - Input is an irreducible necklace (ErrNotIrreducible otherwise).
//   - Edge i joins the colours of components i and i+1; its half-edge labels are
//     the sizes of those components and its Index is i.
//   - The two degree-3 colours (first and last component) are closed: a direct
//     edge with Index size-1 for even n, or the Infinity vertex with edges of
//     Index size-1 (to the first colour) and size (from the last colour) for odd n.

package compcut

import (
	"errors"
	"fmt"

	"github.com/linstald/master-thesis-scripts/core"
	"github.com/linstald/master-thesis-scripts/necklace"
)

// Infinity is the auxiliary vertex closing the colour graph when n is odd.
const Infinity = "∞"

var (
	// ErrNotIrreducible indicates that a colour graph was requested for a reducible necklace.
	ErrNotIrreducible = errors.New("compcut: necklace is not irreducible")

	// ErrBadDegree indicates a colour-graph vertex whose degree is neither 2 nor 4.
	ErrBadDegree = errors.New("compcut: unexpected vertex degree")

	// ErrTraversalMismatch indicates a traversal whose two half-edges at the vertex
	// carry different component sizes.
	ErrTraversalMismatch = errors.New("compcut: traversal half-edges disagree")
)

// Traversal is a pair of edges passing through a vertex via one component.
type Traversal [2]*core.Edge

// ColourGraph is the walk graph of an irreducible necklace with half-edge
// labels, positional indices and the closing edge or vertex.
type ColourGraph struct {
	*core.Graph

	nk    *necklace.Necklace
	first string // colour of the first component
	last  string // colour of the last component
}

// NewColourGraph builds the colour graph of nk.
//
// Errors:
//   - ErrNotIrreducible: nk admits a structural reduction (or is empty).
//
// Complexity: O(size).
func NewColourGraph(nk *necklace.Necklace) (*ColourGraph, error) {
	if !nk.IsIrreducible() {
		return nil, fmt.Errorf("NewColourGraph(%s): %w", nk, ErrNotIrreducible)
	}

	var (
		size = nk.Size()
		cg   = &ColourGraph{
			// an irreducible necklace may repeat an adjacency; each stays its own edge
			Graph: core.NewGraph(core.WithMultiEdges()),
			nk:    nk,
			first: nk.ComponentColour(0),
			last:  nk.ComponentColour(size - 1),
		}
	)
	for _, c := range nk.Colours() {
		if err := cg.AddVertex(c); err != nil {
			return nil, err
		}
	}
	for i := 0; i+1 < size; i++ {
		_, err := cg.AddEdge(nk.ComponentColour(i), nk.ComponentColour(i+1),
			core.WithIndex(i),
			core.WithHalfWeights(nk.ComponentLen(i), nk.ComponentLen(i+1)))
		if err != nil {
			return nil, err
		}
	}

	firstLen, lastLen := nk.ComponentLen(0), nk.ComponentLen(size-1)
	if nk.NumColours()%2 == 0 {
		if _, err := cg.AddEdge(cg.first, cg.last,
			core.WithIndex(size-1), core.WithHalfWeights(firstLen, lastLen)); err != nil {
			return nil, err
		}
		return cg, nil
	}

	if _, err := cg.AddEdge(Infinity, cg.first,
		core.WithIndex(size-1), core.WithHalfWeights(0, firstLen)); err != nil {
		return nil, err
	}
	if _, err := cg.AddEdge(cg.last, Infinity,
		core.WithIndex(size), core.WithHalfWeights(lastLen, 0)); err != nil {
		return nil, err
	}

	return cg, nil
}

// Necklace returns the necklace the graph was built from.
func (cg *ColourGraph) Necklace() *necklace.Necklace { return cg.nk }

// First returns the colour of the first component.
func (cg *ColourGraph) First() string { return cg.first }

// Last returns the colour of the last component.
func (cg *ColourGraph) Last() string { return cg.last }

// Traversals returns the canonical traversals of v.
//
// Incident edges are sorted by Index. A degree-2 vertex has the single traversal
// (e1,e2). A degree-4 vertex has (e1,e2),(e3,e4), except the colour of the first
// component, whose closing edge has the largest index: (e4,e1),(e2,e3). For a
// colour vertex traversal i passes through its i-th component.
//
// Errors:
//   - core.ErrVertexNotFound, ErrBadDegree, ErrTraversalMismatch.
func (cg *ColourGraph) Traversals(v string) ([]Traversal, error) {
	deg, err := cg.Degree(v)
	if err != nil {
		return nil, err
	}
	es, err := cg.IncidentEdges(v)
	if err != nil {
		return nil, err
	}

	var trav []Traversal
	switch deg {
	case 2:
		trav = []Traversal{{es[0], es[1]}}
	case 4:
		if v == cg.first {
			trav = []Traversal{{es[3], es[0]}, {es[1], es[2]}}
		} else {
			trav = []Traversal{{es[0], es[1]}, {es[2], es[3]}}
		}
	default:
		return nil, fmt.Errorf("Traversals(%s): degree %d: %w", v, deg, ErrBadDegree)
	}

	for i, t := range trav {
		if t[0].WeightAt(v) != t[1].WeightAt(v) {
			return nil, fmt.Errorf("Traversals(%s): traversal %d: %d != %d: %w",
				v, i, t[0].WeightAt(v), t[1].WeightAt(v), ErrTraversalMismatch)
		}
	}

	return trav, nil
}

// Component returns the component index of colour v passed by traversal i.
func (cg *ColourGraph) Component(v string, i int) int {
	return cg.nk.ComponentOccurrences(v)[i]
}
