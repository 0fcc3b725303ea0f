// Package core provides the small, thread-safe, undirected graph on colour IDs
// that every necklace structure is projected onto.
//
// Two graphs are built on top of it:
//
//   - the walk graph of a necklace: one vertex per colour and one edge per
//     adjacency in the reduced string (a multigraph, WithMultiEdges);
//   - the colour graph of an irreducible necklace: the walk graph plus half-edge
//     labels (component sizes) and a positional Index on every edge, closed by an
//     extra edge or an extra vertex (see package compcut).
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Self-loops are always rejected with ErrLoopNotAllowed: consecutive components
// never share a colour.
//
// EdgeOptions:
//
//	– WithIndex(i int)
//	    Positional index of the edge in the reduced string.
//	– WithHalfWeights(wFrom, wTo int)
//	    Labels of the two half-edges (sizes of the incident components).
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)†
//	Vertices() []string                                          // O(V log V)
//	Edges() []*Edge                                              // O(E log E)
//	Degree(id string) (int, error)                               // O(1)
//	IncidentEdges(id string) ([]*Edge, error)                    // O(deg log deg)
//	CutSize(side map[string]bool) int                            // O(E)
//
// † amortized hash-map cost.
//
// Determinism: every enumeration is sorted (vertex IDs lexicographically, edges by
// numeric edge ID or by Index), so results are reproducible across runs.
package core
