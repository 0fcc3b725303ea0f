// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus queries.
// Determinism:
//   - Vertices() sorted lexicographically; Edges() sorted by numeric edge ID;
//     IncidentEdges() sorted by Index, ties by edge ID.
// Concurrency:
//   - Lock order is muVert -> muEdgeAdj everywhere.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	g.incidence[id] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new undirected edge between from and to, creating missing
// endpoints on the fly, and returns its ID.
//
// Errors:
//   - ErrEmptyVertexID: an endpoint ID is empty.
//   - ErrLoopNotAllowed: from == to.
//   - ErrMultiEdgeNotAllowed: an edge {from,to} exists on a simple graph.
//
// Complexity: O(deg(from)) for the simple-graph check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.connectedLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	eid := string(strconv.AppendUint(buf, g.nextEdgeID, 10))

	e := &Edge{ID: eid, From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[eid] = e
	g.incidence[from][eid] = struct{}{}
	g.incidence[to][eid] = struct{}{}

	return eid, nil
}

// connectedLocked reports whether some edge joins u and v. Caller holds muEdgeAdj.
func (g *Graph) connectedLocked(u, v string) bool {
	for eid := range g.incidence[u] {
		if g.edges[eid].Other(u) == v {
			return true
		}
	}
	return false
}

// EdgeCount returns |E| (parallel edges counted individually).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Edges returns all edges sorted by their numeric ID (insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortByID(out)

	return out
}

// Degree returns the number of edges at id, parallel edges counted individually.
//
// Errors:
//   - ErrVertexNotFound: id is unknown.
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.incidence[id]), nil
}

// IncidentEdges returns the edges at id sorted by Index, ties broken by edge ID.
//
// Errors:
//   - ErrVertexNotFound: id is unknown.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.incidence[id]))
	for eid := range g.incidence[id] {
		out = append(out, g.edges[eid])
	}
	sortByID(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out, nil
}

// CutSize returns the number of edges with exactly one endpoint in side.
// Vertices missing from side are on the other side.
// Complexity: O(E).
func (g *Graph) CutSize(side map[string]bool) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var cut int
	for _, e := range g.edges {
		if side[e.From] != side[e.To] {
			cut++
		}
	}

	return cut
}

// sortByID orders edges by the numeric suffix of their IDs.
func sortByID(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, _ := strconv.ParseUint(es[i].ID[1:], 10, 64)
		b, _ := strconv.ParseUint(es[j].ID[1:], 10, 64)
		return a < b
	})
}
