package generator

import "math/rand"

// EulerianPath returns an Eulerian path of the undirected graph given by
// adjacency lists adj, starting at start. Every step leaves the current vertex
// along an incident edge picked uniformly by rng; consumed edges are removed in
// both directions. Vertices are emitted when the stack unwinds, so the emitted
// sequence is reversed before returning.
//
// The caller guarantees that a path from start exists (start is odd-degree, or
// all degrees are even). Complexity: O(E·d) with d the maximum degree.
func EulerianPath(adj [][]int, start int, rng *rand.Rand) []int {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var path []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			path = append(path, u)
			stack = stack[:len(stack)-1]
			continue
		}

		k := rng.Intn(len(local[u]))
		v := local[u][k]
		local[u] = append(local[u][:k], local[u][k+1:]...)
		for i, x := range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
