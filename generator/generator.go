// SPDX-License-Identifier: MIT
//
// Package generator produces random test instances: irreducible necklaces
// drawn as random Eulerian paths of a fixed auxiliary graph, and pumped
// necklaces that keep a reduced string but vary component sizes. Enumerate
// lists every canonical trimmed necklace over an alphabet instead.
//
// Randomness is deterministic: every function draws from a *rand.Rand chosen by
// options, seeded with a fixed default when none is given.
package generator

import (
	"errors"
	"fmt"
	"strconv"
)

// MinColours is the smallest colour count whose auxiliary graph has an
// Eulerian path yielding an irreducible necklace.
const MinColours = 4

// ErrTooFewColours indicates a colour count below MinColours.
var ErrTooFewColours = errors.New("generator: too few colours")

// auxiliary returns the adjacency lists of the cycle 0..n-1 with the chords
// (2i-1, 2i+1 mod n) for 1 <= i < (n+1)/2. Chords already present on the cycle
// are not doubled.
func auxiliary(n int) [][]int {
	adj := make([][]int, n)
	seen := make(map[[2]int]bool)
	add := func(u, v int) {
		key := [2]int{min(u, v), max(u, v)}
		if seen[key] {
			return
		}
		seen[key] = true
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for i := 0; i < n; i++ {
		add(i, (i+1)%n)
	}
	for i := 1; i < (n+1)/2; i++ {
		add(2*i-1, (2*i+1)%n)
	}
	return adj
}

// RandomIrreducible returns the beads of a random irreducible necklace with n
// colours, one bead per component. Vertices of the walk are renamed in order of
// first appearance: letters a, b, ... for n <= 26, decimal tokens 1, 2, ...
// otherwise.
//
// Errors:
//   - ErrTooFewColours: n < MinColours.
func RandomIrreducible(n int, opts ...Option) ([]string, error) {
	if n < MinColours {
		return nil, fmt.Errorf("RandomIrreducible(%d): %w", n, ErrTooFewColours)
	}
	cfg := newConfig(opts)

	adj := auxiliary(n)
	start := 0
	for v := range adj {
		if len(adj[v])%2 != 0 {
			start = v
			break
		}
	}
	path := EulerianPath(adj, start, cfg.rng)

	name := make(map[int]string, n)
	out := make([]string, len(path))
	for i, v := range path {
		tok, ok := name[v]
		if !ok {
			tok = colourName(len(name), n)
			name[v] = tok
		}
		out[i] = tok
	}
	return out, nil
}

// colourName returns the name of the rank-th colour of an n-colour necklace.
func colourName(rank, n int) string {
	if n <= 26 {
		return string(rune('a' + rank))
	}
	return strconv.Itoa(rank + 1)
}

// Pump repeats every bead between 1 and max(8, n) times, n being the number of
// distinct colours. The reduced string is preserved.
func Pump(beads []string, opts ...Option) []string {
	cfg := newConfig(opts)

	colours := make(map[string]struct{})
	for _, b := range beads {
		colours[b] = struct{}{}
	}
	limit := max(8, len(colours))

	var out []string
	for _, b := range beads {
		for k := cfg.rng.Intn(limit) + 1; k > 0; k-- {
			out = append(out, b)
		}
	}
	return out
}
