// SPDX-License-Identifier: MIT
//
// File: necklace.go
// Role: Necklace construction, encodings and read-only accessors.
// Policy:
//   - Construction never fails; every derived structure is computed once.
//   - Accessors return copies; a Necklace is never mutated after New.
//   - Sub-instances (Remove) are fresh necklaces, never views of the parent.

package necklace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linstald/master-thesis-scripts/core"
)

// Necklace is an immutable sequence of coloured beads with its derived indices.
type Necklace struct {
	beads     []string         // bead colours, length N
	reduced   []string         // colour of each component, length Size
	colours   []string         // colours in first-occurrence order
	typeIndex map[string]int   // colour → first-occurrence rank
	beadIdx   map[string][]int // colour → bead positions
	compOcc   map[string][]int // colour → component indices
	compBeads [][]int          // component index → bead positions
	compStart []int            // component index → first bead position
	walk      *core.Graph      // walk multigraph over colours
}

// New builds a Necklace from general colour tokens. Empty tokens are dropped.
// Complexity: O(N).
func New(beads []string) *Necklace {
	kept := make([]string, 0, len(beads))
	for _, b := range beads {
		if b != "" {
			kept = append(kept, b)
		}
	}
	nk := &Necklace{
		beads:     kept,
		typeIndex: make(map[string]int),
		beadIdx:   make(map[string][]int),
		compOcc:   make(map[string][]int),
	}

	for i, c := range nk.beads {
		if _, seen := nk.typeIndex[c]; !seen {
			nk.typeIndex[c] = len(nk.colours)
			nk.colours = append(nk.colours, c)
		}
		nk.beadIdx[c] = append(nk.beadIdx[c], i)

		if i == 0 || nk.beads[i-1] != c {
			nk.compOcc[c] = append(nk.compOcc[c], len(nk.reduced))
			nk.reduced = append(nk.reduced, c)
			nk.compBeads = append(nk.compBeads, nil)
			nk.compStart = append(nk.compStart, i)
		}
		last := len(nk.compBeads) - 1
		nk.compBeads[last] = append(nk.compBeads[last], i)
	}

	nk.walk = walkGraph(nk.colours, nk.reduced)

	return nk
}

// walkGraph adds one vertex per colour and one edge per reduced-string adjacency.
// Colours are non-empty and consecutive components never share a colour, so
// core can reject neither a vertex nor an edge.
func walkGraph(colours, reduced []string) *core.Graph {
	g := core.NewGraph(core.WithMultiEdges())
	for _, c := range colours {
		if err := g.AddVertex(c); err != nil {
			panic(fmt.Sprintf("necklace: walk graph vertex %q: %v", c, err))
		}
	}
	for i := 0; i+1 < len(reduced); i++ {
		if _, err := g.AddEdge(reduced[i], reduced[i+1], core.WithIndex(i)); err != nil {
			panic(fmt.Sprintf("necklace: walk graph edge %d: %v", i, err))
		}
	}

	return g
}

// Parse builds a Necklace from its compact text encoding: every ASCII letter
// is one bead and all other runes, commas included, are discarded.
func Parse(s string) *Necklace {
	return New(Tokens(s))
}

// Tokens splits a compact text encoding into one-letter colour tokens, with
// the rules of Parse.
func Tokens(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		if isASCIILetter(r) {
			out = append(out, string(r))
		}
	}
	return out
}

// ParseTokens builds a Necklace from the general encoding: comma-separated
// tokens, surrounding blanks trimmed and empty tokens dropped. It reads back
// what String renders for necklaces that are not compact.
func ParseTokens(s string) *Necklace {
	return New(SplitTokens(s))
}

// SplitTokens splits a general encoding into colour tokens, with the rules of ParseTokens.
func SplitTokens(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FromInts builds a Necklace whose colours are decimal renderings of ints.
func FromInts(beads []int) *Necklace {
	tokens := make([]string, len(beads))
	for i, b := range beads {
		tokens[i] = strconv.Itoa(b)
	}
	return New(tokens)
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Trim collapses runs of equal consecutive tokens to a single token.
func Trim(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if i > 0 && tokens[i-1] == t {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TrimString returns the canonical trimmed text form of s: the reduced string of
// Parse(s), rendered like String.
func TrimString(s string) string {
	return Parse(s).Trimmed().String()
}

// Remove returns a new Necklace holding the beads for which drop reports false.
// Complexity: O(N).
func (nk *Necklace) Remove(drop func(pos int, colour string) bool) *Necklace {
	kept := make([]string, 0, len(nk.beads))
	for i, c := range nk.beads {
		if !drop(i, c) {
			kept = append(kept, c)
		}
	}
	return New(kept)
}

// WithoutColours returns the sub-necklace with every bead of the given colours removed.
func (nk *Necklace) WithoutColours(colours ...string) *Necklace {
	set := make(map[string]struct{}, len(colours))
	for _, c := range colours {
		set[c] = struct{}{}
	}
	return nk.Remove(func(_ int, c string) bool {
		_, hit := set[c]
		return hit
	})
}

// Trimmed returns the necklace made of the reduced string (one bead per component).
func (nk *Necklace) Trimmed() *Necklace { return New(nk.reduced) }

// IsCompact reports whether every colour is a single ASCII letter, i.e. whether
// String renders the compact encoding.
func (nk *Necklace) IsCompact() bool {
	for _, c := range nk.colours {
		if len(c) != 1 || !isASCIILetter(rune(c[0])) {
			return false
		}
	}
	return true
}

// String renders the compact form for letter necklaces and comma-separated tokens otherwise.
func (nk *Necklace) String() string {
	if nk.IsCompact() {
		return strings.Join(nk.beads, "")
	}
	return strings.Join(nk.beads, ",")
}

// Beads returns a copy of the bead sequence.
func (nk *Necklace) Beads() []string { return append([]string(nil), nk.beads...) }

// Bead returns the colour at position i.
func (nk *Necklace) Bead(i int) string { return nk.beads[i] }

// Len returns N, the number of beads.
func (nk *Necklace) Len() int { return len(nk.beads) }

// Size returns the length of the reduced string (number of components).
func (nk *Necklace) Size() int { return len(nk.reduced) }

// NumColours returns n, the number of distinct colours.
func (nk *Necklace) NumColours() int { return len(nk.colours) }

// ReducedString returns a copy of the reduced string.
func (nk *Necklace) ReducedString() []string { return append([]string(nil), nk.reduced...) }

// Colours returns the colours in first-occurrence order.
func (nk *Necklace) Colours() []string { return append([]string(nil), nk.colours...) }

// HasColour reports whether c occurs in the necklace.
func (nk *Necklace) HasColour(c string) bool {
	_, ok := nk.typeIndex[c]
	return ok
}

// TypeIndex returns the first-occurrence rank of c, or -1 if c does not occur.
func (nk *Necklace) TypeIndex(c string) int {
	if r, ok := nk.typeIndex[c]; ok {
		return r
	}
	return -1
}

// BeadIndices returns the bead positions of colour c in increasing order.
func (nk *Necklace) BeadIndices(c string) []int { return append([]int(nil), nk.beadIdx[c]...) }

// Total returns the number of beads of colour c.
func (nk *Necklace) Total(c string) int { return len(nk.beadIdx[c]) }

// ComponentOccurrences returns the component indices of colour c in increasing order.
func (nk *Necklace) ComponentOccurrences(c string) []int {
	return append([]int(nil), nk.compOcc[c]...)
}

// Components returns the number of components (maximal runs) of colour c.
func (nk *Necklace) Components(c string) int { return len(nk.compOcc[c]) }

// ComponentBeads returns the bead positions of component i.
func (nk *Necklace) ComponentBeads(i int) []int { return append([]int(nil), nk.compBeads[i]...) }

// ComponentLen returns the number of beads of component i.
func (nk *Necklace) ComponentLen(i int) int { return len(nk.compBeads[i]) }

// ComponentStart returns the first bead position of component i.
func (nk *Necklace) ComponentStart(i int) int { return nk.compStart[i] }

// ComponentColour returns the colour of component i.
func (nk *Necklace) ComponentColour(i int) string { return nk.reduced[i] }

// WalkGraph returns the walk multigraph. The graph is shared; do not mutate it.
func (nk *Necklace) WalkGraph() *core.Graph { return nk.walk }
