// Package compcut works at component granularity: a component cut picks one
// component index per colour, leaving the exact bead inside each component open.
//
// All enumerates every component cut (exponential, small n only). ColourGraph
// builds the colour graph of an irreducible necklace, which is the input of the
// optimisation oracle.
package compcut

import (
	"sort"
	"strconv"
	"strings"

	"github.com/linstald/master-thesis-scripts/necklace"
)

// All returns every component cut of nk: one component index per colour, each
// cut sorted ascending, without duplicates. Cuts are produced in cross-product
// order over the colours in first-occurrence order.
//
// Complexity: O(Π_c components(c) · n).
func All(nk *necklace.Necklace) [][]int {
	colours := nk.Colours()
	if len(colours) == 0 {
		return nil
	}

	combos := [][]int{{}}
	for _, c := range colours {
		occ := nk.ComponentOccurrences(c)
		next := make([][]int, 0, len(combos)*len(occ))
		for _, comb := range combos {
			for _, comp := range occ {
				ext := make([]int, len(comb)+1)
				copy(ext, comb)
				ext[len(comb)] = comp
				next = append(next, ext)
			}
		}
		combos = next
	}

	var (
		out  = make([][]int, 0, len(combos))
		seen = make(map[string]struct{}, len(combos))
	)
	for _, comb := range combos {
		sort.Ints(comb)
		key := cutKey(comb)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, comb)
	}

	return out
}

func cutKey(cut []int) string {
	var sb strings.Builder
	for i, c := range cut {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}
