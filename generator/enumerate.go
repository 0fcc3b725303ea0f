package generator

import (
	"iter"
	"strings"

	"github.com/linstald/master-thesis-scripts/necklace"
)

// Enumerate yields every trimmed necklace over alphabet in which each colour
// first occurs after all colours preceding it in alphabet, up to the length
// bound of (n-1+sep)-separable necklaces, ceil(3n/2 + 2·sep) beads. Every
// necklace is yielded once.
//
// The necklaces over alphabet[:n-1] are generated first (with sep 1); each is
// extended by the new colour and then by every suffix of up to the remaining
// length, shortest suffixes first.
func Enumerate(alphabet []string, sep int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		seen := make(map[string]struct{})
		enumerate(alphabet, sep, func(nk []string) bool {
			key := strings.Join(nk, ",")
			if _, dup := seen[key]; dup {
				return true
			}
			seen[key] = struct{}{}
			return yield(nk)
		})
	}
}

// enumerate reports false once yield asked to stop.
func enumerate(alphabet []string, sep int, yield func([]string) bool) bool {
	n := len(alphabet)
	switch n {
	case 0:
		return true
	case 1:
		return yield([]string{alphabet[0]})
	}

	maxLen := (3*n + 4*sep + 1) / 2
	return enumerate(alphabet[:n-1], 1, func(small []string) bool {
		level := [][]string{appendToken(small, alphabet[n-1])}
		for k := maxLen - len(small) - 1; k > 0; k-- {
			next := make([][]string, 0, len(level)*n)
			for _, mod := range level {
				if !yield(necklace.Trim(mod)) {
					return false
				}
				for _, x := range alphabet {
					next = append(next, appendToken(mod, x))
				}
			}
			level = next
		}
		return true
	})
}

func appendToken(tokens []string, t string) []string {
	out := make([]string, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, t)
}
