package necklace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linstald/master-thesis-scripts/necklace"
)

func TestParseDerivedStructures(t *testing.T) {
	nk := necklace.Parse("aaab-bc dcbbaa")

	require.Equal(t, "aaabbcdcbbaa", nk.String())
	assert.Equal(t, 12, nk.Len())
	assert.Equal(t, 4, nk.NumColours())
	assert.Equal(t, []string{"a", "b", "c", "d", "c", "b", "a"}, nk.ReducedString())
	assert.Equal(t, 7, nk.Size())
	assert.Equal(t, []string{"a", "b", "c", "d"}, nk.Colours())
	assert.Equal(t, 2, nk.TypeIndex("c"))
	assert.Equal(t, -1, nk.TypeIndex("z"))
	assert.Equal(t, []int{0, 1, 2, 10, 11}, nk.BeadIndices("a"))
	assert.Equal(t, []int{0, 6}, nk.ComponentOccurrences("a"))
	assert.Equal(t, []int{3, 4}, nk.ComponentBeads(1))
	assert.Equal(t, 8, nk.ComponentStart(5))
	assert.Equal(t, "d", nk.ComponentColour(3))
	assert.True(t, nk.IsCompact())
}

func TestConstructionInvariants(t *testing.T) {
	for _, s := range []string{"", "a", "aabbccaabbcc", "abcdeafghfiace", "aaabbcdcbbaa", "abab"} {
		nk := necklace.Parse(s)

		var sum int
		for i := 0; i < nk.Size(); i++ {
			sum += nk.ComponentLen(i)
		}
		assert.Equal(t, nk.Len(), sum, "components must cover %q", s)

		for _, c := range nk.Colours() {
			var perColour int
			for _, comp := range nk.ComponentOccurrences(c) {
				perColour += nk.ComponentLen(comp)
				assert.Equal(t, c, nk.ComponentColour(comp))
			}
			assert.Equal(t, nk.Total(c), perColour, "colour %q of %q", c, s)
		}
		assert.Equal(t, max(nk.Size()-1, 0), nk.WalkGraph().EdgeCount())
	}
}

func TestGeneralTokens(t *testing.T) {
	nk := necklace.ParseTokens("x1, x1 ,y,, x2")
	assert.Equal(t, []string{"x1", "x1", "y", "x2"}, nk.Beads())
	assert.False(t, nk.IsCompact())
	assert.Equal(t, "x1,x1,y,x2", nk.String())

	ints := necklace.FromInts([]int{0, 0, 1, 2, 1})
	assert.Equal(t, []string{"0", "1", "2", "1"}, ints.ReducedString())
	assert.Equal(t, "0,1,2,1", ints.Trimmed().String())
	assert.Equal(t, "0,1,2,1", necklace.ParseTokens(ints.String()).Trimmed().String())
}

func TestNewDropsEmptyTokens(t *testing.T) {
	nk := necklace.New([]string{"a", "", "b", "", "a"})
	assert.Equal(t, []string{"a", "b", "a"}, nk.Beads())
	assert.Equal(t, []string{"a", "b"}, nk.Colours())
	assert.Equal(t, 2, nk.WalkGraph().EdgeCount())
	assert.Equal(t, 2, nk.WalkGraph().VertexCount())
}

func TestParseIgnoresNonLetters(t *testing.T) {
	tests := []struct {
		in    string
		beads string
	}{
		{"aa,bb", "aabb"},
		{"3,abcab", "abcab"},
		{"ab, ba", "abba"},
	}
	for _, tt := range tests {
		nk := necklace.Parse(tt.in)
		assert.Equal(t, tt.beads, nk.String(), tt.in)
		assert.Equal(t, necklace.Tokens(tt.beads), nk.Beads(), tt.in)
	}

	assert.Zero(t, necklace.Parse("0,0,1").Len())
	assert.Equal(t, "ab", necklace.TrimString("aa,bb"))
	assert.Equal(t, []string{"aa", "bb"}, necklace.ParseTokens("aa,bb").Beads())
}

func TestTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "a"}, necklace.Trim([]string{"a", "a", "b", "a", "a"}))
	assert.Equal(t, "abcab", necklace.TrimString("aab  bc1caab"))
	assert.Empty(t, necklace.Trim(nil))
}

func TestRemoveBuildsFreshNecklace(t *testing.T) {
	nk := necklace.Parse("abcabc")
	sub := nk.WithoutColours("b")
	assert.Equal(t, "acac", sub.String())
	assert.Equal(t, "abcabc", nk.String(), "parent must stay untouched")

	odd := nk.Remove(func(pos int, _ string) bool { return pos%2 == 1 })
	assert.Equal(t, "acb", odd.String())
}

func TestShapePredicates(t *testing.T) {
	tests := []struct {
		s           string
		neighbours  bool
		bicomp      bool
		embracing   bool
		irreducible bool
	}{
		{"abacbdcd", false, true, false, true},
		{"abcab", false, true, false, true},
		{"abab", false, true, false, true},
		{"ababa", false, false, true, false},
		{"abcda", true, true, true, false},
		{"abca", true, true, true, false},
	}
	for _, tc := range tests {
		nk := necklace.Parse(tc.s)
		_, ok := nk.NeighbouringIntervals()
		assert.Equal(t, tc.neighbours, ok, "neighbouring intervals of %q", tc.s)
		assert.Equal(t, tc.bicomp, nk.HasOnlyBicomponents(), "bicomponents of %q", tc.s)
		assert.Equal(t, tc.embracing, nk.HasInsideEmbracing(), "embracing of %q", tc.s)
		assert.Equal(t, tc.irreducible, nk.IsIrreducible(), "irreducible %q", tc.s)
	}

	assert.Equal(t, []string{"a"}, necklace.Parse("ababa").MultiComponentColours())
	assert.False(t, necklace.Parse("").IsIrreducible())
}

func TestSeparability(t *testing.T) {
	sep, err := necklace.Parse("abcab").Separability()
	require.NoError(t, err)
	assert.Equal(t, 3, sep)

	ok, err := necklace.Parse("abcab").IsSeparable()
	require.NoError(t, err)
	assert.True(t, ok)

	// walk graph a-b four times: max cut 4 > n=2
	ok, err = necklace.Parse("ababa").IsSeparable()
	require.NoError(t, err)
	assert.False(t, ok)

	sep, err = necklace.Parse("").Separability()
	require.NoError(t, err)
	assert.Zero(t, sep)
}
