package compcut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linstald/master-thesis-scripts/compcut"
	"github.com/linstald/master-thesis-scripts/core"
	"github.com/linstald/master-thesis-scripts/necklace"
)

func indices(es ...*core.Edge) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.Index
	}
	return out
}

func TestAllComponentCuts(t *testing.T) {
	cuts := compcut.All(necklace.Parse("abab"))
	assert.Equal(t, [][]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, cuts)

	// one cut per combination: 2·1·2 for a, c and b
	assert.Len(t, compcut.All(necklace.Parse("aabcaab")), 4)
	assert.Len(t, compcut.All(necklace.Parse("abcabc")), 8)
	assert.Nil(t, compcut.All(necklace.Parse("")))
	assert.Equal(t, [][]int{{0}}, compcut.All(necklace.Parse("aaa")))
}

func TestColourGraphEven(t *testing.T) {
	// components: aa b aaa c bb d cc ddd
	nk := necklace.Parse("aabaaacbbdccddd")
	require.True(t, nk.IsIrreducible())

	cg, err := compcut.NewColourGraph(nk)
	require.NoError(t, err)
	assert.Equal(t, "a", cg.First())
	assert.Equal(t, "d", cg.Last())
	assert.False(t, cg.HasVertex(compcut.Infinity))
	assert.Equal(t, 8, cg.EdgeCount())

	for _, v := range []string{"a", "b", "c", "d"} {
		deg, err := cg.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 4, deg, "degree of %s", v)
	}

	trav, err := cg.Traversals("a")
	require.NoError(t, err)
	require.Len(t, trav, 2)
	assert.Equal(t, []int{7, 0}, indices(trav[0][0], trav[0][1]))
	assert.Equal(t, []int{1, 2}, indices(trav[1][0], trav[1][1]))
	assert.Equal(t, 2, trav[0][0].WeightAt("a"))
	assert.Equal(t, 3, trav[1][0].WeightAt("a"))
	assert.Equal(t, 0, cg.Component("a", 0))
	assert.Equal(t, 2, cg.Component("a", 1))

	trav, err = cg.Traversals("d")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, indices(trav[0][0], trav[0][1]))
	assert.Equal(t, []int{6, 7}, indices(trav[1][0], trav[1][1]))
	assert.Equal(t, 3, trav[1][1].WeightAt("d"))
}

func TestColourGraphOdd(t *testing.T) {
	nk := necklace.Parse("abcdecae")
	require.True(t, nk.IsIrreducible())

	cg, err := compcut.NewColourGraph(nk)
	require.NoError(t, err)
	require.True(t, cg.HasVertex(compcut.Infinity))
	assert.Equal(t, 9, cg.EdgeCount())

	deg, err := cg.Degree(compcut.Infinity)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	trav, err := cg.Traversals(compcut.Infinity)
	require.NoError(t, err)
	require.Len(t, trav, 1)
	assert.Equal(t, []int{7, 8}, indices(trav[0][0], trav[0][1]))
	assert.Zero(t, trav[0][0].WeightAt(compcut.Infinity))

	trav, err = cg.Traversals("a")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 0}, indices(trav[0][0], trav[0][1]))
	assert.Equal(t, []int{5, 6}, indices(trav[1][0], trav[1][1]))

	trav, err = cg.Traversals("b")
	require.NoError(t, err)
	require.Len(t, trav, 1)
	assert.Equal(t, []int{0, 1}, indices(trav[0][0], trav[0][1]))

	trav, err = cg.Traversals("e")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, indices(trav[0][0], trav[0][1]))
	assert.Equal(t, []int{6, 8}, indices(trav[1][0], trav[1][1]))
}

func TestColourGraphRejectsReducible(t *testing.T) {
	for _, s := range []string{"", "abcba", "abca", "aba", "ababa"} {
		_, err := compcut.NewColourGraph(necklace.Parse(s))
		assert.ErrorIs(t, err, compcut.ErrNotIrreducible, s)
	}

	cg, err := compcut.NewColourGraph(necklace.Parse("abacbdcd"))
	require.NoError(t, err)
	_, err = cg.Traversals("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
