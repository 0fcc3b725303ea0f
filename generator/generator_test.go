package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linstald/master-thesis-scripts/generator"
	"github.com/linstald/master-thesis-scripts/necklace"
)

func TestEulerianPathUsesEveryEdgeOnce(t *testing.T) {
	// square 0-1-2-3-0 with the diagonal 1-3: odd vertices 1 and 3
	adj := [][]int{{1, 3}, {0, 2, 3}, {1, 3}, {2, 0, 1}}

	for seed := int64(1); seed <= 20; seed++ {
		path := generator.EulerianPath(adj, 1, rand.New(rand.NewSource(seed)))
		require.Len(t, path, 6, "seed %d", seed)
		assert.Equal(t, 1, path[0])
		assert.Equal(t, 3, path[len(path)-1])

		used := make(map[[2]int]int)
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			used[[2]int{min(u, v), max(u, v)}]++
		}
		assert.Equal(t, map[[2]int]int{{0, 1}: 1, {1, 2}: 1, {2, 3}: 1, {0, 3}: 1, {1, 3}: 1}, used)
	}
}

func TestEulerianPathDoesNotMutateInput(t *testing.T) {
	adj := [][]int{{1}, {0}}
	path := generator.EulerianPath(adj, 0, nil)
	assert.Equal(t, []int{0, 1}, path)
	assert.Equal(t, [][]int{{1}, {0}}, adj)
}

func TestRandomIrreducible(t *testing.T) {
	for n := generator.MinColours; n <= 30; n++ {
		for seed := int64(0); seed < 5; seed++ {
			beads, err := generator.RandomIrreducible(n, generator.WithSeed(seed))
			require.NoError(t, err)

			nk := necklace.New(beads)
			assert.Equal(t, n, nk.NumColours(), "n=%d seed=%d", n, seed)
			assert.Equal(t, nk.Len(), nk.Size(), "one bead per component")
			assert.True(t, nk.IsIrreducible(), "n=%d seed=%d: %s", n, seed, nk)
		}
	}
}

func TestRandomIrreducibleNaming(t *testing.T) {
	beads, err := generator.RandomIrreducible(6)
	require.NoError(t, err)
	assert.Equal(t, "a", beads[0])
	assert.True(t, necklace.New(beads).IsCompact())

	beads, err = generator.RandomIrreducible(27)
	require.NoError(t, err)
	assert.Equal(t, "1", beads[0])
	nk := necklace.New(beads)
	assert.False(t, nk.IsCompact())
	assert.True(t, nk.HasColour("27"))
}

func TestRandomIrreducibleDeterministic(t *testing.T) {
	a, err := generator.RandomIrreducible(12, generator.WithSeed(42))
	require.NoError(t, err)
	b, err := generator.RandomIrreducible(12, generator.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// seed 0 falls back to the default seed
	c, err := generator.RandomIrreducible(12, generator.WithSeed(0))
	require.NoError(t, err)
	d, err := generator.RandomIrreducible(12)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestRandomIrreducibleTooFewColours(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2, 3} {
		_, err := generator.RandomIrreducible(n)
		assert.ErrorIs(t, err, generator.ErrTooFewColours, "n=%d", n)
	}
}

func TestPump(t *testing.T) {
	beads := necklace.Tokens("abcabdcd")
	pumped := generator.Pump(beads, generator.WithSeed(7))

	assert.Equal(t, beads, necklace.Trim(pumped))
	nk := necklace.New(pumped)
	for i := 0; i < nk.Size(); i++ {
		l := nk.ComponentLen(i)
		assert.True(t, l >= 1 && l <= 8, "component %d has %d beads", i, l)
	}

	assert.Empty(t, generator.Pump(nil))
}

func TestEnumerate(t *testing.T) {
	var got []string
	for nk := range generator.Enumerate([]string{"a", "b"}, 1) {
		got = append(got, necklace.New(nk).String())
	}
	assert.Equal(t, []string{"ab", "aba", "abab"}, got)

	var single [][]string
	for nk := range generator.Enumerate([]string{"x"}, 3) {
		single = append(single, nk)
	}
	assert.Equal(t, [][]string{{"x"}}, single)

	for range generator.Enumerate(nil, 1) {
		t.Fatal("empty alphabet yields nothing")
	}
}

func TestEnumerateCanonical(t *testing.T) {
	alphabet := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	count := 0
	for beads := range generator.Enumerate(alphabet, 1) {
		nk := necklace.New(beads)
		s := nk.String()
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
		count++

		assert.Equal(t, nk.Len(), nk.Size(), "%s is trimmed", s)
		assert.Equal(t, alphabet, nk.Colours(), "%s is canonical", s)
		assert.LessOrEqual(t, nk.Len(), 7)
		if count == 10 {
			break
		}
	}
	assert.Equal(t, 10, count)
}
