package oracle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/linstald/master-thesis-scripts/compcut"
	"github.com/linstald/master-thesis-scripts/generator"
	"github.com/linstald/master-thesis-scripts/necklace"
	"github.com/linstald/master-thesis-scripts/oracle"
)

// extends reports whether every component of comps can be augmented to alpha
// while the other colours are cut at the start of their components.
func extends(t *testing.T, nk *necklace.Necklace, comps []int, alpha necklace.Alpha) bool {
	t.Helper()
	for _, c := range comps {
		var partial []int
		for _, o := range comps {
			if o != c {
				partial = append(partial, nk.ComponentStart(o))
			}
		}
		b, err := nk.Augment(partial, c, alpha[nk.ComponentColour(c)])
		require.NoError(t, err)
		if b == necklace.NotFound {
			return false
		}
	}
	return true
}

func TestComponentCuts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pb := oracle.New()

	for n := oracle.MinColours; n <= 12; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			beads, err := generator.RandomIrreducible(n, generator.WithSeed(seed))
			require.NoError(t, err)
			nk := necklace.New(generator.Pump(beads, generator.WithRand(rng)))

			alpha := make(necklace.Alpha)
			for _, c := range nk.Colours() {
				alpha[c] = 1 + rng.Intn(nk.Total(c))
			}

			cuts, err := pb.ComponentCuts(nk, alpha)
			require.NoError(t, err, "%s", nk)
			assert.NotEqual(t, cuts[0], cuts[1])

			for _, cut := range cuts {
				require.Len(t, cut, n)
				seen := make(map[string]bool)
				for _, comp := range cut {
					seen[nk.ComponentColour(comp)] = true
				}
				assert.Len(t, seen, n, "one component per colour in %v", cut)
			}

			// one colouring yields the alpha cut, the other the negalpha cut
			neg := nk.NegAlpha(alpha)
			first := extends(t, nk, cuts[0], alpha) && extends(t, nk, cuts[1], neg)
			second := extends(t, nk, cuts[1], alpha) && extends(t, nk, cuts[0], neg)
			assert.True(t, first || second, "%s %v: %v", nk, alpha, cuts)
		}
	}
}

func TestComponentCutsErrors(t *testing.T) {
	pb := oracle.New()

	nk := necklace.Parse("abacbdcd")
	_, err := pb.ComponentCuts(nk, necklace.UnitAlpha(nk))
	assert.ErrorIs(t, err, oracle.ErrTooSmall)

	nk = necklace.Parse("abcdefg")
	_, err = pb.ComponentCuts(nk, necklace.UnitAlpha(nk))
	assert.ErrorIs(t, err, compcut.ErrNotIrreducible)

	beads, err := generator.RandomIrreducible(6)
	require.NoError(t, err)
	nk = necklace.New(beads)
	_, err = pb.ComponentCuts(nk, necklace.Alpha{})
	assert.ErrorIs(t, err, necklace.ErrInvalidAlpha)
}

func TestComponentCutsLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	pb := oracle.New(oracle.WithLogger(zap.New(core)))

	beads, err := generator.RandomIrreducible(7)
	require.NoError(t, err)
	nk := necklace.New(beads)
	_, err = pb.ComponentCuts(nk, necklace.UnitAlpha(nk))
	require.NoError(t, err)

	entries := logs.FilterMessage("colouring program").All()
	require.Len(t, entries, 1)
	// one edge per adjacency of the reduced string, plus two through ∞
	assert.EqualValues(t, nk.Size()+1, entries[0].ContextMap()["edges"])
}
