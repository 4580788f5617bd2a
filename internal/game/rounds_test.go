package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleRoundsIsPermutation(t *testing.T) {
	rng := testRNG(1)
	langs := []Language{Spanish, English, Portuguese, Dutch}

	for trial := 0; trial < 100; trial++ {
		rounds := ShuffleRounds(langs, rng)
		require.Len(t, rounds, len(langs))

		seen := make(map[Language]int)
		for _, l := range rounds {
			seen[l]++
		}
		for _, l := range langs {
			assert.Equal(t, 1, seen[l], "language %s must appear exactly once", l)
		}
	}
}

func TestShuffleRoundsDoesNotMutateInput(t *testing.T) {
	langs := []Language{Spanish, English, Portuguese}
	_ = ShuffleRounds(langs, testRNG(2))
	assert.Equal(t, []Language{Spanish, English, Portuguese}, langs)
}

func TestShuffleRoundsSmallInputs(t *testing.T) {
	rng := testRNG(3)
	assert.Empty(t, ShuffleRounds(nil, rng))
	assert.Equal(t, []Language{English}, ShuffleRounds([]Language{English}, rng))
}

func TestShuffleRoundsDeterministicWithSeed(t *testing.T) {
	langs := []Language{Spanish, English, Portuguese, Dutch}
	a := ShuffleRounds(langs, testRNG(42))
	b := ShuffleRounds(langs, testRNG(42))
	assert.Equal(t, a, b)
}

func TestShuffleRoundsApproachesUniform(t *testing.T) {
	rng := testRNG(99)
	langs := []Language{Spanish, English, Portuguese}

	const trials = 60000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(ShuffleRounds(langs, rng))]++
	}

	require.Len(t, counts, 6, "all 3! permutations must occur")

	// Each permutation should land near trials/6; 5% tolerance is far looser
	// than the expected sampling noise at this trial count.
	expected := float64(trials) / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, float64(n), expected*0.05, "permutation %s", perm)
	}
}
