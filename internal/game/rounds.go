package game

import rand "math/rand/v2"

// ShuffleRounds returns the play order for the game: a uniform random
// permutation of the given languages, one round per language. The input is
// copied, never reordered in place, and card state is not consulted.
//
// The shuffle is Fisher-Yates, walking from the last index down and swapping
// with a uniformly chosen earlier-or-equal position, so every permutation is
// equally likely given an unbiased rng.
func ShuffleRounds(languages []Language, rng *rand.Rand) []Language {
	rounds := make([]Language, len(languages))
	copy(rounds, languages)

	for i := len(rounds) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		rounds[i], rounds[j] = rounds[j], rounds[i]
	}

	return rounds
}

// LanguagesPresent returns the distinct languages among the given cards,
// in first-seen order.
func LanguagesPresent(cards []*Card) []Language {
	seen := make(map[Language]struct{}, 4)
	var langs []Language
	for _, c := range cards {
		if _, ok := seen[c.Language]; !ok {
			seen[c.Language] = struct{}{}
			langs = append(langs, c.Language)
		}
	}
	return langs
}
