package game

import "sort"

// CheckWinners returns the cards that have marked every word, in ascending
// order of words-remaining at scan time. Cards that already won are never
// candidates.
//
// Candidates are sorted (stably, so ties keep input order) by Remaining()
// and scanned from the front; the first incomplete candidate ends the scan,
// because everything after it needs at least as many words. The early exit
// is exact, not a heuristic: the sort key is monotonic with completion
// distance.
func CheckWinners(cards []*Card) []*Card {
	candidates := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if !c.HasWon {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Remaining() < candidates[j].Remaining()
	})

	var winners []*Card
	for _, c := range candidates {
		if !c.Complete() {
			break
		}
		winners = append(winners, c)
	}

	return winners
}
