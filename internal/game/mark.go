package game

// MarkWord marks the called word on every card of the active language that
// has not already won. It reports whether the word was found on at least one
// card. Cards of other languages and cards with HasWon set are untouched.
//
// Winner detection is a separate step; see CheckWinners.
func MarkWord(cards []*Card, active Language, word string) bool {
	found := false
	for _, c := range cards {
		if c.Language != active || c.HasWon {
			continue
		}
		if c.mark(word) {
			found = true
		}
	}
	return found
}

// mark binary-searches the card's sorted word list for the word and marks
// it. Re-marking an already-marked word is a no-op: HitCount only advances
// on the first hit. Returns whether the word is on the card at all.
func (c *Card) mark(word string) bool {
	low, high := 0, len(c.Words)-1

	for low <= high {
		mid := (low + high) / 2

		switch {
		case c.Words[mid] == word:
			if !c.Marked[mid] {
				c.Marked[mid] = true
				c.HitCount++
			}
			return true
		case c.Words[mid] < word:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return false
}
