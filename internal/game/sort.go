package game

// SortWords returns a new slice with the same words in non-decreasing
// byte-wise lexicographic order. Sorting is a top-down merge sort: split at
// the midpoint, sort each half, merge taking the smaller front element and
// preferring the left half on ties, which keeps the sort stable. The input
// slice is never mutated.
//
// Cards are sorted exactly once at creation; the sorted order is the
// precondition for binary-search marking.
func SortWords(words []string) []string {
	if len(words) <= 1 {
		out := make([]string, len(words))
		copy(out, words)
		return out
	}

	mid := len(words) / 2
	left := SortWords(words[:mid])
	right := SortWords(words[mid:])

	return mergeWords(left, right)
}

func mergeWords(left, right []string) []string {
	merged := make([]string, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
