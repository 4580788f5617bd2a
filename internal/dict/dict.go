// Package dict provides immutable word sets used to validate bingo cards
// and called words. A Dictionary only answers membership queries; it imposes
// no ordering on its contents.
package dict

// Dictionary is an immutable set of known words for one language.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a Dictionary from the given words. Duplicates collapse.
func New(words []string) *Dictionary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return &Dictionary{words: set}
}

// Contains reports whether the word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns the contents as a slice, in no particular order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	return out
}
