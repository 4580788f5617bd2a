package game

import "fmt"

// Language identifies one of the supported card languages. The set is
// closed: a card id's two-letter prefix must match one of these codes.
type Language string

const (
	Spanish    Language = "SP"
	English    Language = "EN"
	Portuguese Language = "PT"
	Dutch      Language = "DT"
)

// Languages returns all supported languages in declaration order.
func Languages() []Language {
	return []Language{Spanish, English, Portuguese, Dutch}
}

// ParseLanguage converts a two-letter code into a Language.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case Spanish, English, Portuguese, Dutch:
		return Language(code), true
	}
	return "", false
}

// WordLimit returns the maximum number of words a card of this language
// may carry.
func (l Language) WordLimit() int {
	switch l {
	case Spanish:
		return 24
	case English:
		return 14
	case Portuguese:
		return 20
	case Dutch:
		return 10
	}
	return 0
}

// String returns the two-letter language code.
func (l Language) String() string {
	return string(l)
}

// Card is a single bingo card: an id, an owning player, and a word list
// kept in ascending lexicographic order so that marking can binary-search
// it. Marked runs index-aligned with Words.
type Card struct {
	ID       string   `json:"id"`
	Owner    string   `json:"owner"`
	Language Language `json:"language"`
	Words    []string `json:"words"`
	Marked   []bool   `json:"marked"`
	HitCount int      `json:"hitCount"`

	// WordLimit is the number of words on the card at creation time, the
	// hit count required to win. Not the per-language maximum.
	WordLimit int  `json:"wordLimit"`
	HasWon    bool `json:"hasWon"`
}

// NewCard builds an unmarked card from an already-sorted word list.
func NewCard(id, owner string, lang Language, sortedWords []string) *Card {
	return &Card{
		ID:        id,
		Owner:     owner,
		Language:  lang,
		Words:     sortedWords,
		Marked:    make([]bool, len(sortedWords)),
		HitCount:  0,
		WordLimit: len(sortedWords),
		HasWon:    false,
	}
}

// Remaining returns how many words are still unmarked.
func (c *Card) Remaining() int {
	return c.WordLimit - c.HitCount
}

// Complete reports whether every word on the card has been marked.
func (c *Card) Complete() bool {
	return c.HitCount == c.WordLimit
}

func (c *Card) String() string {
	return fmt.Sprintf("%s[%s %s %d/%d]", c.ID, c.Owner, c.Language, c.HitCount, c.WordLimit)
}
