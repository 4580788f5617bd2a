package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgelet/bingo-analisis/internal/dict"
)

func TestParseCardsAcceptsValidCard(t *testing.T) {
	cards, errs := ParseCards("J1\nSP123456 casa perro", testBanks(), nil)

	require.Empty(t, errs)
	require.Len(t, cards, 1)

	c := cards[0]
	assert.Equal(t, "SP123456", c.ID)
	assert.Equal(t, "J1", c.Owner)
	assert.Equal(t, Spanish, c.Language)
	assert.Equal(t, []string{"casa", "perro"}, c.Words)
	assert.Equal(t, []bool{false, false}, c.Marked)
	assert.Equal(t, 0, c.HitCount)
	assert.Equal(t, 2, c.WordLimit)
	assert.False(t, c.HasWon)
}

func TestParseCardsSortsWords(t *testing.T) {
	cards, errs := ParseCards("J1\nSP123456 perro casa auto", testBanks(), nil)

	require.Empty(t, errs)
	require.Len(t, cards, 1)
	assert.Equal(t, []string{"auto", "casa", "perro"}, cards[0].Words)
}

func TestParseCardsOwnerContext(t *testing.T) {
	input := "J1\nSP111111 casa\nJ2\nSP222222 perro\nEN111111 dog"
	cards, errs := ParseCards(input, testBanks(), nil)

	require.Empty(t, errs)
	require.Len(t, cards, 3)
	assert.Equal(t, "J1", cards[0].Owner)
	assert.Equal(t, "J2", cards[1].Owner)
	assert.Equal(t, "J2", cards[2].Owner, "owner carries down until the next owner line")
}

func TestParseCardsLineErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"card before any owner", "SP123456 casa", "without an assigned player"},
		{"short id", "J1\nSP casa perro", "too short"},
		{"unknown language", "J1\nXX123456 casa", "unknown language"},
		{"word not in bank", "J1\nSP999999 casa pizza", `words not in the SP bank [pizza]`},
		{"all invalid words listed", "J1\nSP999999 pizza sushi", "[pizza, sushi]"},
		{"repeated words", "J1\nSP999999 casa casa perro", "repeated words on card [casa]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cards, errs := ParseCards(test.input, testBanks(), nil)
			assert.Empty(t, cards)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], test.wantErr)
		})
	}
}

func TestParseCardsWordLimitPerLanguage(t *testing.T) {
	// EN allows 14 words; 15 must be rejected.
	words := make([]string, 15)
	bankWords := make([]string, 15)
	for i := range words {
		words[i] = fmt.Sprintf("a%d", i+1)
		bankWords[i] = words[i]
	}
	banks := Banks{English: dict.New(bankWords)}

	cards, errs := ParseCards("J1\nEN111111 "+strings.Join(words, " "), banks, nil)

	assert.Empty(t, cards)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "limit of 14 words")
	assert.Contains(t, errs[0], "EN111111")
}

func TestParseCardsMissingBankFailsClosed(t *testing.T) {
	banks := Banks{Spanish: dict.New([]string{"casa"})}

	cards, errs := ParseCards("J1\nDT111111 huis", banks, nil)

	assert.Empty(t, cards)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no word bank loaded for DT")
}

func TestParseCardsEmptyBankFailsClosed(t *testing.T) {
	banks := Banks{Spanish: dict.New(nil)}

	cards, errs := ParseCards("J1\nSP111111 casa", banks, nil)

	assert.Empty(t, cards)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no word bank loaded for SP")
}

func TestParseCardsSkipsBareIDLineSilently(t *testing.T) {
	cards, errs := ParseCards("J1\nSP123456\nSP654321 casa", testBanks(), nil)

	assert.Empty(t, errs)
	require.Len(t, cards, 1)
	assert.Equal(t, "SP654321", cards[0].ID)
}

func TestParseCardsSkipsBlankLines(t *testing.T) {
	cards, errs := ParseCards("\nJ1\n\n  \nSP123456 casa\n\n", testBanks(), nil)

	assert.Empty(t, errs)
	assert.Len(t, cards, 1)
}

func TestParseCardsDuplicateIDs(t *testing.T) {
	t.Run("within one load", func(t *testing.T) {
		cards, errs := ParseCards("J1\nSP111111 casa\nSP111111 perro", testBanks(), nil)

		require.Len(t, cards, 1)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "duplicated in this input")
		assert.NotContains(t, errs[0], "previously loaded")
	})

	t.Run("across loads", func(t *testing.T) {
		known := make(map[string]struct{})
		first, errs := ParseCards("J1\nSP111111 casa", testBanks(), known)
		require.Len(t, first, 1)
		require.Empty(t, errs)

		second, errs := ParseCards("J2\nSP111111 perro", testBanks(), known)
		assert.Empty(t, second)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "already exists in previously loaded cards")
	})
}

func TestParseCardsErrorRecovery(t *testing.T) {
	// Bad lines must not stop later lines from parsing.
	input := strings.Join([]string{
		"J1",
		"XX111111 casa",     // unknown language
		"SP111111 pizza",    // invalid word
		"SP222222 casa sol", // fine
	}, "\n")

	cards, errs := ParseCards(input, testBanks(), nil)

	require.Len(t, cards, 1)
	assert.Equal(t, "SP222222", cards[0].ID)
	assert.Len(t, errs, 2)
}

func TestParseCardsErrorsCarryLineNumbers(t *testing.T) {
	_, errs := ParseCards("J1\nSP111111 casa\nXX000000 casa", testBanks(), nil)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "line 3:")
}

func TestIsOwnerLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"J1", true},
		{"J12345678", true},
		{"Jugador99", true},
		{"J", false},            // too short
		{"J123456789", false},   // too long
		{"J1 extra", false},     // whitespace
		{"K1", false},           // wrong prefix
		{"SP123456 casa", false},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			assert.Equal(t, test.want, isOwnerLine(test.line))
		})
	}
}
