package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgelet/bingo-analisis/internal/dict"
	"github.com/Jorgelet/bingo-analisis/internal/game"
)

func testBanks() game.Banks {
	return game.Banks{
		game.Spanish: dict.New([]string{"casa", "perro", "gato", "sol", "luna", "mar"}),
		game.English: dict.New([]string{"house", "dog", "cat"}),
	}
}

func TestFormatCardsGroupsByOwner(t *testing.T) {
	cards := []*game.Card{
		game.NewCard("SP1001", "J1", game.Spanish, []string{"casa", "gato", "perro"}),
		game.NewCard("EN2001", "J1", game.English, []string{"cat", "dog", "house"}),
		game.NewCard("SP1002", "J2", game.Spanish, []string{"luna", "mar", "sol"}),
	}

	got := FormatCards(cards)
	want := "J1\nSP1001 casa gato perro\nEN2001 cat dog house\nJ2\nSP1002 luna mar sol\n"
	assert.Equal(t, want, got)
}

func TestFormatCardsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatCards(nil))
}

func TestWriteCardFileRoundTrips(t *testing.T) {
	banks := testBanks()
	text := "J1\nSP1001 perro casa gato\nJ2\nEN2001 house dog cat\n"

	cards, parseErrors := game.ParseCards(text, banks, nil)
	require.Empty(t, parseErrors)
	require.Len(t, cards, 2)

	path := filepath.Join(t.TempDir(), "normalized.txt")
	require.NoError(t, WriteCardFile(path, cards))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	reparsed, parseErrors := game.ParseCards(string(content), banks, nil)
	require.Empty(t, parseErrors)
	require.Len(t, reparsed, 2)

	for i := range cards {
		assert.Equal(t, cards[i].ID, reparsed[i].ID)
		assert.Equal(t, cards[i].Owner, reparsed[i].Owner)
		assert.Equal(t, cards[i].Words, reparsed[i].Words)
	}
}

func TestWriteCardFileOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new one"), 0o644))

	cards := []*game.Card{
		game.NewCard("SP1001", "J1", game.Spanish, []string{"casa"}),
	}
	require.NoError(t, WriteCardFile(path, cards))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "J1\nSP1001 casa\n", string(content))
}
