package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Jorgelet/bingo-analisis/internal/dict"
	"github.com/Jorgelet/bingo-analisis/internal/randutil"
)

func testRNG(seed int64) *rand.Rand {
	return randutil.New(seed)
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// testBanks returns banks covering all four languages with small word sets.
func testBanks() Banks {
	return Banks{
		Spanish:    dict.New([]string{"casa", "perro", "gato", "auto", "barco", "sol", "luna", "mar"}),
		English:    dict.New([]string{"house", "dog", "cat", "car", "boat", "sun", "moon", "sea"}),
		Portuguese: dict.New([]string{"casa", "cachorro", "gato", "carro", "barco", "sol", "lua", "mar"}),
		Dutch:      dict.New([]string{"huis", "hond", "kat", "auto", "boot", "zon", "maan", "zee"}),
	}
}
