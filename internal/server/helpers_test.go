package server

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Jorgelet/bingo-analisis/internal/dict"
	"github.com/Jorgelet/bingo-analisis/internal/game"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testBanks() game.Banks {
	return game.Banks{
		game.Spanish:    dict.New([]string{"casa", "perro", "gato", "auto", "barco", "sol", "luna", "mar"}),
		game.English:    dict.New([]string{"house", "dog", "cat", "car", "boat", "sun", "moon", "sea"}),
		game.Portuguese: dict.New([]string{"casa", "cachorro", "gato", "carro", "barco", "sol", "lua", "mar"}),
		game.Dutch:      dict.New([]string{"huis", "hond", "kat", "auto", "boot", "zon", "maan", "zee"}),
	}
}

const testCardText = "J1\nSP1001 casa perro gato\nEN2001 house dog cat\nJ2\nSP1002 sol luna mar\n"
