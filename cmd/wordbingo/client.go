package main

import (
	"strings"

	"github.com/Jorgelet/bingo-analisis/cmd/wordbingo/shared"
	"github.com/Jorgelet/bingo-analisis/internal/tui"
)

// ClientCmd connects an operator console to a running server
type ClientCmd struct {
	Server string `kong:"default='ws://localhost:8080/ws',help='WebSocket server URL'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ClientCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	return tui.Run(strings.TrimSpace(c.Server), logger)
}
