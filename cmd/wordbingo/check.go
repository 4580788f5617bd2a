package main

import (
	"fmt"
	"os"

	"github.com/Jorgelet/bingo-analisis/cmd/wordbingo/shared"
	"github.com/Jorgelet/bingo-analisis/internal/dict"
	"github.com/Jorgelet/bingo-analisis/internal/export"
	"github.com/Jorgelet/bingo-analisis/internal/game"
	"github.com/Jorgelet/bingo-analisis/internal/server"
)

// CheckCmd validates a card file offline, without starting a server. Useful
// for vetting classroom card dumps before game day.
type CheckCmd struct {
	File   string `arg:"" help:"Card file to validate"`
	Config string `kong:"default='wordbingo.hcl',help='Path to HCL configuration file'"`
	Out    string `kong:"help='Write the accepted cards back out as a normalized card file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *CheckCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	config, err := server.LoadServerConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx := shared.SetupSignalHandler()
	dicts, err := dict.LoadAll(ctx, config.BankPaths())
	if err != nil {
		return fmt.Errorf("failed to load word banks: %w", err)
	}

	banks := make(game.Banks, len(dicts))
	for code, d := range dicts {
		lang, ok := game.ParseLanguage(code)
		if !ok {
			return fmt.Errorf("unknown language code %q", code)
		}
		banks[lang] = d
	}

	content, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	cards, parseErrors := game.ParseCards(string(content), banks, nil)

	for _, card := range cards {
		logger.Info("Card accepted",
			"id", card.ID,
			"owner", card.Owner,
			"language", card.Language,
			"words", len(card.Words))
	}
	for _, e := range parseErrors {
		logger.Error("Card rejected", "reason", e)
	}

	if c.Out != "" {
		if err := export.WriteCardFile(c.Out, cards); err != nil {
			return fmt.Errorf("failed to write normalized cards: %w", err)
		}
		logger.Info("Normalized card file written", "path", c.Out, "cards", len(cards))
	}

	fmt.Printf("%d card(s) accepted, %d line(s) rejected\n", len(cards), len(parseErrors))
	if len(parseErrors) > 0 {
		return fmt.Errorf("%d invalid line(s) in %s", len(parseErrors), c.File)
	}
	return nil
}
