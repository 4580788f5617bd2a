// Package export writes validated cards back out as a normalized card file:
// owner lines followed by card lines with words in sorted order. The output
// round-trips through the parser, so a normalized dump is a clean snapshot
// of what the session actually accepted.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jorgelet/bingo-analisis/internal/game"
)

// FormatCards renders cards in the card file format, grouped by owner in
// first-seen order.
func FormatCards(cards []*game.Card) string {
	var b strings.Builder
	currentOwner := ""

	for _, card := range cards {
		if card.Owner != currentOwner {
			currentOwner = card.Owner
			b.WriteString(currentOwner)
			b.WriteString("\n")
		}
		b.WriteString(card.ID)
		for _, w := range card.Words {
			b.WriteString(" ")
			b.WriteString(w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteCardFile writes a normalized card file atomically: the data lands in
// a temp file in the target directory and is renamed into place, so readers
// see either the old file or the complete new one, never a partial write.
func WriteCardFile(filename string, cards []*game.Card) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.WriteString(FormatCards(cards)); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Rename within one directory is atomic on POSIX filesystems.
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
