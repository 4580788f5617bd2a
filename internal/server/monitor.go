package server

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jorgelet/bingo-analisis/internal/game"
)

// GameMonitor receives session lifecycle and game events for observation.
// Implementations must not block; they run on the caller's goroutine.
type GameMonitor interface {
	OnSessionCreated(sessionID string)
	OnSessionEvent(sessionID string, event game.GameEvent)
	OnSessionExpired(sessionID string)
}

// NullGameMonitor discards everything.
type NullGameMonitor struct{}

func (NullGameMonitor) OnSessionCreated(string)               {}
func (NullGameMonitor) OnSessionEvent(string, game.GameEvent) {}
func (NullGameMonitor) OnSessionExpired(string)               {}

// PrettyMonitor writes a colored one-line summary of each event. Used when
// the server runs in a terminal so the operator can watch sessions live.
type PrettyMonitor struct {
	out io.Writer

	sessionStyle lipgloss.Style
	hitStyle     lipgloss.Style
	missStyle    lipgloss.Style
	winStyle     lipgloss.Style
	infoStyle    lipgloss.Style
}

// NewPrettyMonitor creates a monitor writing to out.
func NewPrettyMonitor(out io.Writer) *PrettyMonitor {
	return &PrettyMonitor{
		out:          out,
		sessionStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		hitStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		missStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		winStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
	}
}

func (p *PrettyMonitor) OnSessionCreated(sessionID string) {
	p.line(sessionID, p.infoStyle.Render("session created"))
}

func (p *PrettyMonitor) OnSessionExpired(sessionID string) {
	p.line(sessionID, p.sessionStyle.Render("session expired"))
}

func (p *PrettyMonitor) OnSessionEvent(sessionID string, event game.GameEvent) {
	switch e := event.(type) {
	case game.CardsLoadedEvent:
		p.line(sessionID, p.infoStyle.Render(fmt.Sprintf("loaded %d/%d cards", len(e.Accepted), e.Total)))
	case game.GameStartEvent:
		codes := make([]string, len(e.Rounds))
		for i, lang := range e.Rounds {
			codes[i] = string(lang)
		}
		p.line(sessionID, p.infoStyle.Render("game started: "+strings.Join(codes, " → ")))
	case game.WordCallEvent:
		if e.Found {
			p.line(sessionID, p.hitStyle.Render(fmt.Sprintf("hit %q (%s)", e.Word, e.Language)))
		} else {
			p.line(sessionID, p.missStyle.Render(fmt.Sprintf("miss %q (%s)", e.Word, e.Language)))
		}
	case game.RoundWonEvent:
		p.line(sessionID, p.winStyle.Render(fmt.Sprintf("round %d (%s) won by %d card(s)", e.Round+1, e.Language, len(e.Winners))))
	case game.RoundAdvanceEvent:
		p.line(sessionID, p.infoStyle.Render(fmt.Sprintf("round %d (%s) begins", e.Round+1, e.Language)))
	case game.GameFinishEvent:
		p.line(sessionID, p.winStyle.Render("game finished"))
	}
}

func (p *PrettyMonitor) line(sessionID, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.sessionStyle.Render("["+shortID(sessionID)+"]"), msg)
}
