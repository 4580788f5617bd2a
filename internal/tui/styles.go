package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains all styling for the operator console
type Styles struct {
	// Pane styles
	LogPane   lipgloss.Style
	InputPane lipgloss.Style

	// Content styles
	Header   lipgloss.Style
	GameLog  lipgloss.Style
	RoundTag lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds the console styles. Terminals without color support get
// unstyled text so transcripts stay readable in pipes and logs.
func NewStyles() *Styles {
	if termenv.EnvColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		bordered := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1)
		return &Styles{
			LogPane:   bordered,
			InputPane: bordered,
			Header:    plain,
			GameLog:   plain,
			RoundTag:  plain,
			Success:   plain,
			Error:     plain,
			Warning:   plain,
			Info:      plain,
		}
	}

	return &Styles{
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1),
		InputPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		GameLog: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		RoundTag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
