package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Jorgelet/bingo-analisis/internal/client"
	"github.com/Jorgelet/bingo-analisis/internal/server"
)

// serverMsg wraps an incoming server message for the Bubble Tea loop
type serverMsg struct {
	msg *server.Message
}

// Model is the Bubble Tea model for the operator console
type Model struct {
	client *client.Client
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog  []string
	quitting bool

	// Styles
	styles *Styles

	// Dimensions
	width  int
	height int
}

// NewModel creates a new console model
func NewModel(c *client.Client, logger *log.Logger) *Model {
	vp := viewport.New(100, 25)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter a command (call <word>, advance, state, help)"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		client:      c,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		gameLog:     []string{},
		styles:      NewStyles(),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case serverMsg:
		m.renderServerMessage(msg.msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			command := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if cmd := m.runCommand(command); cmd != nil {
				return m, cmd
			}
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the console
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	logPane := m.styles.LogPane.Width(max(m.width-4, 20)).Render(m.logViewport.View())

	var input strings.Builder
	input.WriteString(m.input.View())
	input.WriteString("\n")
	input.WriteString(m.styles.Info.Render("Enter to submit • PgUp/PgDn to scroll • Ctrl+C to quit"))
	inputPane := m.styles.InputPane.Width(max(m.width-4, 20)).Render(input.String())

	return lipgloss.JoinVertical(lipgloss.Left, logPane, inputPane)
}

// AddLogEntry adds an entry to the console log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// updateDimensions updates component dimensions based on terminal size
func (m *Model) updateDimensions() {
	if m.height <= 0 || m.width <= 0 {
		return
	}

	inputPaneHeight := 6
	logHeight := m.height - inputPaneHeight - 1
	if logHeight < 3 {
		logHeight = 3
	}

	m.logViewport.Width = m.width - 4
	m.logViewport.Height = logHeight - 4
	m.input.Width = m.width - 8
}

// runCommand parses and executes a console command. Bare words are treated
// as word calls so the operator can drive a round by typing words alone.
func (m *Model) runCommand(command string) tea.Cmd {
	if command == "" {
		return nil
	}

	parts := strings.Fields(command)
	action := strings.ToLower(parts[0])
	args := parts[1:]

	switch action {
	case "quit", "q", "exit":
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	case "help", "?":
		m.showHelp()
	case "new":
		m.handleNew(args)
	case "join":
		m.handleJoin(args)
	case "load":
		m.handleLoad(args)
	case "start":
		m.sendOrLog(m.client.StartGame())
	case "call", "c":
		if len(args) == 0 {
			m.AddLogEntry(m.styles.Error.Render("Error: Specify a word: 'call <word>'"))
			return nil
		}
		m.sendOrLog(m.client.CallWord(strings.Join(args, " ")))
	case "advance", "next":
		m.sendOrLog(m.client.AdvanceRound())
	case "state", "s":
		m.sendOrLog(m.client.GetState())
	case "limits":
		m.sendOrLog(m.client.GetWordLimits())
	case "banks":
		m.sendOrLog(m.client.GetWordBanks())
	default:
		// A lone token is almost always the next word to call.
		if len(args) == 0 {
			m.sendOrLog(m.client.CallWord(action))
			return nil
		}
		m.AddLogEntry(m.styles.Error.Render(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", action)))
	}

	return nil
}

func (m *Model) sendOrLog(err error) {
	if err != nil {
		m.AddLogEntry(m.styles.Error.Render(fmt.Sprintf("Error: %s", err)))
	}
}

func (m *Model) handleNew(args []string) {
	var seed *int64
	if len(args) > 0 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			m.AddLogEntry(m.styles.Error.Render(fmt.Sprintf("Error: Invalid seed: %s", args[0])))
			return
		}
		seed = &parsed
	}
	m.sendOrLog(m.client.CreateSession(seed))
}

func (m *Model) handleJoin(args []string) {
	if len(args) == 0 {
		m.AddLogEntry(m.styles.Error.Render("Error: Specify a session id: 'join <id>'"))
		return
	}
	m.sendOrLog(m.client.JoinSession(args[0]))
}

func (m *Model) handleLoad(args []string) {
	if len(args) == 0 {
		m.AddLogEntry(m.styles.Error.Render("Error: Specify a file: 'load <path>'"))
		return
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		m.AddLogEntry(m.styles.Error.Render(fmt.Sprintf("Error: %s", err)))
		return
	}

	m.AddLogEntry(m.styles.Info.Render(fmt.Sprintf("Loading cards from %s...", args[0])))
	m.sendOrLog(m.client.LoadCards(string(content)))
}

func (m *Model) showHelp() {
	m.AddLogEntry("Available commands:")
	m.AddLogEntry("Session:")
	m.AddLogEntry("  new [seed]   - Create a session (seeded for a repeatable round order)")
	m.AddLogEntry("  join <id>    - Join an existing session")
	m.AddLogEntry("Game:")
	m.AddLogEntry("  load <path>  - Load a card file into the session")
	m.AddLogEntry("  start        - Shuffle the round order and start play")
	m.AddLogEntry("  call <word>  - Call a word (a bare word works too)")
	m.AddLogEntry("  advance      - Move a won round on to the next one")
	m.AddLogEntry("Information:")
	m.AddLogEntry("  state        - Show the full session state")
	m.AddLogEntry("  limits       - Show per-language card word limits")
	m.AddLogEntry("  banks        - Show every configured word bank")
	m.AddLogEntry("Utility:")
	m.AddLogEntry("  help         - Show this help")
	m.AddLogEntry("  quit         - Quit the console")
}

// renderServerMessage turns a server message into console log lines
func (m *Model) renderServerMessage(msg *server.Message) {
	switch msg.Type {
	case server.MessageTypeError:
		var data server.ErrorData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.AddLogEntry(m.styles.Error.Render(fmt.Sprintf("Error [%s]: %s", data.Code, data.Message)))

	case server.MessageTypeSessionCreated:
		var data server.SessionCreatedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.client.SetSessionID(data.SessionID)
		m.AddLogEntry(m.styles.Success.Render(fmt.Sprintf("Session created: %s", data.SessionID)))
		m.AddLogEntry(m.styles.Info.Render("Load cards with 'load <path>', then 'start'."))

	case server.MessageTypeSessionJoined:
		var data server.SessionJoinedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.client.SetSessionID(data.SessionID)
		m.AddLogEntry(m.styles.Success.Render(fmt.Sprintf("Joined session: %s", data.SessionID)))
		m.renderState(data.State)

	case server.MessageTypeCardsLoaded:
		var data server.CardsLoadedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.AddLogEntry(m.styles.Success.Render(
			fmt.Sprintf("Accepted %d card(s), %d in play", len(data.Accepted), data.Total)))
		for _, e := range data.Errors {
			m.AddLogEntry(m.styles.Warning.Render("  " + e))
		}

	case server.MessageTypeGameStarted:
		var data server.GameStartedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		codes := make([]string, len(data.Rounds))
		for i, lang := range data.Rounds {
			codes[i] = string(lang)
		}
		m.AddLogEntry(m.styles.Header.Render(" GAME STARTED "))
		m.AddLogEntry(fmt.Sprintf("Round order: %s", strings.Join(codes, ", ")))
		m.AddLogEntry(m.styles.RoundTag.Render(fmt.Sprintf("Round 1: %s", data.Rounds[0])))

	case server.MessageTypeWordCalled:
		var data server.WordCalledData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		if data.Found {
			m.AddLogEntry(m.styles.Success.Render(fmt.Sprintf("✓ %q marked", data.Word)))
		} else {
			m.AddLogEntry(m.styles.Info.Render(fmt.Sprintf("✗ %q not on any card", data.Word)))
		}
		if len(data.Winners) > 0 {
			m.AddLogEntry(m.styles.Header.Render(" BINGO "))
			for _, card := range data.Winners {
				m.AddLogEntry(m.styles.Success.Render(
					fmt.Sprintf("  Card %s (%s) wins round %d", card.ID, card.Owner, data.Round+1)))
			}
			m.AddLogEntry(m.styles.Info.Render("Type 'advance' for the next round."))
		}

	case server.MessageTypeRoundAdvanced:
		var data server.RoundAdvancedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		if data.Finished {
			m.AddLogEntry(m.styles.Header.Render(" GAME FINISHED "))
		} else {
			m.AddLogEntry(m.styles.RoundTag.Render(fmt.Sprintf("Round %d: %s", data.Round+1, data.Language)))
		}

	case server.MessageTypeSessionState:
		var data server.SessionStateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.renderState(data)

	case server.MessageTypeWordLimitInfo:
		var data server.WordLimitInfoData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.AddLogEntry("Card word limits:")
		for _, lang := range []string{"SP", "EN", "PT", "DT"} {
			for l, limit := range data.Limits {
				if string(l) == lang {
					m.AddLogEntry(fmt.Sprintf("  %s: %d words", l, limit))
				}
			}
		}

	case server.MessageTypeWordBankInfo:
		var data server.WordBankInfoData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.AddLogEntry("Word banks:")
		for _, lang := range []string{"SP", "EN", "PT", "DT"} {
			for l, words := range data.Banks {
				if string(l) == lang {
					m.AddLogEntry(fmt.Sprintf("  %s (%d): %s", l, len(words), strings.Join(words, " ")))
				}
			}
		}
	}
}

func (m *Model) renderState(state server.SessionStateData) {
	m.AddLogEntry(fmt.Sprintf("State: %s", state.State))
	if state.Language != "" {
		m.AddLogEntry(fmt.Sprintf("Round %d of %d (%s)", state.Round+1, len(state.Rounds), state.Language))
	}
	m.AddLogEntry(fmt.Sprintf("Cards (%d):", len(state.Cards)))
	for _, card := range state.Cards {
		status := fmt.Sprintf("%d/%d", card.HitCount, len(card.Words))
		if card.HasWon {
			status = "won"
		}
		m.AddLogEntry(fmt.Sprintf("  %s  %s  %s  [%s]", card.ID, card.Owner, card.Language, status))
	}
	if len(state.History) > 0 {
		words := make([]string, len(state.History))
		for i, call := range state.History {
			words[i] = call.Word
		}
		m.AddLogEntry(fmt.Sprintf("Called this round: %s", strings.Join(words, ", ")))
	}
}

// Run connects the client, wires server messages into the program, and
// blocks until the operator quits.
func Run(serverURL string, logger *log.Logger) error {
	c := client.NewClient(serverURL, logger)
	if err := c.Connect(); err != nil {
		return err
	}
	defer func() { _ = c.Disconnect() }()

	model := NewModel(c, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	for _, msgType := range []server.MessageType{
		server.MessageTypeError,
		server.MessageTypeSessionCreated,
		server.MessageTypeSessionJoined,
		server.MessageTypeCardsLoaded,
		server.MessageTypeGameStarted,
		server.MessageTypeWordCalled,
		server.MessageTypeRoundAdvanced,
		server.MessageTypeSessionState,
		server.MessageTypeWordLimitInfo,
		server.MessageTypeWordBankInfo,
	} {
		c.AddEventHandler(msgType, func(msg *server.Message) {
			program.Send(serverMsg{msg: msg})
		})
	}

	_, err := program.Run()
	return err
}
