package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Jorgelet/bingo-analisis/internal/client"
	"github.com/Jorgelet/bingo-analisis/internal/game"
	"github.com/Jorgelet/bingo-analisis/internal/server"
)

func testModel() *Model {
	logger := log.New(io.Discard)
	c := client.NewClient("http://localhost:8080", logger)
	return NewModel(c, logger)
}

func logContains(m *Model, substr string) bool {
	return strings.Contains(strings.Join(m.gameLog, "\n"), substr)
}

func TestRunCommandHelp(t *testing.T) {
	m := testModel()
	m.runCommand("help")

	if !logContains(m, "call <word>") {
		t.Errorf("expected help text in log, got %v", m.gameLog)
	}
}

func TestRunCommandCallRequiresWord(t *testing.T) {
	m := testModel()
	m.runCommand("call")

	if !logContains(m, "Specify a word") {
		t.Errorf("expected usage error, got %v", m.gameLog)
	}
}

func TestRunCommandJoinRequiresID(t *testing.T) {
	m := testModel()
	m.runCommand("join")

	if !logContains(m, "Specify a session id") {
		t.Errorf("expected usage error, got %v", m.gameLog)
	}
}

func TestRunCommandUnknownWithArgs(t *testing.T) {
	m := testModel()
	m.runCommand("frobnicate the thing")

	if !logContains(m, "Unknown command") {
		t.Errorf("expected unknown command error, got %v", m.gameLog)
	}
}

func TestRenderSessionCreated(t *testing.T) {
	m := testModel()

	msg, err := server.NewMessage(server.MessageTypeSessionCreated, server.SessionCreatedData{
		SessionID: "abc-123",
	})
	if err != nil {
		t.Fatal(err)
	}
	m.renderServerMessage(msg)

	if !logContains(m, "abc-123") {
		t.Errorf("expected session id in log, got %v", m.gameLog)
	}
	if m.client.SessionID() != "abc-123" {
		t.Errorf("expected client session id to be recorded, got %q", m.client.SessionID())
	}
}

func TestRenderWordCalledWithWinners(t *testing.T) {
	m := testModel()

	msg, err := server.NewMessage(server.MessageTypeWordCalled, map[string]interface{}{
		"sessionId": "abc-123",
		"word":      "casa",
		"language":  "SP",
		"round":     0,
		"found":     true,
		"winners": []map[string]interface{}{
			{"id": "SP1001", "owner": "J1", "language": "SP", "words": []string{"casa"}, "hitCount": 1, "hasWon": true},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	m.renderServerMessage(msg)

	if !logContains(m, "BINGO") {
		t.Errorf("expected bingo banner, got %v", m.gameLog)
	}
	if !logContains(m, "SP1001") {
		t.Errorf("expected winning card id, got %v", m.gameLog)
	}
}

func TestRenderWordBankInfo(t *testing.T) {
	m := testModel()

	msg, err := server.NewMessage(server.MessageTypeWordBankInfo, server.WordBankInfoData{
		Banks: map[game.Language][]string{
			game.Spanish: {"casa", "perro"},
			game.English: {"cat", "dog", "house"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	m.renderServerMessage(msg)

	if !logContains(m, "SP (2): casa perro") {
		t.Errorf("expected SP bank line, got %v", m.gameLog)
	}
	if !logContains(m, "EN (3): cat dog house") {
		t.Errorf("expected EN bank line, got %v", m.gameLog)
	}
}

func TestRenderErrorMessage(t *testing.T) {
	m := testModel()

	msg, err := server.NewMessage(server.MessageTypeError, server.ErrorData{
		Code:    server.ErrCodeUnknownWord,
		Message: `word "nube" is not in the SP bank`,
	})
	if err != nil {
		t.Fatal(err)
	}
	m.renderServerMessage(msg)

	if !logContains(m, "unknown_word") {
		t.Errorf("expected error code in log, got %v", m.gameLog)
	}
}
