package server

import (
	"encoding/json"
	"time"

	"github.com/Jorgelet/bingo-analisis/internal/game"
)

// Message is the base WebSocket message envelope.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server messages

type CreateSessionData struct {
	Seed *int64 `json:"seed,omitempty"` // deterministic round order when set
}

type JoinSessionData struct {
	SessionID string `json:"sessionId"`
}

type LoadCardsData struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

type StartGameData struct {
	SessionID string `json:"sessionId"`
}

type CallWordData struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

type AdvanceRoundData struct {
	SessionID string `json:"sessionId"`
}

type GetStateData struct {
	SessionID string `json:"sessionId"`
}

// Server → Client messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SessionCreatedData struct {
	SessionID string `json:"sessionId"`
}

type SessionJoinedData struct {
	SessionID string           `json:"sessionId"`
	State     SessionStateData `json:"state"`
}

type CardsLoadedData struct {
	SessionID string       `json:"sessionId"`
	Accepted  []*game.Card `json:"accepted"`
	Errors    []string     `json:"errors"`
	Total     int          `json:"total"`
}

type GameStartedData struct {
	SessionID string          `json:"sessionId"`
	Rounds    []game.Language `json:"rounds"`
}

type WordCalledData struct {
	SessionID string        `json:"sessionId"`
	Word      string        `json:"word"`
	Language  game.Language `json:"language"`
	Round     int           `json:"round"`
	Found     bool          `json:"found"`
	Winners   []*game.Card  `json:"winners"`
}

type RoundAdvancedData struct {
	SessionID string        `json:"sessionId"`
	Round     int           `json:"round"`
	Language  game.Language `json:"language,omitempty"`
	Finished  bool          `json:"finished"`
}

type SessionStateData struct {
	SessionID string          `json:"sessionId"`
	State     string          `json:"state"`
	Rounds    []game.Language `json:"rounds"`
	Round     int             `json:"round"`
	Language  game.Language   `json:"language,omitempty"`
	Cards     []*game.Card    `json:"cards"`
	History   []game.Call     `json:"history"`
	Winners   []*game.Card    `json:"winners"`
}

type WordLimitInfoData struct {
	Limits map[game.Language]int `json:"limits"`
}

type WordBankInfoData struct {
	Banks map[game.Language][]string `json:"banks"` // words in sorted order
}

// SessionStateFromGame snapshots a session into its wire representation.
func SessionStateFromGame(id string, s *game.Session) SessionStateData {
	state := SessionStateData{
		SessionID: id,
		State:     s.State().String(),
		Rounds:    s.Rounds(),
		Round:     s.RoundIndex(),
		Cards:     s.Cards(),
		History:   s.History(),
		Winners:   s.Winners(),
	}
	if lang, ok := s.CurrentLanguage(); ok {
		state.Language = lang
	}
	return state
}
