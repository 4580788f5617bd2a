package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Jorgelet/bingo-analisis/internal/game"
)

// Connection represents a WebSocket connection to an operator client
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	sessionID string
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	closeOnce sync.Once
	server    *Server
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan *Message, 256),
		logger: logger.WithPrefix("conn"),
		ctx:    ctx,
		cancel: cancel,
		server: server,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, this is expected during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// SetSession associates this connection with a session
func (c *Connection) SetSession(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = sessionID
}

// GetSession returns the associated session ID
func (c *Connection) GetSession() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Card dumps for a whole
	// classroom arrive in one load_cards message, so this is generous.
	maxMessageSize = 1 << 20
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
)

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "session", c.GetSession())

	switch msg.Type {
	case MessageTypeCreateSession:
		var data CreateSessionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse create session data")
			return
		}
		c.handleCreateSession(data)

	case MessageTypeJoinSession:
		var data JoinSessionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse join session data")
			return
		}
		c.handleJoinSession(data)

	case MessageTypeLoadCards:
		var data LoadCardsData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse load cards data")
			return
		}
		c.handleLoadCards(data)

	case MessageTypeStartGame:
		var data StartGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse start game data")
			return
		}
		c.handleStartGame(data)

	case MessageTypeCallWord:
		var data CallWordData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse call word data")
			return
		}
		c.handleCallWord(data)

	case MessageTypeAdvanceRound:
		var data AdvanceRoundData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse advance round data")
			return
		}
		c.handleAdvanceRound(data)

	case MessageTypeGetState:
		var data GetStateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Failed to parse get state data")
			return
		}
		c.handleGetState(data)

	case MessageTypeWordLimits:
		c.handleWordLimits()

	case MessageTypeWordBanks:
		c.handleWordBanks()

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg)
}

// sendEngineError maps an engine error onto the wire error taxonomy.
func (c *Connection) sendEngineError(err error) {
	var unknownWord *game.UnknownWordError
	var invalidState *game.InvalidStateError

	switch {
	case errors.As(err, &unknownWord):
		c.sendError(ErrCodeUnknownWord, unknownWord.Error())
	case errors.As(err, &invalidState):
		c.sendError(ErrCodeInvalidState, invalidState.Error())
	case errors.Is(err, game.ErrNoCards):
		c.sendError(ErrCodeNoCards, err.Error())
	default:
		c.sendError(ErrCodeInvalidMessage, err.Error())
	}
}

func (c *Connection) handleCreateSession(data CreateSessionData) {
	sessionID := c.server.Sessions().Create(data.Seed)
	c.SetSession(sessionID)

	c.logger.Info("Session created", "session", sessionID)

	response, _ := NewMessage(MessageTypeSessionCreated, SessionCreatedData{
		SessionID: sessionID,
	})
	_ = c.SendMessage(response)
}

func (c *Connection) handleJoinSession(data JoinSessionData) {
	var state SessionStateData
	err := c.server.Sessions().Do(data.SessionID, func(s *game.Session) error {
		state = SessionStateFromGame(data.SessionID, s)
		return nil
	})
	if err != nil {
		c.sendError(ErrCodeSessionNotFound, err.Error())
		return
	}

	c.SetSession(data.SessionID)
	c.logger.Info("Session joined", "session", data.SessionID)

	response, _ := NewMessage(MessageTypeSessionJoined, SessionJoinedData{
		SessionID: data.SessionID,
		State:     state,
	})
	_ = c.SendMessage(response)
}

func (c *Connection) handleLoadCards(data LoadCardsData) {
	sessionID := c.sessionFor(data.SessionID)
	if sessionID == "" {
		return
	}

	var result CardsLoadedData
	err := c.server.Sessions().Do(sessionID, func(s *game.Session) error {
		accepted, parseErrors, err := s.LoadCards(data.Text)
		if err != nil {
			return err
		}
		result = CardsLoadedData{
			SessionID: sessionID,
			Accepted:  accepted,
			Errors:    parseErrors,
			Total:     len(s.Cards()),
		}
		return nil
	})
	if err != nil {
		c.sendEngineError(err)
		return
	}

	response, _ := NewMessage(MessageTypeCardsLoaded, result)
	c.server.BroadcastToSession(sessionID, response)
}

func (c *Connection) handleStartGame(data StartGameData) {
	sessionID := c.sessionFor(data.SessionID)
	if sessionID == "" {
		return
	}

	var rounds []game.Language
	err := c.server.Sessions().Do(sessionID, func(s *game.Session) error {
		var err error
		rounds, err = s.Start()
		return err
	})
	if err != nil {
		c.sendEngineError(err)
		return
	}

	response, _ := NewMessage(MessageTypeGameStarted, GameStartedData{
		SessionID: sessionID,
		Rounds:    rounds,
	})
	c.server.BroadcastToSession(sessionID, response)
}

func (c *Connection) handleCallWord(data CallWordData) {
	sessionID := c.sessionFor(data.SessionID)
	if sessionID == "" {
		return
	}

	var called WordCalledData
	err := c.server.Sessions().Do(sessionID, func(s *game.Session) error {
		round := s.RoundIndex()
		lang, _ := s.CurrentLanguage()

		result, err := s.CallWord(data.Word)
		if err != nil {
			return err
		}
		called = WordCalledData{
			SessionID: sessionID,
			Word:      data.Word,
			Language:  lang,
			Round:     round,
			Found:     result.Found,
			Winners:   result.Winners,
		}
		return nil
	})
	if err != nil {
		c.sendEngineError(err)
		return
	}

	response, _ := NewMessage(MessageTypeWordCalled, called)
	c.server.BroadcastToSession(sessionID, response)
}

func (c *Connection) handleAdvanceRound(data AdvanceRoundData) {
	sessionID := c.sessionFor(data.SessionID)
	if sessionID == "" {
		return
	}

	var advanced RoundAdvancedData
	err := c.server.Sessions().Do(sessionID, func(s *game.Session) error {
		if err := s.Advance(); err != nil {
			return err
		}
		advanced = RoundAdvancedData{
			SessionID: sessionID,
			Round:     s.RoundIndex(),
			Finished:  s.State() == game.Finished,
		}
		if lang, ok := s.CurrentLanguage(); ok {
			advanced.Language = lang
		}
		return nil
	})
	if err != nil {
		c.sendEngineError(err)
		return
	}

	response, _ := NewMessage(MessageTypeRoundAdvanced, advanced)
	c.server.BroadcastToSession(sessionID, response)
}

func (c *Connection) handleGetState(data GetStateData) {
	sessionID := c.sessionFor(data.SessionID)
	if sessionID == "" {
		return
	}

	var state SessionStateData
	err := c.server.Sessions().Do(sessionID, func(s *game.Session) error {
		state = SessionStateFromGame(sessionID, s)
		return nil
	})
	if err != nil {
		c.sendError(ErrCodeSessionNotFound, err.Error())
		return
	}

	response, _ := NewMessage(MessageTypeSessionState, state)
	_ = c.SendMessage(response)
}

func (c *Connection) handleWordLimits() {
	limits := make(map[game.Language]int)
	for _, lang := range game.Languages() {
		limits[lang] = lang.WordLimit()
	}

	response, _ := NewMessage(MessageTypeWordLimitInfo, WordLimitInfoData{Limits: limits})
	_ = c.SendMessage(response)
}

func (c *Connection) handleWordBanks() {
	response, _ := NewMessage(MessageTypeWordBankInfo, WordBankInfoData{
		Banks: bankListing(c.server.Sessions().Banks()),
	})
	_ = c.SendMessage(response)
}

// bankListing snapshots the configured banks as sorted word lists.
func bankListing(banks game.Banks) map[game.Language][]string {
	listing := make(map[game.Language][]string, len(banks))
	for lang, bank := range banks {
		listing[lang] = game.SortWords(bank.Words())
	}
	return listing
}

// sessionFor resolves the target session: the explicit id from the message,
// falling back to the session this connection last created or joined. Sends
// an error and returns "" when neither is available.
func (c *Connection) sessionFor(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if id := c.GetSession(); id != "" {
		return id
	}
	c.sendError(ErrCodeSessionNotFound, "No session: create or join a session first")
	return ""
}
