package client

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Jorgelet/bingo-analisis/internal/server" // Reuse message types
)

// Client represents a WebSocket client for the bingo host service
type Client struct {
	serverURL string
	conn      *websocket.Conn
	send      chan *server.Message
	receive   chan *server.Message
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	connected bool
	sessionID string
	closeOnce sync.Once

	// Event handlers
	eventHandlers map[server.MessageType][]EventHandler
}

// EventHandler is a function that handles incoming events
type EventHandler func(*server.Message)

// NewClient creates a new WebSocket client
func NewClient(serverURL string, logger *log.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		serverURL:     serverURL,
		send:          make(chan *server.Message, 256),
		receive:       make(chan *server.Message, 256),
		logger:        logger.WithPrefix("client"),
		ctx:           ctx,
		cancel:        cancel,
		eventHandlers: make(map[server.MessageType][]EventHandler),
	}
}

// Connect establishes a WebSocket connection to the server
func (c *Client) Connect() error {
	c.logger.Info("Connecting to server", "url", c.serverURL)

	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	// Convert http/https to ws/wss
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	// Add WebSocket path
	u.Path = "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readPump()
	go c.writePump()
	go c.eventProcessor()

	c.logger.Info("Connected to server")
	return nil
}

// Disconnect closes the WebSocket connection
func (c *Client) Disconnect() error {
	c.closeOnce.Do(func() {
		c.cancel()

		c.mu.Lock()
		defer c.mu.Unlock()

		if c.conn != nil {
			_ = c.conn.Close()
			c.connected = false
		}

		close(c.send)
		close(c.receive)

		c.logger.Info("Disconnected from server")
	})
	return nil
}

// IsConnected returns whether the client is connected
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// SessionID returns the session this client created or joined
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// SetSessionID records the session this client is working with
func (c *Client) SetSessionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// SendMessage sends a message to the server
func (c *Client) SendMessage(msg *server.Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		return fmt.Errorf("send buffer full")
	}
}

// readPump handles incoming messages from the server
func (c *Client) readPump() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg server.Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.logger.Debug("Received message", "type", msg.Type)

		select {
		case c.receive <- &msg:
		case <-c.ctx.Done():
			return
		}
	}
}

// writePump handles outgoing messages to the server
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// eventProcessor processes incoming messages and dispatches to handlers
func (c *Client) eventProcessor() {
	for {
		select {
		case msg := <-c.receive:
			c.handleMessage(msg)
		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches messages to registered handlers
func (c *Client) handleMessage(msg *server.Message) {
	c.mu.RLock()
	handlers, exists := c.eventHandlers[msg.Type]
	c.mu.RUnlock()

	if exists {
		for _, handler := range handlers {
			go handler(msg) // Handle asynchronously
		}
	} else {
		c.logger.Debug("No handler for message type", "type", msg.Type)
	}
}

// AddEventHandler adds an event handler for a specific message type
func (c *Client) AddEventHandler(messageType server.MessageType, handler EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.eventHandlers[messageType] = append(c.eventHandlers[messageType], handler)
}

// CreateSession asks the server for a fresh session
func (c *Client) CreateSession(seed *int64) error {
	msg, err := server.NewMessage(server.MessageTypeCreateSession, server.CreateSessionData{
		Seed: seed,
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// JoinSession attaches this client to an existing session
func (c *Client) JoinSession(sessionID string) error {
	msg, err := server.NewMessage(server.MessageTypeJoinSession, server.JoinSessionData{
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// LoadCards submits raw card text for parsing and validation
func (c *Client) LoadCards(text string) error {
	msg, err := server.NewMessage(server.MessageTypeLoadCards, server.LoadCardsData{
		SessionID: c.SessionID(),
		Text:      text,
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// StartGame generates the round order and begins play
func (c *Client) StartGame() error {
	msg, err := server.NewMessage(server.MessageTypeStartGame, server.StartGameData{
		SessionID: c.SessionID(),
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// CallWord calls a word in the active round
func (c *Client) CallWord(word string) error {
	msg, err := server.NewMessage(server.MessageTypeCallWord, server.CallWordData{
		SessionID: c.SessionID(),
		Word:      word,
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// AdvanceRound moves a won round on to the next one
func (c *Client) AdvanceRound() error {
	msg, err := server.NewMessage(server.MessageTypeAdvanceRound, server.AdvanceRoundData{
		SessionID: c.SessionID(),
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// GetState requests a full session snapshot
func (c *Client) GetState() error {
	msg, err := server.NewMessage(server.MessageTypeGetState, server.GetStateData{
		SessionID: c.SessionID(),
	})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// GetWordLimits requests the per-language card word limits
func (c *Client) GetWordLimits() error {
	msg, err := server.NewMessage(server.MessageTypeWordLimits, struct{}{})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}

// GetWordBanks requests the full word listing of every configured bank
func (c *Client) GetWordBanks() error {
	msg, err := server.NewMessage(server.MessageTypeWordBanks, struct{}{})
	if err != nil {
		return err
	}

	return c.SendMessage(msg)
}
