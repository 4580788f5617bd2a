package server

// MessageType represents a WebSocket message type with type safety.
type MessageType string

// WebSocket message type constants used by the operator protocol.
const (
	// Client to server messages
	MessageTypeCreateSession MessageType = "create_session"
	MessageTypeJoinSession   MessageType = "join_session"
	MessageTypeLoadCards     MessageType = "load_cards"
	MessageTypeStartGame     MessageType = "start_game"
	MessageTypeCallWord      MessageType = "call_word"
	MessageTypeAdvanceRound  MessageType = "advance_round"
	MessageTypeGetState      MessageType = "get_state"
	MessageTypeWordLimits    MessageType = "word_limits"
	MessageTypeWordBanks     MessageType = "word_banks"

	// Server to client messages
	MessageTypeSessionCreated MessageType = "session_created"
	MessageTypeSessionJoined  MessageType = "session_joined"
	MessageTypeCardsLoaded    MessageType = "cards_loaded"
	MessageTypeGameStarted    MessageType = "game_started"
	MessageTypeWordCalled     MessageType = "word_called"
	MessageTypeRoundAdvanced  MessageType = "round_advanced"
	MessageTypeSessionState   MessageType = "session_state"
	MessageTypeWordLimitInfo  MessageType = "word_limit_info"
	MessageTypeWordBankInfo   MessageType = "word_bank_info"
	MessageTypeError          MessageType = "error"
)

// String returns the string representation of the message type.
func (mt MessageType) String() string {
	return string(mt)
}

// Error codes carried by ErrorData, mirroring the engine's error taxonomy
// so clients can render different guidance per failure.
const (
	ErrCodeInvalidMessage  = "invalid_message"
	ErrCodeSessionNotFound = "session_not_found"
	ErrCodeNoCards         = "no_cards"
	ErrCodeUnknownWord     = "unknown_word"
	ErrCodeInvalidState    = "invalid_state"
)
