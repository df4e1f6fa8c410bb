// Package ws provides WebSocket chat access to the ticket bot.
package ws

// Message types from client to server
const (
	TypeHello       = "hello"
	TypeUserMessage = "user_message"
	TypeReset       = "reset"
)

// Message types from server to client
const (
	TypeHelloAck   = "hello_ack"
	TypeBotMessage = "bot_message"
	TypeError      = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	SessionID string `json:"session_id,omitempty"`
}

// HelloMessage is sent by client to establish a chat session. An empty
// session_id starts a fresh conversation.
type HelloMessage struct {
	BaseMessage
}

// HelloAckMessage is sent by the server after a successful hello. It carries
// the bound session id and the opening greeting.
type HelloAckMessage struct {
	BaseMessage
	Message string `json:"message"`
}

// UserMessage is one user conversation turn.
type UserMessage struct {
	BaseMessage
	Content string `json:"content"`
}

// BotMessage is the bot's reply to a user turn.
type BotMessage struct {
	BaseMessage
	Content string `json:"content"`
	State   string `json:"state"`
}

// ResetMessage re-initializes the bound session.
type ResetMessage struct {
	BaseMessage
}

// ErrorMessage is sent by the server when a request fails.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrorCodeInvalidMessage  = "invalid_message"
	ErrorCodeSessionRequired = "session_required"
	ErrorCodeSessionNotFound = "session_not_found"
	ErrorCodeInternalError   = "internal_error"
)
