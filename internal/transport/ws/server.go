package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/service"
)

const (
	readLimit    = 64 * 1024
	readTimeout  = 5 * time.Minute
	writeTimeout = 10 * time.Second
	chatTimeout  = 30 * time.Second
)

// Server handles WebSocket connections.
type Server struct {
	service  *service.Service
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server.
func NewServer(svc *service.Service) *Server {
	return &Server{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for MVP
				return true
			},
		},
	}
}

// connection tracks one WebSocket client and its bound session.
type connection struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	sessionID string
}

func (c *connection) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// HandleWebSocket handles WebSocket upgrade and connection lifecycle.
func (s *Server) HandleWebSocket(c echo.Context) error {
	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Failed to upgrade WebSocket: %v", err)
		return err
	}

	conn := &connection{conn: ws}
	go s.readPump(conn)

	return nil
}

// readPump reads messages from the WebSocket connection.
func (s *Server) readPump(conn *connection) {
	defer conn.conn.Close()

	conn.conn.SetReadLimit(readLimit)
	conn.conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.conn.SetPongHandler(func(string) error {
		conn.conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		_, message, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		conn.conn.SetReadDeadline(time.Now().Add(readTimeout))

		s.handleMessage(conn, message)
	}
}

// handleMessage dispatches incoming messages to appropriate handlers.
func (s *Server) handleMessage(conn *connection, data []byte) {
	var baseMsg BaseMessage
	if err := json.Unmarshal(data, &baseMsg); err != nil {
		s.sendError(conn, ErrorCodeInvalidMessage, "invalid JSON message")
		return
	}

	switch baseMsg.Type {
	case TypeHello:
		s.handleHello(conn, data)
	case TypeUserMessage:
		s.handleUserMessage(conn, data)
	case TypeReset:
		s.handleReset(conn)
	default:
		s.sendError(conn, ErrorCodeInvalidMessage, "unknown message type: "+baseMsg.Type)
	}
}

// handleHello handles the hello handshake message.
func (s *Server) handleHello(conn *connection, data []byte) {
	var msg HelloMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, ErrorCodeInvalidMessage, "invalid hello message")
		return
	}

	// Reconnect to an existing session when the client names one.
	sessionID := msg.SessionID
	greeting := ""
	if sessionID != "" {
		if _, err := s.service.State(sessionID); errors.Is(err, domain.ErrSessionNotFound) {
			s.sendError(conn, ErrorCodeSessionNotFound, "session not found: "+sessionID)
			return
		}
	} else {
		sessionID, greeting = s.service.CreateSession()
	}

	conn.sessionID = sessionID

	ack := HelloAckMessage{
		BaseMessage: BaseMessage{
			Type:      TypeHelloAck,
			Ts:        time.Now().UnixMilli(),
			SessionID: sessionID,
		},
		Message: greeting,
	}
	if err := conn.writeJSON(ack); err != nil {
		log.Printf("Failed to write hello_ack: %v", err)
		return
	}

	log.Printf("Hello handshake completed for session: %s", sessionID)
}

// handleUserMessage processes one conversation turn.
func (s *Server) handleUserMessage(conn *connection, data []byte) {
	var msg UserMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(conn, ErrorCodeInvalidMessage, "invalid user_message")
		return
	}

	if conn.sessionID == "" {
		s.sendError(conn, ErrorCodeSessionRequired, "must send hello first")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	reply, state, err := s.service.Chat(ctx, conn.sessionID, msg.Content)
	if err != nil {
		log.Printf("Chat failed: %v", err)
		s.sendError(conn, ErrorCodeInternalError, err.Error())
		return
	}

	bot := BotMessage{
		BaseMessage: BaseMessage{
			Type:      TypeBotMessage,
			Ts:        time.Now().UnixMilli(),
			SessionID: conn.sessionID,
		},
		Content: reply,
		State:   string(state),
	}
	if err := conn.writeJSON(bot); err != nil {
		log.Printf("Failed to write bot_message: %v", err)
	}
}

// handleReset re-initializes the bound session.
func (s *Server) handleReset(conn *connection) {
	if conn.sessionID == "" {
		s.sendError(conn, ErrorCodeSessionRequired, "must send hello first")
		return
	}

	greeting, err := s.service.Reset(conn.sessionID)
	if err != nil {
		log.Printf("Reset failed: %v", err)
		s.sendError(conn, ErrorCodeInternalError, err.Error())
		return
	}

	bot := BotMessage{
		BaseMessage: BaseMessage{
			Type:      TypeBotMessage,
			Ts:        time.Now().UnixMilli(),
			SessionID: conn.sessionID,
		},
		Content: greeting,
		State:   string(domain.StateGreeting),
	}
	if err := conn.writeJSON(bot); err != nil {
		log.Printf("Failed to write bot_message: %v", err)
	}
}

// sendError sends an error message to a connection.
func (s *Server) sendError(conn *connection, code, message string) {
	errMsg := ErrorMessage{
		BaseMessage: BaseMessage{
			Type:      TypeError,
			Ts:        time.Now().UnixMilli(),
			SessionID: conn.sessionID,
		},
		Code:    code,
		Message: message,
	}
	if err := conn.writeJSON(errMsg); err != nil {
		log.Printf("Failed to write error message: %v", err)
	}
}
