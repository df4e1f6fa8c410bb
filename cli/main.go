// Package main provides a simple CLI client for chatting with the ticket bot
// over its WebSocket endpoint.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Message types
const (
	TypeHello       = "hello"
	TypeHelloAck    = "hello_ack"
	TypeUserMessage = "user_message"
	TypeBotMessage  = "bot_message"
	TypeReset       = "reset"
	TypeError       = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	SessionID string `json:"session_id,omitempty"`
}

// HelloMessage is sent to establish a chat session.
type HelloMessage struct {
	BaseMessage
}

// HelloAckMessage carries the bound session id and the opening greeting.
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

// ErrorMessage represents an error from the server.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client represents a WebSocket chat client.
type Client struct {
	conn      *websocket.Conn
	sessionID string
}

// NewClient creates a new client and connects to the server.
func NewClient(addr string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// SendHello sends a hello message and waits for hello_ack with the greeting.
func (c *Client) SendHello(sessionID string) (string, error) {
	msg := HelloMessage{
		BaseMessage: BaseMessage{
			Type:      TypeHello,
			Ts:        time.Now().UnixMilli(),
			SessionID: sessionID,
		},
	}

	if err := c.conn.WriteJSON(msg); err != nil {
		return "", fmt.Errorf("write hello: %w", err)
	}

	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", fmt.Errorf("read hello_ack: %w", err)
	}

	var base BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		return "", fmt.Errorf("unmarshal hello_ack: %w", err)
	}

	if base.Type == TypeError {
		var errMsg ErrorMessage
		json.Unmarshal(data, &errMsg)
		return "", fmt.Errorf("hello failed: %s - %s", errMsg.Code, errMsg.Message)
	}

	if base.Type != TypeHelloAck {
		return "", fmt.Errorf("expected hello_ack, got: %s", base.Type)
	}

	var ack HelloAckMessage
	if err := json.Unmarshal(data, &ack); err != nil {
		return "", fmt.Errorf("unmarshal hello_ack: %w", err)
	}

	c.sessionID = ack.SessionID
	return ack.Message, nil
}

// Send sends one chat message and waits for the bot reply.
func (c *Client) Send(msgType, content string) (*BotMessage, error) {
	msg := UserMessage{
		BaseMessage: BaseMessage{
			Type:      msgType,
			Ts:        time.Now().UnixMilli(),
			SessionID: c.sessionID,
		},
		Content: content,
	}

	if err := c.conn.WriteJSON(msg); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var base BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if base.Type == TypeError {
		var errMsg ErrorMessage
		json.Unmarshal(data, &errMsg)
		return nil, fmt.Errorf("server error: %s - %s", errMsg.Code, errMsg.Message)
	}

	var bot BotMessage
	if err := json.Unmarshal(data, &bot); err != nil {
		return nil, fmt.Errorf("unmarshal bot_message: %w", err)
	}
	return &bot, nil
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket server address")
	sessionID := flag.String("session", "", "Existing session id to reconnect to")
	flag.Parse()

	log.SetFlags(log.Ltime)

	fmt.Printf("Connecting to %s...\n", *addr)

	client, err := NewClient(*addr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	greeting, err := client.SendHello(*sessionID)
	if err != nil {
		log.Fatalf("Hello failed: %v", err)
	}

	fmt.Printf("Session established: %s\n", client.sessionID)
	if greeting != "" {
		fmt.Printf("\nTicketBot: %s\n", greeting)
	}
	fmt.Println("\nType a message and press Enter to send.")
	fmt.Println("Commands: /reset to start over, /quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "/quit" {
			fmt.Println("Bye!")
			return
		}

		msgType := TypeUserMessage
		if input == "/reset" {
			msgType = TypeReset
		}

		bot, err := client.Send(msgType, input)
		if err != nil {
			log.Printf("Send error: %v", err)
			continue
		}

		fmt.Printf("\nTicketBot: %s\n\n", bot.Content)
	}
}
