package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// postMessageRequest is the body for posting one conversation turn.
type postMessageRequest struct {
	Content string `json:"content"`
}

// CreateSession starts a fresh conversation.
// POST /v1/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	id, greeting := h.service.CreateSession()
	return c.JSON(http.StatusCreated, map[string]string{
		"session_id": id,
		"message":    greeting,
	})
}

// PostMessage processes one user turn.
// POST /v1/sessions/:session_id/messages
func (h *Handler) PostMessage(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("session_id")

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	reply, state, err := h.service.Chat(ctx, sessionID, req.Content)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err != nil {
		log.Printf("ERROR: failed to process message: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process message"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": reply,
		"state":   state,
	})
}

// ResetSession re-initializes the conversation.
// POST /v1/sessions/:session_id/reset
func (h *Handler) ResetSession(c echo.Context) error {
	sessionID := c.Param("session_id")

	greeting, err := h.service.Reset(sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err != nil {
		log.Printf("ERROR: failed to reset session: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to reset session"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": greeting})
}

// GetSessionMessages returns the session transcript.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	history, err := h.service.History(sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err != nil {
		log.Printf("ERROR: failed to get messages: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get messages"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": history,
	})
}
