// Package v1 provides the REST handlers for the ticket bot.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/ticketbot/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Conversation API
	e.POST("/v1/sessions", h.CreateSession)
	e.POST("/v1/sessions/:session_id/messages", h.PostMessage)
	e.POST("/v1/sessions/:session_id/reset", h.ResetSession)
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages)

	// Booking and credential API
	e.GET("/v1/sessions/:session_id/booking", h.GetBooking)
	e.GET("/v1/sessions/:session_id/ticket/qr.png", h.GetTicketQR)
	e.GET("/v1/sessions/:session_id/ticket/card.png", h.GetTicketCard)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
