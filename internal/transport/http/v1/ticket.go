package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// GetBooking returns the completed booking record.
// GET /v1/sessions/:session_id/booking
func (h *Handler) GetBooking(c echo.Context) error {
	sessionID := c.Param("session_id")

	rec, err := h.service.Booking(sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if errors.Is(err, domain.ErrNoBooking) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "booking not complete"})
	}
	if err != nil {
		log.Printf("ERROR: failed to get booking: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get booking"})
	}

	return c.JSON(http.StatusOK, rec)
}

// GetTicketQR returns the QR credential as a PNG.
// GET /v1/sessions/:session_id/ticket/qr.png
func (h *Handler) GetTicketQR(c echo.Context) error {
	sessionID := c.Param("session_id")

	cred, err := h.service.Ticket(sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if errors.Is(err, domain.ErrNoBooking) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "booking not complete"})
	}
	if err != nil {
		log.Printf("ERROR: failed to generate ticket: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate ticket"})
	}

	c.Response().Header().Set("X-Ticket-ID", cred.TicketID)
	return c.Blob(http.StatusOK, "image/png", cred.PNG)
}

// GetTicketCard returns the printable ticket card as a PNG.
// GET /v1/sessions/:session_id/ticket/card.png
func (h *Handler) GetTicketCard(c echo.Context) error {
	sessionID := c.Param("session_id")

	card, ticketID, err := h.service.TicketCard(sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if errors.Is(err, domain.ErrNoBooking) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "booking not complete"})
	}
	if err != nil {
		log.Printf("ERROR: failed to generate ticket card: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate ticket card"})
	}

	c.Response().Header().Set("X-Ticket-ID", ticketID)
	return c.Blob(http.StatusOK, "image/png", card)
}
