// Package ticket implements credential encoding for completed bookings: a
// deterministic ticket-id derivation, a stable textual payload, and its
// rendering into a scannable QR image.
package ticket

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// qrImageSize is the rendered QR side length in pixels.
const qrImageSize = 256

// payloadTemplate is what venue staff scan. Field order and labels are a
// wire format; do not reorder or relabel.
const payloadTemplate = `EVENT TICKET
---
Ticket ID: %s
Event: %s
Date: %s
Time: %s
Venue: %s
Guest: %s
Tickets: %d
Total: $%.2f
---
Valid for entry`

// DeriveTicketID derives the 12-character uppercase ticket token from the
// booking identity and the generation instant. The instant is part of the
// derivation, so the token is a one-time identifier, not a stable hash of
// the booking content. Collisions are accepted as negligible; this is an
// identifier, not a security token.
func DeriveTicketID(name, eventName, email string, instant time.Time) string {
	sum := md5.Sum([]byte(name + eventName + email + instant.Format(time.RFC3339Nano)))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:12])
}

// BuildPayload serializes the booking record and ticket id into the scanned
// payload.
func BuildPayload(rec *domain.BookingRecord, ticketID string) string {
	return fmt.Sprintf(payloadTemplate,
		ticketID,
		rec.EventName,
		rec.Date,
		rec.Time,
		rec.Venue,
		rec.Name,
		rec.TicketCount,
		rec.TotalPrice,
	)
}

// Generate derives the ticket id at the given instant, builds the payload,
// and renders it into a QR PNG with fixed error-correction and margin
// settings.
func Generate(rec *domain.BookingRecord, instant time.Time) (*domain.Credential, error) {
	id := DeriveTicketID(rec.Name, rec.EventName, rec.Email, instant)
	payload := BuildPayload(rec, id)

	png, err := qrcode.Encode(payload, qrcode.Low, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}

	return &domain.Credential{
		TicketID: id,
		Payload:  payload,
		PNG:      png,
	}, nil
}
