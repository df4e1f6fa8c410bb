package service

import (
	"context"
	"log"
	"time"

	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/ticket"
)

// optimizeTimeout bounds the detached optimization attempt.
const optimizeTimeout = 10 * time.Second

// Ticket generates the scannable credential for the session's completed
// booking. Each call derives a fresh one-time ticket id.
func (s *Service) Ticket(id string) (*domain.Credential, error) {
	rec, err := s.Booking(id)
	if err != nil {
		return nil, err
	}

	cred, err := ticket.Generate(rec, time.Now())
	if err != nil {
		return nil, err
	}

	s.optimizeAsync(cred.PNG)
	return cred, nil
}

// TicketCard generates the credential and the printable card in one pass,
// so both embed the same ticket id and payload.
func (s *Service) TicketCard(id string) ([]byte, string, error) {
	rec, err := s.Booking(id)
	if err != nil {
		return nil, "", err
	}

	cred, err := ticket.Generate(rec, time.Now())
	if err != nil {
		return nil, "", err
	}

	card, err := ticket.Card(rec, cred)
	if err != nil {
		return nil, "", err
	}

	s.optimizeAsync(card)
	return card, cred.TicketID, nil
}

// optimizeAsync hands the rendered image to the remote optimizer without
// blocking the response path. The result is discarded: the caller already
// has the locally-rendered bytes, and a failed attempt is simply logged.
func (s *Service) optimizeAsync(data []byte) {
	if s.optimizer == nil {
		return
	}

	img := make([]byte, len(data))
	copy(img, data)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("ERROR: image optimization panicked: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), optimizeTimeout)
		defer cancel()

		if _, err := s.optimizer.Optimize(ctx, img); err != nil {
			log.Printf("image optimization skipped: %v", err)
		}
	}()
}
