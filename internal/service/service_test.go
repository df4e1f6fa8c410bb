package service_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/xiaot623/ticketbot/internal/compose"
	"github.com/xiaot623/ticketbot/internal/config"
	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/engine"
	"github.com/xiaot623/ticketbot/internal/intent"
	"github.com/xiaot623/ticketbot/internal/service"
	"github.com/xiaot623/ticketbot/tests/helpers"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	cat := helpers.NewTestCatalog(t)
	eng := engine.New(cat, compose.New(nil), intent.MatchSubstring)
	return service.New(cat, eng, nil, &config.Config{})
}

// completeBooking drives a session from creation through booking_complete.
func completeBooking(t *testing.T, svc *service.Service) string {
	t.Helper()
	ctx := context.Background()
	id, _ := svc.CreateSession()

	for _, msg := range []string{"Alex", "I'm feeling adventurous", "1", "2", "alex@example.com"} {
		if _, _, err := svc.Chat(ctx, id, msg); err != nil {
			t.Fatalf("Chat(%q) failed: %v", msg, err)
		}
	}
	return id
}

func TestCreateSession(t *testing.T) {
	svc := newTestService(t)

	id, greeting := svc.CreateSession()
	if !strings.HasPrefix(id, "sess_") || len(id) != 13 {
		t.Fatalf("unexpected session id: %q", id)
	}
	if !strings.HasSuffix(greeting, "What's your name?") {
		t.Fatalf("unexpected greeting: %q", greeting)
	}

	// The greeting is already part of the transcript.
	history, err := svc.History(id)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].Speaker != domain.SpeakerBot {
		t.Fatalf("unexpected initial history: %+v", history)
	}
}

func TestChatUnknownSession(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Chat(context.Background(), "sess_missing", "hello")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestChatAdvancesState(t *testing.T) {
	svc := newTestService(t)
	id, _ := svc.CreateSession()

	reply, state, err := svc.Chat(context.Background(), id, "Alex")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if state != domain.StateMoodCheck {
		t.Fatalf("expected mood_check, got %s", state)
	}
	if !strings.Contains(reply, "Nice to meet you, Alex!") {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestBookingBeforeCompletion(t *testing.T) {
	svc := newTestService(t)
	id, _ := svc.CreateSession()

	if _, err := svc.Booking(id); !errors.Is(err, domain.ErrNoBooking) {
		t.Fatalf("expected ErrNoBooking, got %v", err)
	}
	if _, err := svc.Ticket(id); !errors.Is(err, domain.ErrNoBooking) {
		t.Fatalf("expected ErrNoBooking from Ticket, got %v", err)
	}
}

func TestBookingAfterCompletion(t *testing.T) {
	svc := newTestService(t)
	id := completeBooking(t, svc)

	rec, err := svc.Booking(id)
	if err != nil {
		t.Fatalf("Booking failed: %v", err)
	}
	if rec.EventName != "Mountain Trek" || rec.TicketCount != 2 || rec.TotalPrice != 120.00 {
		t.Fatalf("unexpected booking record: %+v", rec)
	}
}

func TestTicketGeneration(t *testing.T) {
	svc := newTestService(t)
	id := completeBooking(t, svc)

	cred, err := svc.Ticket(id)
	if err != nil {
		t.Fatalf("Ticket failed: %v", err)
	}
	if len(cred.TicketID) != 12 {
		t.Fatalf("unexpected ticket id: %q", cred.TicketID)
	}
	if _, err := png.Decode(bytes.NewReader(cred.PNG)); err != nil {
		t.Fatalf("credential is not a PNG: %v", err)
	}
}

func TestTicketCardSharesTicketID(t *testing.T) {
	svc := newTestService(t)
	id := completeBooking(t, svc)

	card, ticketID, err := svc.TicketCard(id)
	if err != nil {
		t.Fatalf("TicketCard failed: %v", err)
	}
	if len(ticketID) != 12 {
		t.Fatalf("unexpected ticket id: %q", ticketID)
	}

	img, err := png.Decode(bytes.NewReader(card))
	if err != nil {
		t.Fatalf("card is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 350 {
		t.Fatalf("unexpected card dimensions: %v", img.Bounds())
	}
}

func TestReset(t *testing.T) {
	svc := newTestService(t)
	id := completeBooking(t, svc)

	greeting, err := svc.Reset(id)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !strings.HasSuffix(greeting, "What's your name?") {
		t.Fatalf("unexpected greeting: %q", greeting)
	}

	state, err := svc.State(id)
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state != domain.StateGreeting {
		t.Fatalf("expected greeting state, got %s", state)
	}
	if _, err := svc.Booking(id); !errors.Is(err, domain.ErrNoBooking) {
		t.Fatalf("reset should discard the booking, got %v", err)
	}
}
