package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/xiaot623/ticketbot/internal/compose"
	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/engine"
	"github.com/xiaot623/ticketbot/internal/intent"
	"github.com/xiaot623/ticketbot/tests/helpers"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat := helpers.NewTestCatalog(t)
	composer := compose.New(nil)
	return engine.New(cat, composer, intent.MatchSubstring)
}

func TestFullBookingFlow(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	// Name collection, capitalization normalized.
	resp := eng.ProcessMessage(ctx, sess, "aLEX")
	if sess.State != domain.StateMoodCheck {
		t.Fatalf("expected mood_check, got %s", sess.State)
	}
	if sess.Name != "Alex" {
		t.Fatalf("expected name Alex, got %q", sess.Name)
	}
	if !strings.Contains(resp, "Nice to meet you, Alex!") {
		t.Fatalf("unexpected mood prompt: %q", resp)
	}

	// Mood detection filters the catalog.
	resp = eng.ProcessMessage(ctx, sess, "I'm feeling adventurous")
	if sess.State != domain.StateEventSelection {
		t.Fatalf("expected event_selection, got %s", sess.State)
	}
	if len(sess.Candidates) != 1 || sess.Candidates[0].Name != "Mountain Trek" {
		t.Fatalf("unexpected candidates: %+v", sess.Candidates)
	}
	if !strings.Contains(resp, "1. Mountain Trek") {
		t.Fatalf("listing missing from response: %q", resp)
	}

	// Invalid selection mutates nothing.
	resp = eng.ProcessMessage(ctx, sess, "hmm")
	if sess.State != domain.StateEventSelection || sess.SelectedEvent != nil {
		t.Fatalf("invalid selection advanced the session")
	}
	if resp != "Please enter a number between 1 and 1!" {
		t.Fatalf("unexpected selection error: %q", resp)
	}

	// Selection is 1-based over the candidate list.
	resp = eng.ProcessMessage(ctx, sess, "1")
	if sess.State != domain.StateTicketCount {
		t.Fatalf("expected ticket_count, got %s", sess.State)
	}
	if sess.SelectedEvent == nil || sess.SelectedEvent.Name != "Mountain Trek" {
		t.Fatalf("unexpected selection: %+v", sess.SelectedEvent)
	}
	if !strings.Contains(resp, "How many tickets would you like? (1-10)") {
		t.Fatalf("unexpected event confirmation: %q", resp)
	}

	// Requested count above availability is rejected.
	resp = eng.ProcessMessage(ctx, sess, "5")
	if sess.State != domain.StateTicketCount || sess.TicketCount != 1 {
		t.Fatalf("seat shortage advanced the session")
	}
	if !strings.Contains(resp, "only 3 seats available") {
		t.Fatalf("unexpected seat shortage message: %q", resp)
	}

	// Out-of-range count is rejected.
	resp = eng.ProcessMessage(ctx, sess, "0")
	if resp != "Please enter a number between 1 and 10!" {
		t.Fatalf("unexpected count error: %q", resp)
	}

	resp = eng.ProcessMessage(ctx, sess, "2")
	if sess.State != domain.StateEmailCollection || sess.TicketCount != 2 {
		t.Fatalf("expected email_collection with 2 tickets, got %s/%d", sess.State, sess.TicketCount)
	}
	if !strings.Contains(resp, "Total: $120.00") {
		t.Fatalf("unexpected email prompt: %q", resp)
	}

	// Invalid email re-prompts.
	resp = eng.ProcessMessage(ctx, sess, "not an address")
	if sess.State != domain.StateEmailCollection || sess.Email != "" {
		t.Fatalf("invalid email advanced the session")
	}
	if !strings.Contains(resp, "valid email address") {
		t.Fatalf("unexpected email error: %q", resp)
	}

	resp = eng.ProcessMessage(ctx, sess, "alex@example.com")
	if sess.State != domain.StateBookingComplete {
		t.Fatalf("expected booking_complete, got %s", sess.State)
	}
	if !strings.Contains(resp, "BOOKING CONFIRMED!") || !strings.Contains(resp, "Total Paid: $120.00") {
		t.Fatalf("unexpected confirmation: %q", resp)
	}

	rec, ok := eng.BookingData(sess)
	if !ok {
		t.Fatalf("expected booking data")
	}
	if rec.EventName != "Mountain Trek" || rec.TicketCount != 2 || rec.TotalPrice != 120.00 {
		t.Fatalf("unexpected booking record: %+v", rec)
	}
	if rec.Name != "Alex" || rec.Email != "alex@example.com" {
		t.Fatalf("unexpected booking identity: %+v", rec)
	}
}

func TestRepeatBookingRecomputesCandidates(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	eng.ProcessMessage(ctx, sess, "Dana")
	eng.ProcessMessage(ctx, sess, "I'm feeling adventurous")
	eng.ProcessMessage(ctx, sess, "1")
	eng.ProcessMessage(ctx, sess, "2")
	eng.ProcessMessage(ctx, sess, "dana@example.com")

	resp := eng.ProcessMessage(ctx, sess, "yes please")
	if sess.State != domain.StateMoodCheck {
		t.Fatalf("expected mood_check, got %s", sess.State)
	}
	if sess.SelectedEvent != nil || sess.Email != "" || sess.TicketCount != 1 {
		t.Fatalf("booking fields not cleared: %+v", sess)
	}
	if !strings.Contains(resp, "Awesome, Dana!") {
		t.Fatalf("unexpected re-open message: %q", resp)
	}

	eng.ProcessMessage(ctx, sess, "I feel happy")
	if len(sess.Candidates) != 1 || sess.Candidates[0].Name != "Comedy Hour" {
		t.Fatalf("candidates not recomputed: %+v", sess.Candidates)
	}
}

func TestUnknownMoodFallsBackToFullListing(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	eng.ProcessMessage(ctx, sess, "Sam")
	resp := eng.ProcessMessage(ctx, sess, "xyzzy")
	if sess.State != domain.StateEventSelection {
		t.Fatalf("expected event_selection, got %s", sess.State)
	}
	if len(sess.Candidates) != 4 || sess.Candidates[0].Name != "Jazz Night" {
		t.Fatalf("unexpected fallback candidates: %+v", sess.Candidates)
	}
	if !strings.Contains(resp, "couldn't quite catch your mood") {
		t.Fatalf("unexpected fallback message: %q", resp)
	}
}

func TestDeclineEndsThenResets(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	eng.ProcessMessage(ctx, sess, "Kim")
	eng.ProcessMessage(ctx, sess, "I'm feeling adventurous")
	eng.ProcessMessage(ctx, sess, "1")
	eng.ProcessMessage(ctx, sess, "2")
	eng.ProcessMessage(ctx, sess, "kim@example.com")

	resp := eng.ProcessMessage(ctx, sess, "no thanks")
	if sess.State != domain.StateEnded {
		t.Fatalf("expected ended, got %s", sess.State)
	}
	if !strings.Contains(resp, "Thanks for using TicketBot, Kim!") {
		t.Fatalf("unexpected farewell: %q", resp)
	}

	// Any input after ended resets the whole session.
	resp = eng.ProcessMessage(ctx, sess, "hello again")
	if sess.State != domain.StateGreeting {
		t.Fatalf("expected greeting after reset, got %s", sess.State)
	}
	if sess.Name != "" || sess.SelectedEvent != nil {
		t.Fatalf("session not cleared: %+v", sess)
	}
	if !strings.HasPrefix(resp, "Starting a new conversation...") {
		t.Fatalf("unexpected reset notice: %q", resp)
	}
	if len(sess.History) != 1 || sess.History[0].Speaker != domain.SpeakerBot {
		t.Fatalf("expected only the fresh greeting in history, got %+v", sess.History)
	}
}

func TestGreetingFallbackName(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	resp := eng.ProcessMessage(ctx, sess, "   ")
	if sess.Name != "Friend" {
		t.Fatalf("expected fallback name, got %q", sess.Name)
	}
	if !strings.Contains(resp, "Nice to meet you, Friend!") {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestTranscriptRecordsBothSpeakers(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t)
	sess := domain.NewSession()

	eng.ProcessMessage(ctx, sess, "Pat")
	if len(sess.History) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(sess.History))
	}
	if sess.History[0].Speaker != domain.SpeakerUser || sess.History[0].Text != "Pat" {
		t.Fatalf("unexpected user turn: %+v", sess.History[0])
	}
	if sess.History[1].Speaker != domain.SpeakerBot {
		t.Fatalf("unexpected bot turn: %+v", sess.History[1])
	}
}
