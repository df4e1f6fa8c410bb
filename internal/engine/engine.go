// Package engine implements the conversation state machine that drives a
// user from a stated mood to a completed ticket booking.
package engine

import (
	"context"
	"strings"
	"unicode"

	"github.com/xiaot623/ticketbot/internal/catalog"
	"github.com/xiaot623/ticketbot/internal/compose"
	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/intent"
)

// fallbackListLimit is how many catalog entries are offered when no mood was
// detected.
const fallbackListLimit = 8

const (
	minTickets = 1
	maxTickets = 10
)

// affirmativeTokens advance booking_complete back into mood_check. Substring
// matching, same semantics as the keyword tables.
var affirmativeTokens = []string{
	"yes", "yeah", "sure", "yep", "another", "more", "definitely", "ok", "okay",
}

// defaultName is stored when the greeting input contains no usable token.
const defaultName = "Friend"

// Engine owns the transition logic. It performs no I/O itself; the only
// operation that may suspend is the composer's optional augmentation call,
// which is bounded and falls back internally.
type Engine struct {
	catalog  catalog.Catalog
	composer *compose.Composer
	mode     intent.MatchMode
}

// New creates an engine over the given catalog and composer.
func New(cat catalog.Catalog, composer *compose.Composer, mode intent.MatchMode) *Engine {
	return &Engine{
		catalog:  cat,
		composer: composer,
		mode:     mode,
	}
}

// Greeting returns the opening message for a fresh session.
func (e *Engine) Greeting() string {
	return e.composer.Greeting()
}

// Reset re-initializes the session and returns a fresh greeting.
func (e *Engine) Reset(s *domain.Session) string {
	s.Reset()
	return e.composer.Greeting()
}

// ProcessMessage validates the utterance against the current state, advances
// the session, and returns the response text. Invalid input never mutates
// session data: the machine stays in place and re-prompts. Both the
// utterance and the response are appended to the transcript.
func (e *Engine) ProcessMessage(ctx context.Context, s *domain.Session, raw string) string {
	raw = strings.TrimSpace(raw)
	s.History = append(s.History, domain.Turn{Speaker: domain.SpeakerUser, Text: raw})

	var response string
	switch s.State {
	case domain.StateGreeting:
		response = e.handleGreeting(ctx, s, raw)
	case domain.StateMoodCheck:
		response = e.handleMoodCheck(ctx, s, raw)
	case domain.StateEventSelection:
		response = e.handleEventSelection(ctx, s, raw)
	case domain.StateTicketCount:
		response = e.handleTicketCount(ctx, s, raw)
	case domain.StateEmailCollection:
		response = e.handleEmailCollection(ctx, s, raw)
	case domain.StateBookingComplete:
		response = e.handleBookingComplete(ctx, s, raw)
	case domain.StateEnded:
		// Soft terminal: any input resets the session. The transcript is
		// discarded, so only the bot's fresh greeting survives below.
		s.Reset()
		response = e.composer.ResetNotice()
	}

	s.History = append(s.History, domain.Turn{Speaker: domain.SpeakerBot, Text: response})
	return response
}

// BookingData projects the session into a booking record once both the
// selected event and email are present.
func (e *Engine) BookingData(s *domain.Session) (*domain.BookingRecord, bool) {
	return s.Booking()
}

func (e *Engine) handleGreeting(ctx context.Context, s *domain.Session, raw string) string {
	name := defaultName
	if fields := strings.Fields(raw); len(fields) > 0 {
		name = capitalize(fields[0])
	}
	s.Name = name
	s.State = domain.StateMoodCheck
	return e.composer.MoodPrompt(ctx, s, name)
}

func (e *Engine) handleMoodCheck(ctx context.Context, s *domain.Session, raw string) string {
	// Candidates are recomputed from scratch on every pass through this
	// state so a repeat booking never sees a stale list.
	if mood, ok := intent.DetectMood(raw, e.mode); ok {
		s.Mood = mood
		s.Candidates = e.catalog.EventsByMood(mood)
		s.State = domain.StateEventSelection
		return e.composer.MoodEvents(ctx, s, mood, s.Candidates)
	}

	s.Candidates = e.catalog.AllEvents(fallbackListLimit)
	s.State = domain.StateEventSelection
	return e.composer.UnknownMoodEvents(ctx, s, s.Candidates)
}

func (e *Engine) handleEventSelection(ctx context.Context, s *domain.Session, raw string) string {
	n, ok := intent.ExtractNumber(raw)
	if !ok || n < 1 || n > len(s.Candidates) {
		return e.composer.SelectionError(len(s.Candidates))
	}

	// 1-based over the candidate list, never raw catalog ids.
	ev := s.Candidates[n-1]
	s.SelectedEvent = &ev
	s.State = domain.StateTicketCount
	return e.composer.EventChosen(ctx, s, &ev)
}

func (e *Engine) handleTicketCount(ctx context.Context, s *domain.Session, raw string) string {
	n, ok := intent.ExtractNumber(raw)
	if !ok || n < minTickets || n > maxTickets {
		return e.composer.TicketCountError()
	}
	if n > s.SelectedEvent.AvailableSeats {
		return e.composer.SeatShortage(s.SelectedEvent.AvailableSeats)
	}

	s.TicketCount = n
	s.State = domain.StateEmailCollection
	return e.composer.EmailPrompt(ctx, s, s.SelectedEvent, n)
}

func (e *Engine) handleEmailCollection(ctx context.Context, s *domain.Session, raw string) string {
	email, ok := intent.ExtractEmail(raw)
	if !ok {
		return e.composer.EmailError()
	}

	s.Email = email
	s.State = domain.StateBookingComplete
	rec, _ := s.Booking()
	return e.composer.BookingConfirmed(ctx, s, rec)
}

func (e *Engine) handleBookingComplete(ctx context.Context, s *domain.Session, raw string) string {
	if isAffirmative(raw) {
		s.SelectedEvent = nil
		s.TicketCount = 1
		s.Email = ""
		s.State = domain.StateMoodCheck
		return e.composer.AnotherBooking(ctx, s, s.Name)
	}

	s.State = domain.StateEnded
	return e.composer.Farewell(ctx, s, s.Name)
}

func isAffirmative(raw string) bool {
	lower := strings.ToLower(raw)
	for _, token := range affirmativeTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest, so "aLEX"
// is stored as "Alex".
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
