// Package compose produces the user-facing text for each conversation state.
//
// Two composition modes exist: deterministic templates (the default, always
// available) and augmented mode, where an injected completion collaborator
// paraphrases the prose. Augmentation never invents catalog data: whenever
// events are listed, the deterministic listing block is appended verbatim and
// only the surrounding prose may be rephrased. On any collaborator failure
// the deterministic text is used for that turn.
package compose

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/xiaot623/ticketbot/internal/adapter/llm"
	"github.com/xiaot623/ticketbot/internal/domain"
)

// historyWindow bounds how many trailing transcript turns are sent as
// augmentation context.
const historyWindow = 10

const defaultTimeout = 5 * time.Second

const systemPrompt = "You are TicketBot, a friendly event ticketing assistant. " +
	"Rephrase the given reply in your own warm, concise voice. " +
	"Keep every factual detail (names, numbers, prices, dates) exactly as given. " +
	"Never mention events that are not in the reply."

var greetings = []string{
	"Hey there! I'm TicketBot, your friendly event assistant!",
	"Welcome! I'm here to help you find amazing events!",
	"Hi! Ready to discover some awesome events?",
}

// empathyLines adds a mood-specific line to the recommendation intro.
var empathyLines = map[string]string{
	"stressed": "Don't worry, I've got the perfect events to help you unwind!",
	"sad":      "Let's find something to lift your spirits!",
	"excited":  "Love the energy! Let's channel that excitement!",
	"bored":    "Time to shake things up!",
	"tired":    "How about something relaxing and refreshing?",
	"happy":    "Great vibes! Let's keep them going!",
}

const defaultEmpathyLine = "Let me find the perfect events for you!"

// Composer builds responses. A nil completer selects deterministic mode.
type Composer struct {
	completer llm.Completer
	timeout   time.Duration
	rng       *rand.Rand
}

// Option configures a Composer.
type Option func(*Composer)

// WithTimeout bounds each augmentation call.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) { c.timeout = d }
}

// WithRand pins greeting selection for tests.
func WithRand(rng *rand.Rand) Option {
	return func(c *Composer) { c.rng = rng }
}

// New creates a composer. Pass a nil completer for deterministic-only mode.
func New(completer llm.Completer, opts ...Option) *Composer {
	c := &Composer{
		completer: completer,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Greeting returns the opening message asking for the user's name.
func (c *Composer) Greeting() string {
	var line string
	if c.rng != nil {
		line = greetings[c.rng.Intn(len(greetings))]
	} else {
		line = greetings[rand.Intn(len(greetings))]
	}
	return line + "\n\nWhat's your name?"
}

// ResetNotice returns the soft-terminal reset message followed by a fresh
// greeting.
func (c *Composer) ResetNotice() string {
	return "Starting a new conversation...\n\n" + c.Greeting()
}

// MoodPrompt greets the named user and asks for their mood.
func (c *Composer) MoodPrompt(ctx context.Context, s *domain.Session, name string) string {
	prose := fmt.Sprintf("Nice to meet you, %s!\n\n", name) +
		"I can recommend events based on how you're feeling.\n\n" +
		"How are you feeling today?\n" +
		"(e.g., excited, relaxed, stressed, curious, adventurous...)"
	return c.augment(ctx, s, prose)
}

// MoodEvents presents the mood-filtered recommendations.
func (c *Composer) MoodEvents(ctx context.Context, s *domain.Session, mood string, events []domain.Event) string {
	empathy, ok := empathyLines[mood]
	if !ok {
		empathy = defaultEmpathyLine
	}
	prose := fmt.Sprintf("I sense you're feeling %s! %s", mood, empathy) +
		"\n\nBased on your mood, here are my top picks:"
	return c.augment(ctx, s, prose) +
		FormatEventList(events) +
		"\n\nWhich event interests you? (Enter the number)"
}

// UnknownMoodEvents presents the full listing when no mood was detected.
func (c *Composer) UnknownMoodEvents(ctx context.Context, s *domain.Session, events []domain.Event) string {
	prose := "I couldn't quite catch your mood.\n" +
		"No worries! Let me show you all our awesome events:"
	return c.augment(ctx, s, prose) +
		FormatEventList(events) +
		"\n\nWhich event catches your eye? (Enter the number)"
}

// SelectionError re-prompts for an in-range event number.
func (c *Composer) SelectionError(count int) string {
	return fmt.Sprintf("Please enter a number between 1 and %d!", count)
}

// EventChosen confirms the selection and asks for a ticket count.
func (c *Composer) EventChosen(ctx context.Context, s *domain.Session, ev *domain.Event) string {
	prose := "Excellent choice!\n\n" +
		fmt.Sprintf("%s\n%s\n\n", ev.Name, ev.Description) +
		fmt.Sprintf("Date: %s\nTime: %s\nVenue: %s\nPrice: $%.2f per ticket",
			ev.Date, ev.Time, ev.Venue, ev.Price)
	return c.augment(ctx, s, prose) +
		"\n\nHow many tickets would you like? (1-10)"
}

// TicketCountError re-prompts for an in-range ticket count.
func (c *Composer) TicketCountError() string {
	return "Please enter a number between 1 and 10!"
}

// SeatShortage explains that the requested count exceeds availability.
func (c *Composer) SeatShortage(available int) string {
	return fmt.Sprintf("Sorry, only %d seats available!\nPlease enter a smaller number:", available)
}

// EmailPrompt confirms the ticket count and asks for an email address.
func (c *Composer) EmailPrompt(ctx context.Context, s *domain.Session, ev *domain.Event, count int) string {
	total := float64(count) * ev.Price
	prose := fmt.Sprintf("Perfect! %d ticket(s) for %s\n\n", count, ev.Name) +
		fmt.Sprintf("Total: $%.2f", total)
	return c.augment(ctx, s, prose) +
		"\n\nPlease enter your email address to receive your tickets:"
}

// EmailError re-prompts for a valid email address.
func (c *Composer) EmailError() string {
	return "That doesn't look like a valid email.\n" +
		"Please enter a valid email address (e.g., name@example.com):"
}

// BookingConfirmed presents the booking summary and offers another round.
// The summary block is deterministic; only the closing prose is augmented.
func (c *Composer) BookingConfirmed(ctx context.Context, s *domain.Session, rec *domain.BookingRecord) string {
	summary := "BOOKING CONFIRMED!\n\n" +
		fmt.Sprintf("%s\n", rec.EventName) +
		fmt.Sprintf("Name: %s\n", rec.Name) +
		fmt.Sprintf("Email: %s\n", rec.Email) +
		fmt.Sprintf("Tickets: %d\n", rec.TicketCount) +
		fmt.Sprintf("Date: %s at %s\n", rec.Date, rec.Time) +
		fmt.Sprintf("Venue: %s\n", rec.Venue) +
		fmt.Sprintf("Total Paid: $%.2f\n", rec.TotalPrice)
	prose := "Your scannable ticket has been generated!\n" +
		"Show it at the venue entrance.\n\n" +
		"Thank you for booking with TicketBot!"
	return summary + "\n" + c.augment(ctx, s, prose) +
		"\n\nWould you like to book another event? (yes/no)"
}

// AnotherBooking re-opens the mood question after a completed booking.
func (c *Composer) AnotherBooking(ctx context.Context, s *domain.Session, name string) string {
	prose := fmt.Sprintf("Awesome, %s!\n\n", name) +
		"How are you feeling now? Let me find more events for you!"
	return c.augment(ctx, s, prose)
}

// Farewell closes the conversation.
func (c *Composer) Farewell(ctx context.Context, s *domain.Session, name string) string {
	prose := fmt.Sprintf("Thanks for using TicketBot, %s!\n\n", name) +
		"Have an amazing time at your event!\n" +
		"See you next time!"
	return c.augment(ctx, s, prose)
}

// FormatEventList renders the deterministic numbered event listing. The
// numbering is 1-based and refers to the given slice order, which is what
// event selection later indexes into.
func FormatEventList(events []domain.Event) string {
	var b strings.Builder
	for i, ev := range events {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, ev.Name)
		fmt.Fprintf(&b, "   Date: %s at %s\n", ev.Date, ev.Time)
		fmt.Fprintf(&b, "   Venue: %s\n", ev.Venue)
		fmt.Fprintf(&b, "   Price: $%.2f\n", ev.Price)
		fmt.Fprintf(&b, "   Seats available: %d\n", ev.AvailableSeats)
	}
	return b.String()
}

// augment asks the completion collaborator to rephrase the prose. Any
// failure, timeout, or empty result falls back to the deterministic text for
// this turn.
func (c *Composer) augment(ctx context.Context, s *domain.Session, prose string) string {
	if c.completer == nil {
		return prose
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.completer.Complete(ctx, systemPrompt, historyMessages(s), prose)
	if err != nil {
		log.Printf("augmentation unavailable, using deterministic text: %v", err)
		return prose
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return prose
	}
	return out
}

// historyMessages converts the trailing transcript window into completion
// context messages.
func historyMessages(s *domain.Session) []llm.Message {
	if s == nil {
		return nil
	}
	turns := s.History
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}
	msgs := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Speaker == domain.SpeakerBot {
			role = "assistant"
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}
