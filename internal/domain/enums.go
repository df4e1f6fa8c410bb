// Package domain defines the core domain models for the ticket bot.
package domain

// State represents the conversation state.
type State string

const (
	StateGreeting        State = "greeting"
	StateMoodCheck       State = "mood_check"
	StateEventSelection  State = "event_selection"
	StateTicketCount     State = "ticket_count"
	StateEmailCollection State = "email_collection"
	StateBookingComplete State = "booking_complete"
	StateEnded           State = "ended"
)

// States lists every reachable conversation state.
var States = []State{
	StateGreeting,
	StateMoodCheck,
	StateEventSelection,
	StateTicketCount,
	StateEmailCollection,
	StateBookingComplete,
	StateEnded,
}

// Valid reports whether s is one of the enumerated conversation states.
func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)
