package domain

// Event is a catalog entry. The catalog is externally supplied and the core
// never mutates it; in particular AvailableSeats is read-only decorative data.
type Event struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Moods          []string `json:"moods"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Venue          string   `json:"venue"`
	Price          float64  `json:"price"`
	AvailableSeats int      `json:"available_seats"`
	Description    string   `json:"description"`
}

// HasMood reports whether the event is tagged with the given mood.
func (e *Event) HasMood(mood string) bool {
	for _, m := range e.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Turn is a single transcript entry.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Session holds all mutable conversation data. It is owned exclusively by the
// state machine; callers must serialize turns against a single session.
type Session struct {
	State         State   `json:"state"`
	Name          string  `json:"name,omitempty"`
	Mood          string  `json:"mood,omitempty"`
	SelectedEvent *Event  `json:"selected_event,omitempty"`
	TicketCount   int     `json:"ticket_count"`
	Email         string  `json:"email,omitempty"`
	Candidates    []Event `json:"candidates,omitempty"`
	History       []Turn  `json:"history,omitempty"`
}

// NewSession creates a fresh session in the greeting state.
func NewSession() *Session {
	return &Session{
		State:       StateGreeting,
		TicketCount: 1,
	}
}

// Reset re-initializes the session to the greeting state and discards all
// collected data including the transcript.
func (s *Session) Reset() {
	*s = *NewSession()
}

// BookingRecord is an immutable snapshot of a completed booking, derived on
// demand from a session that has both a selected event and an email.
type BookingRecord struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	EventName   string  `json:"event_name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	TicketCount int     `json:"ticket_count"`
	TotalPrice  float64 `json:"total_price"`
}

// Booking projects the session into a BookingRecord. It returns false until
// both the selected event and a validated email are present. Pure projection,
// no side effects.
func (s *Session) Booking() (*BookingRecord, bool) {
	if s.SelectedEvent == nil || s.Email == "" {
		return nil, false
	}
	ev := s.SelectedEvent
	return &BookingRecord{
		Name:        s.Name,
		Email:       s.Email,
		EventName:   ev.Name,
		Date:        ev.Date,
		Time:        ev.Time,
		Venue:       ev.Venue,
		TicketCount: s.TicketCount,
		TotalPrice:  float64(s.TicketCount) * ev.Price,
	}, true
}

// Credential is the scannable artifact for a completed booking: a derived
// ticket id, the textual payload encoded in the barcode, and the rendered
// PNG bytes.
type Credential struct {
	TicketID string `json:"ticket_id"`
	Payload  string `json:"payload"`
	PNG      []byte `json:"-"`
}
