package domain

import "errors"

var (
	// ErrSessionNotFound is returned for unknown session ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoBooking is returned when a credential or booking record is
	// requested before the conversation has produced one.
	ErrNoBooking = errors.New("no completed booking in session")
)
