// Package catalog provides read-only access to the event catalog.
package catalog

import (
	"math/rand"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// fallbackSampleSize caps the random sample returned when no event matches
// the requested mood.
const fallbackSampleSize = 5

// Catalog exposes the event dataset. Implementations never mutate events and
// never filter by seat availability; availability is only checked at
// ticket-count validation.
type Catalog interface {
	// AllEvents returns the first limit catalog entries in catalog order.
	// A non-positive limit returns the full catalog.
	AllEvents(limit int) []domain.Event

	// EventsByMood returns all events tagged with the mood, preserving
	// catalog order. When nothing matches it falls back to a random sample
	// of up to five distinct events from the full catalog.
	EventsByMood(mood string) []domain.Event

	// EventsByCategory returns all events in the category, catalog order.
	EventsByCategory(category string) []domain.Event
}

// Memory is an in-memory catalog backed by a fixed slice of events.
type Memory struct {
	events []domain.Event
	rng    *rand.Rand
}

// Option configures a Memory catalog.
type Option func(*Memory)

// WithRand sets the random source used for fallback sampling, so tests can
// pin the sample.
func WithRand(rng *rand.Rand) Option {
	return func(m *Memory) {
		m.rng = rng
	}
}

// New creates a catalog over the given events. The slice is used as-is and
// must not be mutated afterwards.
func New(events []domain.Event, opts ...Option) *Memory {
	m := &Memory{events: events}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AllEvents returns the first limit events in catalog order.
func (m *Memory) AllEvents(limit int) []domain.Event {
	if limit <= 0 || limit > len(m.events) {
		limit = len(m.events)
	}
	out := make([]domain.Event, limit)
	copy(out, m.events[:limit])
	return out
}

// EventsByMood returns mood matches in catalog order, or a random sample of
// the full catalog when nothing matches.
func (m *Memory) EventsByMood(mood string) []domain.Event {
	var out []domain.Event
	for _, ev := range m.events {
		if ev.HasMood(mood) {
			out = append(out, ev)
		}
	}
	if len(out) > 0 {
		return out
	}
	return m.sample(fallbackSampleSize)
}

// EventsByCategory returns category matches in catalog order.
func (m *Memory) EventsByCategory(category string) []domain.Event {
	var out []domain.Event
	for _, ev := range m.events {
		if ev.Category == category {
			out = append(out, ev)
		}
	}
	return out
}

// sample returns up to n distinct events in random order.
func (m *Memory) sample(n int) []domain.Event {
	if n > len(m.events) {
		n = len(m.events)
	}
	var perm []int
	if m.rng != nil {
		perm = m.rng.Perm(len(m.events))
	} else {
		perm = rand.Perm(len(m.events))
	}
	out := make([]domain.Event, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, m.events[idx])
	}
	return out
}
