// Package helpers provides shared test fixtures.
package helpers

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/xiaot623/ticketbot/internal/adapter/llm"
	"github.com/xiaot623/ticketbot/internal/catalog"
	"github.com/xiaot623/ticketbot/internal/domain"
)

// FixtureEvents returns a small pinned catalog. Event 3 has only 3 seats so
// seat-shortage paths can be exercised.
func FixtureEvents() []domain.Event {
	return []domain.Event{
		{
			ID:             1,
			Name:           "Jazz Night",
			Category:       "music",
			Moods:          []string{"relaxed", "romantic"},
			Date:           "2025-07-10",
			Time:           "8:00 PM",
			Venue:          "Blue Note",
			Price:          45.00,
			AvailableSeats: 80,
			Description:    "An evening of smooth jazz.",
		},
		{
			ID:             2,
			Name:           "Comedy Hour",
			Category:       "comedy",
			Moods:          []string{"happy", "stressed"},
			Date:           "2025-07-12",
			Time:           "9:00 PM",
			Venue:          "Laugh Factory",
			Price:          25.00,
			AvailableSeats: 120,
			Description:    "Stand-up to forget your week.",
		},
		{
			ID:             3,
			Name:           "Mountain Trek",
			Category:       "adventure",
			Moods:          []string{"adventurous", "excited"},
			Date:           "2025-07-20",
			Time:           "6:00 AM",
			Venue:          "Eagle Ridge Trailhead",
			Price:          60.00,
			AvailableSeats: 3,
			Description:    "Guided sunrise trek.",
		},
		{
			ID:             4,
			Name:           "Pottery Workshop",
			Category:       "workshop",
			Moods:          []string{"creative", "relaxed"},
			Date:           "2025-07-15",
			Time:           "2:00 PM",
			Venue:          "Clay Studio",
			Price:          35.00,
			AvailableSeats: 15,
			Description:    "Hands-on wheel throwing.",
		},
	}
}

// NewTestCatalog returns a catalog over the fixture events with a pinned
// random source, so fallback sampling is reproducible.
func NewTestCatalog(t *testing.T) *catalog.Memory {
	t.Helper()
	return catalog.New(FixtureEvents(), catalog.WithRand(rand.New(rand.NewSource(1))))
}

// ScriptedCompleter returns a fixed completion for every call and records the
// prompts it was given.
type ScriptedCompleter struct {
	Reply     string
	Systems   []string
	Users     []string
	Histories [][]llm.Message
}

func (s *ScriptedCompleter) Complete(ctx context.Context, system string, history []llm.Message, user string) (string, error) {
	s.Systems = append(s.Systems, system)
	s.Users = append(s.Users, user)
	s.Histories = append(s.Histories, history)
	return s.Reply, nil
}

// FailingCompleter always returns an error.
type FailingCompleter struct{}

func (FailingCompleter) Complete(ctx context.Context, system string, history []llm.Message, user string) (string, error) {
	return "", errors.New("completion backend unavailable")
}
