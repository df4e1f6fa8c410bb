package catalog

import "github.com/xiaot623/ticketbot/internal/domain"

// SeedEvents is the built-in event dataset, used when no external catalog is
// configured and to populate a fresh sqlite catalog.
func SeedEvents() []domain.Event {
	return []domain.Event{
		{
			ID:             1,
			Name:           "Tech Innovators Summit 2026",
			Category:       "technology",
			Moods:          []string{"excited", "curious", "motivated"},
			Date:           "2026-03-15",
			Time:           "10:00 AM",
			Venue:          "Silicon Valley Convention Center",
			Price:          49.99,
			AvailableSeats: 150,
			Description:    "Join industry leaders discussing AI, blockchain, and the future of tech.",
		},
		{
			ID:             2,
			Name:           "Acoustic Nights - Live Music",
			Category:       "music",
			Moods:          []string{"relaxed", "happy", "romantic"},
			Date:           "2026-03-20",
			Time:           "7:00 PM",
			Venue:          "The Blue Note Lounge",
			Price:          25.00,
			AvailableSeats: 80,
			Description:    "An intimate evening of acoustic performances by upcoming artists.",
		},
		{
			ID:             3,
			Name:           "GenZ Startup Pitch Night",
			Category:       "business",
			Moods:          []string{"excited", "motivated", "ambitious"},
			Date:           "2026-03-25",
			Time:           "6:00 PM",
			Venue:          "Innovation Hub Downtown",
			Price:          15.00,
			AvailableSeats: 100,
			Description:    "Watch GenZ entrepreneurs pitch their revolutionary ideas.",
		},
		{
			ID:             4,
			Name:           "Mindfulness and Wellness Retreat",
			Category:       "wellness",
			Moods:          []string{"stressed", "tired", "peaceful"},
			Date:           "2026-04-01",
			Time:           "9:00 AM",
			Venue:          "Serenity Gardens",
			Price:          35.00,
			AvailableSeats: 40,
			Description:    "A day of meditation, yoga, and mental wellness workshops.",
		},
		{
			ID:             5,
			Name:           "Retro Gaming Championship",
			Category:       "gaming",
			Moods:          []string{"excited", "playful", "nostalgic"},
			Date:           "2026-04-10",
			Time:           "2:00 PM",
			Venue:          "Arcade Arena",
			Price:          20.00,
			AvailableSeats: 200,
			Description:    "Compete in classic arcade games and win amazing prizes.",
		},
		{
			ID:             6,
			Name:           "Street Food Festival",
			Category:       "food",
			Moods:          []string{"hungry", "adventurous", "happy"},
			Date:           "2026-04-15",
			Time:           "11:00 AM",
			Venue:          "Central Park",
			Price:          10.00,
			AvailableSeats: 500,
			Description:    "Taste cuisines from around the world at this foodie paradise.",
		},
		{
			ID:             7,
			Name:           "AI Art Exhibition",
			Category:       "art",
			Moods:          []string{"curious", "creative", "inspired"},
			Date:           "2026-04-20",
			Time:           "10:00 AM",
			Venue:          "Modern Art Museum",
			Price:          18.00,
			AvailableSeats: 120,
			Description:    "Explore the intersection of artificial intelligence and creativity.",
		},
		{
			ID:             8,
			Name:           "Comedy Night Live",
			Category:       "comedy",
			Moods:          []string{"sad", "stressed", "bored"},
			Date:           "2026-04-25",
			Time:           "8:00 PM",
			Venue:          "Laugh Factory",
			Price:          30.00,
			AvailableSeats: 150,
			Description:    "Laugh your worries away with top stand-up comedians.",
		},
	}
}
