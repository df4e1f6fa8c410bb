package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/xiaot623/ticketbot/internal/domain"
)

// CreateSession registers a fresh conversation and returns its id together
// with the opening greeting.
func (s *Service) CreateSession() (string, string) {
	id := "sess_" + uuid.New().String()[:8]

	sess := &session{data: domain.NewSession()}
	greeting := s.engine.Greeting()
	sess.data.History = append(sess.data.History, domain.Turn{
		Speaker: domain.SpeakerBot,
		Text:    greeting,
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, greeting
}

// Chat processes one user turn and returns the response and resulting state.
func (s *Service) Chat(ctx context.Context, id, content string) (string, domain.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return "", "", err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	reply := s.engine.ProcessMessage(ctx, sess.data, content)
	return reply, sess.data.State, nil
}

// Reset re-initializes the session and returns the fresh greeting.
func (s *Service) Reset(id string) (string, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	greeting := s.engine.Reset(sess.data)
	sess.data.History = append(sess.data.History, domain.Turn{
		Speaker: domain.SpeakerBot,
		Text:    greeting,
	})
	return greeting, nil
}

// History returns a copy of the session transcript.
func (s *Service) History(id string) ([]domain.Turn, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]domain.Turn, len(sess.data.History))
	copy(out, sess.data.History)
	return out, nil
}

// State returns the session's current conversation state.
func (s *Service) State(id string) (domain.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.data.State, nil
}

// Booking projects the session into a booking record. It returns
// domain.ErrNoBooking until the conversation has collected both an event and
// a validated email.
func (s *Service) Booking(id string) (*domain.BookingRecord, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	rec, ok := sess.data.Booking()
	if !ok {
		return nil, domain.ErrNoBooking
	}
	return rec, nil
}
