// Package service owns the live conversation sessions and coordinates the
// engine, catalog, and credential encoding for the transports.
package service

import (
	"sync"

	"github.com/xiaot623/ticketbot/internal/adapter/optimizer"
	"github.com/xiaot623/ticketbot/internal/catalog"
	"github.com/xiaot623/ticketbot/internal/config"
	"github.com/xiaot623/ticketbot/internal/domain"
	"github.com/xiaot623/ticketbot/internal/engine"
)

// Service is the application service shared by the HTTP and WebSocket
// transports.
type Service struct {
	catalog   catalog.Catalog
	engine    *engine.Engine
	optimizer *optimizer.Client // nil when optimization is disabled
	config    *config.Config

	mu       sync.Mutex
	sessions map[string]*session
}

// session pairs the conversation data with its own lock. Turns against one
// session are serialized; distinct sessions are independent.
type session struct {
	mu   sync.Mutex
	data *domain.Session
}

// New creates the service. A nil optimizer skips image optimization.
func New(cat catalog.Catalog, eng *engine.Engine, opt *optimizer.Client, cfg *config.Config) *Service {
	return &Service{
		catalog:   cat,
		engine:    eng,
		optimizer: opt,
		config:    cfg,
		sessions:  make(map[string]*session),
	}
}

func (s *Service) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}
