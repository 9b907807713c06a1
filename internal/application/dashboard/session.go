package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Workspace holds the pages one session has opened.
type Workspace struct {
	mu       sync.Mutex
	registry *Registry
	cfg      Config
	pages    map[domain.Kind]Page
	lastSeen time.Time
}

// Page returns the session's page for kind, creating it on first use.
func (w *Workspace) Page(kind domain.Kind) (Page, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pages[kind]; ok {
		return p, nil
	}
	p, ok := w.registry.build(kind, w.cfg)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
	}
	w.pages[kind] = p
	return p, nil
}

// Sessions keeps one Workspace per session id and forgets idle ones.
type Sessions struct {
	mu         sync.Mutex
	registry   *Registry
	cfg        Config
	now        func() time.Time
	workspaces map[string]*Workspace
}

// NewSessions returns an empty session table. cfg must already carry defaults.
func NewSessions(registry *Registry, cfg Config) *Sessions {
	return &Sessions{
		registry:   registry,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace for id, creating it when needed, and marks it
// as used.
func (s *Sessions) Get(id string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workspaces[id]
	if !ok {
		w = &Workspace{
			registry: s.registry,
			cfg:      s.cfg,
			pages:    make(map[domain.Kind]Page),
		}
		s.workspaces[id] = w
	}
	w.lastSeen = s.now()
	return w
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}

// Sweep drops workspaces idle for longer than the session TTL and returns
// how many were dropped.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.SessionTTL)
	dropped := 0
	for id, w := range s.workspaces {
		if w.lastSeen.Before(cutoff) {
			delete(s.workspaces, id)
			dropped++
		}
	}
	return dropped
}
