package session

import (
	"sort"
	"sync"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Manager keeps the live sessions by ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     []Option
}

// NewManager creates an empty manager. The options are applied to every
// session it creates.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create starts a session from fen, or the initial position when fen is
// empty, and registers it.
func (m *Manager) Create(fen string) (*Session, error) {
	s, err := NewFromFEN(fen, m.opts...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrap(errors.ErrGameNotFound, id)
	}
	return s, nil
}

// Delete removes the session with the given ID.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.Wrap(errors.ErrGameNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}

// IDs returns the registered session IDs in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
