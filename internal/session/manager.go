package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kalambet/vizprefs/internal/vizconfig"
)

// ErrSessionNotFound is returned for unknown or closed session IDs.
var ErrSessionNotFound = errors.New("session not found")

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Manager creates sessions and tracks them until they are closed or evicted.
type Manager struct {
	source vizconfig.Source
	clock  Clock
	idle   time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager whose sessions read defaults from source.
// Sessions unused for longer than idle are evicted; idle <= 0 disables eviction.
func NewManager(source vizconfig.Source, idle time.Duration) *Manager {
	return NewManagerWithClock(source, realClock{}, idle)
}

// NewManagerWithClock creates a Manager with a custom clock (for testing).
func NewManagerWithClock(source vizconfig.Source, clock Clock, idle time.Duration) *Manager {
	return &Manager{
		source:   source,
		clock:    clock,
		idle:     idle,
		logger:   slog.Default(),
		sessions: make(map[string]*Session),
	}
}

// Open initializes a new store from preferences and registers a session
// owning it.
func (m *Manager) Open() (*Session, error) {
	store, err := vizconfig.New(m.source)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	now := m.clock.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		store:     store,
		lastUsed:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug("session opened", "session_id", s.ID)
	return s, nil
}

// Get returns the session with id and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.lastUsed = m.clock.Now()
	return s, nil
}

// Close forgets the session with id.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	m.logger.Debug("session closed", "session_id", id)
	return nil
}

// List describes the open sessions, oldest first.
func (m *Manager) List() []Info {
	m.mu.Lock()
	infos := make([]Info, 0, len(m.sessions))
	for _, s := range m.sessions {
		infos = append(infos, Info{ID: s.ID, CreatedAt: s.CreatedAt, LastUsed: s.lastUsed})
	}
	m.mu.Unlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle closes sessions unused for longer than the idle timeout and
// returns how many were closed.
func (m *Manager) EvictIdle() int {
	if m.idle <= 0 {
		return 0
	}
	cutoff := m.clock.Now().Add(-m.idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
			m.logger.Info("evicted idle session", "session_id", id, "last_used", s.lastUsed)
		}
	}
	return evicted
}
