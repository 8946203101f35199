// Package session owns the visualization config stores handed out to
// clients. Each session wraps one vizconfig.Store behind a lock.
package session

import (
	"sync"
	"time"

	"github.com/kalambet/vizprefs/internal/vizconfig"
)

// Session is one visualization session and its config store.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.RWMutex
	store *vizconfig.Store

	// lastUsed is guarded by the owning Manager's lock.
	lastUsed time.Time
}

// View runs fn with shared access to the store. fn must not mutate it.
func (s *Session) View(fn func(*vizconfig.Store) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.store)
}

// Update runs fn with exclusive access to the store.
func (s *Session) Update(fn func(*vizconfig.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.store)
}

// Info describes a session without exposing its store.
type Info struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
}
