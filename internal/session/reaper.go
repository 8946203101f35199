package session

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically evicts idle sessions.
type Reaper struct {
	manager  *Manager
	interval time.Duration
	logger   *slog.Logger
}

// NewReaper creates a Reaper for m.
// If interval is <= 0, it defaults to one minute.
func NewReaper(m *Manager, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reaper{
		manager:  m,
		interval: interval,
		logger:   slog.Default(),
	}
}

// Run evicts idle sessions every interval until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.manager.EvictIdle(); n > 0 {
				r.logger.Debug("reaper pass", "evicted", n, "open", r.manager.Len())
			}
		}
	}
}
