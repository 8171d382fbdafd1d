// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live ladder sessions for the HTTP adapter.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Update runs its callback under the write lock, so submissions are
//     serialized and a Session never sees two guesses at once.
//   - Sessions idle for longer than the TTL are evicted by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterleap/internal/game"
)

// ErrNotFound is returned for unknown or evicted session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the interface the HTTP adapter uses to keep sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// View runs fn with shared access to the session. fn must not mutate it.
	View(ctx context.Context, id string, fn func(*game.Session) error) error
}

type entry struct {
	session *game.Session
	touched time.Time
}

// Memory is a map-based Store.
type Memory struct {
	mu       sync.RWMutex      // guards sessions
	sessions map[string]*entry // keyed by Session.ID()
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs an empty store. ttl <= 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *Memory {
	return &Memory{sessions: make(map[string]*entry), ttl: ttl, now: time.Now}
}

// Save adds or replaces the session.
func (m *Memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{session: s, touched: m.now()}
	return nil
}

// Update looks up id and runs fn under the write lock.
func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e.session)
}

// View looks up id and runs fn under the read lock.
func (m *Memory) View(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(e.session)
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Memory) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.touched.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Memory) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Int("live", m.Len()).Msg("swept idle sessions")
			}
		}
	}
}
