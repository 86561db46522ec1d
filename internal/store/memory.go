// internal/store/memory.go
//
// In-memory store of published game snapshots.
// The input loop owns the *game.Game; after every operation it publishes a
// Snapshot here, and readers (the diagnostics server) only ever see copies.
//
// Characteristics:
//   - Entries keyed by game ID, plus a pointer to the most recently saved one.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/ferdle/internal/game"
)

// ErrNotFound is returned by Get and Latest when nothing matches.
var ErrNotFound = errors.New("not found")

// Entry is one published state. Secret is kept apart from the Snapshot so
// that only debug readers see it while a game is still running.
type Entry struct {
	Snapshot  game.Snapshot `json:"snapshot"`
	Secret    string        `json:"secret"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Store defines the interface for publishing and reading game state.
type Store interface {
	// Save records the current state of g.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves the entry for a game ID.
	Get(ctx context.Context, id string) (Entry, error)

	// Latest returns the most recently saved entry.
	Latest(ctx context.Context) (Entry, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	games  map[string]Entry
	latest string
	now    func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]Entry), now: time.Now}
}

// Save snapshots g and stores it under g.ID. Must be called from the
// goroutine that drives g.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	e := Entry{Snapshot: g.Snapshot(), Secret: g.Secret(), UpdatedAt: m.now().UTC()}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = e
	m.latest = g.ID
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e, nil
	}
	return Entry{}, ErrNotFound
}

// Latest returns the entry saved last.
func (m *memory) Latest(ctx context.Context) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == "" {
		return Entry{}, ErrNotFound
	}
	return m.games[m.latest], nil
}
