// internal/store/memory.go
//
// In-memory registry of live solver sessions.
// Sessions are ephemeral: state is lost when the process restarts.
//
// Characteristics:
//   - Entries are keyed by a random uuid.
//   - The map is guarded by an RWMutex (concurrent reads, exclusive writes).
//   - Each entry serializes access to its Session, which is single-caller.
//   - Errors are returned for missing IDs.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordlebot/internal/solver"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the registry interface for live sessions.
type Store interface {
	// Create registers s under a fresh ID.
	Create(ctx context.Context, s *solver.Session) (*Entry, error)

	// Get retrieves a session entry by ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete forgets a session. Unknown IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Len reports the number of live sessions.
	Len() int
}

// Entry wraps one session with its identity.
type Entry struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	session *solver.Session
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *solver.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]*Entry // keyed by Entry.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Create(ctx context.Context, s *solver.Session) (*Entry, error) {
	if s == nil {
		return nil, errors.New("nil session")
	}
	e := &Entry{ID: uuid.NewString(), Created: time.Now().UTC(), session: s}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return e, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
