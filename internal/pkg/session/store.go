package session

import (
	"encoding/json"
	"sync"
	"time"
)

// Session is the record of the currently signed-in operator.
// Absence (nil) means logged out.
type Session struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Persister stores the serialized session outside process memory so it
// survives a restart. A nil payload from Load means no persisted session.
type Persister interface {
	Load() ([]byte, time.Time, error)
	Save(payload []byte) error
	Delete() error
}

// Store holds the current session in memory and writes every change
// through to its Persister before returning. Memory and persisted state
// never observably disagree.
type Store struct {
	mu      sync.Mutex
	current *Session
	touched time.Time
	p       Persister
}

// NewStore creates a store, loading any previously persisted session.
// An absent or corrupt persisted value initializes the store empty;
// corrupt is not treated as an error.
func NewStore(p Persister) *Store {
	s := &Store{p: p}

	payload, updatedAt, err := p.Load()
	if err != nil || len(payload) == 0 {
		return s
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil || sess.Username == "" {
		return s
	}

	s.current = &sess
	s.touched = updatedAt
	return s
}

// Get returns a copy of the current session, or nil when logged out
func (s *Store) Get() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Set installs a session, persisting it before the in-memory value is
// updated. On a persist failure the store is left unchanged.
func (s *Store) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.p.Save(payload); err != nil {
		return err
	}

	s.current = &sess
	s.touched = time.Now()
	return nil
}

// Clear removes the session from memory and from the persister.
// Safe to call when already empty.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.p.Delete(); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// ClearIfIdle clears a session that has not been touched within ttl.
// Returns true when a session was cleared.
func (s *Store) ClearIfIdle(ttl time.Duration) (bool, error) {
	s.mu.Lock()
	idle := s.current != nil && time.Since(s.touched) > ttl
	s.mu.Unlock()

	if !idle {
		return false, nil
	}
	return true, s.Clear()
}
