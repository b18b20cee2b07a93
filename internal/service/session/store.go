package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store is the in-memory session registry, keyed by the uuid carried in
// the session cookie.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, if present.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Create registers a new session with a fresh uuid.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession(uuid.New().String())
	s.sessions[sess.ID] = sess
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
