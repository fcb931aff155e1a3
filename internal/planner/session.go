// README: In-memory session registry; one locked state per planning session.
package planner

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"wayfare/internal/trip"
)

var ErrSessionNotFound = errors.New("session not found")

// Session pairs a trip state with the lock that serializes node executions
// against it. Every caller must hold the lock for the full span of a run,
// patch, or read of the state.
type Session struct {
	ID string

	mu    sync.Mutex
	State *trip.State
}

// Lock serializes access to the session's state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Sessions is the process-wide session store. Sessions live until deleted;
// there is no persistence across restarts.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: map[string]*Session{}}
}

// Create registers a new session around a fresh state.
func (s *Sessions) Create(prefs trip.Preferences) *Session {
	sess := &Session{
		ID:    uuid.NewString(),
		State: trip.NewState(prefs),
	}
	s.mu.Lock()
	s.byID[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get looks a session up by ID.
func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.byID, id)
	s.mu.Unlock()
}
