// Package session keeps the per-client navigation state for the lifetime of
// the process. Nothing here is persisted.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"musicpass-backend/models"
	"musicpass-backend/navigation"
)

type Session struct {
	ID        string
	State     navigation.State
	CreatedAt time.Time
	LastSeen  time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a logged out session.
func (s *Store) Create() Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		State:     navigation.Initial(),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a copy of the session and marks it as seen.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}
	sess.LastSeen = s.now()
	return *sess, nil
}

// Apply runs a navigation action against the stored state. A rejected action
// leaves the session unchanged.
func (s *Store) Apply(id string, action navigation.Action) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session %s: %w", id, models.ErrSessionNotFound)
	}
	sess.LastSeen = s.now()

	next, err := navigation.Apply(sess.State, action)
	if err != nil {
		return *sess, err
	}
	sess.State = next
	return *sess, nil
}

// Sweep drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
