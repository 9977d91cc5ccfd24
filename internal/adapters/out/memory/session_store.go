// Package memory provides the in-process session store.
package memory

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/session"
)

// SessionStore keeps the single operator session in process memory.
// The session is created lazily on first access. The mutex is held for the
// whole View/Update callback, so every read and every read-mutate-write
// transition on the aggregate is serialized across HTTP handlers, the gesture
// commit and the resize job.
type SessionStore struct {
	mu   sync.Mutex
	sess *session.Session
}

// NewSessionStore creates an empty store; the session appears on first access.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// sessionLocked returns the session, creating it in its initial state on
// first use. Callers must hold mu.
func (s *SessionStore) sessionLocked() (*session.Session, error) {
	if s.sess == nil {
		sess, err := session.NewSession(kernel.NewUUID())
		if err != nil {
			return nil, err
		}
		s.sess = sess
	}
	return s.sess, nil
}

// View runs fn with the session for reading, under the store's lock.
func (s *SessionStore) View(_ context.Context, fn func(sess *session.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked()
	if err != nil {
		return err
	}
	return fn(sess)
}

// Update runs fn with the session for a state transition, under the store's
// lock. Mutations made by fn take effect in place.
func (s *SessionStore) Update(_ context.Context, fn func(sess *session.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionLocked()
	if err != nil {
		return err
	}
	return fn(sess)
}
