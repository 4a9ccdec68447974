package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the credential for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	sess Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess.IsZero() {
		return Session{}, ErrNotFound
	}
	return s.sess, nil
}

func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	s.sess = Session{}
	s.mu.Unlock()
	return nil
}
