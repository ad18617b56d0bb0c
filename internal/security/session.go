package security

import (
	"sync"
	"time"
)

// SessionStore tracks per-admin activity timestamps for freshness checks.
// The in-memory implementation is only correct for a single instance; a
// multi-instance deployment should back this interface with a shared store
// with TTL support.
type SessionStore interface {
	// Touch refreshes the admin's session and reports whether it was still
	// fresh within the timeout. A first touch always succeeds.
	Touch(adminID int32, now time.Time) bool
	// Invalidate drops the admin's session.
	Invalidate(adminID int32)
}

type memorySessionStore struct {
	mu      sync.Mutex
	timeout time.Duration
	last    map[int32]time.Time
}

func NewMemorySessionStore(timeout time.Duration) SessionStore {
	return &memorySessionStore{
		timeout: timeout,
		last:    map[int32]time.Time{},
	}
}

func (s *memorySessionStore) Touch(adminID int32, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.last[adminID]
	if ok && now.Sub(last) > s.timeout {
		delete(s.last, adminID)
		return false
	}
	s.last[adminID] = now
	return true
}

func (s *memorySessionStore) Invalidate(adminID int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.last, adminID)
}
