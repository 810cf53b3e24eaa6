package auth

import (
	"context"
	"sync"
	"time"
)

const (
	// MaxLoginAttempts consecutive failures lock the client out.
	MaxLoginAttempts = 5
	// LockoutWindow is how long a locked client stays locked, and also how
	// long a failure streak is remembered.
	LockoutWindow = 15 * time.Minute
)

// AttemptStore tracks consecutive failed logins per client. Implementations
// must be safe for concurrent use. The store is injected into the login
// handler so a multi-instance deployment can back it with Redis instead of
// process memory.
type AttemptStore interface {
	// RecordFailure registers a failed attempt and returns the streak length.
	RecordFailure(ctx context.Context, clientID string) (int, error)
	// Reset clears the streak after a successful login.
	Reset(ctx context.Context, clientID string) error
	// LockedFor returns the remaining lockout duration, zero when unlocked.
	LockedFor(ctx context.Context, clientID string) (time.Duration, error)
}

type attemptEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryAttemptStore keeps streaks in process memory. Expired entries are
// evicted lazily on access.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	now     func() time.Time
}

func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{
		entries: make(map[string]*attemptEntry),
		now:     time.Now,
	}
}

func (s *MemoryAttemptStore) get(clientID string) *attemptEntry {
	entry, ok := s.entries[clientID]
	if !ok {
		return nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, clientID)
		return nil
	}
	return entry
}

func (s *MemoryAttemptStore) RecordFailure(_ context.Context, clientID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.get(clientID)
	if entry == nil {
		entry = &attemptEntry{}
		s.entries[clientID] = entry
	}
	entry.count++
	entry.expiresAt = s.now().Add(LockoutWindow)
	return entry.count, nil
}

func (s *MemoryAttemptStore) Reset(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, clientID)
	return nil
}

func (s *MemoryAttemptStore) LockedFor(_ context.Context, clientID string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.get(clientID)
	if entry == nil || entry.count < MaxLoginAttempts {
		return 0, nil
	}
	return entry.expiresAt.Sub(s.now()), nil
}
