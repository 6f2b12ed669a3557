package registry

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps reservations in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	names map[string]time.Time // expiry; zero never expires
	ttl   time.Duration
	now   func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryTTL expires reservations after ttl. Non-positive values disable expiry.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.ttl = max(ttl, 0) }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore returns an empty store. Reservations never expire unless
// WithMemoryTTL is set.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		names: make(map[string]time.Time),
		ttl:   DefaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve claims name. The empty name is a valid name.
func (s *MemoryStore) Reserve(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.held(name, now) {
		return false, nil
	}
	var expires time.Time
	if s.ttl > 0 {
		expires = now.Add(s.ttl)
	}
	s.names[name] = expires
	return true, nil
}

// Release frees name.
func (s *MemoryStore) Release(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.names, name)
	s.mu.Unlock()
	return nil
}

// Taken reports whether name is held and not expired.
func (s *MemoryStore) Taken(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held(name, s.now()), nil
}

// Len returns the number of live reservations.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for name := range s.names {
		if s.held(name, now) {
			n++
		}
	}
	return n
}

// held must be called with s.mu held. Expired entries are dropped.
func (s *MemoryStore) held(name string, now time.Time) bool {
	expires, ok := s.names[name]
	if !ok {
		return false
	}
	if !expires.IsZero() && !now.Before(expires) {
		delete(s.names, name)
		return false
	}
	return true
}
