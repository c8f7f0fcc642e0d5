package bot

import (
	"sync"
	"time"
)

// Store holds active sessions keyed by phone number, with TTL expiry so
// abandoned conversations do not accumulate forever. A per-entry mutex
// serializes two near-simultaneous messages from the same sender, so a step
// can never be double-advanced.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*storeEntry
	ttl     time.Duration
}

type storeEntry struct {
	mu         sync.Mutex
	session    *Session
	expiration int64
}

// NewStore creates a session store and starts a background sweeper that
// evicts expired sessions once a minute.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		entries: make(map[string]*storeEntry),
		ttl:     ttl,
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			s.DeleteExpired()
		}
	}()

	return s
}

// With runs fn against the session for phone, creating one in the menu state
// when none exists (or when the existing one has expired). The entry stays
// locked for the duration of fn. When fn returns true the session is removed:
// the conversation reached a terminal state or the user stopped.
func (s *Store) With(phone string, fn func(sess *Session, created bool) (done bool)) {
	now := time.Now()

	s.mu.Lock()
	e, ok := s.entries[phone]
	created := false
	if !ok || now.UnixNano() > e.expiration {
		e = &storeEntry{session: newSession(phone)}
		s.entries[phone] = e
		created = true
	}
	e.expiration = now.Add(s.ttl).UnixNano()
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.UpdatedAt = now
	if fn(e.session, created) {
		s.Delete(phone)
	}
}

// Get returns a snapshot-free pointer to the session, if present and fresh.
// Intended for inspection (tests, metrics), not for mutation.
func (s *Store) Get(phone string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[phone]
	if !ok || time.Now().UnixNano() > e.expiration {
		return nil, false
	}
	return e.session, true
}

// Delete removes the session for phone.
func (s *Store) Delete(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, phone)
}

// DeleteExpired removes all expired sessions.
func (s *Store) DeleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixNano()
	for k, e := range s.entries {
		if now > e.expiration {
			delete(s.entries, k)
		}
	}
}

// Len reports the number of live sessions; exported for the metrics gauge.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
