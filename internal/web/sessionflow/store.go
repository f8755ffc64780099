package sessionflow

import (
	"sync"
	"time"
)

// DefaultTTL is how long an untouched flow survives.
const DefaultTTL = 30 * time.Minute

type record struct {
	flow      Flow
	touchedAt time.Time
}

// Store holds flows in memory, keyed by the visitor's flow cookie.
// Flows expire after an idle TTL; navigating away from the session page
// resets them explicitly.
type Store struct {
	mu    sync.Mutex
	flows map[string]record
	ttl   time.Duration
	now   func() time.Time
}

// NewStore creates a flow store with the given idle TTL. A zero ttl
// uses DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		flows: map[string]record{},
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the flow for a visitor, or a fresh listing flow when none
// exists or the stored one has expired.
func (s *Store) Get(id string) Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if rec, ok := s.flows[id]; ok {
		return rec.flow
	}
	return Flow{Stage: StageListing}
}

// Put stores the flow for a visitor and refreshes its idle deadline.
func (s *Store) Put(id string, flow Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.flows[id] = record{flow: flow, touchedAt: s.now()}
}

// Reset discards the visitor's flow. Used when the visitor navigates to
// any dashboard page outside the session lifecycle.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, id)
}

func (s *Store) purgeLocked() {
	deadline := s.now().Add(-s.ttl)
	for id, rec := range s.flows {
		if rec.touchedAt.Before(deadline) {
			delete(s.flows, id)
		}
	}
}
