// Package journal records parking state changes outside the request path.
package journal

import (
	"context"
	"sync"

	"smart-parking/internal/usecase/parking"
)

type Store interface {
	Append(ctx context.Context, evt parking.Event) error
}

// MemoryStore keeps events in process. It backs tests and runs where no
// database is configured.
type MemoryStore struct {
	mu     sync.Mutex
	events []parking.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, evt parking.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

func (s *MemoryStore) Events() []parking.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]parking.Event, len(s.events))
	copy(out, s.events)
	return out
}
