package ledger

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// DiscardSink drops every event.
type DiscardSink struct{}

func (DiscardSink) Publish(context.Context, model.Event) {}

// MemorySink keeps published events in memory.
type MemorySink struct {
	mu     sync.Mutex
	events []model.Event
}

func (s *MemorySink) Publish(_ context.Context, ev model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// Events returns a copy of everything published so far.
func (s *MemorySink) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Reset forgets recorded events.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
