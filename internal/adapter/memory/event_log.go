package memory

import (
	"context"
	"slices"
	"sync"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// EventLog implements port.EventLog as an append-only slice.
type EventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewEventLog() *EventLog { return &EventLog{} }

// Publish appends ev to the log.
func (l *EventLog) Publish(_ context.Context, ev domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
	return nil
}

// List returns up to limit events starting at offset.
func (l *EventLog) List(_ context.Context, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = port.DefaultEventLimit
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if offset < 0 || offset >= len(l.events) {
		return []domain.Event{}, nil
	}
	end := len(l.events)
	if offset+limit < end {
		end = offset + limit
	}
	return slices.Clone(l.events[offset:end]), nil
}

// Snapshot records the log length and returns a function truncating back to it.
func (l *EventLog) Snapshot() func() {
	l.mu.Lock()
	n := len(l.events)
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.events = l.events[:n]
		l.mu.Unlock()
	}
}
