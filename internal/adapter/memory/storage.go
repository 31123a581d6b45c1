// Package memory provides in-process implementations of the ledger ports.
// They back the development server and the state machine tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

type entry struct {
	value     []byte
	liveUntil uint32
}

// Storage implements port.Storage over a map. Values are JSON encoded so
// callers never share memory with stored state.
type Storage struct {
	mu      sync.Mutex
	clock   port.Clock
	entries map[domain.DataKey]entry
}

// NewStorage returns empty storage whose lifetimes are measured against clock.
func NewStorage(clock port.Clock) *Storage {
	return &Storage{clock: clock, entries: make(map[domain.DataKey]entry)}
}

// Has reports whether key has been written.
func (s *Storage) Has(_ context.Context, key domain.DataKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok, nil
}

// Get decodes the value stored under key into dst. It returns false and
// leaves dst untouched when the key was never written.
func (s *Storage) Get(_ context.Context, key domain.DataKey, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.value, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value as JSON and stores it under key. An existing entry
// keeps its lifetime.
func (s *Storage) Set(_ context.Context, key domain.DataKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	e.value = raw
	s.entries[key] = e
	return nil
}

// ExtendTTL pushes every entry that would expire within threshold ledgers
// of the current sequence out to extendTo ledgers from it. Entries already
// live past the threshold are left alone.
func (s *Storage) ExtendTTL(ctx context.Context, threshold, extendTo uint32) error {
	seq, err := s.clock.Sequence(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if e.liveUntil < seq+threshold {
			e.liveUntil = seq + extendTo
			s.entries[k] = e
		}
	}
	return nil
}

// LiveUntil returns the last ledger the entry stays live for, 0 if absent.
func (s *Storage) LiveUntil(key domain.DataKey) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key].liveUntil
}

// Snapshot copies the entries and returns a function restoring the copy.
func (s *Storage) Snapshot() func() {
	s.mu.Lock()
	saved := maps.Clone(s.entries)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.entries = saved
		s.mu.Unlock()
	}
}
