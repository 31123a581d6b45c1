package memory

import (
	"context"
	"sync"
)

// Clock is a manually driven ledger clock.
type Clock struct {
	mu  sync.Mutex
	seq uint32
}

func NewClock(start uint32) *Clock { return &Clock{seq: start} }

// Sequence returns the current ledger sequence. It never fails.
func (c *Clock) Sequence(context.Context) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq, nil
}

// Advance moves the clock forward by n ledgers.
func (c *Clock) Advance(n uint32) {
	c.mu.Lock()
	c.seq += n
	c.mu.Unlock()
}

// Set moves the clock to seq. Sequences never go backwards.
func (c *Clock) Set(seq uint32) {
	c.mu.Lock()
	if seq > c.seq {
		c.seq = seq
	}
	c.mu.Unlock()
}
