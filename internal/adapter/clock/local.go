// Package clock provides ledger sequence sources.
package clock

import (
	"context"
	"errors"
	"time"
)

// Local derives the ledger sequence from wall time: one ledger closes every
// Interval starting at Start on Genesis.
type Local struct {
	Genesis  time.Time
	Interval time.Duration
	Start    uint32

	now func() time.Time
}

// NewLocal returns a Local clock. Interval must be positive.
func NewLocal(genesis time.Time, interval time.Duration, start uint32) (*Local, error) {
	if interval <= 0 {
		return nil, errors.New("ledger interval must be positive")
	}
	return &Local{Genesis: genesis, Interval: interval, Start: start, now: time.Now}, nil
}

func (c *Local) Sequence(context.Context) (uint32, error) {
	elapsed := c.now().Sub(c.Genesis)
	if elapsed < 0 {
		return c.Start, nil
	}
	return c.Start + uint32(elapsed/c.Interval), nil
}
