package clock

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSequence(t *testing.T) {
	genesis := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewLocal(genesis, 5*time.Second, 10)
	require.NoError(t, err)

	cases := []struct {
		at   time.Time
		want uint32
	}{
		{genesis.Add(-time.Hour), 10},
		{genesis, 10},
		{genesis.Add(4999 * time.Millisecond), 10},
		{genesis.Add(5 * time.Second), 11},
		{genesis.Add(time.Hour), 10 + 720},
	}
	for _, tc := range cases {
		c.now = func() time.Time { return tc.at }
		seq, err := c.Sequence(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tc.want, seq, tc.at)
	}

	_, err = NewLocal(genesis, 0, 1)
	assert.Error(t, err)
}

type fakeHealth struct {
	calls    atomic.Int32
	failures int32
	seqs     []uint32
}

func (f *fakeHealth) LatestLedger(context.Context) (uint32, error) {
	n := f.calls.Add(1)
	if n <= f.failures {
		return 0, errors.New("unavailable")
	}
	i := int(n-f.failures) - 1
	if i >= len(f.seqs) {
		i = len(f.seqs) - 1
	}
	return f.seqs[i], nil
}

func TestRPCRetries(t *testing.T) {
	src := &fakeHealth{failures: 2, seqs: []uint32{500}}
	c := NewRPCFromSource(src, 3, nil)

	seq, err := c.Sequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(500), seq)
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestRPCGivesUp(t *testing.T) {
	src := &fakeHealth{failures: 100, seqs: []uint32{1}}
	c := NewRPCFromSource(src, 1, nil)

	_, err := c.Sequence(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRPCIsMonotonic(t *testing.T) {
	src := &fakeHealth{seqs: []uint32{700, 650, 710}}
	c := NewRPCFromSource(src, 0, nil)
	ctx := context.Background()

	var got []uint32
	for range 3 {
		seq, err := c.Sequence(ctx)
		require.NoError(t, err)
		got = append(got, seq)
	}
	assert.Equal(t, []uint32{700, 700, 710}, got)
}
