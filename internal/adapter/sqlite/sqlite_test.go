package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

var (
	contract = domain.MustParseAddress("CAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAODX")
	token    = domain.MustParseAddress("CAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAKAL")
	alice    = domain.MustParseAddress("GABAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEJXA")
	bob      = domain.MustParseAddress("GABQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQHGPC")
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open("  ")
	assert.Error(t, err)
}

func TestStorage(t *testing.T) {
	ctx := context.Background()
	clock := memory.NewClock(50)
	s := NewStorage(openTestDB(t), contract, clock)

	ok, err := s.Has(ctx, domain.KeyOwner)
	require.NoError(t, err)
	assert.False(t, ok)

	var owner domain.Address
	ok, err = s.Get(ctx, domain.KeyOwner, &owner)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, domain.KeyOwner, alice))
	require.NoError(t, s.Set(ctx, domain.KeyDeposits, map[domain.Address]int64{bob: 7}))

	ok, err = s.Get(ctx, domain.KeyOwner, &owner)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, alice, owner)

	var deposits map[domain.Address]int64
	_, err = s.Get(ctx, domain.KeyDeposits, &deposits)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deposits[bob])

	require.NoError(t, s.ExtendTTL(ctx, 100, 1000))
	live, err := s.LiveUntil(ctx, domain.KeyOwner)
	require.NoError(t, err)
	assert.Equal(t, uint32(1050), live)

	clock.Set(100)
	require.NoError(t, s.ExtendTTL(ctx, 100, 1000))
	live, err = s.LiveUntil(ctx, domain.KeyOwner)
	require.NoError(t, err)
	assert.Equal(t, uint32(1050), live)
}

func TestTokenLedger(t *testing.T) {
	ctx := context.Background()
	l := NewTokenLedger(openTestDB(t))
	require.NoError(t, l.Mint(ctx, token, alice, 100))

	require.NoError(t, l.Transfer(ctx, token, alice, bob, 60))
	a, err := l.Balance(ctx, token, alice)
	require.NoError(t, err)
	b, err := l.Balance(ctx, token, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(40), a)
	assert.Equal(t, int64(60), b)

	err = l.Transfer(ctx, token, alice, bob, 41)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, port.ErrInsufficientBalance)

	require.NoError(t, l.Transfer(ctx, token, alice, alice, 40))
	a, err = l.Balance(ctx, token, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(40), a)
}

func TestUnitOfWorkRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewStorage(db, contract, memory.NewClock(1))
	tokens := NewTokenLedger(db)
	events := NewEventLog(db, contract)
	require.NoError(t, tokens.Mint(ctx, token, alice, 100))

	boom := errors.New("boom")
	err := db.Do(ctx, func(ctx context.Context) error {
		require.NoError(t, tokens.Transfer(ctx, token, alice, bob, 30))
		require.NoError(t, store.Set(ctx, domain.KeyTotalRaised, int64(30)))
		require.NoError(t, events.Publish(ctx, domain.Event{ID: uuid.New(), Kind: domain.EventDeposit}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	a, err := tokens.Balance(ctx, token, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(100), a)
	ok, err := store.Has(ctx, domain.KeyTotalRaised)
	require.NoError(t, err)
	assert.False(t, ok)
	evs, err := events.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, evs)
}

func TestEventLog(t *testing.T) {
	ctx := context.Background()
	l := NewEventLog(openTestDB(t), contract)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	dep := domain.Event{ID: uuid.New(), Kind: domain.EventDeposit, Address: alice, Amount: 30, TotalRaised: 30, Ledger: 12, CreatedAt: created}
	ref := domain.Event{ID: uuid.New(), Kind: domain.EventRefund, Address: alice, Amount: 30, TotalRaised: 99, Ledger: 40, CreatedAt: created}
	require.NoError(t, l.Publish(ctx, dep))
	require.NoError(t, l.Publish(ctx, ref))

	evs, err := l.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.True(t, created.Equal(evs[0].CreatedAt))
	evs[0].CreatedAt = created
	assert.Equal(t, dep, evs[0])
	assert.Equal(t, ref.ID, evs[1].ID)
	assert.Zero(t, evs[1].TotalRaised, "only deposits carry the running total")

	evs, err = l.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, domain.EventRefund, evs[0].Kind)
}

func TestEventLogDefaultLimit(t *testing.T) {
	ctx := context.Background()
	l := NewEventLog(openTestDB(t), contract)
	for i := range port.DefaultEventLimit + 5 {
		require.NoError(t, l.Publish(ctx, domain.Event{ID: uuid.New(), Kind: domain.EventRefund, Address: alice, Amount: int64(i + 1), Ledger: 1}))
	}
	evs, err := l.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, evs, port.DefaultEventLimit)

	evs, err = l.List(ctx, 0, port.DefaultEventLimit+10)
	require.NoError(t, err)
	assert.NotNil(t, evs)
	assert.Empty(t, evs)
}
