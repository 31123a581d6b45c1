package postgres

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/config/configs"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/db"
)

var (
	alice = domain.MustParseAddress("GABAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEJXA")
	bob   = domain.MustParseAddress("GABQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQHGPC")
)

// testPool connects to PSQL_TEST_ADDRESS and migrates it. Each test scopes
// its rows by a fresh contract id so runs do not interfere.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	_, err := db.Migrate(addr)
	require.NoError(t, err)

	u, err := url.Parse(addr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func freshContract(t *testing.T) domain.Address {
	t.Helper()
	id := uuid.New()
	hash := make([]byte, 32)
	copy(hash, id[:])
	copy(hash[16:], id[:])
	addr, err := domain.ContractAddress(hash)
	require.NoError(t, err)
	return addr
}

func freshToken(t *testing.T) domain.Address {
	t.Helper()
	return freshContract(t)
}

func TestStorageAndTTL(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	clock := memory.NewClock(10)
	s := NewStorage(pool, freshContract(t), clock)

	ok, err := s.Has(ctx, domain.KeyOwner)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, domain.KeyOwner, alice))
	require.NoError(t, s.Set(ctx, domain.KeyDeposits, map[domain.Address]int64{bob: 5}))
	require.NoError(t, s.ExtendTTL(ctx, 100, 1000))

	var owner domain.Address
	ok, err = s.Get(ctx, domain.KeyOwner, &owner)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, alice, owner)

	var deposits map[domain.Address]int64
	_, err = s.Get(ctx, domain.KeyDeposits, &deposits)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deposits[bob])
}

func TestTransferRollsBackWithUnitOfWork(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	tok := freshToken(t)
	contract := freshContract(t)
	tokens := NewTokenLedger(pool)
	events := NewEventLog(pool, contract)
	uow := NewUnitOfWork(pool)
	require.NoError(t, tokens.Mint(ctx, tok, alice, 100))

	err := tokens.Transfer(ctx, tok, alice, bob, 101)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, port.ErrInsufficientBalance)

	boom := errors.New("boom")
	err = uow.Do(ctx, func(ctx context.Context) error {
		if err := tokens.Transfer(ctx, tok, alice, bob, 40); err != nil {
			return err
		}
		if err := events.Publish(ctx, domain.Event{ID: uuid.New(), Kind: domain.EventDeposit, Address: alice, Amount: 40, CreatedAt: time.Now()}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	a, err := tokens.Balance(ctx, tok, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(100), a)
	evs, err := events.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, evs)

	require.NoError(t, uow.Do(ctx, func(ctx context.Context) error {
		return tokens.Transfer(ctx, tok, alice, bob, 40)
	}))
	b, err := tokens.Balance(ctx, tok, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(40), b)
}
