package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/core/domain"
)

func TestSeedTopsUpToAmount(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	token := domain.MustParseAddress("CAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAKAL")
	alice := domain.MustParseAddress("GABAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEJXA")
	bob := domain.MustParseAddress("GABQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQHGPC")

	tokens := memory.NewTokenLedger()
	require.NoError(t, tokens.Mint(ctx, token, bob, 300))

	accounts := []domain.Address{alice, bob}
	require.NoError(t, Seed(ctx, tokens, token, accounts, 1000, logger))
	require.NoError(t, Seed(ctx, tokens, token, accounts, 1000, logger))

	for _, acc := range accounts {
		b, err := tokens.Balance(ctx, token, acc)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), b, acc)
	}
}
