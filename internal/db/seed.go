package db

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Seed credits demo balances of token to each account so contributors can
// pledge against a fresh ledger. Accounts that already hold at least amount
// are left alone, which makes repeated runs harmless.
func Seed(ctx context.Context, tokens port.TokenLedger, token domain.Address, accounts []domain.Address, amount int64, logger *slog.Logger) error {
	for _, acc := range accounts {
		balance, err := tokens.Balance(ctx, token, acc)
		if err != nil {
			return fmt.Errorf("seed %s: %w", acc, err)
		}
		if balance >= amount {
			continue
		}
		if err = tokens.Mint(ctx, token, acc, amount-balance); err != nil {
			return fmt.Errorf("seed %s: %w", acc, err)
		}
		logger.InfoContext(ctx, "seeded balance",
			slog.String("account", acc.String()),
			slog.String("amount", domain.FormatAmount(amount)),
		)
	}
	return nil
}
