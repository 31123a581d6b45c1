package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// TokenLedger implements port.TokenLedger over the token_balances table.
// Transfers lock the sender row so concurrent transfers cannot overdraw it.
type TokenLedger struct {
	pool *pgxpool.Pool
}

func NewTokenLedger(pool *pgxpool.Pool) *TokenLedger {
	return &TokenLedger{pool: pool}
}

// Transfer debits from and credits to in one transaction, joining the
// caller's when ctx carries one.
func (l *TokenLedger) Transfer(ctx context.Context, token, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount %d", domain.ErrTransferFailed, amount)
	}
	return withTx(ctx, l.pool, func(ctx context.Context, q querier) error {
		var balance int64
		err := q.QueryRow(ctx,
			`SELECT balance FROM token_balances WHERE token = $1 AND address = $2 FOR UPDATE`,
			token, from,
		).Scan(&balance)
		if err != nil && !isNoRows(err) {
			return fmt.Errorf("%w: lock %s: %w", domain.ErrTransferFailed, from, err)
		}
		if balance < amount {
			return fmt.Errorf("%w: %s has %d, needs %d: %w", domain.ErrTransferFailed, from, balance, amount, port.ErrInsufficientBalance)
		}
		if _, err = q.Exec(ctx,
			`UPDATE token_balances SET balance = balance - $3, updated_at = now() WHERE token = $1 AND address = $2`,
			token, from, amount,
		); err != nil {
			return fmt.Errorf("%w: debit %s: %w", domain.ErrTransferFailed, from, err)
		}
		if err = credit(ctx, q, token, to, amount); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
		return nil
	})
}

func (l *TokenLedger) Balance(ctx context.Context, token, owner domain.Address) (int64, error) {
	var balance int64
	err := conn(ctx, l.pool).QueryRow(ctx,
		`SELECT balance FROM token_balances WHERE token = $1 AND address = $2`,
		token, owner,
	).Scan(&balance)
	if isNoRows(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", owner, err)
	}
	return balance, nil
}

func (l *TokenLedger) Mint(ctx context.Context, token, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("mint: non-positive amount %d", amount)
	}
	return withTx(ctx, l.pool, func(ctx context.Context, q querier) error {
		return credit(ctx, q, token, to, amount)
	})
}

func credit(ctx context.Context, q querier, token, to domain.Address, amount int64) error {
	_, err := q.Exec(ctx, `
        INSERT INTO token_balances (token, address, balance, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (token, address) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance, updated_at = now()`,
		token, to, amount,
	)
	if err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}
