package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// TokenLedger implements port.TokenLedger over the token_balances table.
type TokenLedger struct {
	db *DB
}

func NewTokenLedger(db *DB) *TokenLedger {
	return &TokenLedger{db: db}
}

// Transfer debits from and credits to inside one transaction. A short
// balance fails with port.ErrInsufficientBalance and moves nothing.
func (l *TokenLedger) Transfer(ctx context.Context, token, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount %d", domain.ErrTransferFailed, amount)
	}
	return l.db.Do(ctx, func(ctx context.Context) error {
		q := l.db.conn(ctx)
		balance, err := l.balance(ctx, q, token, from)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
		}
		if balance < amount {
			return fmt.Errorf("%w: %s has %d, needs %d: %w", domain.ErrTransferFailed, from, balance, amount, port.ErrInsufficientBalance)
		}
		if _, err = q.ExecContext(ctx,
			`UPDATE token_balances SET balance = balance - ?, updated_at = ? WHERE token = ? AND address = ?`,
			amount, toMillis(time.Now()), string(token), string(from),
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
	return l.balance(ctx, l.db.conn(ctx), token, owner)
}

// Mint credits amount to an address. Used for seeding.
func (l *TokenLedger) Mint(ctx context.Context, token, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("mint: non-positive amount %d", amount)
	}
	return credit(ctx, l.db.conn(ctx), token, to, amount)
}

func (l *TokenLedger) balance(ctx context.Context, q querier, token, owner domain.Address) (int64, error) {
	var balance int64
	err := q.QueryRowContext(ctx,
		`SELECT balance FROM token_balances WHERE token = ? AND address = ?`,
		string(token), string(owner),
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", owner, err)
	}
	return balance, nil
}

func credit(ctx context.Context, q querier, token, to domain.Address, amount int64) error {
	_, err := q.ExecContext(ctx, `
        INSERT INTO token_balances (token, address, balance, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (token, address) DO UPDATE SET balance = balance + excluded.balance, updated_at = excluded.updated_at`,
		string(token), string(to), amount, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}
