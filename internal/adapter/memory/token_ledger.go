package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// TokenLedger implements port.TokenLedger with balances held per token.
type TokenLedger struct {
	mu       sync.Mutex
	balances map[domain.Address]map[domain.Address]int64
}

// NewTokenLedger returns a ledger with no balances.
func NewTokenLedger() *TokenLedger {
	return &TokenLedger{balances: make(map[domain.Address]map[domain.Address]int64)}
}

// Transfer moves amount from one address to another. Nothing moves when the
// sender's balance is short. A transfer to the sender itself only checks the
// balance.
func (l *TokenLedger) Transfer(_ context.Context, token, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount %d", domain.ErrTransferFailed, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	accounts := l.balances[token]
	if accounts[from] < amount {
		return fmt.Errorf("%w: %s has %d, needs %d: %w", domain.ErrTransferFailed, from, accounts[from], amount, port.ErrInsufficientBalance)
	}
	if from == to {
		return nil
	}
	credited, ok := domain.AddAmount(accounts[to], amount)
	if !ok {
		return fmt.Errorf("%w: balance of %s overflows", domain.ErrTransferFailed, to)
	}
	accounts[from] -= amount
	accounts[to] = credited
	return nil
}

// Balance returns the holder's balance of token, zero for unknown holders.
func (l *TokenLedger) Balance(_ context.Context, token, owner domain.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[token][owner], nil
}

// Mint credits amount to an address out of thin air. Used for seeding.
func (l *TokenLedger) Mint(_ context.Context, token, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("mint: non-positive amount %d", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	accounts, ok := l.balances[token]
	if !ok {
		accounts = make(map[domain.Address]int64)
		l.balances[token] = accounts
	}
	credited, ok := domain.AddAmount(accounts[to], amount)
	if !ok {
		return fmt.Errorf("mint: balance of %s overflows", to)
	}
	accounts[to] = credited
	return nil
}

// Snapshot copies every balance and returns a function restoring the copy.
func (l *TokenLedger) Snapshot() func() {
	l.mu.Lock()
	saved := make(map[domain.Address]map[domain.Address]int64, len(l.balances))
	for token, accounts := range l.balances {
		saved[token] = maps.Clone(accounts)
	}
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		l.balances = saved
		l.mu.Unlock()
	}
}
