package port

import (
	"context"
	"errors"

	"crowdfund-ledger/internal/core/domain"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// AssetTransferer moves a fungible asset between addresses. A failed
// transfer moves nothing and returns an error wrapping
// domain.ErrTransferFailed.
type AssetTransferer interface {
	Transfer(ctx context.Context, token, from, to domain.Address, amount int64) error
}

// TokenLedger is the full asset ledger used by adapters and seeding.
type TokenLedger interface {
	AssetTransferer
	Balance(ctx context.Context, token, owner domain.Address) (int64, error)
	Mint(ctx context.Context, token, to domain.Address, amount int64) error
}
