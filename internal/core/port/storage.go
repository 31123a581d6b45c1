package port

import (
	"context"

	"crowdfund-ledger/internal/core/domain"
)

// Storage is the instance storage of a single ledger: a small keyed store
// with a lifetime that must be extended after mutations. Values are encoded
// by the implementation; Get decodes into dst and reports whether the key
// was present.
type Storage interface {
	Has(ctx context.Context, key domain.DataKey) (bool, error)
	Get(ctx context.Context, key domain.DataKey, dst any) (bool, error)
	Set(ctx context.Context, key domain.DataKey, value any) error
	// ExtendTTL extends every entry to live extendTo ledgers past the
	// current sequence when fewer than threshold ledgers remain.
	ExtendTTL(ctx context.Context, threshold, extendTo uint32) error
}

// UnitOfWork runs fn so that storage writes, token transfers and events
// issued through the ctx it receives either all take effect or none do.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
