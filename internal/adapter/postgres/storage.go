package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Storage implements port.Storage as rows of instance_storage keyed by the
// ledger's contract address.
type Storage struct {
	pool       *pgxpool.Pool
	contractID domain.Address
	clock      port.Clock
}

// NewStorage returns storage scoped to contractID.
func NewStorage(pool *pgxpool.Pool, contractID domain.Address, clock port.Clock) *Storage {
	return &Storage{pool: pool, contractID: contractID, clock: clock}
}

// Has reports whether a row exists for key.
func (s *Storage) Has(ctx context.Context, key domain.DataKey) (bool, error) {
	var ok bool
	err := conn(ctx, s.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM instance_storage WHERE contract_id = $1 AND key = $2)`,
		s.contractID, key,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", key, err)
	}
	return ok, nil
}

// Get decodes the JSONB value stored under key into dst. A missing row
// yields false and no error.
func (s *Storage) Get(ctx context.Context, key domain.DataKey, dst any) (bool, error) {
	var raw []byte
	err := conn(ctx, s.pool).QueryRow(ctx,
		`SELECT value FROM instance_storage WHERE contract_id = $1 AND key = $2`,
		s.contractID, key,
	).Scan(&raw)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set upserts the JSON encoding of value under key. The row's lifetime is
// only changed by ExtendTTL.
func (s *Storage) Set(ctx context.Context, key domain.DataKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = conn(ctx, s.pool).Exec(ctx, `
        INSERT INTO instance_storage (contract_id, key, value, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (contract_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.contractID, key, raw,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// ExtendTTL extends every row of this contract whose lifetime ends within
// threshold ledgers of the current sequence to extendTo ledgers past it.
// It runs in the caller's transaction when ctx carries one.
func (s *Storage) ExtendTTL(ctx context.Context, threshold, extendTo uint32) error {
	seq, err := s.clock.Sequence(ctx)
	if err != nil {
		return err
	}
	_, err = conn(ctx, s.pool).Exec(ctx, `
        UPDATE instance_storage SET live_until = $2
        WHERE contract_id = $1 AND live_until < $3`,
		s.contractID, int64(seq)+int64(extendTo), int64(seq)+int64(threshold),
	)
	if err != nil {
		return fmt.Errorf("extend ttl: %w", err)
	}
	return nil
}
