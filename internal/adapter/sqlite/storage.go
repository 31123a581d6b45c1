package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Storage implements port.Storage over the instance_storage table.
type Storage struct {
	db         *DB
	contractID domain.Address
	clock      port.Clock
}

// NewStorage returns storage scoped to contractID. Lifetimes are measured
// against clock.
func NewStorage(db *DB, contractID domain.Address, clock port.Clock) *Storage {
	return &Storage{db: db, contractID: contractID, clock: clock}
}

// Has reports whether a row exists for key.
func (s *Storage) Has(ctx context.Context, key domain.DataKey) (bool, error) {
	var n int
	err := s.db.conn(ctx).QueryRowContext(ctx,
		`SELECT COUNT(1) FROM instance_storage WHERE contract_id = ? AND key = ?`,
		string(s.contractID), string(key),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", key, err)
	}
	return n > 0, nil
}

// Get decodes the JSON value stored under key into dst. A missing row
// yields false and no error.
func (s *Storage) Get(ctx context.Context, key domain.DataKey, dst any) (bool, error) {
	var raw []byte
	err := s.db.conn(ctx).QueryRowContext(ctx,
		`SELECT value FROM instance_storage WHERE contract_id = ? AND key = ?`,
		string(s.contractID), string(key),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
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

// Set upserts the JSON encoding of value under key without touching the
// row's lifetime.
func (s *Storage) Set(ctx context.Context, key domain.DataKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.conn(ctx).ExecContext(ctx, `
        INSERT INTO instance_storage (contract_id, key, value, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (contract_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(s.contractID), string(key), raw, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// ExtendTTL extends every row of this contract whose lifetime ends within
// threshold ledgers of the current sequence to extendTo ledgers past it.
func (s *Storage) ExtendTTL(ctx context.Context, threshold, extendTo uint32) error {
	seq, err := s.clock.Sequence(ctx)
	if err != nil {
		return err
	}
	_, err = s.db.conn(ctx).ExecContext(ctx,
		`UPDATE instance_storage SET live_until = ? WHERE contract_id = ? AND live_until < ?`,
		int64(seq)+int64(extendTo), string(s.contractID), int64(seq)+int64(threshold),
	)
	if err != nil {
		return fmt.Errorf("extend ttl: %w", err)
	}
	return nil
}

// LiveUntil returns the last ledger key stays live for, 0 if absent.
func (s *Storage) LiveUntil(ctx context.Context, key domain.DataKey) (uint32, error) {
	var v int64
	err := s.db.conn(ctx).QueryRowContext(ctx,
		`SELECT live_until FROM instance_storage WHERE contract_id = ? AND key = ?`,
		string(s.contractID), string(key),
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("live until %s: %w", key, err)
	}
	return uint32(v), nil
}
