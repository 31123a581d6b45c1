package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// EventLog implements port.EventLog over the campaign_events table.
type EventLog struct {
	db         *DB
	contractID domain.Address
}

// NewEventLog returns a log scoped to contractID.
func NewEventLog(db *DB, contractID domain.Address) *EventLog {
	return &EventLog{db: db, contractID: contractID}
}

// Publish inserts ev. Only deposits store the running total.
func (l *EventLog) Publish(ctx context.Context, ev domain.Event) error {
	var total sql.NullInt64
	if ev.Kind == domain.EventDeposit {
		total = sql.NullInt64{Int64: ev.TotalRaised, Valid: true}
	}
	_, err := l.db.conn(ctx).ExecContext(ctx, `
        INSERT INTO campaign_events (id, contract_id, kind, address, amount, total_raised, ledger, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID.String(), string(l.contractID), string(ev.Kind), string(ev.Address), ev.Amount, total, int64(ev.Ledger), toMillis(ev.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List returns events in insertion order.
func (l *EventLog) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = port.DefaultEventLimit
	}
	rows, err := l.db.conn(ctx).QueryContext(ctx, `
        SELECT id, kind, address, amount, total_raised, ledger, created_at
        FROM campaign_events
        WHERE contract_id = ?
        ORDER BY seq
        LIMIT ? OFFSET ?`,
		string(l.contractID), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			ev                domain.Event
			id, kind, address string
			total             sql.NullInt64
			ledger, createdAt int64
		)
		if err = rows.Scan(&id, &kind, &address, &ev.Amount, &total, &ledger, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if ev.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse event id: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		ev.Address = domain.Address(address)
		ev.TotalRaised = total.Int64
		ev.Ledger = uint32(ledger)
		ev.CreatedAt = fromMillis(createdAt)
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
