package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// EventLog implements port.EventLog over the campaign_events table.
type EventLog struct {
	pool       *pgxpool.Pool
	contractID domain.Address
}

func NewEventLog(pool *pgxpool.Pool, contractID domain.Address) *EventLog {
	return &EventLog{pool: pool, contractID: contractID}
}

func (l *EventLog) Publish(ctx context.Context, ev domain.Event) error {
	var total *int64
	if ev.Kind == domain.EventDeposit {
		total = &ev.TotalRaised
	}
	_, err := conn(ctx, l.pool).Exec(ctx, `
        INSERT INTO campaign_events (id, contract_id, kind, address, amount, total_raised, ledger, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.ID, l.contractID, ev.Kind, ev.Address, ev.Amount, total, int64(ev.Ledger), ev.CreatedAt,
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
	rows, err := conn(ctx, l.pool).Query(ctx, `
        SELECT id, kind, address, amount, total_raised, ledger, created_at
        FROM campaign_events
        WHERE contract_id = $1
        ORDER BY seq
        LIMIT $2 OFFSET $3`,
		l.contractID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev     domain.Event
			total  *int64
			ledger int64
		)
		err := row.Scan(&ev.ID, &ev.Kind, &ev.Address, &ev.Amount, &total, &ledger, &ev.CreatedAt)
		if total != nil {
			ev.TotalRaised = *total
		}
		ev.Ledger = uint32(ledger)
		return ev, err
	})
}
