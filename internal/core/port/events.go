package port

import (
	"context"

	"crowdfund-ledger/internal/core/domain"
)

// EventSink receives campaign notifications.
type EventSink interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// DefaultEventLimit is the page size used when List is called with a
// non-positive limit.
const DefaultEventLimit = 100

// EventReader lists published notifications, oldest first. A non-positive
// limit means DefaultEventLimit; an offset past the end yields an empty,
// non-nil slice.
type EventReader interface {
	List(ctx context.Context, limit, offset int) ([]domain.Event, error)
}

// EventLog is a sink that can be read back.
type EventLog interface {
	EventSink
	EventReader
}
