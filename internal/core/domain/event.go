package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind is the topic of a campaign notification.
type EventKind string

const (
	EventDeposit  EventKind = "deposit"
	EventWithdraw EventKind = "withdraw"
	EventRefund   EventKind = "refund"
)

// Event is a notification emitted after a successful mutation. Address is
// the contributor for deposits and refunds and the owner for withdrawals.
// TotalRaised is only set on deposits.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Kind        EventKind `json:"kind"`
	Address     Address   `json:"address"`
	Amount      int64     `json:"amount"`
	TotalRaised int64     `json:"total_raised,omitempty"`
	Ledger      uint32    `json:"ledger"`
	CreatedAt   time.Time `json:"created_at"`
}
