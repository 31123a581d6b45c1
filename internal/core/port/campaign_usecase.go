package port

import (
	"context"

	"crowdfund-ledger/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the campaign ledger. It
// is the primary port into the application domain. Mock implementations are
// generated from this interface for handler tests.
type CampaignUseCase interface {
	// Initialize creates the campaign record. It fails if the record already
	// exists, the target is not positive, the deadline is not in the future
	// or the owner did not authorize the call.
	Initialize(ctx context.Context, owner, token domain.Address, targetAmount int64, deadline uint32) error

	// Deposit moves amount from the contributor into the campaign and
	// credits it to the contributor's pledge.
	Deposit(ctx context.Context, contributor domain.Address, amount int64) error

	// Withdraw pays the whole raised amount to the owner once the deadline
	// has passed and the target was met. It succeeds at most once.
	Withdraw(ctx context.Context) error

	// Refund returns the contributor's full deposit after a failed campaign.
	Refund(ctx context.Context, contributor domain.Address) error

	// Status returns the campaign totals and derived flags. Before
	// initialization it returns zero values rather than an error.
	Status(ctx context.Context) (domain.CampaignStatus, error)

	// DepositOf returns the contributor's outstanding deposit, 0 if none.
	DepositOf(ctx context.Context, contributor domain.Address) (int64, error)
}
