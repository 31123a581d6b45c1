package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/metrics"
)

// Deps are the collaborators of a CampaignLedger. UnitOfWork and Logger are
// optional.
type Deps struct {
	Storage    port.Storage
	Tokens     port.AssetTransferer
	Auth       port.Authorizer
	Clock      port.Clock
	Events     port.EventSink
	UnitOfWork port.UnitOfWork
	Logger     *slog.Logger
}

// CampaignLedger implements port.CampaignUseCase as a state machine over the
// single campaign record. Calls are serialized: one runs to completion before
// the next starts.
type CampaignLedger struct {
	mu sync.Mutex

	// self is the ledger's own holding identity; deposits are paid to it
	// and withdrawals and refunds are paid from it.
	self domain.Address

	state  campaignState
	tokens port.AssetTransferer
	auth   port.Authorizer
	clock  port.Clock
	events port.EventSink
	uow    port.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

var _ port.CampaignUseCase = (*CampaignLedger)(nil)

// NewCampaignLedger creates a ledger holding funds under self.
func NewCampaignLedger(self domain.Address, d Deps) *CampaignLedger {
	l := &CampaignLedger{
		self:   self,
		state:  campaignState{store: d.Storage},
		tokens: d.Tokens,
		auth:   d.Auth,
		clock:  d.Clock,
		events: d.Events,
		uow:    d.UnitOfWork,
		logger: d.Logger,
		now:    time.Now,
	}
	if l.uow == nil {
		l.uow = direct{}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// direct runs the function without any transaction.
type direct struct{}

func (direct) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// Initialize creates the campaign record.
func (l *CampaignLedger) Initialize(ctx context.Context, owner, token domain.Address, targetAmount int64, deadline uint32) error {
	return l.mutate(ctx, "initialize", func(ctx context.Context) error {
		ok, err := l.state.initialized(ctx)
		if err != nil {
			return err
		}
		if ok {
			return domain.ErrAlreadyInitialized
		}
		if targetAmount <= 0 {
			return domain.ErrInvalidTarget
		}
		now, err := l.sequence(ctx)
		if err != nil {
			return err
		}
		if deadline <= now {
			return domain.ErrInvalidDeadline
		}
		if owner == "" || token == "" {
			return domain.ErrInvalidAddress
		}
		if err = l.auth.RequireAuth(ctx, owner); err != nil {
			return err
		}

		writes := []struct {
			key   domain.DataKey
			value any
		}{
			{domain.KeyOwner, owner},
			{domain.KeyTokenAddress, token},
			{domain.KeyTargetAmount, targetAmount},
			{domain.KeyDeadline, deadline},
			{domain.KeyTotalRaised, int64(0)},
			{domain.KeyIsFinalized, false},
			{domain.KeyDeposits, map[domain.Address]int64{}},
		}
		for _, w := range writes {
			if err = l.state.set(ctx, w.key, w.value); err != nil {
				return err
			}
		}
		if err = l.state.extend(ctx); err != nil {
			return err
		}

		l.logger.InfoContext(ctx, "campaign initialized",
			slog.String("owner", owner.String()),
			slog.String("token", token.String()),
			slog.Int64("target_amount", targetAmount),
			slog.Int64("deadline", int64(deadline)),
		)
		return nil
	})
}

// Deposit transfers amount from contributor to the ledger and records it.
// The transfer happens before any bookkeeping so a failed transfer leaves
// the record untouched.
func (l *CampaignLedger) Deposit(ctx context.Context, contributor domain.Address, amount int64) error {
	return l.mutate(ctx, "deposit", func(ctx context.Context) error {
		if err := l.auth.RequireAuth(ctx, contributor); err != nil {
			return err
		}
		if amount <= 0 {
			return domain.ErrInvalidAmount
		}
		finalized, err := l.state.finalized(ctx)
		if err != nil {
			return err
		}
		if finalized {
			return domain.ErrCampaignFinalized
		}
		deadline, ok, err := l.state.deadline(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		now, err := l.sequence(ctx)
		if err != nil {
			return err
		}
		if now >= deadline {
			return domain.ErrDeadlinePassed
		}
		token, ok, err := l.state.token(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}

		total, err := l.state.totalRaised(ctx)
		if err != nil {
			return err
		}
		deposits, err := l.state.deposits(ctx)
		if err != nil {
			return err
		}
		newTotal, ok := domain.AddAmount(total, amount)
		if !ok {
			return fmt.Errorf("%w: total overflows", domain.ErrInvalidAmount)
		}
		newDeposit, ok := domain.AddAmount(deposits[contributor], amount)
		if !ok {
			return fmt.Errorf("%w: deposit overflows", domain.ErrInvalidAmount)
		}

		if err = l.transfer(ctx, token, contributor, l.self, amount); err != nil {
			return err
		}

		deposits[contributor] = newDeposit
		if err = l.state.set(ctx, domain.KeyTotalRaised, newTotal); err != nil {
			return err
		}
		if err = l.state.set(ctx, domain.KeyDeposits, deposits); err != nil {
			return err
		}
		if err = l.state.extend(ctx); err != nil {
			return err
		}

		metrics.AmountMoved.WithLabelValues(string(domain.EventDeposit)).Add(float64(amount))
		metrics.TotalRaised.Set(float64(newTotal))
		return l.publish(ctx, domain.Event{
			Kind:        domain.EventDeposit,
			Address:     contributor,
			Amount:      amount,
			TotalRaised: newTotal,
			Ledger:      now,
		})
	})
}

// Withdraw pays the raised amount to the owner and finalizes the campaign.
// TotalRaised is kept as the historical figure.
func (l *CampaignLedger) Withdraw(ctx context.Context) error {
	return l.mutate(ctx, "withdraw", func(ctx context.Context) error {
		owner, ok, err := l.state.owner(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		if err = l.auth.RequireAuth(ctx, owner); err != nil {
			return err
		}
		finalized, err := l.state.finalized(ctx)
		if err != nil {
			return err
		}
		if finalized {
			return domain.ErrAlreadyFinalized
		}
		deadline, ok, err := l.state.deadline(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		now, err := l.sequence(ctx)
		if err != nil {
			return err
		}
		if now < deadline {
			return domain.ErrDeadlineNotReached
		}
		target, ok, err := l.state.targetAmount(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		total, err := l.state.totalRaised(ctx)
		if err != nil {
			return err
		}
		if total < target {
			return domain.ErrTargetNotReached
		}
		token, ok, err := l.state.token(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}

		if err = l.transfer(ctx, token, l.self, owner, total); err != nil {
			return err
		}

		if err = l.state.set(ctx, domain.KeyIsFinalized, true); err != nil {
			return err
		}
		if err = l.state.extend(ctx); err != nil {
			return err
		}

		metrics.AmountMoved.WithLabelValues(string(domain.EventWithdraw)).Add(float64(total))
		return l.publish(ctx, domain.Event{
			Kind:    domain.EventWithdraw,
			Address: owner,
			Amount:  total,
			Ledger:  now,
		})
	})
}

// Refund returns the contributor's whole deposit after a failed campaign.
// The entry is zeroed, not removed, so a second refund fails with
// ErrNoDeposit.
func (l *CampaignLedger) Refund(ctx context.Context, contributor domain.Address) error {
	return l.mutate(ctx, "refund", func(ctx context.Context) error {
		if err := l.auth.RequireAuth(ctx, contributor); err != nil {
			return err
		}
		finalized, err := l.state.finalized(ctx)
		if err != nil {
			return err
		}
		if finalized {
			return domain.ErrCampaignFinalized
		}
		deadline, ok, err := l.state.deadline(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		now, err := l.sequence(ctx)
		if err != nil {
			return err
		}
		if now < deadline {
			return domain.ErrDeadlineNotReached
		}
		target, ok, err := l.state.targetAmount(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}
		total, err := l.state.totalRaised(ctx)
		if err != nil {
			return err
		}
		if total >= target {
			return domain.ErrCampaignSucceeded
		}
		deposits, err := l.state.deposits(ctx)
		if err != nil {
			return err
		}
		amount := deposits[contributor]
		if amount <= 0 {
			return domain.ErrNoDeposit
		}
		token, ok, err := l.state.token(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUninitialized
		}

		if err = l.transfer(ctx, token, l.self, contributor, amount); err != nil {
			return err
		}

		deposits[contributor] = 0
		if err = l.state.set(ctx, domain.KeyDeposits, deposits); err != nil {
			return err
		}
		if err = l.state.set(ctx, domain.KeyTotalRaised, total-amount); err != nil {
			return err
		}
		if err = l.state.extend(ctx); err != nil {
			return err
		}

		metrics.AmountMoved.WithLabelValues(string(domain.EventRefund)).Add(float64(amount))
		metrics.TotalRaised.Set(float64(total - amount))
		return l.publish(ctx, domain.Event{
			Kind:    domain.EventRefund,
			Address: contributor,
			Amount:  amount,
			Ledger:  now,
		})
	})
}

// Status returns the campaign totals. Missing fields read as zero values so
// the call succeeds before initialization.
func (l *CampaignLedger) Status(ctx context.Context) (domain.CampaignStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.state.record(ctx)
	if err != nil {
		return domain.CampaignStatus{}, err
	}
	now, err := l.sequence(ctx)
	if err != nil {
		return domain.CampaignStatus{}, err
	}
	return c.Status(now), nil
}

// DepositOf returns the contributor's outstanding deposit.
func (l *CampaignLedger) DepositOf(ctx context.Context, contributor domain.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deposits, err := l.state.deposits(ctx)
	if err != nil {
		return 0, err
	}
	return deposits[contributor], nil
}

// mutate serializes op, runs it inside the unit of work and records the
// outcome.
func (l *CampaignLedger) mutate(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.uow.Do(ctx, fn)
	if err != nil {
		metrics.Operations.WithLabelValues(op, "error").Inc()
		l.logger.WarnContext(ctx, "campaign operation rejected",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return err
	}
	metrics.Operations.WithLabelValues(op, "ok").Inc()
	return nil
}

func (l *CampaignLedger) sequence(ctx context.Context) (uint32, error) {
	seq, err := l.clock.Sequence(ctx)
	if err != nil {
		return 0, fmt.Errorf("read ledger sequence: %w", err)
	}
	metrics.CurrentLedger.Set(float64(seq))
	return seq, nil
}

func (l *CampaignLedger) transfer(ctx context.Context, token, from, to domain.Address, amount int64) error {
	err := l.tokens.Transfer(ctx, token, from, to, amount)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrTransferFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
}

func (l *CampaignLedger) publish(ctx context.Context, ev domain.Event) error {
	ev.ID = uuid.New()
	ev.CreatedAt = l.now().UTC()
	if err := l.events.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish %s event: %w", ev.Kind, err)
	}
	l.logger.InfoContext(ctx, "campaign event",
		slog.String("kind", string(ev.Kind)),
		slog.String("address", ev.Address.String()),
		slog.Int64("amount", ev.Amount),
		slog.Int64("ledger", int64(ev.Ledger)),
	)
	return nil
}
