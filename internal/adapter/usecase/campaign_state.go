package usecase

import (
	"context"
	"fmt"

	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// campaignState is typed access to the campaign record kept field by field in
// instance storage.
type campaignState struct {
	store port.Storage
}

func load[T any](ctx context.Context, store port.Storage, key domain.DataKey) (T, bool, error) {
	var v T
	ok, err := store.Get(ctx, key, &v)
	if err != nil {
		return v, false, fmt.Errorf("read %s: %w", key, err)
	}
	return v, ok, nil
}

func (s campaignState) initialized(ctx context.Context) (bool, error) {
	ok, err := s.store.Has(ctx, domain.KeyOwner)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", domain.KeyOwner, err)
	}
	return ok, nil
}

func (s campaignState) owner(ctx context.Context) (domain.Address, bool, error) {
	return load[domain.Address](ctx, s.store, domain.KeyOwner)
}

func (s campaignState) token(ctx context.Context) (domain.Address, bool, error) {
	return load[domain.Address](ctx, s.store, domain.KeyTokenAddress)
}

func (s campaignState) targetAmount(ctx context.Context) (int64, bool, error) {
	return load[int64](ctx, s.store, domain.KeyTargetAmount)
}

func (s campaignState) deadline(ctx context.Context) (uint32, bool, error) {
	return load[uint32](ctx, s.store, domain.KeyDeadline)
}

func (s campaignState) totalRaised(ctx context.Context) (int64, error) {
	v, _, err := load[int64](ctx, s.store, domain.KeyTotalRaised)
	return v, err
}

func (s campaignState) finalized(ctx context.Context) (bool, error) {
	v, _, err := load[bool](ctx, s.store, domain.KeyIsFinalized)
	return v, err
}

func (s campaignState) deposits(ctx context.Context) (map[domain.Address]int64, error) {
	v, _, err := load[map[domain.Address]int64](ctx, s.store, domain.KeyDeposits)
	if v == nil {
		v = make(map[domain.Address]int64)
	}
	return v, err
}

// record reads every field of the campaign. Missing fields stay at their
// zero values.
func (s campaignState) record(ctx context.Context) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		err error
	)
	if c.Owner, _, err = s.owner(ctx); err != nil {
		return c, err
	}
	if c.Token, _, err = s.token(ctx); err != nil {
		return c, err
	}
	if c.TargetAmount, _, err = s.targetAmount(ctx); err != nil {
		return c, err
	}
	if c.Deadline, _, err = s.deadline(ctx); err != nil {
		return c, err
	}
	if c.TotalRaised, err = s.totalRaised(ctx); err != nil {
		return c, err
	}
	if c.IsFinalized, err = s.finalized(ctx); err != nil {
		return c, err
	}
	if c.Deposits, err = s.deposits(ctx); err != nil {
		return c, err
	}
	return c, nil
}

func (s campaignState) set(ctx context.Context, key domain.DataKey, value any) error {
	if err := s.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// extend is housekeeping run after every mutation.
func (s campaignState) extend(ctx context.Context) error {
	if err := s.store.ExtendTTL(ctx, domain.TTLThreshold, domain.TTLExtendTo); err != nil {
		return fmt.Errorf("extend ttl: %w", err)
	}
	return nil
}
