package features

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/cucumber/godog"

	"crowdfund-ledger/internal/adapter/auth"
	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/adapter/usecase"
	"crowdfund-ledger/internal/core/domain"
)

var (
	contract = domain.MustParseAddress("CAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAODX")
	token    = domain.MustParseAddress("CAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAKAL")

	accounts = map[string]domain.Address{
		"owner":   domain.MustParseAddress("GAAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQDZ7H"),
		"alice":   domain.MustParseAddress("GABAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEJXA"),
		"bob":     domain.MustParseAddress("GABQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQGAYDAMBQHGPC"),
		"carol":   domain.MustParseAddress("GACAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAIBAEAQCAJJHP"),
		"mallory": domain.MustParseAddress("GACQKBIFAUCQKBIFAUCQKBIFAUCQKBIFAUCQKBIFAUCQKBIFAUCQKG7N"),
	}

	errorsByName = map[string]error{
		"AlreadyInitialized": domain.ErrAlreadyInitialized,
		"Uninitialized":      domain.ErrUninitialized,
		"InvalidTarget":      domain.ErrInvalidTarget,
		"InvalidDeadline":    domain.ErrInvalidDeadline,
		"InvalidAmount":      domain.ErrInvalidAmount,
		"Unauthorized":       domain.ErrUnauthorized,
		"CampaignFinalized":  domain.ErrCampaignFinalized,
		"AlreadyFinalized":   domain.ErrAlreadyFinalized,
		"DeadlinePassed":     domain.ErrDeadlinePassed,
		"DeadlineNotReached": domain.ErrDeadlineNotReached,
		"TargetNotReached":   domain.ErrTargetNotReached,
		"CampaignSucceeded":  domain.ErrCampaignSucceeded,
		"NoDeposit":          domain.ErrNoDeposit,
		"TransferFailed":     domain.ErrTransferFailed,
	}
)

type campaignTestContext struct {
	clock  *memory.Clock
	tokens *memory.TokenLedger
	ledger *usecase.CampaignLedger
	err    error
}

func (c *campaignTestContext) reset() {
	c.clock = memory.NewClock(1000)
	store := memory.NewStorage(c.clock)
	c.tokens = memory.NewTokenLedger()
	events := memory.NewEventLog()
	c.ledger = usecase.NewCampaignLedger(contract, usecase.Deps{
		Storage:    store,
		Tokens:     c.tokens,
		Auth:       auth.ContextAuthorizer{},
		Clock:      c.clock,
		Events:     events,
		UnitOfWork: memory.NewAtomic(store, c.tokens, events),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	c.err = nil
}

func account(name string) (domain.Address, error) {
	addr, ok := accounts[name]
	if !ok {
		return "", fmt.Errorf("unknown account %q", name)
	}
	return addr, nil
}

func as(addr domain.Address) context.Context {
	return auth.WithCaller(context.Background(), addr)
}

func (c *campaignTestContext) holdsTokens(name string, amount int64) error {
	addr, err := account(name)
	if err != nil {
		return err
	}
	return c.tokens.Mint(context.Background(), token, addr, amount)
}

func (c *campaignTestContext) aCampaign(target int64, ledgers int) error {
	if err := c.ownerCreatesCampaign(target, ledgers); err != nil {
		return err
	}
	return c.err
}

func (c *campaignTestContext) ownerCreatesCampaign(target int64, ledgers int) error {
	now, err := c.clock.Sequence(context.Background())
	if err != nil {
		return err
	}
	owner := accounts["owner"]
	c.err = c.ledger.Initialize(as(owner), owner, token, target, now+uint32(ledgers))
	return nil
}

func (c *campaignTestContext) ledgersPass(n int) error {
	c.clock.Advance(uint32(n))
	return nil
}

func (c *campaignTestContext) deposits(name string, amount int64) error {
	return c.depositsOnBehalf(name, amount, name)
}

func (c *campaignTestContext) depositsOnBehalf(caller string, amount int64, contributor string) error {
	from, err := account(caller)
	if err != nil {
		return err
	}
	to, err := account(contributor)
	if err != nil {
		return err
	}
	c.err = c.ledger.Deposit(as(from), to, amount)
	return nil
}

func (c *campaignTestContext) ownerWithdraws() error {
	c.err = c.ledger.Withdraw(as(accounts["owner"]))
	return nil
}

func (c *campaignTestContext) requestsRefund(name string) error {
	addr, err := account(name)
	if err != nil {
		return err
	}
	c.err = c.ledger.Refund(as(addr), addr)
	return nil
}

func (c *campaignTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *campaignTestContext) theOperationFailsWith(name string) error {
	want, ok := errorsByName[name]
	if !ok {
		return fmt.Errorf("unknown error %q", name)
	}
	if c.err == nil {
		return fmt.Errorf("expected %s, operation succeeded", name)
	}
	if !errors.Is(c.err, want) {
		return fmt.Errorf("expected %s, got %v", name, c.err)
	}
	return nil
}

func (c *campaignTestContext) theTotalRaisedIs(want int64) error {
	st, err := c.ledger.Status(context.Background())
	if err != nil {
		return err
	}
	if st.TotalRaised != want {
		return fmt.Errorf("expected total raised %d, got %d", want, st.TotalRaised)
	}
	return nil
}

func (c *campaignTestContext) reachedButOpen() error {
	st, err := c.ledger.Status(context.Background())
	if err != nil {
		return err
	}
	if !st.TargetReached || st.DeadlinePassed {
		return fmt.Errorf("expected target reached before deadline, got %+v", st)
	}
	return nil
}

func (c *campaignTestContext) theCampaignIsFinalized() error {
	st, err := c.ledger.Status(context.Background())
	if err != nil {
		return err
	}
	if !st.IsFinalized {
		return errors.New("expected campaign to be finalized")
	}
	return nil
}

func (c *campaignTestContext) theBalanceOfIs(name string, want int64) error {
	addr, err := account(name)
	if err != nil {
		return err
	}
	got, err := c.tokens.Balance(context.Background(), token, addr)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected balance of %s %d, got %d", name, want, got)
	}
	return nil
}

func (c *campaignTestContext) hasDepositOf(name string, want int64) error {
	addr, err := account(name)
	if err != nil {
		return err
	}
	got, err := c.ledger.DepositOf(context.Background(), addr)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected deposit of %s %d, got %d", name, want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &campaignTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^"([^"]*)" holds (\d+) tokens$`, tc.holdsTokens)
	ctx.Step(`^a campaign with target (\d+) closing in (\d+) ledgers$`, tc.aCampaign)

	// When steps
	ctx.Step(`^the owner creates a campaign with target (-?\d+) closing in (\d+) ledgers$`, tc.ownerCreatesCampaign)
	ctx.Step(`^(\d+) ledgers pass$`, tc.ledgersPass)
	ctx.Step(`^"([^"]*)" deposits (-?\d+)$`, tc.deposits)
	ctx.Step(`^"([^"]*)" deposits (-?\d+) on behalf of "([^"]*)"$`, tc.depositsOnBehalf)
	ctx.Step(`^the owner withdraws$`, tc.ownerWithdraws)
	ctx.Step(`^"([^"]*)" requests a refund$`, tc.requestsRefund)

	// Then steps
	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the total raised is (\d+)$`, tc.theTotalRaisedIs)
	ctx.Step(`^the target is reached and the deadline has not passed$`, tc.reachedButOpen)
	ctx.Step(`^the campaign is finalized$`, tc.theCampaignIsFinalized)
	ctx.Step(`^the balance of "([^"]*)" is (\d+)$`, tc.theBalanceOfIs)
	ctx.Step(`^"([^"]*)" has a deposit of (\d+)$`, tc.hasDepositOf)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"campaign.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
