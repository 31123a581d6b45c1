package clock

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	rpcclient "github.com/stellar/go/clients/rpcclient"

	"crowdfund-ledger/internal/metrics"
)

// HealthSource reports the latest ledger known to a Stellar RPC server.
type HealthSource interface {
	LatestLedger(ctx context.Context) (uint32, error)
}

type rpcHealth struct {
	client *rpcclient.Client
}

func (h rpcHealth) LatestLedger(ctx context.Context) (uint32, error) {
	health, err := h.client.GetHealth(ctx)
	if err != nil {
		return 0, err
	}
	return health.LatestLedger, nil
}

// RPC reads the ledger sequence from a Stellar RPC server, retrying with
// exponential backoff. It never reports a sequence lower than one it has
// already returned.
type RPC struct {
	source     HealthSource
	maxRetries uint64
	maxElapsed time.Duration
	logger     *slog.Logger

	mu   sync.Mutex
	last uint32
}

// NewRPC creates a clock for the RPC server at url.
func NewRPC(url string, maxRetries uint64, logger *slog.Logger) *RPC {
	client := rpcclient.NewClient(url, &http.Client{Timeout: 10 * time.Second})
	return NewRPCFromSource(rpcHealth{client: client}, maxRetries, logger)
}

// NewRPCFromSource creates a clock over an arbitrary health source.
func NewRPCFromSource(source HealthSource, maxRetries uint64, logger *slog.Logger) *RPC {
	if logger == nil {
		logger = slog.Default()
	}
	return &RPC{source: source, maxRetries: maxRetries, maxElapsed: 30 * time.Second, logger: logger}
}

func (c *RPC) Sequence(ctx context.Context) (uint32, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = c.maxElapsed

	attempt := 0
	seq, err := backoff.RetryWithData(func() (uint32, error) {
		attempt++
		if attempt > 1 {
			metrics.ClockRetries.Inc()
		}
		return c.source.LatestLedger(ctx)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx))
	if err != nil {
		c.logger.WarnContext(ctx, "ledger sequence lookup failed",
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("rpc latest ledger: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.last {
		return c.last, nil
	}
	c.last = seq
	return seq, nil
}
