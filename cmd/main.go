package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"crowdfund-ledger/internal/adapter/auth"
	"crowdfund-ledger/internal/adapter/clock"
	"crowdfund-ledger/internal/adapter/http"
	"crowdfund-ledger/internal/adapter/memory"
	"crowdfund-ledger/internal/adapter/postgres"
	"crowdfund-ledger/internal/adapter/sqlite"
	"crowdfund-ledger/internal/adapter/usecase"
	"crowdfund-ledger/internal/config"
	"crowdfund-ledger/internal/config/configs"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
	"crowdfund-ledger/internal/db"
)

// main is the entry point of the crowdfunding ledger. It loads
// configuration, selects the clock, storage backend and authorization mode,
// optionally seeds demo balances, then serves the HTTP API until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A .env file is optional; the real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	self, err := domain.ParseAddress(cfg.Storage.ContractID)
	if err != nil {
		logger.Error("invalid contract id", slog.Any("error", err))
		return
	}
	defaultToken, err := domain.ParseAddress(cfg.Storage.DefaultToken)
	if err != nil {
		logger.Error("invalid default token", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ledgerClock, err := newClock(cfg.Clock, logger)
	if err != nil {
		logger.Error("clock error", slog.Any("error", err))
		return
	}

	be, err := openBackend(ctx, cfg, self, ledgerClock, logger)
	if err != nil {
		logger.Error("storage error", slog.String("driver", cfg.Storage.Driver), slog.Any("error", err))
		return
	}
	defer be.close()

	if cfg.Seed.Enabled {
		accounts := make([]domain.Address, 0, len(cfg.Seed.Accounts))
		for _, s := range cfg.Seed.Accounts {
			addr, err := domain.ParseAddress(s)
			if err != nil {
				logger.Error("invalid seed account", slog.Any("error", err))
				return
			}
			accounts = append(accounts, addr)
		}
		if err = db.Seed(ctx, be.tokens, defaultToken, accounts, cfg.Seed.Amount, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	var (
		authorizer port.Authorizer = auth.ContextAuthorizer{}
		verifier   httpadapter.CallerVerifier
	)
	switch cfg.Auth.Mode {
	case configs.AuthTrust:
		logger.Warn("authorization disabled, every call is trusted")
		authorizer = auth.Trust{}
	default:
		verifier = auth.NewVerifier(cfg.Auth.Audience, cfg.Auth.MaxAge)
	}

	svc := usecase.NewCampaignLedger(self, usecase.Deps{
		Storage:    be.storage,
		Tokens:     be.tokens,
		Auth:       authorizer,
		Clock:      ledgerClock,
		Events:     be.events,
		UnitOfWork: be.uow,
		Logger:     logger,
	})

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Events:       be.events,
		Tokens:       be.tokens,
		Clock:        ledgerClock,
		Verifier:     verifier,
		DefaultToken: defaultToken,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("contract", self.String()),
			slog.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}

func newClock(cfg configs.Clock, logger *slog.Logger) (port.Clock, error) {
	switch cfg.Source {
	case configs.ClockRPC:
		return clock.NewRPC(cfg.RPCURL, cfg.RPCRetries, logger), nil
	default:
		return clock.NewLocal(cfg.Genesis, cfg.Interval, cfg.StartSequence)
	}
}

// backend groups the stateful ports so they share one transaction scope.
type backend struct {
	storage port.Storage
	tokens  port.TokenLedger
	events  port.EventLog
	uow     port.UnitOfWork
	close   func()
}

func openBackend(ctx context.Context, cfg config.Config, self domain.Address, ledgerClock port.Clock, logger *slog.Logger) (*backend, error) {
	switch cfg.Storage.Driver {
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, err
			}
			logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, err
		}
		return &backend{
			storage: postgres.NewStorage(pool, self, ledgerClock),
			tokens:  postgres.NewTokenLedger(pool),
			events:  postgres.NewEventLog(pool, self),
			uow:     postgres.NewUnitOfWork(pool),
			close:   pool.Close,
		}, nil

	case configs.DriverSqlite:
		sdb, err := sqlite.Open(cfg.Sqlite.Path)
		if err != nil {
			return nil, err
		}
		return &backend{
			storage: sqlite.NewStorage(sdb, self, ledgerClock),
			tokens:  sqlite.NewTokenLedger(sdb),
			events:  sqlite.NewEventLog(sdb, self),
			uow:     sdb,
			close: func() {
				if err := sdb.Close(); err != nil {
					logger.Error("sqlite close error", slog.Any("error", err))
				}
			},
		}, nil

	default:
		store := memory.NewStorage(ledgerClock)
		tokens := memory.NewTokenLedger()
		events := memory.NewEventLog()
		return &backend{
			storage: store,
			tokens:  tokens,
			events:  events,
			uow:     memory.NewAtomic(store, tokens, events),
			close:   func() {},
		}, nil
	}
}
