package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"crowdfund-ledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. It is read only when
	// Storage.Driver is "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Sqlite configures the SQLite database file. It is read only when
	// Storage.Driver is "sqlite".
	Sqlite configs.Sqlite `envPrefix:"SQLITE_"`

	// Storage picks the backend holding the campaign record, token balances
	// and the event log, and names the address funds are held under.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Clock selects the source of ledger sequences. Deadlines are compared
	// against whatever this source reports.
	Clock configs.Clock `envPrefix:"CLOCK_"`

	// Auth controls how callers prove they hold the address they act for.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Seed credits demo balances at startup. Disabled by default.
	Seed configs.Seed `envPrefix:"SEED_"`
}

// Load reads configuration from environment variables into a Config and
// validates the cross-field rules env tags cannot express.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks option values.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case configs.DriverMemory, configs.DriverPostgres, configs.DriverSqlite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Clock.Source {
	case configs.ClockLocal:
		if c.Clock.Interval <= 0 {
			return fmt.Errorf("CLOCK_INTERVAL must be positive")
		}
	case configs.ClockRPC:
		if c.Clock.RPCURL == "" {
			return fmt.Errorf("CLOCK_RPC_URL is required for the rpc clock")
		}
	default:
		return fmt.Errorf("unknown clock source %q", c.Clock.Source)
	}
	switch c.Auth.Mode {
	case configs.AuthSignature, configs.AuthTrust:
	default:
		return fmt.Errorf("unknown auth mode %q", c.Auth.Mode)
	}
	if c.Seed.Enabled && c.Seed.Amount <= 0 {
		return fmt.Errorf("SEED_AMOUNT must be positive")
	}
	return nil
}
