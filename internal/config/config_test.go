package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-ledger/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, configs.ClockLocal, cfg.Clock.Source)
	assert.Equal(t, 5*time.Second, cfg.Clock.Interval)
	assert.Equal(t, configs.AuthSignature, cfg.Auth.Mode)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("CLOCK_SOURCE", "rpc")
	t.Setenv("SEED_ENABLED", "true")
	t.Setenv("SEED_ACCOUNTS", "GA,GB")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.DriverSqlite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/ledger.db", cfg.Sqlite.Path)
	assert.Equal(t, configs.ClockRPC, cfg.Clock.Source)
	assert.Equal(t, []string{"GA", "GB"}, cfg.Seed.Accounts)
}

func TestLoadRejectsUnknownOptions(t *testing.T) {
	cases := map[string]string{
		"STORAGE_DRIVER": "redis",
		"CLOCK_SOURCE":   "ntp",
		"AUTH_MODE":      "none",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
