package configs

import "time"

const (
	ClockLocal = "local"
	ClockRPC   = "rpc"
)

// Clock selects where ledger sequences come from. The local clock closes a
// ledger every Interval since Genesis; the rpc clock asks a Stellar RPC
// server for its latest ledger.
type Clock struct {
	// Source is "local" or "rpc".
	Source string `env:"SOURCE" envDefault:"local"`
	// Genesis is the wall-clock instant of StartSequence for the local
	// clock. It is an RFC 3339 timestamp.
	Genesis time.Time `env:"GENESIS" envDefault:"2025-01-01T00:00:00Z"`
	// Interval is the local ledger close time. It must be positive.
	Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
	// StartSequence is the sequence reported at Genesis.
	StartSequence uint32 `env:"START_SEQUENCE" envDefault:"1"`
	// RPCURL is the Stellar RPC endpoint queried by the rpc clock.
	RPCURL string `env:"RPC_URL" envDefault:"https://soroban-testnet.stellar.org"`
	// RPCRetries is how many times a failed RPC call is retried with
	// exponential backoff before the operation fails.
	RPCRetries uint64 `env:"RPC_RETRIES" envDefault:"3"`
}
