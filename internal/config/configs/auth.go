package configs

import "time"

const (
	AuthSignature = "signature"
	AuthTrust     = "trust"
)

// Auth configures how callers prove control of an address. "signature"
// requires an EdDSA-signed bearer token; "trust" authorizes every call and
// exists for local development.
type Auth struct {
	// Mode is "signature" or "trust". Any other value fails validation.
	Mode string `env:"MODE" envDefault:"signature"`
	// Audience is the aud claim a bearer token must carry. Tokens issued
	// for another service are rejected.
	Audience string `env:"AUDIENCE" envDefault:"crowdfund-ledger"`
	// MaxAge bounds how old a token's iat claim may be.
	MaxAge time.Duration `env:"MAX_AGE" envDefault:"5m"`
}
