package configs

// Seed credits demo token balances at startup.
type Seed struct {
	// Enabled turns seeding on. Accounts are topped up to Amount, so a
	// restart with seeding on leaves funded accounts alone.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Accounts is a comma-separated list of addresses to credit with the
	// default token.
	Accounts []string `env:"ACCOUNTS" envSeparator:","`
	// Amount is in stroops; the default is 1000 XLM.
	Amount int64 `env:"AMOUNT" envDefault:"10000000000"`
}
