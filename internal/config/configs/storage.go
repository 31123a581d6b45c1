package configs

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Storage selects the backend for instance storage, token balances and the
// event log, and names the ledger's own holding address.
type Storage struct {
	// Driver is "memory", "postgres" or "sqlite". The memory driver keeps
	// nothing across restarts.
	Driver string `env:"DRIVER" envDefault:"memory"`
	// ContractID is the address funds are held under and the key all
	// persisted rows are scoped by.
	ContractID string `env:"CONTRACT_ID" envDefault:"CBL7JXM2XHCHYYQEF2QKB4RS2O24CWXZ454Y7FRIXENVHQJIM4DUFZRT"`
	// DefaultToken is used by balance lookups that do not name a token.
	DefaultToken string `env:"DEFAULT_TOKEN" envDefault:"CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC"`
}
