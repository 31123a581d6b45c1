package configs

// Sqlite configures the SQLite storage driver.
type Sqlite struct {
	// Path is the database file. It is created on first use, and the
	// schema is applied every time the database is opened.
	Path string `env:"PATH" envDefault:"crowdfund.db"`
}
