package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowdfund-ledger/db/migrations"
)

// Migrate applies the embedded PostgreSQL migrations up to
// migrations.Version and returns the version the schema ends at. A database
// left dirty by a failed run is reported instead of being forced.
func Migrate(addr string) (uint, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migration source: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, fmt.Errorf("open migration target: %w", err)
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return 0, errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	return migrations.Version, nil
}
