package storage

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations brings the records table up to date. It uses its own
// connection because closing the migrator closes the underlying database.
func RunMigrations(d dialect, dsn string) error {
	migrateDB, err := sql.Open(d.driver, dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer migrateDB.Close()

	var driver database.Driver
	switch d.name {
	case postgresDialect.name:
		driver, err = postgres.WithInstance(migrateDB, &postgres.Config{})
	case sqliteDialect.name:
		driver, err = sqlite.WithInstance(migrateDB, &sqlite.Config{})
	default:
		return errors.Errorf("no migrations for dialect %s", d.name)
	}
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	src, err := iofs.New(migrationsFS, "migrations/"+d.name)
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", src, d.name, driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}
