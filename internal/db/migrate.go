package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"gads-manager/db/migrations"
)

// ErrDirtySchema is returned when a previous migration of the template
// schema failed halfway. It needs manual repair with `migrate force`.
var ErrDirtySchema = errors.New("template schema is dirty")

// Migrate brings the template schema at addr to migrations.Version. A schema
// ahead of the binary is left alone and reported, so an older release cannot
// roll back a newer one.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	if err = checkVersion(mg.Version()); err != nil {
		return err
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate template schema to %d: %w", migrations.Version, err)
	}
	return nil
}

// checkVersion decides from the recorded schema version whether migrating
// may proceed. An empty database has no version yet.
func checkVersion(current uint, dirty bool, err error) error {
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	case current > migrations.Version:
		return fmt.Errorf("template schema version %d is newer than supported %d", current, migrations.Version)
	}
	return nil
}
