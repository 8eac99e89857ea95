package database

import (
	"errors"
	"strings"

	"github.com/Hemasri-atike/Ihire-sub000/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations runs all pending up migrations from the embedded migration
// files. Safe to call on every startup; an up-to-date schema is a no-op.
func ApplyMigrations(connString string) error {
	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return err
	}

	// golang-migrate's pgx/v5 driver registers under the pgx5 scheme
	dbURL := connString
	if strings.HasPrefix(dbURL, "postgres://") {
		dbURL = "pgx5://" + strings.TrimPrefix(dbURL, "postgres://")
	} else if strings.HasPrefix(dbURL, "postgresql://") {
		dbURL = "pgx5://" + strings.TrimPrefix(dbURL, "postgresql://")
	}

	instance, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return err
	}
	defer instance.Close()

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
