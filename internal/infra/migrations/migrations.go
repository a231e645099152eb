package migrations

import (
	"embed"
	"errors"
	"log/slog"
	"strings"

	"parkspace-booking/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

const referenceDataFile = "sql/000002_seed_reference_data.up.sql"

// Up applies every pending migration. A database that is already current is not an error.
func Up(dsn string, logger *slog.Logger) error {
	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errs.Wrap(err, "read migration version")
	}
	logger.Info("database schema is up to date", "version", version, "dirty", dirty)
	return nil
}

// Down rolls every migration back.
func Down(dsn string, logger *slog.Logger) error {
	m, err := newMigrate(dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "roll back migrations")
	}
	return nil
}

// ReferenceData returns the seed statements for vehicle types, the base price
// and the global contract template. They are idempotent.
func ReferenceData() (string, error) {
	b, err := files.ReadFile(referenceDataFile)
	if err != nil {
		return "", errs.Wrap(err, "read reference data")
	}
	return string(b), nil
}

func newMigrate(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errs.Wrap(err, "open embedded migrations")
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, driverURL(dsn))
	if err != nil {
		return nil, errs.Wrap(err, "init migrate")
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("failed to close migration source", "error", srcErr.Error())
	}
	if dbErr != nil {
		logger.Warn("failed to close migration database", "error", dbErr.Error())
	}
}

// driverURL swaps the postgres scheme for the one the pgx/v5 migrate driver registers.
func driverURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
