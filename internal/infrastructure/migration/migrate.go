// Package migration applies the versioned PostgreSQL schema with golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Migrator moves the shop database between schema versions.
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// New reads *.up.sql / *.down.sql pairs from the root of fsys.
func New(db *sql.DB, fsys fs.FS, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	target, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres target: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return &Migrator{m: m, logger: logger}, nil
}

// Up applies every pending migration.
func (mg *Migrator) Up() error {
	return mg.apply("up", mg.m.Up)
}

// Down rolls every migration back.
func (mg *Migrator) Down() error {
	return mg.apply("down", mg.m.Down)
}

// Steps moves n versions; negative n rolls back.
func (mg *Migrator) Steps(n int) error {
	return mg.apply(fmt.Sprintf("step %d", n), func() error { return mg.m.Steps(n) })
}

// apply treats "already there" as success and logs where the schema ended up.
func (mg *Migrator) apply(op string, fn func() error) error {
	mg.logger.Info("Migrating", zap.String("op", op))
	if err := fn(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.logger.Info("Schema already current", zap.String("op", op))
			return nil
		}
		return fmt.Errorf("migrate %s: %w", op, err)
	}
	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	mg.logger.Info("Migration finished",
		zap.String("op", op),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Version reports the applied version. An empty database is version 0.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}

// Force records version as applied and clears the dirty flag.
func (mg *Migrator) Force(version int) error {
	mg.logger.Warn("Forcing schema version", zap.Int("version", version))
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Close releases the source and the database handle.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
