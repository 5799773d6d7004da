package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
)

// Database is the shop store: PostgreSQL in production, SQLite for a single
// counter or tests.
type Database struct {
	DB     *gorm.DB
	Driver string
	sqlDB  *sql.DB
}

// NewDatabase opens the store with GORM's own logging off.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return NewDatabaseWithLogger(cfg, gormlogger.Default.LogMode(gormlogger.Silent))
}

// NewDatabaseWithLogger opens the store, sizes the pool and pings it.
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, gormLogger gormlogger.Interface) (*Database, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}
	dialector, err := dialectorFor(driver, cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	configurePool(sqlDB, driver, cfg)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return &Database{DB: db, Driver: driver, sqlDB: sqlDB}, nil
}

func dialectorFor(driver string, cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "vyapar.db"
		}
		return sqlite.Open(path + "?_foreign_keys=on"), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func configurePool(sqlDB *sql.DB, driver string, cfg *config.DatabaseConfig) {
	if driver == "sqlite" {
		// one writer; concurrent checkouts would otherwise hit SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
}

// AutoMigrate creates the tables from the GORM models. PostgreSQL
// deployments normally run cmd/migrate instead.
func (d *Database) AutoMigrate() error {
	if err := d.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Ping backs the readiness check.
func (d *Database) Ping(ctx context.Context) error {
	return d.sqlDB.PingContext(ctx)
}

// Stats reports pool usage.
func (d *Database) Stats() sql.DBStats {
	return d.sqlDB.Stats()
}

func (d *Database) Close() error {
	return d.sqlDB.Close()
}
