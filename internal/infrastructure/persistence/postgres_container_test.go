package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/infrastructure/migration"
	"github.com/vyapar/backend/migrations"
)

// startPostgres runs a throwaway PostgreSQL, applies the versioned schema
// and opens it the way the server does. Skipped in short mode or when no
// container runtime is reachable.
func startPostgres(t *testing.T) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("vyapar_test"),
		tcpostgres.WithUsername("vyapar"),
		tcpostgres.WithPassword("vyapar"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrateDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	m, err := migration.New(migrateDB, migrations.FS, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())
	_ = migrateDB.Close()

	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:       "postgres",
		URL:          dsn,
		MaxOpenConns: 32,
		MaxIdleConns: 8,
	})
	require.NoError(t, err, "open postgres")
	t.Cleanup(func() { _ = db.Close() })
	return db
}
