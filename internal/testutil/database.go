package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDatabase wraps a real PostgreSQL database for testing
type TestDatabase struct {
	container testcontainers.Container
	pool      *pgxpool.Pool
	queries   *db.Queries
}

// NewTestDatabase creates a new test database using testcontainers
func NewTestDatabase(t *testing.T) *TestDatabase {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
				wait.ForListeningPort("5432/tcp").
					WithStartupTimeout(30*time.Second),
			),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err, "Failed to create connection pool")

	require.NoError(t, pool.Ping(ctx), "Failed to ping database")

	testDB := &TestDatabase{
		container: postgresContainer,
		pool:      pool,
		queries:   db.New(pool),
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	return testDB
}

// Queries returns the SQLC queries interface
func (tdb *TestDatabase) Queries() *db.Queries {
	return tdb.queries
}

// Pool returns the underlying connection pool
func (tdb *TestDatabase) Pool() *pgxpool.Pool {
	return tdb.pool
}

// RunMigrations applies all goose migrations
func (tdb *TestDatabase) RunMigrations(t *testing.T) {
	sqlDB := stdlib.OpenDBFromPool(tdb.pool)
	defer sqlDB.Close()

	goose.SetDialect("postgres")

	err := goose.Up(sqlDB, "../../db/migrations")
	require.NoError(t, err, "Failed to run goose migrations")
}

// CleanupDatabase truncates all tables for test isolation. Role and
// permission rows from the seed migration are preserved.
func (tdb *TestDatabase) CleanupDatabase(t *testing.T) {
	ctx := context.Background()

	tables := []string{
		"activity_logs",
		"borrow_records",
		"item_attribute_values",
		"items",
		"item_attributes",
		"item_info",
		"user_roles",
		"users",
		"villages",
		"mandals",
		"districts",
		"departments",
	}

	for _, table := range tables {
		_, err := tdb.pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Logf("Failed to truncate table %s: %v", table, err)
		}
	}
}
