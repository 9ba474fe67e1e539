package database

import (
	"context"
	"fmt"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	pool    *pgxpool.Pool
	queries *db.Queries
}

func New(cfg *config.DatabaseConfig) (*Database, error) {
	pool, err := pgxpool.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Activate and test the connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	queries := db.New(pool)

	return &Database{
		pool:    pool,
		queries: queries,
	}, nil
}

func (d *Database) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

func (d *Database) Queries() *db.Queries {
	return d.queries
}

func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// InTx runs fn inside a single transaction. The transaction is rolled back
// unless fn returns nil.
func (d *Database) InTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(d.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
