package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Store holds the shared connection pool for the configuration database:
// feature flags, A/B tests, and real-time counters.
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewStore connects to Postgres and verifies the connection.
func NewStore(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("NewStore: %w", err)
	}

	log.Info("Postgres connection established successfully")

	return &Store{pool: pool, log: log}, nil
}

// InitSchema creates the configuration tables if they don't exist.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS feature_flags (
		name                TEXT PRIMARY KEY,
		status              TEXT NOT NULL DEFAULT 'disabled',
		rollout_percentage  INT  NOT NULL DEFAULT 0,
		platforms           TEXT[] NOT NULL DEFAULT '{all}',
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS ab_tests (
		name               TEXT PRIMARY KEY,
		status             TEXT NOT NULL DEFAULT 'active',
		control_name       TEXT NOT NULL DEFAULT 'Control',
		control_allocation INT  NOT NULL DEFAULT 50,
		variant_name       TEXT NOT NULL DEFAULT 'Variant',
		variant_allocation INT  NOT NULL DEFAULT 50,
		metrics            TEXT[] NOT NULL DEFAULT '{}',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS counters (
		name  TEXT PRIMARY KEY,
		value BIGINT NOT NULL DEFAULT 0
	);
	`

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("InitSchema: %w", err)
	}

	s.log.Info("Postgres schema initialized successfully")
	return nil
}

// Ping checks if the Postgres connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
