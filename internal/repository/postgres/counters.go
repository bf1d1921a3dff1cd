package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CounterStore implements repository.CounterRepository on Postgres.
// One row per named counter; increments are atomic at the statement level.
type CounterStore struct {
	store *Store
}

// NewCounterStore creates a counter store over the shared pool.
func NewCounterStore(store *Store) *CounterStore {
	return &CounterStore{store: store}
}

// Increment atomically adds one to the named counter, creating it at 1.
func (s *CounterStore) Increment(ctx context.Context, name string) error {
	_, err := s.store.pool.Exec(ctx, `
		INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1`,
		name)
	if err != nil {
		return fmt.Errorf("CounterStore.Increment: %w", err)
	}
	return nil
}

// Get returns the counter value, zero if the counter does not exist.
func (s *CounterStore) Get(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.store.pool.QueryRow(ctx,
		`SELECT value FROM counters WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("CounterStore.Get: %w", err)
	}
	return value, nil
}
