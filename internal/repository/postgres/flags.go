package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// FlagStore implements repository.FlagRepository on Postgres.
// Dashboard writers are non-concurrent in practice; last writer wins.
type FlagStore struct {
	store *Store
}

// NewFlagStore creates a flag store over the shared pool.
func NewFlagStore(store *Store) *FlagStore {
	return &FlagStore{store: store}
}

// Upsert creates or replaces a flag definition.
func (s *FlagStore) Upsert(ctx context.Context, flag *domain.FeatureFlag) error {
	err := s.store.pool.QueryRow(ctx, `
		INSERT INTO feature_flags (name, status, rollout_percentage, platforms)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			rollout_percentage = EXCLUDED.rollout_percentage,
			platforms = EXCLUDED.platforms,
			updated_at = now()
		RETURNING created_at, updated_at`,
		flag.Name, flag.Status, flag.RolloutPercentage, flag.Platforms,
	).Scan(&flag.CreatedAt, &flag.UpdatedAt)
	if err != nil {
		return fmt.Errorf("FlagStore.Upsert: %w", err)
	}
	return nil
}

// Get returns the flag by exact name, or ErrNotFound.
func (s *FlagStore) Get(ctx context.Context, name string) (*domain.FeatureFlag, error) {
	var f domain.FeatureFlag
	err := s.store.pool.QueryRow(ctx, `
		SELECT name, status, rollout_percentage, platforms, created_at, updated_at
		FROM feature_flags WHERE name = $1`,
		name,
	).Scan(&f.Name, &f.Status, &f.RolloutPercentage, &f.Platforms, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &repository.ErrNotFound{Kind: "feature flag", Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("FlagStore.Get: %w", err)
	}
	return &f, nil
}

// List returns all flags ordered by name.
func (s *FlagStore) List(ctx context.Context) ([]*domain.FeatureFlag, error) {
	rows, err := s.store.pool.Query(ctx, `
		SELECT name, status, rollout_percentage, platforms, created_at, updated_at
		FROM feature_flags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("FlagStore.List: %w", err)
	}
	defer rows.Close()

	var flags []*domain.FeatureFlag
	for rows.Next() {
		var f domain.FeatureFlag
		if err := rows.Scan(&f.Name, &f.Status, &f.RolloutPercentage, &f.Platforms,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("FlagStore.List: %w", err)
		}
		flags = append(flags, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FlagStore.List: %w", err)
	}
	return flags, nil
}

// Delete removes a flag. Deleting a missing flag is not an error.
func (s *FlagStore) Delete(ctx context.Context, name string) error {
	if _, err := s.store.pool.Exec(ctx,
		`DELETE FROM feature_flags WHERE name = $1`, name); err != nil {
		return fmt.Errorf("FlagStore.Delete: %w", err)
	}
	return nil
}
