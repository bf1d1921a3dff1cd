package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// TestStore implements repository.TestRepository on Postgres.
type TestStore struct {
	store *Store
}

// NewTestStore creates an A/B test store over the shared pool.
func NewTestStore(store *Store) *TestStore {
	return &TestStore{store: store}
}

const testColumns = `name, status, control_name, control_allocation,
	variant_name, variant_allocation, metrics, created_at, updated_at`

func scanTest(row pgx.Row) (*domain.ABTest, error) {
	var t domain.ABTest
	err := row.Scan(&t.Name, &t.Status,
		&t.Control.Name, &t.Control.Allocation,
		&t.Variant.Name, &t.Variant.Allocation,
		&t.Metrics, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Upsert creates or replaces a test definition.
func (s *TestStore) Upsert(ctx context.Context, test *domain.ABTest) error {
	if err := test.Validate(); err != nil {
		return fmt.Errorf("TestStore.Upsert: %w", err)
	}

	err := s.store.pool.QueryRow(ctx, `
		INSERT INTO ab_tests (name, status, control_name, control_allocation,
			variant_name, variant_allocation, metrics)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			control_name = EXCLUDED.control_name,
			control_allocation = EXCLUDED.control_allocation,
			variant_name = EXCLUDED.variant_name,
			variant_allocation = EXCLUDED.variant_allocation,
			metrics = EXCLUDED.metrics,
			updated_at = now()
		RETURNING created_at, updated_at`,
		test.Name, test.Status, test.Control.Name, test.Control.Allocation,
		test.Variant.Name, test.Variant.Allocation, test.Metrics,
	).Scan(&test.CreatedAt, &test.UpdatedAt)
	if err != nil {
		return fmt.Errorf("TestStore.Upsert: %w", err)
	}
	return nil
}

// Get returns the test by exact name, or ErrNotFound.
func (s *TestStore) Get(ctx context.Context, name string) (*domain.ABTest, error) {
	row := s.store.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM ab_tests WHERE name = $1`, testColumns), name)

	t, err := scanTest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &repository.ErrNotFound{Kind: "ab test", Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("TestStore.Get: %w", err)
	}
	return t, nil
}

// List returns all tests ordered by name.
func (s *TestStore) List(ctx context.Context) ([]*domain.ABTest, error) {
	return s.list(ctx, fmt.Sprintf(`SELECT %s FROM ab_tests ORDER BY name`, testColumns))
}

// ListActive returns only tests eligible for assignment.
func (s *TestStore) ListActive(ctx context.Context) ([]*domain.ABTest, error) {
	return s.list(ctx, fmt.Sprintf(
		`SELECT %s FROM ab_tests WHERE status = 'active' ORDER BY name`, testColumns))
}

func (s *TestStore) list(ctx context.Context, query string) ([]*domain.ABTest, error) {
	rows, err := s.store.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("TestStore.list: %w", err)
	}
	defer rows.Close()

	var tests []*domain.ABTest
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, fmt.Errorf("TestStore.list: %w", err)
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TestStore.list: %w", err)
	}
	return tests, nil
}

// Delete removes a test. Deleting a missing test is not an error.
func (s *TestStore) Delete(ctx context.Context, name string) error {
	if _, err := s.store.pool.Exec(ctx,
		`DELETE FROM ab_tests WHERE name = $1`, name); err != nil {
		return fmt.Errorf("TestStore.Delete: %w", err)
	}
	return nil
}
