package repository

import (
	"context"
	"time"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
)

// RecentQuery bounds a recent-window scan of the event log.
type RecentQuery struct {
	EventName string
	Limit     int
	// Since, when non-zero, restricts the scan to events at or after it.
	Since time.Time
}

// EventRepository defines the interface for event log storage operations
type EventRepository interface {
	// InsertBatch appends a batch of events to the log
	InsertBatch(ctx context.Context, events []*domain.EventRecord) (int, error)

	// RecentByName returns the most recent events with the given name,
	// ordered by occurred_at descending
	RecentByName(ctx context.Context, query RecentQuery) ([]*domain.EventRecord, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

// FlagRepository manages dashboard-owned feature flag documents
type FlagRepository interface {
	Upsert(ctx context.Context, flag *domain.FeatureFlag) error
	Get(ctx context.Context, name string) (*domain.FeatureFlag, error)
	List(ctx context.Context) ([]*domain.FeatureFlag, error)
	Delete(ctx context.Context, name string) error
}

// TestRepository manages dashboard-owned A/B test documents
type TestRepository interface {
	Upsert(ctx context.Context, test *domain.ABTest) error
	Get(ctx context.Context, name string) (*domain.ABTest, error)
	List(ctx context.Context) ([]*domain.ABTest, error)
	ListActive(ctx context.Context) ([]*domain.ABTest, error)
	Delete(ctx context.Context, name string) error
}

// CounterRepository manages named real-time counters
type CounterRepository interface {
	// Increment atomically adds one to the named counter, creating it at 1
	Increment(ctx context.Context, name string) error

	// Get returns the counter value, zero if the counter does not exist
	Get(ctx context.Context, name string) (int64, error)
}

// ErrNotFound is returned by Get operations when no document matches.
// Callers treat a missing flag as disabled and a missing test as
// unassigned, so this is informational rather than exceptional.
type ErrNotFound struct {
	Kind string
	Name string
}

func (e *ErrNotFound) Error() string {
	return e.Kind + " not found: " + e.Name
}
