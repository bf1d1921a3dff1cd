package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// Repository implements EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the ClickHouse schema with ReplacingMergeTree engine.
// The version column deduplicates replays of the same content-hash event id,
// which keeps the log idempotent under consumer retries.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		event_id String,
		event_name LowCardinality(String),
		subject_id String,
		session_id String,
		platform LowCardinality(String),
		app_version LowCardinality(String),
		client_timestamp Int64,
		occurred_at DateTime64(3) DEFAULT now64(3),
		attributes String,
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, occurred_at)
	PARTITION BY toYYYYMM(occurred_at)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch appends a batch of events to the log
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.EventRecord) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}

		attributes := event.Attributes
		if attributes == "" {
			attributes = "{}"
		}

		occurredAt := event.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now()
		}

		err := batch.Append(
			event.EventID,
			event.EventName,
			event.SubjectID,
			event.SessionID,
			event.Platform,
			event.AppVersion,
			event.ClientTimestamp,
			occurredAt,
			attributes,
			event.Version,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// RecentByName returns the most recent events with the given name,
// newest first. The aggregators fold these bounded windows in memory.
func (r *Repository) RecentByName(ctx context.Context, query repository.RecentQuery) ([]*domain.EventRecord, error) {
	where := "event_name = @event_name"
	args := []any{
		clickhouse.Named("event_name", query.EventName),
		clickhouse.Named("limit", query.Limit),
	}

	if !query.Since.IsZero() {
		where += " AND occurred_at >= @since"
		args = append(args, clickhouse.Named("since", query.Since))
	}

	stmt := fmt.Sprintf(`
		SELECT event_id, event_name, subject_id, session_id, platform,
		       app_version, client_timestamp, occurred_at, attributes, version
		FROM events FINAL
		WHERE %s
		ORDER BY occurred_at DESC
		LIMIT @limit
	`, where)

	rows, err := r.client.Conn().Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close recent events rows", zap.Error(err))
		}
	}(rows)

	var events []*domain.EventRecord
	for rows.Next() {
		var e domain.EventRecord
		if err := rows.Scan(
			&e.EventID,
			&e.EventName,
			&e.SubjectID,
			&e.SessionID,
			&e.Platform,
			&e.AppVersion,
			&e.ClientTimestamp,
			&e.OccurredAt,
			&e.Attributes,
			&e.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
