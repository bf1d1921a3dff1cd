package service

import (
	"context"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
)

// EventRecorder defines the interface for the write side of the pipeline.
// None of these operations return an error: a recording failure must never
// interrupt the user action that triggered it.
type EventRecorder interface {
	Record(ctx context.Context, eventName, subjectID string, attrs any)
	RecordClientEvent(ctx context.Context, ev ClientEvent)
	RecordBatch(ctx context.Context, events []ClientEvent)
	TrackConversion(ctx context.Context, subjectID, testName, metricName string, value float64)
}

// MetricsProvider defines the interface for dashboard summary queries.
// Every operation returns a renderable result; failures degrade to a
// fallback object tagged with domain.SourceFallback.
type MetricsProvider interface {
	PopularRecipes(ctx context.Context, limit int) *domain.PopularRecipesResult
	DietaryTrends(ctx context.Context) *domain.DietaryTrendsResult
	Engagement(ctx context.Context) *domain.EngagementResult
	Performance(ctx context.Context) *domain.PerformanceResult
}
