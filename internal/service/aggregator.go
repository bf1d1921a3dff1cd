package service

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// Aggregation window sizes. Each dashboard query scans a bounded recent
// slice of the log and folds it in memory; expected event volume is low
// enough that these windows cover well past the display horizon.
const (
	recipeWindow     = 100
	toggleWindow     = 500
	loginWindow      = 1000
	screenViewWindow = 500
	perfWindow       = 500

	defaultRecipeLimit = 10

	// activeUserWindow is the trailing window a login must fall in for
	// the subject to count as active.
	activeUserWindow = 30 * 24 * time.Hour
)

// Aggregator folds recent event windows into dashboard summaries.
// All operations are read-only, stateless between calls, and never fail:
// a store error yields a zero-value result tagged domain.SourceFallback.
type Aggregator struct {
	events repository.EventRepository
	log    *zap.Logger
}

// NewAggregator creates a metrics aggregator over the event log.
func NewAggregator(events repository.EventRepository, log *zap.Logger) *Aggregator {
	return &Aggregator{
		events: events,
		log:    log,
	}
}

// PopularRecipes ranks recipes from the recent view and save windows,
// sorted by views descending with ties broken by saves descending.
func (a *Aggregator) PopularRecipes(ctx context.Context, limit int) *domain.PopularRecipesResult {
	if limit <= 0 {
		limit = defaultRecipeLimit
	}

	views, err := a.recent(ctx, domain.EventViewRecipe, recipeWindow)
	if err != nil {
		a.log.Error("Popular recipes scan failed, returning fallback", zap.Error(err))
		return &domain.PopularRecipesResult{Source: domain.SourceFallback, Recipes: []domain.RecipePopularity{}}
	}

	saves, err := a.recent(ctx, domain.EventSaveRecipe, recipeWindow)
	if err != nil {
		a.log.Error("Popular recipes scan failed, returning fallback", zap.Error(err))
		return &domain.PopularRecipesResult{Source: domain.SourceFallback, Recipes: []domain.RecipePopularity{}}
	}

	byName := make(map[string]*domain.RecipePopularity)
	lookup := func(name string) *domain.RecipePopularity {
		if entry, ok := byName[name]; ok {
			return entry
		}
		entry := &domain.RecipePopularity{Name: name}
		byName[name] = entry
		return entry
	}

	for _, view := range views {
		attrs, ok := a.recipeAttrs(view)
		if !ok {
			continue
		}
		lookup(attrs.Recipe).Views++
	}

	for _, save := range saves {
		attrs, ok := a.recipeAttrs(save)
		if !ok {
			continue
		}
		lookup(attrs.Recipe).Saves++
	}

	ranked := make([]domain.RecipePopularity, 0, len(byName))
	for _, entry := range byName {
		ranked = append(ranked, *entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		if ranked[i].Saves != ranked[j].Saves {
			return ranked[i].Saves > ranked[j].Saves
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &domain.PopularRecipesResult{Source: domain.SourceOK, Recipes: ranked}
}

// DietaryTrends computes the share of recent "add" toggles per preference,
// rounded to the nearest integer percentage and sorted descending.
func (a *Aggregator) DietaryTrends(ctx context.Context) *domain.DietaryTrendsResult {
	toggles, err := a.recent(ctx, domain.EventDietaryToggle, toggleWindow)
	if err != nil {
		a.log.Error("Dietary trends scan failed, returning fallback", zap.Error(err))
		return &domain.DietaryTrendsResult{Source: domain.SourceFallback, Trends: []domain.DietaryTrend{}}
	}

	counts := make(map[string]int)
	total := 0
	for _, toggle := range toggles {
		decoded, err := domain.DecodeAttributes(toggle.EventName, toggle.Attributes)
		if err != nil {
			a.log.Debug("Skipping malformed dietary_toggle event",
				zap.String("event_id", toggle.EventID), zap.Error(err))
			continue
		}
		attrs := decoded.(*domain.DietaryToggleAttrs)
		if attrs.Action != "add" || attrs.Preference == "" {
			continue
		}
		counts[attrs.Preference]++
		total++
	}

	trends := make([]domain.DietaryTrend, 0, len(counts))
	for preference, count := range counts {
		// total > 0 whenever counts is non-empty
		trends = append(trends, domain.DietaryTrend{
			Preference: preference,
			Percentage: int(math.Round(100 * float64(count) / float64(total))),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Percentage != trends[j].Percentage {
			return trends[i].Percentage > trends[j].Percentage
		}
		return trends[i].Preference < trends[j].Preference
	})

	return &domain.DietaryTrendsResult{Source: domain.SourceOK, Trends: trends}
}

// Engagement derives user counts from the recent login window and mean
// screen time from the recent screen-view window.
func (a *Aggregator) Engagement(ctx context.Context) *domain.EngagementResult {
	logins, err := a.recent(ctx, domain.EventUserLogin, loginWindow)
	if err != nil {
		a.log.Error("Engagement scan failed, returning fallback", zap.Error(err))
		return &domain.EngagementResult{Source: domain.SourceFallback}
	}

	screenViews, err := a.recent(ctx, domain.EventScreenView, screenViewWindow)
	if err != nil {
		a.log.Error("Engagement scan failed, returning fallback", zap.Error(err))
		return &domain.EngagementResult{Source: domain.SourceFallback}
	}

	activeCutoff := time.Now().Add(-activeUserWindow)
	seen := make(map[string]bool)
	active := make(map[string]bool)
	for _, login := range logins {
		if login.SubjectID == domain.AnonymousSubject {
			continue
		}
		seen[login.SubjectID] = true
		if login.OccurredAt.After(activeCutoff) {
			active[login.SubjectID] = true
		}
	}

	var totalMs, screenCount int64
	for _, view := range screenViews {
		decoded, err := domain.DecodeAttributes(view.EventName, view.Attributes)
		if err != nil {
			a.log.Debug("Skipping malformed screen_view event",
				zap.String("event_id", view.EventID), zap.Error(err))
			continue
		}
		attrs := decoded.(*domain.ScreenViewAttrs)
		totalMs += attrs.DurationMs
		screenCount++
	}

	avgSeconds := 0.0
	if screenCount > 0 {
		avgSeconds = float64(totalMs) / float64(screenCount) / 1000.0
	}

	return &domain.EngagementResult{
		Source:           domain.SourceOK,
		TotalUsers:       len(seen),
		ActiveUsers:      len(active),
		AvgScreenSeconds: avgSeconds,
	}
}

// Performance computes the mean duration per metric name over the recent
// performance window, rounded to the nearest millisecond.
func (a *Aggregator) Performance(ctx context.Context) *domain.PerformanceResult {
	samples, err := a.recent(ctx, domain.EventPerformanceMetric, perfWindow)
	if err != nil {
		a.log.Error("Performance scan failed, returning fallback", zap.Error(err))
		return &domain.PerformanceResult{Source: domain.SourceFallback, Stats: []domain.PerformanceStat{}}
	}

	type acc struct {
		totalMs int64
		count   int64
	}
	byMetric := make(map[string]*acc)
	for _, sample := range samples {
		decoded, err := domain.DecodeAttributes(sample.EventName, sample.Attributes)
		if err != nil {
			a.log.Debug("Skipping malformed performance_metric event",
				zap.String("event_id", sample.EventID), zap.Error(err))
			continue
		}
		attrs := decoded.(*domain.PerformanceAttrs)
		if attrs.Metric == "" {
			continue
		}
		entry, ok := byMetric[attrs.Metric]
		if !ok {
			entry = &acc{}
			byMetric[attrs.Metric] = entry
		}
		entry.totalMs += attrs.DurationMs
		entry.count++
	}

	stats := make([]domain.PerformanceStat, 0, len(byMetric))
	for metric, entry := range byMetric {
		stats = append(stats, domain.PerformanceStat{
			Metric: metric,
			AvgMs:  int64(math.Round(float64(entry.totalMs) / float64(entry.count))),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Metric < stats[j].Metric
	})

	return &domain.PerformanceResult{Source: domain.SourceOK, Stats: stats}
}

func (a *Aggregator) recent(ctx context.Context, eventName string, limit int) ([]*domain.EventRecord, error) {
	return a.events.RecentByName(ctx, repository.RecentQuery{
		EventName: eventName,
		Limit:     limit,
	})
}

func (a *Aggregator) recipeAttrs(event *domain.EventRecord) (*domain.RecipeViewAttrs, bool) {
	decoded, err := domain.DecodeAttributes(event.EventName, event.Attributes)
	if err != nil {
		a.log.Debug("Skipping malformed recipe event",
			zap.String("event_id", event.EventID), zap.Error(err))
		return nil, false
	}
	attrs := decoded.(*domain.RecipeViewAttrs)
	if attrs.Recipe == "" {
		return nil, false
	}
	return attrs, true
}
