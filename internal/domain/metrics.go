package domain

// Source tags an aggregate result so operators can tell a genuinely empty
// window from a failed store read. Both render the same on the dashboard.
type Source string

const (
	// SourceOK means the result was computed from a successful scan,
	// even if the scan matched no events.
	SourceOK Source = "ok"

	// SourceFallback means the scan failed and the result holds
	// deterministic zero-value data.
	SourceFallback Source = "fallback"
)

// RecipePopularity is one entry in the popular recipes ranking.
type RecipePopularity struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
	Saves int    `json:"saves"`
}

// PopularRecipesResult ranks recipes by views desc, ties by saves desc.
type PopularRecipesResult struct {
	Source  Source             `json:"source"`
	Recipes []RecipePopularity `json:"recipes"`
}

// DietaryTrend is the share of recent "add" toggles for one preference.
type DietaryTrend struct {
	Preference string `json:"preference"`
	Percentage int    `json:"percentage"`
}

// DietaryTrendsResult lists preference shares sorted by percentage desc.
type DietaryTrendsResult struct {
	Source Source         `json:"source"`
	Trends []DietaryTrend `json:"trends"`
}

// EngagementResult summarizes the recent login and screen-view windows.
type EngagementResult struct {
	Source           Source  `json:"source"`
	TotalUsers       int     `json:"total_users"`
	ActiveUsers      int     `json:"active_users"`
	AvgScreenSeconds float64 `json:"avg_screen_seconds"`
}

// PerformanceStat is the mean duration for one performance metric name.
type PerformanceStat struct {
	Metric string `json:"metric"`
	AvgMs  int64  `json:"avg_ms"`
}

// PerformanceResult lists per-metric mean durations.
type PerformanceResult struct {
	Source Source            `json:"source"`
	Stats  []PerformanceStat `json:"stats"`
}
