package domain

import "time"

// AnonymousSubject is the sentinel subject id recorded for events that
// happen before a user authenticates. It is never empty in storage.
const AnonymousSubject = "anonymous"

// Well-known event names. Custom names outside this vocabulary are
// accepted and stored as-is; only these drive counters and aggregations.
const (
	EventViewRecipe        = "view_recipe"
	EventSaveRecipe        = "save_recipe"
	EventDietaryToggle     = "dietary_toggle"
	EventScreenView        = "screen_view"
	EventUserLogin         = "user_login"
	EventUserSignup        = "user_signup"
	EventPerformanceMetric = "performance_metric"
	EventRecipeError       = "recipe_error"

	// EventConversion is reserved for A/B test conversion tracking.
	EventConversion = "ab_conversion"
)

// Client platforms
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// EventRecord represents one immutable analytics event stored in ClickHouse.
// OccurredAt is server-assigned and authoritative for ordering;
// ClientTimestamp is the client wall clock and is display-only.
type EventRecord struct {
	EventID         string    `ch:"event_id"`
	EventName       string    `ch:"event_name"`
	SubjectID       string    `ch:"subject_id"`
	SessionID       string    `ch:"session_id"`
	Platform        string    `ch:"platform"`
	AppVersion      string    `ch:"app_version"`
	ClientTimestamp int64     `ch:"client_timestamp"`
	OccurredAt      time.Time `ch:"occurred_at"`
	Attributes      string    `ch:"attributes"`
	Version         uint64    `ch:"version"`
}
