package dto

// RecordEventRequest represents a client-reported analytics event
type RecordEventRequest struct {
	EventName       string         `json:"event_name" binding:"required" example:"view_recipe"`
	SubjectID       string         `json:"subject_id" example:"user_123"`
	SessionID       string         `json:"session_id" example:"b51acb1a-7370-4c26-aeb0-0c2d4ad9ef64"`
	Platform        string         `json:"platform" binding:"omitempty,oneof=ios android web" example:"ios"`
	AppVersion      string         `json:"app_version" example:"2.4.1"`
	ClientTimestamp int64          `json:"client_timestamp" example:"1723475612"`
	Attributes      map[string]any `json:"attributes" swaggertype:"object,string" example:"recipe:Pasta Carbonara"`
}

// RecordEventsBulkRequest represents a batch of queued client events,
// typically flushed after the client regains connectivity
type RecordEventsBulkRequest struct {
	Events []RecordEventRequest `json:"events" binding:"required,min=1,max=1000,dive"`
}

// TrackConversionRequest represents an A/B test conversion report
type TrackConversionRequest struct {
	TestName   string  `json:"test_name" binding:"required" example:"new_suggestion_prompt"`
	MetricName string  `json:"metric_name" binding:"required" example:"recipe_saved"`
	SubjectID  string  `json:"subject_id" example:"user_123"`
	Value      float64 `json:"value" example:"1"`
}

// UpsertFlagRequest creates or replaces a feature flag definition
type UpsertFlagRequest struct {
	Status            string   `json:"status" binding:"required,oneof=enabled disabled percentage_rollout" example:"percentage_rollout"`
	RolloutPercentage int      `json:"rollout_percentage" binding:"min=0,max=100" example:"25"`
	Platforms         []string `json:"platforms" binding:"omitempty,dive,oneof=all ios android web" example:"ios,android"`
}

// TestGroupRequest is one arm of an A/B test definition
type TestGroupRequest struct {
	Name       string `json:"name" binding:"required" example:"Control"`
	Allocation int    `json:"allocation" binding:"min=0,max=100" example:"50"`
}

// UpsertTestRequest creates or replaces an A/B test definition
type UpsertTestRequest struct {
	Status  string           `json:"status" binding:"required,oneof=active paused completed" example:"active"`
	Control TestGroupRequest `json:"control" binding:"required"`
	Variant TestGroupRequest `json:"variant" binding:"required"`
	Metrics []string         `json:"metrics" example:"recipe_saved,session_length"`
}
