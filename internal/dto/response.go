package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"event_name is required"`
}

// RecordEventResponse acknowledges an ingested event. Recording failures
// are absorbed server-side, so acceptance is unconditional once the
// request parses.
type RecordEventResponse struct {
	Status string `json:"status" example:"accepted"`
}

// RecordEventsBulkResponse acknowledges a batch of ingested events
type RecordEventsBulkResponse struct {
	Status   string `json:"status" example:"accepted"`
	Accepted int    `json:"accepted" example:"12"`
}

// FlagDecisionResponse is the gating decision for one flag evaluation
type FlagDecisionResponse struct {
	Flag      string `json:"flag" example:"pantry_scanner"`
	SubjectID string `json:"subject_id" example:"user_123"`
	Platform  string `json:"platform" example:"ios"`
	Enabled   bool   `json:"enabled" example:"true"`
}

// VariantResponse is the arm assignment for one test evaluation.
// Arm is null when no assignment applies.
type VariantResponse struct {
	Test      string  `json:"test" example:"new_suggestion_prompt"`
	SubjectID string  `json:"subject_id" example:"user_123"`
	Arm       *string `json:"arm" example:"control"`
}

// CounterResponse is a real-time counter read
type CounterResponse struct {
	Name  string `json:"name" example:"total_signups"`
	Value int64  `json:"value" example:"1500"`
}
