package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
)

// JSONEventParser implements MessageParser for JSON-formatted event messages
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse parses a JSON message body into an EventRecord. The server write
// time (occurred_at) is assigned here, at the point the event enters the
// durable log, so ordering within a session follows write order.
func (p *JSONEventParser) Parse(body []byte) (*domain.EventRecord, error) {
	var msgBody map[string]any
	if err := json.Unmarshal(body, &msgBody); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	attributesJSON := "{}"
	if attributes, ok := msgBody["attributes"].(map[string]any); ok && len(attributes) > 0 {
		attributesBytes, err := json.Marshal(attributes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attributes: %w", err)
		}
		attributesJSON = string(attributesBytes)
	}

	eventName := getStringField(msgBody, "event_name")
	if eventName == "" {
		return nil, fmt.Errorf("message missing event_name")
	}

	subjectID := getStringField(msgBody, "subject_id")
	if subjectID == "" {
		subjectID = domain.AnonymousSubject
	}

	event := &domain.EventRecord{
		EventID:         getStringField(msgBody, "event_id"),
		EventName:       eventName,
		SubjectID:       subjectID,
		SessionID:       getStringField(msgBody, "session_id"),
		Platform:        getStringField(msgBody, "platform"),
		AppVersion:      getStringField(msgBody, "app_version"),
		ClientTimestamp: getInt64Field(msgBody, "client_timestamp"),
		OccurredAt:      time.Now(),
		Attributes:      attributesJSON,
		Version:         uint64(time.Now().UnixNano()),
	}

	return event, nil
}

// Helper functions for extracting fields from parsed JSON
func getStringField(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

func getInt64Field(m map[string]any, key string) int64 {
	if val, ok := m[key].(float64); ok {
		return int64(val)
	}
	return 0
}
