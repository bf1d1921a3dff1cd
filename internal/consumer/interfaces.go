package consumer

import (
	"github.com/akshayraj18/mealfix-analytics/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into event records
type MessageParser interface {
	Parse(body []byte) (*domain.EventRecord, error)
}
