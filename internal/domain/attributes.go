package domain

import (
	"encoding/json"
	"fmt"
)

// Typed attribute payloads for the event names the aggregators consume.
// Unknown event names keep their attributes as an open map; known names
// decode into one of these shapes so the aggregation hot paths never
// touch map[string]any.

// RecipeViewAttrs is the payload of view_recipe and save_recipe events.
type RecipeViewAttrs struct {
	Recipe string `json:"recipe"`
}

// DietaryToggleAttrs is the payload of dietary_toggle events.
// Action is "add" or "remove".
type DietaryToggleAttrs struct {
	Preference string `json:"preference"`
	Action     string `json:"action"`
}

// ScreenViewAttrs is the payload of screen_view events.
type ScreenViewAttrs struct {
	Screen     string `json:"screen"`
	DurationMs int64  `json:"duration_ms"`
}

// PerformanceAttrs is the payload of performance_metric events.
type PerformanceAttrs struct {
	Metric     string `json:"metric"`
	DurationMs int64  `json:"duration_ms"`
}

// RecipeErrorAttrs is the payload of recipe_error events.
type RecipeErrorAttrs struct {
	Message string `json:"message"`
	Recipe  string `json:"recipe,omitempty"`
}

// ConversionAttrs is the payload of ab_conversion events.
type ConversionAttrs struct {
	Test   string  `json:"test"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// DecodeAttributes parses a raw attribute document into the typed payload
// for known event names, or a plain map for custom events.
func DecodeAttributes(eventName, raw string) (any, error) {
	if raw == "" {
		raw = "{}"
	}

	decode := func(v any) (any, error) {
		if err := json.Unmarshal([]byte(raw), v); err != nil {
			return nil, fmt.Errorf("failed to decode %s attributes: %w", eventName, err)
		}
		return v, nil
	}

	switch eventName {
	case EventViewRecipe, EventSaveRecipe:
		return decode(&RecipeViewAttrs{})
	case EventDietaryToggle:
		return decode(&DietaryToggleAttrs{})
	case EventScreenView:
		return decode(&ScreenViewAttrs{})
	case EventPerformanceMetric:
		return decode(&PerformanceAttrs{})
	case EventRecipeError:
		return decode(&RecipeErrorAttrs{})
	case EventConversion:
		return decode(&ConversionAttrs{})
	default:
		m := map[string]any{}
		return decode(&m)
	}
}

// EncodeAttributes serializes an attribute payload for storage.
// A nil payload encodes as an empty document.
func EncodeAttributes(attrs any) (string, error) {
	if attrs == nil {
		return "{}", nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("failed to encode attributes: %w", err)
	}
	return string(b), nil
}
