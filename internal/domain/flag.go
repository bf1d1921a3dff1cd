package domain

import "time"

// Feature flag statuses
const (
	FlagEnabled           = "enabled"
	FlagDisabled          = "disabled"
	FlagPercentageRollout = "percentage_rollout"
)

// PlatformAll in a flag's platform set matches every client platform.
const PlatformAll = "all"

// FeatureFlag is a named gate controlling client feature visibility.
// RolloutPercentage is meaningful only when Status is percentage_rollout.
type FeatureFlag struct {
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	RolloutPercentage int       `json:"rollout_percentage"`
	Platforms         []string  `json:"platforms"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AppliesTo reports whether the flag covers the given client platform.
// An empty platform set covers nothing.
func (f *FeatureFlag) AppliesTo(platform string) bool {
	for _, p := range f.Platforms {
		if p == PlatformAll || p == platform {
			return true
		}
	}
	return false
}
