package domain

import (
	"fmt"
	"time"
)

// A/B test statuses. Only active tests are eligible for assignment.
const (
	TestActive    = "active"
	TestPaused    = "paused"
	TestCompleted = "completed"
)

// Arm identifies which side of a two-arm test a subject landed on.
type Arm string

const (
	ArmControl Arm = "control"
	ArmVariant Arm = "variant"
)

// TestGroup is one arm of an A/B test as configured by the dashboard.
type TestGroup struct {
	Name       string `json:"name"`
	Allocation int    `json:"allocation"`
}

// ABTest is a named two-arm experiment. Assignment is recomputed
// deterministically per subject and never persisted.
type ABTest struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Control   TestGroup `json:"control"`
	Variant   TestGroup `json:"variant"`
	Metrics   []string  `json:"metrics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the dashboard-supplied configuration.
func (t *ABTest) Validate() error {
	switch t.Status {
	case TestActive, TestPaused, TestCompleted:
	default:
		return fmt.Errorf("invalid test status: %s", t.Status)
	}

	if t.Control.Allocation+t.Variant.Allocation != 100 {
		return fmt.Errorf("group allocations must sum to 100, got %d",
			t.Control.Allocation+t.Variant.Allocation)
	}

	return nil
}
