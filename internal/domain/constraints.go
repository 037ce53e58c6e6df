package domain

import "time"

// WorkingHours is the daily shop window, e.g. 08:00–18:00.
type WorkingHours struct {
	Start string
	End   string
}

// MaintenanceWindow blocks a machine for a planned service interval.
type MaintenanceWindow struct {
	MachineID string
	Start     time.Time
	End       time.Time
}

// OperationalConstraints carries the shop-level scheduling rules. The
// engine consumes these as data; calendar math beyond machine status is
// left to shop-floor systems.
type OperationalConstraints struct {
	WorkingHours         WorkingHours
	WorkingDays          []string
	MaxOvertimeHoursWeek float64
	MinInterJobBreakMin  int
	MaxContinuousRunMin  int
	MaintenanceWindows   []MaintenanceWindow
}

// OperatorShift describes one operator's availability and skill.
type OperatorShift struct {
	Name       string
	Shift      string
	SkillLevel string
}

// ResourceConstraints carries staffing and consumable availability.
type ResourceConstraints struct {
	AvailableOperators   int
	OperatorShifts       []OperatorShift
	MaterialAvailability map[string]float64
	ToolingAvailability  map[string]bool
}

// QualityRequirements is accepted with the input bundle but informational
// to the scheduling algorithm itself.
type QualityRequirements struct {
	EdgeQualityGrade string
	ToleranceMM      float64
	MaxDrossLevel    string
}

// OptimizationGoals is the caller-supplied objective weighting. Weights
// lie in [0,1] and conceptually sum near 1.0 (not enforced).
type OptimizationGoals struct {
	Primary                    PrimaryObjective
	CustomerSatisfactionWeight float64
	ProfitabilityWeight        float64
	EfficiencyWeight           float64
	UrgencyWeight              float64
}

// DefaultGoals returns an even, balanced weighting.
func DefaultGoals() OptimizationGoals {
	return OptimizationGoals{
		Primary:                    ObjectiveBalanced,
		CustomerSatisfactionWeight: 0.25,
		ProfitabilityWeight:        0.25,
		EfficiencyWeight:           0.25,
		UrgencyWeight:              0.25,
	}
}
