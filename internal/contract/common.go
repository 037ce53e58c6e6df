package contract

type ConstraintBlockerCode string

const (
	BlockerNoCompatibleMachine ConstraintBlockerCode = "NO_COMPATIBLE_MACHINE"
	BlockerMachineUnavailable  ConstraintBlockerCode = "MACHINE_UNAVAILABLE"
	BlockerDependencyPending   ConstraintBlockerCode = "DEPENDENCY_PENDING"
)

// ConstraintBlocker records a constraint the optimizer could not satisfy
// for a specific entity, surfaced instead of being silently absorbed.
type ConstraintBlocker struct {
	EntityType string
	EntityID   string
	Code       ConstraintBlockerCode
	Message    string
}

// RealTimeAdjustment describes one rescheduling trigger/strategy pair.
// The engine reports these as configuration; it does not execute them.
type RealTimeAdjustment struct {
	Trigger     string
	Strategy    string
	Description string
}

// CustomerImpactEntry summarizes delivery outlook for one customer tier.
type CustomerImpactEntry struct {
	Tier          string
	Jobs          int
	OnTimeJobs    int
	OnTimeRatePct float64
}
