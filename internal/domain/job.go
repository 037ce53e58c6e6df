package domain

import "time"

// Job is one pending order in the cutting queue.
type Job struct {
	ID       string
	Name     string
	Priority PriorityTier
	DueDate  time.Time

	// Cutting parameters
	EstimatedDurationMin int
	MaterialType         string
	ThicknessMM          float64
	SetupTimeMin         int
	PartCount            int

	// Commercial context
	CustomerImportance CustomerTier
	ProfitMarginPct    float64

	// IDs of jobs that must be scheduled before this one.
	DependsOn []string
}

// TierWeight returns the base priority weight for the job's tier.
// Unrecognized tiers fall back to the normal weight.
func (j Job) TierWeight() float64 {
	switch j.Priority {
	case PriorityCritical:
		return 10
	case PriorityUrgent:
		return 8
	case PriorityHigh:
		return 6
	case PriorityLow:
		return 2
	default:
		return 4
	}
}

// CustomerWeight returns the strategic-value multiplier for the job's
// customer tier. Unrecognized tiers fall back to standard.
func (j Job) CustomerWeight() float64 {
	switch j.CustomerImportance {
	case CustomerVIP:
		return 1.5
	case CustomerPreferred:
		return 1.2
	default:
		return 1.0
	}
}

// IsUrgent reports whether the job counts toward the urgent-job totals
// used by risk assessment.
func (j Job) IsUrgent() bool {
	return j.Priority == PriorityUrgent || j.Priority == PriorityCritical
}
