package scheduler

import (
	"math"

	"github.com/beamshop/opticut/internal/domain"
)

// RiskInput is the queue/resource snapshot risk is classified from.
type RiskInput struct {
	UrgentJobs         int
	JobCount           int
	AvailableMachines  int
	AvailableOperators int
}

// AssessRisk walks the risk ladder in order; later levels override
// earlier ones, so the result is monotone in urgent-job and queue
// counts.
func AssessRisk(in RiskInput) domain.RiskAssessment {
	level := domain.RiskLow
	if in.UrgentJobs > 2 || in.JobCount > 8 {
		level = domain.RiskMedium
	}
	if in.UrgentJobs > 3 || in.JobCount > 12 || in.AvailableMachines < 2 {
		level = domain.RiskHigh
	}
	if in.UrgentJobs > 5 || in.JobCount > 15 || in.AvailableMachines < 1 {
		level = domain.RiskCritical
	}

	var factors []string
	if in.UrgentJobs > 2 {
		factors = append(factors, "High number of urgent jobs in queue")
	}
	if in.JobCount > 12 {
		factors = append(factors, "Queue length limits rescheduling flexibility")
	}
	if in.AvailableMachines < 2 {
		factors = append(factors, "No machine redundancy if a cutter goes down")
	}
	if in.AvailableOperators < 2 {
		factors = append(factors, "Single-operator coverage across all machines")
	}

	var plans []string
	if in.UrgentJobs > 2 {
		plans = append(plans, "Reserve overtime capacity for urgent jobs")
	}
	if in.AvailableMachines < 2 {
		plans = append(plans, "Line up subcontract capacity in case of machine failure")
	}
	if in.JobCount > 8 {
		plans = append(plans, "Re-run the optimizer after each completed batch")
	}
	if len(plans) == 0 {
		plans = append(plans, "Monitor queue daily; current load is manageable")
	}

	return domain.RiskAssessment{
		Level:             level,
		RiskFactors:       factors,
		ContingencyPlans:  plans,
		BufferAdequacyPct: math.Max(60, 100-float64(in.JobCount)*3),
	}
}
