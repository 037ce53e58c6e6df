package scheduler

import "github.com/beamshop/opticut/internal/domain"

// InsightInput is everything the recommendation rules may inspect.
type InsightInput struct {
	Metrics           domain.PerformanceMetrics
	Utilization       domain.ResourceUtilization
	Cost              domain.CostBreakdown
	Risk              domain.RiskAssessment
	JobCount          int
	MachineCount      int
	AvailableMachines int
	UnassignableJobs  int
}

// insightRule fires its message only when the predicate holds against
// the computed metrics.
type insightRule struct {
	when    func(InsightInput) bool
	message string
}

var improvementRules = []insightRule{
	{func(in InsightInput) bool { return in.Metrics.OnTimeDeliveryRatePct < 90 },
		"On-time rate is below 90%; pull due-date-critical jobs earlier or add capacity"},
	{func(in InsightInput) bool { return in.Metrics.TotalTardinessMin > 0 },
		"Some jobs finish past their due dates; review promised dates against queue load"},
	{func(in InsightInput) bool { return in.Cost.OvertimeCost > 0 },
		"Queue depth is driving overtime cost; consider splitting the batch across days"},
	{func(in InsightInput) bool { return in.UnassignableJobs > 0 },
		"Jobs without a compatible machine were placed on fallback capacity; verify material and thickness specs"},
}

var bottleneckRules = []insightRule{
	{func(in InsightInput) bool { return in.AvailableMachines < in.MachineCount },
		"Machines in maintenance or offline are shrinking the usable pool"},
	{func(in InsightInput) bool { return maxRawUtilization(in.Utilization) > 85 },
		"The busiest machine is near saturation; it sets the pace for the whole queue"},
	{func(in InsightInput) bool { return in.Utilization.OperatorUtilizationPct > 80 },
		"Operator coverage is the tightest resource in this run"},
}

var capacityRules = []insightRule{
	{func(in InsightInput) bool { return in.Risk.Level == domain.RiskHigh || in.Risk.Level == domain.RiskCritical },
		"Current demand exceeds comfortable capacity; arrange overflow or subcontracting"},
	{func(in InsightInput) bool { return in.AvailableMachines < 2 },
		"A second available machine would remove the single-point-of-failure risk"},
	{func(in InsightInput) bool { return in.JobCount > 12 },
		"Sustained queues of this depth justify evaluating an additional shift"},
}

var processRules = []insightRule{
	{func(in InsightInput) bool { return in.Cost.SetupCost > in.Cost.TotalOperatingCost*0.25 },
		"Setup is a large share of cost; batch jobs by material and thickness to cut changeovers"},
	{func(in InsightInput) bool { return in.Metrics.AverageWaitTimeMin > 240 },
		"Average queue wait exceeds four hours; release jobs to the floor in smaller waves"},
}

var strategyRules = []insightRule{
	{func(in InsightInput) bool { return in.Risk.Level == domain.RiskCritical },
		"Switch to critical-only sequencing until urgent backlog clears"},
	{func(in InsightInput) bool { return in.Metrics.OnTimeDeliveryRatePct >= 90 && in.Cost.OvertimeCost == 0 },
		"Current weighting is holding both due dates and cost; keep it"},
	{func(in InsightInput) bool { return in.Metrics.OnTimeDeliveryRatePct < 90 },
		"Raise the urgency weight or re-promise the furthest-out due dates"},
}

// DeriveInsights evaluates every rule table against the run's computed
// metrics and returns only the recommendations that actually fire.
func DeriveInsights(in InsightInput) domain.OptimizationInsights {
	return domain.OptimizationInsights{
		ImprovementAreas:        fire(improvementRules, in),
		Bottlenecks:             fire(bottleneckRules, in),
		CapacityRecommendations: fire(capacityRules, in),
		ProcessImprovements:     fire(processRules, in),
		SchedulingStrategies:    fire(strategyRules, in),
	}
}

func fire(rules []insightRule, in InsightInput) []string {
	var out []string
	for _, r := range rules {
		if r.when(in) {
			out = append(out, r.message)
		}
	}
	return out
}

func maxRawUtilization(util domain.ResourceUtilization) float64 {
	var max float64
	for _, m := range util.Machines {
		if m.RawBusyFractionPct > max {
			max = m.RawBusyFractionPct
		}
	}
	return max
}
