package scheduler

import (
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// scenarioPreset is one named goal-weight vector the optimizer is
// re-run under.
type scenarioPreset struct {
	name        string
	description string
	tradeoff    string
	goals       func(base domain.OptimizationGoals) domain.OptimizationGoals
}

var scenarioPresets = []scenarioPreset{
	{
		name:        "Minimum Makespan",
		description: "Re-optimized with efficiency-heavy weights to finish the queue as early as possible",
		tradeoff:    "Margin and customer weighting take a back seat to raw throughput",
		goals: func(base domain.OptimizationGoals) domain.OptimizationGoals {
			return domain.OptimizationGoals{
				Primary:                    domain.ObjectiveMinimizeMakespan,
				CustomerSatisfactionWeight: 0.1,
				ProfitabilityWeight:        0.1,
				EfficiencyWeight:           0.6,
				UrgencyWeight:              0.2,
			}
		},
	},
	{
		name:        "Maximum Profit",
		description: "Re-optimized with profitability-heavy weights to front-load high-margin work",
		tradeoff:    "Low-margin jobs slip later, which can cost due-date performance",
		goals: func(base domain.OptimizationGoals) domain.OptimizationGoals {
			return domain.OptimizationGoals{
				Primary:                    domain.ObjectiveMaximizeProfit,
				CustomerSatisfactionWeight: 0.1,
				ProfitabilityWeight:        0.6,
				EfficiencyWeight:           0.1,
				UrgencyWeight:              0.2,
			}
		},
	},
	{
		name:        "Balanced",
		description: "The baseline weighting as submitted",
		tradeoff:    "No single objective dominates",
		goals: func(base domain.OptimizationGoals) domain.OptimizationGoals {
			return base
		},
	},
}

// GenerateScenarios re-runs the full build-and-analyze pipeline under
// each preset weight vector. These are true re-optimizations of the
// same input bundle, not perturbations of the baseline numbers.
func GenerateScenarios(
	jobs []domain.Job,
	machines []domain.Machine,
	baseGoals domain.OptimizationGoals,
	resources domain.ResourceConstraints,
	now time.Time,
	rates CostRates,
) []domain.Scenario {
	scenarios := make([]domain.Scenario, 0, len(scenarioPresets))
	for _, preset := range scenarioPresets {
		built := Build(jobs, machines, preset.goals(baseGoals), now)
		metrics, _ := Analyze(built.Schedule, machines, resources, now)
		cost := EstimateCost(built.Schedule, rates)

		scenarios = append(scenarios, domain.Scenario{
			Name:          preset.name,
			Description:   preset.description,
			MakespanHours: metrics.ScheduleSpanHours,
			OnTimeRatePct: metrics.OnTimeDeliveryRatePct,
			TotalCost:     cost.TotalCost,
			Tradeoff:      preset.tradeoff,
		})
	}
	return scenarios
}
