package scheduler

import (
	"math"

	"github.com/beamshop/opticut/internal/domain"
)

// CostRates are the shop's linear cost coefficients. The defaults match
// the flat heuristic rates; a shop supplies its own through config.
type CostRates struct {
	OperatingCostPerJob float64
	OvertimeCostPerJob  float64
	OvertimeFreeJobs    int
	SetupCostPerMin     float64
	ProfitBenefitPerJob float64
}

func DefaultCostRates() CostRates {
	return CostRates{
		OperatingCostPerJob: 150,
		OvertimeCostPerJob:  50,
		OvertimeFreeJobs:    5,
		SetupCostPerMin:     3,
		ProfitBenefitPerJob: 75,
	}
}

// Fixed percentage split of the cost breakdown.
const (
	operatingSharePct = 60.0
	setupSharePct     = 25.0
	overtimeSharePct  = 15.0
)

// EstimateCost projects schedule cost with the linear per-job model.
// Tardiness penalty and opportunity cost are assumed zero for an
// already-optimized schedule.
func EstimateCost(schedule []domain.ScheduledJob, rates CostRates) domain.CostBreakdown {
	jobCount := len(schedule)

	var setupMin float64
	for _, s := range schedule {
		setupMin += float64(s.Job.SetupTimeMin)
	}

	operating := float64(jobCount) * rates.OperatingCostPerJob
	overtime := math.Max(0, float64(jobCount-rates.OvertimeFreeJobs)*rates.OvertimeCostPerJob)
	setup := setupMin * rates.SetupCostPerMin

	return domain.CostBreakdown{
		TotalOperatingCost: operating,
		SetupCost:          setup,
		OvertimeCost:       overtime,
		TardinessPenalty:   0,
		OpportunityCost:    0,
		ProfitOptimization: float64(jobCount) * rates.ProfitBenefitPerJob,
		TotalCost:          operating + setup + overtime,
		Breakdown: []domain.CostShare{
			{Category: "Operating", Amount: operating, SharePct: operatingSharePct},
			{Category: "Setup", Amount: setup, SharePct: setupSharePct},
			{Category: "Overtime", Amount: overtime, SharePct: overtimeSharePct},
		},
	}
}
