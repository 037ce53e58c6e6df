package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/testutil"
)

func buildSchedule(t *testing.T, now time.Time, jobs []domain.Job) []domain.ScheduledJob {
	t.Helper()
	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	result := Build(jobs, machines, domain.DefaultGoals(), now)
	require.Len(t, result.Schedule, len(jobs))
	return result.Schedule
}

func TestEstimateCost_SmallQueueHasNoOvertime(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithSetupTime(10)),
		testutil.NewTestJob("B", now, testutil.WithSetupTime(20)),
		testutil.NewTestJob("C", now, testutil.WithSetupTime(0)),
	}
	cost := EstimateCost(buildSchedule(t, now, jobs), DefaultCostRates())

	assert.InDelta(t, 450.0, cost.TotalOperatingCost, 1e-9) // 3 * 150
	assert.Zero(t, cost.OvertimeCost)                       // 3 <= 5 free jobs
	assert.InDelta(t, 90.0, cost.SetupCost, 1e-9)           // 30 min * 3
	assert.InDelta(t, 540.0, cost.TotalCost, 1e-9)
	assert.InDelta(t, 225.0, cost.ProfitOptimization, 1e-9) // 3 * 75
}

func TestEstimateCost_OvertimeKicksInPastFreeJobs(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := make([]domain.Job, 0, 7)
	for i := 0; i < 7; i++ {
		jobs = append(jobs, testutil.NewTestJob("Job", now, testutil.WithSetupTime(0)))
	}
	cost := EstimateCost(buildSchedule(t, now, jobs), DefaultCostRates())

	assert.InDelta(t, 100.0, cost.OvertimeCost, 1e-9) // (7-5) * 50
}

func TestEstimateCost_BreakdownUsesFixedShares(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{testutil.NewTestJob("A", now)}
	cost := EstimateCost(buildSchedule(t, now, jobs), DefaultCostRates())

	require.Len(t, cost.Breakdown, 3)
	assert.Equal(t, "Operating", cost.Breakdown[0].Category)
	assert.InDelta(t, 60.0, cost.Breakdown[0].SharePct, 1e-9)
	assert.Equal(t, "Setup", cost.Breakdown[1].Category)
	assert.InDelta(t, 25.0, cost.Breakdown[1].SharePct, 1e-9)
	assert.Equal(t, "Overtime", cost.Breakdown[2].Category)
	assert.InDelta(t, 15.0, cost.Breakdown[2].SharePct, 1e-9)
}

func TestEstimateCost_CustomRates(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	rates := CostRates{
		OperatingCostPerJob: 200,
		OvertimeCostPerJob:  80,
		OvertimeFreeJobs:    1,
		SetupCostPerMin:     5,
		ProfitBenefitPerJob: 100,
	}
	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithSetupTime(10)),
		testutil.NewTestJob("B", now, testutil.WithSetupTime(10)),
	}
	cost := EstimateCost(buildSchedule(t, now, jobs), rates)

	assert.InDelta(t, 400.0, cost.TotalOperatingCost, 1e-9)
	assert.InDelta(t, 80.0, cost.OvertimeCost, 1e-9)
	assert.InDelta(t, 100.0, cost.SetupCost, 1e-9)
	assert.InDelta(t, 200.0, cost.ProfitOptimization, 1e-9)
}
