package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/testutil"
)

func TestGenerateScenarios_ThreePresetsInOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithProfitMargin(60)),
		testutil.NewTestJob("B", now, testutil.WithProfitMargin(5)),
	}
	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	resources := domain.ResourceConstraints{AvailableOperators: 1}

	scenarios := GenerateScenarios(jobs, machines, domain.DefaultGoals(), resources, now, DefaultCostRates())

	require.Len(t, scenarios, 3)
	assert.Equal(t, "Minimum Makespan", scenarios[0].Name)
	assert.Equal(t, "Maximum Profit", scenarios[1].Name)
	assert.Equal(t, "Balanced", scenarios[2].Name)
	for _, s := range scenarios {
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Tradeoff)
		assert.Greater(t, s.MakespanHours, 0.0)
	}
}

func TestGenerateScenarios_BalancedMatchesBaselineRun(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithDuration(45)),
		testutil.NewTestJob("B", now, testutil.WithDuration(90)),
		testutil.NewTestJob("C", now, testutil.WithPriority(domain.PriorityUrgent)),
	}
	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	resources := domain.ResourceConstraints{AvailableOperators: 1}

	base := Build(jobs, machines, domain.DefaultGoals(), now)
	baseMetrics, _ := Analyze(base.Schedule, machines, resources, now)
	baseCost := EstimateCost(base.Schedule, DefaultCostRates())

	scenarios := GenerateScenarios(jobs, machines, domain.DefaultGoals(), resources, now, DefaultCostRates())
	balanced := scenarios[2]

	assert.InDelta(t, baseMetrics.ScheduleSpanHours, balanced.MakespanHours, 1e-9)
	assert.InDelta(t, baseMetrics.OnTimeDeliveryRatePct, balanced.OnTimeRatePct, 1e-9)
	assert.InDelta(t, baseCost.TotalCost, balanced.TotalCost, 1e-9)
}

func TestGenerateScenarios_ProfitPresetReordersByMargin(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	// Same tier and due date; only margin differentiates the jobs, so
	// the profit-heavy weighting must front-load the richer one.
	lean := testutil.NewTestJob("Lean", now, testutil.WithJobID("lean"), testutil.WithProfitMargin(5))
	rich := testutil.NewTestJob("Rich", now, testutil.WithJobID("rich"), testutil.WithProfitMargin(70))

	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	profitGoals := scenarioPresets[1].goals(domain.DefaultGoals())

	built := Build([]domain.Job{lean, rich}, machines, profitGoals, now)
	require.Len(t, built.Schedule, 2)
	assert.Equal(t, "rich", built.Schedule[0].Job.ID)
}
