package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/testutil"
)

func TestAnalyze_MakespanIsProcessingSum(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithDuration(60), testutil.WithSetupTime(10)),
		testutil.NewTestJob("B", now, testutil.WithDuration(30), testutil.WithSetupTime(20)),
	}
	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	result := Build(jobs, machines, domain.DefaultGoals(), now)

	metrics, _ := Analyze(result.Schedule, machines, domain.ResourceConstraints{AvailableOperators: 1}, now)

	// (60+10 + 30+20) / 60 hours of processing regardless of layout.
	assert.InDelta(t, 2.0, metrics.TotalMakespanHours, 1e-9)
	// Wall clock on one machine: 70 + buffer 6 + 50 = 126 min.
	assert.InDelta(t, 126.0/60, metrics.ScheduleSpanHours, 1e-9)
}

func TestAnalyze_OnTimeRateAndTardiness(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	onTime := testutil.NewTestJob("On time", now, testutil.WithDuration(30))
	late := testutil.NewTestJob("Late", now,
		testutil.WithDuration(120),
		// Due before it can possibly finish.
		testutil.WithDueDate(now.Add(30*time.Minute)),
	)
	machines := []domain.Machine{
		testutil.NewTestMachine("One"),
		testutil.NewTestMachine("Two"),
	}

	result := Build([]domain.Job{onTime, late}, machines, domain.DefaultGoals(), now)
	metrics, _ := Analyze(result.Schedule, machines, domain.ResourceConstraints{AvailableOperators: 1}, now)

	assert.InDelta(t, 50.0, metrics.OnTimeDeliveryRatePct, 1e-9)
	assert.Greater(t, metrics.TotalTardinessMin, 0.0)
}

func TestAnalyze_EmptyScheduleYieldsZeroMetrics(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	metrics, util := Analyze(nil, nil, domain.ResourceConstraints{}, now)
	assert.Zero(t, metrics.TotalMakespanHours)
	assert.Empty(t, util.Machines)
}

func TestAnalyze_UtilizationStaysInsideBand(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithDuration(200)),
		testutil.NewTestJob("B", now, testutil.WithDuration(15)),
	}
	machines := []domain.Machine{
		testutil.NewTestMachine("One"),
		testutil.NewTestMachine("Two"),
	}

	result := Build(jobs, machines, domain.DefaultGoals(), now)
	_, util := Analyze(result.Schedule, machines, domain.ResourceConstraints{AvailableOperators: 2}, now)

	require.Len(t, util.Machines, 2)
	for _, mu := range util.Machines {
		require.Greater(t, mu.JobsAssigned, 0)
		assert.GreaterOrEqual(t, mu.UtilizationPct, 60.0)
		assert.LessOrEqual(t, mu.UtilizationPct, 95.0)
	}
}

func TestAnalyze_IdleAndUnavailableMachinesReadZero(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	job := testutil.NewTestJob("A", now)
	idle := testutil.NewTestMachine("Idle spare")
	down := testutil.NewTestMachine("Down", testutil.WithStatus(domain.MachineOffline))
	working := testutil.NewTestMachine("Working")

	result := Build([]domain.Job{job}, []domain.Machine{working, idle, down}, domain.DefaultGoals(), now)
	_, util := Analyze(result.Schedule, []domain.Machine{working, idle, down}, domain.ResourceConstraints{AvailableOperators: 1}, now)

	require.Len(t, util.Machines, 3)
	byName := map[string]domain.MachineUtilization{}
	for _, mu := range util.Machines {
		byName[mu.MachineName] = mu
	}
	assert.NotZero(t, byName["Working"].UtilizationPct)
	assert.Zero(t, byName["Idle spare"].UtilizationPct)
	assert.Zero(t, byName["Down"].UtilizationPct)
}

func TestAnalyze_OperatorUtilizationCappedAt100(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	// Two machines running in parallel with one operator: raw operator
	// load exceeds 100% and must be capped.
	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithDuration(120)),
		testutil.NewTestJob("B", now, testutil.WithDuration(120)),
	}
	machines := []domain.Machine{
		testutil.NewTestMachine("One"),
		testutil.NewTestMachine("Two"),
	}

	result := Build(jobs, machines, domain.DefaultGoals(), now)
	_, util := Analyze(result.Schedule, machines, domain.ResourceConstraints{AvailableOperators: 1}, now)

	assert.InDelta(t, 100.0, util.OperatorUtilizationPct, 1e-9)
}
