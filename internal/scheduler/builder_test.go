package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/testutil"
)

func TestBuild_CriticalScheduledBeforeLow(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	low := testutil.NewTestJob("Signage batch", now,
		testutil.WithPriority(domain.PriorityLow),
		testutil.WithDueDate(now.AddDate(0, 0, 30)),
	)
	crit := testutil.NewTestJob("Rush repair plate", now,
		testutil.WithPriority(domain.PriorityCritical),
		testutil.WithDueDate(now.Add(24*time.Hour)),
	)

	machines := []domain.Machine{testutil.NewTestMachine("Trumpf 3030")}
	result := Build([]domain.Job{low, crit}, machines, domain.DefaultGoals(), now)

	require.Len(t, result.Schedule, 2)
	assert.Equal(t, "Rush repair plate", result.Schedule[0].Job.Name)
	assert.Equal(t, 1, result.Schedule[0].SequenceNumber)
	assert.Equal(t, "Signage batch", result.Schedule[1].Job.Name)
	assert.Empty(t, result.Blockers)
}

func TestBuild_BackToBackGapIsDurationScaledBuffer(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	first := testutil.NewTestJob("First", now, testutil.WithDuration(60), testutil.WithSetupTime(10))
	second := testutil.NewTestJob("Second", now, testutil.WithDuration(60), testutil.WithSetupTime(10))

	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	result := Build([]domain.Job{first, second}, machines, domain.DefaultGoals(), now)

	require.Len(t, result.Schedule, 2)
	s1, s2 := result.Schedule[0], result.Schedule[1]

	// 60 min duration: buffer = max(5, 60*0.1) = 6 min.
	assert.InDelta(t, 6.0, s1.BufferMin, 1e-9)
	assert.Equal(t, s1.ScheduledEnd.Add(6*time.Minute), s2.ScheduledStart)
	// setup 10 + duration 60 on a 1.0-multiplier machine.
	assert.Equal(t, now.Add(70*time.Minute), s1.ScheduledEnd)
}

func TestBuild_ShortJobGetsFloorBuffer(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	short := testutil.NewTestJob("Quick tag", now, testutil.WithDuration(20))
	machines := []domain.Machine{testutil.NewTestMachine("Solo")}

	result := Build([]domain.Job{short}, machines, domain.DefaultGoals(), now)
	require.Len(t, result.Schedule, 1)
	assert.InDelta(t, 5.0, result.Schedule[0].BufferMin, 1e-9)
}

func TestBuild_SetupMultiplierStretchesSetup(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	job := testutil.NewTestJob("Stainless panel", now,
		testutil.WithDuration(40),
		testutil.WithSetupTime(20),
	)
	machines := []domain.Machine{
		testutil.NewTestMachine("Old bed", testutil.WithSetupMultiplier(1.5)),
	}

	result := Build([]domain.Job{job}, machines, domain.DefaultGoals(), now)
	require.Len(t, result.Schedule, 1)

	s := result.Schedule[0]
	assert.InDelta(t, 30.0, s.EffectiveSetupMin, 1e-9)
	assert.Equal(t, now.Add(70*time.Minute), s.ScheduledEnd)
}

func TestBuild_SpreadsAcrossMachines(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	jobs := []domain.Job{
		testutil.NewTestJob("A", now, testutil.WithDuration(60)),
		testutil.NewTestJob("B", now, testutil.WithDuration(60)),
	}
	machines := []domain.Machine{
		testutil.NewTestMachine("One"),
		testutil.NewTestMachine("Two"),
	}

	result := Build(jobs, machines, domain.DefaultGoals(), now)
	require.Len(t, result.Schedule, 2)

	// Both machines start idle, so both jobs begin at now on different beds.
	assert.Equal(t, now, result.Schedule[0].ScheduledStart)
	assert.Equal(t, now, result.Schedule[1].ScheduledStart)
	assert.NotEqual(t, result.Schedule[0].AssignedMachine, result.Schedule[1].AssignedMachine)
}

func TestBuild_IncompatibleJobFallsBackWithBlocker(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	copper := testutil.NewTestJob("Copper busbar", now, testutil.WithMaterial("copper", 4))
	machines := []domain.Machine{testutil.NewTestMachine("Steel only")}

	result := Build([]domain.Job{copper}, machines, domain.DefaultGoals(), now)

	require.Len(t, result.Schedule, 1, "queue coverage holds even without a compatible machine")
	require.Len(t, result.Blockers, 1)
	b := result.Blockers[0]
	assert.Equal(t, copper.ID, b.EntityID)
	assert.Equal(t, "job", b.EntityType)
	assert.Contains(t, b.Message, "copper")
}

func TestBuild_DependencyPlacedBeforeDependent(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	base := testutil.NewTestJob("Base frame", now,
		testutil.WithJobID("frame"),
		testutil.WithPriority(domain.PriorityLow),
		testutil.WithDueDate(now.AddDate(0, 0, 20)),
	)
	topper := testutil.NewTestJob("Mounting plate", now,
		testutil.WithPriority(domain.PriorityCritical),
		testutil.WithDueDate(now.Add(24*time.Hour)),
		testutil.WithDependsOn("frame"),
	)

	machines := []domain.Machine{testutil.NewTestMachine("Solo")}
	result := Build([]domain.Job{base, topper}, machines, domain.DefaultGoals(), now)

	require.Len(t, result.Schedule, 2)
	// The dependent outranks its prerequisite on score, but the
	// prerequisite must land first.
	assert.Equal(t, "Base frame", result.Schedule[0].Job.Name)
	assert.Equal(t, "Mounting plate", result.Schedule[1].Job.Name)
}

func TestBuild_BusyMachineSkipped(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	job := testutil.NewTestJob("Panel", now)
	machines := []domain.Machine{
		testutil.NewTestMachine("Down", testutil.WithStatus(domain.MachineMaintenance)),
		testutil.NewTestMachine("Up"),
	}

	result := Build([]domain.Job{job}, machines, domain.DefaultGoals(), now)
	require.Len(t, result.Schedule, 1)
	assert.Equal(t, machines[1].ID, result.Schedule[0].AssignedMachine)
}
