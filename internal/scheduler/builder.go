package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/domain"
)

const (
	// bufferFloorMin is the minimum idle gap after any job.
	bufferFloorMin = 5.0
	// bufferFraction scales the gap with job duration.
	bufferFraction = 0.1
)

// BuildResult is the built schedule plus any constraints the builder
// had to degrade around instead of satisfying.
type BuildResult struct {
	Schedule []domain.ScheduledJob
	Blockers []contract.ConstraintBlocker
}

// Build lays out the full queue on per-machine timelines. Jobs are
// taken in stable score order, restricted at each step to jobs whose
// dependencies are already placed, and assigned to the compatible
// machine that frees up earliest. A job with no compatible machine is
// placed on the least-loaded machine and reported as a blocker, so the
// output always covers the whole queue: sequence numbers form a
// permutation of 1..len(jobs).
//
// Callers must validate the request first; Build assumes a non-empty
// queue, a non-empty machine list, and an acyclic dependency set.
func Build(jobs []domain.Job, machines []domain.Machine, goals domain.OptimizationGoals, now time.Time) BuildResult {
	scored := ScoreQueue(jobs, goals, now)

	cursors := make([]time.Time, len(machines))
	for i := range cursors {
		cursors[i] = now
	}

	placed := make(map[string]bool, len(jobs))
	result := BuildResult{Schedule: make([]domain.ScheduledJob, 0, len(jobs))}

	for len(result.Schedule) < len(jobs) {
		next := pickNext(scored, placed)
		job := scored[next].Job

		machineIdx, compatible := chooseMachine(job, machines, cursors)
		multiplier := 1.0
		if compatible {
			multiplier = machines[machineIdx].EffectiveSetupMultiplier()
		} else {
			result.Blockers = append(result.Blockers, contract.ConstraintBlocker{
				EntityType: "job",
				EntityID:   job.ID,
				Code:       contract.BlockerNoCompatibleMachine,
				Message:    fmt.Sprintf("No available machine can cut %s at %.1fmm; assigned to %s as fallback", job.MaterialType, job.ThicknessMM, machines[machineIdx].ID),
			})
		}

		effectiveSetup := float64(job.SetupTimeMin) * multiplier
		buffer := math.Max(bufferFloorMin, float64(job.EstimatedDurationMin)*bufferFraction)

		start := cursors[machineIdx]
		end := start.Add(minutesDur(effectiveSetup + float64(job.EstimatedDurationMin)))

		result.Schedule = append(result.Schedule, domain.ScheduledJob{
			Job:               job,
			AssignedMachine:   machines[machineIdx].ID,
			ScheduledStart:    start,
			ScheduledEnd:      end,
			SequenceNumber:    len(result.Schedule) + 1,
			EffectiveSetupMin: effectiveSetup,
			BufferMin:         buffer,
		})
		placed[job.ID] = true
		cursors[machineIdx] = end.Add(minutesDur(buffer))
	}

	return result
}

// pickNext returns the index in scored order of the highest-scored
// unplaced job whose dependencies are all placed. If none qualifies
// (validation rejects cycles, so this only guards against misuse) the
// first unplaced job is taken so the loop always terminates.
func pickNext(scored []ScoredJob, placed map[string]bool) int {
	fallback := -1
	for i, c := range scored {
		if placed[c.Job.ID] {
			continue
		}
		if fallback == -1 {
			fallback = i
		}
		if depsPlaced(c.Job, placed) {
			return i
		}
	}
	return fallback
}

func depsPlaced(job domain.Job, placed map[string]bool) bool {
	for _, dep := range job.DependsOn {
		if !placed[dep] {
			return false
		}
	}
	return true
}

// chooseMachine picks the eligible machine whose timeline frees up
// earliest (ties keep machine-list order). When no machine is eligible
// it falls back to the least-loaded machine overall and reports
// compatible=false.
func chooseMachine(job domain.Job, machines []domain.Machine, cursors []time.Time) (idx int, compatible bool) {
	eligible := EligibleMachines(job, machines)
	if len(eligible) > 0 {
		best := eligible[0]
		for _, i := range eligible[1:] {
			if cursors[i].Before(cursors[best]) {
				best = i
			}
		}
		return best, true
	}

	best := 0
	for i := 1; i < len(cursors); i++ {
		if cursors[i].Before(cursors[best]) {
			best = i
		}
	}
	return best, false
}

func minutesDur(min float64) time.Duration {
	return time.Duration(min * float64(time.Minute))
}
