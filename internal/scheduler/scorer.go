package scheduler

import (
	"sort"
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// ScoredJob pairs a job with its computed priority score and its
// original position in the queue.
type ScoredJob struct {
	Job        domain.Job
	QueueIndex int
	Score      float64
}

// Score computes a job's priority score for a fixed reference time.
// Pure and deterministic; unknown enum values fall back to defaults
// rather than failing.
func Score(job domain.Job, goals domain.OptimizationGoals, now time.Time) float64 {
	return job.TierWeight()*goals.UrgencyWeight +
		job.CustomerWeight()*goals.CustomerSatisfactionWeight +
		urgencyWeight(job.DueDate, now)*5 +
		(job.ProfitMarginPct/100)*goals.ProfitabilityWeight*10
}

// urgencyWeight maps hours until the due date onto the urgency ladder.
func urgencyWeight(due time.Time, now time.Time) float64 {
	hours := due.Sub(now).Hours()
	switch {
	case hours < 24:
		return 10
	case hours < 48:
		return 8
	case hours < 72:
		return 6
	case hours < 168:
		return 4
	default:
		return 2
	}
}

// ScoreQueue scores every job and returns them sorted by score
// descending. The sort is stable: ties keep original queue order.
func ScoreQueue(jobs []domain.Job, goals domain.OptimizationGoals, now time.Time) []ScoredJob {
	scored := make([]ScoredJob, len(jobs))
	for i, j := range jobs {
		scored[i] = ScoredJob{Job: j, QueueIndex: i, Score: Score(j, goals, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
