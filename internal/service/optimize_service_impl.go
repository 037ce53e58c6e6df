package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/scheduler"
)

type optimizeService struct {
	rates    scheduler.CostRates
	observer UseCaseObserver
}

// NewOptimizeService wires the optimizer pipeline with the shop's cost
// rates. Observers are optional; the first non-nil one is used.
func NewOptimizeService(rates scheduler.CostRates, observers ...UseCaseObserver) OptimizeService {
	return &optimizeService{
		rates:    rates,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *optimizeService) Optimize(ctx context.Context, req contract.OptimizeRequest) (*contract.OptimizeResponse, error) {
	started := time.Now()
	resp, err := s.optimize(req)

	event := UseCaseEvent{
		Name:      "optimize",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"jobs":     len(req.JobQueue),
			"machines": len(req.MachineCapabilities),
		},
	}
	if resp != nil {
		event.Fields["run_id"] = resp.RunID
		event.Fields["risk"] = string(resp.RiskAssessment.Level)
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *optimizeService) optimize(req contract.OptimizeRequest) (*contract.OptimizeResponse, error) {
	if err := contract.ValidateOptimizeRequest(req); err != nil {
		return nil, err
	}

	built := scheduler.Build(req.JobQueue, req.MachineCapabilities, req.OptimizationGoals, req.Now)
	metrics, util := scheduler.Analyze(built.Schedule, req.MachineCapabilities, req.ResourceConstraints, req.Now)
	cost := scheduler.EstimateCost(built.Schedule, s.rates)

	urgentJobs := 0
	for _, j := range req.JobQueue {
		if j.IsUrgent() {
			urgentJobs++
		}
	}
	availableMachines := 0
	for _, m := range req.MachineCapabilities {
		if m.IsAvailable() {
			availableMachines++
		}
	}
	risk := scheduler.AssessRisk(scheduler.RiskInput{
		UrgentJobs:         urgentJobs,
		JobCount:           len(req.JobQueue),
		AvailableMachines:  availableMachines,
		AvailableOperators: req.ResourceConstraints.AvailableOperators,
	})

	insights := scheduler.DeriveInsights(scheduler.InsightInput{
		Metrics:           metrics,
		Utilization:       util,
		Cost:              cost,
		Risk:              risk,
		JobCount:          len(req.JobQueue),
		MachineCount:      len(req.MachineCapabilities),
		AvailableMachines: availableMachines,
		UnassignableJobs:  len(built.Blockers),
	})
	scenarios := scheduler.GenerateScenarios(
		req.JobQueue, req.MachineCapabilities, req.OptimizationGoals,
		req.ResourceConstraints, req.Now, s.rates,
	)

	resp := &contract.OptimizeResponse{
		RunID:                uuid.New().String(),
		GeneratedAt:          req.Now,
		OptimizedSchedule:    built.Schedule,
		PerformanceMetrics:   metrics,
		ResourceUtilization:  util,
		CostAnalysis:         cost,
		RiskAssessment:       risk,
		OptimizationInsights: insights,
		AlternativeSchedules: scenarios,
		RealTimeAdjustments:  realTimeAdjustments(),
		CustomerImpact:       customerImpact(built.Schedule),
		UnassignableJobs:     built.Blockers,
	}
	resp.AlertsAndRecommendations = deriveAlerts(resp)
	for _, b := range built.Blockers {
		resp.Warnings = append(resp.Warnings, b.Message)
	}
	return resp, nil
}

// realTimeAdjustments is the static rescheduling-policy configuration
// shipped with every result bundle. The engine describes these
// triggers; executing them is the shop floor's job.
func realTimeAdjustments() []contract.RealTimeAdjustment {
	return []contract.RealTimeAdjustment{
		{
			Trigger:     "machine_breakdown",
			Strategy:    "reassign_queue",
			Description: "Re-run the optimizer with the failed machine marked offline",
		},
		{
			Trigger:     "rush_order",
			Strategy:    "insert_and_rescore",
			Description: "Add the order to the queue and re-optimize; critical tiers preempt",
		},
		{
			Trigger:     "material_shortage",
			Strategy:    "defer_affected",
			Description: "Hold jobs for the missing material and re-sequence the remainder",
		},
	}
}

func customerImpact(schedule []domain.ScheduledJob) []contract.CustomerImpactEntry {
	type tally struct{ jobs, onTime int }
	byTier := map[domain.CustomerTier]*tally{}
	for _, s := range schedule {
		tier := s.Job.CustomerImportance
		if tier == "" {
			tier = domain.CustomerStandard
		}
		t, ok := byTier[tier]
		if !ok {
			t = &tally{}
			byTier[tier] = t
		}
		t.jobs++
		if s.OnTime() {
			t.onTime++
		}
	}

	// Fixed tier order keeps the output deterministic.
	order := []domain.CustomerTier{domain.CustomerVIP, domain.CustomerPreferred, domain.CustomerStandard}
	var out []contract.CustomerImpactEntry
	for _, tier := range order {
		t, ok := byTier[tier]
		if !ok {
			continue
		}
		out = append(out, contract.CustomerImpactEntry{
			Tier:          string(tier),
			Jobs:          t.jobs,
			OnTimeJobs:    t.onTime,
			OnTimeRatePct: float64(t.onTime) / float64(t.jobs) * 100,
		})
	}
	return out
}

func deriveAlerts(resp *contract.OptimizeResponse) []string {
	var alerts []string
	switch resp.RiskAssessment.Level {
	case domain.RiskCritical:
		alerts = append(alerts, "Schedule risk is CRITICAL: queue exceeds available capacity")
	case domain.RiskHigh:
		alerts = append(alerts, "Schedule risk is HIGH: little slack for disruptions")
	}
	if resp.PerformanceMetrics.TotalTardinessMin > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"%.0f minutes of projected tardiness; notify affected customers early",
			resp.PerformanceMetrics.TotalTardinessMin))
	}
	for _, e := range resp.CustomerImpact {
		if e.Tier == string(domain.CustomerVIP) && e.OnTimeRatePct < 100 {
			alerts = append(alerts, "A VIP customer job is projected late; consider manual promotion")
		}
	}
	if len(resp.UnassignableJobs) > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"%d job(s) have no compatible machine and were placed on fallback capacity",
			len(resp.UnassignableJobs)))
	}
	return alerts
}
