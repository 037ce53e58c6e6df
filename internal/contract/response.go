package contract

import (
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// OptimizeResponse is the result bundle for one optimizer run, consumed
// by the rendering and export collaborators.
type OptimizeResponse struct {
	RunID       string
	GeneratedAt time.Time

	OptimizedSchedule   []domain.ScheduledJob
	PerformanceMetrics  domain.PerformanceMetrics
	ResourceUtilization domain.ResourceUtilization
	CostAnalysis        domain.CostBreakdown
	RiskAssessment      domain.RiskAssessment

	OptimizationInsights domain.OptimizationInsights
	AlternativeSchedules []domain.Scenario

	RealTimeAdjustments      []RealTimeAdjustment
	CustomerImpact           []CustomerImpactEntry
	AlertsAndRecommendations []string

	// UnassignableJobs lists jobs that were placed on a fallback
	// machine because no compatible machine exists.
	UnassignableJobs []ConstraintBlocker
	Warnings         []string
}

type OptimizeErrorCode string

const (
	ErrEmptyJobQueue       OptimizeErrorCode = "EMPTY_JOB_QUEUE"
	ErrNoMachines          OptimizeErrorCode = "NO_MACHINES"
	ErrNoOperators         OptimizeErrorCode = "NO_OPERATORS"
	ErrInvalidWeights      OptimizeErrorCode = "INVALID_WEIGHTS"
	ErrInvalidJob          OptimizeErrorCode = "INVALID_JOB"
	ErrInvalidMachine      OptimizeErrorCode = "INVALID_MACHINE"
	ErrInvalidDependencies OptimizeErrorCode = "INVALID_DEPENDENCIES"
	ErrMissingNow          OptimizeErrorCode = "MISSING_NOW"
	ErrInternalError       OptimizeErrorCode = "INTERNAL_ERROR"
)

type OptimizeError struct {
	Code    OptimizeErrorCode
	Message string
}

func (e *OptimizeError) Error() string {
	return string(e.Code) + ": " + e.Message
}
