package contract

import (
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// OptimizeRequest is the self-contained input bundle for one optimizer
// run. Entities are supplied fresh per call and never retained.
type OptimizeRequest struct {
	JobQueue               []domain.Job                  `validate:"required,min=1"`
	MachineCapabilities    []domain.Machine              `validate:"required,min=1"`
	OperationalConstraints domain.OperationalConstraints `validate:"-"`
	OptimizationGoals      domain.OptimizationGoals
	ResourceConstraints    domain.ResourceConstraints
	QualityRequirements    domain.QualityRequirements `validate:"-"`

	// Now is the reference time for urgency scoring and timeline
	// layout. Required: the engine never reads the wall clock.
	Now time.Time `validate:"required"`
}

// NewOptimizeRequest builds a request with balanced default goals.
func NewOptimizeRequest(jobs []domain.Job, machines []domain.Machine, now time.Time) OptimizeRequest {
	return OptimizeRequest{
		JobQueue:            jobs,
		MachineCapabilities: machines,
		OptimizationGoals:   domain.DefaultGoals(),
		ResourceConstraints: domain.ResourceConstraints{AvailableOperators: 1},
		Now:                 now,
	}
}
