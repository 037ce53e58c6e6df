package contract

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/beamshop/opticut/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateOptimizeRequest checks the input bundle before the engine
// runs. The first failure wins; the caller is expected to correct the
// bundle and resubmit.
func ValidateOptimizeRequest(req OptimizeRequest) *OptimizeError {
	if len(req.JobQueue) == 0 {
		return &OptimizeError{Code: ErrEmptyJobQueue, Message: "Job queue cannot be empty"}
	}
	if len(req.MachineCapabilities) == 0 {
		return &OptimizeError{Code: ErrNoMachines, Message: "No machines available"}
	}
	if req.ResourceConstraints.AvailableOperators <= 0 {
		return &OptimizeError{Code: ErrNoOperators, Message: "No available operators"}
	}
	if req.Now.IsZero() {
		return &OptimizeError{Code: ErrMissingNow, Message: "Reference time must be set"}
	}

	if err := validateWeights(req.OptimizationGoals); err != nil {
		return err
	}
	if err := validateJobs(req.JobQueue); err != nil {
		return err
	}
	if err := validateMachines(req.MachineCapabilities); err != nil {
		return err
	}
	if err := validateDependencies(req.JobQueue); err != nil {
		return err
	}

	// Struct-tag checks cover anything the explicit rules above missed.
	if err := validate.Struct(req); err != nil {
		return &OptimizeError{Code: ErrInternalError, Message: err.Error()}
	}
	return nil
}

func validateWeights(goals domain.OptimizationGoals) *OptimizeError {
	weights := []struct {
		name  string
		value float64
	}{
		{"customerSatisfaction", goals.CustomerSatisfactionWeight},
		{"profitability", goals.ProfitabilityWeight},
		{"efficiency", goals.EfficiencyWeight},
		{"urgency", goals.UrgencyWeight},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 {
			return &OptimizeError{
				Code:    ErrInvalidWeights,
				Message: fmt.Sprintf("Weight %s must be between 0 and 1, got %g", w.name, w.value),
			}
		}
	}
	return nil
}

func validateJobs(jobs []domain.Job) *OptimizeError {
	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if j.ID == "" {
			return &OptimizeError{Code: ErrInvalidJob, Message: "Job is missing an identifier"}
		}
		if seen[j.ID] {
			return &OptimizeError{Code: ErrInvalidJob, Message: fmt.Sprintf("Duplicate job identifier %q", j.ID)}
		}
		seen[j.ID] = true
		if j.EstimatedDurationMin <= 0 {
			return &OptimizeError{Code: ErrInvalidJob, Message: fmt.Sprintf("Job %s must have a positive estimated duration", j.ID)}
		}
		if j.SetupTimeMin < 0 {
			return &OptimizeError{Code: ErrInvalidJob, Message: fmt.Sprintf("Job %s has a negative setup time", j.ID)}
		}
		if j.PartCount < 1 {
			return &OptimizeError{Code: ErrInvalidJob, Message: fmt.Sprintf("Job %s must have at least one part", j.ID)}
		}
	}
	return nil
}

func validateMachines(machines []domain.Machine) *OptimizeError {
	seen := make(map[string]bool, len(machines))
	for _, m := range machines {
		if m.ID == "" {
			return &OptimizeError{Code: ErrInvalidMachine, Message: "Machine is missing an identifier"}
		}
		if seen[m.ID] {
			return &OptimizeError{Code: ErrInvalidMachine, Message: fmt.Sprintf("Duplicate machine identifier %q", m.ID)}
		}
		seen[m.ID] = true
		if m.ThicknessRange.MinMM > m.ThicknessRange.MaxMM {
			return &OptimizeError{
				Code:    ErrInvalidMachine,
				Message: fmt.Sprintf("Machine %s thickness range min exceeds max", m.ID),
			}
		}
	}
	return nil
}

// validateDependencies rejects references to jobs outside the queue and
// dependency cycles; the builder relies on both holding.
func validateDependencies(jobs []domain.Job) *OptimizeError {
	inQueue := make(map[string][]string, len(jobs))
	for _, j := range jobs {
		inQueue[j.ID] = j.DependsOn
	}
	for _, j := range jobs {
		for _, dep := range j.DependsOn {
			if _, ok := inQueue[dep]; !ok {
				return &OptimizeError{
					Code:    ErrInvalidDependencies,
					Message: fmt.Sprintf("Job %s depends on unknown job %s", j.ID, dep),
				}
			}
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(jobs))
	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case visiting:
			return false
		case done:
			return true
		}
		state[id] = visiting
		for _, dep := range inQueue[id] {
			if !visit(dep) {
				return false
			}
		}
		state[id] = done
		return true
	}
	for _, j := range jobs {
		if !visit(j.ID) {
			return &OptimizeError{Code: ErrInvalidDependencies, Message: "Job dependencies contain a cycle"}
		}
	}
	return nil
}
