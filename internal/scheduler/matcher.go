package scheduler

import (
	"errors"

	"github.com/beamshop/opticut/internal/domain"
)

var (
	// ErrNoMachines means the machine list was empty. Validation
	// rejects this before the builder runs; Match still refuses to
	// return an undefined machine reference.
	ErrNoMachines = errors.New("no machines available")

	// ErrNoCompatibleMachine means no available machine satisfies the
	// job's material and thickness constraints.
	ErrNoCompatibleMachine = errors.New("no compatible machine for job")
)

// Match returns the first available machine that can cut the job.
func Match(job domain.Job, machines []domain.Machine) (domain.Machine, error) {
	if len(machines) == 0 {
		return domain.Machine{}, ErrNoMachines
	}
	for _, m := range machines {
		if m.IsAvailable() && m.CanCut(job.MaterialType, job.ThicknessMM) {
			return m, nil
		}
	}
	return domain.Machine{}, ErrNoCompatibleMachine
}

// EligibleMachines returns the indices of all available machines that
// can cut the job, in machine-list order.
func EligibleMachines(job domain.Job, machines []domain.Machine) []int {
	var eligible []int
	for i, m := range machines {
		if m.IsAvailable() && m.CanCut(job.MaterialType, job.ThicknessMM) {
			eligible = append(eligible, i)
		}
	}
	return eligible
}
