package importer

import (
	"fmt"
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// ValidateBundleSchema checks the bundle for shape-level errors before
// conversion: parseable dates, recognized enum strings, resolvable
// references. Returns every error found. Semantic rules (queue must be
// non-empty, weights in range) belong to the contract validator.
func ValidateBundleSchema(schema *BundleSchema) []error {
	var errs []error

	jobIDs := make(map[string]bool, len(schema.JobQueue))
	for i, j := range schema.JobQueue {
		errs = append(errs, validateJobImport(i, j, jobIDs)...)
	}
	for i, j := range schema.JobQueue {
		for _, dep := range j.DependsOn {
			if !jobIDs[dep] {
				errs = append(errs, fmt.Errorf("job_queue[%d]: depends_on references unknown job %q", i, dep))
			}
		}
	}

	machineIDs := make(map[string]bool, len(schema.MachineCapabilities))
	for i, m := range schema.MachineCapabilities {
		errs = append(errs, validateMachineImport(i, m, machineIDs)...)
	}

	if g := schema.OptimizationGoals; g != nil && g.Primary != "" && !domain.ValidPrimaryObjectives[g.Primary] {
		errs = append(errs, fmt.Errorf("optimization_goals.primary: invalid value %q", g.Primary))
	}
	if oc := schema.OperationalConstraints; oc != nil {
		for i, w := range oc.MaintenanceWindows {
			if _, err := parseBundleTime(w.Start); err != nil {
				errs = append(errs, fmt.Errorf("operational_constraints.maintenance_windows[%d].start: %v", i, err))
			}
			if _, err := parseBundleTime(w.End); err != nil {
				errs = append(errs, fmt.Errorf("operational_constraints.maintenance_windows[%d].end: %v", i, err))
			}
		}
	}

	return errs
}

func validateJobImport(i int, j JobImport, seen map[string]bool) []error {
	var errs []error

	if j.ID == "" {
		errs = append(errs, fmt.Errorf("job_queue[%d]: id is required", i))
	} else if seen[j.ID] {
		errs = append(errs, fmt.Errorf("job_queue[%d]: duplicate id %q", i, j.ID))
	} else {
		seen[j.ID] = true
	}
	if j.Name == "" {
		errs = append(errs, fmt.Errorf("job_queue[%d]: name is required", i))
	}
	if j.Priority != "" && !domain.ValidPriorityTiers[j.Priority] {
		errs = append(errs, fmt.Errorf("job_queue[%d]: invalid priority %q", i, j.Priority))
	}
	if j.CustomerImportance != "" && !domain.ValidCustomerTiers[j.CustomerImportance] {
		errs = append(errs, fmt.Errorf("job_queue[%d]: invalid customer_importance %q", i, j.CustomerImportance))
	}
	if j.DueDate == "" {
		errs = append(errs, fmt.Errorf("job_queue[%d]: due_date is required", i))
	} else if _, err := parseBundleTime(j.DueDate); err != nil {
		errs = append(errs, fmt.Errorf("job_queue[%d].due_date: %v", i, err))
	}
	if j.MaterialType == "" {
		errs = append(errs, fmt.Errorf("job_queue[%d]: material_type is required", i))
	}

	return errs
}

func validateMachineImport(i int, m MachineImport, seen map[string]bool) []error {
	var errs []error

	if m.ID == "" {
		errs = append(errs, fmt.Errorf("machine_capabilities[%d]: id is required", i))
	} else if seen[m.ID] {
		errs = append(errs, fmt.Errorf("machine_capabilities[%d]: duplicate id %q", i, m.ID))
	} else {
		seen[m.ID] = true
	}
	if m.Status != "" && !domain.ValidMachineStatuses[m.Status] {
		errs = append(errs, fmt.Errorf("machine_capabilities[%d]: invalid status %q", i, m.Status))
	}
	if len(m.MaterialCompatibility) == 0 {
		errs = append(errs, fmt.Errorf("machine_capabilities[%d]: material_compatibility is required", i))
	}

	return errs
}

// parseBundleTime accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseBundleTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or YYYY-MM-DD)", s)
}
