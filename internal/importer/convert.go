package importer

import (
	"fmt"
	"time"

	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/domain"
)

// ConvertBundle turns a validated bundle schema into an engine request
// anchored at the given reference time. Missing enum fields take the
// documented defaults instead of failing.
func ConvertBundle(schema *BundleSchema, now time.Time) (contract.OptimizeRequest, error) {
	if errs := ValidateBundleSchema(schema); len(errs) > 0 {
		return contract.OptimizeRequest{}, fmt.Errorf("invalid bundle: %v", errs[0])
	}

	jobs := make([]domain.Job, 0, len(schema.JobQueue))
	for _, j := range schema.JobQueue {
		due, err := parseBundleTime(j.DueDate)
		if err != nil {
			return contract.OptimizeRequest{}, err
		}
		partCount := 1
		if j.PartCount != nil {
			partCount = *j.PartCount
		}
		jobs = append(jobs, domain.Job{
			ID:                   j.ID,
			Name:                 j.Name,
			Priority:             priorityOrDefault(j.Priority),
			DueDate:              due,
			EstimatedDurationMin: j.EstimatedDurationMin,
			MaterialType:         j.MaterialType,
			ThicknessMM:          j.ThicknessMM,
			SetupTimeMin:         j.SetupTimeMin,
			PartCount:            partCount,
			CustomerImportance:   customerOrDefault(j.CustomerImportance),
			ProfitMarginPct:      j.ProfitMarginPct,
			DependsOn:            j.DependsOn,
		})
	}

	machines := make([]domain.Machine, 0, len(schema.MachineCapabilities))
	for _, m := range schema.MachineCapabilities {
		machines = append(machines, domain.Machine{
			ID:                    m.ID,
			Name:                  m.Name,
			MaxPowerKW:            m.MaxPowerKW,
			MaterialCompatibility: m.MaterialCompatibility,
			ThicknessRange:        domain.ThicknessRange{MinMM: m.ThicknessRange.MinMM, MaxMM: m.ThicknessRange.MaxMM},
			Status:                statusOrDefault(m.Status),
			EfficiencyPct:         m.EfficiencyPct,
			SetupTimeMultiplier:   m.SetupTimeMultiplier,
			OperatorSkillRequired: m.OperatorSkillRequired,
		})
	}

	req := contract.NewOptimizeRequest(jobs, machines, now)

	if g := schema.OptimizationGoals; g != nil {
		req.OptimizationGoals = domain.OptimizationGoals{
			Primary:                    objectiveOrDefault(g.Primary),
			CustomerSatisfactionWeight: g.CustomerSatisfactionWeight,
			ProfitabilityWeight:        g.ProfitabilityWeight,
			EfficiencyWeight:           g.EfficiencyWeight,
			UrgencyWeight:              g.UrgencyWeight,
		}
	}
	if rc := schema.ResourceConstraints; rc != nil {
		shifts := make([]domain.OperatorShift, 0, len(rc.OperatorShifts))
		for _, s := range rc.OperatorShifts {
			shifts = append(shifts, domain.OperatorShift{Name: s.Name, Shift: s.Shift, SkillLevel: s.SkillLevel})
		}
		req.ResourceConstraints = domain.ResourceConstraints{
			AvailableOperators:   rc.AvailableOperators,
			OperatorShifts:       shifts,
			MaterialAvailability: rc.MaterialAvailability,
			ToolingAvailability:  rc.ToolingAvailability,
		}
	}
	if oc := schema.OperationalConstraints; oc != nil {
		windows := make([]domain.MaintenanceWindow, 0, len(oc.MaintenanceWindows))
		for _, w := range oc.MaintenanceWindows {
			start, _ := parseBundleTime(w.Start)
			end, _ := parseBundleTime(w.End)
			windows = append(windows, domain.MaintenanceWindow{MachineID: w.MachineID, Start: start, End: end})
		}
		req.OperationalConstraints = domain.OperationalConstraints{
			WorkingHours:         domain.WorkingHours{Start: oc.WorkingHoursStart, End: oc.WorkingHoursEnd},
			WorkingDays:          oc.WorkingDays,
			MaxOvertimeHoursWeek: oc.MaxOvertimeHoursWeek,
			MinInterJobBreakMin:  oc.MinInterJobBreakMin,
			MaxContinuousRunMin:  oc.MaxContinuousRunMin,
			MaintenanceWindows:   windows,
		}
	}
	if q := schema.QualityRequirements; q != nil {
		req.QualityRequirements = domain.QualityRequirements{
			EdgeQualityGrade: q.EdgeQualityGrade,
			ToleranceMM:      q.ToleranceMM,
			MaxDrossLevel:    q.MaxDrossLevel,
		}
	}

	return req, nil
}

func priorityOrDefault(s string) domain.PriorityTier {
	if s == "" {
		return domain.PriorityNormal
	}
	return domain.PriorityTier(s)
}

func customerOrDefault(s string) domain.CustomerTier {
	if s == "" {
		return domain.CustomerStandard
	}
	return domain.CustomerTier(s)
}

func statusOrDefault(s string) domain.MachineStatus {
	if s == "" {
		return domain.MachineAvailable
	}
	return domain.MachineStatus(s)
}

func objectiveOrDefault(s string) domain.PrimaryObjective {
	if s == "" {
		return domain.ObjectiveBalanced
	}
	return domain.PrimaryObjective(s)
}
