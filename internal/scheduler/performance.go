package scheduler

import (
	"math"
	"time"

	"github.com/beamshop/opticut/internal/domain"
)

// Utilization reporting band for available machines with assigned work.
const (
	utilizationFloorPct = 60.0
	utilizationCeilPct  = 95.0
)

// Analyze derives performance metrics and resource utilization from a
// built schedule. Everything is computed from the schedule itself; no
// randomness, no wall clock.
func Analyze(
	schedule []domain.ScheduledJob,
	machines []domain.Machine,
	resources domain.ResourceConstraints,
	now time.Time,
) (domain.PerformanceMetrics, domain.ResourceUtilization) {
	var metrics domain.PerformanceMetrics
	if len(schedule) == 0 {
		return metrics, domain.ResourceUtilization{}
	}

	var totalProcessingMin, totalWaitMin, totalFlowMin, totalTardyMin float64
	onTime := 0
	lastEnd := now
	for _, s := range schedule {
		totalProcessingMin += s.ProcessingMin()
		totalWaitMin += s.ScheduledStart.Sub(now).Minutes()
		totalFlowMin += s.ScheduledEnd.Sub(now).Minutes()
		totalTardyMin += s.TardinessMin()
		if s.OnTime() {
			onTime++
		}
		if s.ScheduledEnd.After(lastEnd) {
			lastEnd = s.ScheduledEnd
		}
	}

	n := float64(len(schedule))
	spanMin := lastEnd.Sub(now).Minutes()

	metrics.TotalMakespanHours = totalProcessingMin / 60
	metrics.ScheduleSpanHours = spanMin / 60
	metrics.AverageWaitTimeMin = totalWaitMin / n
	metrics.AverageFlowTimeMin = totalFlowMin / n
	metrics.OnTimeDeliveryRatePct = float64(onTime) / n * 100
	metrics.TotalTardinessMin = totalTardyMin
	if spanMin > 0 {
		metrics.ThroughputJobsPerHour = n / (spanMin / 60)
	}

	util := analyzeUtilization(schedule, machines, resources, spanMin)
	return metrics, util
}

func analyzeUtilization(
	schedule []domain.ScheduledJob,
	machines []domain.Machine,
	resources domain.ResourceConstraints,
	spanMin float64,
) domain.ResourceUtilization {
	busyMin := make(map[string]float64, len(machines))
	jobCount := make(map[string]int, len(machines))
	var totalBusyMin float64
	for _, s := range schedule {
		busyMin[s.AssignedMachine] += s.ProcessingMin()
		jobCount[s.AssignedMachine]++
		totalBusyMin += s.ProcessingMin()
	}

	util := domain.ResourceUtilization{
		Machines: make([]domain.MachineUtilization, 0, len(machines)),
	}
	for _, m := range machines {
		mu := domain.MachineUtilization{
			MachineID:    m.ID,
			MachineName:  m.Name,
			JobsAssigned: jobCount[m.ID],
			BusyMin:      busyMin[m.ID],
		}
		if spanMin > 0 {
			mu.RawBusyFractionPct = busyMin[m.ID] / spanMin * 100
		}
		// Reported utilization stays inside the shop's band for
		// available machines carrying work; anything else reads 0.
		if m.IsAvailable() && mu.JobsAssigned > 0 {
			mu.UtilizationPct = clampPct(mu.RawBusyFractionPct, utilizationFloorPct, utilizationCeilPct)
		}
		util.Machines = append(util.Machines, mu)
	}

	if resources.AvailableOperators > 0 && spanMin > 0 {
		pct := totalBusyMin / (float64(resources.AvailableOperators) * spanMin) * 100
		util.OperatorUtilizationPct = math.Min(pct, 100)
	}
	return util
}

func clampPct(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
