package domain

// PerformanceMetrics summarizes a built schedule.
type PerformanceMetrics struct {
	// TotalMakespanHours is total processing time across the schedule:
	// sum of (duration + effective setup) over all jobs, in hours.
	TotalMakespanHours float64

	// ScheduleSpanHours is the wall-clock span from the reference time
	// to the completion of the last job, accounting for machines
	// running in parallel.
	ScheduleSpanHours float64

	AverageWaitTimeMin    float64
	OnTimeDeliveryRatePct float64
	TotalTardinessMin     float64
	ThroughputJobsPerHour float64
	AverageFlowTimeMin    float64
}

// MachineUtilization is one machine's share of the schedule.
type MachineUtilization struct {
	MachineID    string
	MachineName  string
	JobsAssigned int
	BusyMin      float64

	// UtilizationPct is the reported utilization, clamped into the
	// shop's reporting band for available machines with work assigned.
	UtilizationPct float64

	// RawBusyFractionPct is busy time over schedule span, unclamped.
	RawBusyFractionPct float64
}

// ResourceUtilization aggregates machine and operator load.
type ResourceUtilization struct {
	Machines               []MachineUtilization
	OperatorUtilizationPct float64
}

// CostShare is one slice of the cost breakdown.
type CostShare struct {
	Category string
	Amount   float64
	SharePct float64
}

// CostBreakdown is the linear cost projection for a schedule.
type CostBreakdown struct {
	TotalOperatingCost float64
	SetupCost          float64
	OvertimeCost       float64
	TardinessPenalty   float64
	OpportunityCost    float64
	ProfitOptimization float64
	TotalCost          float64
	Breakdown          []CostShare
}

// RiskAssessment classifies overall schedule risk.
type RiskAssessment struct {
	Level             RiskLevel
	RiskFactors       []string
	ContingencyPlans  []string
	BufferAdequacyPct float64
}

// Scenario is one alternative trade-off schedule, produced by re-running
// the optimizer under a different goal weighting.
type Scenario struct {
	Name          string
	Description   string
	MakespanHours float64
	OnTimeRatePct float64
	TotalCost     float64
	Tradeoff      string
}

// OptimizationInsights carries the qualitative recommendations derived
// from the computed metrics.
type OptimizationInsights struct {
	ImprovementAreas        []string
	Bottlenecks             []string
	CapacityRecommendations []string
	ProcessImprovements     []string
	SchedulingStrategies    []string
}
