package domain

type PriorityTier string

const (
	PriorityCritical PriorityTier = "critical"
	PriorityUrgent   PriorityTier = "urgent"
	PriorityHigh     PriorityTier = "high"
	PriorityNormal   PriorityTier = "normal"
	PriorityLow      PriorityTier = "low"
)

// ValidPriorityTiers is the canonical set of accepted priority tier strings.
var ValidPriorityTiers = map[string]bool{
	"critical": true, "urgent": true, "high": true, "normal": true, "low": true,
}

type CustomerTier string

const (
	CustomerVIP       CustomerTier = "vip"
	CustomerPreferred CustomerTier = "preferred"
	CustomerStandard  CustomerTier = "standard"
)

// ValidCustomerTiers is the canonical set of accepted customer tier strings.
var ValidCustomerTiers = map[string]bool{
	"vip": true, "preferred": true, "standard": true,
}

type MachineStatus string

const (
	MachineAvailable   MachineStatus = "available"
	MachineBusy        MachineStatus = "busy"
	MachineMaintenance MachineStatus = "maintenance"
	MachineOffline     MachineStatus = "offline"
)

// ValidMachineStatuses is the canonical set of accepted machine status strings.
var ValidMachineStatuses = map[string]bool{
	"available": true, "busy": true, "maintenance": true, "offline": true,
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type PrimaryObjective string

const (
	ObjectiveBalanced         PrimaryObjective = "balanced"
	ObjectiveMinimizeMakespan PrimaryObjective = "minimize_makespan"
	ObjectiveMaximizeProfit   PrimaryObjective = "maximize_profit"
	ObjectiveMaximizeOnTime   PrimaryObjective = "maximize_on_time"
)

// ValidPrimaryObjectives is the canonical set of accepted objective strings.
var ValidPrimaryObjectives = map[string]bool{
	"balanced": true, "minimize_makespan": true,
	"maximize_profit": true, "maximize_on_time": true,
}
