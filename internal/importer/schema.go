package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// BundleSchema is the top-level JSON structure for an input bundle.
type BundleSchema struct {
	JobQueue               []JobImport                   `json:"job_queue"`
	MachineCapabilities    []MachineImport               `json:"machine_capabilities"`
	OperationalConstraints *OperationalConstraintsImport `json:"operational_constraints,omitempty"`
	OptimizationGoals      *GoalsImport                  `json:"optimization_goals,omitempty"`
	ResourceConstraints    *ResourceConstraintsImport    `json:"resource_constraints,omitempty"`
	QualityRequirements    *QualityImport                `json:"quality_requirements,omitempty"`
}

// JobImport defines one queue entry in the bundle file.
type JobImport struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Priority             string   `json:"priority,omitempty"`
	DueDate              string   `json:"due_date"`
	EstimatedDurationMin int      `json:"estimated_duration_min"`
	MaterialType         string   `json:"material_type"`
	ThicknessMM          float64  `json:"thickness_mm"`
	SetupTimeMin         int      `json:"setup_time_min"`
	PartCount            *int     `json:"part_count,omitempty"`
	CustomerImportance   string   `json:"customer_importance,omitempty"`
	ProfitMarginPct      float64  `json:"profit_margin_pct,omitempty"`
	DependsOn            []string `json:"depends_on,omitempty"`
}

// MachineImport defines one cutter in the bundle file.
type MachineImport struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	MaxPowerKW            float64              `json:"max_power_kw,omitempty"`
	MaterialCompatibility []string             `json:"material_compatibility"`
	ThicknessRange        ThicknessRangeImport `json:"thickness_range"`
	Status                string               `json:"status,omitempty"`
	EfficiencyPct         float64              `json:"efficiency_pct,omitempty"`
	SetupTimeMultiplier   float64              `json:"setup_time_multiplier,omitempty"`
	OperatorSkillRequired string               `json:"operator_skill_required,omitempty"`
}

type ThicknessRangeImport struct {
	MinMM float64 `json:"min_mm"`
	MaxMM float64 `json:"max_mm"`
}

type OperationalConstraintsImport struct {
	WorkingHoursStart    string                    `json:"working_hours_start,omitempty"`
	WorkingHoursEnd      string                    `json:"working_hours_end,omitempty"`
	WorkingDays          []string                  `json:"working_days,omitempty"`
	MaxOvertimeHoursWeek float64                   `json:"max_overtime_hours_week,omitempty"`
	MinInterJobBreakMin  int                       `json:"min_inter_job_break_min,omitempty"`
	MaxContinuousRunMin  int                       `json:"max_continuous_run_min,omitempty"`
	MaintenanceWindows   []MaintenanceWindowImport `json:"maintenance_windows,omitempty"`
}

type MaintenanceWindowImport struct {
	MachineID string `json:"machine_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type GoalsImport struct {
	Primary                    string  `json:"primary,omitempty"`
	CustomerSatisfactionWeight float64 `json:"customer_satisfaction_weight"`
	ProfitabilityWeight        float64 `json:"profitability_weight"`
	EfficiencyWeight           float64 `json:"efficiency_weight"`
	UrgencyWeight              float64 `json:"urgency_weight"`
}

type ResourceConstraintsImport struct {
	AvailableOperators   int                   `json:"available_operators"`
	OperatorShifts       []OperatorShiftImport `json:"operator_shifts,omitempty"`
	MaterialAvailability map[string]float64    `json:"material_availability,omitempty"`
	ToolingAvailability  map[string]bool       `json:"tooling_availability,omitempty"`
}

type OperatorShiftImport struct {
	Name       string `json:"name"`
	Shift      string `json:"shift"`
	SkillLevel string `json:"skill_level,omitempty"`
}

type QualityImport struct {
	EdgeQualityGrade string  `json:"edge_quality_grade,omitempty"`
	ToleranceMM      float64 `json:"tolerance_mm,omitempty"`
	MaxDrossLevel    string  `json:"max_dross_level,omitempty"`
}

// LoadBundleSchema reads and parses an input bundle JSON file.
func LoadBundleSchema(path string) (*BundleSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseBundle(data)
}

// ReadBundleSchema parses an input bundle from a reader (stdin piping).
func ReadBundleSchema(r io.Reader) (*BundleSchema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseBundle(data)
}

func parseBundle(data []byte) (*BundleSchema, error) {
	var schema BundleSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing bundle file: %w", err)
	}
	return &schema, nil
}
