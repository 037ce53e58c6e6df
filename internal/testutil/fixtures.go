package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/beamshop/opticut/internal/domain"
)

var jobSeq atomic.Int64

// Job options
type JobOption func(*domain.Job)

func WithPriority(p domain.PriorityTier) JobOption {
	return func(j *domain.Job) { j.Priority = p }
}

func WithDueDate(d time.Time) JobOption {
	return func(j *domain.Job) { j.DueDate = d }
}

func WithDuration(min int) JobOption {
	return func(j *domain.Job) { j.EstimatedDurationMin = min }
}

func WithSetupTime(min int) JobOption {
	return func(j *domain.Job) { j.SetupTimeMin = min }
}

func WithMaterial(material string, thicknessMM float64) JobOption {
	return func(j *domain.Job) {
		j.MaterialType = material
		j.ThicknessMM = thicknessMM
	}
}

func WithCustomer(tier domain.CustomerTier) JobOption {
	return func(j *domain.Job) { j.CustomerImportance = tier }
}

func WithProfitMargin(pct float64) JobOption {
	return func(j *domain.Job) { j.ProfitMarginPct = pct }
}

func WithDependsOn(ids ...string) JobOption {
	return func(j *domain.Job) { j.DependsOn = ids }
}

func WithJobID(id string) JobOption {
	return func(j *domain.Job) { j.ID = id }
}

// NewTestJob builds a plain mild-steel job due in a week, relative to
// the given reference time.
func NewTestJob(name string, now time.Time, opts ...JobOption) domain.Job {
	n := jobSeq.Add(1)
	j := domain.Job{
		ID:                   fmt.Sprintf("job-%03d", n),
		Name:                 name,
		Priority:             domain.PriorityNormal,
		DueDate:              now.AddDate(0, 0, 7),
		EstimatedDurationMin: 60,
		MaterialType:         "mild_steel",
		ThicknessMM:          3,
		SetupTimeMin:         10,
		PartCount:            1,
		CustomerImportance:   domain.CustomerStandard,
		ProfitMarginPct:      20,
	}
	for _, opt := range opts {
		opt(&j)
	}
	return j
}

// Machine options
type MachineOption func(*domain.Machine)

func WithStatus(s domain.MachineStatus) MachineOption {
	return func(m *domain.Machine) { m.Status = s }
}

func WithMaterials(materials ...string) MachineOption {
	return func(m *domain.Machine) { m.MaterialCompatibility = materials }
}

func WithThicknessRange(minMM, maxMM float64) MachineOption {
	return func(m *domain.Machine) {
		m.ThicknessRange = domain.ThicknessRange{MinMM: minMM, MaxMM: maxMM}
	}
}

func WithSetupMultiplier(mult float64) MachineOption {
	return func(m *domain.Machine) { m.SetupTimeMultiplier = mult }
}

func WithMachineID(id string) MachineOption {
	return func(m *domain.Machine) { m.ID = id }
}

// NewTestMachine builds an available cutter that handles mild steel and
// stainless up to 20mm.
func NewTestMachine(name string, opts ...MachineOption) domain.Machine {
	m := domain.Machine{
		ID:                    uuid.New().String(),
		Name:                  name,
		MaxPowerKW:            6,
		MaterialCompatibility: []string{"mild_steel", "stainless_steel"},
		ThicknessRange:        domain.ThicknessRange{MinMM: 0.5, MaxMM: 20},
		Status:                domain.MachineAvailable,
		EfficiencyPct:         90,
		SetupTimeMultiplier:   1.0,
		OperatorSkillRequired: "certified",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
