package domain

// ThicknessRange is the material thickness band a machine can cut, in mm.
type ThicknessRange struct {
	MinMM float64
	MaxMM float64
}

// Machine is one laser cutter in the shop's pool.
type Machine struct {
	ID                    string
	Name                  string
	MaxPowerKW            float64
	MaterialCompatibility []string
	ThicknessRange        ThicknessRange
	Status                MachineStatus
	EfficiencyPct         float64
	SetupTimeMultiplier   float64
	OperatorSkillRequired string
}

// IsAvailable reports whether the machine can take new work right now.
func (m Machine) IsAvailable() bool {
	return m.Status == MachineAvailable
}

// CanCut reports whether the machine handles the given material at the
// given thickness.
func (m Machine) CanCut(material string, thicknessMM float64) bool {
	if thicknessMM < m.ThicknessRange.MinMM || thicknessMM > m.ThicknessRange.MaxMM {
		return false
	}
	for _, mat := range m.MaterialCompatibility {
		if mat == material {
			return true
		}
	}
	return false
}

// EffectiveSetupMultiplier returns the machine's changeover factor,
// defaulting to 1.0 when unset.
func (m Machine) EffectiveSetupMultiplier() float64 {
	if m.SetupTimeMultiplier <= 0 {
		return 1.0
	}
	return m.SetupTimeMultiplier
}
