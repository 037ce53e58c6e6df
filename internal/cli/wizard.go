package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/beamshop/opticut/internal/cli/formatter"
	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/domain"
)

// opticutHuhTheme matches the form styling to the formatter palette.
func opticutHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// jobForm collects one job; returns the job and whether to add another.
func jobForm(seq int, now time.Time) (domain.Job, bool, error) {
	var (
		name      = fmt.Sprintf("Job %d", seq)
		priority  = string(domain.PriorityNormal)
		customer  = string(domain.CustomerStandard)
		due       = now.AddDate(0, 0, 3).Format("2006-01-02")
		duration  = "60"
		setup     = "10"
		material  = "mild_steel"
		thickness = "3"
		margin    = "20"
		more      bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Job name").Value(&name),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Critical", string(domain.PriorityCritical)),
					huh.NewOption("Urgent", string(domain.PriorityUrgent)),
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Normal", string(domain.PriorityNormal)),
					huh.NewOption("Low", string(domain.PriorityLow)),
				).
				Value(&priority),
			huh.NewSelect[string]().
				Title("Customer tier").
				Options(
					huh.NewOption("VIP", string(domain.CustomerVIP)),
					huh.NewOption("Preferred", string(domain.CustomerPreferred)),
					huh.NewOption("Standard", string(domain.CustomerStandard)),
				).
				Value(&customer),
			huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(&due).Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().Title("Estimated duration (minutes)").Value(&duration).Validate(validatePositiveInt),
			huh.NewInput().Title("Setup time (minutes)").Value(&setup).Validate(validatePositiveInt),
			huh.NewInput().Title("Material type").Value(&material),
			huh.NewInput().Title("Thickness (mm)").Value(&thickness).Validate(validatePositiveFloat),
			huh.NewInput().Title("Profit margin (%)").Value(&margin).Validate(validatePositiveFloat),
			huh.NewConfirm().Title("Add another job?").Value(&more),
		),
	).WithTheme(opticutHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Job{}, false, err
	}

	dueDate, _ := time.Parse("2006-01-02", due)
	durationMin, _ := strconv.Atoi(duration)
	setupMin, _ := strconv.Atoi(setup)
	thicknessMM, _ := strconv.ParseFloat(thickness, 64)
	marginPct, _ := strconv.ParseFloat(margin, 64)

	job := domain.Job{
		ID:                   fmt.Sprintf("job-%d", seq),
		Name:                 name,
		Priority:             domain.PriorityTier(priority),
		DueDate:              dueDate,
		EstimatedDurationMin: durationMin,
		MaterialType:         material,
		ThicknessMM:          thicknessMM,
		SetupTimeMin:         setupMin,
		PartCount:            1,
		CustomerImportance:   domain.CustomerTier(customer),
		ProfitMarginPct:      marginPct,
	}
	return job, more, nil
}

// machineForm collects one machine; returns it and whether to add more.
func machineForm(seq int) (domain.Machine, bool, error) {
	var (
		name       = fmt.Sprintf("Laser %d", seq)
		materials  = []string{"mild_steel"}
		minMM      = "0.5"
		maxMM      = "20"
		multiplier = "1.0"
		more       bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Machine name").Value(&name),
			huh.NewMultiSelect[string]().
				Title("Material compatibility").
				Options(
					huh.NewOption("Mild steel", "mild_steel").Selected(true),
					huh.NewOption("Stainless steel", "stainless_steel"),
					huh.NewOption("Aluminum", "aluminum"),
					huh.NewOption("Copper", "copper"),
					huh.NewOption("Acrylic", "acrylic"),
				).
				Value(&materials),
			huh.NewInput().Title("Min thickness (mm)").Value(&minMM).Validate(validatePositiveFloat),
			huh.NewInput().Title("Max thickness (mm)").Value(&maxMM).Validate(validatePositiveFloat),
			huh.NewInput().Title("Setup time multiplier").Value(&multiplier).Validate(validatePositiveFloat),
			huh.NewConfirm().Title("Add another machine?").Value(&more),
		),
	).WithTheme(opticutHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Machine{}, false, err
	}

	minVal, _ := strconv.ParseFloat(minMM, 64)
	maxVal, _ := strconv.ParseFloat(maxMM, 64)
	multVal, _ := strconv.ParseFloat(multiplier, 64)

	machine := domain.Machine{
		ID:                    fmt.Sprintf("machine-%d", seq),
		Name:                  name,
		MaterialCompatibility: materials,
		ThicknessRange:        domain.ThicknessRange{MinMM: minVal, MaxMM: maxVal},
		Status:                domain.MachineAvailable,
		SetupTimeMultiplier:   multVal,
	}
	return machine, more, nil
}

// runIntakeForm assembles a small bundle interactively: jobs, machines
// and operator count. Goals come from the configured defaults.
func runIntakeForm(app *App, now time.Time) (contract.OptimizeRequest, error) {
	var jobs []domain.Job
	for more := true; more; {
		job, again, err := jobForm(len(jobs)+1, now)
		if err != nil {
			return contract.OptimizeRequest{}, err
		}
		jobs = append(jobs, job)
		more = again
	}

	var machines []domain.Machine
	for more := true; more; {
		machine, again, err := machineForm(len(machines) + 1)
		if err != nil {
			return contract.OptimizeRequest{}, err
		}
		machines = append(machines, machine)
		more = again
	}

	operators := "1"
	opForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Available operators").Value(&operators).Validate(validatePositiveInt),
		),
	).WithTheme(opticutHuhTheme()).WithShowHelp(false)
	if err := opForm.Run(); err != nil {
		return contract.OptimizeRequest{}, err
	}
	opCount, _ := strconv.Atoi(operators)

	req := contract.NewOptimizeRequest(jobs, machines, now)
	req.OptimizationGoals = app.DefaultGoals
	req.ResourceConstraints.AvailableOperators = opCount
	return req, nil
}
