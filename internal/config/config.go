package config

import (
	"github.com/spf13/viper"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/scheduler"
)

// Config holds the engine tunables a shop may override. The defaults
// reproduce the documented heuristic rates exactly.
type Config struct {
	Rates        scheduler.CostRates
	DefaultGoals domain.OptimizationGoals
	Verbose      bool
}

// Load reads opticut.yaml from the working directory or ./config if
// present, then applies OPTICUT_-prefixed environment overrides. A
// missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("opticut")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("opticut")
	v.AutomaticEnv()

	rates := scheduler.DefaultCostRates()
	v.SetDefault("rates.operating_cost_per_job", rates.OperatingCostPerJob)
	v.SetDefault("rates.overtime_cost_per_job", rates.OvertimeCostPerJob)
	v.SetDefault("rates.overtime_free_jobs", rates.OvertimeFreeJobs)
	v.SetDefault("rates.setup_cost_per_min", rates.SetupCostPerMin)
	v.SetDefault("rates.profit_benefit_per_job", rates.ProfitBenefitPerJob)

	goals := domain.DefaultGoals()
	v.SetDefault("goals.primary", string(goals.Primary))
	v.SetDefault("goals.customer_satisfaction_weight", goals.CustomerSatisfactionWeight)
	v.SetDefault("goals.profitability_weight", goals.ProfitabilityWeight)
	v.SetDefault("goals.efficiency_weight", goals.EfficiencyWeight)
	v.SetDefault("goals.urgency_weight", goals.UrgencyWeight)

	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Rates: scheduler.CostRates{
			OperatingCostPerJob: v.GetFloat64("rates.operating_cost_per_job"),
			OvertimeCostPerJob:  v.GetFloat64("rates.overtime_cost_per_job"),
			OvertimeFreeJobs:    v.GetInt("rates.overtime_free_jobs"),
			SetupCostPerMin:     v.GetFloat64("rates.setup_cost_per_min"),
			ProfitBenefitPerJob: v.GetFloat64("rates.profit_benefit_per_job"),
		},
		DefaultGoals: domain.OptimizationGoals{
			Primary:                    domain.PrimaryObjective(v.GetString("goals.primary")),
			CustomerSatisfactionWeight: v.GetFloat64("goals.customer_satisfaction_weight"),
			ProfitabilityWeight:        v.GetFloat64("goals.profitability_weight"),
			EfficiencyWeight:           v.GetFloat64("goals.efficiency_weight"),
			UrgencyWeight:              v.GetFloat64("goals.urgency_weight"),
		},
		Verbose: v.GetBool("verbose"),
	}, nil
}
