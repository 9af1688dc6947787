package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/staffing-planner/pkg/core/calendar"
	"github.com/jakechorley/staffing-planner/pkg/core/planner"
)

// CostConfig holds optional cost overrides. Nil fields fall back to the planner defaults.
type CostConfig struct {
	HireFixed    *float64 `yaml:"hireFixed,omitempty" validate:"omitempty,gte=0"`
	HireVariable *float64 `yaml:"hireVariable,omitempty" validate:"omitempty,gte=0"`
	Excess       *float64 `yaml:"excess,omitempty" validate:"omitempty,gte=0"`
}

// Demand is a weekly demand sequence that only accepts integer YAML scalars.
// yaml.v3 truncates floats such as 7.5 when decoding into int, so tags are checked first.
type Demand []int

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Demand) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: demand must be a list of integers (line %d)", planner.ErrInvalidDemand, value.Line)
	}

	demand := make(Demand, 0, len(value.Content))
	for i, node := range value.Content {
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
			return fmt.Errorf("%w: week %d value %q is not an integer (line %d)", planner.ErrInvalidDemand, i+1, node.Value, node.Line)
		}
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("%w: week %d: %v", planner.ErrInvalidDemand, i+1, err)
		}
		demand = append(demand, v)
	}

	*d = demand
	return nil
}

// Config represents the application configuration
type Config struct {
	// Demand is the default weekly demand used when no demand is given on the command line.
	// The max tag mirrors planner.MaxDemandLimit.
	Demand Demand `yaml:"demand,omitempty" validate:"omitempty,dive,min=1,max=10000"`

	Costs CostConfig `yaml:"costs,omitempty"`

	// StartDate (YYYY-MM-DD) labels the first planned week; weeks are unlabelled when empty
	StartDate string `yaml:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// WeekRule is an RRULE describing week dates after StartDate (defaults to weekly)
	WeekRule string `yaml:"weekRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ConfigFileName returns the config file name for an environment
func ConfigFileName(env string) string {
	return fmt.Sprintf("%s_staffing_config.yaml", env)
}

// LoadWithEnv loads and validates <env>_staffing_config.yaml.
// It looks in the current directory first, then in the user's home directory.
// A missing file yields an empty config so the planner runs on defaults.
func LoadWithEnv(env string) (*Config, error) {
	configPath, found, err := findConfigFile(ConfigFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	if !found {
		return &Config{}, nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WeekRule != "" {
		if _, err := rrule.StrToROption(cfg.WeekRule); err != nil {
			return fmt.Errorf("invalid rrule in weekRule: %w", err)
		}
	}

	return nil
}

// PlannerCosts merges the configured overrides onto the planner defaults
func (c *Config) PlannerCosts() planner.Costs {
	costs := planner.DefaultCosts()
	if c.Costs.HireFixed != nil {
		costs.HireFixed = *c.Costs.HireFixed
	}
	if c.Costs.HireVariable != nil {
		costs.HireVariable = *c.Costs.HireVariable
	}
	if c.Costs.Excess != nil {
		costs.Excess = *c.Costs.Excess
	}
	return costs
}

// Start parses StartDate. The boolean is false when no start date is configured.
func (c *Config) Start() (time.Time, bool, error) {
	if c.StartDate == "" {
		return time.Time{}, false, nil
	}
	start, err := time.Parse(calendar.DateFormat, c.StartDate)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse startDate: %w", err)
	}
	return start, true, nil
}

// findConfigFile searches for the config file in the current directory and home directory
func findConfigFile(configFileName string) (string, bool, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, true, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, true, nil
	}

	return "", false, nil
}
