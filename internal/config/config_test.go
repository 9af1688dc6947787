package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/staffing-planner/pkg/core/planner"
)

func float(v float64) *float64 { return &v }

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Demand: []int{5, 7, 8, 4, 6},
		Costs: CostConfig{
			HireFixed:    float(400),
			HireVariable: float(200),
			Excess:       float(300),
		},
		StartDate: "2025-01-06",
		WeekRule:  "FREQ=WEEKLY;BYDAY=MO",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_EmptyConfig(t *testing.T) {
	err := Validate(&Config{})
	assert.NoError(t, err)
}

func TestValidate_ZeroCostAllowed(t *testing.T) {
	cfg := &Config{Costs: CostConfig{Excess: float(0)}}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_NegativeCost(t *testing.T) {
	cfg := &Config{Costs: CostConfig{HireVariable: float(-10)}}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_NonPositiveDemand(t *testing.T) {
	cfg := &Config{Demand: []int{3, 0, 4}}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DemandAboveLimit(t *testing.T) {
	cfg := &Config{Demand: []int{3, planner.MaxDemandLimit + 1}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	cfg.Demand = []int{3, planner.MaxDemandLimit}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_InvalidStartDate(t *testing.T) {
	cfg := &Config{StartDate: "06/01/2025"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{WeekRule: "INVALID_RRULE_SYNTAX"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestPlannerCosts_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, planner.DefaultCosts(), cfg.PlannerCosts())
}

func TestPlannerCosts_PartialOverride(t *testing.T) {
	cfg := &Config{Costs: CostConfig{Excess: float(50)}}

	costs := cfg.PlannerCosts()
	assert.Equal(t, planner.DefaultHireFixedCost, costs.HireFixed)
	assert.Equal(t, planner.DefaultHireVariableCost, costs.HireVariable)
	assert.Equal(t, 50.0, costs.Excess)
}

func TestStart(t *testing.T) {
	start, ok, err := (&Config{}).Start()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, start.IsZero())

	start, ok, err = (&Config{StartDate: "2025-02-03"}).Start()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), start)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_staffing_config.yaml")

	validConfig := `
demand: [5, 7, 8, 4, 6]
costs:
  hireFixed: 500
  excess: 250.5
startDate: "2025-01-06"
weekRule: "FREQ=WEEKLY;BYDAY=MO"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, Demand{5, 7, 8, 4, 6}, cfg.Demand)
	require.NotNil(t, cfg.Costs.HireFixed)
	assert.Equal(t, 500.0, *cfg.Costs.HireFixed)
	assert.Nil(t, cfg.Costs.HireVariable)
	require.NotNil(t, cfg.Costs.Excess)
	assert.Equal(t, 250.5, *cfg.Costs.Excess)
	assert.Equal(t, "2025-01-06", cfg.StartDate)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO", cfg.WeekRule)
}

func TestLoadFromPath_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	err := os.WriteFile(configPath, []byte("demand: [10]\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, Demand{10}, cfg.Demand)
	assert.Empty(t, cfg.StartDate)
	assert.Empty(t, cfg.WeekRule)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
demand: [1, 2]
weekRule: "INVALID_RRULE_SYNTAX"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
demand: [5, 7
  invalid indentation
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_NonIntegerDemand(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"fractional week", "demand: [5, 7.5]\n"},
		{"whole-valued float", "demand: [5, 7.0]\n"},
		{"quoted number", "demand: [5, \"7\"]\n"},
		{"word", "demand: [5, seven]\n"},
		{"nested list", "demand: [5, [7]]\n"},
		{"scalar instead of list", "demand: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "bad_demand.yaml")
			err := os.WriteFile(configPath, []byte(tt.content), 0644)
			require.NoError(t, err)

			cfg, err := LoadFromPath(configPath)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, planner.ErrInvalidDemand)
			assert.Contains(t, err.Error(), "failed to parse config file")
		})
	}
}

func TestDemand_UnmarshalYAML(t *testing.T) {
	var cfg Config
	err := yaml.Unmarshal([]byte("demand:\n  - 5\n  - 7\n  - 8\n"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, Demand{5, 7, 8}, cfg.Demand)

	var empty Config
	err = yaml.Unmarshal([]byte("demand: []\n"), &empty)
	require.NoError(t, err)
	assert.Empty(t, empty.Demand)
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWithEnv("nosuchenv")
	require.NoError(t, err)
	assert.Empty(t, cfg.Demand)
	assert.Equal(t, planner.DefaultCosts(), cfg.PlannerCosts())
}

func TestLoadWithEnv_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := os.WriteFile(filepath.Join(dir, ConfigFileName("test")), []byte("demand: [3, 4]\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, Demand{3, 4}, cfg.Demand)
}
