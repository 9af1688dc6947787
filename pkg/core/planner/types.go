package planner

import (
	"errors"
	"fmt"
	"math"
)

// Error taxonomy for planner construction. Callers match with errors.Is.
var (
	ErrInvalidDemand        = errors.New("invalid demand")
	ErrInvalidCostParameter = errors.New("invalid cost parameter")
)

// MaxDemandLimit bounds any single week's demand. Tables hold MaxDemand+1 levels per
// week and the recurrence scans levels squared, so larger demands are rejected.
const MaxDemandLimit = 10_000

// Default cost parameters
const (
	DefaultHireFixedCost    = 400.0
	DefaultHireVariableCost = 200.0
	DefaultExcessCost       = 300.0
)

// Costs holds the three cost constants used by the recurrence
type Costs struct {
	// HireFixed is charged once in any week where hiring occurs
	HireFixed float64 `yaml:"hireFixed"`

	// HireVariable is charged per additional worker hired
	HireVariable float64 `yaml:"hireVariable"`

	// Excess is charged per surplus worker per week
	Excess float64 `yaml:"excess"`
}

// DefaultCosts returns the default cost parameters (400 fixed, 200 per hire, 300 per surplus week)
func DefaultCosts() Costs {
	return Costs{
		HireFixed:    DefaultHireFixedCost,
		HireVariable: DefaultHireVariableCost,
		Excess:       DefaultExcessCost,
	}
}

// Validate checks that every cost constant is a finite, non-negative number
func (c Costs) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"hire fixed cost", c.HireFixed},
		{"hire variable cost", c.HireVariable},
		{"excess cost", c.Excess},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) || n.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidCostParameter, n.name, n.value)
		}
	}
	return nil
}

// HiringCost returns the cost of moving from previous to target workers.
// Reductions are free.
func (c Costs) HiringCost(target, previous int) float64 {
	if target <= previous {
		return 0
	}
	return c.HireFixed + c.HireVariable*float64(target-previous)
}

// ValidateDemand checks that the demand sequence is non-empty and every week is in 1..MaxDemandLimit
func ValidateDemand(demand []int) error {
	if len(demand) == 0 {
		return fmt.Errorf("%w: demand sequence is empty", ErrInvalidDemand)
	}
	for i, d := range demand {
		if d <= 0 {
			return fmt.Errorf("%w: week %d has non-positive demand %d", ErrInvalidDemand, i+1, d)
		}
		if d > MaxDemandLimit {
			return fmt.Errorf("%w: week %d demand %d exceeds the limit of %d", ErrInvalidDemand, i+1, d, MaxDemandLimit)
		}
	}
	return nil
}

// Step is one week of a staffing plan
type Step struct {
	// Week is 1-indexed
	Week   int `yaml:"week"`
	Demand int `yaml:"demand"`
	Level  int `yaml:"level"`
}

// ReportRow is one week of a rendered report
type ReportRow struct {
	Week int `yaml:"week"`

	// Date labels the week when a calendar is attached (YYYY-MM-DD), empty otherwise
	Date string `yaml:"date,omitempty"`

	Demand         int     `yaml:"demand"`
	Level          int     `yaml:"level"`
	HiringCost     float64 `yaml:"hiringCost"`
	ExcessCost     float64 `yaml:"excessCost"`
	CumulativeCost float64 `yaml:"cumulativeCost"`
}

// Report is the presentation of a solved plan
type Report struct {
	TotalCost float64     `yaml:"totalCost"`
	Rows      []ReportRow `yaml:"weeks"`
}
