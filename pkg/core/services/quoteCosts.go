package services

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/pkg/core/planner"
)

// CostQuote is the cost of a single week's staffing move
type CostQuote struct {
	Target     int
	Previous   int
	HiringCost float64

	// Week is 1-indexed; zero when no week was given and ExcessCost is not computed
	Week       int
	ExcessCost float64
	Feasible   bool
}

// QuoteCosts prices moving from previous to target workers, and the surplus cost of
// target in the given 1-indexed week of demand when week > 0
func QuoteCosts(logger *zap.Logger, demand []int, costs planner.Costs, target, previous, week int) (*CostQuote, error) {
	if target < 0 || previous < 0 {
		return nil, fmt.Errorf("staffing levels must be non-negative, got target %d previous %d", target, previous)
	}

	if err := costs.Validate(); err != nil {
		return nil, err
	}

	quote := &CostQuote{
		Target:     target,
		Previous:   previous,
		HiringCost: costs.HiringCost(target, previous),
		Feasible:   true,
	}

	if week != 0 {
		p, err := planner.New(demand, planner.WithCosts(costs))
		if err != nil {
			return nil, fmt.Errorf("failed to create planner: %w", err)
		}
		if week < 1 || week > p.Weeks() {
			return nil, fmt.Errorf("week must be between 1 and %d, got %d", p.Weeks(), week)
		}
		quote.Week = week
		quote.ExcessCost = p.ExcessCost(target, week-1)
		quote.Feasible = !math.IsInf(quote.ExcessCost, 1)
	}

	logger.Debug("Quoted costs",
		zap.Int("target", target),
		zap.Int("previous", previous),
		zap.Int("week", week),
		zap.Float64("hiring_cost", quote.HiringCost),
		zap.Bool("feasible", quote.Feasible))

	return quote, nil
}
