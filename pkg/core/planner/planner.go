package planner

import (
	"math"
	"slices"
)

// StaffingPlanner computes a minimum-cost staffing plan over a sequence of weeks.
// Staffing levels range over 0..MaxDemand for every week; levels below a week's
// demand are infeasible.
type StaffingPlanner struct {
	demand    []int
	costs     Costs
	weeks     int
	maxDemand int

	// costTable[w][k] is the minimum cumulative cost of staffing k workers in week w
	costTable [][]float64

	// decisionTable[w][k] is the week w-1 level that achieves costTable[w][k]
	decisionTable [][]int

	solved    bool
	totalCost float64
	plan      []Step
}

// Option customises a StaffingPlanner
type Option func(*StaffingPlanner)

// WithCosts replaces all three cost parameters
func WithCosts(costs Costs) Option {
	return func(p *StaffingPlanner) {
		p.costs = costs
	}
}

// WithHireFixedCost overrides the fixed hiring cost
func WithHireFixedCost(cost float64) Option {
	return func(p *StaffingPlanner) {
		p.costs.HireFixed = cost
	}
}

// WithHireVariableCost overrides the per-worker hiring cost
func WithHireVariableCost(cost float64) Option {
	return func(p *StaffingPlanner) {
		p.costs.HireVariable = cost
	}
}

// WithExcessCost overrides the cost per surplus worker per week
func WithExcessCost(cost float64) Option {
	return func(p *StaffingPlanner) {
		p.costs.Excess = cost
	}
}

// New validates the inputs and allocates the cost and decision tables.
// Returns ErrInvalidDemand or ErrInvalidCostParameter before any allocation.
func New(demand []int, opts ...Option) (*StaffingPlanner, error) {
	if err := ValidateDemand(demand); err != nil {
		return nil, err
	}

	p := &StaffingPlanner{
		demand: slices.Clone(demand),
		costs:  DefaultCosts(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.costs.Validate(); err != nil {
		return nil, err
	}

	p.weeks = len(p.demand)
	p.maxDemand = slices.Max(p.demand)

	p.costTable = make([][]float64, p.weeks)
	p.decisionTable = make([][]int, p.weeks)
	for w := 0; w < p.weeks; w++ {
		p.costTable[w] = make([]float64, p.maxDemand+1)
		for k := range p.costTable[w] {
			p.costTable[w][k] = math.Inf(1)
		}
		p.decisionTable[w] = make([]int, p.maxDemand+1)
	}

	return p, nil
}

// Weeks returns the number of planned weeks
func (p *StaffingPlanner) Weeks() int { return p.weeks }

// MaxDemand returns the upper bound of the staffing-level axis
func (p *StaffingPlanner) MaxDemand() int { return p.maxDemand }

// Costs returns the cost parameters in use
func (p *StaffingPlanner) Costs() Costs { return p.costs }

// Demand returns a copy of the demand sequence
func (p *StaffingPlanner) Demand() []int { return slices.Clone(p.demand) }

// HiringCost returns the cost of moving from previous to target workers under the planner's costs
func (p *StaffingPlanner) HiringCost(target, previous int) float64 {
	return p.costs.HiringCost(target, previous)
}

// ExcessCost returns the surplus cost of staffing level workers in the given week,
// or +Inf when level is below that week's demand.
func (p *StaffingPlanner) ExcessCost(level, week int) float64 {
	demand := p.demand[week]
	if level >= demand {
		return p.costs.Excess * float64(level-demand)
	}
	return math.Inf(1)
}

// CostAt returns the minimum cumulative cost recorded for level in week (0-indexed).
// Only meaningful after Solve.
func (p *StaffingPlanner) CostAt(week, level int) float64 {
	return p.costTable[week][level]
}

// DecisionAt returns the predecessor level recorded for level in week (0-indexed).
// Only meaningful after Solve.
func (p *StaffingPlanner) DecisionAt(week, level int) int {
	return p.decisionTable[week][level]
}

// Solve fills the tables and returns the minimum total cost and the optimal plan
// in chronological order. The result is computed once and cached.
func (p *StaffingPlanner) Solve() (float64, []Step) {
	if !p.solved {
		p.fill()
		p.totalCost, p.plan = p.backtrack()
		p.solved = true
	}
	return p.totalCost, slices.Clone(p.plan)
}

func (p *StaffingPlanner) fill() {
	// Week 0 starts from zero pre-existing workers
	for k := p.demand[0]; k <= p.maxDemand; k++ {
		p.costTable[0][k] = p.HiringCost(k, 0) + p.ExcessCost(k, 0)
		p.decisionTable[0][k] = k
	}

	for w := 1; w < p.weeks; w++ {
		for k := p.demand[w]; k <= p.maxDemand; k++ {
			excess := p.ExcessCost(k, w)
			best := math.Inf(1)
			bestPrev := 0

			// Strict < keeps the smallest predecessor on ties
			for prev := p.demand[w-1]; prev <= p.maxDemand; prev++ {
				candidate := p.costTable[w-1][prev] + p.HiringCost(k, prev) + excess
				if candidate < best {
					best = candidate
					bestPrev = prev
				}
			}

			p.costTable[w][k] = best
			p.decisionTable[w][k] = bestPrev
		}
	}
}

func (p *StaffingPlanner) backtrack() (float64, []Step) {
	last := p.weeks - 1

	// Smallest level achieving the cheapest final cost
	level := p.demand[last]
	minCost := p.costTable[last][level]
	for k := level + 1; k <= p.maxDemand; k++ {
		if p.costTable[last][k] < minCost {
			minCost = p.costTable[last][k]
			level = k
		}
	}

	plan := make([]Step, 0, p.weeks)
	for w := last; w >= 0; w-- {
		plan = append(plan, Step{Week: w + 1, Demand: p.demand[w], Level: level})
		level = p.decisionTable[w][level]
	}
	slices.Reverse(plan)

	return minCost, plan
}
