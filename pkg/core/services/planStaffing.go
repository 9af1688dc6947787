package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/pkg/core/calendar"
	"github.com/jakechorley/staffing-planner/pkg/core/planner"
)

// ExampleDemand is the reference five-week scenario
var ExampleDemand = []int{5, 7, 8, 4, 6}

// PlanRequest describes a single staffing plan run
type PlanRequest struct {
	Demand []int
	Costs  planner.Costs

	// Start labels week 1 when non-zero; WeekRule spaces the following weeks
	Start    time.Time
	WeekRule string
}

// PlanResult represents the result of a staffing plan run
type PlanResult struct {
	RunID  string          `yaml:"runId"`
	Costs  planner.Costs   `yaml:"costs"`
	Plan   []planner.Step  `yaml:"plan"`
	Report *planner.Report `yaml:"report"`
}

// PlanStaffing builds a planner for the request, solves it and attaches week dates
func PlanStaffing(ctx context.Context, logger *zap.Logger, req PlanRequest) (*PlanResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Planning staffing",
		zap.Ints("demand", req.Demand),
		zap.Float64("hire_fixed", req.Costs.HireFixed),
		zap.Float64("hire_variable", req.Costs.HireVariable),
		zap.Float64("excess", req.Costs.Excess))

	p, err := planner.New(req.Demand, planner.WithCosts(req.Costs))
	if err != nil {
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	var labels []string
	if !req.Start.IsZero() {
		dates, err := calendar.WeekDates(req.Start, req.WeekRule, p.Weeks())
		if err != nil {
			return nil, fmt.Errorf("failed to compute week dates: %w", err)
		}
		labels = calendar.FormatDates(dates)
		logger.Debug("Week dates computed",
			zap.String("first_week", labels[0]),
			zap.String("last_week", labels[len(labels)-1]))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Solving",
		zap.Int("weeks", p.Weeks()),
		zap.Int("max_demand", p.MaxDemand()))

	_, plan := p.Solve()
	report := p.Report()
	if labels != nil {
		for i := range report.Rows {
			report.Rows[i].Date = labels[i]
		}
	}

	logger.Info("Staffing plan solved",
		zap.Float64("total_cost", report.TotalCost),
		zap.Int("weeks", len(plan)))

	return &PlanResult{
		RunID:  runID,
		Costs:  p.Costs(),
		Plan:   plan,
		Report: report,
	}, nil
}
