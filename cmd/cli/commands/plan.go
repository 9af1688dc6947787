package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/pkg/core/planner"
	"github.com/jakechorley/staffing-planner/pkg/core/services"
)

// PlanCmd creates the plan command
func PlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [demand...]",
		Short: "Compute the minimum-cost staffing plan for weekly demand",
		Long: `Compute the minimum-cost staffing plan for a sequence of weekly demands.

Demand is read from the arguments, or from the configured demand when no
arguments are given. Cost flags override the configured costs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildPlanRequest(cmd, app, args)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")

			app.Logger.Info("plan command",
				zap.Ints("demand", req.Demand),
				zap.String("format", format))

			result, err := services.PlanStaffing(app.Ctx, app.Logger, *req)
			if err != nil {
				return err
			}

			return writeResult(app.Out, result, format)
		},
	}

	cmd.Flags().Float64("fixed-cost", planner.DefaultHireFixedCost, "Fixed cost charged in any week with hiring")
	cmd.Flags().Float64("variable-cost", planner.DefaultHireVariableCost, "Cost per worker hired")
	cmd.Flags().Float64("excess-cost", planner.DefaultExcessCost, "Cost per surplus worker per week")
	cmd.Flags().String("format", FormatTable, "Output format (table or yaml)")
	cmd.Flags().String("start", "", "Date of the first week (YYYY-MM-DD) for week labels")

	return cmd
}

// buildPlanRequest merges arguments, flags and config into a plan request.
// Flags only override config values when explicitly set.
func buildPlanRequest(cmd *cobra.Command, app *AppContext, args []string) (*services.PlanRequest, error) {
	var demand []int
	if len(args) > 0 {
		parsed, err := parseDemand(args)
		if err != nil {
			return nil, err
		}
		demand = parsed
	} else {
		demand = app.Cfg.Demand
	}
	if len(demand) == 0 {
		return nil, fmt.Errorf("%w: no demand given and none configured", planner.ErrInvalidDemand)
	}

	costs := app.Cfg.PlannerCosts()
	if cmd.Flags().Changed("fixed-cost") {
		costs.HireFixed, _ = cmd.Flags().GetFloat64("fixed-cost")
	}
	if cmd.Flags().Changed("variable-cost") {
		costs.HireVariable, _ = cmd.Flags().GetFloat64("variable-cost")
	}
	if cmd.Flags().Changed("excess-cost") {
		costs.Excess, _ = cmd.Flags().GetFloat64("excess-cost")
	}

	req := &services.PlanRequest{
		Demand:   demand,
		Costs:    costs,
		WeekRule: app.Cfg.WeekRule,
	}

	start, ok, err := app.Cfg.Start()
	if err != nil {
		return nil, err
	}
	if ok {
		req.Start = start
	}
	if startFlag, _ := cmd.Flags().GetString("start"); startFlag != "" {
		req.Start, err = parseStart(startFlag)
		if err != nil {
			return nil, err
		}
	}

	return req, nil
}
