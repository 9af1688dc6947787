package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/pkg/core/planner"
	"github.com/jakechorley/staffing-planner/pkg/core/services"
)

// ExampleCmd creates the example command, which plans the reference five-week scenario with default costs
func ExampleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Plan the reference scenario (demand 5 7 8 4 6, default costs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Info("example command", zap.Ints("demand", services.ExampleDemand))

			result, err := services.PlanStaffing(app.Ctx, app.Logger, services.PlanRequest{
				Demand: services.ExampleDemand,
				Costs:  planner.DefaultCosts(),
			})
			if err != nil {
				return err
			}

			return writeResult(app.Out, result, FormatTable)
		},
	}
}
