package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/staffing-planner/pkg/core/services"
)

// CostsCmd creates the costs command
func CostsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "costs <target> <previous> [week]",
		Short: "Quote the hiring cost of a staffing change, and its surplus cost in a configured week",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("target must be a number: %w", err)
			}
			previous, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("previous must be a number: %w", err)
			}
			week := 0
			if len(args) > 2 {
				week, err = strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("week must be a number: %w", err)
				}
				if week < 1 {
					return fmt.Errorf("week must be at least 1, got %d", week)
				}
			}

			app.Logger.Info("costs command",
				zap.Int("target", target),
				zap.Int("previous", previous),
				zap.Int("week", week))

			quote, err := services.QuoteCosts(app.Logger, app.Cfg.Demand, app.Cfg.PlannerCosts(), target, previous, week)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Hiring cost (%d -> %d): $%.0f\n", quote.Previous, quote.Target, quote.HiringCost)
			if quote.Week > 0 {
				if quote.Feasible {
					fmt.Fprintf(app.Out, "Excess cost (week %d): $%.0f\n", quote.Week, quote.ExcessCost)
				} else {
					fmt.Fprintf(app.Out, "Excess cost (week %d): infeasible, %d workers is below demand\n", quote.Week, quote.Target)
				}
			}

			return nil
		},
	}
}
