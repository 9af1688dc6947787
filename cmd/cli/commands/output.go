package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jakechorley/staffing-planner/pkg/core/calendar"
	"github.com/jakechorley/staffing-planner/pkg/core/planner"
	"github.com/jakechorley/staffing-planner/pkg/core/services"
)

// Output formats
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// parseDemand converts positional arguments into a demand sequence
func parseDemand(args []string) ([]int, error) {
	demand := make([]int, 0, len(args))
	for i, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: week %d value %q is not an integer", planner.ErrInvalidDemand, i+1, arg)
		}
		demand = append(demand, d)
	}
	return demand, nil
}

// parseStart parses a YYYY-MM-DD start date
func parseStart(value string) (time.Time, error) {
	start, err := time.Parse(calendar.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("start must be YYYY-MM-DD: %w", err)
	}
	return start, nil
}

// writeResult renders a plan result in the requested format
func writeResult(w io.Writer, result *services.PlanResult, format string) error {
	switch format {
	case FormatTable, "":
		fmt.Fprintf(w, "\n✓ Optimal staffing plan found (run %s)\n\n", result.RunID)
		fmt.Fprintf(w, "Costs: $%.0f fixed per hiring week, $%.0f per hire, $%.0f per surplus worker-week\n",
			result.Costs.HireFixed, result.Costs.HireVariable, result.Costs.Excess)
		if err := result.Report.Render(w); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprintln(w)
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected %s or %s)", format, FormatTable, FormatYAML)
	}
}
