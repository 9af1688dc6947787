package planner

import (
	"fmt"
	"io"
	"strings"
)

// Report solves the plan (reusing a cached solve) and re-derives the per-week
// hiring, excess and cumulative costs for display.
func (p *StaffingPlanner) Report() *Report {
	totalCost, plan := p.Solve()

	rows := make([]ReportRow, 0, len(plan))
	prevLevel := 0
	for i, step := range plan {
		rows = append(rows, ReportRow{
			Week:           step.Week,
			Demand:         step.Demand,
			Level:          step.Level,
			HiringCost:     p.HiringCost(step.Level, prevLevel),
			ExcessCost:     p.ExcessCost(step.Level, i),
			CumulativeCost: p.costTable[i][step.Level],
		})
		prevLevel = step.Level
	}

	return &Report{
		TotalCost: totalCost,
		Rows:      rows,
	}
}

// Render writes the report as a text table. A date column is included when any row has a date.
func (r *Report) Render(w io.Writer) error {
	withDates := false
	for _, row := range r.Rows {
		if row.Date != "" {
			withDates = true
			break
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Minimum total cost: %s\n\n", currency(r.TotalCost))

	if withDates {
		b.WriteString("Week | Date       | Demand | Staff | Hiring cost | Excess cost | Cumulative cost\n")
		b.WriteString("-----|------------|--------|-------|-------------|-------------|----------------\n")
	} else {
		b.WriteString("Week | Demand | Staff | Hiring cost | Excess cost | Cumulative cost\n")
		b.WriteString("-----|--------|-------|-------------|-------------|----------------\n")
	}

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%4d | ", row.Week)
		if withDates {
			fmt.Fprintf(&b, "%-10s | ", row.Date)
		}
		fmt.Fprintf(&b, "%6d | %5d | %11s | %11s | %15s\n",
			row.Demand,
			row.Level,
			currency(row.HiringCost),
			currency(row.ExcessCost),
			currency(row.CumulativeCost))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// currency formats a cost as a whole-number dollar amount
func currency(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}
