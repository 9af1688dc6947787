package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultWeekRule yields one occurrence per week on the start date's weekday
const DefaultWeekRule = "FREQ=WEEKLY"

// DateFormat is the layout used for week labels and config dates
const DateFormat = "2006-01-02"

// WeekDates expands an RRULE from start into exactly count dates, one per planned week.
// An empty rule falls back to DefaultWeekRule. Any COUNT in the rule is replaced by count.
func WeekDates(start time.Time, rule string, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("week count must be positive, got %d", count)
	}
	if rule == "" {
		rule = DefaultWeekRule
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid week rule %q: %w", rule, err)
	}

	// Normalize to start of day to avoid time-of-day issues
	opt.Dtstart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	opt.Count = count

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build week rule: %w", err)
	}

	dates := r.All()
	if len(dates) < count {
		return nil, fmt.Errorf("week rule %q yields %d dates, need %d", rule, len(dates), count)
	}

	return dates, nil
}

// FormatDates renders dates as YYYY-MM-DD labels
func FormatDates(dates []time.Time) []string {
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d.Format(DateFormat)
	}
	return labels
}
