package limit

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod validates a period kind. Period values are a closed enum,
// checked once here; WindowContaining assumes a valid receiver.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	}
	return "", fmt.Errorf("period must be 'daily', 'weekly', 'monthly', or 'yearly', got %q", s)
}

// Window is a half-open date range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

// WindowContaining computes the period window that contains the reference
// date. Weekly windows start on Monday.
func (p Period) WindowContaining(ref time.Time) Window {
	year, month, day := ref.Date()
	loc := ref.Location()

	switch p {
	case PeriodDaily:
		start := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}
	case PeriodWeekly:
		daysSinceMonday := (int(ref.Weekday()) + 6) % 7
		start := time.Date(year, month, day-daysSinceMonday, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	case PeriodMonthly:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	default: // yearly
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}
	}
}
