// Package rollup derives project health metrics from contract, deliverable,
// assignment and time-entry records. Everything in here is a pure function
// of its inputs plus an explicitly passed "today"; nothing is cached or
// written back to storage.
package rollup

import "time"

// DateRange is an inclusive calendar-day range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both endpoints are set and ordered.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// PlannedWeeks is ceil((end-start+1)/7) floored at 1, so a single-day range
// still counts as one week and per-week rates never divide by zero.
func PlannedWeeks(r DateRange) int {
	days := daysInclusive(r.Start, r.End)
	return weeksFloored(days)
}

// ElapsedWeeks counts weeks from start through min(today, end). Before the
// range starts the span is non-positive and clamps to 1.
func ElapsedWeeks(r DateRange, today time.Time) int {
	end := dateOnly(r.End)
	today = dateOnly(today)
	if today.Before(end) {
		end = today
	}
	days := daysInclusive(r.Start, end)
	return weeksFloored(days)
}

func weeksFloored(days int) int {
	weeks := (days + 6) / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}

func daysInclusive(start, end time.Time) int {
	start = dateOnly(start)
	end = dateOnly(end)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
