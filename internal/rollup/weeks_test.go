package rollup

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlannedWeeks(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2024, 1, 1), date(2024, 1, 1), 1},
		{"exactly one week", date(2024, 1, 1), date(2024, 1, 7), 1},
		{"one week plus a day", date(2024, 1, 1), date(2024, 1, 8), 2},
		{"28 days is 4 weeks", date(2024, 1, 1), date(2024, 1, 28), 4},
		{"29 days rounds up", date(2024, 1, 1), date(2024, 1, 29), 5},
		{"full year", date(2024, 1, 1), date(2024, 12, 31), 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlannedWeeks(DateRange{Start: tt.start, End: tt.end})
			if got != tt.want {
				t.Errorf("PlannedWeeks(%s..%s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestElapsedWeeks(t *testing.T) {
	rng := DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 28)}

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"before start clamps to one", date(2023, 12, 15), 1},
		{"on start day", date(2024, 1, 1), 1},
		{"mid second week", date(2024, 1, 10), 2},
		{"on end day", date(2024, 1, 28), 4},
		{"after end caps at planned end", date(2024, 6, 1), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedWeeks(rng, tt.today)
			if got != tt.want {
				t.Errorf("ElapsedWeeks(today=%s) = %d, want %d", tt.today.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestElapsedNeverExceedsPlannedWithinRange(t *testing.T) {
	rng := DateRange{Start: date(2024, 3, 4), End: date(2024, 5, 17)}
	planned := PlannedWeeks(rng)

	for today := rng.Start.AddDate(0, 0, -10); !today.After(rng.End); today = today.AddDate(0, 0, 1) {
		elapsed := ElapsedWeeks(rng, today)
		if elapsed < 1 {
			t.Fatalf("elapsed weeks %d < 1 at today=%s", elapsed, today.Format("2006-01-02"))
		}
		if elapsed > planned {
			t.Fatalf("elapsed %d > planned %d at today=%s", elapsed, planned, today.Format("2006-01-02"))
		}
	}
}

func TestWeeksIgnoreTimeOfDay(t *testing.T) {
	rng := DateRange{
		Start: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 28, 0, 15, 0, 0, time.UTC),
	}
	if got := PlannedWeeks(rng); got != 4 {
		t.Errorf("PlannedWeeks with times = %d, want 4", got)
	}
	if got := ElapsedWeeks(rng, time.Date(2024, 1, 28, 1, 0, 0, 0, time.UTC)); got != 4 {
		t.Errorf("ElapsedWeeks with times = %d, want 4", got)
	}
}
