package service

import "time"

// Clock supplies "today" to the rollup calculators. Injected so tests can
// pin the evaluation date.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
