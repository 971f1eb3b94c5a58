package dateparse

import "time"

// Resolved is the outcome of resolving a date/time string.
// HasTime reports whether the input carried a time-of-day component;
// date-only inputs resolve to midnight with HasTime=false.
type Resolved struct {
	Time    time.Time
	HasTime bool
}
