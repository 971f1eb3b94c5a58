package model

import "time"

// RecurrencePattern is the canonical repetition frequency of an event.
type RecurrencePattern string

const (
	PatternNone    RecurrencePattern = "NONE"
	PatternDaily   RecurrencePattern = "DAILY"
	PatternWeekly  RecurrencePattern = "WEEKLY"
	PatternMonthly RecurrencePattern = "MONTHLY"
	PatternYearly  RecurrencePattern = "YEARLY"
)

// WeekdayCodes is the fixed set of two-letter day codes, Monday-first.
// Recurrence day lists are ordered by this sequence.
var WeekdayCodes = []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// Recurrence is the canonical, validated description of how an event repeats.
// When Pattern is NONE all other fields are zero.
type Recurrence struct {
	Pattern RecurrencePattern
	// Days holds weekday codes, deduplicated and ordered Monday-first.
	// Meaningful only when Pattern is WEEKLY.
	Days []string
	// Count is the number of occurrences; 0 means unset. Mutually
	// exclusive with EndDate: an explicit end date wins.
	Count int
	// EndDate is the last day of the recurrence at date precision;
	// the zero value means the recurrence is open-ended.
	EndDate time.Time
}

// IsRecurring reports whether the descriptor describes a repeating event.
func (r Recurrence) IsRecurring() bool {
	return r.Pattern != "" && r.Pattern != PatternNone
}

// Event is a validated calendar event. It is constructed exactly once by
// the extraction pipeline and not mutated afterwards.
type Event struct {
	Title       string
	IsAllDay    bool
	StartTime   time.Time
	EndTime     time.Time
	TimeZone    string // IANA zone identifier, never empty
	Description string // empty string permitted, never "unset"
	Location    string
	Attendees   []string
	Recurrence  Recurrence
}
