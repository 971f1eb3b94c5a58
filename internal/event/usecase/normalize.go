package usecase

import (
	"strings"
	"time"

	"calendarize/internal/event"
	"calendarize/pkg/dateparse"
)

// normalized holds one candidate's fields after defaulting and coercion,
// ready for final assembly.
type normalized struct {
	Title       string
	IsAllDay    bool
	Start       time.Time
	End         time.Time
	TimeZone    string
	Description string
	Location    string
	Attendees   []string
}

// literalMidnightClamp rewrites a literal 24:00 time-of-day to 23:59.
// 24:00 is never a valid instant and must never appear in output.
var literalMidnightClamp = strings.NewReplacer(
	"T240000", "T235900",
	"T24:00:00", "T23:59:00",
	"T2400", "T2359",
	"T24:00", "T23:59",
)

// normalizeCandidate applies the deterministic defaulting and coercion
// rules to one candidate event. The steps are order-dependent: all-day
// inference runs before end-time defaulting, which observes it.
func (uc *implUseCase) normalizeCandidate(c candidate, ambientTZ string) (normalized, error) {
	// 1. Required fields. Identity and start are strict; everything
	// descriptive is lenient.
	title := c.str("title")
	if title == "" {
		return normalized{}, &event.MissingFieldError{Field: "title"}
	}
	startRaw := c.str("start_time")
	if startRaw == "" {
		return normalized{}, &event.MissingFieldError{Field: "start_time"}
	}

	// 2. Timezone default: the ambient timezone in force when the
	// request was made.
	timezone := c.str("time_zone")
	if timezone == "" {
		timezone = ambientTZ
	}

	start, err := uc.resolver.Resolve(startRaw, timezone)
	if err != nil {
		return normalized{}, &event.DateTimeError{Field: "start_time", Raw: startRaw, Err: err}
	}

	// 3. All-day inference: a date-only start overrides the upstream flag.
	isAllDay := c.boolean("is_all_day")
	if !start.HasTime {
		isAllDay = true
	}

	// 4+5. End time: resolve with the midnight clamp, or default to
	// start + 1h bounded to the start's own day.
	end, err := uc.normalizeEnd(c.str("end_time"), start.Time, timezone, isAllDay)
	if err != nil {
		return normalized{}, err
	}

	// 6. Placeholder defaults. Absent text fields become empty strings,
	// never nulls.
	return normalized{
		Title:       title,
		IsAllDay:    isAllDay,
		Start:       start.Time,
		End:         end,
		TimeZone:    timezone,
		Description: c.str("description"),
		Location:    c.str("location"),
		Attendees:   c.strList("attendees"),
	}, nil
}

func (uc *implUseCase) normalizeEnd(endRaw string, start time.Time, timezone string, isAllDay bool) (time.Time, error) {
	if endRaw == "" {
		if isAllDay {
			return start, nil
		}
		end := start.Add(time.Hour)
		if end.Day() != start.Day() || end.Month() != start.Month() || end.Year() != start.Year() {
			// Defaulting must not spill into the next day.
			return dateparse.EndOfDay(start), nil
		}
		return end, nil
	}

	resolved, err := uc.resolver.Resolve(literalMidnightClamp.Replace(endRaw), timezone)
	if err != nil {
		return time.Time{}, &event.DateTimeError{Field: "end_time", Raw: endRaw, Err: err}
	}
	end := resolved.Time

	// A date-only end on a timed event means the event runs through
	// that day, not until its midnight.
	if !resolved.HasTime && !isAllDay {
		return dateparse.EndOfDay(end), nil
	}

	// An end at 00:00 means "end of day", not a zero-length midnight
	// instant: clamp to 23:59:00 of the intended day.
	if resolved.HasTime && end.Hour() == 0 && end.Minute() == 0 {
		if end.After(start) {
			end = dateparse.EndOfDay(end.AddDate(0, 0, -1))
		} else {
			end = dateparse.EndOfDay(start)
		}
	}

	return end, nil
}
