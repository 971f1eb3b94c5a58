package usecase

import (
	"fmt"
	"strings"

	"calendarize/internal/event"
	"calendarize/internal/model"
	"calendarize/pkg/dateparse"
)

// normalizeRecurrence coerces the candidate's recurrence fields into a
// model.Recurrence. The pattern field is lenient because it originates
// from a generative source: anything unrecognized falls back to WEEKLY.
// The end date is strict because recurrence semantics cannot be
// determined without it once it is present.
func (uc *implUseCase) normalizeRecurrence(c candidate, timezone string) (model.Recurrence, error) {
	if !c.boolean("is_recurring") {
		// Stray pattern or day fields on a non-recurring candidate are
		// an upstream inconsistency, not an error. Ignore them.
		return model.Recurrence{Pattern: model.PatternNone}, nil
	}

	pattern := model.RecurrencePattern(strings.ToUpper(c.str("recurrence_pattern")))
	switch pattern {
	case model.PatternDaily, model.PatternWeekly, model.PatternMonthly, model.PatternYearly:
	default:
		pattern = model.PatternWeekly
	}

	rec := model.Recurrence{Pattern: pattern}
	if pattern == model.PatternWeekly {
		rec.Days = normalizeDays(c.strList("recurrence_days"))
	}

	if raw := c.str("recurrence_end_date"); raw != "" {
		resolved, err := uc.resolver.Resolve(raw, timezone)
		if err != nil {
			return model.Recurrence{}, fmt.Errorf("%w: %q: %v", event.ErrInvalidRecurrenceEndDate, raw, err)
		}
		// An explicit end date wins over an occurrence count.
		rec.EndDate = dateparse.StartOfDay(resolved.Time)
		return rec, nil
	}

	if n := c.integer("recurrence_count"); n > 0 {
		rec.Count = n
	}
	return rec, nil
}

// normalizeDays maps free-form weekday values onto two-letter codes in
// Monday-first order, dropping duplicates and unrecognized entries. Full
// names work because the first two letters of every English weekday name
// are its code.
func normalizeDays(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	for _, d := range raw {
		d = strings.ToUpper(strings.TrimSpace(d))
		if len(d) > 2 {
			d = d[:2]
		}
		seen[d] = true
	}

	var days []string
	for _, code := range model.WeekdayCodes {
		if seen[code] {
			days = append(days, code)
		}
	}
	return days
}
