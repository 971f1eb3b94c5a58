package dateparse

import (
	"fmt"
	"strings"
	"time"
)

// layout pairs a time layout with whether it carries a time-of-day component.
type layout struct {
	format  string
	hasTime bool
}

// Layouts the extraction model is instructed to emit, most specific first.
// Compact forms ("20250315T170000") come from the prompt contract; the
// dashed ISO forms cover models that ignore it.
var layouts = []layout{
	{"20060102T150405", true},
	{"20060102T1504", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05", true},
	{"20060102", false},
	{"2006-01-02", false},
}

// Resolver converts ISO-like date/time strings into timezone-aware instants.
// The zero Resolver is not usable; create one with NewResolver.
type Resolver struct{}

// NewResolver creates a date/time resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve parses value in the given IANA timezone. Inputs that carry their
// own offset (RFC3339) keep their instant and are converted into the hinted
// zone for presentation.
func (r *Resolver) Resolve(value, timezone string) (Resolved, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Resolved{}, fmt.Errorf("empty date/time value")
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Resolved{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	if t, rfcErr := time.Parse(time.RFC3339, value); rfcErr == nil {
		return Resolved{Time: t.In(loc), HasTime: true}, nil
	}

	for _, l := range layouts {
		t, parseErr := time.ParseInLocation(l.format, value, loc)
		if parseErr != nil {
			continue
		}
		return Resolved{Time: t, HasTime: l.hasTime}, nil
	}

	return Resolved{}, fmt.Errorf("unparsable date/time value %q", value)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:00 of t's calendar day in t's location.
// 24:00 is never a valid instant, so day boundaries clamp here.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}
