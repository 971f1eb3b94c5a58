package export

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"calendarize/internal/model"
)

// ICalString renders the event as a complete VCALENDAR document.
func ICalString(ev model.Event) (string, error) {
	rule, err := RRule(ev.Recurrence)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	e := cal.AddEvent(uuid.NewString())
	e.SetDtStampTime(time.Now().UTC())
	e.SetSummary(ev.Title)

	if ev.IsAllDay {
		// DTEND is exclusive for all-day events.
		e.SetAllDayStartAt(ev.StartTime)
		e.SetAllDayEndAt(ev.EndTime.AddDate(0, 0, 1))
	} else {
		e.SetStartAt(ev.StartTime)
		e.SetEndAt(ev.EndTime)
	}

	if ev.Description != "" {
		e.SetDescription(ev.Description)
	}
	if ev.Location != "" {
		e.SetLocation(ev.Location)
	}
	for _, a := range ev.Attendees {
		e.AddAttendee(a)
	}
	if rule != "" {
		e.AddRrule(rule)
	}

	return cal.Serialize(), nil
}
