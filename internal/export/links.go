package export

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"calendarize/internal/model"
	"calendarize/pkg/dateparse"
)

const (
	googleCalendarBase = "https://calendar.google.com/calendar/render"
	outlookComposeBase = "https://outlook.live.com/calendar/0/deeplink/compose"

	compactDateLayout     = "20060102"
	compactDateTimeLayout = "20060102T150405"
)

// RRule renders the recurrence descriptor as an RFC 5545 RRULE content
// string ("FREQ=WEEKLY;BYDAY=TU,TH"). Returns empty for non-recurring
// events. The composed rule is validated with rrule-go before use.
func RRule(rec model.Recurrence) (string, error) {
	if !rec.IsRecurring() {
		return "", nil
	}

	parts := []string{"FREQ=" + string(rec.Pattern)}
	if rec.Pattern == model.PatternWeekly && len(rec.Days) > 0 {
		parts = append(parts, "BYDAY="+strings.Join(rec.Days, ","))
	}
	if !rec.EndDate.IsZero() {
		// EndDate is inclusive: occurrences ON the end date still happen,
		// so UNTIL must cover that whole day, not its midnight.
		until := dateparse.EndOfDay(rec.EndDate).UTC()
		parts = append(parts, "UNTIL="+until.Format(compactDateTimeLayout)+"Z")
	} else if rec.Count > 0 {
		parts = append(parts, "COUNT="+strconv.Itoa(rec.Count))
	}

	rule := strings.Join(parts, ";")
	if _, err := rrule.StrToRRule(rule); err != nil {
		return "", fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}
	return rule, nil
}

// GoogleCalendarLink builds a Google Calendar event-template URL for the event.
func GoogleCalendarLink(ev model.Event) string {
	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", ev.Title)

	if ev.IsAllDay {
		// All-day templates use date-only bounds with an exclusive end.
		v.Set("dates", ev.StartTime.Format(compactDateLayout)+"/"+ev.EndTime.AddDate(0, 0, 1).Format(compactDateLayout))
	} else {
		v.Set("dates", ev.StartTime.Format(compactDateTimeLayout)+"/"+ev.EndTime.Format(compactDateTimeLayout))
		v.Set("ctz", ev.TimeZone)
	}

	if ev.Description != "" {
		v.Set("details", ev.Description)
	}
	if ev.Location != "" {
		v.Set("location", ev.Location)
	}
	for _, a := range ev.Attendees {
		v.Add("add", a)
	}
	if rule, err := RRule(ev.Recurrence); err == nil && rule != "" {
		v.Set("recur", "RRULE:"+rule)
	}

	return googleCalendarBase + "?" + v.Encode()
}

// OutlookLink builds an Outlook web compose deep link for the event.
func OutlookLink(ev model.Event) string {
	v := url.Values{}
	v.Set("path", "/calendar/action/compose")
	v.Set("rru", "addevent")
	v.Set("subject", ev.Title)
	v.Set("startdt", ev.StartTime.Format(time.RFC3339))
	v.Set("enddt", ev.EndTime.Format(time.RFC3339))

	if ev.IsAllDay {
		v.Set("allday", "true")
	}
	if ev.Description != "" {
		v.Set("body", ev.Description)
	}
	if ev.Location != "" {
		v.Set("location", ev.Location)
	}
	if len(ev.Attendees) > 0 {
		v.Set("to", strings.Join(ev.Attendees, ","))
	}

	return outlookComposeBase + "?" + v.Encode()
}
