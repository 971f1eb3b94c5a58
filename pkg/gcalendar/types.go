package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/Los_Angeles"
	AllDay      bool
	Attendees   []string // attendee email addresses
	Recurrence  []string // RFC 5545 lines, e.g. "RRULE:FREQ=WEEKLY;BYDAY=TU,TH"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
