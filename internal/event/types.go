package event

import (
	"time"

	"calendarize/internal/model"
)

// ImageInput is an optional image attached to a conversion request.
type ImageInput struct {
	MIMEType string
	Data     []byte
}

// ConvertInput is the input for one extraction request.
type ConvertInput struct {
	// Text is the free-form natural language describing the event(s).
	// May be empty when an image is supplied.
	Text string

	// Image is an optional screenshot/poster/flyer to extract from.
	Image *ImageInput

	// ReferenceTime is the caller's "now", used by the model to resolve
	// relative dates ("tomorrow", "next Tuesday").
	ReferenceTime time.Time

	// Timezone is the caller's ambient IANA timezone. It is the fallback
	// for events whose extracted timezone is missing.
	Timezone string

	// InsertToCalendar requests that extracted events also be created in
	// the configured Google Calendar. Insertion failures are non-fatal.
	InsertToCalendar bool
}

// ConvertedEvent pairs a validated event with its export artifacts.
type ConvertedEvent struct {
	Event model.Event

	// GcalLink is a Google Calendar event-template URL.
	GcalLink string
	// OutlookLink is an Outlook compose deep link.
	OutlookLink string
	// ICalString is a complete VCALENDAR document for the event.
	ICalString string

	// CalendarHTMLLink is the link of the event created in Google
	// Calendar, when insertion was requested and succeeded.
	CalendarHTMLLink string
}

// ConvertOutput is the result of one extraction request. Events preserve
// the order in which candidates appeared in the model payload.
type ConvertOutput struct {
	Events []ConvertedEvent
}
