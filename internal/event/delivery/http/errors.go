package http

import (
	"errors"

	"calendarize/internal/event"
)

// mapError translates use-case errors into short user-facing ones. The
// second return is false for anything unclassified, which the handler
// surfaces as a generic 500 without leaking internals.
func (h *handler) mapError(err error) (error, bool) {
	var (
		malformed *event.MalformedPayloadError
		missing   *event.MissingFieldError
		datetime  *event.DateTimeError
	)

	switch {
	case errors.Is(err, event.ErrEmptyInput):
		return errors.New("provide some text or an image describing the event"), true
	case errors.Is(err, event.ErrTransport):
		return errors.New("the conversion service is temporarily unreachable, please try again"), true
	case errors.Is(err, event.ErrEmptyExtraction):
		return errors.New("no event details could be extracted from the input"), true
	case errors.As(err, &malformed):
		return errors.New("the extracted event data was malformed, please try rephrasing"), true
	case errors.As(err, &missing):
		return errors.New("an event was missing its " + missing.Field + ", please be more specific"), true
	case errors.As(err, &datetime):
		return errors.New("an event date or time could not be understood, please be more specific"), true
	case errors.Is(err, event.ErrInvalidRecurrenceEndDate):
		return errors.New("the recurrence end date could not be understood"), true
	case errors.Is(err, event.ErrInvertedTimeRange):
		return errors.New("an event ended before it started, please check the times"), true
	default:
		return nil, false
	}
}
