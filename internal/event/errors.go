package event

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the event package. Every extraction failure
// is classified as one of these so delivery layers can map it to a short,
// user-facing message.
var (
	// ErrEmptyInput means the request carried neither text nor an image.
	ErrEmptyInput = errors.New("input is empty")

	// ErrTransport means the model call could not complete.
	ErrTransport = errors.New("model request could not be completed")

	// ErrEmptyExtraction means the model returned no usable content.
	ErrEmptyExtraction = errors.New("no event data extracted from the response")

	// ErrInvalidRecurrenceEndDate means a recurrence end date was present
	// but could not be parsed.
	ErrInvalidRecurrenceEndDate = errors.New("recurrence end date could not be parsed")

	// ErrInvertedTimeRange means the resolved end instant precedes the start.
	ErrInvertedTimeRange = errors.New("event end time precedes start time")
)

// MalformedPayloadError means the model response was not a valid JSON
// document of the expected shape. Always fatal for the whole extraction.
type MalformedPayloadError struct {
	Raw string // the offending payload text
	Err error  // parser diagnostic, may be nil for shape errors
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed extraction payload: %v", e.Err)
	}
	return "malformed extraction payload: missing events list"
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// MissingFieldError means a candidate event lacked a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// DateTimeError means a date/time field could not be resolved to an instant.
type DateTimeError struct {
	Field string
	Raw   string
	Err   error
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("unparsable %s value %q: %v", e.Field, e.Raw, e.Err)
}

func (e *DateTimeError) Unwrap() error {
	return e.Err
}
