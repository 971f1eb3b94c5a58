package response

import (
	"encoding/json"
	"time"
)

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again later"
	InternalServerErrorCode = 500

	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes. Zone offsets are
	// preserved so timezone-aware event times survive the round trip.
	DateTimeFormat = time.RFC3339
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime is a datetime that marshals as DateTimeFormat in its own location.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
