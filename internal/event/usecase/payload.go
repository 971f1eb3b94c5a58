package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"calendarize/internal/event"
)

// candidate is one not-yet-validated event description from the model
// payload. Field types are whatever the JSON decoder produced; the
// accessors below coerce them leniently.
type candidate map[string]any

// parsePayload decodes the sanitized response into the candidate list.
// On a syntax error it makes one repair attempt with jsonrepair before
// giving up: the payload originates from a generative model and small
// defects (trailing commas, single quotes) are common. A payload without
// the top-level events key is malformed: a single document describes all
// candidates, so there is no partial recovery.
func parsePayload(clean string) ([]candidate, error) {
	var doc struct {
		Events *[]candidate `json:"events"`
	}

	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(clean)
		if repairErr != nil {
			return nil, &event.MalformedPayloadError{Raw: clean, Err: err}
		}
		if err2 := json.Unmarshal([]byte(repaired), &doc); err2 != nil {
			return nil, &event.MalformedPayloadError{Raw: clean, Err: err}
		}
	}

	if doc.Events == nil {
		return nil, &event.MalformedPayloadError{Raw: clean}
	}
	return *doc.Events, nil
}

// str returns the trimmed string value for key, or "" when absent, null,
// or not a string.
func (c candidate) str(key string) string {
	s, _ := c[key].(string)
	return strings.TrimSpace(s)
}

// boolean returns the boolean value for key, tolerating "true"/"false"
// strings from sloppy model output.
func (c candidate) boolean(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

// integer returns the integer value for key, tolerating JSON numbers and
// digit strings. Returns 0 when absent or unusable.
func (c candidate) integer(key string) int {
	switch v := c[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// strList returns the string elements of a list value for key. Non-string
// elements are dropped.
func (c candidate) strList(key string) []string {
	raw, ok := c[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
