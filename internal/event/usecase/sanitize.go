package usecase

import (
	"strings"

	"calendarize/internal/event"
)

// sanitizeResponse strips markdown code-fence wrapping that models often
// add around JSON output. Sanitizing an unfenced payload is a no-op, so
// the operation is idempotent.
func sanitizeResponse(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}

	if s == "" {
		return "", event.ErrEmptyExtraction
	}
	return s, nil
}
