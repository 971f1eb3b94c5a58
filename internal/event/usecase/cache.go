package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"calendarize/internal/event"
)

// cacheKey fingerprints a conversion request. The reference time is
// truncated to the minute so that back-to-back identical requests hit the
// same entry even though the prompt embeds the clock.
func cacheKey(in event.ConvertInput) string {
	h := sha256.New()
	h.Write([]byte(in.Text))
	h.Write([]byte{0})
	if in.Image != nil {
		h.Write([]byte(in.Image.MIMEType))
		h.Write([]byte{0})
		h.Write(in.Image.Data)
	}
	h.Write([]byte{0})
	h.Write([]byte(in.Timezone))
	h.Write([]byte{0})
	h.Write([]byte(in.ReferenceTime.Truncate(time.Minute).UTC().Format(time.RFC3339)))
	return hex.EncodeToString(h.Sum(nil))
}
