package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"calendarize/internal/event"
)

// localTimeLayouts are the accepted formats for the caller's local time,
// most specific first. Frontends typically send an ISO string with or
// without a zone suffix.
var localTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// processConvertReq reads the multipart form of a convert request.
func (h *handler) processConvertReq(c *gin.Context) (convertReq, error) {
	var req convertReq

	req.Text = c.PostForm("text")
	req.Timezone = c.PostForm("local_tz")
	req.Insert, _ = strconv.ParseBool(c.PostForm("add_to_calendar"))

	refTime, err := parseLocalTime(c.PostForm("local_time"))
	if err != nil {
		return req, err
	}
	req.ReferenceTime = refTime

	image, err := h.readUpload(c)
	if err != nil {
		return req, err
	}
	req.Image = image

	return req, req.validate()
}

func parseLocalTime(raw string) (time.Time, error) {
	// local_time is optional. A caller that omits it gets the server
	// clock as the reference instant, so relative dates still resolve.
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized local_time %q", raw)
}

// readUpload extracts the optional image file from the form. Returns nil
// when no file was attached.
func (h *handler) readUpload(c *gin.Context) (*event.ImageInput, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return nil, fmt.Errorf("file exceeds the %d byte upload limit", h.maxUploadBytes)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return &event.ImageInput{MIMEType: mimeType, Data: data}, nil
}
