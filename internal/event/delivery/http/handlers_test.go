package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendarize/config"
	"calendarize/internal/event"
	"calendarize/internal/middleware"
	"calendarize/internal/model"
	"calendarize/pkg/log"
	"calendarize/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubUseCase struct {
	out   event.ConvertOutput
	err   error
	gotIn event.ConvertInput
}

func (s *stubUseCase) Convert(ctx context.Context, in event.ConvertInput) (event.ConvertOutput, error) {
	s.gotIn = in
	return s.out, s.err
}

func newTestRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	var l log.Logger = &mockLogger{}

	r := gin.New()
	h := New(l, uc, 1<<20)
	mw := middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func postConvert(t *testing.T, r *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("multipart close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/convert", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sampleOutput() event.ConvertOutput {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	return event.ConvertOutput{Events: []event.ConvertedEvent{{
		Event: model.Event{
			Title:     "Slug Ai Meeting",
			StartTime: time.Date(2025, 2, 25, 17, 0, 0, 0, loc),
			EndTime:   time.Date(2025, 2, 25, 18, 0, 0, 0, loc),
			TimeZone:  "America/Los_Angeles",
			Recurrence: model.Recurrence{
				Pattern: model.PatternWeekly,
				Days:    []string{"TU", "TH"},
			},
		},
		GcalLink:    "https://calendar.google.com/calendar/render?action=TEMPLATE",
		OutlookLink: "https://outlook.live.com/calendar/0/deeplink/compose",
		ICalString:  "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	}}}
}

func TestConvert_OK(t *testing.T) {
	uc := &stubUseCase{out: sampleOutput()}
	r := newTestRouter(uc)

	rec := postConvert(t, r, map[string]string{
		"text":       "Slug Ai Meeting every tuesday thursday at 5pm",
		"local_tz":   "America/Los_Angeles",
		"local_time": "2025-02-20T17:00:00",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", resp.ErrorCode)
	}

	if uc.gotIn.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q", uc.gotIn.Timezone)
	}
	if uc.gotIn.ReferenceTime.IsZero() {
		t.Error("ReferenceTime should be set")
	}

	data, _ := json.Marshal(resp.Data)
	var out convertResp
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(out.Events))
	}
	ev := out.Events[0]
	if ev.Title != "Slug Ai Meeting" {
		t.Errorf("title = %q", ev.Title)
	}
	if ev.Recurrence == nil || ev.Recurrence.Pattern != "WEEKLY" {
		t.Errorf("recurrence = %+v, want WEEKLY", ev.Recurrence)
	}
	if ev.Attendees == nil {
		t.Error("attendees should marshal as an empty list, not null")
	}
}

func TestConvert_MissingInput(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	rec := postConvert(t, r, map[string]string{"local_tz": "UTC"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestConvert_LocalTimeDefaultsToServerClock(t *testing.T) {
	uc := &stubUseCase{out: sampleOutput()}
	r := newTestRouter(uc)

	before := time.Now()
	rec := postConvert(t, r, map[string]string{"text": "lunch tomorrow"})
	after := time.Now()

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := uc.gotIn.ReferenceTime
	if got.Before(before) || got.After(after) {
		t.Errorf("ReferenceTime = %v, want within [%v, %v]", got, before, after)
	}
}

func TestConvert_BadLocalTime(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	rec := postConvert(t, r, map[string]string{
		"text":       "lunch",
		"local_time": "sometime soon",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestConvert_ClassifiedError(t *testing.T) {
	uc := &stubUseCase{err: event.ErrEmptyExtraction}
	r := newTestRouter(uc)

	rec := postConvert(t, r, map[string]string{"text": "gibberish"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message == "" || resp.Message == event.ErrEmptyExtraction.Error() {
		t.Errorf("message = %q, want a user-facing rewording", resp.Message)
	}
}

func TestConvert_UnexpectedError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("pq: connection reset")}
	r := newTestRouter(uc)

	rec := postConvert(t, r, map[string]string{"text": "lunch tomorrow"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("message = %q, internals must not leak", resp.Message)
	}
}
