package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"calendarize/internal/event"
	"calendarize/internal/model"
	"calendarize/pkg/dateparse"
	"calendarize/pkg/llmprovider"
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

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub", ModelName: "stub-1"}, nil
}

func newConvertUseCase(gen *stubGenerator, cacheSize int) *implUseCase {
	return New(&mockLogger{}, gen, nil, dateparse.NewResolver(), testTZ, "primary", cacheSize)
}

func convertInput(text string) event.ConvertInput {
	return event.ConvertInput{
		Text:          text,
		ReferenceTime: time.Date(2025, 2, 20, 17, 0, 0, 0, time.UTC),
		Timezone:      testTZ,
	}
}

const slugMeetingResponse = "```json\n" + `{
  "events": [
    {
      "title": "Slug Ai Meeting",
      "is_all_day": false,
      "start_time": "20250225T170000",
      "end_time": "20250225T180000",
      "time_zone": "America/Los_Angeles",
      "description": "Bi-weekly Slug Ai meeting",
      "location": null,
      "attendees": [],
      "is_recurring": true,
      "recurrence_pattern": "WEEKLY",
      "recurrence_days": ["TU", "TH"],
      "recurrence_count": null,
      "recurrence_end_date": null
    }
  ]
}` + "\n```"

func TestConvert_RecurringMeeting(t *testing.T) {
	gen := &stubGenerator{text: slugMeetingResponse}
	uc := newConvertUseCase(gen, 0)

	out, err := uc.Convert(context.Background(), convertInput("Slug Ai Meeting every tuesday thursday at 5pm"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(out.Events))
	}

	ev := out.Events[0].Event
	if ev.Title != "Slug Ai Meeting" {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.IsAllDay {
		t.Error("timed meeting must not be all-day")
	}
	if ev.Recurrence.Pattern != model.PatternWeekly {
		t.Errorf("Pattern = %q, want WEEKLY", ev.Recurrence.Pattern)
	}
	if len(ev.Recurrence.Days) != 2 || ev.Recurrence.Days[0] != "TU" || ev.Recurrence.Days[1] != "TH" {
		t.Errorf("Days = %v, want [TU TH]", ev.Recurrence.Days)
	}

	artifacts := out.Events[0]
	if !strings.Contains(artifacts.GcalLink, "calendar.google.com") {
		t.Errorf("GcalLink = %q", artifacts.GcalLink)
	}
	if !strings.Contains(artifacts.OutlookLink, "outlook.live.com") {
		t.Errorf("OutlookLink = %q", artifacts.OutlookLink)
	}
	if !strings.Contains(artifacts.ICalString, "RRULE:FREQ=WEEKLY;BYDAY=TU,TH") {
		t.Errorf("ICalString missing recurrence rule:\n%s", artifacts.ICalString)
	}
	if artifacts.CalendarHTMLLink != "" {
		t.Error("no calendar link expected without insertion")
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	uc := newConvertUseCase(&stubGenerator{text: slugMeetingResponse}, 0)

	if _, err := uc.Convert(context.Background(), event.ConvertInput{}); !errors.Is(err, event.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestConvert_TransportFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	uc := newConvertUseCase(gen, 0)

	_, err := uc.Convert(context.Background(), convertInput("lunch tomorrow"))
	if !errors.Is(err, event.ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
}

func TestConvert_NoEventsFound(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"events\": []}\n```"}
	uc := newConvertUseCase(gen, 0)

	out, err := uc.Convert(context.Background(), convertInput("nothing schedulable here"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(out.Events) != 0 {
		t.Errorf("got %d events, want 0", len(out.Events))
	}
}

func TestConvert_BatchAbortsOnFirstFailure(t *testing.T) {
	// Second candidate has no title; the whole batch must fail.
	gen := &stubGenerator{text: `{
		"events": [
			{"title": "Good", "start_time": "20250301T090000"},
			{"start_time": "20250301T100000"}
		]
	}`}
	uc := newConvertUseCase(gen, 0)

	out, err := uc.Convert(context.Background(), convertInput("two events"))
	var missing *event.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if len(out.Events) != 0 {
		t.Errorf("got %d events on failure, want 0", len(out.Events))
	}
}

func TestConvert_CacheHit(t *testing.T) {
	gen := &stubGenerator{text: slugMeetingResponse}
	uc := newConvertUseCase(gen, 8)
	in := convertInput("Slug Ai Meeting every tuesday thursday at 5pm")

	for i := 0; i < 2; i++ {
		if _, err := uc.Convert(context.Background(), in); err != nil {
			t.Fatalf("Convert() #%d error = %v", i+1, err)
		}
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1 (second call served from cache)", gen.calls)
	}
}

func TestConvert_CacheSkippedForInsertion(t *testing.T) {
	gen := &stubGenerator{text: slugMeetingResponse}
	uc := newConvertUseCase(gen, 8)
	in := convertInput("Slug Ai Meeting every tuesday thursday at 5pm")
	in.InsertToCalendar = true

	for i := 0; i < 2; i++ {
		if _, err := uc.Convert(context.Background(), in); err != nil {
			t.Fatalf("Convert() #%d error = %v", i+1, err)
		}
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2 (insertion requests bypass the cache)", gen.calls)
	}
}
