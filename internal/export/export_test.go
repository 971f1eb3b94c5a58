package export_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/teambition/rrule-go"

	"calendarize/internal/export"
	"calendarize/internal/model"
)

func sampleEvent() model.Event {
	loc, _ := time.LoadLocation("America/Los_Angeles")
	return model.Event{
		Title:       "Slug Ai Meeting",
		IsAllDay:    false,
		StartTime:   time.Date(2025, 2, 20, 17, 0, 0, 0, loc),
		EndTime:     time.Date(2025, 2, 20, 18, 0, 0, 0, loc),
		TimeZone:    "America/Los_Angeles",
		Description: "Bi-weekly Slug Ai meeting",
		Location:    "Engineering 2",
		Attendees:   []string{"slugs@ucsc.edu"},
		Recurrence: model.Recurrence{
			Pattern: model.PatternWeekly,
			Days:    []string{"TU", "TH"},
		},
	}
}

func TestRRule(t *testing.T) {
	tests := []struct {
		name string
		rec  model.Recurrence
		want string
	}{
		{
			name: "non-recurring",
			rec:  model.Recurrence{Pattern: model.PatternNone},
			want: "",
		},
		{
			name: "weekly with days",
			rec:  model.Recurrence{Pattern: model.PatternWeekly, Days: []string{"TU", "TH"}},
			want: "FREQ=WEEKLY;BYDAY=TU,TH",
		},
		{
			name: "daily with count",
			rec:  model.Recurrence{Pattern: model.PatternDaily, Count: 5},
			want: "FREQ=DAILY;COUNT=5",
		},
		{
			name: "weekly with end date",
			rec: model.Recurrence{
				Pattern: model.PatternWeekly,
				Days:    []string{"MO"},
				EndDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			},
			want: "FREQ=WEEKLY;BYDAY=MO;UNTIL=20250630T235900Z",
		},
		{
			name: "end date beats count when both set",
			rec: model.Recurrence{
				Pattern: model.PatternMonthly,
				Count:   12,
				EndDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			},
			want: "FREQ=MONTHLY;UNTIL=20251201T235900Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := export.RRule(tt.rec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRRule_EndDateInclusive(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// A TU/TH 5pm meeting ending on Thursday 2025-03-20 must still
	// occur on that Thursday.
	rule, err := export.RRule(model.Recurrence{
		Pattern: model.PatternWeekly,
		Days:    []string{"TU", "TH"},
		EndDate: time.Date(2025, 3, 20, 0, 0, 0, 0, loc),
	})
	if err != nil {
		t.Fatalf("RRule() error = %v", err)
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		t.Fatalf("StrToRRule(%q): %v", rule, err)
	}
	r.DTStart(time.Date(2025, 3, 4, 17, 0, 0, 0, loc))

	occurrences := r.All()
	if len(occurrences) == 0 {
		t.Fatal("no occurrences expanded")
	}
	last := occurrences[len(occurrences)-1].In(loc)
	if y, m, d := last.Date(); y != 2025 || m != time.March || d != 20 {
		t.Errorf("last occurrence = %v, want the end date 2025-03-20", last)
	}
}

func TestGoogleCalendarLink(t *testing.T) {
	link := export.GoogleCalendarLink(sampleEvent())

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := u.Query()

	if q.Get("action") != "TEMPLATE" {
		t.Errorf("missing action param")
	}
	if q.Get("text") != "Slug Ai Meeting" {
		t.Errorf("unexpected title: %q", q.Get("text"))
	}
	if q.Get("dates") != "20250220T170000/20250220T180000" {
		t.Errorf("unexpected dates: %q", q.Get("dates"))
	}
	if q.Get("ctz") != "America/Los_Angeles" {
		t.Errorf("unexpected ctz: %q", q.Get("ctz"))
	}
	if q.Get("recur") != "RRULE:FREQ=WEEKLY;BYDAY=TU,TH" {
		t.Errorf("unexpected recur: %q", q.Get("recur"))
	}
	if q.Get("add") != "slugs@ucsc.edu" {
		t.Errorf("unexpected attendees: %q", q.Get("add"))
	}
}

func TestGoogleCalendarLink_AllDay(t *testing.T) {
	ev := sampleEvent()
	ev.IsAllDay = true
	ev.StartTime = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	ev.EndTime = time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	ev.Recurrence = model.Recurrence{Pattern: model.PatternNone}

	u, _ := url.Parse(export.GoogleCalendarLink(ev))
	q := u.Query()

	// Date-only bounds with exclusive end day.
	if q.Get("dates") != "20250315/20250316" {
		t.Errorf("unexpected all-day dates: %q", q.Get("dates"))
	}
	if q.Get("ctz") != "" {
		t.Errorf("ctz should be absent for all-day events")
	}
}

func TestOutlookLink(t *testing.T) {
	u, err := url.Parse(export.OutlookLink(sampleEvent()))
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := u.Query()

	if q.Get("rru") != "addevent" {
		t.Errorf("missing rru param")
	}
	if q.Get("subject") != "Slug Ai Meeting" {
		t.Errorf("unexpected subject: %q", q.Get("subject"))
	}
	if q.Get("startdt") != "2025-02-20T17:00:00-08:00" {
		t.Errorf("unexpected startdt: %q", q.Get("startdt"))
	}
	if q.Get("allday") != "" {
		t.Errorf("allday should be absent for timed events")
	}
}

func TestICalString(t *testing.T) {
	ical, err := export.ICalString(sampleEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"SUMMARY:Slug Ai Meeting",
		"RRULE:FREQ=WEEKLY;BYDAY=TU,TH",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ical, want) {
			t.Errorf("ical output missing %q:\n%s", want, ical)
		}
	}
}
