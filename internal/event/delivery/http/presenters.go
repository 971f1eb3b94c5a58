package http

import (
	"errors"
	"time"

	"calendarize/internal/event"
	"calendarize/internal/model"
	"calendarize/pkg/response"
)

// --- Request DTOs ---

type convertReq struct {
	Text          string
	Timezone      string
	ReferenceTime time.Time
	Image         *event.ImageInput
	Insert        bool
}

func (r convertReq) validate() error {
	if r.Text == "" && r.Image == nil {
		return errors.New("provide some text or an image describing the event")
	}
	return nil
}

func (r convertReq) toInput() event.ConvertInput {
	return event.ConvertInput{
		Text:             r.Text,
		Image:            r.Image,
		ReferenceTime:    r.ReferenceTime,
		Timezone:         r.Timezone,
		InsertToCalendar: r.Insert,
	}
}

// --- Response DTOs ---

type recurrenceResp struct {
	Pattern string         `json:"pattern"`
	Days    []string       `json:"days,omitempty"`
	Count   int            `json:"count,omitempty"`
	EndDate *response.Date `json:"end_date,omitempty"`
}

type eventResp struct {
	Title       string            `json:"title"`
	IsAllDay    bool              `json:"is_all_day"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	TimeZone    string            `json:"time_zone"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Attendees   []string          `json:"attendees"`
	Recurrence  *recurrenceResp   `json:"recurrence,omitempty"`

	GcalLink         string `json:"gcal_link"`
	OutlookLink      string `json:"outlook_link"`
	ICalString       string `json:"ical_string"`
	CalendarHTMLLink string `json:"calendar_html_link,omitempty"`
}

type convertResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newConvertResp(out event.ConvertOutput) convertResp {
	resp := convertResp{Events: make([]eventResp, 0, len(out.Events))}
	for _, ce := range out.Events {
		resp.Events = append(resp.Events, newEventResp(ce))
	}
	return resp
}

func newEventResp(ce event.ConvertedEvent) eventResp {
	ev := ce.Event

	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return eventResp{
		Title:       ev.Title,
		IsAllDay:    ev.IsAllDay,
		StartTime:   response.DateTime(ev.StartTime),
		EndTime:     response.DateTime(ev.EndTime),
		TimeZone:    ev.TimeZone,
		Description: ev.Description,
		Location:    ev.Location,
		Attendees:   attendees,
		Recurrence:  newRecurrenceResp(ev.Recurrence),

		GcalLink:         ce.GcalLink,
		OutlookLink:      ce.OutlookLink,
		ICalString:       ce.ICalString,
		CalendarHTMLLink: ce.CalendarHTMLLink,
	}
}

func newRecurrenceResp(rec model.Recurrence) *recurrenceResp {
	if !rec.IsRecurring() {
		return nil
	}

	resp := &recurrenceResp{
		Pattern: string(rec.Pattern),
		Days:    rec.Days,
		Count:   rec.Count,
	}
	if !rec.EndDate.IsZero() {
		d := response.Date(rec.EndDate)
		resp.EndDate = &d
	}
	return resp
}
