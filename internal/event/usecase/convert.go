package usecase

import (
	"context"
	"fmt"

	"calendarize/internal/event"
	"calendarize/internal/export"
	"calendarize/internal/model"
	"calendarize/pkg/gcalendar"
	"calendarize/pkg/llmprovider"
)

const (
	extractionTemperature = 0.2
	extractionMaxTokens   = 2048
)

func (uc *implUseCase) Convert(ctx context.Context, in event.ConvertInput) (event.ConvertOutput, error) {
	if in.Text == "" && in.Image == nil {
		return event.ConvertOutput{}, event.ErrEmptyInput
	}

	// Calendar insertion is a side effect, so those requests always go
	// through the full pipeline.
	useCache := uc.cache != nil && !in.InsertToCalendar
	var key string
	if useCache {
		key = cacheKey(in)
		if out, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "event.usecase.Convert: cache hit %s", key[:12])
			return out, nil
		}
	}

	raw, err := uc.requestExtraction(ctx, in)
	if err != nil {
		return event.ConvertOutput{}, err
	}

	events, err := uc.extractEvents(raw, in.Timezone)
	if err != nil {
		return event.ConvertOutput{}, err
	}

	out := event.ConvertOutput{Events: make([]event.ConvertedEvent, 0, len(events))}
	for _, ev := range events {
		converted, err := uc.buildArtifacts(ctx, ev, in.InsertToCalendar)
		if err != nil {
			return event.ConvertOutput{}, err
		}
		out.Events = append(out.Events, converted)
	}

	if useCache {
		uc.cache.Add(key, out)
	}
	return out, nil
}

func (uc *implUseCase) requestExtraction(ctx context.Context, in event.ConvertInput) (string, error) {
	timezone := in.Timezone
	if timezone == "" {
		timezone = uc.timezone
	}

	req := &llmprovider.Request{
		SystemInstruction: BuildExtractionPrompt(in.ReferenceTime, timezone),
		UserText:          in.Text,
		Temperature:       extractionTemperature,
		MaxTokens:         extractionMaxTokens,
	}
	if in.Image != nil {
		req.Image = &llmprovider.Image{MIMEType: in.Image.MIMEType, Data: in.Image.Data}
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.requestExtraction: %v", err)
		return "", fmt.Errorf("%w: %v", event.ErrTransport, err)
	}
	uc.l.Debugf(ctx, "event.usecase.requestExtraction: %s/%s returned %d bytes",
		resp.ProviderName, resp.ModelName, len(resp.Text))
	return resp.Text, nil
}

// extractEvents runs the sanitize, parse, normalize and assemble stages
// over the raw model output. Candidates are processed in document order
// and the first failure aborts the whole batch.
func (uc *implUseCase) extractEvents(raw, ambientTZ string) ([]model.Event, error) {
	if ambientTZ == "" {
		ambientTZ = uc.timezone
	}

	clean, err := sanitizeResponse(raw)
	if err != nil {
		return nil, err
	}
	candidates, err := parsePayload(clean)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(candidates))
	for i, c := range candidates {
		n, err := uc.normalizeCandidate(c, ambientTZ)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		rec, err := uc.normalizeRecurrence(c, n.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		ev, err := assembleEvent(n, rec)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (uc *implUseCase) buildArtifacts(ctx context.Context, ev model.Event, insert bool) (event.ConvertedEvent, error) {
	ical, err := export.ICalString(ev)
	if err != nil {
		return event.ConvertedEvent{}, fmt.Errorf("building ical for %q: %w", ev.Title, err)
	}

	converted := event.ConvertedEvent{
		Event:       ev,
		GcalLink:    export.GoogleCalendarLink(ev),
		OutlookLink: export.OutlookLink(ev),
		ICalString:  ical,
	}

	if insert && uc.calendar != nil {
		converted.CalendarHTMLLink = uc.tryInsertCalendarEvent(ctx, ev)
	}
	return converted, nil
}

// tryInsertCalendarEvent inserts the event into the configured Google
// calendar. Insertion failures are logged and swallowed: the conversion
// result is already complete without them.
func (uc *implUseCase) tryInsertCalendarEvent(ctx context.Context, ev model.Event) string {
	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Timezone:    ev.TimeZone,
		AllDay:      ev.IsAllDay,
		Attendees:   ev.Attendees,
	}
	if rule, err := export.RRule(ev.Recurrence); err == nil && rule != "" {
		req.Recurrence = []string{"RRULE:" + rule}
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.tryInsertCalendarEvent: %q: %v", ev.Title, err)
		return ""
	}
	uc.l.Infof(ctx, "event.usecase.tryInsertCalendarEvent: created %s", created.ID)
	return created.HtmlLink
}
