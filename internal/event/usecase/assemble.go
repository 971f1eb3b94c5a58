package usecase

import (
	"fmt"

	"calendarize/internal/event"
	"calendarize/internal/model"
	"calendarize/pkg/dateparse"
)

// assembleEvent builds the final Event from normalized fields, snapping
// all-day boundaries and rejecting inverted ranges.
func assembleEvent(n normalized, rec model.Recurrence) (model.Event, error) {
	start, end := n.Start, n.End
	if n.IsAllDay {
		start = dateparse.StartOfDay(start)
		end = dateparse.EndOfDay(end)
	}
	if end.Before(start) {
		return model.Event{}, fmt.Errorf("%w: %q ends %s before it starts %s",
			event.ErrInvertedTimeRange, n.Title, end.Format("2006-01-02 15:04"), start.Format("2006-01-02 15:04"))
	}

	return model.Event{
		Title:       n.Title,
		IsAllDay:    n.IsAllDay,
		StartTime:   start,
		EndTime:     end,
		TimeZone:    n.TimeZone,
		Description: n.Description,
		Location:    n.Location,
		Attendees:   n.Attendees,
		Recurrence:  rec,
	}, nil
}
