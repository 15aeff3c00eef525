// Package export renders events into downloadable formats.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stpnv0/TalkWave/internal/domain"
)

const defaultEventDuration = 2 * time.Hour

// EventICS renders the event as an iCalendar file so attendees can put it in
// their calendars. The extended EventDate is preferred over the record
// timestamp, matching the upcoming filter.
func EventICS(event *domain.Event) ([]byte, error) {
	start, err := eventStart(event)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TalkWave//EN")

	ve := cal.AddEvent(event.ID)
	ve.SetCreatedTime(time.Now())
	ve.SetDtStampTime(time.Now())
	ve.SetStartAt(start)
	ve.SetEndAt(start.Add(defaultEventDuration))
	ve.SetSummary(event.Title)
	if event.Description != "" {
		ve.SetDescription(event.Description)
	}
	if event.Location != "" {
		ve.SetLocation(event.Location)
	}
	if event.Website != "" {
		ve.SetURL(event.Website)
	}

	return []byte(cal.Serialize()), nil
}

func eventStart(event *domain.Event) (time.Time, error) {
	if event.EventDate != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
			if ts, err := time.Parse(layout, event.EventDate); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable event date %q", event.EventDate)
	}
	if event.Date.IsZero() {
		return time.Time{}, fmt.Errorf("event %s has no date", event.ID)
	}
	return event.Date, nil
}
