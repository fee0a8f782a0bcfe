// Package calendar renders scraped schedule weeks as iCalendar documents.
package calendar

import (
	"fmt"
	"lectioassist-backend/internal/deadline"
	"lectioassist-backend/internal/scrapers/lectio"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productId = "-//lectioassist//schedule//DA"

func eventStatus(status string) string {
	switch status {
	case lectio.StatusCancelled:
		return "CANCELLED"
	case lectio.StatusChanged:
		return "TENTATIVE"
	default:
		return "CONFIRMED"
	}
}

// eventUid is stable across exports of the same lesson.
func eventUid(entry lectio.ScheduleEntry) string {
	key := entry.DetailedLink
	if key == "" {
		key = fmt.Sprintf("%s|%s|%s", entry.DateTime, entry.Time, entry.ClassName)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// lessonSpan reads the start and end of a lesson, false if either the date or
// the time range is missing.
func lessonSpan(entry lectio.ScheduleEntry, loc *time.Location) (time.Time, time.Time, bool) {
	startText, endText, found := strings.Cut(entry.Time, " - ")
	if !found || entry.DateTime == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := deadline.Parse(entry.DateTime+" "+startText, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := deadline.Parse(entry.DateTime+" "+endText, loc)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func eventDescription(entry lectio.ScheduleEntry) string {
	var parts []string
	for _, part := range []string{entry.Description, entry.Homework, entry.Notes} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Export renders one event per lesson whose date and time could be read. It
// returns the document and the number of lessons that were skipped.
func Export(entries []lectio.ScheduleEntry, loc *time.Location, now time.Time) (string, int) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productId)

	skipped := 0
	for _, entry := range entries {
		start, end, ok := lessonSpan(entry, loc)
		if !ok {
			skipped++
			continue
		}

		event := cal.AddEvent(eventUid(entry))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(entry.ClassName)
		event.SetProperty(ics.ComponentPropertyStatus, eventStatus(entry.Status))
		if entry.Room != "" {
			event.SetLocation(entry.Room)
		}
		if description := eventDescription(entry); description != "" {
			event.SetDescription(description)
		}
		if entry.DetailedLink != "" {
			event.SetURL(entry.DetailedLink)
		}
	}

	return cal.Serialize(), skipped
}
