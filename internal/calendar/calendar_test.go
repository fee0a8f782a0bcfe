package calendar

import (
	"lectioassist-backend/internal/components/chrono"
	"lectioassist-backend/internal/scrapers/lectio"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	now := time.Date(2024, 10, 7, 12, 0, 0, 0, chrono.Copenhagen())
	entries := []lectio.ScheduleEntry{
		{
			Status:       lectio.StatusChanged,
			ClassName:    "1a Da",
			Room:         "12",
			Description:  "Læs kapitel 3",
			Time:         "08:15 - 09:45",
			Homework:     "side 10-20",
			DateTime:     "7/10-2024",
			DetailedLink: "https://www.lectio.dk/lectio/123/aktivitet/aktivitetforside2.aspx?absid=1",
		},
		{
			Status:    lectio.StatusCancelled,
			ClassName: "1a Ma",
			Room:      "21",
			Time:      "10:00 - 11:30",
			DateTime:  "8/10-2024",
		},
		{
			Status:    lectio.StatusNormal,
			ClassName: "Ukendt",
			Time:      "Time not found",
			DateTime:  "9/10-2024",
		},
	}

	document, skipped := Export(entries, chrono.Copenhagen(), now)
	require.Equal(t, 1, skipped)

	cal, err := ics.ParseCalendar(strings.NewReader(document))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	danish := events[0]
	require.Equal(t, "1a Da", danish.GetProperty(ics.ComponentPropertySummary).Value)
	require.Equal(t, "12", danish.GetProperty(ics.ComponentPropertyLocation).Value)
	require.Equal(t, "TENTATIVE", danish.GetProperty(ics.ComponentPropertyStatus).Value)
	require.Equal(t, "20241007T061500Z", danish.GetProperty(ics.ComponentPropertyDtStart).Value)
	require.Equal(t, "20241007T074500Z", danish.GetProperty(ics.ComponentPropertyDtEnd).Value)

	maths := events[1]
	require.Equal(t, "CANCELLED", maths.GetProperty(ics.ComponentPropertyStatus).Value)
	require.Nil(t, maths.GetProperty(ics.ComponentPropertyDescription))

	again, _ := Export(entries, chrono.Copenhagen(), now)
	require.Equal(t, document, again, "exports of the same week are identical")
}

func TestEventUid(t *testing.T) {
	entry := lectio.ScheduleEntry{ClassName: "1a Da", Time: "08:15 - 09:45", DateTime: "7/10-2024"}
	require.Equal(t, eventUid(entry), eventUid(entry))

	moved := entry
	moved.DateTime = "8/10-2024"
	require.NotEqual(t, eventUid(entry), eventUid(moved))
}

func TestEventStatus(t *testing.T) {
	require.Equal(t, "CANCELLED", eventStatus(lectio.StatusCancelled))
	require.Equal(t, "TENTATIVE", eventStatus(lectio.StatusChanged))
	require.Equal(t, "CONFIRMED", eventStatus(lectio.StatusNormal))
	require.Equal(t, "CONFIRMED", eventStatus(""))
}
