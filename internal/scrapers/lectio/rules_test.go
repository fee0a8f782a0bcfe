package lectio

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func ruleFor(t testing.TB, field string) blobRule {
	for _, rule := range lessonRules {
		if rule.field == field {
			return rule
		}
	}
	t.Fatalf("no rule for field %s", field)
	return blobRule{}
}

func TestLessonRules(t *testing.T) {
	table := []struct {
		field    string
		blob     string
		expected string
		matched  bool
	}{
		{field: "status", blob: "Ændret!\n7/10-2024 08:15 til 09:45", expected: StatusChanged, matched: true},
		{field: "status", blob: "Aflyst!\n7/10-2024 08:15 til 09:45", expected: StatusCancelled, matched: true},
		{field: "status", blob: "7/10-2024 08:15 til 09:45", expected: StatusNormal},

		{field: "time", blob: "7/10-2024 08:15 til 09:45", expected: "08:15 - 09:45", matched: true},
		{field: "time", blob: "7/10-2024 8:15 til 9:45", expected: fallbackTime},

		{field: "room", blob: "Lokale: 12\nNote:", expected: "12", matched: true},
		{field: "room", blob: "Lokaler: 31, 32", expected: "31, 32", matched: true},
		{field: "room", blob: "Hold: 1a Da", expected: fallbackRoom},

		{field: "teacher", blob: "Lærer: Anders Andersen (AA)\nLokale: 12", expected: "Anders Andersen (AA)", matched: true},
		{field: "teacher", blob: "Lærere: AA, BB", expected: "AA, BB", matched: true},
		{field: "teacher", blob: "", expected: fallbackTeacher},

		{field: "description", blob: "Øvrigt indhold:\nLæs kapitel 3\nNote:\nHusk bogen", expected: "Læs kapitel 3", matched: true},
		{field: "description", blob: "Øvrigt indhold:\nLæs\nkapitel 3", expected: "Læs\nkapitel 3", matched: true},
		{field: "description", blob: "Lokale: 12", expected: ""},

		{field: "resources", blob: "Resource: Projektor\nLokale: 1", expected: "Projektor", matched: true},
		{field: "resources", blob: "Lokale: 1", expected: ""},

		{field: "notes", blob: "Note:\nHusk bogen\nog lommeregner", expected: "Husk bogen\nog lommeregner", matched: true},
		{field: "notes", blob: "Lokale: 1", expected: ""},

		{field: "day", blob: "ma 7/10", expected: "ma", matched: true},
		{field: "day", blob: "  fr 11/10", expected: "fr", matched: true},
		{field: "day", blob: "Ændret!\nma 7/10", expected: fallbackDay},
		{field: "day", blob: "fransk 7/10", expected: fallbackDay},

		{field: "date_time", blob: "Ændret!\n7/10-2024 08:15 til 09:45", expected: "7/10-2024", matched: true},
		{field: "date_time", blob: "08:15 til 09:45", expected: ""},
	}

	for _, row := range table {
		value, matched := ruleFor(t, row.field).apply(row.blob)
		require.Equal(t, row.expected, value, "%s: %q", row.field, row.blob)
		require.Equal(t, row.matched, matched, "%s: %q", row.field, row.blob)
	}
}

func TestDecomposeTooltipFallbacks(t *testing.T) {
	entry, missed := decomposeTooltip("")
	require.Equal(t, ScheduleEntry{
		Status:  StatusNormal,
		Teacher: fallbackTeacher,
		Room:    fallbackRoom,
		Time:    fallbackTime,
		Day:     fallbackDay,
	}, entry)
	require.Len(t, missed, len(lessonRules))
}

func TestParseHours(t *testing.T) {
	table := []struct {
		input    string
		expected float64
	}{
		{input: "1,5", expected: 1.5},
		{input: " 2.25 ", expected: 2.25},
		{input: "3", expected: 3},
		{input: "", expected: 0},
		{input: "ikke angivet", expected: 0},
		{input: "Inf", expected: 0},
		{input: "NaN", expected: 0},
	}
	for _, row := range table {
		require.Equal(t, row.expected, parseHours(row.input), row.input)
	}
}

func TestParseWeight(t *testing.T) {
	table := []struct {
		title    string
		expected float64
	}{
		{title: "Karakter: 7\nVægt: 2,0", expected: 2},
		{title: "Vægt:0,5", expected: 0.5},
		{title: "Karakter: 10", expected: 1},
		{title: "Vægt: ,", expected: 1},
		{title: "", expected: 1},
	}
	for _, row := range table {
		require.Equal(t, row.expected, parseWeight(row.title), row.title)
	}
}

func TestWeekdayOf(t *testing.T) {
	require.Equal(t, "ma", weekdayOf("7/10-2024"))
	require.Equal(t, "fr", weekdayOf("11/10-2024"))
	require.Equal(t, "sø", weekdayOf("13/10-2024"))
	require.Equal(t, fallbackDay, weekdayOf(""))
	require.Equal(t, fallbackDay, weekdayOf("32/10-2024"))
}

func TestScheduleQuery(t *testing.T) {
	require.Equal(t, "052024", scheduleQuery(5, 2024).Get("week"))
	require.Equal(t, "412024", scheduleQuery(41, 2024).Get("week"))
}

func TestInstitutionId(t *testing.T) {
	table := []struct {
		href string
		id   string
		ok   bool
	}{
		{href: "/lectio/123/default.aspx", id: "123", ok: true},
		{href: "https://www.lectio.dk/lectio/456/default.aspx", id: "456", ok: true},
		{href: "/lectio/", ok: false},
		{href: "/lectio", ok: false},
		{href: "", ok: false},
	}
	for _, row := range table {
		link, err := url.Parse(row.href)
		require.NoError(t, err)
		id, ok := institutionId(link)
		require.Equal(t, row.ok, ok, row.href)
		require.Equal(t, row.id, id, row.href)
	}
}

func TestMatchInstitutions(t *testing.T) {
	directory := map[string]string{
		"123": "Testgymnasium og HF",
		"456": "Andet Gymnasium",
		"789": "Absalon HF",
	}

	matches := MatchInstitutions(directory, "testgym", 2)
	require.Len(t, matches, 2)
	require.Equal(t, "123", matches[0].Id)

	matches = MatchInstitutions(directory, "789", 0)
	require.Len(t, matches, 3)
	require.Equal(t, "Absalon HF", matches[0].Name)

	require.Empty(t, MatchInstitutions(map[string]string{}, "x", 5))
}

func TestApplyLessonDetailDay(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
		<div class="s2skemabrikcontent">ti 8/10 08:15 til 09:45</div>
	</body></html>`))
	require.NoError(t, err)

	entry, _ := decomposeTooltip("ma 7/10-2024 08:15 til 09:45\nLærer: Anders Andersen (AA)")
	require.Equal(t, "ma", entry.Day)

	applyLessonDetail(doc, &entry)
	require.Equal(t, "ti", entry.Day, "the detail page replaces the tooltip's day")
	require.Equal(t, fallbackHomework, entry.Homework)

	empty, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)
	applyLessonDetail(empty, &entry)
	require.Equal(t, "ti", entry.Day, "a detail page without content keeps the day")
}
