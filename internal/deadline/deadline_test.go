package deadline

import (
	"fmt"
	"lectioassist-backend/internal/components/chrono"
	"math"
	"strings"
	"testing"
	"time"

	random "github.com/mazen160/go-random"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.October, 7, 12, 0, 0, 0, chrono.Copenhagen())

func format(t time.Time) string {
	return t.Format(Layout)
}

func TestParse(t *testing.T) {
	cases := []struct {
		text     string
		expected time.Time
	}{
		{text: "31/12-2099 23:59", expected: time.Date(2099, 12, 31, 23, 59, 0, 0, chrono.Copenhagen())},
		{text: "01/01-2000 00:00", expected: time.Date(2000, 1, 1, 0, 0, 0, 0, chrono.Copenhagen())},
		{text: " 7/3-2025 8:05 ", expected: time.Date(2025, 3, 7, 8, 5, 0, 0, chrono.Copenhagen())},
	}
	for _, test := range cases {
		parsed, err := Parse(test.text, chrono.Copenhagen())
		require.NoError(t, err, test.text)
		require.True(t, test.expected.Equal(parsed), test.text)
	}

	for _, text := range []string{"", "i morgen", "2099-12-31 23:59", "31/12/2099 23:59"} {
		_, err := Parse(text, chrono.Copenhagen())
		require.Error(t, err, text)
	}
}

func TestUrgencyScenarios(t *testing.T) {
	withEffort := Urgency(now, "31/12-2099 23:59", 2)
	withoutEffort := Urgency(now, "31/12-2099 23:59", 0)
	require.Greater(t, withEffort, 0.0)
	require.Less(t, withEffort, withoutEffort)

	require.Equal(t, 0.0, Urgency(now, "01/01-2000 00:00", 0))
	require.Equal(t, Passed, Countdown(now, "01/01-2000 00:00"))
}

func TestUrgencyFormula(t *testing.T) {
	due := format(now.Add(90 * time.Minute))
	require.InDelta(t, 1.0/(90.0+1.5), Urgency(now, due, 1.5), 1e-12)
}

func TestUrgencyPastIsZero(t *testing.T) {
	for _, offset := range []time.Duration{0, 30 * time.Second, -time.Minute, -48 * time.Hour} {
		due := now.Add(offset)
		require.Equal(t, 0.0, Urgency(now, format(due), 3), offset.String())
	}
}

func TestUrgencyMonotonic(t *testing.T) {
	for _, effort := range []float64{0, 0.5, 4} {
		previous := Urgency(now, format(now.Add(time.Minute)), effort)
		for minutes := 2; minutes < 60*24*14; minutes += 37 {
			current := Urgency(now, format(now.Add(time.Duration(minutes)*time.Minute)), effort)
			require.LessOrEqual(t, current, previous, fmt.Sprintf("effort=%v minutes=%d", effort, minutes))
			previous = current
		}
	}
}

func TestUrgencyUnparsable(t *testing.T) {
	for i := 0; i < 50; i++ {
		garbage, err := random.String(1 + i%20)
		require.NoError(t, err)
		for _, effort := range []float64{0, 1.25, 100} {
			require.Equal(t, UnparsableUrgency, Urgency(now, garbage, effort), garbage)
			require.Equal(t, Passed, Countdown(now, garbage), garbage)
		}
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		offset   time.Duration
		expected string
	}{
		{offset: 3*24*time.Hour + 4*time.Hour + 5*time.Minute, expected: "Days: 3, Hours: 4, Minutes: 5"},
		{offset: 24 * time.Hour, expected: "Days: 1, Hours: 0, Minutes: 0"},
		{offset: 23*time.Hour + 59*time.Minute, expected: "Hours: 23, Minutes: 59"},
		{offset: 2 * time.Hour, expected: "Hours: 2, Minutes: 0"},
		{offset: 59 * time.Minute, expected: "Minutes: 59"},
		{offset: time.Minute, expected: "Minutes: 1"},
		{offset: 0, expected: Passed},
		{offset: -time.Hour, expected: Passed},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, Countdown(now, format(now.Add(test.offset))), test.offset.String())
	}
}

func TestCountdownUnderADayHasNoDays(t *testing.T) {
	for minutes := 1; minutes < 24*60; minutes += 7 {
		out := Countdown(now, format(now.Add(time.Duration(minutes)*time.Minute)))
		require.NotContains(t, out, "Days")
		require.NotContains(t, out, "-")
		require.True(t, strings.HasPrefix(out, "Hours") || strings.HasPrefix(out, "Minutes"), out)
	}
}

func FuzzDeadline(f *testing.F) {
	f.Add("9/10-2024 12:00", 1.5)
	f.Add("7/10-2024 11:59", 0.0)
	f.Add("31/12-2099 23:59", 100.0)
	f.Add("not a deadline", 2.0)

	f.Fuzz(func(t *testing.T, text string, effort float64) {
		if effort < 0 || math.IsNaN(effort) || math.IsInf(effort, 0) {
			t.Skip()
		}

		urgency := Urgency(now, text, effort)
		require.False(t, math.IsNaN(urgency))
		require.GreaterOrEqual(t, urgency, 0.0)
		if _, err := Parse(text, now.Location()); err != nil {
			require.Equal(t, UnparsableUrgency, urgency)
		}

		countdown := Countdown(now, text)
		require.NotContains(t, countdown, "-")
		if urgency == 0 || urgency == UnparsableUrgency {
			require.Equal(t, Passed, countdown)
		}
	})
}
