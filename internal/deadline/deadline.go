// Package deadline derives urgency scores and countdowns from the deadline text
// lectio prints in assignment tables ("31/12-2099 23:59").
package deadline

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Layout is day-first, 24-hour and has no zero padding requirement on day/month.
	Layout = "2/1-2006 15:04"

	// UnparsableUrgency is returned by Urgency when the deadline cannot be read,
	// an unreadable deadline is treated as urgent.
	UnparsableUrgency = 10.0

	// Passed is returned by Countdown for past or unreadable deadlines.
	Passed = "deadline passed"

	effortWeight = 1.0
)

// Parse reads `text` in Layout, interpreted in `loc`.
func Parse(text string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(Layout, strings.TrimSpace(text), loc)
}

// MinutesUntil returns the whole minutes from `now` until the deadline in `text`,
// truncated toward zero. The deadline is interpreted in now's location.
func MinutesUntil(now time.Time, text string) (int64, bool) {
	due, err := Parse(text, now.Location())
	if err != nil {
		return 0, false
	}
	return int64(due.Sub(now) / time.Minute), true
}

// Urgency scores a deadline, higher is more urgent.
//
//   - unparsable deadline: UnparsableUrgency
//   - deadline passed (minutes until due <= 0): 0
//   - otherwise: 1 / (minutes until due + effortWeight * effortHours)
func Urgency(now time.Time, text string, effortHours float64) float64 {
	minutes, ok := MinutesUntil(now, text)
	if !ok {
		return UnparsableUrgency
	}
	if minutes <= 0 {
		return 0
	}
	return 1 / (float64(minutes) + effortWeight*effortHours)
}

// Countdown renders the time left until the deadline, only non-zero leading
// components are included.
func Countdown(now time.Time, text string) string {
	minutes, ok := MinutesUntil(now, text)
	if !ok || minutes <= 0 {
		return Passed
	}

	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	mins := minutes % 60

	switch {
	case days > 0:
		return fmt.Sprintf("Days: %d, Hours: %d, Minutes: %d", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("Hours: %d, Minutes: %d", hours, mins)
	default:
		return fmt.Sprintf("Minutes: %d", mins)
	}
}
