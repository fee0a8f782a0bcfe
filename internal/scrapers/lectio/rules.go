package lectio

import (
	"fmt"
	"lectioassist-backend/pkg/htmlutil"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	fallbackTime     = "Time not found"
	fallbackRoom     = "Room not found"
	fallbackTeacher  = "Teacher not found"
	fallbackDay      = "Day not found"
	fallbackHomework = "No detailed homework provided"
)

// blobRule extracts a single field out of a free text blob. Rules are
// independent of each other, a rule that does not match yields its fallback.
type blobRule struct {
	field    string
	pattern  *regexp.Regexp
	extract  func(groups []string) string
	fallback string
	assign   func(entry *ScheduleEntry, value string)
}

func (r blobRule) apply(blob string) (string, bool) {
	groups := r.pattern.FindStringSubmatch(blob)
	if groups == nil {
		return r.fallback, false
	}
	return r.extract(groups), true
}

func firstGroup(groups []string) string {
	return strings.TrimSpace(groups[1])
}

var dayRule = blobRule{
	field:    "day",
	pattern:  regexp.MustCompile(`^\s*(ma|ti|on|to|fr)\b`),
	extract:  firstGroup,
	fallback: fallbackDay,
	assign:   func(e *ScheduleEntry, v string) { e.Day = v },
}

// lessonRules decompose the data-tooltip attribute of a schedule block.
var lessonRules = []blobRule{
	{
		field:   "status",
		pattern: regexp.MustCompile(`Ændret!|Aflyst!`),
		extract: func(groups []string) string {
			if groups[0] == "Aflyst!" {
				return StatusCancelled
			}
			return StatusChanged
		},
		fallback: StatusNormal,
		assign:   func(e *ScheduleEntry, v string) { e.Status = v },
	},
	{
		field:   "time",
		pattern: regexp.MustCompile(`(\d{2}:\d{2}) til (\d{2}:\d{2})`),
		extract: func(groups []string) string {
			return groups[1] + " - " + groups[2]
		},
		fallback: fallbackTime,
		assign:   func(e *ScheduleEntry, v string) { e.Time = v },
	},
	{
		field:    "room",
		pattern:  regexp.MustCompile(`Lokaler?: ([^\n]+)`),
		extract:  firstGroup,
		fallback: fallbackRoom,
		assign:   func(e *ScheduleEntry, v string) { e.Room = v },
	},
	{
		field:    "teacher",
		pattern:  regexp.MustCompile(`Lærere?: ([^\n]+)`),
		extract:  firstGroup,
		fallback: fallbackTeacher,
		assign:   func(e *ScheduleEntry, v string) { e.Teacher = v },
	},
	{
		field:   "description",
		pattern: regexp.MustCompile(`(?s)Øvrigt indhold:(.+?)(?:Note:|$)`),
		extract: firstGroup,
		assign:  func(e *ScheduleEntry, v string) { e.Description = v },
	},
	{
		field:   "resources",
		pattern: regexp.MustCompile(`Resource: (.+)`),
		extract: firstGroup,
		assign:  func(e *ScheduleEntry, v string) { e.Resources = v },
	},
	{
		field:   "notes",
		pattern: regexp.MustCompile(`(?s)Note:(.+)`),
		extract: firstGroup,
		assign:  func(e *ScheduleEntry, v string) { e.Notes = v },
	},
	dayRule,
	{
		field:   "date_time",
		pattern: regexp.MustCompile(`(\d{1,2}/\d{1,2}-\d{4})`),
		extract: firstGroup,
		assign:  func(e *ScheduleEntry, v string) { e.DateTime = v },
	},
}

// decomposeTooltip applies every lesson rule to a tooltip, it returns the
// fields that fell back.
func decomposeTooltip(blob string) (ScheduleEntry, []string) {
	var entry ScheduleEntry
	var missed []string
	for _, rule := range lessonRules {
		value, ok := rule.apply(blob)
		if !ok {
			missed = append(missed, rule.field)
		}
		rule.assign(&entry, value)
	}
	return entry, missed
}

var weightPattern = regexp.MustCompile(`Vægt:\s*([\d,]+)`)

// parseWeight reads the "Vægt: 1,5" weight from a grade tooltip, 1.0 if absent.
func parseWeight(title string) float64 {
	groups := weightPattern.FindStringSubmatch(title)
	if groups == nil {
		return 1
	}
	weight, err := parseDecimal(groups[1])
	if err != nil {
		return 1
	}
	return weight
}

func parseDecimal(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("not a finite number: %q", text)
	}
	return value, nil
}

// parseHours reads a danish decimal ("1,5"), 0 if it is not a number.
func parseHours(text string) float64 {
	hours, err := parseDecimal(text)
	if err != nil {
		return 0
	}
	return hours
}

// cellTexts returns the trimmed text of every td in a row.
func cellTexts(row *goquery.Selection) []string {
	cells := row.Find("td")
	texts := make([]string, cells.Length())
	cells.Each(func(i int, cell *goquery.Selection) {
		texts[i] = htmlutil.SelectionText(cell)
	})
	return texts
}
