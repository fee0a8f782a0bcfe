package lectio

import (
	"bytes"
	"context"
	"fmt"
	"lectioassist-backend/pkg/htmlutil"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	scheduleBlocks  = "div.s2skemabrikcontainer a.s2skemabrik"
	classNameCard   = "span[data-lectiocontextcard]"
	homeworkSection = "div#s_m_Content_Content_tocAndToolbar_inlineHomeworkDiv"
	lessonContent   = "div.s2skemabrikcontent"
	lessonDate      = "2/1-2006"
)

var weekdays = map[time.Weekday]string{
	time.Monday:    "ma",
	time.Tuesday:   "ti",
	time.Wednesday: "on",
	time.Thursday:  "to",
	time.Friday:    "fr",
	time.Saturday:  "lø",
	time.Sunday:    "sø",
}

// scheduleQuery selects a week of the current year, lectio expects "WWYYYY".
func scheduleQuery(week, year int) url.Values {
	return url.Values{"week": {fmt.Sprintf("%02d%d", week, year)}}
}

// Schedule returns the lessons of a week (the current week if week is nil).
// Every lesson with a detail page is enriched with its homework and weekday, a
// detail page that fails to load leaves the lesson as it was.
func (s Scraper) Schedule(ctx context.Context, institution string, week *int) ([]ScheduleEntry, error) {
	var query url.Values
	if week != nil {
		query = scheduleQuery(*week, s.time.Now().Year())
	}

	client, doc, err := s.authenticatedDocument(
		ctx,
		report_client_schedule,
		opSchedule,
		institutionPath(institution, "SkemaNy.aspx"),
		query,
	)
	if err != nil {
		return nil, err
	}

	entries := s.parseSchedule(doc, client.BaseUrl)
	for i := range entries {
		entry := &entries[i]
		if entry.DetailedLink != "" {
			err := s.enrichLesson(ctx, client, entry)
			if err != nil {
				return nil, err
			}
		}
		if entry.Day == fallbackDay {
			entry.Day = weekdayOf(entry.DateTime)
		}
	}

	s.tel.ReportCount(report_client_schedule, int64(len(entries)))
	return entries, nil
}

func (s Scraper) parseSchedule(doc *goquery.Document, base *url.URL) []ScheduleEntry {
	entries := []ScheduleEntry{}
	doc.Find(scheduleBlocks).Each(func(_ int, block *goquery.Selection) {
		entry, missed := decomposeTooltip(block.AttrOr("data-tooltip", ""))
		for _, field := range missed {
			s.tel.ReportDebug(report_client_schedule, parseFallback(opSchedule, field))
		}

		entry.ClassName = htmlutil.SelectionText(block.Find(classNameCard).First())

		href := block.AttrOr("href", "")
		if href != "" {
			link, err := url.Parse(href)
			if err != nil {
				s.tel.ReportWarning(report_client_schedule, fmt.Errorf("parse lesson link: %w", err), href)
			} else {
				entry.DetailedLink = base.ResolveReference(link).String()
			}
		}

		entries = append(entries, entry)
	})
	return entries
}

// enrichLesson fills in homework and weekday from the lesson's detail page.
// Only cancellation of ctx is returned as an error.
func (s Scraper) enrichLesson(ctx context.Context, client *Client, entry *ScheduleEntry) error {
	link := entry.DetailedLink

	res, err := client.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		if ctx.Err() != nil {
			return transportError(opSchedule, link, ctx.Err())
		}
		s.tel.ReportWarning(report_client_schedule_detail, fmt.Errorf("fetch: %w", err), link)
		return nil
	}
	if !res.IsSuccess() {
		s.tel.ReportWarning(report_client_schedule_detail, fmt.Errorf("fetch: status %d", res.StatusCode()), link)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		s.tel.ReportWarning(report_client_schedule_detail, fmt.Errorf("parse: %w", err), link)
		return nil
	}
	applyLessonDetail(doc, entry)
	return nil
}

func applyLessonDetail(doc *goquery.Document, entry *ScheduleEntry) {
	homework := doc.Find(homeworkSection).First()
	if homework.Length() == 0 {
		entry.Homework = fallbackHomework
	} else {
		entry.Homework = strings.TrimSpace(htmlutil.GetTextJoined(homework.Get(0), " "))
	}

	content := doc.Find(lessonContent).First()
	if content.Length() == 0 {
		return
	}
	inner, err := content.Html()
	if err != nil {
		return
	}
	if day, ok := dayRule.apply(inner); ok {
		entry.Day = day
	}
}

// weekdayOf derives the weekday abbreviation of a "D/M-YYYY" date.
func weekdayOf(date string) string {
	parsed, err := time.Parse(lessonDate, date)
	if err != nil {
		return fallbackDay
	}
	return weekdays[parsed.Weekday()]
}
