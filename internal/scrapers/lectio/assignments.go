package lectio

import (
	"context"
	"fmt"
	"lectioassist-backend/internal/deadline"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const assignmentRowLength = 11

// Assignments returns every assignment row with an urgency score and a
// countdown appended to its deadline.
func (s Scraper) Assignments(ctx context.Context, institution string) ([]AssignmentRecord, error) {
	_, doc, err := s.authenticatedDocument(
		ctx,
		report_client_assignments,
		opAssignments,
		institutionPath(institution, "OpgaverElev.aspx"),
		nil,
	)
	if err != nil {
		return nil, err
	}

	records := s.parseAssignments(doc, s.time.Now())
	s.tel.ReportCount(report_client_assignments, int64(len(records)))
	return records, nil
}

func (s Scraper) parseAssignments(doc *goquery.Document, now time.Time) []AssignmentRecord {
	records := []AssignmentRecord{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < assignmentRowLength {
			s.tel.ReportDebug(report_client_assignments, rowShapeMismatch(opAssignments, len(cells), assignmentRowLength))
			return
		}

		due := cells[3]
		hours := parseHours(cells[4])
		records = append(records, AssignmentRecord{
			Week:           cells[0],
			Team:           cells[1],
			Title:          cells[2],
			Deadline:       fmt.Sprintf("%s (%s)", due, deadline.Countdown(now, due)),
			StudentTime:    hours,
			Status:         cells[5],
			AbsencePercent: cells[6],
			FollowUp:       cells[7],
			AssignmentNote: cells[8],
			Grade:          cells[9],
			StudentNote:    cells[10],
			Urgency:        deadline.Urgency(now, due, hours),
		})
	})
	return records
}
