package lectio

import (
	"context"
	"lectioassist-backend/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	gradeTable         = "#s_m_Content_Content_karakterView_KarakterGV"
	gradeNoteTable     = "#s_m_Content_Content_karakterView_KarakterNoterGrid"
	gradeRowLength     = 7
	gradeNoteRowLength = 5
)

// Grades returns the grade table and the grade notes of the grade report page.
func (s Scraper) Grades(ctx context.Context, institution string) (GradeReport, error) {
	_, doc, err := s.authenticatedDocument(
		ctx,
		report_client_grades,
		opGrades,
		institutionPath(institution, "grades/grade_report.aspx"),
		nil,
	)
	if err != nil {
		return GradeReport{}, err
	}

	report := s.parseGrades(doc)
	s.tel.ReportCount(report_client_grades, int64(len(report.Grades)))
	return report, nil
}

// dataRows calls fn for every row matched by selector except the header row.
func dataRows(doc *goquery.Document, selector string, fn func(row *goquery.Selection)) {
	doc.Find(selector).Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		fn(row)
	})
}

func (s Scraper) parseGrades(doc *goquery.Document) GradeReport {
	report := GradeReport{
		Grades:     []GradeRecord{},
		GradeNotes: []GradeNoteRecord{},
	}

	dataRows(doc, gradeTable+" tr", func(row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < gradeRowLength {
			s.tel.ReportDebug(report_client_grades, rowShapeMismatch(opGrades, cells.Length(), gradeRowLength))
			return
		}
		report.Grades = append(report.Grades, GradeRecord{
			Team:             htmlutil.SelectionText(cells.Eq(0)),
			Subject:          htmlutil.SelectionText(cells.Eq(1)),
			FirstStandpoint:  gradeDetail(cells.Eq(2)),
			SecondStandpoint: gradeDetail(cells.Eq(3)),
			FinalYearGrade:   gradeDetail(cells.Eq(4)),
			InternalExam:     gradeDetail(cells.Eq(5)),
			FinalExam:        gradeDetail(cells.Eq(6)),
		})
	})

	dataRows(doc, gradeNoteTable+" tr", func(row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < gradeNoteRowLength {
			s.tel.ReportDebug(report_client_grades, rowShapeMismatch(opGrades, len(cells), gradeNoteRowLength))
			return
		}
		report.GradeNotes = append(report.GradeNotes, GradeNoteRecord{
			Team:      cells[0],
			GradeType: cells[1],
			Grade:     cells[2],
			Date:      cells[3],
			Note:      cells[4],
		})
	})

	return report
}

// gradeDetail reads the grade div of a cell, nil when the cell has no grade.
func gradeDetail(cell *goquery.Selection) *GradeDetail {
	div := cell.Find("div").First()
	if div.Length() == 0 {
		return nil
	}
	grade := htmlutil.SelectionText(div)
	if grade == "" {
		return nil
	}
	return &GradeDetail{
		Grade:  grade,
		Weight: parseWeight(div.AttrOr("title", "")),
	}
}
