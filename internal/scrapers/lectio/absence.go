package lectio

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

const (
	absenceTable     = "table#s_m_Content_Content_SFTabStudentAbsenceDataTable"
	absenceRowLength = 9
)

// Absence returns the absence statistics keyed by team.
func (s Scraper) Absence(ctx context.Context, institution string) (map[string]AbsenceRecord, error) {
	_, doc, err := s.authenticatedDocument(
		ctx,
		report_client_absence,
		opAbsence,
		institutionPath(institution, "subnav/fravaerelev.aspx"),
		nil,
	)
	if err != nil {
		return nil, err
	}

	records, err := s.parseAbsence(doc)
	if err != nil {
		s.tel.ReportWarning(report_client_absence, err)
		return nil, err
	}
	s.tel.ReportCount(report_client_absence, int64(len(records)))
	return records, nil
}

func (s Scraper) parseAbsence(doc *goquery.Document) (map[string]AbsenceRecord, error) {
	table := doc.Find(absenceTable).First()
	if table.Length() == 0 {
		return nil, sectionNotFound(opAbsence, absenceTable)
	}

	records := map[string]AbsenceRecord{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < absenceRowLength {
			s.tel.ReportDebug(report_client_absence, rowShapeMismatch(opAbsence, len(cells), absenceRowLength))
			return
		}

		record := AbsenceRecord{
			Team:       cells[0],
			AsOf:       AbsenceDetail{Percent: cells[1], Modules: cells[2]},
			YearToDate: AbsenceDetail{Percent: cells[3], Modules: cells[4]},
		}
		if cells[5] != "" || cells[6] != "" || cells[7] != "" || cells[8] != "" {
			record.Writing = &WritingAbsence{
				AsOf:       AbsenceDetail{Percent: cells[5], Modules: cells[6]},
				YearToDate: AbsenceDetail{Percent: cells[7], Modules: cells[8]},
			}
		}
		records[record.Team] = record
	})
	return records, nil
}
