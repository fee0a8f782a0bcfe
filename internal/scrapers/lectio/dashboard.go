package lectio

import (
	"context"
	"lectioassist-backend/pkg/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Dashboard returns the "aktuelt" announcements of the front page, one line per
// table row.
func (s Scraper) Dashboard(ctx context.Context, institution string) (string, error) {
	_, doc, err := s.authenticatedDocument(
		ctx,
		report_client_dashboard,
		opDashboard,
		institutionPath(institution, "forside.aspx"),
		nil,
	)
	if err != nil {
		return "", err
	}

	digest, err := parseDashboard(doc)
	if err != nil {
		s.tel.ReportWarning(report_client_dashboard, err)
		return "", err
	}
	return digest, nil
}

func parseDashboard(doc *goquery.Document) (string, error) {
	section := doc.Find(dashboardSection).First()
	if section.Length() == 0 {
		return "", sectionNotFound(opDashboard, dashboardSection)
	}

	var digest strings.Builder
	section.Find("tr").Each(func(_ int, row *goquery.Selection) {
		digest.WriteString(strings.TrimSpace(htmlutil.GetTextJoined(row.Get(0), " ")))
		digest.WriteString("\n")
	})
	return digest.String(), nil
}
