package lectio

import (
	"bytes"
	"context"
	"fmt"
	"lectioassist-backend/internal/components/assert"
	"lectioassist-backend/internal/components/chrono"
	"lectioassist-backend/internal/components/telemetry"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	report_client_login           = "client.login"
	report_client_institutions    = "client.institutions"
	report_client_dashboard       = "client.dashboard"
	report_client_schedule        = "client.schedule"
	report_client_schedule_detail = "client.schedule-detail"
	report_client_absence         = "client.absence"
	report_client_assignments     = "client.assignments"
	report_client_grades          = "client.grades"
)

const (
	opLogin        = "login"
	opInstitutions = "institutions"
	opDashboard    = "dashboard"
	opSchedule     = "schedule"
	opAbsence      = "absence"
	opAssignments  = "assignments"
	opGrades       = "grades"
)

// Scraper implements every lectio operation on top of a SessionStore.
type Scraper struct {
	store *SessionStore
	opts  ClientOptions
	time  chrono.TimeAPI
	tel   telemetry.API
}

func NewScraper(store *SessionStore, opts ClientOptions, time chrono.TimeAPI, tel telemetry.API) Scraper {
	assert.NotNil(store, "session store")
	assert.NotNil(time, "time api")
	assert.NotNil(tel, "telemetry api")

	return Scraper{
		store: store,
		opts:  opts.withDefaults(),
		time:  time,
		tel:   telemetry.NewScopedAPI("lectio_scraper", tel),
	}
}

func institutionPath(institution, page string) string {
	return fmt.Sprintf("/lectio/%s/%s", url.PathEscape(institution), page)
}

// session snapshots the current client.
func (s Scraper) session(op string) (*Client, error) {
	client, ok := s.store.Get()
	if !ok {
		return nil, sessionMissing(op)
	}
	return client, nil
}

// fetchDocument GETs an endpoint and parses it, a failed request or a non-2xx
// status is a transport error.
func (s Scraper) fetchDocument(
	ctx context.Context,
	http *resty.Client,
	reportId, op, endpoint string,
	query url.Values,
) (*goquery.Document, error) {
	req := http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	res, err := req.Get(endpoint)
	if err != nil {
		s.tel.ReportBroken(reportId, fmt.Errorf("fetch: %w", err), endpoint)
		return nil, transportError(op, endpoint, err)
	}
	if !res.IsSuccess() {
		s.tel.ReportBroken(reportId, fmt.Errorf("fetch: status %d", res.StatusCode()), endpoint)
		return nil, statusError(op, endpoint, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		s.tel.ReportBroken(reportId, fmt.Errorf("parse: %w", err), endpoint)
		return nil, transportError(op, endpoint, err)
	}
	return doc, nil
}

// authenticatedDocument is fetchDocument using the current session.
func (s Scraper) authenticatedDocument(
	ctx context.Context,
	reportId, op, endpoint string,
	query url.Values,
) (*Client, *goquery.Document, error) {
	client, err := s.session(op)
	if err != nil {
		return nil, nil, err
	}
	doc, err := s.fetchDocument(ctx, client.Http, reportId, op, endpoint, query)
	if err != nil {
		return nil, nil, err
	}
	return client, doc, nil
}
