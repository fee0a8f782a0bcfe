package service

import (
	"context"
	"lectioassist-backend/internal/components/assert"
	"lectioassist-backend/internal/components/chrono"
	"lectioassist-backend/internal/components/telemetry"
	"lectioassist-backend/internal/scrapers/lectio"
)

const (
	report_lectio_institutions = "lectio.institutions"
	report_lectio_login        = "lectio.login"
	report_lectio_dashboard    = "lectio.dashboard"
	report_lectio_schedule     = "lectio.schedule"
	report_lectio_absence      = "lectio.absence"
	report_lectio_assignments  = "lectio.assignments"
	report_lectio_grades       = "lectio.grades"
	report_lectio_export       = "lectio.export-schedule"

	report_json_serialize = "json.serialize"
	report_http_request   = "http.request"
)

// LectioAPI describes every scraping operation the service exposes. It is
// implemented by lectio.Scraper.
//
// note: fault injection point
type LectioAPI interface {
	// Institutions returns the public institution directory, id -> name.
	Institutions(ctx context.Context) (map[string]string, error)

	// Login replaces the current session, it only fails if the portal could
	// not be reached or the login page had no validation token.
	Login(ctx context.Context, institution, username, password string) (lectio.LoginResult, error)

	Dashboard(ctx context.Context, institution string) (string, error)
	Schedule(ctx context.Context, institution string, week *int) ([]lectio.ScheduleEntry, error)
	Absence(ctx context.Context, institution string) (map[string]lectio.AbsenceRecord, error)
	Assignments(ctx context.Context, institution string) ([]lectio.AssignmentRecord, error)
	Grades(ctx context.Context, institution string) (lectio.GradeReport, error)
}

// SessionAPI reports whether a session has been installed, it is implemented
// by *lectio.SessionStore.
type SessionAPI interface {
	IsInitialized() bool
}

// Service renders the results of LectioAPI into the text every caller (cli,
// http) receives: json on success, "Error: ..." on failure.
type Service struct {
	api     LectioAPI
	session SessionAPI
	time    chrono.TimeAPI
	tel     telemetry.API

	accessToken string
}

type serviceConfig struct {
	time        chrono.TimeAPI
	tel         telemetry.API
	accessToken string
}

type Option func(cfg *serviceConfig)

func WithCustomTimeAPI(time chrono.TimeAPI) Option {
	return func(cfg *serviceConfig) {
		cfg.time = time
	}
}

func WithCustomTelemetryAPI(tel telemetry.API) Option {
	return func(cfg *serviceConfig) {
		cfg.tel = tel
	}
}

// WithAccessToken requires every http request to carry the bearer token.
func WithAccessToken(token string) Option {
	return func(cfg *serviceConfig) {
		cfg.accessToken = token
	}
}

// New creates a Service.
func New(api LectioAPI, session SessionAPI, options ...Option) Service {
	assert.NotNil(api, "lectio scraping API implementation")
	assert.NotNil(session, "session API implementation")

	cfg := serviceConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	s := Service{
		api:     api,
		session: session,
		time:    chrono.NewStandardTime(),
		tel:     telemetry.SlogAPI{},

		accessToken: cfg.accessToken,
	}
	if cfg.time != nil {
		s.time = cfg.time
	}
	if cfg.tel != nil {
		s.tel = cfg.tel
	}
	s.tel = telemetry.NewScopedAPI("service", s.tel)

	return s
}
