package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lectioassist-backend/internal/calendar"
	"lectioassist-backend/internal/scrapers/lectio"
	"strings"
)

const errorPrefix = "Error: "

// ErrInvalidInput is wrapped by every error caused by the caller's arguments.
var ErrInvalidInput = errors.New("invalid input")

// NormalizeUsername removes the whitespace that tends to stick to pasted
// credentials.
func NormalizeUsername(username string) string {
	return strings.Trim(username, " \n\t\r")
}

func render(out string, err error) string {
	if err != nil {
		return errorPrefix + err.Error()
	}
	return out
}

func (s Service) serialize(id string, value any) (string, error) {
	serialized, err := json.Marshal(value)
	if err != nil {
		s.tel.ReportBroken(report_json_serialize, fmt.Errorf("%s: %w", id, err))
		return "", fmt.Errorf("serialize: %w", err)
	}
	return string(serialized), nil
}

// scrapeFailed reports a failed scrape, the scraper has already reported the
// underlying cause.
func (s Service) scrapeFailed(id string, err error, institution string) {
	s.tel.ReportWarning(id, err, institution)
}

// normalizeInstitution trims the institution id every operation puts into a
// portal path.
func normalizeInstitution(institution string) (string, error) {
	institution = strings.TrimSpace(institution)
	if institution == "" {
		return "", fmt.Errorf("%w: institution id is required", ErrInvalidInput)
	}
	return institution, nil
}

func validateWeek(week *int) error {
	if week != nil && (*week < 1 || *week > 53) {
		return fmt.Errorf("%w: week must be between 1 and 53, got %d", ErrInvalidInput, *week)
	}
	return nil
}

func (s Service) listInstitutions(ctx context.Context) (string, error) {
	directory, err := s.api.Institutions(ctx)
	if err != nil {
		s.scrapeFailed(report_lectio_institutions, err, "")
		return "", err
	}
	return s.serialize(report_lectio_institutions, directory)
}

// ListInstitutions returns the institution directory as a json object.
func (s Service) ListInstitutions(ctx context.Context) string {
	return render(s.listInstitutions(ctx))
}

// IsSessionActive returns true once any login has been performed.
func (s Service) IsSessionActive() bool {
	return s.session.IsInitialized()
}

type loginEnvelope struct {
	Status   string `json:"status"`
	Verified *bool  `json:"verified,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (s Service) login(ctx context.Context, institution, username, password string) (lectio.LoginResult, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return lectio.LoginResult{}, err
	}
	username = NormalizeUsername(username)
	if username == "" {
		return lectio.LoginResult{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	result, err := s.api.Login(ctx, institution, username, password)
	if err != nil {
		s.scrapeFailed(report_lectio_login, err, institution)
		return lectio.LoginResult{}, err
	}
	if !result.Verified {
		s.tel.ReportWarning(report_lectio_login, "login did not reach the dashboard", institution, username)
	}
	return result, nil
}

func (s Service) renderLogin(result lectio.LoginResult, err error) string {
	envelope := loginEnvelope{Status: "success", Verified: &result.Verified}
	if err != nil {
		envelope = loginEnvelope{Status: "error", Message: err.Error()}
	}
	out, err := s.serialize(report_lectio_login, envelope)
	if err != nil {
		return render("", err)
	}
	return out
}

// Login installs a new session and returns the login envelope:
// {"status":"success","verified":bool} or {"status":"error","message":"..."}.
func (s Service) Login(ctx context.Context, institution, username, password string) string {
	return s.renderLogin(s.login(ctx, institution, username, password))
}

func (s Service) dashboard(ctx context.Context, institution string) (string, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return "", err
	}
	digest, err := s.api.Dashboard(ctx, institution)
	if err != nil {
		s.scrapeFailed(report_lectio_dashboard, err, institution)
		return "", err
	}
	return digest, nil
}

// GetDashboard returns the dashboard announcements as plain text.
func (s Service) GetDashboard(ctx context.Context, institution string) string {
	return render(s.dashboard(ctx, institution))
}

func (s Service) scheduleEntries(ctx context.Context, institution string, week *int) ([]lectio.ScheduleEntry, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return nil, err
	}
	err = validateWeek(week)
	if err != nil {
		return nil, err
	}
	entries, err := s.api.Schedule(ctx, institution, week)
	if err != nil {
		s.scrapeFailed(report_lectio_schedule, err, institution)
		return nil, err
	}
	return entries, nil
}

func (s Service) schedule(ctx context.Context, institution string, week *int) (string, error) {
	entries, err := s.scheduleEntries(ctx, institution, week)
	if err != nil {
		return "", err
	}
	return s.serialize(report_lectio_schedule, entries)
}

// GetSchedule returns the lessons of a week (the current week if week is nil)
// as a json array.
func (s Service) GetSchedule(ctx context.Context, institution string, week *int) string {
	return render(s.schedule(ctx, institution, week))
}

func (s Service) exportSchedule(ctx context.Context, institution string, week *int) (string, error) {
	entries, err := s.scheduleEntries(ctx, institution, week)
	if err != nil {
		return "", err
	}
	document, skipped := calendar.Export(entries, s.time.Location(), s.time.Now())
	if skipped > 0 {
		s.tel.ReportDebug(report_lectio_export, "lessons without a readable date or time", skipped)
	}
	return document, nil
}

// ExportSchedule returns the lessons of a week as an iCalendar document.
func (s Service) ExportSchedule(ctx context.Context, institution string, week *int) string {
	return render(s.exportSchedule(ctx, institution, week))
}

func (s Service) absence(ctx context.Context, institution string) (string, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return "", err
	}
	records, err := s.api.Absence(ctx, institution)
	if err != nil {
		s.scrapeFailed(report_lectio_absence, err, institution)
		return "", err
	}
	return s.serialize(report_lectio_absence, records)
}

// GetAbsence returns the absence statistics as a json object keyed by team.
func (s Service) GetAbsence(ctx context.Context, institution string) string {
	return render(s.absence(ctx, institution))
}

func (s Service) assignments(ctx context.Context, institution string) (string, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return "", err
	}
	records, err := s.api.Assignments(ctx, institution)
	if err != nil {
		s.scrapeFailed(report_lectio_assignments, err, institution)
		return "", err
	}
	return s.serialize(report_lectio_assignments, records)
}

// GetAssignments returns the assignments as a json array.
func (s Service) GetAssignments(ctx context.Context, institution string) string {
	return render(s.assignments(ctx, institution))
}

func (s Service) grades(ctx context.Context, institution string) (string, error) {
	institution, err := normalizeInstitution(institution)
	if err != nil {
		return "", err
	}
	report, err := s.api.Grades(ctx, institution)
	if err != nil {
		s.scrapeFailed(report_lectio_grades, err, institution)
		return "", err
	}
	return s.serialize(report_lectio_grades, report)
}

// GetGrades returns {"grades": [...], "grade_notes": [...]}.
func (s Service) GetGrades(ctx context.Context, institution string) string {
	return render(s.grades(ctx, institution))
}
