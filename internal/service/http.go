package service

import (
	"errors"
	"fmt"
	"io"
	"lectioassist-backend/internal/scrapers/lectio"
	"lectioassist-backend/pkg/serviceutil"
	"net/http"
	"strconv"
	"time"
)

const (
	contentJson     = "application/json; charset=utf-8"
	contentText     = "text/plain; charset=utf-8"
	contentCalendar = "text/calendar; charset=utf-8"
)

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case lectio.IsKind(err, lectio.KindSessionMissing):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func writeBody(w http.ResponseWriter, contentType string, status int, body string) {
	if status != http.StatusOK {
		contentType = contentText
	}
	w.Header().Set("content-type", contentType)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func weekParam(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return nil, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: week %q is not a number", ErrInvalidInput, raw)
	}
	return &week, nil
}

type operation = func(r *http.Request) (string, error)

func route(contentType string, op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := op(r)
		writeBody(w, contentType, statusFor(err), render(out, err))
	}
}

func (s Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var result lectio.LoginResult
	err := r.ParseForm()
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	} else {
		result, err = s.login(
			r.Context(),
			r.PostFormValue("institution"),
			r.PostFormValue("username"),
			r.PostFormValue("password"),
		)
	}

	w.Header().Set("content-type", contentJson)
	w.WriteHeader(statusFor(err))
	io.WriteString(w, s.renderLogin(result, err))
}

// Handler exposes the service over http. Response bodies are exactly what the
// corresponding Service method returns. Requests without the access token (if
// one is configured) are rejected with 401 before reaching any route.
func (s Service) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/institutions", route(contentJson, func(r *http.Request) (string, error) {
		return s.listInstitutions(r.Context())
	}))
	mux.HandleFunc("GET /api/session", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, contentJson, http.StatusOK, strconv.FormatBool(s.IsSessionActive()))
	})
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("GET /api/{institution}/dashboard", route(contentText, func(r *http.Request) (string, error) {
		return s.dashboard(r.Context(), r.PathValue("institution"))
	}))
	mux.HandleFunc("GET /api/{institution}/schedule", route(contentJson, func(r *http.Request) (string, error) {
		week, err := weekParam(r)
		if err != nil {
			return "", err
		}
		return s.schedule(r.Context(), r.PathValue("institution"), week)
	}))
	mux.HandleFunc("GET /api/{institution}/schedule.ics", route(contentCalendar, func(r *http.Request) (string, error) {
		week, err := weekParam(r)
		if err != nil {
			return "", err
		}
		return s.exportSchedule(r.Context(), r.PathValue("institution"), week)
	}))
	mux.HandleFunc("GET /api/{institution}/absence", route(contentJson, func(r *http.Request) (string, error) {
		return s.absence(r.Context(), r.PathValue("institution"))
	}))
	mux.HandleFunc("GET /api/{institution}/assignments", route(contentJson, func(r *http.Request) (string, error) {
		return s.assignments(r.Context(), r.PathValue("institution"))
	}))
	mux.HandleFunc("GET /api/{institution}/grades", route(contentJson, func(r *http.Request) (string, error) {
		return s.grades(r.Context(), r.PathValue("institution"))
	}))

	return s.instrument(serviceutil.VerifyAccessToken(s.accessToken, mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument reports every request with its status and duration.
func (s Service) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		s.tel.ReportDebug(
			report_http_request,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start).String(),
		)
		if recorder.status >= http.StatusInternalServerError {
			s.tel.ReportWarning(report_http_request, r.Method, r.URL.Path, recorder.status)
		}
	})
}
