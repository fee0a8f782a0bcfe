package lectio

import (
	"context"
	"fmt"
)

const (
	dashboardSection = "div#s_m_Content_Content_aktueltIsland_pa"
	validationField  = "input[name='__EVENTVALIDATION']"
)

func loginForm(username, password, token string) map[string]string {
	return map[string]string{
		"m$Content$username":       username,
		"m$Content$password":       password,
		"m$Content$passwordHidden": password,
		"__EVENTVALIDATION":        token,
		"__EVENTTARGET":            "m$Content$submitbtn2",
		"__EVENTARGUMENT":          "",
		"masterfootervalue":        "X1!ÆØÅ",
		"LectioPostbackId":         "",
	}
}

// Login performs the login handshake with a fresh client and installs it as
// the current session. Any response to the credential POST counts as a login,
// the dashboard is probed afterwards to tell whether the credentials worked.
func (s Scraper) Login(ctx context.Context, institution, username, password string) (LoginResult, error) {
	endpoint := institutionPath(institution, "login.aspx")

	client, err := newClient(s.opts, s.tel)
	if err != nil {
		s.tel.ReportBroken(report_client_login, fmt.Errorf("create client: %w", err))
		return LoginResult{}, transportError(opLogin, endpoint, err)
	}

	doc, err := s.fetchDocument(ctx, client.Http, report_client_login, opLogin, endpoint, nil)
	if err != nil {
		return LoginResult{}, err
	}

	token := doc.Find(validationField).AttrOr("value", "")
	if token == "" {
		s.tel.ReportBroken(report_client_login, fmt.Errorf("could not find validation token"), endpoint)
		return LoginResult{}, tokenNotFound(opLogin)
	}

	res, err := client.Http.R().
		SetContext(ctx).
		SetFormData(loginForm(username, password, token)).
		Post(endpoint)
	if err != nil {
		s.tel.ReportBroken(report_client_login, fmt.Errorf("login request: %w", err), endpoint)
		return LoginResult{}, transportError(opLogin, endpoint, err)
	}
	s.tel.ReportDebug(report_client_login, "credentials posted", res.StatusCode())

	s.store.Set(client)

	verified := s.probeDashboard(ctx, client, institution)
	if !verified {
		s.tel.ReportWarning(
			report_client_login,
			fmt.Errorf("test login: could not find %s", dashboardSection),
			institution,
		)
	}
	return LoginResult{Verified: verified}, nil
}

func (s Scraper) probeDashboard(ctx context.Context, client *Client, institution string) bool {
	doc, err := s.fetchDocument(
		ctx,
		client.Http,
		report_client_login,
		opLogin,
		institutionPath(institution, "forside.aspx"),
		nil,
	)
	if err != nil {
		return false
	}
	return doc.Find(dashboardSection).Length() > 0
}
