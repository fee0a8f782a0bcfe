package lectio

import (
	"context"
	"fmt"
	"lectioassist-backend/pkg/htmlutil"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

const institutionListPath = "/lectio/login_list.aspx"

// Institutions fetches the public list of institutions, it needs no session.
func (s Scraper) Institutions(ctx context.Context) (map[string]string, error) {
	client, err := newClient(s.opts, s.tel)
	if err != nil {
		s.tel.ReportBroken(report_client_institutions, fmt.Errorf("create client: %w", err))
		return nil, transportError(opInstitutions, institutionListPath, err)
	}

	doc, err := s.fetchDocument(ctx, client.Http, report_client_institutions, opInstitutions, institutionListPath, nil)
	if err != nil {
		return nil, err
	}

	directory := parseInstitutions(doc)
	s.tel.ReportCount(report_client_institutions, int64(len(directory)))
	return directory, nil
}

func parseInstitutions(doc *goquery.Document) map[string]string {
	directory := map[string]string{}
	for _, anchor := range htmlutil.GetAnchors(nil, doc.Find("div a")) {
		id, ok := institutionId(anchor.Url)
		if !ok {
			continue
		}
		directory[id] = anchor.Name
	}
	return directory
}

// institutionId reads the id out of "/lectio/{id}/default.aspx".
func institutionId(link *url.URL) (string, bool) {
	segments := strings.Split(link.Path, "/")
	if len(segments) < 3 || segments[2] == "" {
		return "", false
	}
	return segments[2], true
}

type Institution struct {
	Id    string
	Name  string
	Score float64
}

// MatchInstitutions ranks a directory by similarity to `query`, at most
// `limit` results are returned (all of them if limit <= 0).
func MatchInstitutions(directory map[string]string, query string, limit int) []Institution {
	query = strings.ToLower(strings.TrimSpace(query))

	matches := make([]Institution, 0, len(directory))
	for id, name := range directory {
		lower := strings.ToLower(name)
		score := 0.0
		if query != "" && lower != "" {
			score = matchr.JaroWinkler(query, lower, false)
		}
		if query != "" && strings.Contains(lower, query) {
			score += 1
		}
		if id == query {
			score += 2
		}
		matches = append(matches, Institution{Id: id, Name: name, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].Id < matches[j].Id
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
