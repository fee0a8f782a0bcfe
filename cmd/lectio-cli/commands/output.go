package commands

import (
	"encoding/json"
	"fmt"
	"lectioassist-backend/internal/scrapers/lectio"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const errorPrefix = "Error: "

type loginEnvelope struct {
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

func parseLogin(out string) loginEnvelope {
	var envelope loginEnvelope
	err := json.Unmarshal([]byte(out), &envelope)
	if err != nil {
		return loginEnvelope{Status: "error", Message: out}
	}
	return envelope
}

// check exits if `out` is an error rendered by the service.
func check(out string) string {
	if strings.HasPrefix(out, errorPrefix) {
		fmt.Fprintln(os.Stderr, out)
		os.Exit(1)
	}
	return out
}

// decode checks `out` and unmarshals it, it returns false if the raw json was
// printed instead (--json).
func decode[T any](out string, target *T) bool {
	check(out)
	if jsonOutput {
		fmt.Println(out)
		return false
	}
	err := json.Unmarshal([]byte(out), target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unexpected output:", err)
		os.Exit(1)
	}
	return true
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(header)
	t.SetStyle(table.StyleRounded)
	return t
}

func formatGrade(detail *lectio.GradeDetail) string {
	if detail == nil {
		return ""
	}
	if detail.Weight == 1 {
		return detail.Grade
	}
	return fmt.Sprintf("%s (x%g)", detail.Grade, detail.Weight)
}
