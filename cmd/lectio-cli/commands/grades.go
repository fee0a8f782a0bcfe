package commands

import (
	"lectioassist-backend/internal/scrapers/lectio"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gradesCmd)
}

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Prints grades and grade notes.",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin(cmd.Context())

		var report lectio.GradeReport
		if !decode(app.service.GetGrades(cmd.Context(), app.cfg.Institution), &report) {
			return
		}

		t := newTable(table.Row{"Team", "Subject", "1st", "2nd", "Year", "Internal", "Exam"})
		for _, g := range report.Grades {
			t.AppendRow(table.Row{
				g.Team, g.Subject,
				formatGrade(g.FirstStandpoint),
				formatGrade(g.SecondStandpoint),
				formatGrade(g.FinalYearGrade),
				formatGrade(g.InternalExam),
				formatGrade(g.FinalExam),
			})
		}
		t.Render()

		if len(report.GradeNotes) == 0 {
			return
		}
		notes := newTable(table.Row{"Team", "Type", "Grade", "Date", "Note"})
		for _, n := range report.GradeNotes {
			notes.AppendRow(table.Row{n.Team, n.GradeType, n.Grade, n.Date, n.Note})
		}
		notes.Render()
	},
}
