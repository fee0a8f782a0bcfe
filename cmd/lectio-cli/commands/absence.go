package commands

import (
	"lectioassist-backend/internal/scrapers/lectio"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(absenceCmd)
}

var absenceCmd = &cobra.Command{
	Use:   "absence",
	Short: "Prints absence statistics per team.",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin(cmd.Context())

		var records map[string]lectio.AbsenceRecord
		if !decode(app.service.GetAbsence(cmd.Context(), app.cfg.Institution), &records) {
			return
		}

		teams := make([]string, 0, len(records))
		for team := range records {
			teams = append(teams, team)
		}
		sort.Strings(teams)

		t := newTable(table.Row{"Team", "As of", "Modules", "Year", "Modules", "Writing as of", "Writing year"})
		for _, team := range teams {
			r := records[team]
			writingAsOf, writingYear := "", ""
			if r.Writing != nil {
				writingAsOf = r.Writing.AsOf.Percent
				writingYear = r.Writing.YearToDate.Percent
			}
			t.AppendRow(table.Row{
				r.Team,
				r.AsOf.Percent, r.AsOf.Modules,
				r.YearToDate.Percent, r.YearToDate.Modules,
				writingAsOf, writingYear,
			})
		}
		t.Render()
	},
}
