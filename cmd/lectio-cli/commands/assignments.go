package commands

import (
	"fmt"
	"lectioassist-backend/internal/scrapers/lectio"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var pendingOnly bool

func init() {
	assignmentsCmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only show assignments whose deadline has not passed.")
	rootCmd.AddCommand(assignmentsCmd)
}

var assignmentsCmd = &cobra.Command{
	Use:   "assignments [--pending]",
	Short: "Prints assignments, most urgent first.",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin(cmd.Context())

		var records []lectio.AssignmentRecord
		if !decode(app.service.GetAssignments(cmd.Context(), app.cfg.Institution), &records) {
			return
		}

		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Urgency > records[j].Urgency
		})

		t := newTable(table.Row{"Week", "Team", "Title", "Deadline", "Hours", "Status", "Urgency"})
		for _, r := range records {
			if pendingOnly && r.Urgency == 0 {
				continue
			}
			t.AppendRow(table.Row{
				r.Week, r.Team, r.Title, r.Deadline,
				fmt.Sprintf("%g", r.StudentTime),
				r.Status,
				fmt.Sprintf("%.6f", r.Urgency),
			})
		}
		t.Render()
	},
}
