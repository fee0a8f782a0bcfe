package commands

import (
	"fmt"
	"lectioassist-backend/internal/scrapers/lectio"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	institutionSearch string
	institutionLimit  int
)

func init() {
	institutionsCmd.Flags().StringVarP(&institutionSearch, "search", "s", "", "Rank institutions by similarity to a name.")
	institutionsCmd.Flags().IntVar(&institutionLimit, "limit", 10, "Maximum amount of search results.")
	rootCmd.AddCommand(institutionsCmd)
}

var institutionsCmd = &cobra.Command{
	Use:   "institutions [--search <name>]",
	Short: "Lists the institutions using lectio and their ids.",
	Run: func(cmd *cobra.Command, args []string) {
		var directory map[string]string
		if !decode(app.service.ListInstitutions(cmd.Context()), &directory) {
			return
		}

		if institutionSearch != "" {
			t := newTable(table.Row{"Id", "Name", "Score"})
			for _, match := range lectio.MatchInstitutions(directory, institutionSearch, institutionLimit) {
				t.AppendRow(table.Row{match.Id, match.Name, fmt.Sprintf("%.2f", match.Score)})
			}
			t.Render()
			return
		}

		ids := make([]string, 0, len(directory))
		for id := range directory {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			return directory[ids[i]] < directory[ids[j]]
		})

		t := newTable(table.Row{"Id", "Name"})
		for _, id := range ids {
			t.AppendRow(table.Row{id, directory[id]})
		}
		t.Render()
	},
}
