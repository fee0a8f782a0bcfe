package commands

import (
	"lectioassist-backend/internal/scrapers/lectio"
	"lectioassist-backend/pkg/serviceutil"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	scheduleWeek int
	scheduleIcs  string
)

func init() {
	scheduleCmd.Flags().IntVarP(&scheduleWeek, "week", "w", 0, "Week number of the current year (default: current week).")
	scheduleCmd.Flags().StringVar(&scheduleIcs, "ics", "", "Write the week as an iCalendar file instead of printing it.")
	rootCmd.AddCommand(scheduleCmd)
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [--week <n>] [--ics <file.ics>]",
	Short: "Prints the lessons of a week.",
	Run: func(cmd *cobra.Command, args []string) {
		var week *int
		if cmd.Flags().Changed("week") {
			week = &scheduleWeek
		}

		requireLogin(cmd.Context())

		if scheduleIcs != "" {
			document := check(app.service.ExportSchedule(cmd.Context(), app.cfg.Institution, week))
			err := os.WriteFile(scheduleIcs, []byte(document), 0644)
			if err != nil {
				serviceutil.Fatal("failed to write calendar", err)
			}
			slog.Info("wrote calendar", "path", scheduleIcs)
			return
		}

		var entries []lectio.ScheduleEntry
		if !decode(app.service.GetSchedule(cmd.Context(), app.cfg.Institution, week), &entries) {
			return
		}

		t := newTable(table.Row{"Day", "Date", "Time", "Class", "Teacher", "Room", "Status", "Homework"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Day, e.DateTime, e.Time, e.ClassName, e.Teacher, e.Room, e.Status, e.Homework})
		}
		t.Render()
	},
}
