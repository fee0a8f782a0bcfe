package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Prints the announcements on the front page.",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin(cmd.Context())
		fmt.Print(check(app.service.GetDashboard(cmd.Context(), app.cfg.Institution)))
	},
}
